package configs

import (
	"github.com/spf13/pflag"
)

// RegisterFlags declares the overrides Load understands. The private key has
// no flag so it never ends up in shell history.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("network", "", "network preset (base, base-sepolia)")
	fs.String("rpc", "", "JSON-RPC endpoint, overrides the preset")
	fs.Uint64("chain-id", 0, "expected chain id, overrides the preset")
	fs.String("contract", "", "claim contract address")
	fs.Uint64("gas-limit", 0, "gas limit of the claim transaction")
	fs.String("max-fee", "", "max fee per gas in gwei")
	fs.String("priority-fee", "", "max priority fee per gas in gwei")
	fs.String("value", "", "value attached to the claim in wei")
	fs.String("claim-file", "", "path of the claim data JSON file")
	fs.Bool("estimate", false, "estimate gas before sending")
	fs.Duration("timeout", 0, "give up waiting after this long, 0 waits forever")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
}
