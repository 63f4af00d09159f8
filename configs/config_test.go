package configs

import (
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fero-tech/claimrunner/common/apperror"
	"github.com/fero-tech/claimrunner/common/constants"
	"github.com/fero-tech/claimrunner/global"
	"github.com/spf13/pflag"
)

var configEnv = []string{
	"CLAIM_NETWORK", "RPC_URL", "CHAIN_ID", "CONTRACT_ADDRESS", "PRIVATE_KEY",
	"GAS_LIMIT", "MAX_FEE_PER_GAS", "MAX_PRIORITY_FEE_PER_GAS", "CLAIM_VALUE",
	"CLAIM_DATA_FILE", "CLAIM_ESTIMATE", "CLAIM_TIMEOUT", "LOG_LEVEL",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configEnv {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RPCURL != "https://mainnet.base.org" || cfg.ChainID != 8453 {
		t.Errorf("rpc/chain = %s/%d", cfg.RPCURL, cfg.ChainID)
	}
	if cfg.Contract().Hex() != "0x6A3044c1Cf077F386c9345eF84f2518A2682Dfff" {
		t.Errorf("contract = %s", cfg.Contract().Hex())
	}
	opts := cfg.TxOptions()
	if opts.GasLimit != 300000 {
		t.Errorf("gas limit = %d", opts.GasLimit)
	}
	if opts.MaxFeePerGas.Cmp(big.NewInt(100_000_000)) != 0 {
		t.Errorf("max fee = %s", opts.MaxFeePerGas)
	}
	if opts.MaxPriorityFeePerGas.Cmp(big.NewInt(1_000_000)) != 0 {
		t.Errorf("priority fee = %s", opts.MaxPriorityFeePerGas)
	}
	if opts.Value.Cmp(big.NewInt(125_000_000_000_000)) != 0 {
		t.Errorf("value = %s", opts.Value)
	}
	if cfg.PrivateKey != "" || cfg.Timeout != 0 || cfg.Estimate {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestTxOptionsReturnsCopies(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg.TxOptions().Value.SetInt64(1)
	if cfg.TxOptions().Value.Cmp(big.NewInt(125_000_000_000_000)) != 0 {
		t.Error("configured value was mutated through TxOptions")
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "PRIVATE_KEY=0xfromfile\nMAX_FEE_PER_GAS=0.5\nGAS_LIMIT=100000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MAX_FEE_PER_GAS", "0.2")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--gas-limit=250000", "--timeout=2m", "--network=base-sepolia"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, fs)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PrivateKey != "0xfromfile" {
		t.Errorf("private key from .env not picked up")
	}
	if cfg.MaxFeePerGas != "0.2" {
		t.Errorf("environment should win over .env, got %s", cfg.MaxFeePerGas)
	}
	if cfg.GasLimit != 250000 {
		t.Errorf("flag should win, got gas limit %d", cfg.GasLimit)
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("timeout = %s", cfg.Timeout)
	}
	if cfg.ChainID != 84532 || cfg.RPCURL != "https://sepolia.base.org" {
		t.Errorf("preset not applied: %s/%d", cfg.RPCURL, cfg.ChainID)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env"), nil); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad contract", map[string]string{"CONTRACT_ADDRESS": "0x1234"}},
		{"zero gas", map[string]string{"GAS_LIMIT": "0"}},
		{"bad fee", map[string]string{"MAX_FEE_PER_GAS": "cheap"}},
		{"tip above cap", map[string]string{"MAX_FEE_PER_GAS": "0.001", "MAX_PRIORITY_FEE_PER_GAS": "0.1"}},
		{"negative value", map[string]string{"CLAIM_VALUE": "-1"}},
		{"unknown network", map[string]string{"CLAIM_NETWORK": "nowhere"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("", nil)
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) || appErr.Code != constants.ConfigurationErrorCode {
				t.Errorf("err = %v, want configuration error", err)
			}
		})
	}
}

func TestUnknownNetworkWithRPC(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLAIM_NETWORK", "devnet")
	t.Setenv("RPC_URL", "http://127.0.0.1:8545")
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ExpectedChainID() != nil {
		t.Errorf("no chain id expected, got %s", cfg.ExpectedChainID())
	}
}

func TestValidateAppliesGlobalDefaults(t *testing.T) {
	cfg := &ClaimConfiguration{
		GasLimit:             21000,
		MaxFeePerGas:         "1",
		MaxPriorityFeePerGas: "1",
		Value:                "0",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Network != global.DefaultNetwork || cfg.ChainID != 8453 {
		t.Errorf("network/chain = %s/%d", cfg.Network, cfg.ChainID)
	}
	if cfg.Contract() != common.HexToAddress(global.DefaultClaimContract) {
		t.Errorf("contract = %s", cfg.Contract().Hex())
	}
}
