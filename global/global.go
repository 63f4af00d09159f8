package global

import "strings"

type Network struct {
	Name    string
	RPCURL  string
	ChainID uint64
}

const DefaultNetwork = "base"

// Claim contract the runner targets unless CONTRACT_ADDRESS says otherwise.
const DefaultClaimContract = "0x6A3044c1Cf077F386c9345eF84f2518A2682Dfff"

var Networks = []Network{
	{
		Name:    "base",
		RPCURL:  "https://mainnet.base.org",
		ChainID: 8453,
	},
	{
		Name:    "base-sepolia",
		RPCURL:  "https://sepolia.base.org",
		ChainID: 84532,
	},
}

func GetNetwork(name string) (Network, bool) {
	for _, n := range Networks {
		if strings.EqualFold(n.Name, name) {
			return n, true
		}
	}
	return Network{}, false
}
