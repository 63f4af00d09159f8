package configs

import (
	"errors"
	"io/fs"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fero-tech/claimrunner/common/apperror"
	"github.com/fero-tech/claimrunner/common/utils"
	"github.com/fero-tech/claimrunner/global"
	"github.com/fero-tech/claimrunner/internal/chain"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type ClaimConfiguration struct {
	Network              string        `env:"CLAIM_NETWORK"`
	RPCURL               string        `env:"RPC_URL"`
	ChainID              uint64        `env:"CHAIN_ID"`
	ContractAddress      string        `env:"CONTRACT_ADDRESS"`
	PrivateKey           string        `env:"PRIVATE_KEY"`
	GasLimit             uint64        `env:"GAS_LIMIT" envDefault:"300000"`
	MaxFeePerGas         string        `env:"MAX_FEE_PER_GAS" envDefault:"0.1"`            // gwei
	MaxPriorityFeePerGas string        `env:"MAX_PRIORITY_FEE_PER_GAS" envDefault:"0.001"` // gwei
	Value                string        `env:"CLAIM_VALUE" envDefault:"125000000000000"`    // wei
	ClaimDataFile        string        `env:"CLAIM_DATA_FILE" envDefault:"claim.json"`
	Estimate             bool          `env:"CLAIM_ESTIMATE"`
	Timeout              time.Duration `env:"CLAIM_TIMEOUT"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`

	contract             common.Address
	maxFeePerGas         *big.Int
	maxPriorityFeePerGas *big.Int
	value                *big.Int
}

// flag name -> setter, applied only for flags the operator set explicitly
var flagOverrides = map[string]func(cfg *ClaimConfiguration, v *viper.Viper, key string){
	"network":      func(c *ClaimConfiguration, v *viper.Viper, k string) { c.Network = v.GetString(k) },
	"rpc":          func(c *ClaimConfiguration, v *viper.Viper, k string) { c.RPCURL = v.GetString(k) },
	"chain-id":     func(c *ClaimConfiguration, v *viper.Viper, k string) { c.ChainID = v.GetUint64(k) },
	"contract":     func(c *ClaimConfiguration, v *viper.Viper, k string) { c.ContractAddress = v.GetString(k) },
	"gas-limit":    func(c *ClaimConfiguration, v *viper.Viper, k string) { c.GasLimit = v.GetUint64(k) },
	"max-fee":      func(c *ClaimConfiguration, v *viper.Viper, k string) { c.MaxFeePerGas = v.GetString(k) },
	"priority-fee": func(c *ClaimConfiguration, v *viper.Viper, k string) { c.MaxPriorityFeePerGas = v.GetString(k) },
	"value":        func(c *ClaimConfiguration, v *viper.Viper, k string) { c.Value = v.GetString(k) },
	"claim-file":   func(c *ClaimConfiguration, v *viper.Viper, k string) { c.ClaimDataFile = v.GetString(k) },
	"estimate":     func(c *ClaimConfiguration, v *viper.Viper, k string) { c.Estimate = v.GetBool(k) },
	"timeout":      func(c *ClaimConfiguration, v *viper.Viper, k string) { c.Timeout = v.GetDuration(k) },
	"log-level":    func(c *ClaimConfiguration, v *viper.Viper, k string) { c.LogLevel = v.GetString(k) },
}

// Load reads the configuration once. Sources, lowest precedence first:
// struct defaults, envFile, process environment, flags that were set.
func Load(envFile string, flags *pflag.FlagSet) (*ClaimConfiguration, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg := &ClaimConfiguration{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperror.Configuration(err.Error())
	}
	if flags != nil {
		v := viper.New()
		if err := v.BindPFlags(flags); err != nil {
			return nil, pkgerrors.Wrap(err, "bind flags")
		}
		for name, set := range flagOverrides {
			if f := flags.Lookup(name); f != nil && f.Changed {
				set(cfg, v, name)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile exports the keys of a dotenv file that are not already set in
// the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperror.Configuration(pkgerrors.Wrapf(err, "read %s", path).Error())
	}
	for _, key := range v.AllKeys() {
		name := strings.ToUpper(key)
		if _, ok := os.LookupEnv(name); ok {
			continue
		}
		if err := os.Setenv(name, v.GetString(key)); err != nil {
			return pkgerrors.Wrapf(err, "export %s", name)
		}
	}
	return nil
}

// Validate resolves the network preset and parses amounts. The private key
// is left to the claim runner.
func (cfg *ClaimConfiguration) Validate() error {
	if cfg.Network == "" {
		cfg.Network = global.DefaultNetwork
	}
	if cfg.ContractAddress == "" {
		cfg.ContractAddress = global.DefaultClaimContract
	}
	if network, ok := global.GetNetwork(cfg.Network); ok {
		if cfg.RPCURL == "" {
			cfg.RPCURL = network.RPCURL
		}
		if cfg.ChainID == 0 {
			cfg.ChainID = network.ChainID
		}
	} else if cfg.RPCURL == "" {
		return apperror.Configuration("unknown network " + cfg.Network + " and no RPC_URL set")
	}

	if !common.IsHexAddress(cfg.ContractAddress) {
		return apperror.Configuration("invalid contract address " + cfg.ContractAddress)
	}
	cfg.contract = common.HexToAddress(cfg.ContractAddress)

	if cfg.GasLimit == 0 {
		return apperror.Configuration("gas limit must be positive")
	}
	var err error
	if cfg.maxFeePerGas, err = utils.ParseGwei(cfg.MaxFeePerGas); err != nil {
		return apperror.Configuration("max fee per gas: " + err.Error())
	}
	if cfg.maxPriorityFeePerGas, err = utils.ParseGwei(cfg.MaxPriorityFeePerGas); err != nil {
		return apperror.Configuration("max priority fee per gas: " + err.Error())
	}
	if cfg.maxPriorityFeePerGas.Cmp(cfg.maxFeePerGas) > 0 {
		return apperror.Configuration("priority fee exceeds max fee per gas")
	}
	if cfg.value, err = utils.ParseBigInt(cfg.Value); err != nil {
		return apperror.Configuration("value: " + err.Error())
	}
	if cfg.value.Sign() < 0 {
		return apperror.Configuration("value must not be negative")
	}
	return nil
}

func (cfg *ClaimConfiguration) Contract() common.Address {
	return cfg.contract
}

// TxOptions returns fresh copies so callers cannot alter the configured amounts.
func (cfg *ClaimConfiguration) TxOptions() chain.TxOptions {
	return chain.TxOptions{
		GasLimit:             cfg.GasLimit,
		MaxFeePerGas:         new(big.Int).Set(cfg.maxFeePerGas),
		MaxPriorityFeePerGas: new(big.Int).Set(cfg.maxPriorityFeePerGas),
		Value:                new(big.Int).Set(cfg.value),
	}
}

func (cfg *ClaimConfiguration) ExpectedChainID() *big.Int {
	if cfg.ChainID == 0 {
		return nil
	}
	return new(big.Int).SetUint64(cfg.ChainID)
}
