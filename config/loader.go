package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is read when no path is given. Its absence is not an error.
const DefaultConfigFile = "identity.toml"

// Environment variable names
const (
	EnvRPCURL            = "IDENTITY_RPC_URL"
	EnvContractID        = "IDENTITY_CONTRACT_ID"
	EnvNetworkPassphrase = "IDENTITY_NETWORK_PASSPHRASE"
)

// Load loads configuration with priority: defaults < file < env.
// An explicit path must exist. The result is not validated, so that callers
// can apply flag overrides first.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid TOML in %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	applyEnv(cfg, os.LookupEnv)
	return cfg, nil
}

// decode unmarshals data over cfg; keys absent from data keep their current
// value.
func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvRPCURL); ok && v != "" {
		cfg.Network.RPCURL = v
	}
	if v, ok := lookup(EnvContractID); ok && v != "" {
		cfg.Contract.ID = v
	}
	if v, ok := lookup(EnvNetworkPassphrase); ok && v != "" {
		cfg.Network.Passphrase = v
	}
}
