// Package config loads the network, contract and pipeline settings shared by
// the identity CLI and gateway.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/minhleeee123/stellar-digital-identity/pipeline"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/txnbuild"
)

const (
	DefaultRPCURL     = "https://soroban-testnet.stellar.org"
	DefaultContractID = "CA6WCALSJ4HHQW56G6AI55CAG76KF6SCPMH3DQURNPXQVWRY4TINTFBC"
)

// Duration is a time.Duration written as a Go duration string ("30s") in TOML.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

type NetworkConfig struct {
	RPCURL     string `toml:"rpc_url" validate:"required,url"`
	Passphrase string `toml:"passphrase" validate:"required"`
}

type ContractConfig struct {
	ID string `toml:"id" validate:"required,contract_id"`
}

type TransactionConfig struct {
	BaseFee int64    `toml:"base_fee" validate:"gte=100"`
	Timeout Duration `toml:"timeout" validate:"min_duration=1s"`
}

type PollConfig struct {
	Interval    Duration `toml:"interval" validate:"min_duration=0s"`
	MaxAttempts int      `toml:"max_attempts" validate:"min=1,max=1000"`
}

// Config is the file layout of identity.toml.
type Config struct {
	Network     NetworkConfig     `toml:"network"`
	Contract    ContractConfig    `toml:"contract"`
	Transaction TransactionConfig `toml:"transaction"`
	Poll        PollConfig        `toml:"poll"`
}

// DefaultConfig returns the testnet deployment of the registry.
func DefaultConfig() *Config {
	return &Config{
		Network: NetworkConfig{
			RPCURL:     DefaultRPCURL,
			Passphrase: network.TestNetworkPassphrase,
		},
		Contract: ContractConfig{
			ID: DefaultContractID,
		},
		Transaction: TransactionConfig{
			BaseFee: txnbuild.MinBaseFee,
			Timeout: Duration(30 * time.Second),
		},
		Poll: PollConfig{
			Interval:    Duration(time.Second),
			MaxAttempts: 30,
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("contract_id", func(fl validator.FieldLevel) bool {
		_, err := interfaces.NewContractID(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("min_duration", func(fl validator.FieldLevel) bool {
		floor, err := time.ParseDuration(fl.Param())
		if err != nil {
			return false
		}
		return time.Duration(fl.Field().Int()) >= floor
	})
	return v
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ContractID returns the validated registry contract address.
func (c *Config) ContractID() (interfaces.ContractID, error) {
	return interfaces.NewContractID(c.Contract.ID)
}

// PipelineConfig returns the pipeline parameters of c.
func (c *Config) PipelineConfig() pipeline.Config {
	return pipeline.Config{
		NetworkPassphrase: c.Network.Passphrase,
		BaseFee:           c.Transaction.BaseFee,
		Timeout:           time.Duration(c.Transaction.Timeout),
		PollInterval:      time.Duration(c.Poll.Interval),
		MaxAttempts:       c.Poll.MaxAttempts,
	}
}
