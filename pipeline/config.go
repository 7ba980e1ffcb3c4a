package pipeline

import (
	"errors"
	"time"

	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/txnbuild"
)

// Config holds the fixed parameters of one pipeline.
type Config struct {
	NetworkPassphrase string
	// BaseFee is the inclusion fee in stroops, before resource fees.
	BaseFee int64
	// Timeout bounds the transaction validity window.
	Timeout time.Duration
	// PollInterval is the fixed wait between status queries.
	PollInterval time.Duration
	// MaxAttempts bounds the number of status queries.
	MaxAttempts int
}

// DefaultConfig returns the testnet configuration: minimum base fee, a 30s
// validity window and 30 polls one second apart.
func DefaultConfig() Config {
	return Config{
		NetworkPassphrase: network.TestNetworkPassphrase,
		BaseFee:           txnbuild.MinBaseFee,
		Timeout:           30 * time.Second,
		PollInterval:      time.Second,
		MaxAttempts:       30,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.NetworkPassphrase == "" {
		errs = append(errs, errors.New("network passphrase is required"))
	}
	if c.BaseFee < txnbuild.MinBaseFee {
		errs = append(errs, errors.New("base fee is below the network minimum"))
	}
	if c.Timeout < time.Second {
		errs = append(errs, errors.New("timeout must be at least one second"))
	}
	if c.PollInterval < 0 {
		errs = append(errs, errors.New("poll interval must not be negative"))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, errors.New("max attempts must be at least 1"))
	}
	return errors.Join(errs...)
}
