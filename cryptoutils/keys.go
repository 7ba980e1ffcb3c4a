package cryptoutils

import (
	"errors"
	"fmt"

	"github.com/stellar/go-stellar-sdk/keypair"
)

// ErrMalformedSecret is returned when key material is not a valid secret seed.
var ErrMalformedSecret = errors.New("malformed secret seed")

// ParseSigningKey parses a Stellar secret seed into a full keypair.
func ParseSigningKey(secret string) (*keypair.Full, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedSecret)
	}

	kp, err := keypair.ParseFull(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSecret, err)
	}
	return kp, nil
}

// AddressForSecret returns the public account address that a secret seed signs for.
func AddressForSecret(secret string) (string, error) {
	kp, err := ParseSigningKey(secret)
	if err != nil {
		return "", err
	}
	return kp.Address(), nil
}

// RandomAddress returns the address of a freshly generated keypair.
// The secret half is discarded.
func RandomAddress() (string, error) {
	kp, err := keypair.Random()
	if err != nil {
		return "", fmt.Errorf("could not generate keypair: %w", err)
	}
	return kp.Address(), nil
}
