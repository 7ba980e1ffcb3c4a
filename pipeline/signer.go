package pipeline

import (
	"fmt"

	"github.com/minhleeee123/stellar-digital-identity/cryptoutils"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"go.uber.org/atomic"
)

// SignedTransaction is a prepared transaction with one signature. It can be
// submitted only once.
type SignedTransaction struct {
	Hash   string
	Source interfaces.Address

	envelope  string
	submitted atomic.Bool
}

// Envelope returns the signed base64 envelope.
func (s *SignedTransaction) Envelope() string {
	return s.envelope
}

// Signer signs prepared transactions for one network.
type Signer struct {
	passphrase string
}

// NewSigner creates a signer bound to the network passphrase.
func NewSigner(passphrase string) *Signer {
	return &Signer{passphrase: passphrase}
}

// Sign signs p with secret. The parsed key does not outlive the call.
func (s *Signer) Sign(p *PreparedTransaction, secret string) (*SignedTransaction, error) {
	kp, err := cryptoutils.ParseSigningKey(secret)
	if err != nil {
		return nil, &interfaces.SigningError{Reason: "malformed key material", Err: err}
	}

	if kp.Address() != p.Source.String() {
		return nil, &interfaces.SigningError{
			Reason: fmt.Sprintf("key %s does not match transaction source %s", kp.Address(), p.Source),
		}
	}

	signed, err := p.tx.Sign(s.passphrase, kp)
	if err != nil {
		return nil, &interfaces.SigningError{Reason: "could not sign transaction", Err: err}
	}

	hash, err := signed.HashHex(s.passphrase)
	if err != nil {
		return nil, &interfaces.SigningError{Reason: "could not hash transaction", Err: err}
	}

	envelope, err := signed.Base64()
	if err != nil {
		return nil, &interfaces.SigningError{Reason: "could not encode transaction", Err: err}
	}

	return &SignedTransaction{
		Hash:     hash,
		Source:   p.Source,
		envelope: envelope,
	}, nil
}
