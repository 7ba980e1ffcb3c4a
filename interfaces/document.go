package interfaces

import (
	"errors"
	"fmt"

	"github.com/minhleeee123/stellar-digital-identity/cryptoutils"
)

// DocumentHashLength is the size in bytes of a document hash.
const DocumentHashLength = 32

// ErrInvalidDocumentHash is returned when a document hash is not exactly 32
// bytes (64 hex characters).
var ErrInvalidDocumentHash = errors.New("document hash must be exactly 32 bytes (64 hex characters)")

// DocumentHash is the 32-byte hash of an identity document.
type DocumentHash [DocumentHashLength]byte

// ParseDocumentHash decodes a 64-character hex string.
func ParseDocumentHash(s string) (DocumentHash, error) {
	if len(s) != 2*DocumentHashLength {
		return DocumentHash{}, fmt.Errorf("%w: got %d characters", ErrInvalidDocumentHash, len(s))
	}

	raw, err := cryptoutils.HexToBytes(s)
	if err != nil {
		return DocumentHash{}, fmt.Errorf("%w: %w", ErrInvalidDocumentHash, err)
	}
	return DocumentHashFromBytes(raw)
}

// DocumentHashFromBytes copies raw into a DocumentHash. The input must be
// exactly 32 bytes.
func DocumentHashFromBytes(raw []byte) (DocumentHash, error) {
	var h DocumentHash
	if len(raw) != DocumentHashLength {
		return h, fmt.Errorf("%w: got %d bytes", ErrInvalidDocumentHash, len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// Bytes returns a copy of the raw hash.
func (h DocumentHash) Bytes() []byte {
	out := make([]byte, DocumentHashLength)
	copy(out, h[:])
	return out
}

// String returns the hash as 64 lowercase hex characters.
func (h DocumentHash) String() string {
	return cryptoutils.BytesToHex(h[:])
}

func (h DocumentHash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *DocumentHash) UnmarshalText(text []byte) error {
	parsed, err := ParseDocumentHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
