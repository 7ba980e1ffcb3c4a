package cryptoutils

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrOddHexLength is returned when a hex string has an odd number of characters.
	ErrOddHexLength = errors.New("hex string has odd length")

	// ErrInvalidHexChar is returned when a hex string contains a non-hex character.
	ErrInvalidHexChar = errors.New("hex string contains non-hex character")
)

// HexToBytes decodes a hex string (upper or lower case, no 0x prefix).
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d characters", ErrOddHexLength, len(s))
	}

	out, err := hex.DecodeString(s)
	if err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHexChar, byte(invalid))
		}
		return nil, fmt.Errorf("could not decode hex: %w", err)
	}
	return out, nil
}

// BytesToHex encodes b as lowercase hex.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
