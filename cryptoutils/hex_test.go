package cryptoutils

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHexRoundTrip checks BytesToHex(HexToBytes(h)) == h for 64-char lowercase hex strings.
func TestHexRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("hex round trip is lossless", prop.ForAll(
		func(raw []byte) bool {
			h := hex.EncodeToString(raw)
			if len(h) != 64 {
				return false
			}
			decoded, err := HexToBytes(h)
			if err != nil {
				return false
			}
			return BytesToHex(decoded) == h
		},
		gen.SliceOfN(32, gen.UInt8()),
	))

	properties.TestingRun(t)
}

func TestHexToBytes_Known(t *testing.T) {
	h := strings.Repeat("11", 32)
	raw, err := HexToBytes(h)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
	for _, b := range raw {
		assert.Equal(t, byte(0x11), b)
	}
	assert.Equal(t, h, BytesToHex(raw))
}

func TestHexToBytes_UpperCase(t *testing.T) {
	raw, err := HexToBytes("ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd, 0xef}, raw)
	assert.Equal(t, "abcdef", BytesToHex(raw))
}

func TestHexToBytes_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{name: "odd length", input: "abc", err: ErrOddHexLength},
		{name: "odd length 63", input: strings.Repeat("a", 63), err: ErrOddHexLength},
		{name: "non-hex character", input: "zz", err: ErrInvalidHexChar},
		{name: "non-hex in the middle", input: "00g000", err: ErrInvalidHexChar},
		{name: "0x prefix", input: "0x11", err: ErrInvalidHexChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := HexToBytes(tt.input)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, raw, "must not return partially decoded bytes")
		})
	}
}
