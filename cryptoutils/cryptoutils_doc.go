// Package cryptoutils provides the byte-level helpers used at the edges of the
// identity registry client.
//
// # Hex Encoding
//
// Document hashes travel as raw 32-byte values on the ledger and as 64
// character lowercase hex strings everywhere a human sees them. HexToBytes
// and BytesToHex convert between the two forms:
//
//	raw, err := cryptoutils.HexToBytes("1111...11") // 32 bytes
//	s := cryptoutils.BytesToHex(raw)                // "1111...11"
//
// HexToBytes never truncates: odd-length input and non-hex characters are
// errors.
//
// # Signing Keys
//
// ParseSigningKey turns a Stellar secret seed ("S...") into a keypair and
// reports a malformed seed as ErrMalformedSecret. The parsed keypair is
// returned to the caller and never cached.
//
// RandomAddress produces a throwaway account address, used as the source of
// read-only simulations that will never be signed or submitted.
package cryptoutils
