// Package main (cmd/identity-cli) invokes and queries the identity registry
// contract from the command line.
//
// Write commands (initialize, register, update, verify, grant, revoke,
// activate, deactivate) build, simulate, sign and submit one transaction and
// wait for its confirmation. The outcome is printed to stdout as JSON and a
// certainty line is printed to stderr:
//
//	succeeded  exit 0
//	failed     exit 1
//	unknown    exit 2, the transaction may or may not have been applied
//
// The signing key is taken from --secret, then IDENTITY_SECRET, then an
// interactive prompt.
//
// Read commands (get, check-access, owned, total, admin) are simulated only
// and print their result as JSON.
//
// Example usage:
//
//	identity-cli register --id DID001 --name "Nguyen Van A" \
//	    --email a@example.com \
//	    --doc-hash 1111111111111111111111111111111111111111111111111111111111111111
package main
