// Package main (cmd/identity-gateway) serves read-only queries against the
// identity registry contract over HTTP.
//
// Every request is answered by simulating the matching contract read, so the
// gateway needs no signing key and never submits transactions. Registry
// location comes from the same config file, environment variables and flags
// as the identity CLI.
//
// Example usage:
//
//	identity-gateway --listen-addr=0.0.0.0:8080 \
//	    --rpc-url=https://soroban-testnet.stellar.org \
//	    --contract=CA6WCALSJ4HHQW56G6AI55CAG76KF6SCPMH3DQURNPXQVWRY4TINTFBC
//
// The server shuts down gracefully on SIGINT or SIGTERM and exposes /livez,
// /readyz, /drain and /undrain for load balancers.
package main
