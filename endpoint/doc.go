// Package endpoint implements interfaces.Endpoint over the Soroban RPC
// JSON-RPC API.
//
// The client is stateless: it holds only the transport and a logger, so one
// instance is shared by every pipeline invocation. It is the single place
// where RPC payloads are decoded, which is also where the ambiguous-success
// condition is detected and tagged (see interfaces.DecodeError).
package endpoint
