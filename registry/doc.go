// Package registry is the client of the digital identity registry contract.
//
// Writes (initialize, register_identity, update_identity, verify_identity,
// grant_access, revoke_access, deactivate_identity, activate_identity) are
// validated, turned into invocations and run through the transaction
// pipeline. They return a pipeline.Outcome; Applied extracts the boolean the
// contract returns for no-op writes.
//
// Reads (get_identity, check_access, get_identities_by_owner,
// get_total_identities, get_admin) run through simulation only and decode the
// contract's return value into interfaces types:
//
//	type IdentityReader interface {
//	    GetIdentity(ctx context.Context, id string, requester Address) (*IdentityRecord, error)
//	    CheckAccess(ctx context.Context, id string, requester Address) (*AccessPermission, error)
//	    GetIdentitiesByOwner(ctx context.Context, owner Address) ([]string, error)
//	    GetTotalIdentities(ctx context.Context) (uint32, error)
//	    GetAdmin(ctx context.Context) (Address, error)
//	}
//
// Contract structs arrive as maps keyed by field symbol. Every field of
// IdentityRecord and AccessPermission is required; a missing field, a wrong
// type or a document hash that is not exactly 32 bytes fails the decode.
//
// MockRegistry (testify) and MockRegistryClient (in-memory, with the
// contract's access rules) implement IdentityReader for tests.
package registry
