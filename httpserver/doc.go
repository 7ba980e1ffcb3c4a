/*
Package httpserver implements a read-only HTTP gateway over the identity
registry contract.

# Endpoints

  - GET /api/identity/{id}?requester=G...: identity record visible to requester
  - GET /api/identity/{id}/access/{requester}: active access grant
  - GET /api/owner/{owner}/identities: identity ids owned by an account
  - GET /api/stats/total: number of registered identities
  - GET /api/admin: registry admin
  - GET /livez, /readyz, /drain, /undrain: health and load balancer control

Reads are simulated against the ledger and never submitted, so the gateway
holds no keys. Writes go through the identity CLI.

Registry errors map to status codes: unknown or hidden identities and grants
are 404, contract rejections are 422 and transport or decode failures are 502.
*/
package httpserver
