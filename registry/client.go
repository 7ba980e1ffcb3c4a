package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minhleeee123/stellar-digital-identity/cryptoutils"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/minhleeee123/stellar-digital-identity/pipeline"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Invoker runs contract writes and reads. *pipeline.Pipeline implements it.
type Invoker interface {
	Invoke(ctx context.Context, secret string, inv interfaces.Invocation) (pipeline.Outcome, error)
	Query(ctx context.Context, source *interfaces.Address, inv interfaces.Invocation) (xdr.ScVal, error)
}

// Client implements interfaces.IdentityReader and the write entry points of
// the identity registry contract.
type Client struct {
	invoker  Invoker
	contract interfaces.ContractID
	log      *slog.Logger
}

// NewClient creates a client for the registry contract at contract.
func NewClient(invoker Invoker, contract interfaces.ContractID, log *slog.Logger) *Client {
	return &Client{
		invoker:  invoker,
		contract: contract,
		log:      log,
	}
}

// Contract returns the registry contract address.
func (c *Client) Contract() interfaces.ContractID {
	return c.contract
}

func signerAddress(secret string) (interfaces.Address, error) {
	addr, err := cryptoutils.AddressForSecret(secret)
	if err != nil {
		return "", &interfaces.SigningError{Reason: "malformed key material", Err: err}
	}
	return interfaces.Address(addr), nil
}

// Initialize sets the signing account as registry admin.
func (c *Client) Initialize(ctx context.Context, secret string) (pipeline.Outcome, error) {
	admin, err := signerAddress(secret)
	if err != nil {
		return pipeline.Outcome{}, err
	}

	inv, err := InitializeInvocation(c.contract, admin)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	return c.invoker.Invoke(ctx, secret, inv)
}

// RegisterIdentity registers a new identity owned by req.Owner, or by the
// signing account if no owner is given. The document hash is checked before
// anything is built.
func (c *Client) RegisterIdentity(ctx context.Context, secret string, req RegisterIdentityRequest) (pipeline.Outcome, error) {
	if err := validateRequest(req); err != nil {
		return pipeline.Outcome{}, err
	}

	documentHash, err := interfaces.ParseDocumentHash(req.DocumentHash)
	if err != nil {
		return pipeline.Outcome{}, err
	}

	owner := interfaces.Address(req.Owner)
	if owner == "" {
		owner, err = signerAddress(secret)
		if err != nil {
			return pipeline.Outcome{}, err
		}
	}

	inv, err := RegisterIdentityInvocation(c.contract, req.ID, owner, req.FullName, req.Email, documentHash)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	return c.invoker.Invoke(ctx, secret, inv)
}

// UpdateIdentity replaces the name, email and document hash of an identity.
func (c *Client) UpdateIdentity(ctx context.Context, secret string, req UpdateIdentityRequest) (pipeline.Outcome, error) {
	if err := validateRequest(req); err != nil {
		return pipeline.Outcome{}, err
	}

	documentHash, err := interfaces.ParseDocumentHash(req.DocumentHash)
	if err != nil {
		return pipeline.Outcome{}, err
	}

	return c.invoker.Invoke(ctx, secret, UpdateIdentityInvocation(c.contract, req.ID, req.FullName, req.Email, documentHash))
}

// VerifyIdentity sets the verification level. Admin only.
func (c *Client) VerifyIdentity(ctx context.Context, secret string, req VerifyIdentityRequest) (pipeline.Outcome, error) {
	if err := validateRequest(req); err != nil {
		return pipeline.Outcome{}, err
	}
	return c.invoker.Invoke(ctx, secret, VerifyIdentityInvocation(c.contract, req.ID, interfaces.VerificationLevel(req.Level)))
}

// GrantAccess grants req.Grantee access to an identity for req.DurationSeconds.
func (c *Client) GrantAccess(ctx context.Context, secret string, req GrantAccessRequest) (pipeline.Outcome, error) {
	if err := validateRequest(req); err != nil {
		return pipeline.Outcome{}, err
	}

	inv, err := GrantAccessInvocation(c.contract, req.ID, interfaces.Address(req.Grantee), interfaces.Permission(req.Permission), req.DurationSeconds)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	return c.invoker.Invoke(ctx, secret, inv)
}

func (c *Client) RevokeAccess(ctx context.Context, secret string, req RevokeAccessRequest) (pipeline.Outcome, error) {
	if err := validateRequest(req); err != nil {
		return pipeline.Outcome{}, err
	}

	inv, err := RevokeAccessInvocation(c.contract, req.ID, interfaces.Address(req.Grantee))
	if err != nil {
		return pipeline.Outcome{}, err
	}
	return c.invoker.Invoke(ctx, secret, inv)
}

func (c *Client) DeactivateIdentity(ctx context.Context, secret string, id string) (pipeline.Outcome, error) {
	if err := validateRequest(IdentityIDRequest{ID: id}); err != nil {
		return pipeline.Outcome{}, err
	}
	return c.invoker.Invoke(ctx, secret, DeactivateIdentityInvocation(c.contract, id))
}

func (c *Client) ActivateIdentity(ctx context.Context, secret string, id string) (pipeline.Outcome, error) {
	if err := validateRequest(IdentityIDRequest{ID: id}); err != nil {
		return pipeline.Outcome{}, err
	}
	return c.invoker.Invoke(ctx, secret, ActivateIdentityInvocation(c.contract, id))
}

// GetIdentity reads an identity as requester, which must exist on the ledger.
// The contract returns nothing when requester has no access, which is
// reported as interfaces.ErrIdentityNotFound.
func (c *Client) GetIdentity(ctx context.Context, id string, requester interfaces.Address) (*interfaces.IdentityRecord, error) {
	inv, err := GetIdentityInvocation(c.contract, id, requester)
	if err != nil {
		return nil, err
	}

	value, err := c.invoker.Query(ctx, &requester, inv)
	if err != nil {
		return nil, err
	}
	return DecodeIdentityRecord(value)
}

// CheckAccess returns the active access grant of requester on an identity.
func (c *Client) CheckAccess(ctx context.Context, id string, requester interfaces.Address) (*interfaces.AccessPermission, error) {
	inv, err := CheckAccessInvocation(c.contract, id, requester)
	if err != nil {
		return nil, err
	}

	value, err := c.invoker.Query(ctx, nil, inv)
	if err != nil {
		return nil, err
	}
	return DecodeAccessPermission(value)
}

func (c *Client) GetIdentitiesByOwner(ctx context.Context, owner interfaces.Address) ([]string, error) {
	inv, err := GetIdentitiesByOwnerInvocation(c.contract, owner)
	if err != nil {
		return nil, err
	}

	value, err := c.invoker.Query(ctx, nil, inv)
	if err != nil {
		return nil, err
	}

	ids, err := decodeStringVec(value)
	if err != nil {
		return nil, fmt.Errorf("could not decode identity ids: %w", err)
	}
	return ids, nil
}

func (c *Client) GetTotalIdentities(ctx context.Context) (uint32, error) {
	value, err := c.invoker.Query(ctx, nil, GetTotalIdentitiesInvocation(c.contract))
	if err != nil {
		return 0, err
	}

	total, err := decodeU32(value)
	if err != nil {
		return 0, fmt.Errorf("could not decode identity total: %w", err)
	}
	return total, nil
}

func (c *Client) GetAdmin(ctx context.Context) (interfaces.Address, error) {
	value, err := c.invoker.Query(ctx, nil, GetAdminInvocation(c.contract))
	if err != nil {
		return "", err
	}

	admin, err := decodeAddress(value)
	if err != nil {
		return "", fmt.Errorf("could not decode admin: %w", err)
	}
	return admin, nil
}

// Applied reports the boolean returned by a write entry point. The contract
// returns false for no-op writes such as registering an existing id. ok is
// false when the outcome carries no boolean return value.
func Applied(outcome pipeline.Outcome) (applied bool, ok bool) {
	if outcome.ReturnValue == nil {
		return false, false
	}
	b, err := decodeBool(*outcome.ReturnValue)
	if err != nil {
		return false, false
	}
	return b, true
}

var _ interfaces.IdentityReader = (*Client)(nil)
