package interfaces

import (
	"context"
	"strconv"
)

// VerificationLevel is the verification tier assigned by the registry admin.
type VerificationLevel uint32

const (
	VerificationUnverified VerificationLevel = 0
	VerificationBasic      VerificationLevel = 1
	VerificationStandard   VerificationLevel = 2
	VerificationPremium    VerificationLevel = 3

	MaxVerificationLevel = VerificationPremium
)

func (l VerificationLevel) String() string {
	switch l {
	case VerificationUnverified:
		return "unverified"
	case VerificationBasic:
		return "basic"
	case VerificationStandard:
		return "standard"
	case VerificationPremium:
		return "premium"
	default:
		return "level(" + strconv.FormatUint(uint64(l), 10) + ")"
	}
}

// Permission is the kind of access an identity owner grants to another account.
type Permission uint32

const (
	PermissionRead   Permission = 1
	PermissionVerify Permission = 2
	PermissionFull   Permission = 3
)

func (p Permission) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionVerify:
		return "verify"
	case PermissionFull:
		return "full"
	default:
		return "permission(" + strconv.FormatUint(uint64(p), 10) + ")"
	}
}

// IdentityRecord is the on-ledger identity record owned by the registry
// contract. It is read-only to this module.
type IdentityRecord struct {
	Owner             Address           `json:"owner"`
	FullName          string            `json:"full_name"`
	Email             string            `json:"email"`
	DocumentHash      DocumentHash      `json:"document_hash"`
	IsActive          bool              `json:"is_active"`
	VerificationLevel VerificationLevel `json:"verification_level"`
	CreatedAt         uint64            `json:"created_at"`
	UpdatedAt         uint64            `json:"updated_at"`
}

// AccessPermission is an access grant on an identity, as returned by check_access.
type AccessPermission struct {
	GrantedTo      Address    `json:"granted_to"`
	PermissionType Permission `json:"permission_type"`
	ExpiresAt      uint64     `json:"expires_at"`
	IsActive       bool       `json:"is_active"`
}

// IdentityReader is the read side of the identity registry.
type IdentityReader interface {
	// GetIdentity returns the identity record as seen by requester.
	// Returns ErrIdentityNotFound if the contract has no such record.
	GetIdentity(ctx context.Context, id string, requester Address) (*IdentityRecord, error)

	// CheckAccess returns the access grant of requester on the identity.
	// Returns ErrAccessNotFound if no grant exists.
	CheckAccess(ctx context.Context, id string, requester Address) (*AccessPermission, error)

	// GetIdentitiesByOwner lists identity ids owned by owner.
	GetIdentitiesByOwner(ctx context.Context, owner Address) ([]string, error)

	// GetTotalIdentities returns the number of registered identities.
	GetTotalIdentities(ctx context.Context) (uint32, error)

	// GetAdmin returns the registry admin account.
	GetAdmin(ctx context.Context) (Address, error)
}
