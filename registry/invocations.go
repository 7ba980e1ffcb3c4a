package registry

import (
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
)

// Contract entry points.
const (
	FnInitialize           = "initialize"
	FnRegisterIdentity     = "register_identity"
	FnUpdateIdentity       = "update_identity"
	FnGetIdentity          = "get_identity"
	FnVerifyIdentity       = "verify_identity"
	FnGrantAccess          = "grant_access"
	FnRevokeAccess         = "revoke_access"
	FnDeactivateIdentity   = "deactivate_identity"
	FnActivateIdentity     = "activate_identity"
	FnGetTotalIdentities   = "get_total_identities"
	FnGetAdmin             = "get_admin"
	FnCheckAccess          = "check_access"
	FnGetIdentitiesByOwner = "get_identities_by_owner"
)

func InitializeInvocation(contract interfaces.ContractID, admin interfaces.Address) (interfaces.Invocation, error) {
	adminVal, err := admin.ScVal()
	if err != nil {
		return interfaces.Invocation{}, err
	}
	return interfaces.NewInvocation(contract, FnInitialize, adminVal), nil
}

func RegisterIdentityInvocation(contract interfaces.ContractID, id string, owner interfaces.Address, fullName, email string, documentHash interfaces.DocumentHash) (interfaces.Invocation, error) {
	ownerVal, err := owner.ScVal()
	if err != nil {
		return interfaces.Invocation{}, err
	}
	return interfaces.NewInvocation(contract, FnRegisterIdentity,
		stringVal(id),
		ownerVal,
		stringVal(fullName),
		stringVal(email),
		bytesVal(documentHash.Bytes()),
	), nil
}

func UpdateIdentityInvocation(contract interfaces.ContractID, id, fullName, email string, documentHash interfaces.DocumentHash) interfaces.Invocation {
	return interfaces.NewInvocation(contract, FnUpdateIdentity,
		stringVal(id),
		stringVal(fullName),
		stringVal(email),
		bytesVal(documentHash.Bytes()),
	)
}

func GetIdentityInvocation(contract interfaces.ContractID, id string, requester interfaces.Address) (interfaces.Invocation, error) {
	requesterVal, err := requester.ScVal()
	if err != nil {
		return interfaces.Invocation{}, err
	}
	return interfaces.NewInvocation(contract, FnGetIdentity, stringVal(id), requesterVal), nil
}

func VerifyIdentityInvocation(contract interfaces.ContractID, id string, level interfaces.VerificationLevel) interfaces.Invocation {
	return interfaces.NewInvocation(contract, FnVerifyIdentity, stringVal(id), u32Val(uint32(level)))
}

func GrantAccessInvocation(contract interfaces.ContractID, id string, grantee interfaces.Address, permission interfaces.Permission, durationSeconds uint64) (interfaces.Invocation, error) {
	granteeVal, err := grantee.ScVal()
	if err != nil {
		return interfaces.Invocation{}, err
	}
	return interfaces.NewInvocation(contract, FnGrantAccess,
		stringVal(id),
		granteeVal,
		u32Val(uint32(permission)),
		u64Val(durationSeconds),
	), nil
}

func RevokeAccessInvocation(contract interfaces.ContractID, id string, grantee interfaces.Address) (interfaces.Invocation, error) {
	granteeVal, err := grantee.ScVal()
	if err != nil {
		return interfaces.Invocation{}, err
	}
	return interfaces.NewInvocation(contract, FnRevokeAccess, stringVal(id), granteeVal), nil
}

func DeactivateIdentityInvocation(contract interfaces.ContractID, id string) interfaces.Invocation {
	return interfaces.NewInvocation(contract, FnDeactivateIdentity, stringVal(id))
}

func ActivateIdentityInvocation(contract interfaces.ContractID, id string) interfaces.Invocation {
	return interfaces.NewInvocation(contract, FnActivateIdentity, stringVal(id))
}

func GetTotalIdentitiesInvocation(contract interfaces.ContractID) interfaces.Invocation {
	return interfaces.NewInvocation(contract, FnGetTotalIdentities)
}

func GetAdminInvocation(contract interfaces.ContractID) interfaces.Invocation {
	return interfaces.NewInvocation(contract, FnGetAdmin)
}

func CheckAccessInvocation(contract interfaces.ContractID, id string, requester interfaces.Address) (interfaces.Invocation, error) {
	requesterVal, err := requester.ScVal()
	if err != nil {
		return interfaces.Invocation{}, err
	}
	return interfaces.NewInvocation(contract, FnCheckAccess, stringVal(id), requesterVal), nil
}

func GetIdentitiesByOwnerInvocation(contract interfaces.ContractID, owner interfaces.Address) (interfaces.Invocation, error) {
	ownerVal, err := owner.ScVal()
	if err != nil {
		return interfaces.Invocation{}, err
	}
	return interfaces.NewInvocation(contract, FnGetIdentitiesByOwner, ownerVal), nil
}

