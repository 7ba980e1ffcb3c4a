package interfaces

import (
	"errors"
	"fmt"

	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Address represents a Stellar account address (strkey "G...").
type Address string

// NewAddress validates a strkey account address.
func NewAddress(addr string) (Address, error) {
	if !strkey.IsValidEd25519PublicKey(addr) {
		return "", fmt.Errorf("invalid account address %q", addr)
	}
	return Address(addr), nil
}

// String returns the strkey representation of the address.
func (a Address) String() string {
	return string(a)
}

// Validate checks the address has a valid strkey format.
func (a Address) Validate() error {
	_, err := NewAddress(string(a))
	return err
}

// ScAddress converts the address to its XDR contract-address form.
func (a Address) ScAddress() (xdr.ScAddress, error) {
	accountID, err := xdr.AddressToAccountId(string(a))
	if err != nil {
		return xdr.ScAddress{}, fmt.Errorf("invalid account address %q: %w", a, err)
	}
	return xdr.ScAddress{
		Type:      xdr.ScAddressTypeScAddressTypeAccount,
		AccountId: &accountID,
	}, nil
}

// ScVal converts the address to a contract argument.
func (a Address) ScVal() (xdr.ScVal, error) {
	scAddr, err := a.ScAddress()
	if err != nil {
		return xdr.ScVal{}, err
	}
	return xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &scAddr}, nil
}

// AddressFromScAddress converts an XDR address back to its strkey form.
// Contract addresses are returned in their "C..." form.
func AddressFromScAddress(scAddr xdr.ScAddress) (Address, error) {
	switch scAddr.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		if scAddr.AccountId == nil {
			return "", errors.New("account address without account id")
		}
		return Address(scAddr.AccountId.Address()), nil
	case xdr.ScAddressTypeScAddressTypeContract:
		if scAddr.ContractId == nil {
			return "", errors.New("contract address without contract id")
		}
		encoded, err := strkey.Encode(strkey.VersionByteContract, scAddr.ContractId[:])
		if err != nil {
			return "", fmt.Errorf("could not encode contract address: %w", err)
		}
		return Address(encoded), nil
	default:
		return "", fmt.Errorf("unsupported address type %v", scAddr.Type)
	}
}

// ContractID represents a Soroban contract address (strkey "C...").
type ContractID string

// NewContractID validates a strkey contract address.
func NewContractID(id string) (ContractID, error) {
	raw, err := strkey.Decode(strkey.VersionByteContract, id)
	if err != nil {
		return "", fmt.Errorf("invalid contract id %q: %w", id, err)
	}
	if len(raw) != 32 {
		return "", fmt.Errorf("invalid contract id %q: must decode to 32 bytes", id)
	}
	return ContractID(id), nil
}

// String returns the strkey representation of the contract id.
func (c ContractID) String() string {
	return string(c)
}

// ScAddress converts the contract id to its XDR contract-address form.
func (c ContractID) ScAddress() (xdr.ScAddress, error) {
	raw, err := strkey.Decode(strkey.VersionByteContract, string(c))
	if err != nil {
		return xdr.ScAddress{}, fmt.Errorf("invalid contract id %q: %w", c, err)
	}

	var contractID xdr.ContractId
	copy(contractID[:], raw)
	return xdr.ScAddress{
		Type:       xdr.ScAddressTypeScAddressTypeContract,
		ContractId: &contractID,
	}, nil
}

// Invocation is a call to one named contract entry point with typed arguments.
// It is immutable once built.
type Invocation struct {
	contract ContractID
	function string
	args     []xdr.ScVal
}

// NewInvocation creates an invocation of function on contract.
func NewInvocation(contract ContractID, function string, args ...xdr.ScVal) Invocation {
	copied := make([]xdr.ScVal, len(args))
	copy(copied, args)
	return Invocation{
		contract: contract,
		function: function,
		args:     copied,
	}
}

// Contract returns the invoked contract.
func (i Invocation) Contract() ContractID {
	return i.contract
}

// Function returns the entry point name.
func (i Invocation) Function() string {
	return i.function
}

// Args returns a copy of the ordered argument list.
func (i Invocation) Args() []xdr.ScVal {
	copied := make([]xdr.ScVal, len(i.args))
	copy(copied, i.args)
	return copied
}

// HostFunction converts the invocation to the XDR host function invoked by the
// ledger.
func (i Invocation) HostFunction() (xdr.HostFunction, error) {
	if i.function == "" {
		return xdr.HostFunction{}, errors.New("invocation has no function name")
	}

	contractAddr, err := i.contract.ScAddress()
	if err != nil {
		return xdr.HostFunction{}, err
	}

	return xdr.HostFunction{
		Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
		InvokeContract: &xdr.InvokeContractArgs{
			ContractAddress: contractAddr,
			FunctionName:    xdr.ScSymbol(i.function),
			Args:            i.Args(),
		},
	}, nil
}
