package interfaces

import (
	"bytes"
	"testing"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContractID(t *testing.T) ContractID {
	t.Helper()
	id, err := strkey.Encode(strkey.VersionByteContract, bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	return ContractID(id)
}

func TestAddress(t *testing.T) {
	kp := keypair.MustRandom()

	addr, err := NewAddress(kp.Address())
	require.NoError(t, err)
	require.NoError(t, addr.Validate())

	val, err := addr.ScVal()
	require.NoError(t, err)
	require.Equal(t, xdr.ScValTypeScvAddress, val.Type)

	back, err := AddressFromScAddress(*val.Address)
	require.NoError(t, err)
	assert.Equal(t, addr, back)

	for _, bad := range []string{"", "GABC", kp.Seed(), string(testContractID(t))} {
		_, err := NewAddress(bad)
		assert.Error(t, err, bad)
	}
}

func TestContractID(t *testing.T) {
	id := testContractID(t)

	parsed, err := NewContractID(string(id))
	require.NoError(t, err)

	scAddr, err := parsed.ScAddress()
	require.NoError(t, err)
	assert.Equal(t, xdr.ScAddressTypeScAddressTypeContract, scAddr.Type)

	back, err := AddressFromScAddress(scAddr)
	require.NoError(t, err)
	assert.Equal(t, string(id), back.String())

	_, err = NewContractID(keypair.MustRandom().Address())
	assert.Error(t, err)
}

func TestInvocation_Immutable(t *testing.T) {
	id := xdr.ScString("DID001")
	args := []xdr.ScVal{{Type: xdr.ScValTypeScvString, Str: &id}}
	inv := NewInvocation(testContractID(t), "deactivate_identity", args...)

	args[0] = xdr.ScVal{Type: xdr.ScValTypeScvVoid}
	got := inv.Args()
	assert.Equal(t, xdr.ScValTypeScvString, got[0].Type)

	got[0] = xdr.ScVal{Type: xdr.ScValTypeScvVoid}
	assert.Equal(t, xdr.ScValTypeScvString, inv.Args()[0].Type)

	hf, err := inv.HostFunction()
	require.NoError(t, err)
	assert.Equal(t, xdr.ScSymbol("deactivate_identity"), hf.InvokeContract.FunctionName)
	assert.Len(t, hf.InvokeContract.Args, 1)
}
