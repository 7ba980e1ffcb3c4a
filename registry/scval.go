package registry

import (
	"fmt"

	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/xdr"
)

func stringVal(s string) xdr.ScVal {
	v := xdr.ScString(s)
	return xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &v}
}

func bytesVal(b []byte) xdr.ScVal {
	v := xdr.ScBytes(b)
	return xdr.ScVal{Type: xdr.ScValTypeScvBytes, Bytes: &v}
}

func u32Val(n uint32) xdr.ScVal {
	v := xdr.Uint32(n)
	return xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &v}
}

func u64Val(n uint64) xdr.ScVal {
	v := xdr.Uint64(n)
	return xdr.ScVal{Type: xdr.ScValTypeScvU64, U64: &v}
}

func isVoid(v xdr.ScVal) bool {
	return v.Type == xdr.ScValTypeScvVoid
}

func decodeU32(v xdr.ScVal) (uint32, error) {
	if v.Type != xdr.ScValTypeScvU32 || v.U32 == nil {
		return 0, fmt.Errorf("expected u32, got %v", v.Type)
	}
	return uint32(*v.U32), nil
}

func decodeU64(v xdr.ScVal) (uint64, error) {
	if v.Type != xdr.ScValTypeScvU64 || v.U64 == nil {
		return 0, fmt.Errorf("expected u64, got %v", v.Type)
	}
	return uint64(*v.U64), nil
}

func decodeBool(v xdr.ScVal) (bool, error) {
	if v.Type != xdr.ScValTypeScvBool || v.B == nil {
		return false, fmt.Errorf("expected bool, got %v", v.Type)
	}
	return *v.B, nil
}

func decodeString(v xdr.ScVal) (string, error) {
	switch {
	case v.Type == xdr.ScValTypeScvString && v.Str != nil:
		return string(*v.Str), nil
	case v.Type == xdr.ScValTypeScvSymbol && v.Sym != nil:
		return string(*v.Sym), nil
	default:
		return "", fmt.Errorf("expected string, got %v", v.Type)
	}
}

func decodeAddress(v xdr.ScVal) (interfaces.Address, error) {
	if v.Type != xdr.ScValTypeScvAddress || v.Address == nil {
		return "", fmt.Errorf("expected address, got %v", v.Type)
	}
	return interfaces.AddressFromScAddress(*v.Address)
}

func decodeDocumentHash(v xdr.ScVal) (interfaces.DocumentHash, error) {
	if v.Type != xdr.ScValTypeScvBytes || v.Bytes == nil {
		return interfaces.DocumentHash{}, fmt.Errorf("expected bytes, got %v", v.Type)
	}
	return interfaces.DocumentHashFromBytes(*v.Bytes)
}

func decodeStringVec(v xdr.ScVal) ([]string, error) {
	if v.Type != xdr.ScValTypeScvVec || v.Vec == nil || *v.Vec == nil {
		return nil, fmt.Errorf("expected vec, got %v", v.Type)
	}

	vec := **v.Vec
	out := make([]string, 0, len(vec))
	for i, item := range vec {
		s, err := decodeString(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// structFields indexes a contract struct, encoded as a map keyed by field
// symbol.
func structFields(v xdr.ScVal) (map[string]xdr.ScVal, error) {
	if v.Type != xdr.ScValTypeScvMap || v.Map == nil || *v.Map == nil {
		return nil, fmt.Errorf("expected map, got %v", v.Type)
	}

	fields := make(map[string]xdr.ScVal, len(**v.Map))
	for _, entry := range **v.Map {
		key, err := decodeString(entry.Key)
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		fields[key] = entry.Val
	}
	return fields, nil
}

type fieldDecoder struct {
	fields map[string]xdr.ScVal
	err    error
}

func (d *fieldDecoder) get(name string) (xdr.ScVal, bool) {
	if d.err != nil {
		return xdr.ScVal{}, false
	}
	v, ok := d.fields[name]
	if !ok {
		d.err = fmt.Errorf("missing field %s", name)
	}
	return v, ok
}

func (d *fieldDecoder) wrap(name string, err error) {
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("field %s: %w", name, err)
	}
}

func (d *fieldDecoder) address(name string) (out interfaces.Address) {
	if v, ok := d.get(name); ok {
		var err error
		out, err = decodeAddress(v)
		d.wrap(name, err)
	}
	return out
}

func (d *fieldDecoder) str(name string) (out string) {
	if v, ok := d.get(name); ok {
		var err error
		out, err = decodeString(v)
		d.wrap(name, err)
	}
	return out
}

func (d *fieldDecoder) u32(name string) (out uint32) {
	if v, ok := d.get(name); ok {
		var err error
		out, err = decodeU32(v)
		d.wrap(name, err)
	}
	return out
}

func (d *fieldDecoder) u64(name string) (out uint64) {
	if v, ok := d.get(name); ok {
		var err error
		out, err = decodeU64(v)
		d.wrap(name, err)
	}
	return out
}

func (d *fieldDecoder) boolean(name string) (out bool) {
	if v, ok := d.get(name); ok {
		var err error
		out, err = decodeBool(v)
		d.wrap(name, err)
	}
	return out
}

func (d *fieldDecoder) documentHash(name string) (out interfaces.DocumentHash) {
	if v, ok := d.get(name); ok {
		var err error
		out, err = decodeDocumentHash(v)
		d.wrap(name, err)
	}
	return out
}

// DecodeIdentityRecord decodes the Option<IdentityData> returned by
// get_identity. None decodes to interfaces.ErrIdentityNotFound.
func DecodeIdentityRecord(v xdr.ScVal) (*interfaces.IdentityRecord, error) {
	if isVoid(v) {
		return nil, interfaces.ErrIdentityNotFound
	}

	fields, err := structFields(v)
	if err != nil {
		return nil, fmt.Errorf("could not decode identity record: %w", err)
	}

	d := &fieldDecoder{fields: fields}
	record := &interfaces.IdentityRecord{
		Owner:             d.address("owner"),
		FullName:          d.str("full_name"),
		Email:             d.str("email"),
		DocumentHash:      d.documentHash("document_hash"),
		IsActive:          d.boolean("is_active"),
		VerificationLevel: interfaces.VerificationLevel(d.u32("verification_level")),
		CreatedAt:         d.u64("created_at"),
		UpdatedAt:         d.u64("updated_at"),
	}
	if d.err != nil {
		return nil, fmt.Errorf("could not decode identity record: %w", d.err)
	}
	return record, nil
}

// DecodeAccessPermission decodes the Option<AccessPermission> returned by
// check_access. None decodes to interfaces.ErrAccessNotFound.
func DecodeAccessPermission(v xdr.ScVal) (*interfaces.AccessPermission, error) {
	if isVoid(v) {
		return nil, interfaces.ErrAccessNotFound
	}

	fields, err := structFields(v)
	if err != nil {
		return nil, fmt.Errorf("could not decode access permission: %w", err)
	}

	d := &fieldDecoder{fields: fields}
	permission := &interfaces.AccessPermission{
		GrantedTo:      d.address("granted_to"),
		PermissionType: interfaces.Permission(d.u32("permission_type")),
		ExpiresAt:      d.u64("expires_at"),
		IsActive:       d.boolean("is_active"),
	}
	if d.err != nil {
		return nil, fmt.Errorf("could not decode access permission: %w", d.err)
	}
	return permission, nil
}
