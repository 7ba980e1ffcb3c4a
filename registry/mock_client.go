package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
)

type accessKey struct {
	id      string
	grantee interfaces.Address
}

// MockRegistryClient provides a simple in-memory implementation of the
// IdentityReader interface for testing purposes without requiring a ledger
// connection. Access checks follow the contract: owners always see their
// identity, grantees only while their grant is active and unexpired.
type MockRegistryClient struct {
	mutex      sync.RWMutex
	clock      clock.Clock
	identities map[string]interfaces.IdentityRecord
	access     map[accessKey]interfaces.AccessPermission
	admin      interfaces.Address
}

// NewMockRegistryClient creates a new mock registry client with empty initial
// state. Grant expiry is checked against clk.
func NewMockRegistryClient(clk clock.Clock) *MockRegistryClient {
	return &MockRegistryClient{
		clock:      clk,
		identities: make(map[string]interfaces.IdentityRecord),
		access:     make(map[accessKey]interfaces.AccessPermission),
	}
}

// SetAdmin sets the admin returned by GetAdmin.
func (m *MockRegistryClient) SetAdmin(admin interfaces.Address) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.admin = admin
}

// PutIdentity stores or replaces an identity record.
func (m *MockRegistryClient) PutIdentity(id string, record interfaces.IdentityRecord) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.identities[id] = record
}

// PutAccess stores or replaces an access grant.
func (m *MockRegistryClient) PutAccess(id string, permission interfaces.AccessPermission) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.access[accessKey{id: id, grantee: permission.GrantedTo}] = permission
}

func (m *MockRegistryClient) activeGrant(id string, requester interfaces.Address) (interfaces.AccessPermission, bool) {
	permission, ok := m.access[accessKey{id: id, grantee: requester}]
	if !ok || !permission.IsActive {
		return permission, false
	}
	return permission, uint64(m.clock.Now().Unix()) <= permission.ExpiresAt
}

// GetIdentity returns the record if requester is its owner or holds an active grant.
func (m *MockRegistryClient) GetIdentity(ctx context.Context, id string, requester interfaces.Address) (*interfaces.IdentityRecord, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	record, ok := m.identities[id]
	if !ok {
		return nil, interfaces.ErrIdentityNotFound
	}
	if record.Owner == requester {
		return &record, nil
	}
	if _, ok := m.activeGrant(id, requester); ok {
		return &record, nil
	}
	return nil, interfaces.ErrIdentityNotFound
}

func (m *MockRegistryClient) CheckAccess(ctx context.Context, id string, requester interfaces.Address) (*interfaces.AccessPermission, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	permission, ok := m.activeGrant(id, requester)
	if !ok {
		return nil, interfaces.ErrAccessNotFound
	}
	return &permission, nil
}

// GetIdentitiesByOwner returns the ids owned by owner in lexical order.
func (m *MockRegistryClient) GetIdentitiesByOwner(ctx context.Context, owner interfaces.Address) ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	ids := []string{}
	for id, record := range m.identities {
		if record.Owner == owner {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *MockRegistryClient) GetTotalIdentities(ctx context.Context) (uint32, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return uint32(len(m.identities)), nil
}

func (m *MockRegistryClient) GetAdmin(ctx context.Context) (interfaces.Address, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.admin, nil
}

var _ interfaces.IdentityReader = (*MockRegistryClient)(nil)
