package registry

import (
	"context"

	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockRegistry mocks the IdentityReader interface
type MockRegistry struct {
	mock.Mock
}

// GetIdentity mocks the GetIdentity method
func (m *MockRegistry) GetIdentity(ctx context.Context, id string, requester interfaces.Address) (*interfaces.IdentityRecord, error) {
	args := m.Called(ctx, id, requester)
	record, _ := args.Get(0).(*interfaces.IdentityRecord)
	return record, args.Error(1)
}

// CheckAccess mocks the CheckAccess method
func (m *MockRegistry) CheckAccess(ctx context.Context, id string, requester interfaces.Address) (*interfaces.AccessPermission, error) {
	args := m.Called(ctx, id, requester)
	permission, _ := args.Get(0).(*interfaces.AccessPermission)
	return permission, args.Error(1)
}

// GetIdentitiesByOwner mocks the GetIdentitiesByOwner method
func (m *MockRegistry) GetIdentitiesByOwner(ctx context.Context, owner interfaces.Address) ([]string, error) {
	args := m.Called(ctx, owner)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

// GetTotalIdentities mocks the GetTotalIdentities method
func (m *MockRegistry) GetTotalIdentities(ctx context.Context) (uint32, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint32), args.Error(1)
}

// GetAdmin mocks the GetAdmin method
func (m *MockRegistry) GetAdmin(ctx context.Context) (interfaces.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(interfaces.Address), args.Error(1)
}

var _ interfaces.IdentityReader = (*MockRegistry)(nil)
