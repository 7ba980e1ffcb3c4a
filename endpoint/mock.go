package endpoint

import (
	"context"

	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockEndpoint mocks the Endpoint interface
type MockEndpoint struct {
	mock.Mock
}

// GetAccount mocks the GetAccount method
func (m *MockEndpoint) GetAccount(ctx context.Context, address interfaces.Address) (*interfaces.AccountInfo, error) {
	args := m.Called(ctx, address)
	info, _ := args.Get(0).(*interfaces.AccountInfo)
	return info, args.Error(1)
}

// SimulateTransaction mocks the SimulateTransaction method
func (m *MockEndpoint) SimulateTransaction(ctx context.Context, envelopeXDR string) (*interfaces.SimulateResponse, error) {
	args := m.Called(ctx, envelopeXDR)
	resp, _ := args.Get(0).(*interfaces.SimulateResponse)
	return resp, args.Error(1)
}

// SendTransaction mocks the SendTransaction method
func (m *MockEndpoint) SendTransaction(ctx context.Context, envelopeXDR string) (*interfaces.SendResponse, error) {
	args := m.Called(ctx, envelopeXDR)
	resp, _ := args.Get(0).(*interfaces.SendResponse)
	return resp, args.Error(1)
}

// GetTransaction mocks the GetTransaction method
func (m *MockEndpoint) GetTransaction(ctx context.Context, hash string) (*interfaces.TransactionResponse, error) {
	args := m.Called(ctx, hash)
	resp, _ := args.Get(0).(*interfaces.TransactionResponse)
	return resp, args.Error(1)
}

var _ interfaces.Endpoint = (*MockEndpoint)(nil)
var _ interfaces.Endpoint = (*Client)(nil)
