package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/minhleeee123/stellar-digital-identity/endpoint"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	statusNotFound = &interfaces.TransactionResponse{Status: interfaces.TransactionStatusNotFound}
	statusSuccess  = &interfaces.TransactionResponse{Status: interfaces.TransactionStatusSuccess, Ledger: 1001}
	statusFailed   = &interfaces.TransactionResponse{Status: interfaces.TransactionStatusFailed, ResultCode: "txFailed", Ledger: 1001}
)

func newTestPoller(ep interfaces.Endpoint) (*Poller, *fakeSleeper) {
	sleeper := &fakeSleeper{}
	return NewPoller(ep, DefaultConfig(), sleeper.Sleep, testLogger()), sleeper
}

func pending(hash string) *SubmissionHandle {
	return &SubmissionHandle{Hash: hash, InitialStatus: interfaces.SendStatusPending}
}

func TestPoller_TerminalOnFirstQuery(t *testing.T) {
	for _, resp := range []*interfaces.TransactionResponse{statusSuccess, statusFailed} {
		t.Run(string(resp.Status), func(t *testing.T) {
			ep := &endpoint.MockEndpoint{}
			ep.On("GetTransaction", mock.Anything, "abc").Return(resp, nil)

			poller, sleeper := newTestPoller(ep)
			res, err := poller.Poll(context.Background(), pending("abc"))
			require.NoError(t, err)
			assert.Equal(t, 1, res.Attempts)
			assert.Equal(t, uint32(1001), res.Ledger)

			ep.AssertNumberOfCalls(t, "GetTransaction", 1)
			assert.Equal(t, 1, sleeper.Calls())
		})
	}
}

func TestPoller_InitialStatusTerminal(t *testing.T) {
	ep := &endpoint.MockEndpoint{}
	poller, sleeper := newTestPoller(ep)

	res, err := poller.Poll(context.Background(), &SubmissionHandle{Hash: "abc", InitialStatus: interfaces.SendStatusSuccess})
	require.NoError(t, err)
	assert.Equal(t, PollSuccess, res.State)
	assert.Equal(t, 0, res.Attempts)

	ep.AssertNotCalled(t, "GetTransaction", mock.Anything, mock.Anything)
	assert.Equal(t, 0, sleeper.Calls())
}

func TestPoller_NotFoundThenSuccess(t *testing.T) {
	ep := &endpoint.MockEndpoint{}
	ep.On("GetTransaction", mock.Anything, "abc").Return(statusNotFound, nil).Twice()
	ep.On("GetTransaction", mock.Anything, "abc").Return(statusSuccess, nil).Once()

	poller, sleeper := newTestPoller(ep)
	res, err := poller.Poll(context.Background(), pending("abc"))
	require.NoError(t, err)
	assert.Equal(t, PollSuccess, res.State)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, 3*time.Second, sleeper.Total())

	ep.AssertExpectations(t)
}

func TestPoller_Failed(t *testing.T) {
	ep := &endpoint.MockEndpoint{}
	ep.On("GetTransaction", mock.Anything, "abc").Return(statusNotFound, nil).Once()
	ep.On("GetTransaction", mock.Anything, "abc").Return(statusFailed, nil).Once()

	poller, _ := newTestPoller(ep)
	res, err := poller.Poll(context.Background(), pending("abc"))
	require.NoError(t, err)
	assert.Equal(t, PollFailed, res.State)
	assert.Equal(t, "txFailed", res.Reason)
	assert.Equal(t, 2, res.Attempts)
}

func TestPoller_Timeout(t *testing.T) {
	ep := &endpoint.MockEndpoint{}
	ep.On("GetTransaction", mock.Anything, "abc").Return(statusNotFound, nil)

	poller, sleeper := newTestPoller(ep)
	res, err := poller.Poll(context.Background(), pending("abc"))
	require.NoError(t, err)
	assert.Equal(t, PollTimeout, res.State)
	assert.Equal(t, 30, res.Attempts)
	assert.Equal(t, 30*time.Second, sleeper.Total())

	ep.AssertNumberOfCalls(t, "GetTransaction", 30)
}

func TestPoller_Cancelled(t *testing.T) {
	ep := &endpoint.MockEndpoint{}
	ctx, cancel := context.WithCancel(context.Background())
	ep.On("GetTransaction", mock.Anything, "abc").Return(statusNotFound, nil).Run(func(mock.Arguments) {
		cancel()
	})

	poller, _ := newTestPoller(ep)
	res, err := poller.Poll(ctx, pending("abc"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, res.Attempts)
}

func TestPoller_DecodeErrorPassesThrough(t *testing.T) {
	ambiguous := &interfaces.DecodeError{Hash: "abc", Kind: interfaces.DecodeKindSuccessPayload}
	ep := &endpoint.MockEndpoint{}
	ep.On("GetTransaction", mock.Anything, "abc").Return(nil, ambiguous)

	poller, _ := newTestPoller(ep)
	_, err := poller.Poll(context.Background(), pending("abc"))
	assert.Same(t, ambiguous, err)
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, SleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, SleepContext(ctx, time.Hour), context.Canceled)
}
