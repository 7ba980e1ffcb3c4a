package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/minhleeee123/stellar-digital-identity/endpoint"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitter_SingleUse(t *testing.T) {
	ep := &endpoint.MockEndpoint{}
	ep.On("SendTransaction", mock.Anything, "ENV").
		Return(&interfaces.SendResponse{Status: interfaces.SendStatusPending, Hash: "abc"}, nil).Once()

	tx := &SignedTransaction{Hash: "abc", envelope: "ENV"}
	submitter := NewSubmitter(ep)

	handle, err := submitter.Submit(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, "abc", handle.Hash)
	assert.Equal(t, interfaces.SendStatusPending, handle.InitialStatus)
	assert.False(t, handle.Terminal())

	_, err = submitter.Submit(context.Background(), tx)
	assert.ErrorIs(t, err, interfaces.ErrAlreadySubmitted)

	ep.AssertNumberOfCalls(t, "SendTransaction", 1)
}

func TestSubmitter_Statuses(t *testing.T) {
	tests := []struct {
		name     string
		resp     *interfaces.SendResponse
		wantErr  bool
		wantCode string
	}{
		{name: "pending", resp: &interfaces.SendResponse{Status: interfaces.SendStatusPending}},
		{name: "duplicate", resp: &interfaces.SendResponse{Status: interfaces.SendStatusDuplicate}},
		{name: "bad sequence", resp: &interfaces.SendResponse{Status: interfaces.SendStatusError, ResultCode: "txBadSeq"}, wantErr: true, wantCode: "txBadSeq"},
		{name: "insufficient fee", resp: &interfaces.SendResponse{Status: interfaces.SendStatusError, ResultCode: "txInsufficientFee"}, wantErr: true, wantCode: "txInsufficientFee"},
		{name: "try again later", resp: &interfaces.SendResponse{Status: interfaces.SendStatusTryAgainLater}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := &endpoint.MockEndpoint{}
			ep.On("SendTransaction", mock.Anything, mock.Anything).Return(tt.resp, nil).Once()

			handle, err := NewSubmitter(ep).Submit(context.Background(), &SignedTransaction{Hash: "abc", envelope: "ENV"})
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "abc", handle.Hash)
				assert.Equal(t, tt.resp.Status, handle.InitialStatus)
				return
			}

			var subErr *interfaces.SubmissionError
			require.ErrorAs(t, err, &subErr)
			assert.Equal(t, "abc", subErr.Hash)
			assert.Equal(t, tt.resp.Status, subErr.Status)
			assert.Equal(t, tt.wantCode, subErr.ResultCode)
			ep.AssertNumberOfCalls(t, "SendTransaction", 1)
		})
	}
}

func TestSubmitter_TransportError(t *testing.T) {
	ep := &endpoint.MockEndpoint{}
	ep.On("SendTransaction", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := NewSubmitter(ep).Submit(context.Background(), &SignedTransaction{Hash: "abc", envelope: "ENV"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
