package pipeline

import (
	"context"
	"fmt"

	"github.com/minhleeee123/stellar-digital-identity/interfaces"
)

// SubmissionHandle correlates a submitted transaction with its status queries.
type SubmissionHandle struct {
	Hash          string
	InitialStatus interfaces.SendStatus
}

// Terminal reports whether the initial status needs no polling.
func (h *SubmissionHandle) Terminal() bool {
	return h.InitialStatus == interfaces.SendStatusSuccess
}

// Submitter sends signed transactions.
type Submitter struct {
	endpoint interfaces.Endpoint
}

// NewSubmitter creates a submitter for endpoint.
func NewSubmitter(endpoint interfaces.Endpoint) *Submitter {
	return &Submitter{endpoint: endpoint}
}

// Submit sends tx exactly once. A second call returns
// interfaces.ErrAlreadySubmitted without contacting the endpoint. Ledger
// rejections are returned as *interfaces.SubmissionError and are not retried:
// a retry needs a rebuilt transaction with a fresh sequence number.
func (s *Submitter) Submit(ctx context.Context, tx *SignedTransaction) (*SubmissionHandle, error) {
	if tx.submitted.Swap(true) {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrAlreadySubmitted, tx.Hash)
	}

	resp, err := s.endpoint.SendTransaction(ctx, tx.Envelope())
	if err != nil {
		return nil, fmt.Errorf("could not submit transaction %s: %w", tx.Hash, err)
	}

	hash := resp.Hash
	if hash == "" {
		hash = tx.Hash
	}

	switch resp.Status {
	case interfaces.SendStatusPending, interfaces.SendStatusDuplicate, interfaces.SendStatusSuccess:
		return &SubmissionHandle{Hash: hash, InitialStatus: resp.Status}, nil
	default:
		return nil, &interfaces.SubmissionError{
			Hash:       hash,
			Status:     resp.Status,
			ResultCode: resp.ResultCode,
		}
	}
}
