package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// SleepFunc waits for d or until ctx is done, returning ctx.Err() in the
// latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepContext is the wall-clock SleepFunc.
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// PollState is the terminal state reached by the poller.
type PollState int

const (
	PollSuccess PollState = iota
	PollFailed
	PollTimeout
)

func (s PollState) String() string {
	switch s {
	case PollSuccess:
		return "success"
	case PollFailed:
		return "failed"
	case PollTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("PollState(%d)", int(s))
	}
}

// PollResult is the terminal state of one submitted transaction.
type PollResult struct {
	Hash        string
	State       PollState
	Attempts    int
	Reason      string
	ReturnValue *xdr.ScVal
	Ledger      uint32
}

// Poller queries transaction status until a terminal state or the attempt
// bound. Interval and bound are fixed; there is no backoff.
type Poller struct {
	endpoint    interfaces.Endpoint
	interval    time.Duration
	maxAttempts int
	sleep       SleepFunc
	log         *slog.Logger
}

// NewPoller creates a poller that queries at most cfg.MaxAttempts times,
// waiting cfg.PollInterval through sleep before each query.
func NewPoller(endpoint interfaces.Endpoint, cfg Config, sleep SleepFunc, log *slog.Logger) *Poller {
	if sleep == nil {
		sleep = SleepContext
	}
	return &Poller{
		endpoint:    endpoint,
		interval:    cfg.PollInterval,
		maxAttempts: cfg.MaxAttempts,
		sleep:       sleep,
		log:         log,
	}
}

// Poll waits for h to reach SUCCESS or FAILED. Exhausting the bound is a
// PollTimeout result, not an error. Cancelling ctx abandons the poll locally;
// the submitted transaction may still commit.
//
// Errors from the endpoint are returned unchanged, so an ambiguous
// *interfaces.DecodeError reaches Classify intact.
func (p *Poller) Poll(ctx context.Context, h *SubmissionHandle) (PollResult, error) {
	res := PollResult{Hash: h.Hash}
	if h.Terminal() {
		res.State = PollSuccess
		return res, nil
	}

	for res.Attempts < p.maxAttempts {
		if err := p.sleep(ctx, p.interval); err != nil {
			return res, fmt.Errorf("abandoned polling %s after %d attempts: %w", h.Hash, res.Attempts, err)
		}

		resp, err := p.endpoint.GetTransaction(ctx, h.Hash)
		res.Attempts++
		if err != nil {
			return res, err
		}

		p.log.Debug("polled transaction", "hash", h.Hash, "attempt", res.Attempts, "status", resp.Status)

		switch resp.Status {
		case interfaces.TransactionStatusSuccess:
			res.State = PollSuccess
			res.ReturnValue = resp.ReturnValue
			res.Ledger = resp.Ledger
			return res, nil
		case interfaces.TransactionStatusFailed:
			res.State = PollFailed
			res.Reason = resp.ResultCode
			if res.Reason == "" {
				res.Reason = "transaction failed"
			}
			res.Ledger = resp.Ledger
			return res, nil
		case interfaces.TransactionStatusNotFound:
			continue
		default:
			return res, &interfaces.DecodeError{
				Hash: h.Hash,
				Kind: interfaces.DecodeKindResponse,
				Err:  fmt.Errorf("unknown transaction status %q", resp.Status),
			}
		}
	}

	res.State = PollTimeout
	return res, nil
}
