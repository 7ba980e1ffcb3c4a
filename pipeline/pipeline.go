package pipeline

import (
	"context"
	"log/slog"

	"github.com/benbjohnson/clock"
	"github.com/minhleeee123/stellar-digital-identity/cryptoutils"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/xdr"
)

type options struct {
	clock clock.Clock
	sleep SleepFunc
}

type Option func(*options)

// WithClock sets the clock used for validity windows.
func WithClock(clk clock.Clock) Option {
	return func(o *options) { o.clock = clk }
}

// WithSleep sets the wait used between status queries.
func WithSleep(sleep SleepFunc) Option {
	return func(o *options) { o.sleep = sleep }
}

// Pipeline runs contract writes and reads against one endpoint.
type Pipeline struct {
	builder   *Builder
	simulator *Simulator
	signer    *Signer
	submitter *Submitter
	poller    *Poller
	query     *QueryExecutor

	log *slog.Logger
}

// New validates cfg and assembles a pipeline over endpoint. Without options it
// uses the wall clock and SleepContext between status queries.
func New(endpoint interfaces.Endpoint, cfg Config, log *slog.Logger, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{clock: clock.New(), sleep: SleepContext}
	for _, opt := range opts {
		opt(&o)
	}

	builder := NewBuilder(endpoint, cfg, o.clock)
	simulator := NewSimulator(endpoint, log)

	return &Pipeline{
		builder:   builder,
		simulator: simulator,
		signer:    NewSigner(cfg.NetworkPassphrase),
		submitter: NewSubmitter(endpoint),
		poller:    NewPoller(endpoint, cfg, o.sleep, log),
		query:     NewQueryExecutor(builder, simulator),
		log:       log,
	}, nil
}

// Invoke builds, simulates, signs, submits and confirms inv with the account
// of secret as source.
//
// Errors raised up to and including submission mean the transaction was not
// accepted by the ledger. Errors raised while polling leave the
// transaction state unknown, as does an Outcome with CertaintyUnknown.
func (p *Pipeline) Invoke(ctx context.Context, secret string, inv interfaces.Invocation) (Outcome, error) {
	addr, err := cryptoutils.AddressForSecret(secret)
	if err != nil {
		return Classify(PollResult{}, &interfaces.SigningError{Reason: "malformed key material", Err: err})
	}
	source := interfaces.Address(addr)
	log := p.log.With("function", inv.Function(), "source", source)

	unsigned, err := p.builder.Build(ctx, source, inv)
	if err != nil {
		log.Debug("could not build transaction", "err", err)
		return Classify(PollResult{}, err)
	}
	log.Debug("built transaction", "sequence", unsigned.Sequence, "validUntil", unsigned.ValidUntil)

	prepared, _, err := p.simulator.Prepare(ctx, unsigned)
	if err != nil {
		log.Debug("simulation rejected transaction", "err", err)
		return Classify(PollResult{}, err)
	}

	signed, err := p.signer.Sign(prepared, secret)
	if err != nil {
		return Classify(PollResult{}, err)
	}
	log = log.With("hash", signed.Hash)

	handle, err := p.submitter.Submit(ctx, signed)
	if err != nil {
		log.Debug("submission rejected", "err", err)
		return Classify(PollResult{Hash: signed.Hash}, err)
	}
	log.Debug("submitted transaction", "status", handle.InitialStatus)

	res, pollErr := p.poller.Poll(ctx, handle)
	outcome, err := Classify(res, pollErr)
	if err != nil {
		return outcome, err
	}

	switch outcome.Kind {
	case OutcomeSuccess:
		log.Info("transaction succeeded", "attempts", res.Attempts, "ledger", res.Ledger)
	case OutcomeFailed:
		log.Info("transaction failed", "reason", outcome.Reason)
	case OutcomeTimeout:
		log.Warn("transaction not confirmed", "attempts", outcome.AttemptsMade)
	case OutcomeAmbiguousSuccess:
		log.Warn("transaction outcome ambiguous", "note", outcome.Note, "err", pollErr)
	}
	return outcome, nil
}

// Query runs a read through simulation only. See QueryExecutor.Query.
func (p *Pipeline) Query(ctx context.Context, source *interfaces.Address, inv interfaces.Invocation) (xdr.ScVal, error) {
	return p.query.Query(ctx, source, inv)
}
