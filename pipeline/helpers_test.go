package pipeline

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/minhleeee123/stellar-digital-identity/endpoint"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Unix(1_700_000_000, 0)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClock() *clock.Mock {
	clk := clock.NewMock()
	clk.Set(testNow)
	return clk
}

func testContract(t *testing.T) interfaces.ContractID {
	t.Helper()
	id, err := strkey.Encode(strkey.VersionByteContract, bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	return interfaces.ContractID(id)
}

func testInvocation(t *testing.T, function string) interfaces.Invocation {
	t.Helper()
	id := xdr.ScString("DID001")
	return interfaces.NewInvocation(testContract(t), function, xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &id})
}

func mustBase64(t *testing.T, v any) string {
	t.Helper()
	s, err := xdr.MarshalBase64(v)
	require.NoError(t, err)
	return s
}

func simulateOK(t *testing.T, ret *xdr.ScVal) *interfaces.SimulateResponse {
	t.Helper()
	value := xdr.ScVal{Type: xdr.ScValTypeScvVoid}
	if ret != nil {
		value = *ret
	}
	return &interfaces.SimulateResponse{
		TransactionData: mustBase64(t, xdr.SorobanTransactionData{ResourceFee: 58181}),
		MinResourceFee:  "58181",
		Results:         []interfaces.SimulateResult{{XDR: mustBase64(t, value)}},
		LatestLedger:    1000,
	}
}

func fundAccount(ep *endpoint.MockEndpoint, kp *keypair.Full, sequence int64) {
	ep.On("GetAccount", mock.Anything, interfaces.Address(kp.Address())).
		Return(&interfaces.AccountInfo{Address: interfaces.Address(kp.Address()), Sequence: sequence}, nil)
}

type fakeSleeper struct {
	mu    sync.Mutex
	slept []time.Duration
}

func (f *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slept = append(f.slept, d)
	return nil
}

func (f *fakeSleeper) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.slept)
}

func (f *fakeSleeper) Total() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total time.Duration
	for _, d := range f.slept {
		total += d
	}
	return total
}

func newTestPipeline(t *testing.T, ep interfaces.Endpoint) (*Pipeline, *fakeSleeper) {
	t.Helper()
	sleeper := &fakeSleeper{}
	p, err := New(ep, DefaultConfig(), testLogger(), WithClock(testClock()), WithSleep(sleeper.Sleep))
	require.NoError(t, err)
	return p, sleeper
}

func newTestBuilder(ep interfaces.Endpoint) *Builder {
	return NewBuilder(ep, DefaultConfig(), testClock())
}
