package endpoint

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/flashbots/go-utils/rpcclient"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/xdr"
)

const (
	methodGetLedgerEntries    = "getLedgerEntries"
	methodSimulateTransaction = "simulateTransaction"
	methodSendTransaction     = "sendTransaction"
	methodGetTransaction      = "getTransaction"
)

// Client talks to a Soroban RPC server.
type Client struct {
	rpc rpcclient.RPCClient
	log *slog.Logger
}

// NewClient creates a client for the RPC server at url. A nil httpClient uses
// http.DefaultClient.
func NewClient(url string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		rpc: rpcclient.NewClientWithOpts(url, &rpcclient.RPCClientOpts{
			HTTPClient: httpClient,
		}),
		log: log,
	}
}

// call sends params as a single named-parameter object, which Soroban RPC
// requires; CallFor would wrap them in an array.
func (c *Client) call(ctx context.Context, out any, method string, params map[string]any) error {
	resp, err := c.rpc.CallRaw(ctx, rpcclient.NewRequestWithObjectParam(0, method, params))
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return resp.Error
	}
	return resp.GetObject(out)
}

type ledgerEntry struct {
	Key                   string `json:"key"`
	XDR                   string `json:"xdr"`
	LastModifiedLedgerSeq uint32 `json:"lastModifiedLedgerSeq"`
}

type getLedgerEntriesResponse struct {
	Entries      []ledgerEntry `json:"entries"`
	LatestLedger uint32        `json:"latestLedger"`
}

// GetAccount looks up the account ledger entry of address.
func (c *Client) GetAccount(ctx context.Context, address interfaces.Address) (*interfaces.AccountInfo, error) {
	accountID, err := xdr.AddressToAccountId(address.String())
	if err != nil {
		return nil, fmt.Errorf("invalid account address %q: %w", address, err)
	}

	key, err := xdr.MarshalBase64(xdr.LedgerKey{
		Type:    xdr.LedgerEntryTypeAccount,
		Account: &xdr.LedgerKeyAccount{AccountId: accountID},
	})
	if err != nil {
		return nil, fmt.Errorf("could not encode ledger key: %w", err)
	}

	var resp getLedgerEntriesResponse
	err = c.call(ctx, &resp, methodGetLedgerEntries, map[string]any{
		"keys": []string{key},
	})
	if err != nil {
		return nil, fmt.Errorf("could not get account %s: %w", address, err)
	}

	if len(resp.Entries) == 0 {
		return nil, &interfaces.AccountNotFoundError{Address: address}
	}

	var data xdr.LedgerEntryData
	if err := xdr.SafeUnmarshalBase64(resp.Entries[0].XDR, &data); err != nil {
		return nil, &interfaces.DecodeError{Kind: interfaces.DecodeKindResponse, Err: err}
	}

	account, ok := data.GetAccount()
	if !ok {
		return nil, &interfaces.DecodeError{
			Kind: interfaces.DecodeKindResponse,
			Err:  fmt.Errorf("ledger entry for %s is %v, not an account", address, data.Type),
		}
	}

	return &interfaces.AccountInfo{
		Address:  address,
		Sequence: int64(account.SeqNum),
	}, nil
}

// SimulateTransaction dry-runs the envelope. A contract-level rejection is
// reported in the response Error field, not as a Go error.
func (c *Client) SimulateTransaction(ctx context.Context, envelopeXDR string) (*interfaces.SimulateResponse, error) {
	var resp interfaces.SimulateResponse
	err := c.call(ctx, &resp, methodSimulateTransaction, map[string]any{
		"transaction": envelopeXDR,
	})
	if err != nil {
		return nil, fmt.Errorf("could not simulate transaction: %w", err)
	}
	return &resp, nil
}

// SendTransaction submits a signed envelope. For ERROR responses the result
// code is decoded into ResultCode when possible.
func (c *Client) SendTransaction(ctx context.Context, envelopeXDR string) (*interfaces.SendResponse, error) {
	var resp interfaces.SendResponse
	err := c.call(ctx, &resp, methodSendTransaction, map[string]any{
		"transaction": envelopeXDR,
	})
	if err != nil {
		return nil, fmt.Errorf("could not send transaction: %w", err)
	}

	if resp.ErrorResultXDR != "" {
		code, err := resultCode(resp.ErrorResultXDR)
		if err != nil {
			c.log.Warn("could not decode send error result", "hash", resp.Hash, "err", err)
		}
		resp.ResultCode = code
	}
	return &resp, nil
}

// GetTransaction returns the status of hash.
//
// A SUCCESS status whose result or meta payload cannot be decoded is returned
// as *interfaces.DecodeError with Kind DecodeKindSuccessPayload. A FAILED
// status never produces that tag.
func (c *Client) GetTransaction(ctx context.Context, hash string) (*interfaces.TransactionResponse, error) {
	var resp interfaces.TransactionResponse
	err := c.call(ctx, &resp, methodGetTransaction, map[string]any{
		"hash": hash,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get transaction %s: %w", hash, err)
	}

	switch resp.Status {
	case interfaces.TransactionStatusSuccess:
		if err := decodeSuccessPayload(&resp); err != nil {
			return nil, &interfaces.DecodeError{
				Hash: hash,
				Kind: interfaces.DecodeKindSuccessPayload,
				Err:  err,
			}
		}
	case interfaces.TransactionStatusFailed:
		code, err := resultCode(resp.ResultXDR)
		if err != nil {
			c.log.Warn("could not decode failed transaction result", "hash", hash, "err", err)
		}
		resp.ResultCode = code
	}

	return &resp, nil
}

func decodeSuccessPayload(resp *interfaces.TransactionResponse) error {
	if resp.ResultXDR != "" {
		var result xdr.TransactionResult
		if err := xdr.SafeUnmarshalBase64(resp.ResultXDR, &result); err != nil {
			return fmt.Errorf("result: %w", err)
		}
		resp.ResultCode = transactionCodeName(result)
	}

	if resp.ResultMetaXDR != "" {
		var meta xdr.TransactionMeta
		if err := xdr.SafeUnmarshalBase64(resp.ResultMetaXDR, &meta); err != nil {
			return fmt.Errorf("result meta: %w", err)
		}
		resp.ReturnValue = returnValue(meta)
	}
	return nil
}

func returnValue(meta xdr.TransactionMeta) *xdr.ScVal {
	if v3, ok := meta.GetV3(); ok && v3.SorobanMeta != nil {
		rv := v3.SorobanMeta.ReturnValue
		return &rv
	}
	if v4, ok := meta.GetV4(); ok && v4.SorobanMeta != nil {
		return v4.SorobanMeta.ReturnValue
	}
	return nil
}

func resultCode(resultXDR string) (string, error) {
	if resultXDR == "" {
		return "", nil
	}
	var result xdr.TransactionResult
	if err := xdr.SafeUnmarshalBase64(resultXDR, &result); err != nil {
		return "", err
	}
	return transactionCodeName(result), nil
}

// transactionCodeName renders a result code the way Stellar tooling does,
// e.g. "txBadSeq", and appends the first operation's code for txFailed.
func transactionCodeName(result xdr.TransactionResult) string {
	name := codeName(result.Result.Code.String(), "TransactionResultCode")

	ops, ok := result.Result.GetResults()
	if !ok || len(ops) == 0 {
		return name
	}
	if tr := ops[0].Tr; tr != nil && tr.InvokeHostFunctionResult != nil {
		op := codeName(tr.InvokeHostFunctionResult.Code.String(), "InvokeHostFunctionResultCode")
		if op != "invokeHostFunctionSuccess" {
			return name + ": " + op
		}
	}
	return name
}

func codeName(s, prefix string) string {
	s = strings.TrimPrefix(s, prefix)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
