package pipeline

import (
	"encoding/json"
	"errors"

	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// AmbiguousSuccessNote is attached to every OutcomeAmbiguousSuccess.
const AmbiguousSuccessNote = "submission likely succeeded; response payload could not be decoded"

type OutcomeKind string

const (
	OutcomeSuccess          OutcomeKind = "success"
	OutcomeFailed           OutcomeKind = "failed"
	OutcomeTimeout          OutcomeKind = "timeout"
	OutcomeAmbiguousSuccess OutcomeKind = "ambiguous_success"
)

// Certainty is what a caller may conclude from an outcome.
type Certainty string

const (
	CertaintySucceeded Certainty = "succeeded"
	CertaintyFailed    Certainty = "failed"
	CertaintyUnknown   Certainty = "unknown"
)

// Outcome is the terminal, normalized result of a write. Which fields are set
// depends on Kind:
//
//   - OutcomeSuccess: Hash, ReturnValue (may be nil)
//   - OutcomeFailed: Hash, Reason
//   - OutcomeTimeout: Hash, AttemptsMade
//   - OutcomeAmbiguousSuccess: Hash, Note
type Outcome struct {
	Kind         OutcomeKind
	Hash         string
	ReturnValue  *xdr.ScVal
	Reason       string
	AttemptsMade int
	Note         string
}

// Certainty maps the outcome to succeeded, failed or unknown.
func (o Outcome) Certainty() Certainty {
	switch o.Kind {
	case OutcomeSuccess:
		return CertaintySucceeded
	case OutcomeFailed:
		return CertaintyFailed
	default:
		return CertaintyUnknown
	}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind         OutcomeKind `json:"kind"`
		Certainty    Certainty   `json:"certainty"`
		Hash         string      `json:"hash"`
		ReturnValue  string      `json:"return_value,omitempty"`
		Reason       string      `json:"reason,omitempty"`
		AttemptsMade int         `json:"attempts_made,omitempty"`
		Note         string      `json:"note,omitempty"`
	}{
		Kind:         o.Kind,
		Certainty:    o.Certainty(),
		Hash:         o.Hash,
		Reason:       o.Reason,
		AttemptsMade: o.AttemptsMade,
		Note:         o.Note,
	}

	if o.ReturnValue != nil {
		encoded, err := xdr.MarshalBase64(*o.ReturnValue)
		if err != nil {
			return nil, err
		}
		out.ReturnValue = encoded
	}
	return json.Marshal(out)
}

// Classify maps a poll result, or any error raised on the way to it, to an
// Outcome.
//
// The only error turned into an outcome is a *interfaces.DecodeError tagged
// as ambiguous at the point of detection: getTransaction reported SUCCESS but
// its payload could not be decoded. Every other error is returned unchanged.
func Classify(res PollResult, err error) (Outcome, error) {
	if err != nil {
		var decodeErr *interfaces.DecodeError
		if errors.As(err, &decodeErr) && decodeErr.Ambiguous() {
			hash := decodeErr.Hash
			if hash == "" {
				hash = res.Hash
			}
			return Outcome{Kind: OutcomeAmbiguousSuccess, Hash: hash, Note: AmbiguousSuccessNote}, nil
		}
		return Outcome{}, err
	}

	switch res.State {
	case PollSuccess:
		return Outcome{Kind: OutcomeSuccess, Hash: res.Hash, ReturnValue: res.ReturnValue}, nil
	case PollFailed:
		return Outcome{Kind: OutcomeFailed, Hash: res.Hash, Reason: res.Reason}, nil
	default:
		return Outcome{Kind: OutcomeTimeout, Hash: res.Hash, AttemptsMade: res.Attempts}, nil
	}
}
