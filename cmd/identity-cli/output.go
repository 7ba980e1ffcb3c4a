package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/minhleeee123/stellar-digital-identity/pipeline"
	"github.com/minhleeee123/stellar-digital-identity/registry"
	"github.com/urfave/cli/v2"
)

// Exit codes of write commands.
const (
	exitFailed  = 1
	exitUnknown = 2
)

var (
	succeededColor = color.New(color.FgGreen, color.Bold)
	failedColor    = color.New(color.FgRed, color.Bold)
	unknownColor   = color.New(color.FgYellow, color.Bold)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printOutcome writes the outcome as JSON to out and a certainty line to
// status. The returned error carries the exit code for anything but success.
func printOutcome(out, status io.Writer, outcome pipeline.Outcome) error {
	if err := printJSON(out, outcome); err != nil {
		return err
	}

	switch outcome.Certainty() {
	case pipeline.CertaintySucceeded:
		succeededColor.Fprintf(status, "succeeded: %s\n", outcome.Hash)
		if applied, ok := registry.Applied(outcome); ok && !applied {
			unknownColor.Fprintln(status, "contract reported no change")
		}
		return nil
	case pipeline.CertaintyFailed:
		failedColor.Fprintf(status, "failed: %s (%s)\n", outcome.Hash, outcome.Reason)
		return cli.Exit("transaction failed", exitFailed)
	default:
		msg := fmt.Sprintf("unknown: %s (%s)", outcome.Hash, outcome.Kind)
		if outcome.Note != "" {
			msg += ": " + outcome.Note
		}
		unknownColor.Fprintln(status, msg)
		return cli.Exit("transaction state unknown; check the hash before retrying", exitUnknown)
	}
}
