package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/minhleeee123/stellar-digital-identity/cmd/flags"
	"github.com/minhleeee123/stellar-digital-identity/interfaces"
	"github.com/minhleeee123/stellar-digital-identity/pipeline"
	"github.com/minhleeee123/stellar-digital-identity/registry"
	"github.com/urfave/cli/v2"
)

var flagSecret = &cli.StringFlag{
	Name:    "secret",
	EnvVars: []string{"IDENTITY_SECRET"},
	Usage:   "secret key (S...) of the signing account; prompted for when unset",
}

var (
	flagID = &cli.StringFlag{
		Name:     "id",
		Required: true,
		Usage:    "identity id",
	}
	flagOwner = &cli.StringFlag{
		Name:  "owner",
		Usage: "owner account (G...); defaults to the signing account",
	}
	flagName = &cli.StringFlag{
		Name:     "name",
		Required: true,
		Usage:    "full name",
	}
	flagEmail = &cli.StringFlag{
		Name:     "email",
		Required: true,
		Usage:    "email address",
	}
	flagDocHash = &cli.StringFlag{
		Name:     "doc-hash",
		Required: true,
		Usage:    "document hash, 64 hex characters",
	}
	flagLevel = &cli.UintFlag{
		Name:     "level",
		Required: true,
		Usage:    "verification level: 0 unverified, 1 basic, 2 standard, 3 premium",
	}
	flagGrantee = &cli.StringFlag{
		Name:     "grantee",
		Required: true,
		Usage:    "grantee account (G...)",
	}
	flagPermission = &cli.UintFlag{
		Name:  "permission",
		Value: uint(interfaces.PermissionRead),
		Usage: "permission: 1 read, 2 verify, 3 full",
	}
	flagDuration = &cli.Uint64Flag{
		Name:  "duration",
		Value: 86400,
		Usage: "grant duration in seconds",
	}
	flagRequester = &cli.StringFlag{
		Name:     "requester",
		Required: true,
		Usage:    "account (G...) the read is made as",
	}
	flagAccount = &cli.StringFlag{
		Name:     "account",
		Required: true,
		Usage:    "owner account (G...)",
	}
)

type writeFunc func(ctx context.Context, c *registry.Client, secret string, cCtx *cli.Context) (pipeline.Outcome, error)

type readFunc func(ctx context.Context, c *registry.Client, cCtx *cli.Context) (any, error)

// client is set up once per run by the app's Before hook.
var (
	client *registry.Client
	logger *slog.Logger
)

func writeCommand(name, usage string, cmdFlags []cli.Flag, fn writeFunc) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: cmdFlags,
		Action: func(cCtx *cli.Context) error {
			secret, err := readSecret(cCtx.String(flagSecret.Name), os.Stdin, os.Stderr)
			if err != nil {
				return err
			}

			outcome, err := fn(cCtx.Context, client, secret, cCtx)
			if err != nil {
				logger.Debug("write not completed", "command", name, "err", err)
				return err
			}
			return printOutcome(os.Stdout, os.Stderr, outcome)
		},
	}
}

func readCommand(name, usage string, cmdFlags []cli.Flag, fn readFunc) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: cmdFlags,
		Action: func(cCtx *cli.Context) error {
			result, err := fn(cCtx.Context, client, cCtx)
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, result)
		},
	}
}

func address(cCtx *cli.Context, flag *cli.StringFlag) (interfaces.Address, error) {
	return interfaces.NewAddress(cCtx.String(flag.Name))
}

var commands = []*cli.Command{
	writeCommand("initialize", "set the signing account as registry admin", nil,
		func(ctx context.Context, c *registry.Client, secret string, cCtx *cli.Context) (pipeline.Outcome, error) {
			return c.Initialize(ctx, secret)
		}),
	writeCommand("register", "register a new identity", []cli.Flag{flagID, flagOwner, flagName, flagEmail, flagDocHash},
		func(ctx context.Context, c *registry.Client, secret string, cCtx *cli.Context) (pipeline.Outcome, error) {
			return c.RegisterIdentity(ctx, secret, registry.RegisterIdentityRequest{
				ID:           cCtx.String(flagID.Name),
				Owner:        cCtx.String(flagOwner.Name),
				FullName:     cCtx.String(flagName.Name),
				Email:        cCtx.String(flagEmail.Name),
				DocumentHash: cCtx.String(flagDocHash.Name),
			})
		}),
	writeCommand("update", "update name, email and document hash of an identity", []cli.Flag{flagID, flagName, flagEmail, flagDocHash},
		func(ctx context.Context, c *registry.Client, secret string, cCtx *cli.Context) (pipeline.Outcome, error) {
			return c.UpdateIdentity(ctx, secret, registry.UpdateIdentityRequest{
				ID:           cCtx.String(flagID.Name),
				FullName:     cCtx.String(flagName.Name),
				Email:        cCtx.String(flagEmail.Name),
				DocumentHash: cCtx.String(flagDocHash.Name),
			})
		}),
	writeCommand("verify", "set the verification level of an identity (admin)", []cli.Flag{flagID, flagLevel},
		func(ctx context.Context, c *registry.Client, secret string, cCtx *cli.Context) (pipeline.Outcome, error) {
			return c.VerifyIdentity(ctx, secret, registry.VerifyIdentityRequest{
				ID:    cCtx.String(flagID.Name),
				Level: uint32(cCtx.Uint(flagLevel.Name)),
			})
		}),
	writeCommand("grant", "grant an account access to an identity", []cli.Flag{flagID, flagGrantee, flagPermission, flagDuration},
		func(ctx context.Context, c *registry.Client, secret string, cCtx *cli.Context) (pipeline.Outcome, error) {
			return c.GrantAccess(ctx, secret, registry.GrantAccessRequest{
				ID:              cCtx.String(flagID.Name),
				Grantee:         cCtx.String(flagGrantee.Name),
				Permission:      uint32(cCtx.Uint(flagPermission.Name)),
				DurationSeconds: cCtx.Uint64(flagDuration.Name),
			})
		}),
	writeCommand("revoke", "revoke an access grant", []cli.Flag{flagID, flagGrantee},
		func(ctx context.Context, c *registry.Client, secret string, cCtx *cli.Context) (pipeline.Outcome, error) {
			return c.RevokeAccess(ctx, secret, registry.RevokeAccessRequest{
				ID:      cCtx.String(flagID.Name),
				Grantee: cCtx.String(flagGrantee.Name),
			})
		}),
	writeCommand("deactivate", "deactivate an identity", []cli.Flag{flagID},
		func(ctx context.Context, c *registry.Client, secret string, cCtx *cli.Context) (pipeline.Outcome, error) {
			return c.DeactivateIdentity(ctx, secret, cCtx.String(flagID.Name))
		}),
	writeCommand("activate", "reactivate an identity", []cli.Flag{flagID},
		func(ctx context.Context, c *registry.Client, secret string, cCtx *cli.Context) (pipeline.Outcome, error) {
			return c.ActivateIdentity(ctx, secret, cCtx.String(flagID.Name))
		}),

	readCommand("get", "read an identity as requester", []cli.Flag{flagID, flagRequester},
		func(ctx context.Context, c *registry.Client, cCtx *cli.Context) (any, error) {
			requester, err := address(cCtx, flagRequester)
			if err != nil {
				return nil, err
			}
			return c.GetIdentity(ctx, cCtx.String(flagID.Name), requester)
		}),
	readCommand("check-access", "show the active grant of requester", []cli.Flag{flagID, flagRequester},
		func(ctx context.Context, c *registry.Client, cCtx *cli.Context) (any, error) {
			requester, err := address(cCtx, flagRequester)
			if err != nil {
				return nil, err
			}
			return c.CheckAccess(ctx, cCtx.String(flagID.Name), requester)
		}),
	readCommand("owned", "list identity ids owned by an account", []cli.Flag{flagAccount},
		func(ctx context.Context, c *registry.Client, cCtx *cli.Context) (any, error) {
			owner, err := address(cCtx, flagAccount)
			if err != nil {
				return nil, err
			}
			return c.GetIdentitiesByOwner(ctx, owner)
		}),
	readCommand("total", "number of registered identities", nil,
		func(ctx context.Context, c *registry.Client, cCtx *cli.Context) (any, error) {
			return c.GetTotalIdentities(ctx)
		}),
	readCommand("admin", "registry admin account", nil,
		func(ctx context.Context, c *registry.Client, cCtx *cli.Context) (any, error) {
			return c.GetAdmin(ctx)
		}),
}

func main() {
	app := &cli.App{
		Name:  "identity-cli",
		Usage: "Invoke and query the identity registry contract",
		Flags: append(append([]cli.Flag{
			flagSecret,
			flags.LogServiceFlagFn("identity-cli"),
		}, flags.NetworkFlags...), flags.LogFlags...),
		Before: func(cCtx *cli.Context) error {
			logger = flags.SetupLogger(cCtx)

			cfg, err := flags.LoadConfig(cCtx)
			if err != nil {
				return err
			}

			client, err = flags.NewRegistryClient(cfg, logger)
			return err
		},
		Commands: commands,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
