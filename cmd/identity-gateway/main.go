package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/minhleeee123/stellar-digital-identity/cmd/flags"
	"github.com/minhleeee123/stellar-digital-identity/httpserver"
	"github.com/urfave/cli/v2"
)

var flagListenAddr = &cli.StringFlag{
	Name:  "listen-addr",
	Value: "127.0.0.1:8080",
	Usage: "address to listen on for API",
}

func main() {
	app := &cli.App{
		Name:  "identity-gateway",
		Usage: "Serve read-only identity registry queries over HTTP",
		Flags: append(append(append([]cli.Flag{
			flagListenAddr,
			flags.LogServiceFlagFn("identity-gateway"),
		}, flags.NetworkFlags...), flags.LogFlags...), flags.ServerFlags...),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)

			cfg, err := flags.LoadConfig(cCtx)
			if err != nil {
				logger.Error("Failed to load config", "err", err)
				return err
			}

			client, err := flags.NewRegistryClient(cfg, logger)
			if err != nil {
				logger.Error("Failed to create registry client", "err", err)
				return err
			}
			logger.Info("Using identity registry", "rpc", cfg.Network.RPCURL, "contract", client.Contract())

			handler := httpserver.NewHandler(client, logger)
			server := httpserver.New(flags.ConfigureServer(cCtx, logger, cCtx.String(flagListenAddr.Name)), handler)
			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Server shutdown complete")
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
