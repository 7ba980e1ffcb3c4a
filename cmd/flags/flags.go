package flags

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/minhleeee123/stellar-digital-identity/common"
	"github.com/minhleeee123/stellar-digital-identity/config"
	"github.com/minhleeee123/stellar-digital-identity/endpoint"
	"github.com/minhleeee123/stellar-digital-identity/httpserver"
	"github.com/minhleeee123/stellar-digital-identity/pipeline"
	"github.com/minhleeee123/stellar-digital-identity/registry"
	"github.com/urfave/cli/v2"
)

func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logJSON := cCtx.Bool(LogJsonFlag.Name)
	logDebug := cCtx.Bool(LogDebugFlag.Name)
	logUID := cCtx.Bool(LogUidFlag.Name)
	logService := cCtx.String("log-service")

	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   logDebug,
		JSON:    logJSON,
		Service: logService,
		Version: common.Version,
	})

	if logUID {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

// LoadConfig reads the config file and applies the network and contract
// flags on top of it. Flags win over environment and file.
func LoadConfig(cCtx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(cCtx.String(ConfigFlag.Name))
	if err != nil {
		return nil, err
	}

	if cCtx.IsSet(RPCURLFlag.Name) {
		cfg.Network.RPCURL = cCtx.String(RPCURLFlag.Name)
	}
	if cCtx.IsSet(ContractFlag.Name) {
		cfg.Contract.ID = cCtx.String(ContractFlag.Name)
	}
	if cCtx.IsSet(PassphraseFlag.Name) {
		cfg.Network.Passphrase = cCtx.String(PassphraseFlag.Name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewRegistryClient wires the endpoint, pipeline and registry client described
// by cfg.
func NewRegistryClient(cfg *config.Config, logger *slog.Logger) (*registry.Client, error) {
	contract, err := cfg.ContractID()
	if err != nil {
		return nil, err
	}

	rpc := endpoint.NewClient(cfg.Network.RPCURL, &http.Client{Timeout: 30 * time.Second}, logger)
	p, err := pipeline.New(rpc, cfg.PipelineConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("could not create pipeline: %w", err)
	}
	return registry.NewClient(p, contract, logger), nil
}

func ConfigureServer(cCtx *cli.Context, logger *slog.Logger, listenAddr string) *httpserver.HTTPServerConfig {
	enablePprof := cCtx.Bool(PprofFlag.Name)
	drainDuration := time.Duration(cCtx.Int64(DrainSecondsFlag.Name)) * time.Second

	return &httpserver.HTTPServerConfig{
		ListenAddr:               listenAddr,
		Log:                      logger,
		EnablePprof:              enablePprof,
		DrainDuration:            drainDuration,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}
}

var ConfigFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "TOML config file (default ./" + config.DefaultConfigFile + " if present)",
}

var RPCURLFlag = &cli.StringFlag{
	Name:    "rpc-url",
	EnvVars: []string{config.EnvRPCURL},
	Usage:   "Soroban RPC endpoint",
}

var ContractFlag = &cli.StringFlag{
	Name:    "contract",
	EnvVars: []string{config.EnvContractID},
	Usage:   "identity registry contract id (C...)",
}

var PassphraseFlag = &cli.StringFlag{
	Name:    "network-passphrase",
	EnvVars: []string{config.EnvNetworkPassphrase},
	Usage:   "network passphrase signatures are bound to",
}

var LogJsonFlag = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}
var LogDebugFlag = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}
var LogUidFlag = &cli.BoolFlag{
	Name:  "log-uid",
	Value: false,
	Usage: "generate a uuid and add to all log messages",
}

var LogServiceFlagFn = func(service string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "log-service",
		Value: service,
		Usage: "add 'service' tag to logs",
	}
}

var PprofFlag = &cli.BoolFlag{
	Name:  "pprof",
	Value: false,
	Usage: "enable pprof debug endpoint",
}
var DrainSecondsFlag = &cli.Int64Flag{
	Name:  "drain-seconds",
	Value: 45,
	Usage: "seconds to wait in drain HTTP request",
}

var NetworkFlags = []cli.Flag{
	ConfigFlag,
	RPCURLFlag,
	ContractFlag,
	PassphraseFlag,
}

var LogFlags = []cli.Flag{
	LogJsonFlag,
	LogDebugFlag,
	LogUidFlag,
}

var ServerFlags = []cli.Flag{
	PprofFlag,
	DrainSecondsFlag,
}
