package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "identity.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	pc := cfg.PipelineConfig()
	require.NoError(t, pc.Validate())
	assert.Equal(t, network.TestNetworkPassphrase, pc.NetworkPassphrase)
	assert.Equal(t, 30*time.Second, pc.Timeout)
	assert.Equal(t, time.Second, pc.PollInterval)
	assert.Equal(t, 30, pc.MaxAttempts)

	id, err := cfg.ContractID()
	require.NoError(t, err)
	assert.Equal(t, DefaultContractID, id.String())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[network]
rpc_url = "http://localhost:8000/soroban/rpc"

[transaction]
base_fee = 200
timeout = "45s"

[poll]
interval = "250ms"
max_attempts = 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:8000/soroban/rpc", cfg.Network.RPCURL)
	assert.Equal(t, network.TestNetworkPassphrase, cfg.Network.Passphrase, "unset keys keep defaults")
	assert.Equal(t, DefaultContractID, cfg.Contract.ID)

	pc := cfg.PipelineConfig()
	assert.Equal(t, int64(200), pc.BaseFee)
	assert.Equal(t, 45*time.Second, pc.Timeout)
	assert.Equal(t, 250*time.Millisecond, pc.PollInterval)
	assert.Equal(t, 10, pc.MaxAttempts)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[network]
rpc_url = "http://from-file:8000"
`)
	t.Setenv(EnvRPCURL, "http://from-env:8000")
	t.Setenv(EnvNetworkPassphrase, network.PublicNetworkPassphrase)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.Network.RPCURL)
	assert.Equal(t, network.PublicNetworkPassphrase, cfg.Network.Passphrase)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err, "an explicit path must exist")

	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err, "the default file is optional")
	assert.Equal(t, DefaultRPCURL, cfg.Network.RPCURL)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "[network]\nrpc = \"x\"\n"},
		{"bad duration", "[transaction]\ntimeout = \"soon\"\n"},
		{"not toml", "network = [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"rpc url", func(c *Config) { c.Network.RPCURL = "not a url" }, "RPCURL"},
		{"passphrase", func(c *Config) { c.Network.Passphrase = "" }, "Passphrase"},
		{"contract id", func(c *Config) { c.Contract.ID = "GABC" }, "ID"},
		{"base fee", func(c *Config) { c.Transaction.BaseFee = 10 }, "BaseFee"},
		{"timeout", func(c *Config) { c.Transaction.Timeout = Duration(500 * time.Millisecond) }, "Timeout"},
		{"poll interval", func(c *Config) { c.Poll.Interval = Duration(-time.Second) }, "Interval"},
		{"max attempts", func(c *Config) { c.Poll.MaxAttempts = 0 }, "MaxAttempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, Duration(90*time.Second), d)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))
}
