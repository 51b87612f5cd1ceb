package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DataDirName is the local state directory holding the persisted queue and
// balance snapshot.
const DataDirName = ".voicebridge"

// DefaultPollInterval is the confirmation poller cadence when voice.toml does
// not override it.
const DefaultPollInterval = 5 * time.Second

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	voiceFile, err := LoadVoiceFile(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Enabled:        voiceFile.Bridge.Enabled,
		ChainID:        voiceFile.Bridge.ChainID,
		PollInterval:   DefaultPollInterval,
		PrivateKey:     os.Getenv("VOICE_PRIVATE_KEY"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	if voiceFile.Bridge.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(voiceFile.Bridge.PollIntervalMS) * time.Millisecond
	}
	if v.IsSet("enabled") {
		cfg.Enabled = v.GetBool("enabled")
	}

	resolver := NewChainResolver(voiceFile.Chains)
	cfg.Chains = make(map[string]*Chain)
	for _, chain := range resolver.List() {
		cfg.Chains[chain.Name] = chain
	}

	// Resolve the active chain: --chain flag wins over voice.toml default
	chainRef := v.GetString("chain")
	switch {
	case chainRef != "":
		chain, err := resolver.Resolve(chainRef)
		if err != nil {
			return nil, err
		}
		cfg.Chain = chain
		cfg.ChainID = chain.ChainID
	case cfg.ChainID != 0:
		chain, err := resolver.ByID(cfg.ChainID)
		if err != nil {
			return nil, fmt.Errorf("default chain id %d: %w", cfg.ChainID, err)
		}
		cfg.Chain = chain
	}

	return cfg, nil
}

// ProvideChainResolver creates a ChainResolver for Wire dependency injection
func ProvideChainResolver(cfg *RuntimeConfig) *ChainResolver {
	return NewChainResolver(cfg.Chains)
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("VOICE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "2m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Config file is optional
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}
