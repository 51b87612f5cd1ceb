package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// VoiceFileName is the project configuration file the bridge reads.
const VoiceFileName = "voice.toml"

// VoiceTOML represents the raw voice.toml structure
type VoiceTOML struct {
	Bridge BridgeSection     `toml:"bridge"`
	Chains map[string]*Chain `toml:"chains"`
}

// BridgeSection is the [bridge] table of voice.toml.
type BridgeSection struct {
	Enabled        bool   `toml:"enabled"`
	ChainID        uint64 `toml:"chain_id"`
	PollIntervalMS int    `toml:"poll_interval_ms"`
}

// LoadVoiceFile loads and parses voice.toml from the project root. A missing
// file yields an empty config rather than an error so the defaults apply.
func LoadVoiceFile(projectRoot string) (*VoiceTOML, error) {
	// Load .env files first so ${VAR} references in voice.toml expand
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", envFile, err)
			}
		}
	}

	path := filepath.Join(projectRoot, VoiceFileName)
	raw := &VoiceTOML{Chains: make(map[string]*Chain)}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return raw, nil
	}

	if _, err := toml.DecodeFile(path, raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", VoiceFileName, err)
	}

	// Expand environment references in transports and addresses
	for name, chain := range raw.Chains {
		if chain.Name == "" {
			chain.Name = name
		}
		chain.RPCURL = os.ExpandEnv(chain.RPCURL)
		chain.Contracts.Token = os.ExpandEnv(chain.Contracts.Token)
		chain.Contracts.Staking = os.ExpandEnv(chain.Contracts.Staking)
		chain.Contracts.Vesting = os.ExpandEnv(chain.Contracts.Vesting)
		chain.Contracts.Badge = os.ExpandEnv(chain.Contracts.Badge)
		chain.Contracts.Governor = os.ExpandEnv(chain.Contracts.Governor)
	}

	return raw, nil
}

// FindProjectRoot walks up from the current directory to find voice.toml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, VoiceFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a SafeVoice project (%s not found)", VoiceFileName)
		}
		dir = parent
	}
}
