package config

import (
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/safevoice-org/voicebridge/internal/domain"
)

// ChainResolver resolves chain references (name or numeric id) against the
// configured chain set.
type ChainResolver struct {
	chains  map[string]*Chain
	byID    map[uint64]string
	ordered []string
}

// NewChainResolver creates a resolver seeded with well-known defaults and the
// chains from voice.toml. File entries override defaults with the same name.
func NewChainResolver(fileChains map[string]*Chain) *ChainResolver {
	r := &ChainResolver{
		chains: make(map[string]*Chain),
		byID:   make(map[uint64]string),
	}

	for _, chain := range defaultChains() {
		r.add(chain)
	}
	for name, chain := range fileChains {
		if chain.Name == "" {
			chain.Name = name
		}
		r.add(chain)
	}

	return r
}

func defaultChains() []*Chain {
	return []*Chain{
		{ChainID: 1, Name: "mainnet", ExplorerURL: "https://etherscan.io"},
		{ChainID: 11155111, Name: "sepolia", ExplorerURL: "https://sepolia.etherscan.io"},
		{ChainID: 8453, Name: "base", ExplorerURL: "https://basescan.org"},
		{ChainID: 137, Name: "polygon", ExplorerURL: "https://polygonscan.com"},
		{ChainID: 31337, Name: "localhost", RPCURL: "http://localhost:8545"},
		{ChainID: 31337, Name: "anvil", RPCURL: "http://localhost:8545"},
	}
}

func (r *ChainResolver) add(chain *Chain) {
	key := strings.ToLower(chain.Name)
	if _, seen := r.chains[key]; !seen {
		r.ordered = append(r.ordered, key)
	}
	r.chains[key] = chain
	r.byID[chain.ChainID] = key
}

// Resolve resolves a chain by name or decimal chain id. Unknown names return
// an UnknownChainErr carrying fuzzy-matched suggestions.
func (r *ChainResolver) Resolve(input string) (*Chain, error) {
	if input == "" {
		return nil, domain.UnknownChainErr{Input: input}
	}

	if chain, ok := r.chains[strings.ToLower(input)]; ok {
		return chain, nil
	}

	if id, err := strconv.ParseUint(input, 10, 64); err == nil {
		return r.ByID(id)
	}

	matches := fuzzy.Find(strings.ToLower(input), r.ordered)
	suggestions := make([]string, 0, 3)
	for i, m := range matches {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return nil, domain.UnknownChainErr{Input: input, Suggestions: suggestions}
}

// ByID resolves a chain by numeric id. Ids outside the configured set fail
// with ErrUnsupportedChain.
func (r *ChainResolver) ByID(chainID uint64) (*Chain, error) {
	name, ok := r.byID[chainID]
	if !ok {
		return nil, domain.ErrUnsupportedChain
	}
	return r.chains[name], nil
}

// List returns all configured chains, deduplicated by chain id.
func (r *ChainResolver) List() []*Chain {
	seen := make(map[uint64]bool)
	var chains []*Chain
	for _, key := range r.ordered {
		chain := r.chains[key]
		if !seen[chain.ChainID] {
			chains = append(chains, chain)
			seen[chain.ChainID] = true
		}
	}
	return chains
}
