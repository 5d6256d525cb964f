package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds the tunable reward-formula constants. These are deployment
// policy loaded at startup, not admin-settable contract state.
type Policy struct {
	MintPerCoin   uint64 `yaml:"mint_per_coin"`
	WinMintReward uint64 `yaml:"win_mint_reward"`
}

func DefaultPolicy() Policy {
	return Policy{
		MintPerCoin:   1,
		WinMintReward: 10,
	}
}

// LoadPolicy reads a yaml policy file. Fields absent from the file keep
// their default values.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("policy.yaml: %w", err)
	}
	return p, nil
}
