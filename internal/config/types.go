package config

import (
	"github.com/vlmoon99/near-sdk-go/borsh"
)

// GlobalConfig is the single parameter record for the contract. Admin is
// set once at initialization and never changes afterwards.
type GlobalConfig struct {
	Admin           string `borsh:"admin"`
	EntryFee        uint64 `borsh:"entry_fee"`
	RewardAmount    uint64 `borsh:"reward_amount"`
	LowEntryFee     uint64 `borsh:"low_entry_fee"`
	ItemPriceMint   uint64 `borsh:"item_price_mint"`
	StakeRewardRate uint64 `borsh:"stake_reward_rate"`
}

func (c *GlobalConfig) Serialize() []byte {
	data, _ := borsh.BorshSerialize(c)
	return data
}

func DeserializeGlobalConfig(data []byte) *GlobalConfig {
	if len(data) == 0 {
		return nil
	}

	var cfg GlobalConfig
	borsh.BorshDeserialize(&cfg, data)
	return &cfg
}
