package ledger

import (
	"encoding/binary"
)

const accountRecordSize = 40

// PlayerAccount is the per-player ledger record. All fields are unsigned;
// operations reject any transition that would underflow or overflow.
type PlayerAccount struct {
	BaseBalance   uint64 `json:"base_balance"`
	RewardBalance uint64 `json:"reward_balance"`
	Score         uint64 `json:"score"`
	StakedReward  uint64 `json:"staked_reward"`
	LastStakeAt   uint64 `json:"last_stake_at"`
}

func (a *PlayerAccount) Serialize() []byte {
	buf := make([]byte, accountRecordSize)
	binary.LittleEndian.PutUint64(buf[0:8], a.BaseBalance)
	binary.LittleEndian.PutUint64(buf[8:16], a.RewardBalance)
	binary.LittleEndian.PutUint64(buf[16:24], a.Score)
	binary.LittleEndian.PutUint64(buf[24:32], a.StakedReward)
	binary.LittleEndian.PutUint64(buf[32:40], a.LastStakeAt)
	return buf
}

// DeserializePlayerAccount decodes a fixed-width record. Missing or short
// data decodes to the zero account, so unseen players start at zero.
func DeserializePlayerAccount(data []byte) *PlayerAccount {
	if len(data) < accountRecordSize {
		return &PlayerAccount{}
	}

	return &PlayerAccount{
		BaseBalance:   binary.LittleEndian.Uint64(data[0:8]),
		RewardBalance: binary.LittleEndian.Uint64(data[8:16]),
		Score:         binary.LittleEndian.Uint64(data[16:24]),
		StakedReward:  binary.LittleEndian.Uint64(data[24:32]),
		LastStakeAt:   binary.LittleEndian.Uint64(data[32:40]),
	}
}
