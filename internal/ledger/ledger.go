package ledger

import (
	"errors"

	"gamefi_on_near/internal/storage"
)

// Reward tokens convert to base currency at a fixed 1000:1 ratio. Each
// whole conversion is paid out of the treasury.
const (
	RewardConversionThreshold = 1000
	RewardConversionPayout    = 1
)

const treasuryKey = "treasury"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTreasuryInsolvent = errors.New("treasury cannot cover payout")
	ErrOverflow          = errors.New("balance overflow")
)

// Module owns the treasury counter and every per-player account record.
// Every operation validates the full transition before writing anything,
// so a failed call leaves no partial state behind.
type Module struct {
	store *storage.ModuleStore
}

func NewModule(store storage.Store) *Module {
	return &Module{
		store: storage.NewModuleStore(store, "ledger"),
	}
}

func (m *Module) GetAccount(player string) *PlayerAccount {
	key := []byte("account:" + player)
	data := m.store.Get(key)
	return DeserializePlayerAccount(data)
}

func (m *Module) setAccount(player string, acct *PlayerAccount) {
	key := []byte("account:" + player)
	m.store.Set(key, acct.Serialize())
}

func (m *Module) Treasury() uint64 {
	return m.store.GetU64([]byte(treasuryKey))
}

func (m *Module) setTreasury(amount uint64) {
	m.store.SetU64([]byte(treasuryKey), amount)
}

// CreditBase records a deposit: the player's balance and the treasury grow
// together, keeping every player balance backed by treasury funds.
func (m *Module) CreditBase(player string, amount uint64) error {
	acct := m.GetAccount(player)

	newBalance, err := CheckedAdd(acct.BaseBalance, amount)
	if err != nil {
		return err
	}
	newTreasury, err := CheckedAdd(m.Treasury(), amount)
	if err != nil {
		return err
	}

	acct.BaseBalance = newBalance
	m.setAccount(player, acct)
	m.setTreasury(newTreasury)
	return nil
}

// DebitBase spends from a player's balance; the spent claim and its
// treasury backing are released together.
func (m *Module) DebitBase(player string, amount uint64) error {
	acct := m.GetAccount(player)
	if acct.BaseBalance < amount {
		return ErrInsufficientFunds
	}

	treasury := m.Treasury()
	if treasury < amount {
		return ErrTreasuryInsolvent
	}

	acct.BaseBalance -= amount
	m.setAccount(player, acct)
	m.setTreasury(treasury - amount)
	return nil
}

// PayoutBase moves base currency from the treasury to a player. The
// solvency check is against the treasury, not the player balance.
func (m *Module) PayoutBase(player string, amount uint64) error {
	treasury := m.Treasury()
	if treasury < amount {
		return ErrTreasuryInsolvent
	}

	acct := m.GetAccount(player)
	newBalance, err := CheckedAdd(acct.BaseBalance, amount)
	if err != nil {
		return err
	}

	acct.BaseBalance = newBalance
	m.setAccount(player, acct)
	m.setTreasury(treasury - amount)
	return nil
}

// CreditReward grants reward tokens and settles conversions in the same
// transition: after the call the reward balance is always below the
// conversion threshold. If the treasury cannot cover the conversions the
// whole credit fails and nothing changes.
func (m *Module) CreditReward(player string, amount uint64) error {
	acct := m.GetAccount(player)

	credited, err := CheckedAdd(acct.RewardBalance, amount)
	if err != nil {
		return err
	}
	remainder, payout := convertReward(credited)

	treasury := m.Treasury()
	if treasury < payout {
		return ErrTreasuryInsolvent
	}
	newBase, err := CheckedAdd(acct.BaseBalance, payout)
	if err != nil {
		return err
	}

	acct.RewardBalance = remainder
	acct.BaseBalance = newBase
	m.setAccount(player, acct)
	m.setTreasury(treasury - payout)
	return nil
}

func (m *Module) DebitReward(player string, amount uint64) error {
	acct := m.GetAccount(player)
	if acct.RewardBalance < amount {
		return ErrInsufficientFunds
	}

	acct.RewardBalance -= amount
	m.setAccount(player, acct)
	return nil
}

func (m *Module) BumpScore(player string, delta uint64) error {
	acct := m.GetAccount(player)

	newScore, err := CheckedAdd(acct.Score, delta)
	if err != nil {
		return err
	}

	acct.Score = newScore
	m.setAccount(player, acct)
	return nil
}

// ApplyWin settles a game win in one transition: the treasury pays the win
// amount plus whatever conversions the reward credit triggers, and the
// score advances. All checks run before any write; on failure the account
// and treasury are untouched.
func (m *Module) ApplyWin(player string, basePayout, rewardCredit uint64) error {
	acct := m.GetAccount(player)

	credited, err := CheckedAdd(acct.RewardBalance, rewardCredit)
	if err != nil {
		return err
	}
	remainder, conversionPayout := convertReward(credited)

	totalPayout, err := CheckedAdd(basePayout, conversionPayout)
	if err != nil {
		return err
	}
	treasury := m.Treasury()
	if treasury < totalPayout {
		return ErrTreasuryInsolvent
	}

	newBase, err := CheckedAdd(acct.BaseBalance, totalPayout)
	if err != nil {
		return err
	}
	newScore, err := CheckedAdd(acct.Score, 1)
	if err != nil {
		return err
	}

	acct.BaseBalance = newBase
	acct.RewardBalance = remainder
	acct.Score = newScore
	m.setAccount(player, acct)
	m.setTreasury(treasury - totalPayout)
	return nil
}

// Stake moves reward tokens into the staked pool. Accrued staking rewards
// are settled first, through the normal conversion path, then the stake
// amount is taken from the settled balance.
func (m *Module) Stake(player string, amount, accrued, now uint64) error {
	acct := m.GetAccount(player)

	credited, err := CheckedAdd(acct.RewardBalance, accrued)
	if err != nil {
		return err
	}
	remainder, payout := convertReward(credited)

	treasury := m.Treasury()
	if treasury < payout {
		return ErrTreasuryInsolvent
	}
	if remainder < amount {
		return ErrInsufficientFunds
	}
	newBase, err := CheckedAdd(acct.BaseBalance, payout)
	if err != nil {
		return err
	}
	newStaked, err := CheckedAdd(acct.StakedReward, amount)
	if err != nil {
		return err
	}

	acct.BaseBalance = newBase
	acct.RewardBalance = remainder - amount
	acct.StakedReward = newStaked
	acct.LastStakeAt = now
	m.setAccount(player, acct)
	m.setTreasury(treasury - payout)
	return nil
}

// Unstake returns staked tokens to the reward balance along with accrued
// rewards, settling conversions on the combined credit.
func (m *Module) Unstake(player string, amount, accrued, now uint64) error {
	acct := m.GetAccount(player)
	if acct.StakedReward < amount {
		return ErrInsufficientFunds
	}

	returned, err := CheckedAdd(accrued, amount)
	if err != nil {
		return err
	}
	credited, err := CheckedAdd(acct.RewardBalance, returned)
	if err != nil {
		return err
	}
	remainder, payout := convertReward(credited)

	treasury := m.Treasury()
	if treasury < payout {
		return ErrTreasuryInsolvent
	}
	newBase, err := CheckedAdd(acct.BaseBalance, payout)
	if err != nil {
		return err
	}

	acct.BaseBalance = newBase
	acct.RewardBalance = remainder
	acct.StakedReward -= amount
	acct.LastStakeAt = now
	m.setAccount(player, acct)
	m.setTreasury(treasury - payout)
	return nil
}

// convertReward applies whole threshold conversions to a prospective
// reward balance, returning what stays as reward and the base payout the
// treasury owes for the conversions.
func convertReward(reward uint64) (remainder, payout uint64) {
	conversions := reward / RewardConversionThreshold
	return reward % RewardConversionThreshold, conversions * RewardConversionPayout
}

func CheckedAdd(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrOverflow
	}
	return sum, nil
}

func CheckedMul(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/a != b {
		return 0, ErrOverflow
	}
	return product, nil
}
