package rules

import (
	"gamefi_on_near/internal/config"
	"gamefi_on_near/internal/ledger"
)

// Staking rewards accrue as staked * rate * elapsed / AccrualDenominator.
const AccrualDenominator = 1_000_000

// Module computes game transitions and applies them through the ledger.
type Module struct {
	ledger *ledger.Module
	cfg    *config.Module
	policy Policy
}

func NewModule(ledgerModule *ledger.Module, cfgModule *config.Module, policy Policy) *Module {
	return &Module{
		ledger: ledgerModule,
		cfg:    cfgModule,
		policy: policy,
	}
}

// EnterGame charges the configured entry fee. Entry is rejected whole if
// the player cannot cover it.
func (m *Module) EnterGame(player string) error {
	cfg, err := m.cfg.Get()
	if err != nil {
		return err
	}
	return m.ledger.DebitBase(player, cfg.EntryFee)
}

// StartCoinCollection charges the lower fee for the coin mini-game.
func (m *Module) StartCoinCollection(player string) error {
	cfg, err := m.cfg.Get()
	if err != nil {
		return err
	}
	return m.ledger.DebitBase(player, cfg.LowEntryFee)
}

// EndCoinCollection converts collected coins into reward tokens with the
// linear policy formula, then credits them.
func (m *Module) EndCoinCollection(player string, coinsCollected uint64) error {
	reward, err := ledger.CheckedMul(coinsCollected, m.policy.MintPerCoin)
	if err != nil {
		return err
	}
	return m.ledger.CreditReward(player, reward)
}

// WinGame pays the configured base reward, credits the fixed mint reward
// and bumps the score in one atomic transition.
func (m *Module) WinGame(player string) error {
	cfg, err := m.cfg.Get()
	if err != nil {
		return err
	}
	return m.ledger.ApplyWin(player, cfg.RewardAmount, m.policy.WinMintReward)
}

// StakeTokens locks reward tokens, settling rewards accrued since the
// last stake move first.
func (m *Module) StakeTokens(player string, amount, now uint64) error {
	cfg, err := m.cfg.Get()
	if err != nil {
		return err
	}

	acct := m.ledger.GetAccount(player)
	accrued, err := accruedReward(acct, cfg.StakeRewardRate, now)
	if err != nil {
		return err
	}
	return m.ledger.Stake(player, amount, accrued, now)
}

// UnstakeTokens releases staked tokens back to the reward balance, plus
// anything accrued since the last stake move.
func (m *Module) UnstakeTokens(player string, amount, now uint64) error {
	cfg, err := m.cfg.Get()
	if err != nil {
		return err
	}

	acct := m.ledger.GetAccount(player)
	accrued, err := accruedReward(acct, cfg.StakeRewardRate, now)
	if err != nil {
		return err
	}
	return m.ledger.Unstake(player, amount, accrued, now)
}

func accruedReward(acct *ledger.PlayerAccount, rate, now uint64) (uint64, error) {
	if acct.StakedReward == 0 || now <= acct.LastStakeAt {
		return 0, nil
	}
	elapsed := now - acct.LastStakeAt

	product, err := ledger.CheckedMul(acct.StakedReward, rate)
	if err != nil {
		return 0, err
	}
	product, err = ledger.CheckedMul(product, elapsed)
	if err != nil {
		return 0, err
	}
	return product / AccrualDenominator, nil
}
