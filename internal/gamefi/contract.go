package gamefi

import (
	"strconv"
	"sync"
	"time"

	"gamefi_on_near/internal/config"
	"gamefi_on_near/internal/items"
	"gamefi_on_near/internal/ledger"
	"gamefi_on_near/internal/rules"
	"gamefi_on_near/internal/storage"
)

// Logger receives one line per successful mutating operation. The NEAR
// entrypoint wires it to the host log; a nil logger drops the lines.
type Logger func(message string)

// Contract is the public operation surface. Every operation runs to
// completion under a single lock, so no call ever observes another call's
// partial effects, and module errors surface to the caller verbatim.
type Contract struct {
	mu sync.Mutex

	cfg    *config.Module
	ledger *ledger.Module
	rules  *rules.Module
	items  *items.Module

	log Logger
	now func() uint64
}

func NewContract(store storage.Store, policy rules.Policy, log Logger) *Contract {
	cfgModule := config.NewModule(store)
	ledgerModule := ledger.NewModule(store)

	return &Contract{
		cfg:    cfgModule,
		ledger: ledgerModule,
		rules:  rules.NewModule(ledgerModule, cfgModule, policy),
		items:  items.NewModule(store, ledgerModule),
		log:    log,
		now:    func() uint64 { return uint64(time.Now().Unix()) },
	}
}

// SetClock replaces the time source used by staking operations.
func (c *Contract) SetClock(now func() uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *Contract) logf(message string) {
	if c.log != nil {
		c.log(message)
	}
}

func (c *Contract) requireInit() error {
	if !c.cfg.Initialized() {
		return config.ErrNotInitialized
	}
	return nil
}

// Create initializes the contract exactly once; the caller becomes admin.
func (c *Contract) Create(caller string, entryFee, rewardAmount, lowEntryFee, itemPriceMint uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cfg.Initialize(caller, entryFee, rewardAmount, lowEntryFee, itemPriceMint); err != nil {
		return err
	}
	c.logf("Created: admin " + caller)
	return nil
}

func (c *Contract) SetItemPrice(caller string, price uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cfg.RequireAdmin(caller); err != nil {
		return err
	}
	if err := c.cfg.SetItemPrice(price); err != nil {
		return err
	}
	c.logf("Item price set: " + strconv.FormatUint(price, 10))
	return nil
}

func (c *Contract) SetLowEntryFee(caller string, fee uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cfg.RequireAdmin(caller); err != nil {
		return err
	}
	if err := c.cfg.SetLowEntryFee(fee); err != nil {
		return err
	}
	c.logf("Low entry fee set: " + strconv.FormatUint(fee, 10))
	return nil
}

func (c *Contract) SetStakeRewardRate(caller string, rate uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cfg.RequireAdmin(caller); err != nil {
		return err
	}
	if err := c.cfg.SetStakeRewardRate(rate); err != nil {
		return err
	}
	c.logf("Stake reward rate set: " + strconv.FormatUint(rate, 10))
	return nil
}

// DepositAlgo credits base currency to the sender's own account.
func (c *Contract) DepositAlgo(sender string, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInit(); err != nil {
		return err
	}
	if err := c.ledger.CreditBase(sender, amount); err != nil {
		return err
	}
	c.logf("Deposit: " + sender + " amount: " + strconv.FormatUint(amount, 10))
	return nil
}

// WithdrawAlgo pays base currency out of the treasury to the player.
func (c *Contract) WithdrawAlgo(player string, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInit(); err != nil {
		return err
	}
	if err := c.ledger.PayoutBase(player, amount); err != nil {
		return err
	}
	c.logf("Withdraw: " + player + " amount: " + strconv.FormatUint(amount, 10))
	return nil
}

// AddMintTokens is the admin-only reward token faucet.
func (c *Contract) AddMintTokens(caller, player string, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cfg.RequireAdmin(caller); err != nil {
		return err
	}
	if err := c.ledger.CreditReward(player, amount); err != nil {
		return err
	}
	c.logf("Mint: " + player + " amount: " + strconv.FormatUint(amount, 10))
	return nil
}

func (c *Contract) GetBalance(player string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.GetAccount(player).BaseBalance
}

func (c *Contract) GetMintBalance(player string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.GetAccount(player).RewardBalance
}

func (c *Contract) GetScore(player string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.GetAccount(player).Score
}

func (c *Contract) GetTreasury() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Treasury()
}

// GetPlayerState returns a copy of the full account record; unknown
// players read as the zero account.
func (c *Contract) GetPlayerState(player string) ledger.PlayerAccount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.ledger.GetAccount(player)
}

func (c *Contract) EnterGame(player string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInit(); err != nil {
		return err
	}
	if err := c.rules.EnterGame(player); err != nil {
		return err
	}
	c.logf("Game entered: " + player)
	return nil
}

func (c *Contract) StartCoinCollectionGame(player string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInit(); err != nil {
		return err
	}
	if err := c.rules.StartCoinCollection(player); err != nil {
		return err
	}
	c.logf("Coin collection started: " + player)
	return nil
}

func (c *Contract) EndCoinCollectionGame(player string, coinsCollected uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInit(); err != nil {
		return err
	}
	if err := c.rules.EndCoinCollection(player, coinsCollected); err != nil {
		return err
	}
	c.logf("Coin collection ended: " + player + " coins: " + strconv.FormatUint(coinsCollected, 10))
	return nil
}

func (c *Contract) WinGame(player string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInit(); err != nil {
		return err
	}
	if err := c.rules.WinGame(player); err != nil {
		return err
	}
	c.logf("Game won: " + player)
	return nil
}

func (c *Contract) BuyItemWithMint(player string, itemID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInit(); err != nil {
		return err
	}
	cfg, err := c.cfg.Get()
	if err != nil {
		return err
	}
	if err := c.items.Buy(player, itemID, cfg.ItemPriceMint); err != nil {
		return err
	}
	c.logf("Item bought: " + player + " item: " + strconv.FormatUint(itemID, 10))
	return nil
}

func (c *Contract) HasItem(player string, itemID uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.HasItem(player, itemID)
}

// AwardAchievement grants an item without payment, admin only.
func (c *Contract) AwardAchievement(caller, player string, itemID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cfg.RequireAdmin(caller); err != nil {
		return err
	}
	if err := c.items.Award(player, itemID); err != nil {
		return err
	}
	c.logf("Achievement awarded: " + player + " item: " + strconv.FormatUint(itemID, 10))
	return nil
}

func (c *Contract) StakeMintTokens(player string, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInit(); err != nil {
		return err
	}
	if err := c.rules.StakeTokens(player, amount, c.now()); err != nil {
		return err
	}
	c.logf("Staked: " + player + " amount: " + strconv.FormatUint(amount, 10))
	return nil
}

func (c *Contract) UnstakeMintTokens(player string, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireInit(); err != nil {
		return err
	}
	if err := c.rules.UnstakeTokens(player, amount, c.now()); err != nil {
		return err
	}
	c.logf("Unstaked: " + player + " amount: " + strconv.FormatUint(amount, 10))
	return nil
}
