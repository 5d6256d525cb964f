package config

import (
	"errors"

	"gamefi_on_near/internal/storage"
)

const globalKey = "global"

// DefaultStakeRewardRate is the rate written at initialization; the admin
// can change it afterwards with SetStakeRewardRate.
const DefaultStakeRewardRate = 1

var (
	ErrNotInitialized     = errors.New("contract not initialized")
	ErrAlreadyInitialized = errors.New("contract already initialized")
	ErrUnauthorized       = errors.New("caller is not the admin")
)

type Module struct {
	store *storage.ModuleStore
}

func NewModule(store storage.Store) *Module {
	return &Module{
		store: storage.NewModuleStore(store, "config"),
	}
}

func (m *Module) Initialized() bool {
	return m.store.Has([]byte(globalKey))
}

// Initialize writes the global parameter record exactly once. The given
// identity becomes the admin for the lifetime of the contract.
func (m *Module) Initialize(admin string, entryFee, rewardAmount, lowEntryFee, itemPriceMint uint64) error {
	if m.Initialized() {
		return ErrAlreadyInitialized
	}

	cfg := &GlobalConfig{
		Admin:           admin,
		EntryFee:        entryFee,
		RewardAmount:    rewardAmount,
		LowEntryFee:     lowEntryFee,
		ItemPriceMint:   itemPriceMint,
		StakeRewardRate: DefaultStakeRewardRate,
	}
	m.setConfig(cfg)
	return nil
}

func (m *Module) Get() (*GlobalConfig, error) {
	cfg := DeserializeGlobalConfig(m.store.Get([]byte(globalKey)))
	if cfg == nil {
		return nil, ErrNotInitialized
	}
	return cfg, nil
}

// RequireAdmin gates privileged operations on the caller identity.
func (m *Module) RequireAdmin(caller string) error {
	cfg, err := m.Get()
	if err != nil {
		return err
	}
	if caller != cfg.Admin {
		return ErrUnauthorized
	}
	return nil
}

func (m *Module) SetItemPrice(price uint64) error {
	cfg, err := m.Get()
	if err != nil {
		return err
	}
	cfg.ItemPriceMint = price
	m.setConfig(cfg)
	return nil
}

func (m *Module) SetLowEntryFee(fee uint64) error {
	cfg, err := m.Get()
	if err != nil {
		return err
	}
	cfg.LowEntryFee = fee
	m.setConfig(cfg)
	return nil
}

func (m *Module) SetStakeRewardRate(rate uint64) error {
	cfg, err := m.Get()
	if err != nil {
		return err
	}
	cfg.StakeRewardRate = rate
	m.setConfig(cfg)
	return nil
}

func (m *Module) setConfig(cfg *GlobalConfig) {
	m.store.Set([]byte(globalKey), cfg.Serialize())
}
