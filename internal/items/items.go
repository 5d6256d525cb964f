package items

import (
	"errors"
	"strconv"

	"gamefi_on_near/internal/ledger"
	"gamefi_on_near/internal/storage"
)

var ErrAlreadyOwned = errors.New("item already owned")

// Module layers the item store over the ledger: purchases spend reward
// tokens and record a write-once ownership flag per (player, item).
type Module struct {
	store  *storage.ModuleStore
	ledger *ledger.Module
}

func NewModule(store storage.Store, ledgerModule *ledger.Module) *Module {
	return &Module{
		store:  storage.NewModuleStore(store, "items"),
		ledger: ledgerModule,
	}
}

func ownershipKey(player string, itemID uint64) []byte {
	return []byte("owned:" + player + ":" + strconv.FormatUint(itemID, 10))
}

func (m *Module) HasItem(player string, itemID uint64) bool {
	return m.store.Has(ownershipKey(player, itemID))
}

// Buy debits the price from the player's reward balance and records
// ownership. The ownership check runs first, so a duplicate purchase
// fails before any debit.
func (m *Module) Buy(player string, itemID uint64, price uint64) error {
	if m.HasItem(player, itemID) {
		return ErrAlreadyOwned
	}
	if err := m.ledger.DebitReward(player, price); err != nil {
		return err
	}
	m.store.Set(ownershipKey(player, itemID), []byte{1})
	return nil
}

// Award grants an item without payment, for achievements. Ownership stays
// write-once, so awarding an owned item fails the same way a purchase does.
func (m *Module) Award(player string, itemID uint64) error {
	if m.HasItem(player, itemID) {
		return ErrAlreadyOwned
	}
	m.store.Set(ownershipKey(player, itemID), []byte{1})
	return nil
}
