package main

import (
	"encoding/json"

	"gamefi_on_near/internal/gamefi"
	"gamefi_on_near/internal/near"
	"gamefi_on_near/internal/rules"
	"gamefi_on_near/internal/storage"

	"github.com/vlmoon99/near-sdk-go/contract"
	"github.com/vlmoon99/near-sdk-go/env"
)

// must aborts the transaction on error; the host rolls back every storage
// write the call made, preserving all-or-nothing semantics at the edge.
func must(err error) {
	if err != nil {
		env.Panic(err.Error())
	}
}

func main() {
	app := gamefi.NewContract(storage.NewNearStore(), rules.DefaultPolicy(), near.LogString)
	// TODO: wire the block timestamp into app.SetClock once the SDK exposes it

	// Lifecycle and admin functions
	contract.RegisterFunction("create", func(entryFee, rewardAmount, lowEntryFee, itemPriceMint uint64) {
		must(app.Create(env.PredecessorAccountId(), entryFee, rewardAmount, lowEntryFee, itemPriceMint))
	})
	contract.RegisterFunction("set_item_price", func(price uint64) {
		must(app.SetItemPrice(env.PredecessorAccountId(), price))
	})
	contract.RegisterFunction("set_low_entry_fee", func(fee uint64) {
		must(app.SetLowEntryFee(env.PredecessorAccountId(), fee))
	})
	contract.RegisterFunction("set_stake_reward_rate", func(rate uint64) {
		must(app.SetStakeRewardRate(env.PredecessorAccountId(), rate))
	})
	contract.RegisterFunction("add_mint_tokens", func(player string, amount uint64) {
		must(app.AddMintTokens(env.PredecessorAccountId(), player, amount))
	})
	contract.RegisterFunction("award_achievement", func(player string, itemID uint64) {
		must(app.AwardAchievement(env.PredecessorAccountId(), player, itemID))
	})

	// Ledger functions
	contract.RegisterFunction("deposit_algo", func(amount uint64) {
		must(app.DepositAlgo(env.PredecessorAccountId(), amount))
	})
	contract.RegisterFunction("withdraw_algo", func(amount uint64) {
		must(app.WithdrawAlgo(env.PredecessorAccountId(), amount))
	})
	contract.RegisterFunction("get_balance", func(player string) uint64 {
		return app.GetBalance(player)
	})
	contract.RegisterFunction("get_mint_balance", func(player string) uint64 {
		return app.GetMintBalance(player)
	})
	contract.RegisterFunction("get_score", func(player string) uint64 {
		return app.GetScore(player)
	})
	contract.RegisterFunction("get_treasury", func() uint64 {
		return app.GetTreasury()
	})
	contract.RegisterFunction("get_player_state", func(player string) string {
		data, err := json.Marshal(app.GetPlayerState(player))
		if err != nil {
			env.Panic(err.Error())
		}
		return string(data)
	})

	// Game functions
	contract.RegisterFunction("enter_game", func() {
		must(app.EnterGame(env.PredecessorAccountId()))
	})
	contract.RegisterFunction("start_coin_collection_game", func() {
		must(app.StartCoinCollectionGame(env.PredecessorAccountId()))
	})
	contract.RegisterFunction("end_coin_collection_game", func(coinsCollected uint64) {
		must(app.EndCoinCollectionGame(env.PredecessorAccountId(), coinsCollected))
	})
	contract.RegisterFunction("win_game", func() {
		must(app.WinGame(env.PredecessorAccountId()))
	})

	// Item store functions
	contract.RegisterFunction("buy_item_with_mint", func(itemID uint64) {
		must(app.BuyItemWithMint(env.PredecessorAccountId(), itemID))
	})
	contract.RegisterFunction("has_item", func(player string, itemID uint64) bool {
		return app.HasItem(player, itemID)
	})

	// Staking functions
	contract.RegisterFunction("stake_mint_tokens", func(amount uint64) {
		must(app.StakeMintTokens(env.PredecessorAccountId(), amount))
	})
	contract.RegisterFunction("unstake_mint_tokens", func(amount uint64) {
		must(app.UnstakeMintTokens(env.PredecessorAccountId(), amount))
	})
}
