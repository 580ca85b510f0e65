package ilowa

import (
	"crypto/ed25519"
)

type CreateMarketInstructionArgs struct {
	Question  string
	Category  string
	Region    string
	IsPrivate bool
	ExpiresAt int64
}

type CreateMarketInstructionAccounts struct {
	Creator ed25519.PublicKey
	Market  ed25519.PublicKey
}

func NewCreateMarketInstruction(
	accounts *CreateMarketInstructionAccounts,
	args *CreateMarketInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["createMarket"],
		[]interface{}{args.Question, args.Category, args.Region, args.IsPrivate, args.ExpiresAt},
		[]ed25519.PublicKey{
			accounts.Creator,
			accounts.Market,
			SYSTEM_PROGRAM_ID,
		},
	)
}

type ResolveMarketInstructionArgs struct {
	Outcome bool
}

type ResolveMarketInstructionAccounts struct {
	Resolver ed25519.PublicKey
	Market   ed25519.PublicKey
}

func NewResolveMarketInstruction(
	accounts *ResolveMarketInstructionAccounts,
	args *ResolveMarketInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["resolveMarket"],
		[]interface{}{args.Outcome},
		[]ed25519.PublicKey{
			accounts.Resolver,
			accounts.Market,
		},
	)
}

type ClaimWinningsInstructionAccounts struct {
	User        ed25519.PublicKey
	Market      ed25519.PublicKey
	Bet         ed25519.PublicKey
	MarketVault ed25519.PublicKey
}

// NewClaimWinningsInstruction builds a discriminator-only instruction; the
// payout amount is computed on-chain from the pools.
func NewClaimWinningsInstruction(accounts *ClaimWinningsInstructionAccounts) (Instruction, error) {
	return Assemble(
		instructionSpecs["claimWinnings"],
		nil,
		[]ed25519.PublicKey{
			accounts.User,
			accounts.Market,
			accounts.Bet,
			accounts.MarketVault,
			SYSTEM_PROGRAM_ID,
		},
	)
}
