package ilowa

import (
	"crypto/ed25519"
)

type PlaceBetInstructionArgs struct {
	Amount  uint64
	Outcome bool
}

type PlaceBetInstructionAccounts struct {
	User             ed25519.PublicKey
	Market           ed25519.PublicKey
	Bet              ed25519.PublicKey
	PlatformTreasury ed25519.PublicKey
	MarketVault      ed25519.PublicKey
}

func NewPlaceBetInstruction(
	accounts *PlaceBetInstructionAccounts,
	args *PlaceBetInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["placeBet"],
		[]interface{}{args.Amount, args.Outcome},
		[]ed25519.PublicKey{
			accounts.User,
			accounts.Market,
			accounts.Bet,
			accounts.PlatformTreasury,
			accounts.MarketVault,
			SYSTEM_PROGRAM_ID,
		},
	)
}

type ShieldedBetInstructionArgs struct {
	// EncryptedAmount is the MPC-encrypted bet amount; only ciphertext goes
	// on-chain. The program accepts 32..128 bytes.
	EncryptedAmount []byte
	ZkProof         []byte
	Outcome         bool
}

type ShieldedBetInstructionAccounts struct {
	User             ed25519.PublicKey
	Market           ed25519.PublicKey
	Bet              ed25519.PublicKey
	PlatformTreasury ed25519.PublicKey
}

func NewShieldedBetInstruction(
	accounts *ShieldedBetInstructionAccounts,
	args *ShieldedBetInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["shieldedBet"],
		[]interface{}{args.EncryptedAmount, args.ZkProof, args.Outcome},
		[]ed25519.PublicKey{
			accounts.User,
			accounts.Market,
			accounts.Bet,
			accounts.PlatformTreasury,
			SYSTEM_PROGRAM_ID,
		},
	)
}
