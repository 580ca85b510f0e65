package ilowa

import (
	"crypto/ed25519"
)

type PlaceLightBetInstructionArgs struct {
	Amount  uint64
	Outcome bool
}

type PlaceLightBetInstructionAccounts struct {
	Bettor           ed25519.PublicKey
	Market           ed25519.PublicKey
	Bet              ed25519.PublicKey
	PlatformTreasury ed25519.PublicKey
	MarketVault      ed25519.PublicKey
}

func NewPlaceLightBetInstruction(
	accounts *PlaceLightBetInstructionAccounts,
	args *PlaceLightBetInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["placeLightBet"],
		[]interface{}{args.Amount, args.Outcome},
		[]ed25519.PublicKey{
			accounts.Bettor,
			accounts.Market,
			accounts.Bet,
			accounts.PlatformTreasury,
			accounts.MarketVault,
			SYSTEM_PROGRAM_ID,
		},
	)
}

type PlaceShieldedLightBetInstructionArgs struct {
	// EncryptedAmount is ephem_pub(32) | nonce(24) | secretbox(24), exactly
	// 80 bytes; ZkProof is salt(32) | sha256 commit(32), exactly 64 bytes.
	// The program enforces both lengths.
	EncryptedAmount []byte
	ZkProof         []byte
	Outcome         bool
}

type PlaceShieldedLightBetInstructionAccounts struct {
	Bettor           ed25519.PublicKey
	Market           ed25519.PublicKey
	Bet              ed25519.PublicKey
	PlatformTreasury ed25519.PublicKey
}

func NewPlaceShieldedLightBetInstruction(
	accounts *PlaceShieldedLightBetInstructionAccounts,
	args *PlaceShieldedLightBetInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["placeShieldedLightBet"],
		[]interface{}{args.EncryptedAmount, args.ZkProof, args.Outcome},
		[]ed25519.PublicKey{
			accounts.Bettor,
			accounts.Market,
			accounts.Bet,
			accounts.PlatformTreasury,
			SYSTEM_PROGRAM_ID,
		},
	)
}
