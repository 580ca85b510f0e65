package ilowa

import (
	"crypto/ed25519"
)

type TipDjInstructionArgs struct {
	Amount uint64
}

type TipDjInstructionAccounts struct {
	Tipper           ed25519.PublicKey
	Dj               ed25519.PublicKey
	PlatformTreasury ed25519.PublicKey
}

func NewTipDjInstruction(
	accounts *TipDjInstructionAccounts,
	args *TipDjInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["tipDj"],
		[]interface{}{args.Amount},
		[]ed25519.PublicKey{
			accounts.Tipper,
			accounts.Dj,
			accounts.PlatformTreasury,
			SYSTEM_PROGRAM_ID,
		},
	)
}
