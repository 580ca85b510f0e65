package ilowa

import (
	"crypto/ed25519"
)

type InitSocialRecoveryInstructionArgs struct {
	// Guardians must hold exactly 5 keys; the program enforces the count
	// and fixes the approval threshold at 3-of-5.
	Guardians []ed25519.PublicKey
}

type InitSocialRecoveryInstructionAccounts struct {
	User           ed25519.PublicKey
	SocialRecovery ed25519.PublicKey
}

func NewInitSocialRecoveryInstruction(
	accounts *InitSocialRecoveryInstructionAccounts,
	args *InitSocialRecoveryInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["initSocialRecovery"],
		[]interface{}{args.Guardians},
		[]ed25519.PublicKey{
			accounts.User,
			accounts.SocialRecovery,
			SYSTEM_PROGRAM_ID,
		},
	)
}

type ApproveSocialRecoveryInstructionArgs struct {
	NewWallet ed25519.PublicKey
}

type ApproveSocialRecoveryInstructionAccounts struct {
	Guardian       ed25519.PublicKey
	SocialRecovery ed25519.PublicKey
}

func NewApproveSocialRecoveryInstruction(
	accounts *ApproveSocialRecoveryInstructionAccounts,
	args *ApproveSocialRecoveryInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["approveSocialRecovery"],
		[]interface{}{args.NewWallet},
		[]ed25519.PublicKey{
			accounts.Guardian,
			accounts.SocialRecovery,
		},
	)
}
