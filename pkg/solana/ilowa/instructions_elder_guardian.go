package ilowa

import (
	"crypto/ed25519"
)

type InitElderGuardianInstructionAccounts struct {
	User     ed25519.PublicKey
	Guardian ed25519.PublicKey
}

// NewInitElderGuardianInstruction creates the guardian account with a
// 7-day timelock. The guardian key starts zeroed and is set afterwards via
// setGuardianKey once the client has encrypted it.
func NewInitElderGuardianInstruction(accounts *InitElderGuardianInstructionAccounts) (Instruction, error) {
	return Assemble(
		instructionSpecs["initElderGuardian"],
		nil,
		[]ed25519.PublicKey{
			accounts.User,
			accounts.Guardian,
			SYSTEM_PROGRAM_ID,
		},
	)
}

type SetGuardianKeyInstructionArgs struct {
	GuardianKey ed25519.PublicKey
}

type SetGuardianKeyInstructionAccounts struct {
	User     ed25519.PublicKey
	Guardian ed25519.PublicKey
}

func NewSetGuardianKeyInstruction(
	accounts *SetGuardianKeyInstructionAccounts,
	args *SetGuardianKeyInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["setGuardianKey"],
		[]interface{}{args.GuardianKey},
		[]ed25519.PublicKey{
			accounts.User,
			accounts.Guardian,
		},
	)
}

type InitiateRecoveryInstructionAccounts struct {
	Initiator ed25519.PublicKey
	Guardian  ed25519.PublicKey
}

func NewInitiateRecoveryInstruction(accounts *InitiateRecoveryInstructionAccounts) (Instruction, error) {
	return Assemble(
		instructionSpecs["initiateRecovery"],
		nil,
		[]ed25519.PublicKey{
			accounts.Initiator,
			accounts.Guardian,
		},
	)
}

type CancelRecoveryInstructionAccounts struct {
	User     ed25519.PublicKey
	Guardian ed25519.PublicKey
}

func NewCancelRecoveryInstruction(accounts *CancelRecoveryInstructionAccounts) (Instruction, error) {
	return Assemble(
		instructionSpecs["cancelRecovery"],
		nil,
		[]ed25519.PublicKey{
			accounts.User,
			accounts.Guardian,
		},
	)
}
