package ilowa

import (
	"crypto/ed25519"

	"github.com/ilowa-labs/ilowa-go/pkg/solana/binary"
)

type CreateLightMarketInstructionArgs struct {
	// QuestionHash is the 32-byte folded question digest; use
	// binary.FoldDigest to fold an arbitrary-length question.
	QuestionHash binary.Digest
	Category     uint8
	Region       uint8
	ResolveDate  int64
	// OracleAuthority of all zeros means manual-only resolution.
	OracleAuthority ed25519.PublicKey
	OracleThreshold int64
	OracleAbove     bool
}

type CreateLightMarketInstructionAccounts struct {
	Creator ed25519.PublicKey
	Market  ed25519.PublicKey
}

func NewCreateLightMarketInstruction(
	accounts *CreateLightMarketInstructionAccounts,
	args *CreateLightMarketInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["createLightMarket"],
		[]interface{}{
			args.QuestionHash,
			args.Category,
			args.Region,
			args.ResolveDate,
			args.OracleAuthority,
			args.OracleThreshold,
			args.OracleAbove,
		},
		[]ed25519.PublicKey{
			accounts.Creator,
			accounts.Market,
			SYSTEM_PROGRAM_ID,
		},
	)
}

type ResolveLightMarketInstructionArgs struct {
	Outcome bool
}

type ResolveLightMarketInstructionAccounts struct {
	Creator ed25519.PublicKey
	Market  ed25519.PublicKey
}

func NewResolveLightMarketInstruction(
	accounts *ResolveLightMarketInstructionAccounts,
	args *ResolveLightMarketInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["resolveLightMarket"],
		[]interface{}{args.Outcome},
		[]ed25519.PublicKey{
			accounts.Creator,
			accounts.Market,
		},
	)
}

type ResolveLightMarketOracleInstructionArgs struct {
	// AttestedPrice is only consulted by the program when PriceFeed is the
	// system program (manual attestation); with a real Pyth feed the price
	// is read on-chain.
	AttestedPrice int64
	Outcome       bool
}

type ResolveLightMarketOracleInstructionAccounts struct {
	OracleAuthority ed25519.PublicKey
	Market          ed25519.PublicKey
	PriceFeed       ed25519.PublicKey
}

func NewResolveLightMarketOracleInstruction(
	accounts *ResolveLightMarketOracleInstructionAccounts,
	args *ResolveLightMarketOracleInstructionArgs,
) (Instruction, error) {
	return Assemble(
		instructionSpecs["resolveLightMarketOracle"],
		[]interface{}{args.AttestedPrice, args.Outcome},
		[]ed25519.PublicKey{
			accounts.OracleAuthority,
			accounts.Market,
			accounts.PriceFeed,
		},
	)
}

type ClaimLightWinningsInstructionAccounts struct {
	Bettor      ed25519.PublicKey
	Market      ed25519.PublicKey
	Bet         ed25519.PublicKey
	MarketVault ed25519.PublicKey
}

func NewClaimLightWinningsInstruction(accounts *ClaimLightWinningsInstructionAccounts) (Instruction, error) {
	return Assemble(
		instructionSpecs["claimLightWinnings"],
		nil,
		[]ed25519.PublicKey{
			accounts.Bettor,
			accounts.Market,
			accounts.Bet,
			accounts.MarketVault,
			SYSTEM_PROGRAM_ID,
		},
	)
}
