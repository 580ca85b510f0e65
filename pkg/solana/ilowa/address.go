package ilowa

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/ilowa-labs/ilowa-go/pkg/solana"
)

// Seed prefixes are raw ASCII tags, never length-prefixed: the Borsh-style
// prefixing in the argument codec does not apply to PDA seed material.
var (
	marketPrefix           = []byte("market")
	lightMarketPrefix      = []byte("light_market")
	betPrefix              = []byte("bet")
	lightBetPrefix         = []byte("light_bet")
	shieldedBetPrefix      = []byte("shielded_bet")
	shieldedLightBetPrefix = []byte("shielded_light_bet")
	treasuryPrefix         = []byte("treasury")
	vaultPrefix            = []byte("vault")
	lightVaultPrefix       = []byte("light_vault")
	shieldedPoolPrefix     = []byte("shielded_pool")
	elderGuardianPrefix    = []byte("elder_guardian")
	socialRecoveryPrefix   = []byte("social_recovery")
)

type GetMarketAddressArgs struct {
	Creator   ed25519.PublicKey
	ExpiresAt int64
}

type GetLightMarketAddressArgs struct {
	Creator     ed25519.PublicKey
	ResolveDate int64
}

type GetBetAddressArgs struct {
	Market ed25519.PublicKey
	User   ed25519.PublicKey
}

type GetVaultAddressArgs struct {
	Market ed25519.PublicKey
}

func GetMarketAddress(args *GetMarketAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		marketPrefix,
		args.Creator,
		int64SeedBytes(args.ExpiresAt),
	)
}

func GetLightMarketAddress(args *GetLightMarketAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		lightMarketPrefix,
		args.Creator,
		int64SeedBytes(args.ResolveDate),
	)
}

func GetBetAddress(args *GetBetAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		betPrefix,
		args.Market,
		args.User,
	)
}

func GetLightBetAddress(args *GetBetAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		lightBetPrefix,
		args.Market,
		args.User,
	)
}

func GetShieldedBetAddress(args *GetBetAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		shieldedBetPrefix,
		args.Market,
		args.User,
	)
}

func GetShieldedLightBetAddress(args *GetBetAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		shieldedLightBetPrefix,
		args.Market,
		args.User,
	)
}

// GetTreasuryAddress returns the platform treasury PDA. It takes no dynamic
// seeds; there is exactly one treasury per program deployment.
func GetTreasuryAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		treasuryPrefix,
	)
}

func GetVaultAddress(args *GetVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		vaultPrefix,
		args.Market,
	)
}

func GetLightVaultAddress(args *GetVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		lightVaultPrefix,
		args.Market,
	)
}

func GetShieldedPoolAddress(args *GetVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		shieldedPoolPrefix,
		args.Market,
	)
}

func GetElderGuardianAddress(user ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		elderGuardianPrefix,
		user,
	)
}

func GetSocialRecoveryAddress(user ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		socialRecoveryPrefix,
		user,
	)
}

// int64SeedBytes matches the on-chain to_le_bytes() seed encoding for
// timestamp seeds.
func int64SeedBytes(v int64) []byte {
	seed := make([]byte, 8)
	binary.LittleEndian.PutUint64(seed, uint64(v))
	return seed
}
