package ilowa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilowa-labs/ilowa-go/pkg/solana/binary"
)

func TestNewCreateMarketInstruction(t *testing.T) {
	accounts := &CreateMarketInstructionAccounts{
		Creator: testCreator(),
		Market:  testAccounts(1)[0],
	}

	instruction, err := NewCreateMarketInstruction(accounts, &CreateMarketInstructionArgs{
		Question:  "Will it rain?",
		Category:  "weather",
		Region:    "EU",
		IsPrivate: true,
		ExpiresAt: testExpiresAt,
	})
	require.NoError(t, err)

	expected := []byte{0x67, 0xe2, 0x61, 0xeb, 0xc8, 0xbc, 0xfb, 0xfe}
	expected = append(expected, 0x0d, 0x00, 0x00, 0x00)
	expected = append(expected, []byte("Will it rain?")...)
	expected = append(expected, 0x07, 0x00, 0x00, 0x00)
	expected = append(expected, []byte("weather")...)
	expected = append(expected, 0x02, 0x00, 0x00, 0x00)
	expected = append(expected, []byte("EU")...)
	expected = append(expected, 0x01)                                           // is_private
	expected = append(expected, 0x00, 0xb9, 0x55, 0x69, 0x00, 0x00, 0x00, 0x00) // 1767225600
	assert.Equal(t, expected, instruction.Data)

	require.Len(t, instruction.Accounts, 3)
	assert.EqualValues(t, accounts.Creator, instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.EqualValues(t, accounts.Market, instruction.Accounts[1].PublicKey)
	assert.False(t, instruction.Accounts[1].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.EqualValues(t, SYSTEM_PROGRAM_ID, instruction.Accounts[2].PublicKey)
	assert.False(t, instruction.Accounts[2].IsSigner)
	assert.False(t, instruction.Accounts[2].IsWritable)
}

func TestNewPlaceBetInstruction(t *testing.T) {
	accounts := &PlaceBetInstructionAccounts{
		User:             testUser(),
		Market:           testAccounts(1)[0],
		Bet:              testAccounts(1)[0],
		PlatformTreasury: testAccounts(1)[0],
		MarketVault:      testAccounts(1)[0],
	}

	instruction, err := NewPlaceBetInstruction(accounts, &PlaceBetInstructionArgs{
		Amount:  5_000_000_000,
		Outcome: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0xde, 0x3e, 0x43, 0xdc, 0x3f, 0xa6, 0x7e, 0x21, // discriminator
		0x00, 0xf2, 0x05, 0x2a, 0x01, 0x00, 0x00, 0x00, // 5 SOL in lamports
		0x01, // outcome yes
	}, instruction.Data)

	require.Len(t, instruction.Accounts, 6)
	assert.EqualValues(t, accounts.User, instruction.Accounts[0].PublicKey)
	assert.EqualValues(t, accounts.Market, instruction.Accounts[1].PublicKey)
	assert.EqualValues(t, accounts.Bet, instruction.Accounts[2].PublicKey)
	assert.EqualValues(t, accounts.PlatformTreasury, instruction.Accounts[3].PublicKey)
	assert.EqualValues(t, accounts.MarketVault, instruction.Accounts[4].PublicKey)
	assert.EqualValues(t, SYSTEM_PROGRAM_ID, instruction.Accounts[5].PublicKey)
}

func TestNewShieldedBetInstruction(t *testing.T) {
	instruction, err := NewShieldedBetInstruction(
		&ShieldedBetInstructionAccounts{
			User:             testUser(),
			Market:           testAccounts(1)[0],
			Bet:              testAccounts(1)[0],
			PlatformTreasury: testAccounts(1)[0],
		},
		&ShieldedBetInstructionArgs{
			EncryptedAmount: []byte{0xaa, 0xbb, 0xcc},
			ZkProof:         []byte{0x01, 0x02},
			Outcome:         false,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x5a, 0x69, 0x5f, 0x7e, 0x6f, 0x65, 0x3f, 0xb1, // discriminator
		0x03, 0x00, 0x00, 0x00, 0xaa, 0xbb, 0xcc, // encrypted amount
		0x02, 0x00, 0x00, 0x00, 0x01, 0x02, // zk proof
		0x00, // outcome no
	}, instruction.Data)

	// No market vault on the shielded path.
	assert.Len(t, instruction.Accounts, 5)
}

func TestNewCreateLightMarketInstruction(t *testing.T) {
	oracleAuthority := testAccounts(1)[0]
	digest := binary.FoldDigest([]byte("Will Bitcoin close above $100k on 2026-12-31?"))

	instruction, err := NewCreateLightMarketInstruction(
		&CreateLightMarketInstructionAccounts{
			Creator: testCreator(),
			Market:  testAccounts(1)[0],
		},
		&CreateLightMarketInstructionArgs{
			QuestionHash:    digest,
			Category:        2,
			Region:          0,
			ResolveDate:     testResolveDate,
			OracleAuthority: oracleAuthority,
			OracleThreshold: 12_000_000_000,
			OracleAbove:     true,
		},
	)
	require.NoError(t, err)

	expected := []byte{0x0b, 0xf2, 0x37, 0x9f, 0xc0, 0xc8, 0xd5, 0xc2}
	expected = append(expected, digest[:]...)
	expected = append(expected, 0x02, 0x00)                                     // category, region
	expected = append(expected, 0x80, 0x81, 0xa3, 0x69, 0x00, 0x00, 0x00, 0x00) // 1772323200
	expected = append(expected, oracleAuthority...)
	expected = append(expected, 0x00, 0x78, 0x41, 0xcb, 0x02, 0x00, 0x00, 0x00) // 12_000_000_000
	expected = append(expected, 0x01)                                           // oracle above
	assert.Equal(t, expected, instruction.Data)
}

func TestNewResolveInstructions(t *testing.T) {
	market := testAccounts(1)[0]

	instruction, err := NewResolveMarketInstruction(
		&ResolveMarketInstructionAccounts{Resolver: testCreator(), Market: market},
		&ResolveMarketInstructionArgs{Outcome: true},
	)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x9b, 0x17, 0x50, 0xad, 0x2e, 0x4a, 0x17, 0xef, 0x01}, instruction.Data)
	assert.True(t, instruction.Accounts[0].IsWritable)

	instruction, err = NewResolveLightMarketInstruction(
		&ResolveLightMarketInstructionAccounts{Creator: testCreator(), Market: market},
		&ResolveLightMarketInstructionArgs{Outcome: false},
	)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd2, 0xf4, 0xde, 0x74, 0xd7, 0x34, 0x90, 0x00}, instruction.Data)
	// Creator signs but is not debited on the light path.
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.False(t, instruction.Accounts[0].IsWritable)
}

func TestNewResolveLightMarketOracleInstruction(t *testing.T) {
	instruction, err := NewResolveLightMarketOracleInstruction(
		&ResolveLightMarketOracleInstructionAccounts{
			OracleAuthority: testAccounts(1)[0],
			Market:          testAccounts(1)[0],
			PriceFeed:       SYSTEM_PROGRAM_ID, // manual attestation mode
		},
		&ResolveLightMarketOracleInstructionArgs{
			AttestedPrice: 12_345_678_900,
			Outcome:       true,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x4f, 0x20, 0xdf, 0x97, 0xeb, 0xc9, 0x18, 0x20,
		0x34, 0x1c, 0xdc, 0xdf, 0x02, 0x00, 0x00, 0x00, // 12_345_678_900
		0x01,
	}, instruction.Data)

	require.Len(t, instruction.Accounts, 3)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.False(t, instruction.Accounts[0].IsWritable)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.False(t, instruction.Accounts[2].IsSigner)
	assert.False(t, instruction.Accounts[2].IsWritable)
}

func TestNewClaimInstructions(t *testing.T) {
	instruction, err := NewClaimWinningsInstruction(&ClaimWinningsInstructionAccounts{
		User:        testUser(),
		Market:      testAccounts(1)[0],
		Bet:         testAccounts(1)[0],
		MarketVault: testAccounts(1)[0],
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xa1, 0xd7, 0x18, 0x3b, 0x0e, 0xec, 0xf2, 0xdd}, instruction.Data)
	assert.Len(t, instruction.Accounts, 5)

	instruction, err = NewClaimLightWinningsInstruction(&ClaimLightWinningsInstructionAccounts{
		Bettor:      testUser(),
		Market:      testAccounts(1)[0],
		Bet:         testAccounts(1)[0],
		MarketVault: testAccounts(1)[0],
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc5, 0x2b, 0x52, 0x52, 0xc5, 0x88, 0x24, 0x8b}, instruction.Data)
	assert.Len(t, instruction.Accounts, 5)
}

func TestNewElderGuardianInstructions(t *testing.T) {
	user := testUser()
	guardianAccount, _, err := GetElderGuardianAddress(user)
	require.NoError(t, err)
	guardianKey := testAccounts(1)[0]

	instruction, err := NewInitElderGuardianInstruction(&InitElderGuardianInstructionAccounts{
		User:     user,
		Guardian: guardianAccount,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x61, 0x70, 0xd6, 0x9d, 0x31, 0x1e, 0xb5, 0x36}, instruction.Data)
	assert.Len(t, instruction.Accounts, 3)

	instruction, err = NewSetGuardianKeyInstruction(
		&SetGuardianKeyInstructionAccounts{User: user, Guardian: guardianAccount},
		&SetGuardianKeyInstructionArgs{GuardianKey: guardianKey},
	)
	require.NoError(t, err)
	expected := append([]byte{0xf6, 0x6a, 0x11, 0x98, 0xda, 0x9f, 0xd4, 0x45}, guardianKey...)
	assert.Equal(t, expected, instruction.Data)

	instruction, err = NewInitiateRecoveryInstruction(&InitiateRecoveryInstructionAccounts{
		Initiator: guardianKey,
		Guardian:  guardianAccount,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x84, 0x94, 0x3c, 0x4a, 0x31, 0xb2, 0xeb, 0xbb}, instruction.Data)

	instruction, err = NewCancelRecoveryInstruction(&CancelRecoveryInstructionAccounts{
		User:     user,
		Guardian: guardianAccount,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xb0, 0x17, 0xcb, 0x25, 0x79, 0xfb, 0xe3, 0x53}, instruction.Data)
}

func TestNewSocialRecoveryInstructions(t *testing.T) {
	user := testUser()
	recoveryAccount, _, err := GetSocialRecoveryAddress(user)
	require.NoError(t, err)

	guardians := testAccounts(5)
	instruction, err := NewInitSocialRecoveryInstruction(
		&InitSocialRecoveryInstructionAccounts{User: user, SocialRecovery: recoveryAccount},
		&InitSocialRecoveryInstructionArgs{Guardians: guardians},
	)
	require.NoError(t, err)

	expected := []byte{0x8c, 0x71, 0x4a, 0xa9, 0x31, 0x83, 0xab, 0x11}
	expected = append(expected, 0x05, 0x00, 0x00, 0x00)
	for _, g := range guardians {
		expected = append(expected, g...)
	}
	assert.Equal(t, expected, instruction.Data)
	assert.Len(t, instruction.Data, DiscriminatorSize+4+5*32)

	newWallet := testAccounts(1)[0]
	instruction, err = NewApproveSocialRecoveryInstruction(
		&ApproveSocialRecoveryInstructionAccounts{Guardian: guardians[0], SocialRecovery: recoveryAccount},
		&ApproveSocialRecoveryInstructionArgs{NewWallet: newWallet},
	)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0x45, 0x97, 0xb2, 0x29, 0x8d, 0x89, 0x2f, 0xb8}, newWallet...), instruction.Data)
}

func TestNewTipDjInstruction(t *testing.T) {
	instruction, err := NewTipDjInstruction(
		&TipDjInstructionAccounts{
			Tipper:           testUser(),
			Dj:               testAccounts(1)[0],
			PlatformTreasury: testAccounts(1)[0],
		},
		&TipDjInstructionArgs{Amount: 100_000_000},
	)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0xb1, 0xc7, 0x34, 0xb8, 0x91, 0x21, 0x1a, 0x94,
		0x00, 0xe1, 0xf5, 0x05, 0x00, 0x00, 0x00, 0x00, // 0.1 SOL
	}, instruction.Data)

	require.Len(t, instruction.Accounts, 4)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.False(t, instruction.Accounts[1].IsSigner)
}

func TestNewInstruction_RejectsBadAccounts(t *testing.T) {
	_, err := NewPlaceBetInstruction(
		&PlaceBetInstructionAccounts{
			User:             testUser(),
			Market:           testAccounts(1)[0][:16], // wrong length
			Bet:              testAccounts(1)[0],
			PlatformTreasury: testAccounts(1)[0],
			MarketVault:      testAccounts(1)[0],
		},
		&PlaceBetInstructionArgs{Amount: 1, Outcome: true},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}
