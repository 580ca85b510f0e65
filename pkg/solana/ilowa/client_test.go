package ilowa

import (
	"crypto/ed25519"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilowa-labs/ilowa-go/pkg/solana"
	"github.com/ilowa-labs/ilowa-go/pkg/solana/binary"
)

type fakeSolanaClient struct {
	accounts map[string]solana.AccountInfo
	err      error
}

func (c *fakeSolanaClient) GetAccountInfo(account ed25519.PublicKey, _ solana.Commitment) (solana.AccountInfo, error) {
	if c.err != nil {
		return solana.AccountInfo{}, c.err
	}
	info, ok := c.accounts[string(account)]
	if !ok {
		return solana.AccountInfo{}, solana.ErrNoAccountInfo
	}
	return info, nil
}

func marshalBetAccount(t *testing.T, market, user ed25519.PublicKey, amount uint64) []byte {
	data := make([]byte, DiscriminatorSize)
	data, err := binary.AppendKey(data, market)
	require.NoError(t, err)
	data, err = binary.AppendKey(data, user)
	require.NoError(t, err)
	data = binary.AppendBool(data, true)
	data = binary.AppendUint64(data, amount)
	data = binary.AppendBool(data, false)
	data = binary.AppendInt64(data, 1764000123)
	data = binary.AppendBool(data, false)
	data = binary.AppendUint8(data, 254)
	return data
}

func TestClient_GetBet(t *testing.T) {
	market := testAccounts(1)[0]
	user := testUser()
	betAddress, _, err := GetBetAddress(&GetBetAddressArgs{Market: market, User: user})
	require.NoError(t, err)

	sc := &fakeSolanaClient{
		accounts: map[string]solana.AccountInfo{
			string(betAddress): {
				Data:     marshalBetAccount(t, market, user, 250_000_000),
				Owner:    PROGRAM_ID,
				Lamports: 1_000_000,
			},
		},
	}
	client := NewClient(sc)

	account, err := client.GetBet(betAddress, solana.CommitmentFinalized)
	require.NoError(t, err)
	assert.EqualValues(t, market, account.Market)
	assert.EqualValues(t, user, account.User)
	assert.Equal(t, uint64(250_000_000), account.Amount)
}

func TestClient_GetBet_NotFound(t *testing.T) {
	client := NewClient(&fakeSolanaClient{})

	_, err := client.GetBet(testAccounts(1)[0], solana.CommitmentFinalized)
	assert.Equal(t, ErrAccountNotFound, err)
}

func TestClient_GetBet_WrongOwner(t *testing.T) {
	market := testAccounts(1)[0]
	user := testUser()
	betAddress, _, err := GetBetAddress(&GetBetAddressArgs{Market: market, User: user})
	require.NoError(t, err)

	sc := &fakeSolanaClient{
		accounts: map[string]solana.AccountInfo{
			string(betAddress): {
				Data:  marshalBetAccount(t, market, user, 1),
				Owner: SYSTEM_PROGRAM_ID,
			},
		},
	}
	client := NewClient(sc)

	_, err = client.GetBet(betAddress, solana.CommitmentFinalized)
	assert.Equal(t, ErrInvalidAccountData, err)
}

func TestClient_GetBet_MalformedData(t *testing.T) {
	address := testAccounts(1)[0]
	sc := &fakeSolanaClient{
		accounts: map[string]solana.AccountInfo{
			string(address): {
				Data:  make([]byte, BetAccountSize-1),
				Owner: PROGRAM_ID,
			},
		},
	}
	client := NewClient(sc)

	_, err := client.GetBet(address, solana.CommitmentFinalized)
	assert.Equal(t, ErrInvalidAccountData, err)
}

func TestClient_GetBet_TransportError(t *testing.T) {
	rpcErr := errors.New("rpc unavailable")
	client := NewClient(&fakeSolanaClient{err: rpcErr})

	_, err := client.GetBet(testAccounts(1)[0], solana.CommitmentFinalized)
	require.Error(t, err)
	assert.Equal(t, rpcErr, errors.Cause(err))
}

func TestClient_GetElderGuardian(t *testing.T) {
	user := testUser()
	address, _, err := GetElderGuardianAddress(user)
	require.NoError(t, err)

	data := make([]byte, DiscriminatorSize)
	data, err = binary.AppendKey(data, user)
	require.NoError(t, err)
	data, err = binary.AppendKey(data, testAccounts(1)[0])
	require.NoError(t, err)
	data = binary.AppendInt64(data, 604800)
	data = binary.AppendBool(data, true)
	data = binary.AppendUint8(data, 255)

	sc := &fakeSolanaClient{
		accounts: map[string]solana.AccountInfo{
			string(address): {Data: data, Owner: PROGRAM_ID},
		},
	}
	client := NewClient(sc)

	account, err := client.GetElderGuardian(user, solana.CommitmentConfirmed)
	require.NoError(t, err)
	assert.EqualValues(t, user, account.Owner)
	assert.True(t, account.RecoveryInitiated)
}

func TestClient_GetMarket(t *testing.T) {
	creator := testCreator()
	marketAddress, _, err := GetMarketAddress(&GetMarketAddressArgs{
		Creator:   creator,
		ExpiresAt: testExpiresAt,
	})
	require.NoError(t, err)

	data := make([]byte, DiscriminatorSize)
	data, err = binary.AppendKey(data, creator)
	require.NoError(t, err)
	for _, s := range []string{"Will it rain?", "weather", "EU"} {
		data, err = binary.AppendString(data, s)
		require.NoError(t, err)
	}
	data = binary.AppendBool(data, false)
	data = binary.AppendUint8(data, uint8(MarketStatusActive))
	data = binary.AppendBool(data, false)
	data = binary.AppendUint64(data, 0)
	data = binary.AppendUint64(data, 0)
	data = binary.AppendUint32(data, 0)
	data = binary.AppendInt64(data, 1764000000)
	data = binary.AppendInt64(data, testExpiresAt)
	data = binary.AppendBool(data, false)
	data = binary.AppendUint8(data, 250)

	sc := &fakeSolanaClient{
		accounts: map[string]solana.AccountInfo{
			string(marketAddress): {Data: data, Owner: PROGRAM_ID},
		},
	}
	client := NewClient(sc)

	account, err := client.GetMarket(marketAddress, solana.CommitmentFinalized)
	require.NoError(t, err)
	assert.Equal(t, "Will it rain?", account.Question)
	assert.EqualValues(t, creator, account.Creator)
}
