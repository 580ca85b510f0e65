package ilowa

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/ilowa-labs/ilowa-go/pkg/solana"
)

var (
	// ErrAccountNotFound indicates there is no account at the given address.
	ErrAccountNotFound = errors.New("account not found")
)

// Client provides fetch-and-decode access to program accounts over any
// solana.Client implementation.
type Client struct {
	sc solana.Client
}

// NewClient creates a new Client.
func NewClient(sc solana.Client) *Client {
	return &Client{
		sc: sc,
	}
}

// GetMarket returns the decoded market account at the specified address.
func (c *Client) GetMarket(address ed25519.PublicKey, commitment solana.Commitment) (*MarketAccount, error) {
	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var account MarketAccount
	if !account.Unmarshal(data) {
		return nil, ErrInvalidAccountData
	}
	return &account, nil
}

// GetLightMarket returns the decoded light market account at the specified
// address.
func (c *Client) GetLightMarket(address ed25519.PublicKey, commitment solana.Commitment) (*LightMarketAccount, error) {
	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var account LightMarketAccount
	if !account.Unmarshal(data) {
		return nil, ErrInvalidAccountData
	}
	return &account, nil
}

// GetBet returns the decoded bet account at the specified address.
func (c *Client) GetBet(address ed25519.PublicKey, commitment solana.Commitment) (*BetAccount, error) {
	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var account BetAccount
	if !account.Unmarshal(data) {
		return nil, ErrInvalidAccountData
	}
	return &account, nil
}

// GetLightBet returns the decoded light bet account at the specified address.
func (c *Client) GetLightBet(address ed25519.PublicKey, commitment solana.Commitment) (*LightBetAccount, error) {
	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var account LightBetAccount
	if !account.Unmarshal(data) {
		return nil, ErrInvalidAccountData
	}
	return &account, nil
}

// GetShieldedBet returns the decoded shielded bet account at the specified
// address.
func (c *Client) GetShieldedBet(address ed25519.PublicKey, commitment solana.Commitment) (*ShieldedBetAccount, error) {
	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var account ShieldedBetAccount
	if !account.Unmarshal(data) {
		return nil, ErrInvalidAccountData
	}
	return &account, nil
}

// GetElderGuardian returns the decoded elder guardian account for the given
// user wallet. The PDA is derived internally.
func (c *Client) GetElderGuardian(user ed25519.PublicKey, commitment solana.Commitment) (*ElderGuardianAccount, error) {
	address, _, err := GetElderGuardianAddress(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive elder guardian address")
	}

	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var account ElderGuardianAccount
	if !account.Unmarshal(data) {
		return nil, ErrInvalidAccountData
	}
	return &account, nil
}

// GetSocialRecovery returns the decoded social recovery account for the
// given user wallet. The PDA is derived internally.
func (c *Client) GetSocialRecovery(user ed25519.PublicKey, commitment solana.Commitment) (*SocialRecoveryAccount, error) {
	address, _, err := GetSocialRecoveryAddress(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive social recovery address")
	}

	data, err := c.getProgramAccountData(address, commitment)
	if err != nil {
		return nil, err
	}

	var account SocialRecoveryAccount
	if !account.Unmarshal(data) {
		return nil, ErrInvalidAccountData
	}
	return &account, nil
}

func (c *Client) getProgramAccountData(address ed25519.PublicKey, commitment solana.Commitment) ([]byte, error) {
	accountInfo, err := c.sc.GetAccountInfo(address, commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, ErrAccountNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to get account info")
	}

	if !bytes.Equal(accountInfo.Owner, PROGRAM_ID) {
		return nil, ErrInvalidAccountData
	}

	return accountInfo.Data, nil
}
