package ilowa

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/ilowa-labs/ilowa-go/pkg/solana/binary"
)

type MarketStatus uint8

const (
	MarketStatusActive MarketStatus = iota
	MarketStatusResolved
	MarketStatusExpired
	MarketStatusDisputed
)

// MarketAccountMinSize is the smallest possible market account: all three
// strings empty, no outcome, no resolved-at.
const MarketAccountMinSize = (8 + // discriminator
	32 + // creator
	4 + // question length prefix
	4 + // category length prefix
	4 + // region length prefix
	1 + // is_private
	1 + // status
	1 + // outcome option flag
	8 + // yes_pool
	8 + // no_pool
	4 + // total_bets
	8 + // created_at
	8 + // expires_at
	1 + // resolved_at option flag
	1) // bump

// MarketAccount is the decoded view of a classic (full question text)
// prediction market.
type MarketAccount struct {
	Creator   ed25519.PublicKey
	Question  string
	Category  string
	Region    string
	IsPrivate bool
	Status    MarketStatus
	Outcome   *bool
	YesPool   uint64
	NoPool    uint64
	TotalBets uint32
	CreatedAt int64
	ExpiresAt int64
	// ResolvedAt is nil until the market resolves.
	ResolvedAt *int64
	Bump       uint8
}

// Unmarshal decodes a market account blob. It returns false when the blob
// is shorter than the layout requires, which callers must treat as the
// account not existing yet rather than as corrupt data.
func (obj *MarketAccount) Unmarshal(data []byte) bool {
	if len(data) < MarketAccountMinSize {
		return false
	}

	offset := DiscriminatorSize

	if err := binary.ReadKey(data, &obj.Creator, &offset); err != nil {
		return false
	}
	if err := binary.ReadString(data, &obj.Question, &offset); err != nil {
		return false
	}
	if err := binary.ReadString(data, &obj.Category, &offset); err != nil {
		return false
	}
	if err := binary.ReadString(data, &obj.Region, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.IsPrivate, &offset); err != nil {
		return false
	}

	var status uint8
	if err := binary.ReadUint8(data, &status, &offset); err != nil {
		return false
	}
	obj.Status = MarketStatus(status)

	if !readOptionalBool(data, &obj.Outcome, &offset) {
		return false
	}

	if err := binary.ReadUint64(data, &obj.YesPool, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint64(data, &obj.NoPool, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint32(data, &obj.TotalBets, &offset); err != nil {
		return false
	}
	if err := binary.ReadInt64(data, &obj.CreatedAt, &offset); err != nil {
		return false
	}
	if err := binary.ReadInt64(data, &obj.ExpiresAt, &offset); err != nil {
		return false
	}
	if !readOptionalInt64(data, &obj.ResolvedAt, &offset) {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Bump, &offset); err != nil {
		return false
	}

	return true
}

func (obj *MarketAccount) String() string {
	return fmt.Sprintf(
		"Market{creator=%s,question=%q,status=%d,yes_pool=%d,no_pool=%d,total_bets=%d,expires_at=%d}",
		base58.Encode(obj.Creator),
		obj.Question,
		obj.Status,
		obj.YesPool,
		obj.NoPool,
		obj.TotalBets,
		obj.ExpiresAt,
	)
}

// BetAccountSize is the exact size of a bet account.
const BetAccountSize = (8 + // discriminator
	32 + // market
	32 + // user
	1 + // outcome
	8 + // amount
	1 + // is_shielded
	8 + // timestamp
	1 + // claimed
	1) // bump

type BetAccount struct {
	Market     ed25519.PublicKey
	User       ed25519.PublicKey
	Outcome    bool
	Amount     uint64
	IsShielded bool
	Timestamp  int64
	Claimed    bool
	Bump       uint8
}

func (obj *BetAccount) Unmarshal(data []byte) bool {
	if len(data) < BetAccountSize {
		return false
	}

	offset := DiscriminatorSize

	if err := binary.ReadKey(data, &obj.Market, &offset); err != nil {
		return false
	}
	if err := binary.ReadKey(data, &obj.User, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.Outcome, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint64(data, &obj.Amount, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.IsShielded, &offset); err != nil {
		return false
	}
	if err := binary.ReadInt64(data, &obj.Timestamp, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.Claimed, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Bump, &offset); err != nil {
		return false
	}

	return true
}

// ShieldedBetAccountMinSize is the smallest possible shielded bet: both
// ciphertext vectors empty. Real accounts carry 32..128 bytes in each.
const ShieldedBetAccountMinSize = (8 + // discriminator
	32 + // market
	32 + // bettor
	4 + // encrypted_amount length prefix
	1 + // outcome
	4 + // zk_proof length prefix
	8 + // timestamp
	1 + // resolved
	1) // bump

// ShieldedBetAccount stores ciphertext only; the plaintext amount never
// touches the chain.
type ShieldedBetAccount struct {
	Market          ed25519.PublicKey
	Bettor          ed25519.PublicKey
	EncryptedAmount []byte
	Outcome         bool
	ZkProof         []byte
	Timestamp       int64
	Resolved        bool
	Bump            uint8
}

func (obj *ShieldedBetAccount) Unmarshal(data []byte) bool {
	if len(data) < ShieldedBetAccountMinSize {
		return false
	}

	offset := DiscriminatorSize

	if err := binary.ReadKey(data, &obj.Market, &offset); err != nil {
		return false
	}
	if err := binary.ReadKey(data, &obj.Bettor, &offset); err != nil {
		return false
	}
	if err := binary.ReadBytes(data, &obj.EncryptedAmount, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.Outcome, &offset); err != nil {
		return false
	}
	if err := binary.ReadBytes(data, &obj.ZkProof, &offset); err != nil {
		return false
	}
	if err := binary.ReadInt64(data, &obj.Timestamp, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.Resolved, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Bump, &offset); err != nil {
		return false
	}

	return true
}

func readOptionalBool(src []byte, dst **bool, offset *int) bool {
	var present bool
	if err := binary.ReadBool(src, &present, offset); err != nil {
		return false
	}
	if !present {
		*dst = nil
		return true
	}
	var v bool
	if err := binary.ReadBool(src, &v, offset); err != nil {
		return false
	}
	*dst = &v
	return true
}

func readOptionalInt64(src []byte, dst **int64, offset *int) bool {
	var present bool
	if err := binary.ReadBool(src, &present, offset); err != nil {
		return false
	}
	if !present {
		*dst = nil
		return true
	}
	var v int64
	if err := binary.ReadInt64(src, &v, offset); err != nil {
		return false
	}
	*dst = &v
	return true
}
