package ilowa

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/ilowa-labs/ilowa-go/pkg/solana/binary"
)

// Light market outcomes are a plain u8 rather than option<bool>.
const (
	LightMarketOutcomeUnresolved uint8 = iota
	LightMarketOutcomeYes
	LightMarketOutcomeNo
)

// LightMarketAccountSize is the exact size of a light market account. The
// question lives off chain; only its digest is stored.
const LightMarketAccountSize = (8 + // discriminator
	32 + // creator
	32 + // question_hash
	1 + // category
	1 + // region
	8 + // resolve_date
	8 + // yes_pool
	8 + // no_pool
	4 + // total_bets
	4 + // shielded_bet_count
	1 + // is_active
	1 + // resolved
	1 + // outcome
	8 + // created_at
	32 + // oracle_authority
	8 + // oracle_threshold
	1 + // oracle_above
	1) // bump

type LightMarketAccount struct {
	Creator          ed25519.PublicKey
	QuestionHash     binary.Digest
	Category         uint8
	Region           uint8
	ResolveDate      int64
	YesPool          uint64
	NoPool           uint64
	TotalBets        uint32
	ShieldedBetCount uint32
	IsActive         bool
	Resolved         bool
	Outcome          uint8
	CreatedAt        int64
	OracleAuthority  ed25519.PublicKey
	// OracleThreshold is the attested price the oracle resolution path
	// compares against, scaled by the feed's exponent.
	OracleThreshold int64
	OracleAbove     bool
	Bump            uint8
}

func (obj *LightMarketAccount) Unmarshal(data []byte) bool {
	if len(data) < LightMarketAccountSize {
		return false
	}

	offset := DiscriminatorSize

	if err := binary.ReadKey(data, &obj.Creator, &offset); err != nil {
		return false
	}
	if err := binary.ReadDigest(data, &obj.QuestionHash, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Category, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Region, &offset); err != nil {
		return false
	}
	if err := binary.ReadInt64(data, &obj.ResolveDate, &offset); err != nil {
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
	if err := binary.ReadUint32(data, &obj.ShieldedBetCount, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.IsActive, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.Resolved, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Outcome, &offset); err != nil {
		return false
	}
	if err := binary.ReadInt64(data, &obj.CreatedAt, &offset); err != nil {
		return false
	}
	if err := binary.ReadKey(data, &obj.OracleAuthority, &offset); err != nil {
		return false
	}
	if err := binary.ReadInt64(data, &obj.OracleThreshold, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.OracleAbove, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Bump, &offset); err != nil {
		return false
	}

	return true
}

func (obj *LightMarketAccount) String() string {
	return fmt.Sprintf(
		"LightMarket{creator=%s,question_hash=%x,resolve_date=%d,yes_pool=%d,no_pool=%d,resolved=%t,outcome=%d}",
		base58.Encode(obj.Creator),
		obj.QuestionHash,
		obj.ResolveDate,
		obj.YesPool,
		obj.NoPool,
		obj.Resolved,
		obj.Outcome,
	)
}

// LightBetAccountSize is the exact size of a light bet account.
const LightBetAccountSize = (8 + // discriminator
	32 + // market
	32 + // bettor
	8 + // amount
	1 + // outcome
	8 + // timestamp
	1 + // claimed
	1) // bump

type LightBetAccount struct {
	Market    ed25519.PublicKey
	Bettor    ed25519.PublicKey
	Amount    uint64
	Outcome   bool
	Timestamp int64
	Claimed   bool
	Bump      uint8
}

func (obj *LightBetAccount) Unmarshal(data []byte) bool {
	if len(data) < LightBetAccountSize {
		return false
	}

	offset := DiscriminatorSize

	if err := binary.ReadKey(data, &obj.Market, &offset); err != nil {
		return false
	}
	if err := binary.ReadKey(data, &obj.Bettor, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint64(data, &obj.Amount, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.Outcome, &offset); err != nil {
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

// ShieldedLightBetAccountMinSize mirrors ShieldedBetAccountMinSize; the
// only layout difference is a claimed flag in place of resolved.
const ShieldedLightBetAccountMinSize = ShieldedBetAccountMinSize

type ShieldedLightBetAccount struct {
	Market          ed25519.PublicKey
	Bettor          ed25519.PublicKey
	EncryptedAmount []byte
	Outcome         bool
	ZkProof         []byte
	Timestamp       int64
	Claimed         bool
	Bump            uint8
}

func (obj *ShieldedLightBetAccount) Unmarshal(data []byte) bool {
	if len(data) < ShieldedLightBetAccountMinSize {
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
	if err := binary.ReadBool(data, &obj.Claimed, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Bump, &offset); err != nil {
		return false
	}

	return true
}
