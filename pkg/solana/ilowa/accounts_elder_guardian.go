package ilowa

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/ilowa-labs/ilowa-go/pkg/solana/binary"
)

// ElderGuardianAccountSize is the minimum size of an elder guardian
// account. The fields below live at fixed offsets.
const ElderGuardianAccountSize = (8 + // discriminator
	32 + // owner
	32 + // guardian_key
	8 + // timelock
	1 + // recovery_initiated
	1) // bump

// ElderGuardianAccount is the single-guardian recovery state attached to a
// user wallet.
type ElderGuardianAccount struct {
	Owner             ed25519.PublicKey
	GuardianKey       ed25519.PublicKey
	Timelock          int64
	RecoveryInitiated bool
	Bump              uint8
}

func (obj *ElderGuardianAccount) Unmarshal(data []byte) bool {
	if len(data) < ElderGuardianAccountSize {
		return false
	}

	offset := DiscriminatorSize

	if err := binary.ReadKey(data, &obj.Owner, &offset); err != nil {
		return false
	}
	if err := binary.ReadKey(data, &obj.GuardianKey, &offset); err != nil {
		return false
	}
	if err := binary.ReadInt64(data, &obj.Timelock, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.RecoveryInitiated, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Bump, &offset); err != nil {
		return false
	}

	return true
}

func (obj *ElderGuardianAccount) String() string {
	return fmt.Sprintf(
		"ElderGuardian{owner=%s,guardian=%s,timelock=%d,recovery_initiated=%t}",
		base58.Encode(obj.Owner),
		base58.Encode(obj.GuardianKey),
		obj.Timelock,
		obj.RecoveryInitiated,
	)
}

// SocialRecoveryAccountMinSize is the smallest possible social recovery
// account: empty guardian and approval vectors, no pending wallet.
const SocialRecoveryAccountMinSize = (8 + // discriminator
	32 + // user
	4 + // guardians vec prefix
	1 + // threshold
	1 + // recovery_in_progress
	4 + // approvals vec prefix
	1 + // new_wallet option flag
	1) // bump

// SocialRecoveryAccount is the M-of-N guardian recovery state. The program
// requires exactly five guardians with a threshold of three, but the layout
// carries both as data so the decoder does not bake that policy in.
type SocialRecoveryAccount struct {
	User               ed25519.PublicKey
	Guardians          []ed25519.PublicKey
	Threshold          uint8
	RecoveryInProgress bool
	Approvals          []ed25519.PublicKey
	NewWallet          *ed25519.PublicKey
	Bump               uint8
}

func (obj *SocialRecoveryAccount) Unmarshal(data []byte) bool {
	if len(data) < SocialRecoveryAccountMinSize {
		return false
	}

	offset := DiscriminatorSize

	if err := binary.ReadKey(data, &obj.User, &offset); err != nil {
		return false
	}
	if err := binary.ReadKeyVec(data, &obj.Guardians, &offset); err != nil {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Threshold, &offset); err != nil {
		return false
	}
	if err := binary.ReadBool(data, &obj.RecoveryInProgress, &offset); err != nil {
		return false
	}
	if err := binary.ReadKeyVec(data, &obj.Approvals, &offset); err != nil {
		return false
	}
	if !readOptionalKey(data, &obj.NewWallet, &offset) {
		return false
	}
	if err := binary.ReadUint8(data, &obj.Bump, &offset); err != nil {
		return false
	}

	return true
}

func readOptionalKey(src []byte, dst **ed25519.PublicKey, offset *int) bool {
	var present bool
	if err := binary.ReadBool(src, &present, offset); err != nil {
		return false
	}
	if !present {
		*dst = nil
		return true
	}
	var v ed25519.PublicKey
	if err := binary.ReadKey(src, &v, offset); err != nil {
		return false
	}
	*dst = &v
	return true
}
