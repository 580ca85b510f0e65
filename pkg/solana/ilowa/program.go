// Package ilowa builds wire-exact instructions for the ilowa prediction
// market program and decodes its account state, without depending on the
// program's generated SDK.
package ilowa

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")

	// ErrSchemaMismatch indicates the supplied arguments or accounts do not
	// match an instruction's declared schema. Raised before any bytes are
	// emitted.
	ErrSchemaMismatch = errors.New("arguments do not match instruction schema")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("HYDwFwax9U6svCRYWD7Fqq3TXxSSQCQ6CwKrb3ZTkD3z")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
)

// AccountMeta represents the account information required
// for building transactions.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsWritable bool
	IsSigner   bool
}

// Instruction represents a transaction instruction.
//
// Once built it is immutable: Data carries the 8-byte discriminator
// followed by the serialized arguments, and Accounts carries the metas in
// the exact order the program declares.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
