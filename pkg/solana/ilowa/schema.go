package ilowa

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/ilowa-labs/ilowa-go/pkg/solana/binary"
)

// Scalar identifies one argument kind in an instruction's schema.
type Scalar uint8

const (
	ScalarUint8 Scalar = iota
	ScalarBool
	ScalarUint32
	ScalarUint64
	ScalarInt64
	ScalarString
	ScalarBytes
	ScalarDigest
	ScalarKey
	ScalarKeyVec
)

// AccountRole carries the signer/writable flags the program mandates for
// one account position. The flags are part of the program's contract and a
// mismatch is rejected by the runtime, so callers never get to override
// them.
type AccountRole struct {
	IsSigner   bool
	IsWritable bool
}

// InstructionSpec is the authoritative description of one instruction:
// its selector, its argument schema in wire order, and the ordered account
// roles. Specs are process-wide constants.
type InstructionSpec struct {
	Name          string
	Discriminator []byte
	Args          []Scalar
	Roles         []AccountRole
}

var (
	roleSigner         = AccountRole{IsSigner: true}
	roleSignerWritable = AccountRole{IsSigner: true, IsWritable: true}
	roleWritable       = AccountRole{IsWritable: true}
	roleReadonly       = AccountRole{}
)

// Account role order below mirrors the program's #[derive(Accounts)]
// contexts. Ordering is an invariant, not a convention.
var instructionSpecs = map[string]InstructionSpec{
	"createMarket": {
		Name:          "createMarket",
		Discriminator: mustDiscriminator("createMarket"),
		Args:          []Scalar{ScalarString, ScalarString, ScalarString, ScalarBool, ScalarInt64},
		Roles: []AccountRole{
			roleSignerWritable, // creator
			roleWritable,       // market
			roleReadonly,       // system program
		},
	},
	"createLightMarket": {
		Name:          "createLightMarket",
		Discriminator: mustDiscriminator("createLightMarket"),
		Args:          []Scalar{ScalarDigest, ScalarUint8, ScalarUint8, ScalarInt64, ScalarKey, ScalarInt64, ScalarBool},
		Roles: []AccountRole{
			roleSignerWritable, // creator
			roleWritable,       // market
			roleReadonly,       // system program
		},
	},
	"placeBet": {
		Name:          "placeBet",
		Discriminator: mustDiscriminator("placeBet"),
		Args:          []Scalar{ScalarUint64, ScalarBool},
		Roles: []AccountRole{
			roleSignerWritable, // user
			roleWritable,       // market
			roleWritable,       // bet
			roleWritable,       // platform treasury
			roleWritable,       // market vault
			roleReadonly,       // system program
		},
	},
	"placeLightBet": {
		Name:          "placeLightBet",
		Discriminator: mustDiscriminator("placeLightBet"),
		Args:          []Scalar{ScalarUint64, ScalarBool},
		Roles: []AccountRole{
			roleSignerWritable, // bettor
			roleWritable,       // market
			roleWritable,       // bet
			roleWritable,       // platform treasury
			roleWritable,       // market vault
			roleReadonly,       // system program
		},
	},
	"shieldedBet": {
		Name:          "shieldedBet",
		Discriminator: mustDiscriminator("shieldedBet"),
		Args:          []Scalar{ScalarBytes, ScalarBytes, ScalarBool},
		Roles: []AccountRole{
			roleSignerWritable, // user
			roleWritable,       // market
			roleWritable,       // bet
			roleWritable,       // platform treasury
			roleReadonly,       // system program
		},
	},
	"placeShieldedLightBet": {
		Name:          "placeShieldedLightBet",
		Discriminator: mustDiscriminator("placeShieldedLightBet"),
		Args:          []Scalar{ScalarBytes, ScalarBytes, ScalarBool},
		Roles: []AccountRole{
			roleSignerWritable, // bettor
			roleWritable,       // market
			roleWritable,       // bet
			roleWritable,       // platform treasury
			roleReadonly,       // system program
		},
	},
	"resolveMarket": {
		Name:          "resolveMarket",
		Discriminator: mustDiscriminator("resolveMarket"),
		Args:          []Scalar{ScalarBool},
		Roles: []AccountRole{
			roleSignerWritable, // resolver
			roleWritable,       // market
		},
	},
	"resolveLightMarket": {
		Name:          "resolveLightMarket",
		Discriminator: mustDiscriminator("resolveLightMarket"),
		Args:          []Scalar{ScalarBool},
		Roles: []AccountRole{
			roleSigner,   // creator
			roleWritable, // market
		},
	},
	"resolveLightMarketOracle": {
		Name:          "resolveLightMarketOracle",
		Discriminator: mustDiscriminator("resolveLightMarketOracle"),
		Args:          []Scalar{ScalarInt64, ScalarBool},
		Roles: []AccountRole{
			roleSigner,   // oracle authority
			roleWritable, // market
			roleReadonly, // price feed (Pyth account, or system program for manual attestation)
		},
	},
	"claimWinnings": {
		Name:          "claimWinnings",
		Discriminator: mustDiscriminator("claimWinnings"),
		Roles: []AccountRole{
			roleSignerWritable, // user
			roleReadonly,       // market
			roleWritable,       // bet
			roleWritable,       // market vault
			roleReadonly,       // system program
		},
	},
	"claimLightWinnings": {
		Name:          "claimLightWinnings",
		Discriminator: mustDiscriminator("claimLightWinnings"),
		Roles: []AccountRole{
			roleSignerWritable, // bettor
			roleReadonly,       // market
			roleWritable,       // bet
			roleWritable,       // market vault
			roleReadonly,       // system program
		},
	},
	"initElderGuardian": {
		Name:          "initElderGuardian",
		Discriminator: mustDiscriminator("initElderGuardian"),
		Roles: []AccountRole{
			roleSignerWritable, // user
			roleWritable,       // guardian
			roleReadonly,       // system program
		},
	},
	"setGuardianKey": {
		Name:          "setGuardianKey",
		Discriminator: mustDiscriminator("setGuardianKey"),
		Args:          []Scalar{ScalarKey},
		Roles: []AccountRole{
			roleSignerWritable, // user
			roleWritable,       // guardian
		},
	},
	"initiateRecovery": {
		Name:          "initiateRecovery",
		Discriminator: mustDiscriminator("initiateRecovery"),
		Roles: []AccountRole{
			roleSignerWritable, // initiator
			roleWritable,       // guardian
		},
	},
	"cancelRecovery": {
		Name:          "cancelRecovery",
		Discriminator: mustDiscriminator("cancelRecovery"),
		Roles: []AccountRole{
			roleSignerWritable, // user
			roleWritable,       // guardian
		},
	},
	"initSocialRecovery": {
		Name:          "initSocialRecovery",
		Discriminator: mustDiscriminator("initSocialRecovery"),
		Args:          []Scalar{ScalarKeyVec},
		Roles: []AccountRole{
			roleSignerWritable, // user
			roleWritable,       // social recovery
			roleReadonly,       // system program
		},
	},
	"approveSocialRecovery": {
		Name:          "approveSocialRecovery",
		Discriminator: mustDiscriminator("approveSocialRecovery"),
		Args:          []Scalar{ScalarKey},
		Roles: []AccountRole{
			roleSignerWritable, // guardian
			roleWritable,       // social recovery
		},
	},
	"tipDj": {
		Name:          "tipDj",
		Discriminator: mustDiscriminator("tipDj"),
		Args:          []Scalar{ScalarUint64},
		Roles: []AccountRole{
			roleSignerWritable, // tipper
			roleWritable,       // dj
			roleWritable,       // platform treasury
			roleReadonly,       // system program
		},
	},
}

// GetInstructionSpec returns the registered spec for an instruction name.
func GetInstructionSpec(name string) (InstructionSpec, bool) {
	spec, ok := instructionSpecs[name]
	return spec, ok
}

// Assemble builds a complete instruction from a spec, argument values in
// declared order, and concrete addresses for every account role. Assembly
// is all-or-nothing: the first argument that fails its schema check aborts
// with ErrSchemaMismatch before any instruction is produced.
func Assemble(spec InstructionSpec, args []interface{}, accounts []ed25519.PublicKey) (Instruction, error) {
	if len(args) != len(spec.Args) {
		return Instruction{}, errors.Wrapf(ErrSchemaMismatch, "%s: got %d args, schema declares %d", spec.Name, len(args), len(spec.Args))
	}
	if len(accounts) != len(spec.Roles) {
		return Instruction{}, errors.Wrapf(ErrSchemaMismatch, "%s: got %d accounts, schema declares %d", spec.Name, len(accounts), len(spec.Roles))
	}

	data := make([]byte, 0, DiscriminatorSize+argsSizeHint(spec.Args))
	data = append(data, spec.Discriminator...)

	var err error
	for i, kind := range spec.Args {
		if data, err = appendArg(data, kind, args[i]); err != nil {
			return Instruction{}, errors.Wrapf(err, "%s: arg %d", spec.Name, i)
		}
	}

	metas := make([]AccountMeta, len(accounts))
	for i, account := range accounts {
		if len(account) != binary.KeySize {
			return Instruction{}, errors.Wrapf(ErrSchemaMismatch, "%s: account %d is not 32 bytes", spec.Name, i)
		}
		metas[i] = AccountMeta{
			PublicKey:  account,
			IsSigner:   spec.Roles[i].IsSigner,
			IsWritable: spec.Roles[i].IsWritable,
		}
	}

	return Instruction{
		Program:  PROGRAM_ADDRESS,
		Accounts: metas,
		Data:     data,
	}, nil
}

// ParseArgs decodes an instruction data blob back into argument values per
// the spec's schema. Instruction data is produced by this module or by the
// program's own clients, so a short or mislabeled buffer is a programming
// error: it fails with ErrInvalidInstructionData rather than an absent
// result.
func ParseArgs(spec InstructionSpec, data []byte) ([]interface{}, error) {
	if len(data) < DiscriminatorSize {
		return nil, ErrInvalidInstructionData
	}
	if !bytes.Equal(data[:DiscriminatorSize], spec.Discriminator) {
		return nil, ErrInvalidInstructionData
	}

	offset := DiscriminatorSize
	args := make([]interface{}, len(spec.Args))
	for i, kind := range spec.Args {
		arg, err := readArg(data, kind, &offset)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInstructionData, "%s: arg %d: %v", spec.Name, i, err)
		}
		args[i] = arg
	}
	if offset != len(data) {
		return nil, errors.Wrapf(ErrInvalidInstructionData, "%s: %d trailing bytes", spec.Name, len(data)-offset)
	}
	return args, nil
}

func readArg(data []byte, kind Scalar, offset *int) (interface{}, error) {
	switch kind {
	case ScalarUint8:
		var v uint8
		err := binary.ReadUint8(data, &v, offset)
		return v, err
	case ScalarBool:
		var v bool
		err := binary.ReadBool(data, &v, offset)
		return v, err
	case ScalarUint32:
		var v uint32
		err := binary.ReadUint32(data, &v, offset)
		return v, err
	case ScalarUint64:
		var v uint64
		err := binary.ReadUint64(data, &v, offset)
		return v, err
	case ScalarInt64:
		var v int64
		err := binary.ReadInt64(data, &v, offset)
		return v, err
	case ScalarString:
		var v string
		err := binary.ReadString(data, &v, offset)
		return v, err
	case ScalarBytes:
		var v []byte
		err := binary.ReadBytes(data, &v, offset)
		return v, err
	case ScalarDigest:
		var v binary.Digest
		err := binary.ReadDigest(data, &v, offset)
		return v, err
	case ScalarKey:
		var v ed25519.PublicKey
		err := binary.ReadKey(data, &v, offset)
		return v, err
	case ScalarKeyVec:
		var v []ed25519.PublicKey
		err := binary.ReadKeyVec(data, &v, offset)
		return v, err
	default:
		return nil, ErrSchemaMismatch
	}
}

func appendArg(data []byte, kind Scalar, arg interface{}) ([]byte, error) {
	switch kind {
	case ScalarUint8:
		v, ok := arg.(uint8)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendUint8(data, v), nil
	case ScalarBool:
		v, ok := arg.(bool)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendBool(data, v), nil
	case ScalarUint32:
		v, ok := arg.(uint32)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendUint32(data, v), nil
	case ScalarUint64:
		v, ok := arg.(uint64)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendUint64(data, v), nil
	case ScalarInt64:
		v, ok := arg.(int64)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendInt64(data, v), nil
	case ScalarString:
		v, ok := arg.(string)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendString(data, v)
	case ScalarBytes:
		v, ok := arg.([]byte)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendBytes(data, v)
	case ScalarDigest:
		v, ok := arg.(binary.Digest)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendDigest(data, v), nil
	case ScalarKey:
		v, ok := arg.(ed25519.PublicKey)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendKey(data, v)
	case ScalarKeyVec:
		v, ok := arg.([]ed25519.PublicKey)
		if !ok {
			return nil, ErrSchemaMismatch
		}
		return binary.AppendKeyVec(data, v)
	default:
		return nil, ErrSchemaMismatch
	}
}

func argsSizeHint(kinds []Scalar) int {
	var n int
	for _, kind := range kinds {
		switch kind {
		case ScalarUint8, ScalarBool:
			n += 1
		case ScalarUint32:
			n += 4
		case ScalarUint64, ScalarInt64:
			n += 8
		case ScalarDigest, ScalarKey:
			n += 32
		default:
			n += 64 // variable width, just a capacity guess
		}
	}
	return n
}
