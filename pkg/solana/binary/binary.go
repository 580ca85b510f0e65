// Package binary implements the Borsh-style scalar codec used by the ilowa
// program: fixed little-endian widths, 4-byte length-prefixed variable
// fields, no self-describing type tags.
//
// Every Read* validates against the remaining buffer and fails with
// ErrTruncatedInput instead of panicking; partial reads never advance the
// offset.
package binary

import (
	"crypto/ed25519"
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// KeySize is the size, in bytes, of an ed25519 public key.
	KeySize = ed25519.PublicKeySize

	// DigestSize is the size, in bytes, of a fixed 32-byte digest slot.
	DigestSize = 32
)

var (
	// ErrTruncatedInput indicates a decode would read past the end of the
	// supplied buffer.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrValueOutOfRange indicates an encode was given a value outside the
	// representable range of the target scalar.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidUTF8 indicates a decoded string field does not hold valid
	// UTF-8. Byte-vector fields share the string wire shape but skip this
	// check.
	ErrInvalidUTF8 = errors.New("invalid utf-8")
)

// Digest is a fixed 32-byte slot, e.g. a folded market question.
type Digest [DigestSize]byte

func AppendUint8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

func AppendUint32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

func AppendUint64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

func AppendInt64(dst []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

// AppendString appends a 4-byte little-endian byte-count prefix followed by
// the raw UTF-8 bytes. The prefix counts bytes, not characters.
func AppendString(dst []byte, v string) ([]byte, error) {
	if len(v) > math.MaxUint32 {
		return nil, ErrValueOutOfRange
	}
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(v)))
	return append(dst, v...), nil
}

// AppendBytes has the same wire shape as AppendString without requiring
// valid UTF-8.
func AppendBytes(dst []byte, v []byte) ([]byte, error) {
	if len(v) > math.MaxUint32 {
		return nil, ErrValueOutOfRange
	}
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(v)))
	return append(dst, v...), nil
}

// AppendKey appends an opaque 32-byte public key with no length prefix.
func AppendKey(dst []byte, v ed25519.PublicKey) ([]byte, error) {
	if len(v) != KeySize {
		return nil, ErrValueOutOfRange
	}
	return append(dst, v...), nil
}

// AppendKeyVec appends a 4-byte little-endian element count followed by the
// fixed-width keys in order.
func AppendKeyVec(dst []byte, keys []ed25519.PublicKey) ([]byte, error) {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(keys)))
	var err error
	for _, k := range keys {
		if dst, err = AppendKey(dst, k); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func AppendDigest(dst []byte, v Digest) []byte {
	return append(dst, v[:]...)
}

// FoldDigest folds arbitrary-length data into a fixed 32-byte slot: the
// first 32 bytes are copied verbatim (zero-padded on the right when the
// input is shorter), then every subsequent byte is XORed into
// result[i mod 32]. The rule is reproduced by the on-chain consumer, so it
// must not change.
func FoldDigest(data []byte) Digest {
	var d Digest
	copy(d[:], data)
	for i := DigestSize; i < len(data); i++ {
		d[i%DigestSize] ^= data[i]
	}
	return d
}

func ReadUint8(src []byte, dst *uint8, offset *int) error {
	if len(src) < *offset+1 {
		return ErrTruncatedInput
	}
	*dst = src[*offset]
	*offset += 1
	return nil
}

// ReadBool decodes any non-zero byte as true.
func ReadBool(src []byte, dst *bool, offset *int) error {
	if len(src) < *offset+1 {
		return ErrTruncatedInput
	}
	*dst = src[*offset] != 0
	*offset += 1
	return nil
}

func ReadUint32(src []byte, dst *uint32, offset *int) error {
	if len(src) < *offset+4 {
		return ErrTruncatedInput
	}
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
	return nil
}

func ReadUint64(src []byte, dst *uint64, offset *int) error {
	if len(src) < *offset+8 {
		return ErrTruncatedInput
	}
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
	return nil
}

func ReadInt64(src []byte, dst *int64, offset *int) error {
	if len(src) < *offset+8 {
		return ErrTruncatedInput
	}
	*dst = int64(binary.LittleEndian.Uint64(src[*offset:]))
	*offset += 8
	return nil
}

func ReadString(src []byte, dst *string, offset *int) error {
	var raw []byte
	local := *offset
	if err := ReadBytes(src, &raw, &local); err != nil {
		return err
	}
	if !utf8.Valid(raw) {
		return ErrInvalidUTF8
	}
	*dst = string(raw)
	*offset = local
	return nil
}

func ReadBytes(src []byte, dst *[]byte, offset *int) error {
	var length uint32
	local := *offset
	if err := ReadUint32(src, &length, &local); err != nil {
		return err
	}
	if uint64(len(src)) < uint64(local)+uint64(length) {
		return ErrTruncatedInput
	}
	*dst = make([]byte, length)
	copy(*dst, src[local:])
	*offset = local + int(length)
	return nil
}

func ReadKey(src []byte, dst *ed25519.PublicKey, offset *int) error {
	if len(src) < *offset+KeySize {
		return ErrTruncatedInput
	}
	*dst = make([]byte, KeySize)
	copy(*dst, src[*offset:])
	*offset += KeySize
	return nil
}

func ReadKeyVec(src []byte, dst *[]ed25519.PublicKey, offset *int) error {
	var count uint32
	local := *offset
	if err := ReadUint32(src, &count, &local); err != nil {
		return err
	}
	if uint64(len(src)) < uint64(local)+uint64(count)*KeySize {
		return ErrTruncatedInput
	}
	keys := make([]ed25519.PublicKey, count)
	for i := range keys {
		if err := ReadKey(src, &keys[i], &local); err != nil {
			return err
		}
	}
	*dst = keys
	*offset = local
	return nil
}

func ReadDigest(src []byte, dst *Digest, offset *int) error {
	if len(src) < *offset+DigestSize {
		return ErrTruncatedInput
	}
	copy(dst[:], src[*offset:])
	*offset += DigestSize
	return nil
}
