// Package pyth decodes Pyth V1 price accounts. Only the aggregate price
// fields are mapped; the layout has been stable since v2 price accounts.
package pyth

import (
	"encoding/binary"
	"fmt"
)

const PriceAccountMinSize = 240

// Magic is the tag every Pyth price account starts with.
const Magic uint32 = 0xa1b2c3d4

// Aggregate price statuses.
const (
	StatusUnknown uint32 = iota
	StatusTrading
	StatusHalted
	StatusAuction
)

// PriceAccount is the decoded view of a Pyth price feed. Price and
// Confidence are raw fixed-point values scaled by 10^Exponent.
type PriceAccount struct {
	Magic       uint32
	Version     uint32
	Exponent    int32
	ValidSlot   uint64
	Price       int64
	Confidence  uint64
	Status      uint32
	PublishSlot uint64
}

// Unmarshal decodes a price account blob. It returns false when the blob
// is too short or does not carry the Pyth magic.
func (obj *PriceAccount) Unmarshal(data []byte) bool {
	if len(data) < PriceAccountMinSize {
		return false
	}

	obj.Magic = binary.LittleEndian.Uint32(data[0:])
	if obj.Magic != Magic {
		return false
	}

	obj.Version = binary.LittleEndian.Uint32(data[4:])
	obj.Exponent = int32(binary.LittleEndian.Uint32(data[20:]))
	obj.ValidSlot = binary.LittleEndian.Uint64(data[40:])
	obj.Price = int64(binary.LittleEndian.Uint64(data[208:]))
	obj.Confidence = binary.LittleEndian.Uint64(data[216:])
	obj.Status = binary.LittleEndian.Uint32(data[224:])
	obj.PublishSlot = binary.LittleEndian.Uint64(data[232:])

	return true
}

// IsLive reports whether the aggregate quote is tradeable and was published
// within maxAgeSlots of currentSlot. The on-chain program uses 25 slots.
func (obj *PriceAccount) IsLive(currentSlot, maxAgeSlots uint64) bool {
	if obj.Status != StatusTrading {
		return false
	}
	if obj.PublishSlot == 0 {
		return false
	}
	if currentSlot < obj.PublishSlot {
		return true
	}
	return currentSlot-obj.PublishSlot <= maxAgeSlots
}

func (obj *PriceAccount) String() string {
	return fmt.Sprintf(
		"PythPrice{price=%d,conf=%d,expo=%d,status=%d,pub_slot=%d}",
		obj.Price,
		obj.Confidence,
		obj.Exponent,
		obj.Status,
		obj.PublishSlot,
	)
}
