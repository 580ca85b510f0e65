// Package switchboard decodes Switchboard V3 aggregator accounts. Only the
// latest round result is mapped.
package switchboard

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	resultOffset    = 197
	stdDevOffset    = 205
	timestampOffset = 213
)

const AggregatorAccountMinSize = timestampOffset + 8

// AggregatorAccount is the decoded view of an aggregator's latest confirmed
// round.
type AggregatorAccount struct {
	Result        float64
	StdDeviation  float64
	RoundOpenedAt int64
}

// Unmarshal decodes an aggregator account blob. It returns false when the
// blob is too short to carry the latest round fields.
func (obj *AggregatorAccount) Unmarshal(data []byte) bool {
	if len(data) < AggregatorAccountMinSize {
		return false
	}

	obj.Result = math.Float64frombits(binary.LittleEndian.Uint64(data[resultOffset:]))
	obj.StdDeviation = math.Float64frombits(binary.LittleEndian.Uint64(data[stdDevOffset:]))
	obj.RoundOpenedAt = int64(binary.LittleEndian.Uint64(data[timestampOffset:]))

	return true
}

func (obj *AggregatorAccount) String() string {
	return fmt.Sprintf(
		"SwitchboardAggregator{result=%f,std_dev=%f,round_opened_at=%d}",
		obj.Result,
		obj.StdDeviation,
		obj.RoundOpenedAt,
	)
}
