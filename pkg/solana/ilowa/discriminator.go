package ilowa

// Anchor instruction selectors: the first 8 bytes of
// sha256("global:<snake_case_name>"), published as part of the program's
// interface definition and stored here as opaque constants. The table is
// read-only; supporting a new instruction means adding exactly one entry.

const DiscriminatorSize = 8

var instructionDiscriminators = map[string][8]byte{
	"createMarket":             {0x67, 0xe2, 0x61, 0xeb, 0xc8, 0xbc, 0xfb, 0xfe},
	"createLightMarket":        {0x0b, 0xf2, 0x37, 0x9f, 0xc0, 0xc8, 0xd5, 0xc2},
	"placeBet":                 {0xde, 0x3e, 0x43, 0xdc, 0x3f, 0xa6, 0x7e, 0x21},
	"placeLightBet":            {0xcc, 0xfe, 0xce, 0xb5, 0xc4, 0xc0, 0x2b, 0x87},
	"shieldedBet":              {0x5a, 0x69, 0x5f, 0x7e, 0x6f, 0x65, 0x3f, 0xb1},
	"placeShieldedLightBet":    {0x05, 0x38, 0xc5, 0xac, 0xf6, 0xa7, 0xc6, 0xf4},
	"resolveMarket":            {0x9b, 0x17, 0x50, 0xad, 0x2e, 0x4a, 0x17, 0xef},
	"resolveLightMarket":       {0xff, 0xd2, 0xf4, 0xde, 0x74, 0xd7, 0x34, 0x90},
	"resolveLightMarketOracle": {0x4f, 0x20, 0xdf, 0x97, 0xeb, 0xc9, 0x18, 0x20},
	"claimWinnings":            {0xa1, 0xd7, 0x18, 0x3b, 0x0e, 0xec, 0xf2, 0xdd},
	"claimLightWinnings":       {0xc5, 0x2b, 0x52, 0x52, 0xc5, 0x88, 0x24, 0x8b},
	"initElderGuardian":        {0x61, 0x70, 0xd6, 0x9d, 0x31, 0x1e, 0xb5, 0x36},
	"setGuardianKey":           {0xf6, 0x6a, 0x11, 0x98, 0xda, 0x9f, 0xd4, 0x45},
	"initiateRecovery":         {0x84, 0x94, 0x3c, 0x4a, 0x31, 0xb2, 0xeb, 0xbb},
	"cancelRecovery":           {0xb0, 0x17, 0xcb, 0x25, 0x79, 0xfb, 0xe3, 0x53},
	"initSocialRecovery":       {0x8c, 0x71, 0x4a, 0xa9, 0x31, 0x83, 0xab, 0x11},
	"approveSocialRecovery":    {0x45, 0x97, 0xb2, 0x29, 0x8d, 0x89, 0x2f, 0xb8},
	"tipDj":                    {0xb1, 0xc7, 0x34, 0xb8, 0x91, 0x21, 0x1a, 0x94},
}

// InstructionDiscriminator returns a copy of the 8-byte selector registered
// for the instruction name. The second return is false for unknown names.
func InstructionDiscriminator(name string) ([]byte, bool) {
	d, ok := instructionDiscriminators[name]
	if !ok {
		return nil, false
	}
	out := make([]byte, DiscriminatorSize)
	copy(out, d[:])
	return out, true
}

// InstructionNames returns the names of every supported instruction.
func InstructionNames() []string {
	names := make([]string, 0, len(instructionDiscriminators))
	for name := range instructionDiscriminators {
		names = append(names, name)
	}
	return names
}

func mustDiscriminator(name string) []byte {
	d, ok := InstructionDiscriminator(name)
	if !ok {
		panic("no discriminator registered for " + name)
	}
	return d
}
