package solana

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// Commitment is the confirmation level account reads are performed at.
type Commitment struct {
	Commitment string `json:"commitment"`
}

const (
	confirmationStatusProcessed = "processed"
	confirmationStatusConfirmed = "confirmed"
	confirmationStatusFinalized = "finalized"
)

var (
	CommitmentProcessed = Commitment{Commitment: confirmationStatusProcessed}
	CommitmentConfirmed = Commitment{Commitment: confirmationStatusConfirmed}
	CommitmentFinalized = Commitment{Commitment: confirmationStatusFinalized}
)

// ErrNoAccountInfo indicates no account exists at the requested address.
var ErrNoAccountInfo = errors.New("no account info")

// AccountInfo contains the Solana account information (not to be confused
// with a program-specific account view decoded from Data).
type AccountInfo struct {
	Data       []byte
	Owner      ed25519.PublicKey
	Lamports   uint64
	Executable bool
}

// Client is the ledger-query collaborator consumed by state-reading flows.
//
// Transaction submission, confirmation polling and signing live entirely
// outside this module; decoders only ever need raw account bytes, so this
// is the whole surface.
type Client interface {
	// GetAccountInfo returns the account info at the given address, or
	// ErrNoAccountInfo if no account exists there.
	GetAccountInfo(account ed25519.PublicKey, commitment Commitment) (AccountInfo, error)
}
