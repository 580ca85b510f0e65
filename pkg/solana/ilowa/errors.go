package ilowa

import "fmt"

// ProgramError is an error code returned by the on-chain program. Custom
// codes start at 6000 (0x1770), matching the Anchor convention.
type ProgramError uint32

const (
	ErrQuestionTooLong ProgramError = iota + 0x1770
	ErrMarketAlreadyResolved
	ErrMarketExpired
	ErrMarketNotExpired
	ErrMarketNotActive
	ErrInvalidExpiry

	ErrBetTooSmall
	ErrBetTooLarge
	ErrInsufficientFunds

	ErrRecoveryAlreadyInProgress
	ErrRecoveryNotInProgress
	ErrTimelockNotElapsed
	ErrRecoveryCanceled

	ErrInvalidGuardianCount
	ErrNotAGuardian
	ErrAlreadyApproved
	ErrThresholdNotMet
	ErrNewWalletNotSet

	ErrDAppAlreadyRegistered
	ErrInsufficientElderVotes

	ErrTipTooSmall

	ErrVoiceUriRequired

	ErrInvalidEncryptedData
	ErrInvalidZkProof

	ErrRateLimitExceeded
	ErrBetTooSoon
	ErrUserBanned

	ErrInvalidQuestionLength
	ErrInvalidResolveDate
	ErrResolveDateTooFar
	ErrInvalidCategory
	ErrInvalidRegion

	ErrMarketNotResolved
	ErrAlreadyClaimed
	ErrBetLost
	ErrNoWinningBets

	ErrInvalidMpcSession
	ErrSessionExpired
	ErrInvalidCommitment
	ErrSessionAlreadyExists

	ErrFLNotEnabled
	ErrNoRewardsToClaim
	ErrContributionAlreadyRecorded
	ErrInvalidContributionProof
	ErrRewardPoolExhausted

	ErrOracleNotSet
	ErrOraclePriceMismatch
	ErrOraclePriceStale

	ErrShieldedPoolFinalized
	ErrNotMxeAuthority

	ErrInvalidOracleAccount
	ErrInvalidOracleExponent

	ErrUnauthorized
	ErrArithmeticOverflow
)

var programErrorMessages = map[ProgramError]string{
	ErrQuestionTooLong:       "market question is too long (max 280 characters)",
	ErrMarketAlreadyResolved: "market has already been resolved",
	ErrMarketExpired:         "market has expired",
	ErrMarketNotExpired:      "market has not expired yet",
	ErrMarketNotActive:       "market is not active",
	ErrInvalidExpiry:         "invalid expiry timestamp",

	ErrBetTooSmall:       "bet amount is too small (minimum 0.01 SOL)",
	ErrBetTooLarge:       "bet amount is too large (maximum 100 SOL)",
	ErrInsufficientFunds: "insufficient funds for bet",

	ErrRecoveryAlreadyInProgress: "recovery already in progress",
	ErrRecoveryNotInProgress:     "recovery not in progress",
	ErrTimelockNotElapsed:        "timelock has not elapsed",
	ErrRecoveryCanceled:          "recovery was canceled",

	ErrInvalidGuardianCount: "invalid guardian count (must be exactly 5)",
	ErrNotAGuardian:         "signer is not a guardian",
	ErrAlreadyApproved:      "guardian has already approved",
	ErrThresholdNotMet:      "recovery threshold not met",
	ErrNewWalletNotSet:      "new wallet not set",

	ErrDAppAlreadyRegistered:  "dapp already registered",
	ErrInsufficientElderVotes: "insufficient elder votes",

	ErrTipTooSmall: "tip amount is too small",

	ErrVoiceUriRequired: "voice uri is required",

	ErrInvalidEncryptedData: "invalid encrypted data format",
	ErrInvalidZkProof:       "invalid zk proof",

	ErrRateLimitExceeded: "rate limit exceeded (max 10 bets/hour)",
	ErrBetTooSoon:        "please wait 1 minute between bets",
	ErrUserBanned:        "user is temporarily banned",

	ErrInvalidQuestionLength: "question must be 10-280 characters",
	ErrInvalidResolveDate:    "resolve date must be in the future",
	ErrResolveDateTooFar:     "resolve date cannot be more than 1 year in future",
	ErrInvalidCategory:       "invalid category (must be 0-6)",
	ErrInvalidRegion:         "invalid region (must be 0-8)",

	ErrMarketNotResolved: "market has not been resolved yet",
	ErrAlreadyClaimed:    "winnings already claimed",
	ErrBetLost:           "your bet did not win",
	ErrNoWinningBets:     "no winning bets in this market",

	ErrInvalidMpcSession:    "invalid mpc session",
	ErrSessionExpired:       "session has expired",
	ErrInvalidCommitment:    "invalid encryption commitment",
	ErrSessionAlreadyExists: "mpc session already exists",

	ErrFLNotEnabled:                "federated learning not enabled for user",
	ErrNoRewardsToClaim:            "no rewards to claim",
	ErrContributionAlreadyRecorded: "contribution already recorded",
	ErrInvalidContributionProof:    "invalid contribution proof",
	ErrRewardPoolExhausted:         "reward pool exhausted",

	ErrOracleNotSet:        "no oracle configured for this market",
	ErrOraclePriceMismatch: "price condition not satisfied for this outcome",
	ErrOraclePriceStale:    "stale oracle price, publish time too old",

	ErrShieldedPoolFinalized: "pool already finalized by mxe",
	ErrNotMxeAuthority:       "caller is not the mxe authority for this pool",

	ErrInvalidOracleAccount:  "provided account is not a valid pyth price feed",
	ErrInvalidOracleExponent: "pyth price exponent out of expected range",

	ErrUnauthorized:       "unauthorized",
	ErrArithmeticOverflow: "arithmetic overflow",
}

func (e ProgramError) Error() string {
	if msg, ok := programErrorMessages[e]; ok {
		return msg
	}
	return fmt.Sprintf("unknown program error code %d", uint32(e))
}

// ProgramErrorFromCode maps a raw custom error code from transaction
// metadata back to a typed error. The second return is false for codes
// this client does not know about.
func ProgramErrorFromCode(code uint32) (ProgramError, bool) {
	e := ProgramError(code)
	_, ok := programErrorMessages[e]
	return e, ok
}
