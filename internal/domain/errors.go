package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Error taxonomy
	ErrMsgNotFound     = "not found"
	ErrMsgInvalidScope = "invalid scope"
	ErrMsgPickLocked   = "pick is locked"
	ErrMsgValidation   = "validation error"

	// Lookup errors
	ErrMsgCompetitionNotFound = "competition not found"
	ErrMsgTeamNotFound        = "team not found"
	ErrMsgGameNotFound        = "game not found"
	ErrMsgPropNotFound        = "prop prediction not found"
	ErrMsgLeagueNotFound      = "league not found"
	ErrMsgInviteCodeNotFound  = "invite code not found"

	// Scope errors
	ErrMsgNotLeagueMember     = "participant is not a league member"
	ErrMsgLeagueCompetition   = "league belongs to a different competition"
	ErrMsgGameCompetition     = "game belongs to a different competition"
	ErrMsgPropCompetition     = "prop belongs to a different competition"
	ErrMsgAdminCannotLeave    = "league admin cannot leave the league"
	ErrMsgDuplicateSlug       = "competition slug already exists"
	ErrMsgStorageDisabled     = "logo storage is not configured"
	ErrMsgUnauthorized        = "unauthorized"
	ErrMsgInviteCodeExhausted = "could not allocate a unique invite code"
	ErrMsgInviteCodeTaken     = "invite code already in use"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound     = errors.New(ErrMsgNotFound)
	ErrInvalidScope = errors.New(ErrMsgInvalidScope)
	ErrPickLocked   = errors.New(ErrMsgPickLocked)
	ErrValidation   = errors.New(ErrMsgValidation)

	// Lookup errors, all of them satisfy errors.Is(err, ErrNotFound)
	ErrCompetitionNotFound = notFound(ErrMsgCompetitionNotFound)
	ErrTeamNotFound        = notFound(ErrMsgTeamNotFound)
	ErrGameNotFound        = notFound(ErrMsgGameNotFound)
	ErrPropNotFound        = notFound(ErrMsgPropNotFound)
	ErrLeagueNotFound      = notFound(ErrMsgLeagueNotFound)
	ErrInviteCodeNotFound  = notFound(ErrMsgInviteCodeNotFound)

	// Scope errors, all of them satisfy errors.Is(err, ErrInvalidScope)
	ErrNotLeagueMember   = invalidScope(ErrMsgNotLeagueMember)
	ErrLeagueCompetition = invalidScope(ErrMsgLeagueCompetition)
	ErrGameCompetition   = invalidScope(ErrMsgGameCompetition)
	ErrPropCompetition   = invalidScope(ErrMsgPropCompetition)

	ErrAdminCannotLeave    = errors.New(ErrMsgAdminCannotLeave)
	ErrDuplicateSlug       = errors.New(ErrMsgDuplicateSlug)
	ErrStorageDisabled     = errors.New(ErrMsgStorageDisabled)
	ErrUnauthorized        = errors.New(ErrMsgUnauthorized)
	ErrInviteCodeExhausted = errors.New(ErrMsgInviteCodeExhausted)
	ErrInviteCodeTaken     = errors.New(ErrMsgInviteCodeTaken)
)

// kindError is a specific error that also matches a broader taxonomy sentinel.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func notFound(msg string) error { return &kindError{msg: msg, kind: ErrNotFound} }

func invalidScope(msg string) error { return &kindError{msg: msg, kind: ErrInvalidScope} }

// IsNotFound reports whether err is any lookup failure
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
