package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Catalog errors
	ErrRoleNotFound  = errors.New("role not found")
	ErrEmptyRoleName = errors.New("role name is empty")
	ErrEmptyCatalog  = errors.New("catalog contains no roles")

	// Distribution errors
	ErrDistributionNotFound = errors.New("distribution not found")
	ErrNoParticipants       = errors.New("no participants given")

	// Reveal errors. A wrong password is an expected user-facing
	// condition; a decode failure means the payload itself is bad.
	ErrWrongPassword = errors.New("no assignment matches that password")
	ErrPayloadDecode = errors.New("payload could not be decoded")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrNotGM           = errors.New("gm passphrase does not match")
	ErrUnknownVoter    = errors.New("voter is not a session participant")
	ErrUnknownTarget   = errors.New("vote target is not a session participant")
	ErrTargetIsGM      = errors.New("the GM cannot be a vote target")
	ErrUnknownChatRoom = errors.New("chat room does not belong to this session")

	// Lottery errors
	ErrNoCandidates = errors.New("no candidates to draw from")

	// Word pool errors
	ErrWordPoolNotLoaded = errors.New("password word pool not loaded")
)

// DataError reports a catalog that failed validation: a duplicate role
// name or a related-role reference that does not resolve. Generation
// cannot proceed on a catalog that produced one.
type DataError struct {
	RoleName string
	Reason   string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid role data for %q: %s", e.RoleName, e.Reason)
}

// CountMismatchError reports a request whose role counts do not add up
// to the participant count
type CountMismatchError struct {
	ParticipantCount int
	RoleCount        int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("participant count (%d) does not match requested role total (%d)",
		e.ParticipantCount, e.RoleCount)
}

// InsufficientRolesError reports a draw that asked for more roles than
// a team/category has available
type InsufficientRolesError struct {
	Team      Team
	Category  string
	Required  int
	Available int
}

func (e *InsufficientRolesError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("insufficient roles for %s/%s: required %d, available %d",
			e.Team, e.Category, e.Required, e.Available)
	}
	return fmt.Sprintf("insufficient roles for %s: required %d, available %d",
		e.Team, e.Required, e.Available)
}

// SubstitutionError reports a related-role expansion that could not
// preserve the requested total because no filler role was left to remove
type SubstitutionError struct {
	RoleName        string
	RelatedRoleName string
}

func (e *SubstitutionError) Error() string {
	return fmt.Sprintf("cannot substitute related role %q required by %q: no filler role left to remove",
		e.RelatedRoleName, e.RoleName)
}

// PoolExhaustedError reports a password pool smaller than the
// participant count
type PoolExhaustedError struct {
	ParticipantCount int
	PoolSize         int
}

func (e *PoolExhaustedError) Error() string {
	return fmt.Sprintf("password pool has %d words for %d participants",
		e.PoolSize, e.ParticipantCount)
}
