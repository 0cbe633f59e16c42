package model

import "time"

// DistributionID uniquely identifies a stored assignment set
type DistributionID string

// Assignment binds one participant to a role and a reveal password.
// The role is a copy, not a reference, so issued assignments are
// unaffected by later catalog reloads.
type Assignment struct {
	ParticipantName string `json:"participant_name"`
	Password        string `json:"password"`
	Role            Role   `json:"role"`
}

// Distribution is the full result of one generation run. A new run
// produces a new Distribution and invalidates prior passwords.
type Distribution struct {
	ID          DistributionID
	Assignments []Assignment
	CreatedAt   time.Time
}

// PasswordSheet returns the GM's participant -> password mapping
func (d *Distribution) PasswordSheet() map[string]string {
	sheet := make(map[string]string, len(d.Assignments))
	for _, a := range d.Assignments {
		sheet[a.ParticipantName] = a.Password
	}
	return sheet
}

// FindByPassword looks up the assignment matching a password.
// Exact match only; no fuzzy matching.
func FindByPassword(assignments []Assignment, password string) (*Assignment, bool) {
	for i := range assignments {
		if assignments[i].Password == password {
			return &assignments[i], true
		}
	}
	return nil, false
}
