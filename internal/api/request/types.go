package request

// RoleRecord is a structured role definition supplied directly in a
// request body, as an alternative to a CSV sheet
type RoleRecord struct {
	Name             string `json:"name"`
	Team             string `json:"team"`
	Category         string `json:"category,omitempty"`
	Ability          string `json:"ability,omitempty"`
	WinCondition     string `json:"win_condition,omitempty"`
	FortuneResult    string `json:"fortune_result,omitempty"`
	RelatedRole      string `json:"related_role,omitempty"`
	RelatedRoleCount int    `json:"related_role_count,omitempty"`
	Author           string `json:"author,omitempty"`
}

// CountRequest is one team/category draw count
type CountRequest struct {
	Team     string `json:"team"`
	Category string `json:"category,omitempty"`
	Count    int    `json:"count"`
}

// ConvertRequest is the request body for converting a survey CSV
type ConvertRequest struct {
	SurveyCSV string `json:"survey_csv"`
}

// CreateDistributionRequest is the request body for generating a
// distribution. Roles come either as raw normalized CSV or as
// structured records; CSV wins if both are present.
type CreateDistributionRequest struct {
	Participants []string       `json:"participants"`
	Counts       []CountRequest `json:"counts"`
	RolesCSV     string         `json:"roles_csv,omitempty"`
	Roles        []RoleRecord   `json:"roles,omitempty"`
}

// RevealRequest is the request body for revealing one assignment
type RevealRequest struct {
	Password string `json:"password"`
	// Payload is only used on the offline reveal endpoint
	Payload string `json:"payload,omitempty"`
}

// CreateSessionRequest is the request body for starting a voting session
type CreateSessionRequest struct {
	Participants []string `json:"participants"`
	GMPassphrase string   `json:"gm_passphrase"`
}

// CastVoteRequest is the request body for casting a vote
type CastVoteRequest struct {
	Target string `json:"target"`
}

// PostMessageRequest is the request body for posting a chat message
type PostMessageRequest struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// DrawRequest is the request body for drawing lots
type DrawRequest struct {
	Candidates []string `json:"candidates"`
}
