package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RoleList:
		o.printRoleList(v)
	case Distribution:
		o.printDistribution(v)
	case Assignment:
		o.printAssignment(v)
	case Session:
		o.printSession(v)
	case Tally:
		o.printTally(v)
	case ChatHistory:
		o.printChatHistory(v)
	case CoinToss:
		o.printCoinToss(v)
	case DrawResult:
		o.printDrawResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Role response type (matches API)
type Role struct {
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

// RoleList wraps a set of roles for printing
type RoleList struct {
	Roles []Role `json:"roles"`
}

// Distribution is the GM view of a generation run. ID is empty for
// local runs that were not stored.
type Distribution struct {
	ID        string            `json:"id,omitempty"`
	Payload   string            `json:"payload"`
	Passwords map[string]string `json:"passwords"`
	CreatedAt time.Time         `json:"created_at,omitzero"`
}

// Assignment is one revealed assignment
type Assignment struct {
	ParticipantName string `json:"participant_name"`
	Password        string `json:"password"`
	Role            Role   `json:"role"`
}

// Session response type
type Session struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Tally response type
type Tally struct {
	Votes map[string]int `json:"votes"`
}

// ChatMessage response type
type ChatMessage struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatHistory response type
type ChatHistory struct {
	Room     string        `json:"room"`
	Messages []ChatMessage `json:"messages"`
}

// CoinToss response type
type CoinToss struct {
	Result string `json:"result"`
}

// DrawResult response type
type DrawResult struct {
	Winner string `json:"winner"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRoleList(l RoleList) {
	fmt.Printf("Roles (%d):\n", len(l.Roles))
	for _, r := range l.Roles {
		extra := ""
		if r.RelatedRole != "" {
			extra = fmt.Sprintf(" [brings %dx %s]", r.RelatedRoleCount, r.RelatedRole)
		}
		fmt.Printf("  - %s (%s/%s)%s\n", r.Name, r.Team, r.Category, extra)
	}
}

func (o *Output) printDistribution(d Distribution) {
	if d.ID != "" {
		fmt.Printf("Distribution: %s\n", d.ID)
	}
	fmt.Println("Passwords:")
	names := make([]string, 0, len(d.Passwords))
	for name := range d.Passwords {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %s\n", name, d.Passwords[name])
	}
	fmt.Printf("Payload: %s\n", d.Payload)
}

func (o *Output) printAssignment(a Assignment) {
	fmt.Printf("Participant: %s\n", a.ParticipantName)
	fmt.Printf("Role: %s (%s)\n", a.Role.Name, a.Role.Team)
	if a.Role.Ability != "" {
		fmt.Printf("Ability: %s\n", a.Role.Ability)
	}
	if a.Role.WinCondition != "" {
		fmt.Printf("Win Condition: %s\n", a.Role.WinCondition)
	}
	if a.Role.FortuneResult != "" {
		fmt.Printf("Fortune Result: %s\n", a.Role.FortuneResult)
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Participants (%d):\n", len(s.Participants))
	for _, p := range s.Participants {
		fmt.Printf("  - %s\n", p)
	}
}

func (o *Output) printTally(t Tally) {
	fmt.Println("Votes:")
	targets := make([]string, 0, len(t.Votes))
	for target := range t.Votes {
		targets = append(targets, target)
	}
	sort.Slice(targets, func(i, j int) bool {
		if t.Votes[targets[i]] != t.Votes[targets[j]] {
			return t.Votes[targets[i]] > t.Votes[targets[j]]
		}
		return targets[i] < targets[j]
	})
	for _, target := range targets {
		fmt.Printf("  %s: %d\n", target, t.Votes[target])
	}
}

func (o *Output) printChatHistory(h ChatHistory) {
	fmt.Printf("Room: %s\n", h.Room)
	for _, m := range h.Messages {
		fmt.Printf("  [%s] %s: %s\n", m.Timestamp.Format("15:04:05"), m.From, m.Text)
	}
}

func (o *Output) printCoinToss(c CoinToss) {
	fmt.Printf("Result: %s\n", c.Result)
}

func (o *Output) printDrawResult(d DrawResult) {
	fmt.Printf("Winner: %s\n", d.Winner)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
