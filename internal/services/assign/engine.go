package assign

import (
	"fmt"
	"log/slog"

	"github.com/Shu5555/jinro-app/internal/catalog"
	"github.com/Shu5555/jinro-app/internal/dependencies/random"
	"github.com/Shu5555/jinro-app/internal/model"
)

// CountRequest asks for n distinct roles drawn from one team, optionally
// narrowed to a category within that team
type CountRequest struct {
	Team     model.Team
	Category string
	Count    int
}

// Request is the demand side of one generation run: the seats to fill
// and how many roles to draw per team/category. Duplicate participant
// names are treated as distinct seats.
type Request struct {
	Participants []string
	Counts       []CountRequest
}

// TotalCount returns the sum of all requested role counts
func (r Request) TotalCount() int {
	total := 0
	for _, c := range r.Counts {
		total += c.Count
	}
	return total
}

// Engine turns a catalog plus a request into a complete assignment set.
// It is stateless between calls; every Assign invocation works on its
// own copies of the intermediate role sets, so concurrent calls on the
// same catalog are safe as long as the catalog itself is not replaced
// mid-call.
type Engine struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new assignment engine
func New(random random.Random, logger *slog.Logger) *Engine {
	return &Engine{
		random: random,
		logger: logger,
	}
}

// Assign runs the full procedure: draw roles per team/category, expand
// related-role requirements, then bind roles and passwords to
// participants. pool is the password vocabulary for this run; passwords
// are drawn from it without replacement.
//
// All failures are returned as descriptive errors; nothing is retried,
// since insufficiency is deterministic given the catalog.
func (e *Engine) Assign(cat *catalog.Catalog, req Request, pool []string) ([]model.Assignment, error) {
	if len(req.Participants) == 0 {
		return nil, model.ErrNoParticipants
	}
	for _, c := range req.Counts {
		if c.Count < 0 {
			return nil, fmt.Errorf("negative role count %d for %s/%s", c.Count, c.Team, c.Category)
		}
	}

	if total := req.TotalCount(); total != len(req.Participants) {
		return nil, &model.CountMismatchError{
			ParticipantCount: len(req.Participants),
			RoleCount:        total,
		}
	}

	// The pool size check is a precondition, not a runtime
	// retry-forever risk.
	if len(pool) < len(req.Participants) {
		return nil, &model.PoolExhaustedError{
			ParticipantCount: len(req.Participants),
			PoolSize:         len(pool),
		}
	}

	roles, err := e.drawRoles(cat, req)
	if err != nil {
		return nil, err
	}

	roles, err = e.expandRelatedRoles(cat, roles)
	if err != nil {
		return nil, err
	}

	// Substitution preserves the total by construction; this guards
	// against it ever drifting.
	if len(roles) != len(req.Participants) {
		return nil, &model.CountMismatchError{
			ParticipantCount: len(req.Participants),
			RoleCount:        len(roles),
		}
	}

	assignments := e.bind(roles, req.Participants, pool)

	if e.logger != nil {
		e.logger.Info("assignments generated",
			slog.Int("participants", len(req.Participants)),
			slog.Int("roles", len(roles)),
		)
	}

	return assignments, nil
}

// drawRoles is phase 1: for each requested team/category count, draw
// that many distinct roles uniformly at random without replacement
func (e *Engine) drawRoles(cat *catalog.Catalog, req Request) ([]model.Role, error) {
	var drawn []model.Role
	for _, c := range req.Counts {
		candidates := cat.RolesOf(c.Team, c.Category)
		if len(candidates) < c.Count {
			return nil, &model.InsufficientRolesError{
				Team:      c.Team,
				Category:  c.Category,
				Required:  c.Count,
				Available: len(candidates),
			}
		}

		random.Shuffle(e.random, len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		drawn = append(drawn, candidates[:c.Count]...)
	}
	return drawn, nil
}

// expandRelatedRoles is phase 2: roles that mandate companion roles get
// them added, and a filler role is removed for each addition so the
// total stays constant. Removal prefers villager-team fillers over
// fillers of other teams; roles that themselves mandate companions are
// never removed. Expansion does not recurse into the added companions.
func (e *Engine) expandRelatedRoles(cat *catalog.Catalog, drawn []model.Role) ([]model.Role, error) {
	working := make([]model.Role, len(drawn))
	copy(working, drawn)

	var additions []model.Role

	for _, r := range drawn {
		if r.RelatedRoleCount <= 0 {
			continue
		}

		related, ok := cat.FindByName(r.RelatedRoleName)
		if !ok {
			// A validated catalog cannot hit this; a hand-built one can.
			return nil, &model.DataError{
				RoleName: r.Name,
				Reason:   fmt.Sprintf("related role %q does not exist", r.RelatedRoleName),
			}
		}

		for rep := 0; rep < r.RelatedRoleCount; rep++ {
			idx := fillerIndex(working)
			if idx < 0 {
				return nil, &model.SubstitutionError{
					RoleName:        r.Name,
					RelatedRoleName: r.RelatedRoleName,
				}
			}
			working = append(working[:idx], working[idx+1:]...)
			additions = append(additions, related)
		}
	}

	return append(working, additions...), nil
}

// fillerIndex returns the index of the preferred filler role to remove,
// or -1 if no removable filler remains
func fillerIndex(roles []model.Role) int {
	fallback := -1
	for i, r := range roles {
		if !r.IsFiller() || r.RelatedRoleCount > 0 {
			continue
		}
		if r.Team == model.TeamVillager {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	return fallback
}

// bind is phase 3: shuffle the role set, the participant list, and the
// password pool independently, then zip by index. Shuffling both sides
// yields a uniform random bijection, so any participant may receive any
// role regardless of draw order.
func (e *Engine) bind(roles []model.Role, participants []string, pool []string) []model.Assignment {
	shuffledRoles := make([]model.Role, len(roles))
	copy(shuffledRoles, roles)
	random.Shuffle(e.random, len(shuffledRoles), func(i, j int) {
		shuffledRoles[i], shuffledRoles[j] = shuffledRoles[j], shuffledRoles[i]
	})

	shuffledParticipants := make([]string, len(participants))
	copy(shuffledParticipants, participants)
	random.Shuffle(e.random, len(shuffledParticipants), func(i, j int) {
		shuffledParticipants[i], shuffledParticipants[j] = shuffledParticipants[j], shuffledParticipants[i]
	})

	shuffledPool := make([]string, len(pool))
	copy(shuffledPool, pool)
	random.Shuffle(e.random, len(shuffledPool), func(i, j int) {
		shuffledPool[i], shuffledPool[j] = shuffledPool[j], shuffledPool[i]
	})

	assignments := make([]model.Assignment, len(shuffledParticipants))
	for i, participant := range shuffledParticipants {
		assignments[i] = model.Assignment{
			ParticipantName: participant,
			Password:        shuffledPool[i],
			Role:            shuffledRoles[i],
		}
	}
	return assignments
}
