// Package roles derives a user's aggregate role set from their team
// memberships. It is pure: no storage access, no globals mutated.
package roles

// Role tags carried in a user's roles set.
const (
	Admin                 = "ADMIN"
	TeamAdmin             = "TEAM_ADMIN"
	TeamCaptain           = "TEAM_CAPTAIN"
	TeamMember            = "TEAM_MEMBER"
	Player                = "PLAYER"
	TournamentParticipant = "TOURNAMENT_PARTICIPANT"
	User                  = "USER"
)

// Roles a user can hold on an individual team roster.
const (
	MemberRoleMember  = "member"
	MemberRoleCaptain = "captain"
	MemberRoleAdmin   = "admin"
)

// Precedence orders role tags from most to least privileged. The first tag of
// this list present in a user's roles set becomes their primary role.
var Precedence = []string{
	Admin,
	TeamAdmin,
	TeamCaptain,
	TeamMember,
	Player,
	TournamentParticipant,
	User,
}

// TeamRole is one team membership as seen by role derivation.
type TeamRole struct {
	TeamID uint
	Game   string
	Role   string
}

// Derive recomputes a user's roles set and primary role from their current
// team memberships. Tags not synthesized here (ADMIN, PLAYER,
// TOURNAMENT_PARTICIPANT, ...) pass through untouched; the three team tags are
// added or removed to match the memberships; USER is kept only when nothing
// else applies. Derive is total and idempotent: feeding its output back with
// unchanged memberships yields the same result.
func Derive(teams []TeamRole, existing []string) ([]string, string) {
	seen := make(map[string]bool, len(existing)+3)
	out := make([]string, 0, len(existing)+3)
	for _, tag := range existing {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}

	hasTeams := len(teams) > 0
	hasCaptain := false
	hasTeamAdmin := false
	for _, t := range teams {
		switch t.Role {
		case MemberRoleCaptain:
			hasCaptain = true
		case MemberRoleAdmin:
			hasTeamAdmin = true
		}
	}

	synth := []struct {
		tag  string
		want bool
	}{
		{TeamMember, hasTeams},
		{TeamCaptain, hasCaptain},
		{TeamAdmin, hasTeamAdmin},
	}
	for _, s := range synth {
		switch {
		case s.want && !seen[s.tag]:
			seen[s.tag] = true
			out = append(out, s.tag)
		case !s.want && seen[s.tag]:
			delete(seen, s.tag)
			out = removeTag(out, s.tag)
		}
	}

	// USER is a placeholder: present alone, never alongside a specialized tag.
	if len(out) == 0 {
		out = append(out, User)
		seen[User] = true
	} else if seen[User] && len(out) > 1 {
		delete(seen, User)
		out = removeTag(out, User)
	}

	return out, Primary(out)
}

// Primary returns the highest-precedence tag present in the set, falling back
// to USER when no known tag is found.
func Primary(tags []string) string {
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		seen[tag] = true
	}
	for _, tag := range Precedence {
		if seen[tag] {
			return tag
		}
	}
	return User
}

func removeTag(tags []string, tag string) []string {
	out := tags[:0]
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
