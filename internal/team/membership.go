package team

import (
	"errors"
	"strings"
	"time"

	"github.com/ShubhamJagtap-29/gamersden/internal/roles"
	"github.com/ShubhamJagtap-29/gamersden/internal/roster"
	"github.com/ShubhamJagtap-29/gamersden/internal/user"
)

// Membership mutation failures. All are recoverable conditions returned to
// the caller; handlers translate them to HTTP status codes.
var (
	ErrRosterFull              = errors.New("team roster is full")
	ErrRoleConflict            = errors.New("user already holds this role on another team")
	ErrDuplicateGameMembership = errors.New("user already belongs to a team for this game")
	ErrNotAMember              = errors.New("user is not an active member of this team")
	ErrCaptainCannotLeave      = errors.New("captain must transfer leadership or disband before leaving")
	ErrAlreadyAMember          = errors.New("user is already a member of this team")
	ErrDuplicateApplication    = errors.New("a pending application for this team already exists")
	ErrTeamNotFound            = errors.New("team not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrApplicationNotPending   = errors.New("application has already been processed")
)

// ApplicationTTL is how long a pending application stays open before the
// background sweep rejects it.
const ApplicationTTL = 14 * 24 * time.Hour

// MembershipService coordinates roster mutations. Every operation runs inside
// one transaction covering both the team side (team_members, captain_id) and
// the user side (roles, role), and re-derives the user's role set before
// committing.
type MembershipService struct {
	repo  Repository
	clock func() time.Time
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(repo Repository) *MembershipService {
	return &MembershipService{repo: repo, clock: time.Now}
}

// AddMember puts a user on a team roster with the given role. Fails with
// ErrRosterFull when the roster is at its game limit and the user is not
// already a member, and with ErrRoleConflict when the role is captain or
// admin and the user already holds that role on a different team.
func (s *MembershipService) AddMember(teamID, userID uint, role string) error {
	return s.repo.WithTransaction(func(tx Repository) error {
		return s.addMember(tx, teamID, userID, role)
	})
}

func (s *MembershipService) addMember(tx Repository, teamID, userID uint, role string) error {
	t, u, err := s.loadTeamAndUser(tx, teamID, userID)
	if err != nil {
		return err
	}

	existing, err := tx.GetTeamMember(teamID, userID)
	if err != nil {
		return err
	}
	alreadyMember := existing != nil && existing.IsActive

	// The limit only gates genuinely new members; role changes and
	// reactivations of the same user never trip it.
	if !alreadyMember {
		count, err := tx.CountActiveMembers(teamID)
		if err != nil {
			return err
		}
		if count >= int64(roster.LimitFor(t.GameFocus).MaxTotal) {
			return ErrRosterFull
		}
	}

	if err := s.checkRoleExclusivity(tx, teamID, userID, role); err != nil {
		return err
	}

	m := &TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		Game:     t.GameFocus,
		Role:     role,
		JoinedAt: s.clock(),
		IsActive: true,
	}
	if alreadyMember {
		m.JoinedAt = existing.JoinedAt
		m.InLineup = existing.InLineup
		m.IsSubstitute = existing.IsSubstitute
	}
	if err := tx.UpsertTeamMember(m); err != nil {
		return err
	}

	if err := s.syncCaptain(tx, t, userID, role); err != nil {
		return err
	}
	return s.syncRoles(tx, u)
}

// UpdateMemberRole changes an existing member's role in place. Demoting the
// current captain clears the team's captain reference; promoting to captain
// sets it.
func (s *MembershipService) UpdateMemberRole(teamID, userID uint, newRole string) error {
	return s.repo.WithTransaction(func(tx Repository) error {
		t, u, err := s.loadTeamAndUser(tx, teamID, userID)
		if err != nil {
			return err
		}

		m, err := tx.GetTeamMember(teamID, userID)
		if err != nil {
			return err
		}
		if m == nil || !m.IsActive {
			return ErrNotAMember
		}

		if err := s.checkRoleExclusivity(tx, teamID, userID, newRole); err != nil {
			return err
		}

		m.Role = newRole
		if err := tx.UpdateTeamMember(m); err != nil {
			return err
		}

		if err := s.syncCaptain(tx, t, userID, newRole); err != nil {
			return err
		}
		return s.syncRoles(tx, u)
	})
}

// RemoveMember takes a user off the roster. The current captain cannot be
// removed through this path; they must transfer or disband first.
func (s *MembershipService) RemoveMember(teamID, userID uint) error {
	return s.repo.WithTransaction(func(tx Repository) error {
		return s.removeMember(tx, teamID, userID, false)
	})
}

// RemoveMemberAsAdmin is the back-office variant of RemoveMember: the captain
// guard does not apply, and removing the captain clears the team's captain
// reference.
func (s *MembershipService) RemoveMemberAsAdmin(teamID, userID uint) error {
	return s.repo.WithTransaction(func(tx Repository) error {
		return s.removeMember(tx, teamID, userID, true)
	})
}

// LeaveTeam removes the calling user from the roster, lineup and substitute
// slots. Fails with ErrCaptainCannotLeave for the current captain.
func (s *MembershipService) LeaveTeam(teamID, userID uint) error {
	return s.repo.WithTransaction(func(tx Repository) error {
		return s.removeMember(tx, teamID, userID, false)
	})
}

func (s *MembershipService) removeMember(tx Repository, teamID, userID uint, adminOverride bool) error {
	t, u, err := s.loadTeamAndUser(tx, teamID, userID)
	if err != nil {
		return err
	}

	m, err := tx.GetTeamMember(teamID, userID)
	if err != nil {
		return err
	}
	if m == nil || !m.IsActive {
		return ErrNotAMember
	}

	isCaptain := t.CaptainID != nil && *t.CaptainID == userID
	if isCaptain && !adminOverride {
		return ErrCaptainCannotLeave
	}

	if err := tx.DeactivateTeamMember(teamID, userID); err != nil {
		return err
	}
	if isCaptain {
		t.CaptainID = nil
		if err := tx.UpdateTeam(t); err != nil {
			return err
		}
	}
	return s.syncRoles(tx, u)
}

// Apply files a membership application for a team. One pending application
// per user and team.
func (s *MembershipService) Apply(teamID, userID uint, data string) (*TeamApplication, error) {
	t, err := s.repo.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTeamNotFound
	}

	m, err := s.repo.GetTeamMember(teamID, userID)
	if err != nil {
		return nil, err
	}
	if m != nil && m.IsActive {
		return nil, ErrAlreadyAMember
	}

	pending, err := s.repo.GetPendingApplication(teamID, userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, ErrDuplicateApplication
	}

	app := &TeamApplication{
		TeamID:    teamID,
		UserID:    userID,
		Status:    StatusPending,
		Data:      data,
		ExpiresAt: s.clock().Add(ApplicationTTL),
	}
	if err := s.repo.CreateApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}

// ApproveApplication accepts a pending application and adds the applicant to
// the roster with the given role. A user may belong to at most one team per
// game; this is the one place that rule is enforced.
func (s *MembershipService) ApproveApplication(appID uint, role string) error {
	return s.repo.WithTransaction(func(tx Repository) error {
		app, err := tx.GetApplicationByID(appID)
		if err != nil {
			return err
		}
		if app == nil {
			return ErrApplicationNotFound
		}
		if app.Status != StatusPending {
			return ErrApplicationNotPending
		}

		t, err := tx.GetTeamByID(app.TeamID)
		if err != nil {
			return err
		}
		if t == nil {
			return ErrTeamNotFound
		}

		memberships, err := tx.GetMembershipsByUserID(app.UserID)
		if err != nil {
			return err
		}
		for _, m := range memberships {
			if m.TeamID != app.TeamID && strings.EqualFold(m.Game, t.GameFocus) {
				return ErrDuplicateGameMembership
			}
		}

		if err := s.addMember(tx, app.TeamID, app.UserID, role); err != nil {
			return err
		}

		app.Status = StatusApproved
		return tx.UpdateApplication(app)
	})
}

// RejectApplication marks a pending application rejected with no further
// mutation.
func (s *MembershipService) RejectApplication(appID uint) error {
	app, err := s.repo.GetApplicationByID(appID)
	if err != nil {
		return err
	}
	if app == nil {
		return ErrApplicationNotFound
	}
	if app.Status != StatusPending {
		return ErrApplicationNotPending
	}
	app.Status = StatusRejected
	return s.repo.UpdateApplication(app)
}

// --- helpers ---

func (s *MembershipService) loadTeamAndUser(tx Repository, teamID, userID uint) (*Team, *user.User, error) {
	t, err := tx.GetTeamByID(teamID)
	if err != nil {
		return nil, nil, err
	}
	if t == nil {
		return nil, nil, ErrTeamNotFound
	}
	u, err := tx.GetUserByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		return nil, nil, ErrUserNotFound
	}
	return t, u, nil
}

// checkRoleExclusivity enforces cross-team exclusivity for captain and admin
// membership roles. Exclusivity is global, not per game: a user may captain
// only one team anywhere, and separately hold the admin role on only one.
func (s *MembershipService) checkRoleExclusivity(tx Repository, teamID, userID uint, role string) error {
	if role != roles.MemberRoleCaptain && role != roles.MemberRoleAdmin {
		return nil
	}
	memberships, err := tx.GetMembershipsByUserID(userID)
	if err != nil {
		return err
	}
	for _, m := range memberships {
		if m.TeamID != teamID && m.Role == role {
			return ErrRoleConflict
		}
	}
	return nil
}

func (s *MembershipService) syncCaptain(tx Repository, t *Team, userID uint, role string) error {
	switch {
	case role == roles.MemberRoleCaptain:
		if t.CaptainID != nil && *t.CaptainID == userID {
			return nil
		}
		t.CaptainID = &userID
	case t.CaptainID != nil && *t.CaptainID == userID:
		t.CaptainID = nil
	default:
		return nil
	}
	return tx.UpdateTeam(t)
}

// syncRoles re-derives the user's role set from their current memberships and
// persists both the set and the legacy scalar. Runs after every membership
// mutation, inside the same transaction.
func (s *MembershipService) syncRoles(tx Repository, u *user.User) error {
	memberships, err := tx.GetMembershipsByUserID(u.ID)
	if err != nil {
		return err
	}
	teamRoles := make([]roles.TeamRole, 0, len(memberships))
	for _, m := range memberships {
		teamRoles = append(teamRoles, roles.TeamRole{TeamID: m.TeamID, Game: m.Game, Role: m.Role})
	}
	derived, primary := roles.Derive(teamRoles, u.Roles)
	u.Roles = derived
	u.Role = primary
	return tx.UpdateUserRoles(u)
}
