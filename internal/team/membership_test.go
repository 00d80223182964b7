package team

import (
	"errors"
	"testing"
	"time"

	"github.com/ShubhamJagtap-29/gamersden/internal/roles"
	"github.com/ShubhamJagtap-29/gamersden/internal/user"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	teams   map[uint]*Team
	members map[[2]uint]*TeamMember // key: {teamID, userID}
	apps    map[uint]*TeamApplication
	users   map[uint]*user.User

	nextAppID uint
	now       time.Time
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		teams:   make(map[uint]*Team),
		members: make(map[[2]uint]*TeamMember),
		apps:    make(map[uint]*TeamApplication),
		users:   make(map[uint]*user.User),
		now:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepository) addTeam(id uint, game string) *Team {
	t := &Team{GameFocus: game, Status: StatusApproved}
	t.ID = id
	f.teams[id] = t
	return t
}

func (f *fakeRepository) addUser(id uint) *user.User {
	u := &user.User{Roles: user.StringList{roles.User}, Role: roles.User}
	u.ID = id
	f.users[id] = u
	return u
}

func (f *fakeRepository) CreateTeam(t *Team) error { f.teams[t.ID] = t; return nil }

func (f *fakeRepository) GetTeamByID(id uint) (*Team, error) { return f.teams[id], nil }

func (f *fakeRepository) GetTeamBySlug(slug string) (*Team, error) {
	for _, t := range f.teams {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) GetTeamByName(name string) (*Team, error) {
	for _, t := range f.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) GetAllTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepository) GetAllTeamsAdmin(page, limit int, includeBanned bool) ([]Team, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepository) UpdateTeam(t *Team) error { f.teams[t.ID] = t; return nil }

func (f *fakeRepository) GetTeamMember(teamID, userID uint) (*TeamMember, error) {
	return f.members[[2]uint{teamID, userID}], nil
}

func (f *fakeRepository) GetActiveMembers(teamID uint) ([]TeamMember, error) {
	var out []TeamMember
	for _, m := range f.members {
		if m.TeamID == teamID && m.IsActive {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeRepository) CountActiveMembers(teamID uint) (int64, error) {
	members, _ := f.GetActiveMembers(teamID)
	return int64(len(members)), nil
}

func (f *fakeRepository) UpsertTeamMember(m *TeamMember) error {
	cp := *m
	f.members[[2]uint{m.TeamID, m.UserID}] = &cp
	return nil
}

func (f *fakeRepository) UpdateTeamMember(m *TeamMember) error {
	return f.UpsertTeamMember(m)
}

func (f *fakeRepository) DeactivateTeamMember(teamID, userID uint) error {
	if m := f.members[[2]uint{teamID, userID}]; m != nil {
		m.IsActive = false
		m.InLineup = false
		m.IsSubstitute = false
	}
	return nil
}

func (f *fakeRepository) GetMembershipsByUserID(userID uint) ([]TeamMember, error) {
	var out []TeamMember
	for _, m := range f.members {
		if m.UserID == userID && m.IsActive {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeRepository) CreateApplication(a *TeamApplication) error {
	f.nextAppID++
	a.ID = f.nextAppID
	f.apps[a.ID] = a
	return nil
}

func (f *fakeRepository) GetApplicationByID(id uint) (*TeamApplication, error) {
	return f.apps[id], nil
}

func (f *fakeRepository) GetPendingApplication(teamID, userID uint) (*TeamApplication, error) {
	for _, a := range f.apps {
		if a.TeamID == teamID && a.UserID == userID && a.Status == StatusPending {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) GetApplicationsByTeamID(teamID uint, status string, page, limit int) ([]TeamApplication, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepository) UpdateApplication(a *TeamApplication) error { f.apps[a.ID] = a; return nil }

func (f *fakeRepository) RejectExpiredApplications(now time.Time) (int64, error) {
	var n int64
	for _, a := range f.apps {
		if a.Status == StatusPending && a.ExpiresAt.Before(now) {
			a.Status = StatusRejected
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) GetUserByID(id uint) (*user.User, error) { return f.users[id], nil }

func (f *fakeRepository) UpdateUserRoles(u *user.User) error {
	if stored := f.users[u.ID]; stored != nil {
		stored.Roles = u.Roles
		stored.Role = u.Role
	}
	return nil
}

func (f *fakeRepository) WithTransaction(txFunc func(Repository) error) error {
	return txFunc(f)
}

func newService(repo *fakeRepository) *MembershipService {
	s := NewMembershipService(repo)
	s.clock = func() time.Time { return repo.now }
	return s
}

func TestAddMemberAsCaptain(t *testing.T) {
	repo := newFakeRepository()
	teamA := repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.AddMember(1, 10, roles.MemberRoleCaptain); err != nil {
		t.Fatalf("add member: %v", err)
	}

	m, _ := repo.GetTeamMember(1, 10)
	if m == nil || !m.IsActive || m.Role != roles.MemberRoleCaptain {
		t.Fatalf("expected active captain membership, got %+v", m)
	}
	if m.Game != "valorant" {
		t.Fatalf("expected membership game valorant, got %q", m.Game)
	}
	if teamA.CaptainID == nil || *teamA.CaptainID != 10 {
		t.Fatalf("expected captain_id 10, got %v", teamA.CaptainID)
	}

	u := repo.users[10]
	if !u.Roles.Contains(roles.TeamMember) || !u.Roles.Contains(roles.TeamCaptain) {
		t.Fatalf("expected TEAM_MEMBER and TEAM_CAPTAIN, got %v", u.Roles)
	}
	if u.Roles.Contains(roles.User) {
		t.Fatalf("USER must be dropped once specialized roles apply, got %v", u.Roles)
	}
	if u.Role != roles.TeamCaptain {
		t.Fatalf("expected primary TEAM_CAPTAIN, got %s", u.Role)
	}
}

func TestAddMemberSecondCaptaincyRejected(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	teamB := repo.addTeam(2, "dota 2")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.AddMember(1, 10, roles.MemberRoleCaptain); err != nil {
		t.Fatalf("first captaincy: %v", err)
	}
	err := svc.AddMember(2, 10, roles.MemberRoleCaptain)
	if !errors.Is(err, ErrRoleConflict) {
		t.Fatalf("expected ErrRoleConflict, got %v", err)
	}

	if m, _ := repo.GetTeamMember(2, 10); m != nil {
		t.Fatalf("conflicting add must not create a membership, got %+v", m)
	}
	if teamB.CaptainID != nil {
		t.Fatalf("conflicting add must not set captain_id, got %v", *teamB.CaptainID)
	}
	if u := repo.users[10]; u.Role != roles.TeamCaptain {
		t.Fatalf("user roles must be untouched, got %s", u.Role)
	}
}

func TestAddMemberTeamAdminExclusivity(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	repo.addTeam(2, "dota 2")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.AddMember(1, 10, roles.MemberRoleAdmin); err != nil {
		t.Fatalf("first admin role: %v", err)
	}
	if err := svc.AddMember(2, 10, roles.MemberRoleAdmin); !errors.Is(err, ErrRoleConflict) {
		t.Fatalf("expected ErrRoleConflict for second admin role, got %v", err)
	}
	// A plain membership on another team is still fine.
	if err := svc.AddMember(2, 10, roles.MemberRoleMember); err != nil {
		t.Fatalf("plain membership on second team: %v", err)
	}
}

func TestAddMemberRosterFull(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "EA FC 25") // limit 3
	for id := uint(10); id < 13; id++ {
		repo.addUser(id)
	}
	repo.addUser(99)
	svc := newService(repo)

	for id := uint(10); id < 13; id++ {
		if err := svc.AddMember(1, id, roles.MemberRoleMember); err != nil {
			t.Fatalf("add member %d: %v", id, err)
		}
	}
	err := svc.AddMember(1, 99, roles.MemberRoleMember)
	if !errors.Is(err, ErrRosterFull) {
		t.Fatalf("expected ErrRosterFull, got %v", err)
	}
	if m, _ := repo.GetTeamMember(1, 99); m != nil {
		t.Fatalf("rejected add must not create a membership, got %+v", m)
	}

	// Updating an existing member is not gated by the limit.
	if err := svc.AddMember(1, 10, roles.MemberRoleCaptain); err != nil {
		t.Fatalf("role change on full roster: %v", err)
	}
}

func TestRemoveMemberRoundTrip(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.AddMember(1, 10, roles.MemberRoleMember); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if err := svc.RemoveMember(1, 10); err != nil {
		t.Fatalf("remove member: %v", err)
	}

	count, _ := repo.CountActiveMembers(1)
	if count != 0 {
		t.Fatalf("expected empty roster after remove, got %d", count)
	}
	memberships, _ := repo.GetMembershipsByUserID(10)
	if len(memberships) != 0 {
		t.Fatalf("expected no memberships after remove, got %v", memberships)
	}
	u := repo.users[10]
	if u.Role != roles.User || len(u.Roles) != 1 || u.Roles[0] != roles.User {
		t.Fatalf("expected roles reset to [USER], got %v / %s", u.Roles, u.Role)
	}
}

func TestRemoveMemberNotAMember(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.RemoveMember(1, 10); !errors.Is(err, ErrNotAMember) {
		t.Fatalf("expected ErrNotAMember, got %v", err)
	}
}

func TestCaptainCannotLeave(t *testing.T) {
	repo := newFakeRepository()
	teamA := repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.AddMember(1, 10, roles.MemberRoleCaptain); err != nil {
		t.Fatalf("add captain: %v", err)
	}
	if err := svc.LeaveTeam(1, 10); !errors.Is(err, ErrCaptainCannotLeave) {
		t.Fatalf("expected ErrCaptainCannotLeave, got %v", err)
	}
	if err := svc.RemoveMember(1, 10); !errors.Is(err, ErrCaptainCannotLeave) {
		t.Fatalf("expected ErrCaptainCannotLeave via remove, got %v", err)
	}

	// The back-office path is an admin override and goes through.
	if err := svc.RemoveMemberAsAdmin(1, 10); err != nil {
		t.Fatalf("admin remove of captain: %v", err)
	}
	if teamA.CaptainID != nil {
		t.Fatalf("expected captain_id cleared, got %v", *teamA.CaptainID)
	}
}

func TestUpdateMemberRoleDemotionClearsCaptain(t *testing.T) {
	repo := newFakeRepository()
	teamA := repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.AddMember(1, 10, roles.MemberRoleCaptain); err != nil {
		t.Fatalf("add captain: %v", err)
	}
	if err := svc.UpdateMemberRole(1, 10, roles.MemberRoleMember); err != nil {
		t.Fatalf("demote: %v", err)
	}

	if teamA.CaptainID != nil {
		t.Fatalf("expected captain_id cleared after demotion, got %v", *teamA.CaptainID)
	}
	m, _ := repo.GetTeamMember(1, 10)
	if m.Role != roles.MemberRoleMember {
		t.Fatalf("expected role member, got %s", m.Role)
	}
	u := repo.users[10]
	if u.Roles.Contains(roles.TeamCaptain) {
		t.Fatalf("TEAM_CAPTAIN must be dropped after demotion, got %v", u.Roles)
	}
	if u.Role != roles.TeamMember {
		t.Fatalf("expected primary TEAM_MEMBER, got %s", u.Role)
	}
}

func TestUpdateMemberRoleNotAMember(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.UpdateMemberRole(1, 10, roles.MemberRoleCaptain); !errors.Is(err, ErrNotAMember) {
		t.Fatalf("expected ErrNotAMember, got %v", err)
	}
}

func TestApproveApplication(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	app, err := svc.Apply(1, 10, `{"note":"igl, 1.2kd"}`)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.Status != StatusPending {
		t.Fatalf("expected pending application, got %s", app.Status)
	}
	if _, err := svc.Apply(1, 10, "{}"); !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}

	if err := svc.ApproveApplication(app.ID, roles.MemberRoleMember); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if app.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", app.Status)
	}
	m, _ := repo.GetTeamMember(1, 10)
	if m == nil || !m.IsActive {
		t.Fatalf("expected active membership after approval, got %+v", m)
	}
	if err := svc.ApproveApplication(app.ID, roles.MemberRoleMember); !errors.Is(err, ErrApplicationNotPending) {
		t.Fatalf("expected ErrApplicationNotPending on re-approval, got %v", err)
	}
}

func TestApproveApplicationDuplicateGame(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "Valorant")
	repo.addTeam(2, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.AddMember(1, 10, roles.MemberRoleMember); err != nil {
		t.Fatalf("seed membership: %v", err)
	}
	app, err := svc.Apply(2, 10, "{}")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	err = svc.ApproveApplication(app.ID, roles.MemberRoleMember)
	if !errors.Is(err, ErrDuplicateGameMembership) {
		t.Fatalf("expected ErrDuplicateGameMembership, got %v", err)
	}
	if m, _ := repo.GetTeamMember(2, 10); m != nil {
		t.Fatalf("rejected approval must not create a membership, got %+v", m)
	}
}

func TestApproveApplicationAcrossGames(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	repo.addTeam(2, "dota 2")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.AddMember(1, 10, roles.MemberRoleMember); err != nil {
		t.Fatalf("seed membership: %v", err)
	}
	app, err := svc.Apply(2, 10, "{}")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := svc.ApproveApplication(app.ID, roles.MemberRoleMember); err != nil {
		t.Fatalf("cross-game approval should pass, got %v", err)
	}
}

func TestRejectApplication(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	app, err := svc.Apply(1, 10, "{}")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := svc.RejectApplication(app.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if app.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", app.Status)
	}
	if m, _ := repo.GetTeamMember(1, 10); m != nil {
		t.Fatalf("rejection must not create a membership, got %+v", m)
	}
}

func TestLeaveTeamClearsLineupFlags(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	if err := svc.AddMember(1, 10, roles.MemberRoleMember); err != nil {
		t.Fatalf("add member: %v", err)
	}
	m, _ := repo.GetTeamMember(1, 10)
	m.InLineup = true
	m.IsSubstitute = true

	if err := svc.LeaveTeam(1, 10); err != nil {
		t.Fatalf("leave: %v", err)
	}
	m, _ = repo.GetTeamMember(1, 10)
	if m.IsActive || m.InLineup || m.IsSubstitute {
		t.Fatalf("expected membership fully cleared, got %+v", m)
	}
}

func TestRejectExpiredApplications(t *testing.T) {
	repo := newFakeRepository()
	repo.addTeam(1, "valorant")
	repo.addUser(10)
	svc := newService(repo)

	app, err := svc.Apply(1, 10, "{}")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	n, err := repo.RejectExpiredApplications(repo.now.Add(ApplicationTTL + time.Hour))
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 expired application, got %d", n)
	}
	if app.Status != StatusRejected {
		t.Fatalf("expected rejected after sweep, got %s", app.Status)
	}
}
