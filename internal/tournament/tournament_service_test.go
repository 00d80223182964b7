package tournament

import (
	"errors"
	"testing"
	"time"

	"github.com/ShubhamJagtap-29/gamersden/internal/roles"
	"github.com/ShubhamJagtap-29/gamersden/internal/team"
	"github.com/ShubhamJagtap-29/gamersden/internal/user"
)

type fakeTournamentRepo struct {
	tournaments   map[uint]*Tournament
	registrations []*Registration
}

func newFakeTournamentRepo() *fakeTournamentRepo {
	return &fakeTournamentRepo{tournaments: make(map[uint]*Tournament)}
}

func (f *fakeTournamentRepo) CreateTournament(t *Tournament) error { f.tournaments[t.ID] = t; return nil }

func (f *fakeTournamentRepo) GetTournamentByID(id uint) (*Tournament, error) {
	return f.tournaments[id], nil
}

func (f *fakeTournamentRepo) GetAllTournaments(page, limit int, status string) ([]Tournament, int64, error) {
	return nil, 0, nil
}

func (f *fakeTournamentRepo) UpdateTournament(t *Tournament) error { f.tournaments[t.ID] = t; return nil }

func (f *fakeTournamentRepo) CreateRegistration(r *Registration) error {
	f.registrations = append(f.registrations, r)
	return nil
}

func (f *fakeTournamentRepo) GetRegistration(tournamentID, teamID uint) (*Registration, error) {
	for _, r := range f.registrations {
		if r.TournamentID == tournamentID && r.TeamID == teamID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeTournamentRepo) GetRegistrationsByTournamentID(tournamentID uint) ([]Registration, error) {
	return nil, nil
}

// fakeTeamRepo implements only the team.Repository methods the tournament
// service touches; the embedded interface panics on anything else.
type fakeTeamRepo struct {
	team.Repository
	teams   map[uint]*team.Team
	members []team.TeamMember
	users   map[uint]*user.User
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams: make(map[uint]*team.Team),
		users: make(map[uint]*user.User),
	}
}

func (f *fakeTeamRepo) GetTeamByID(id uint) (*team.Team, error) { return f.teams[id], nil }

func (f *fakeTeamRepo) GetActiveMembers(teamID uint) ([]team.TeamMember, error) {
	var out []team.TeamMember
	for _, m := range f.members {
		if m.TeamID == teamID && m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) GetMembershipsByUserID(userID uint) ([]team.TeamMember, error) {
	var out []team.TeamMember
	for _, m := range f.members {
		if m.UserID == userID && m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) GetUserByID(id uint) (*user.User, error) { return f.users[id], nil }

func (f *fakeTeamRepo) UpdateUserRoles(u *user.User) error {
	if stored := f.users[u.ID]; stored != nil {
		stored.Roles = u.Roles
		stored.Role = u.Role
	}
	return nil
}

func (f *fakeTeamRepo) WithTransaction(fn func(team.Repository) error) error { return fn(f) }

func fixture(t *testing.T) (*Service, *fakeTournamentRepo, *fakeTeamRepo) {
	t.Helper()
	repo := newFakeTournamentRepo()
	teams := newFakeTeamRepo()

	tour := &Tournament{Game: "valorant", Status: StatusOpen, TeamSize: 5,
		StartsAt: time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)}
	tour.ID = 1
	repo.tournaments[1] = tour

	captainID := uint(10)
	squad := &team.Team{GameFocus: "Valorant", Status: team.StatusApproved, CaptainID: &captainID}
	squad.ID = 5
	teams.teams[5] = squad

	for _, id := range []uint{10, 11} {
		u := &user.User{Roles: user.StringList{roles.TeamMember}, Role: roles.TeamMember}
		u.ID = id
		teams.users[id] = u
		m := team.TeamMember{TeamID: 5, UserID: id, Game: "Valorant", Role: roles.MemberRoleMember, IsActive: true}
		if id == captainID {
			m.Role = roles.MemberRoleCaptain
		}
		teams.members = append(teams.members, m)
	}

	return NewService(repo, teams), repo, teams
}

func TestRegisterTeamGrantsParticipantRole(t *testing.T) {
	svc, repo, teams := fixture(t)

	reg, err := svc.RegisterTeam(1, 5, 10)
	if err != nil {
		t.Fatalf("register team: %v", err)
	}
	if reg.Reference == "" {
		t.Fatal("expected a registration reference")
	}
	if len(repo.registrations) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(repo.registrations))
	}

	for _, id := range []uint{10, 11} {
		u := teams.users[id]
		if !u.Roles.Contains(roles.TournamentParticipant) {
			t.Fatalf("user %d missing TOURNAMENT_PARTICIPANT, got %v", id, u.Roles)
		}
	}
	// Team tags still outrank the participant tag.
	if teams.users[10].Role != roles.TeamCaptain {
		t.Fatalf("expected captain primary TEAM_CAPTAIN, got %s", teams.users[10].Role)
	}
	if teams.users[11].Role != roles.TeamMember {
		t.Fatalf("expected member primary TEAM_MEMBER, got %s", teams.users[11].Role)
	}
}

func TestRegisterTeamDuplicateRejected(t *testing.T) {
	svc, _, _ := fixture(t)

	if _, err := svc.RegisterTeam(1, 5, 10); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := svc.RegisterTeam(1, 5, 10); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegisterTeamGuards(t *testing.T) {
	svc, repo, teams := fixture(t)

	if _, err := svc.RegisterTeam(99, 5, 10); !errors.Is(err, ErrTournamentNotFound) {
		t.Fatalf("expected ErrTournamentNotFound, got %v", err)
	}
	if _, err := svc.RegisterTeam(1, 5, 11); !errors.Is(err, ErrNotCaptain) {
		t.Fatalf("expected ErrNotCaptain, got %v", err)
	}

	teams.teams[5].Status = team.StatusPending
	if _, err := svc.RegisterTeam(1, 5, 10); !errors.Is(err, ErrTeamNotEligible) {
		t.Fatalf("expected ErrTeamNotEligible, got %v", err)
	}
	teams.teams[5].Status = team.StatusApproved

	repo.tournaments[1].Game = "dota 2"
	if _, err := svc.RegisterTeam(1, 5, 10); !errors.Is(err, ErrGameMismatch) {
		t.Fatalf("expected ErrGameMismatch, got %v", err)
	}
	repo.tournaments[1].Game = "valorant"

	if err := svc.Close(1); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := svc.RegisterTeam(1, 5, 10); !errors.Is(err, ErrTournamentClosed) {
		t.Fatalf("expected ErrTournamentClosed, got %v", err)
	}
}
