package tournament

import (
	"errors"
	"strings"

	"github.com/ShubhamJagtap-29/gamersden/internal/roles"
	"github.com/ShubhamJagtap-29/gamersden/internal/team"
	"github.com/google/uuid"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTournamentClosed   = errors.New("tournament is closed for registration")
	ErrGameMismatch       = errors.New("team game focus does not match the tournament game")
	ErrAlreadyRegistered  = errors.New("team is already registered for this tournament")
	ErrNotCaptain         = errors.New("only the team captain can register the team")
	ErrTeamNotEligible    = errors.New("team must be approved and not banned")
)

// Service handles tournament registration. It leans on the team repository
// for roster access and for granting the participant role to roster members.
type Service struct {
	repo  Repository
	teams team.Repository
}

// NewService creates a new tournament service.
func NewService(repo Repository, teams team.Repository) *Service {
	return &Service{repo: repo, teams: teams}
}

// RegisterTeam registers an approved team for an open tournament of the same
// game. Every active roster member gains the TOURNAMENT_PARTICIPANT role tag;
// the tag is sticky and survives later membership changes.
func (s *Service) RegisterTeam(tournamentID, teamID, actorID uint) (*Registration, error) {
	tour, err := s.repo.GetTournamentByID(tournamentID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, ErrTournamentNotFound
	}
	if tour.Status != StatusOpen {
		return nil, ErrTournamentClosed
	}

	t, err := s.teams.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, team.ErrTeamNotFound
	}
	if t.Status != team.StatusApproved || t.IsBanned {
		return nil, ErrTeamNotEligible
	}
	if !strings.EqualFold(t.GameFocus, tour.Game) {
		return nil, ErrGameMismatch
	}
	if t.CaptainID == nil || *t.CaptainID != actorID {
		return nil, ErrNotCaptain
	}

	existing, err := s.repo.GetRegistration(tournamentID, teamID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	reg := &Registration{
		TournamentID:   tournamentID,
		TeamID:         teamID,
		RegisteredByID: actorID,
		Reference:      uuid.NewString(),
	}
	if err := s.repo.CreateRegistration(reg); err != nil {
		return nil, err
	}

	if err := s.grantParticipantRole(teamID); err != nil {
		return nil, err
	}
	return reg, nil
}

// grantParticipantRole adds TOURNAMENT_PARTICIPANT to every active roster
// member and re-derives their role set in one transaction.
func (s *Service) grantParticipantRole(teamID uint) error {
	return s.teams.WithTransaction(func(tx team.Repository) error {
		members, err := tx.GetActiveMembers(teamID)
		if err != nil {
			return err
		}
		for _, m := range members {
			u, err := tx.GetUserByID(m.UserID)
			if err != nil {
				return err
			}
			if u == nil {
				continue
			}

			memberships, err := tx.GetMembershipsByUserID(u.ID)
			if err != nil {
				return err
			}
			teamRoles := make([]roles.TeamRole, 0, len(memberships))
			for _, ms := range memberships {
				teamRoles = append(teamRoles, roles.TeamRole{TeamID: ms.TeamID, Game: ms.Game, Role: ms.Role})
			}

			existing := u.Roles
			if !u.Roles.Contains(roles.TournamentParticipant) {
				existing = append(append([]string{}, u.Roles...), roles.TournamentParticipant)
			}
			derived, primary := roles.Derive(teamRoles, existing)
			u.Roles = derived
			u.Role = primary
			if err := tx.UpdateUserRoles(u); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close stops further registrations for a tournament.
func (s *Service) Close(tournamentID uint) error {
	tour, err := s.repo.GetTournamentByID(tournamentID)
	if err != nil {
		return err
	}
	if tour == nil {
		return ErrTournamentNotFound
	}
	tour.Status = StatusClosed
	return s.repo.UpdateTournament(tour)
}
