package tournament

import (
	"errors"

	"gorm.io/gorm"
)

// Repository defines the interface for tournament data operations
type Repository interface {
	CreateTournament(t *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetAllTournaments(page, limit int, status string) ([]Tournament, int64, error)
	UpdateTournament(t *Tournament) error

	CreateRegistration(r *Registration) error
	GetRegistration(tournamentID, teamID uint) (*Registration, error)
	GetRegistrationsByTournamentID(tournamentID uint) ([]Registration, error)
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewRepository creates a new instance of Repository
func NewRepository(db *gorm.DB) Repository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) CreateTournament(t *Tournament) error {
	return r.db.Create(t).Error
}

func (r *tournamentRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var t Tournament
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepository) GetAllTournaments(page, limit int, status string) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var total int64

	query := r.db.Model(&Tournament{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("starts_at asc").Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}
	return tournaments, total, nil
}

func (r *tournamentRepository) UpdateTournament(t *Tournament) error {
	return r.db.Save(t).Error
}

func (r *tournamentRepository) CreateRegistration(reg *Registration) error {
	return r.db.Create(reg).Error
}

func (r *tournamentRepository) GetRegistration(tournamentID, teamID uint) (*Registration, error) {
	var reg Registration
	err := r.db.Where("tournament_id = ? AND team_id = ?", tournamentID, teamID).First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *tournamentRepository) GetRegistrationsByTournamentID(tournamentID uint) ([]Registration, error) {
	var regs []Registration
	if err := r.db.Where("tournament_id = ?", tournamentID).Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}
