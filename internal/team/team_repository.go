package team

import (
	"errors"
	"time"

	"github.com/ShubhamJagtap-29/gamersden/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the interface for team, membership and application data
// operations. The user-side methods are included so a membership mutation can
// update both aggregates inside one transaction.
type Repository interface {
	// Team operations
	CreateTeam(t *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamBySlug(slug string) (*Team, error)
	GetTeamByName(name string) (*Team, error)
	GetAllTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error)
	GetAllTeamsAdmin(page, limit int, includeBanned bool) ([]Team, int64, error)
	UpdateTeam(t *Team) error

	// TeamMember operations
	GetTeamMember(teamID, userID uint) (*TeamMember, error)
	GetActiveMembers(teamID uint) ([]TeamMember, error)
	CountActiveMembers(teamID uint) (int64, error)
	UpsertTeamMember(m *TeamMember) error
	UpdateTeamMember(m *TeamMember) error
	DeactivateTeamMember(teamID, userID uint) error
	GetMembershipsByUserID(userID uint) ([]TeamMember, error)

	// TeamApplication operations
	CreateApplication(a *TeamApplication) error
	GetApplicationByID(id uint) (*TeamApplication, error)
	GetPendingApplication(teamID, userID uint) (*TeamApplication, error)
	GetApplicationsByTeamID(teamID uint, status string, page, limit int) ([]TeamApplication, int64, error)
	UpdateApplication(a *TeamApplication) error
	RejectExpiredApplications(now time.Time) (int64, error)

	// User side of a membership mutation
	GetUserByID(id uint) (*user.User, error)
	UpdateUserRoles(u *user.User) error

	WithTransaction(txFunc func(Repository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewRepository creates a new instance of Repository
func NewRepository(db *gorm.DB) Repository {
	return &teamRepository{db: db}
}

// --- Team Operations ---

func (r *teamRepository) CreateTeam(t *Team) error {
	return r.db.Create(t).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetTeamBySlug(slug string) (*Team, error) {
	var t Team
	if err := r.db.Where("slug = ?", slug).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetTeamByName(name string) (*Team, error) {
	var t Team
	if err := r.db.Where("name = ?", name).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetAllTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{}).Where("is_banned = ?", false)

	if game, ok := filters["game"]; ok {
		query = query.Where("game_focus ILIKE ?", "%"+game.(string)+"%")
	}
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if name, ok := filters["name"]; ok {
		query = query.Where("name ILIKE ?", "%"+name.(string)+"%")
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) GetAllTeamsAdmin(page, limit int, includeBanned bool) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{})
	if !includeBanned {
		query = query.Where("is_banned = ?", false)
	}
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) UpdateTeam(t *Team) error {
	return r.db.Save(t).Error
}

// --- TeamMember Operations ---

func (r *teamRepository) GetTeamMember(teamID, userID uint) (*TeamMember, error) {
	var m TeamMember
	if err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *teamRepository) GetActiveMembers(teamID uint) ([]TeamMember, error) {
	var members []TeamMember
	err := r.db.Where("team_id = ? AND is_active = ?", teamID, true).
		Order("created_at asc").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) CountActiveMembers(teamID uint) (int64, error) {
	var count int64
	err := r.db.Model(&TeamMember{}).
		Where("team_id = ? AND is_active = ?", teamID, true).Count(&count).Error
	return count, err
}

func (r *teamRepository) UpsertTeamMember(m *TeamMember) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"game", "role", "in_lineup", "is_substitute", "is_active", "updated_at"}),
	}).Create(m).Error
}

func (r *teamRepository) UpdateTeamMember(m *TeamMember) error {
	return r.db.Save(m).Error
}

func (r *teamRepository) DeactivateTeamMember(teamID, userID uint) error {
	return r.db.Model(&TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Updates(map[string]interface{}{
			"is_active":     false,
			"in_lineup":     false,
			"is_substitute": false,
		}).Error
}

func (r *teamRepository) GetMembershipsByUserID(userID uint) ([]TeamMember, error) {
	var memberships []TeamMember
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at asc").Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// --- TeamApplication Operations ---

func (r *teamRepository) CreateApplication(a *TeamApplication) error {
	return r.db.Create(a).Error
}

func (r *teamRepository) GetApplicationByID(id uint) (*TeamApplication, error) {
	var a TeamApplication
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *teamRepository) GetPendingApplication(teamID, userID uint) (*TeamApplication, error) {
	var a TeamApplication
	err := r.db.Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, StatusPending).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *teamRepository) GetApplicationsByTeamID(teamID uint, status string, page, limit int) ([]TeamApplication, int64, error) {
	var apps []TeamApplication
	var total int64
	query := r.db.Model(&TeamApplication{}).Where("team_id = ?", teamID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *teamRepository) UpdateApplication(a *TeamApplication) error {
	return r.db.Save(a).Error
}

func (r *teamRepository) RejectExpiredApplications(now time.Time) (int64, error) {
	res := r.db.Model(&TeamApplication{}).
		Where("status = ? AND expires_at < ?", StatusPending, now).
		Update("status", StatusRejected)
	return res.RowsAffected, res.Error
}

// --- User Operations ---

func (r *teamRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *teamRepository) UpdateUserRoles(u *user.User) error {
	return r.db.Model(&user.User{}).Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"roles": u.Roles,
			"role":  u.Role,
		}).Error
}

func (r *teamRepository) WithTransaction(txFunc func(Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &teamRepository{db: tx}
		return txFunc(txRepo)
	})
}
