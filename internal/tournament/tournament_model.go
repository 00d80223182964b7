package tournament

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Tournament is a competition teams register for. Game must match the
// registering team's game focus.
type Tournament struct {
	gorm.Model
	Name     string    `json:"name" gorm:"not null"`
	Slug     string    `json:"slug" gorm:"uniqueIndex"`
	Game     string    `json:"game" gorm:"index"`
	Status   string    `json:"status" gorm:"default:'open'"`
	TeamSize int       `json:"team_size"`
	StartsAt time.Time `json:"starts_at"`
}

// Registration links a team to a tournament. Reference is the code shown to
// organizers and players.
type Registration struct {
	gorm.Model
	TournamentID   uint   `json:"tournament_id" gorm:"index:idx_tournament_team,unique"`
	TeamID         uint   `json:"team_id" gorm:"index:idx_tournament_team,unique"`
	RegisteredByID uint   `json:"registered_by_id"`
	Reference      string `json:"reference" gorm:"uniqueIndex"`
}
