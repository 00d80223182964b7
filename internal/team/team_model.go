package team

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	DefaultLogoURL = "/public/default_team_logo.png"
)

// Team is an esports roster for a single game. CaptainID is nil until a
// captain is assigned; the captain is always also present in team_members.
type Team struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Tag         string `json:"tag"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	GameFocus   string `json:"game_focus" gorm:"index"`
	CaptainID   *uint  `json:"captain_id" gorm:"index"`
	Status      string `json:"status" gorm:"default:'pending'"`
	IsBanned    bool   `json:"is_banned" gorm:"default:false"`
}

// TeamMember represents a user's membership in a team. Game is copied from
// the team's game focus at add time so per-game checks need no join. Removal
// deactivates the row; all reads filter on is_active.
type TeamMember struct {
	gorm.Model
	TeamID       uint      `json:"team_id" gorm:"index:idx_team_member,unique"`
	UserID       uint      `json:"user_id" gorm:"index:idx_team_member,unique"`
	Game         string    `json:"game" gorm:"index"`
	Role         string    `json:"role" gorm:"default:'member'"`
	InLineup     bool      `json:"in_lineup" gorm:"default:false"`
	IsSubstitute bool      `json:"is_substitute" gorm:"default:false"`
	JoinedAt     time.Time `json:"joined_at"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
}

// TeamApplication is a pending request by a user to join a team.
type TeamApplication struct {
	gorm.Model
	TeamID    uint      `json:"team_id" gorm:"index"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Status    string    `json:"status" gorm:"default:'pending'"`
	Data      string    `json:"data" gorm:"type:json"` // free-form applicant answers
	ExpiresAt time.Time `json:"expires_at"`
}
