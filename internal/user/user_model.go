package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList stores a deduplicated list of role tags as a JSON column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("unsupported type %T for StringList", value)
}

// Contains reports whether the tag is present in the list.
func (s StringList) Contains(tag string) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

// User is a platform account. Roles holds the full derived role set; Role is
// the legacy scalar kept in sync with the highest-precedence entry of Roles.
// Team memberships live in team_members rows, not on the user row.
type User struct {
	gorm.Model
	Username string     `gorm:"unique;not null" json:"username"`
	Email    string     `gorm:"unique;not null" json:"email"`
	Password string     `json:"-"`
	IGN      string     `json:"ign"` // in-game name, display handle
	Avatar   string     `json:"avatar"`
	Roles    StringList `gorm:"type:json" json:"roles"`
	Role     string     `gorm:"default:'USER'" json:"role"`
}
