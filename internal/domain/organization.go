package domain

import (
	"time"
)

// Organization is a registered API consumer. The api_key column carries the
// only credential the gateway accepts; it is minted once at registration and
// never rotated in place.
type Organization struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	APIKey       string    `gorm:"column:api_key;type:text;not null;uniqueIndex" json:"api_key"`
	IsPaid       bool      `gorm:"not null;default:false" json:"is_paid"`
	RequestsMade int       `gorm:"not null;default:0" json:"requests_made"`
	LastReset    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"last_reset"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Organization) TableName() string {
	return "organizations"
}
