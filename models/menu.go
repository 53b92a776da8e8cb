package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Menu is a restaurant entry managed by admins.
type Menu struct {
	ID         string    `json:"_id" gorm:"primaryKey;size:36"`
	Restaurant string    `json:"restaurant" gorm:"not null" validate:"required"`
	Food       string    `json:"food"`
	Drink      string    `json:"drink"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *Menu) BeforeSave(tx *gorm.DB) error {
	m.Restaurant = strings.TrimSpace(m.Restaurant)
	return Validate(m)
}
