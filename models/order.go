package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a food/drink request placed by an authenticated user. Owner is
// the display name given at checkout; UserID is the account that placed it.
type Order struct {
	ID         string    `json:"_id" gorm:"primaryKey;size:36"`
	UserID     string    `json:"userId" gorm:"size:36;index"`
	Owner      string    `json:"owner" gorm:"not null" validate:"required"`
	Restaurant string    `json:"restaurant"`
	Food       string    `json:"food"`
	Drink      string    `json:"drink"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (o *Order) BeforeSave(tx *gorm.DB) error {
	o.Owner = strings.TrimSpace(o.Owner)
	return Validate(o)
}
