package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a rating with commentary left on a tourist spot. Only its owner
// may change or remove it; there is no admin override for reviews.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SpotID    uint      `gorm:"index;not null" json:"spot_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	ImageURL  string    `gorm:"size:512" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Spot      TouristSpot `gorm:"foreignKey:SpotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	User      User        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
}

// BeforeCreate stamps creation time when the caller left it zero.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return nil
}
