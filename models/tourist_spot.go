package models

import (
	"time"

	"gorm.io/gorm"
)

// TouristSpot represents a destination users can review and write posts about.
type TouristSpot struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	Address       string         `gorm:"size:255;not null" json:"address"`
	Description   string         `gorm:"type:text" json:"description"`
	ImageURL      string         `gorm:"size:512" json:"image_url"`
	CreatorUserID uint           `gorm:"index;not null" json:"creator_user_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	CreatorUser   User           `gorm:"foreignKey:CreatorUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"creator"`
	Reviews       []Review       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Posts         []Post         `gorm:"foreignKey:SpotID" json:"-"`
	Favorites     []SpotFavorite `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// BeforeCreate fills the placeholder image when none was provided.
func (s *TouristSpot) BeforeCreate(tx *gorm.DB) error {
	if s.ImageURL == "" {
		s.ImageURL = DefaultSpotImageURL
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	return nil
}
