package models

import (
	"time"

	"gorm.io/gorm"
)

// Post moderation states. A post starts Pending and only an admin decision
// moves it to Approved or Rejected.
const (
	PostStatusPending  = "Pending"
	PostStatusApproved = "Approved"
	PostStatusRejected = "Rejected"
)

// Post content kinds accepted at creation.
const (
	PostTypeSpot       = "Spot"
	PostTypeGuidebook  = "Guidebook"
	PostTypeExperience = "Experience"
	PostTypeArticle    = "Article"
)

// PostTypes lists every accepted post kind for boundary validation.
var PostTypes = []string{PostTypeSpot, PostTypeGuidebook, PostTypeExperience, PostTypeArticle}

// ValidPostType reports whether t is one of the accepted post kinds.
func ValidPostType(t string) bool {
	for _, v := range PostTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Post represents a guide, experience or article written about a tourist spot.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	SpotID     uint      `gorm:"index;not null" json:"spot_id"`
	TypeOfPost string    `gorm:"size:32;not null" json:"type_of_post"`
	Title      string    `gorm:"size:100;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	ImageURL   string    `gorm:"size:512" json:"image_url"`
	Status     string    `gorm:"size:16;not null;default:'Pending';index" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Comments   []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments,omitempty"`
}

// BeforeCreate forces moderation and image defaults regardless of input.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	p.Status = PostStatusPending
	if p.ImageURL == "" {
		p.ImageURL = DefaultPostImageURL
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return nil
}
