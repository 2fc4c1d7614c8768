package models

import "time"

// SpotFavorite links a user to a tourist spot they bookmarked.
type SpotFavorite struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index:idx_spot_fav,unique;not null" json:"user_id"`
	TouristSpotID uint      `gorm:"index:idx_spot_fav,unique;not null" json:"spot_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// PostFavorite links a user to a post they bookmarked.
type PostFavorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_post_fav,unique;not null" json:"user_id"`
	PostID    uint      `gorm:"index:idx_post_fav,unique;not null" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SpotShare records that a user shared a spot page.
type SpotShare struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	TouristSpotID uint      `gorm:"index;not null" json:"spot_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// PostShare records that a user shared a post.
type PostShare struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
