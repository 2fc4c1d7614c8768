package models

import "time"

// UploadedFile records a stored attachment that has not yet been claimed by a
// post or review. Rows past ExpireAt are swept together with their files;
// attaching the URL to created content deletes the row and keeps the file.
type UploadedFile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FilePath  string    `gorm:"size:1024;not null" json:"file_path"` // filesystem path of the stored file
	URL       string    `gorm:"size:1024;not null;index" json:"url"` // public URL like /static/uploads/...
	ExpireAt  time.Time `gorm:"index" json:"expire_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
