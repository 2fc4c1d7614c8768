package utils

import (
	"os"
	"time"

	"github.com/vntour/tourismweb/config"
	"github.com/vntour/tourismweb/models"
)

// StartUploadCleaner launches a background goroutine that periodically removes
// uploaded files that were never attached to a post or review within their
// claim window. Best-effort; failures are logged and retried next round.
func StartUploadCleaner(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		for {
			// Sleep first to avoid racing immediately at startup
			time.Sleep(interval)
			db := config.DB()
			if db == nil {
				continue
			}
			var items []models.UploadedFile
			if err := db.Where("expire_at <= ?", time.Now()).Limit(100).Find(&items).Error; err != nil {
				Sugar.Warnf("upload cleaner query failed: %v", err)
				continue
			}
			for _, it := range items {
				if it.FilePath != "" {
					_ = os.Remove(it.FilePath)
				}
				// Remove row regardless of file deletion outcome
				if err := db.Delete(&models.UploadedFile{}, it.ID).Error; err != nil {
					Sugar.Warnf("upload cleaner delete row failed: %v", err)
				}
			}
		}
	}()
}

// ClaimUpload marks an uploaded URL as attached to persisted content so the
// cleaner leaves its file alone. Unknown URLs (external images, placeholder
// paths) are ignored.
func ClaimUpload(url string) {
	if url == "" {
		return
	}
	db := config.DB()
	if db == nil {
		return
	}
	if err := db.Where("url = ?", url).Delete(&models.UploadedFile{}).Error; err != nil {
		Sugar.Warnf("upload claim failed for %s: %v", url, err)
	}
}
