package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vntour/tourismweb/config"
	"github.com/vntour/tourismweb/models"
	"github.com/vntour/tourismweb/utils"
)

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// validImageExtension reports whether the filename carries an accepted image
// extension (case-insensitive).
func validImageExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	for _, allowed := range allowedImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// uploadSizeLimit returns the configured per-file byte cap.
func uploadSizeLimit() int64 {
	return int64(config.Get().UploadMaxSizeMB) * 1024 * 1024
}

// saveImageFile streams an uploaded image under dir with a uuid filename and
// returns its public URL. The caller has already validated the extension; the
// size cap is enforced again during the copy so a lying Content-Length cannot
// bypass it.
func saveImageFile(file multipart.File, header *multipart.FileHeader, dir, urlPrefix string) (string, error) {
	maxSize := uploadSizeLimit()
	if header.Size > 0 && header.Size > maxSize {
		return "", fmt.Errorf("file size exceeds %dMB", config.Get().UploadMaxSizeMB)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := uuid.NewString() + ext
	dstPath := filepath.Join(dir, name)

	out, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	defer out.Close()

	lr := &io.LimitedReader{R: file, N: maxSize + 1}
	written, err := io.Copy(out, lr)
	if err != nil {
		_ = out.Close()
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > maxSize {
		_ = out.Close()
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("file size exceeds %dMB", config.Get().UploadMaxSizeMB)
	}

	return urlPrefix + "/" + name, nil
}

// removeStoredImage deletes a previously stored image file unless the URL is
// one of the fixed placeholders.
func removeStoredImage(url string) {
	if url == "" || strings.Contains(url, "default-") {
		return
	}
	path := filepath.Join(".", "static", strings.TrimPrefix(url, "/static/"))
	if !strings.HasPrefix(url, "/static/") {
		path = filepath.Join(".", strings.TrimPrefix(url, "/"))
	}
	_ = os.Remove(path)
}

// UploadController stores post attachments for later reference.
type UploadController struct {
	db *gorm.DB
}

// NewUploadController creates a new UploadController instance.
func NewUploadController(db *gorm.DB) *UploadController {
	return &UploadController{db: db}
}

// UploadAttachment handles attachment uploads for posts. The stored file is
// recorded with an expiry; attaching its URL to created content claims it,
// otherwise the background cleaner removes it.
func (u *UploadController) UploadAttachment(ctx *gin.Context) {
	if _, ok := getActor(ctx); !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40113, "unauthorized")
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "no file uploaded")
		return
	}
	defer file.Close()

	if !validImageExtension(header.Filename) {
		utils.Error(ctx, http.StatusBadRequest, 40031, "only .jpg, .jpeg, .png and .gif images are accepted")
		return
	}

	now := time.Now()
	baseDir := filepath.Join(".", "static", "uploads", now.Format("2006"), now.Format("01"), now.Format("02"))
	urlPrefix := fmt.Sprintf("/static/uploads/%s/%s/%s", now.Format("2006"), now.Format("01"), now.Format("02"))

	relURL, err := saveImageFile(file, header, baseDir, urlPrefix)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40032, err.Error())
		return
	}

	claimWindow := time.Duration(config.Get().UploadClaimWindowMinutes) * time.Minute
	absPath, _ := filepath.Abs(filepath.Join(baseDir, filepath.Base(relURL)))
	if err := u.db.Create(&models.UploadedFile{
		FilePath: absPath,
		URL:      relURL,
		ExpireAt: now.Add(claimWindow),
	}).Error; err != nil {
		utils.Sugar.Warnf("failed to record uploaded file %s: %v", relURL, err)
	}

	utils.Success(ctx, gin.H{"url": relURL})
}
