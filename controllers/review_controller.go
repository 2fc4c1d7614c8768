package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vntour/tourismweb/models"
	"github.com/vntour/tourismweb/utils"
)

// ReviewController manages tourist spot reviews. Reviews are strictly
// owner-managed: unlike comments and reports there is no admin override on
// edit or delete.
type ReviewController struct {
	db *gorm.DB
}

// NewReviewController creates a new ReviewController instance.
func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

// reviewItem is one row of the spot review listing. LikeCount is interface
// ballast: no like feature exists and the value is always zero.
type reviewItem struct {
	ReviewID      uint      `json:"review_id"`
	Comment       string    `json:"comment"`
	Rating        int       `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
	ImageURL      string    `json:"image_url"`
	UserID        *uint     `json:"user_id"`
	UserFullName  string    `json:"user_full_name"`
	UserAvatarURL string    `json:"user_avatar_url"`
	LikeCount     int       `json:"like_count"`
}

func reviewListCacheKey(spotID string, page, pageSize int, sortBy, filterBy string) string {
	return utils.CacheKeyf("spot:%s:reviews:page=%d:size=%d:sort=%s:filter=%s", spotID, page, pageSize, sortBy, filterBy)
}

func invalidateReviewCache(spotID uint) {
	utils.InvalidateByPrefix(utils.CacheKeyf("spot:%d:reviews:", spotID))
}

// GetSpotReviews returns a filtered, sorted, paginated review page for one
// spot, with reviewer display identity joined in.
func (r *ReviewController) GetSpotReviews(ctx *gin.Context) {
	spotID := strings.TrimSpace(ctx.Param("id"))

	var spotCount int64
	if err := r.db.Model(&models.TouristSpot{}).Where("id = ?", spotID).Count(&spotCount).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50080, "failed to check spot")
		return
	}
	if spotCount == 0 {
		utils.Error(ctx, http.StatusNotFound, 40430, "spot not found")
		return
	}

	page, pageSize := parseReviewPaging(ctx.Query("page"), ctx.Query("page_size"))
	sortBy := ctx.DefaultQuery("sort_by", reviewSortNewest)
	filterBy := ctx.DefaultQuery("filter_by", reviewFilterAll)

	cacheKey := reviewListCacheKey(spotID, page, pageSize, sortBy, filterBy)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	query := r.db.Model(&models.Review{}).Where("spot_id = ?", spotID)
	if clause, args := reviewFilterClause(filterBy); clause != "" {
		query = query.Where(clause, args...)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50081, "failed to count reviews")
		return
	}

	totalPages, page := paginateReviews(totalItems, page, pageSize)

	var reviews []models.Review
	if err := query.Preload("User").
		Order(reviewSortOrder(sortBy)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50082, "failed to list reviews")
		return
	}

	items := make([]reviewItem, 0, len(reviews))
	for _, rv := range reviews {
		items = append(items, buildReviewItem(rv))
	}

	payload := gin.H{
		"reviews":     items,
		"totalPages":  totalPages,
		"currentPage": page,
		"totalItems":  totalItems,
	}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON(cacheKey, wrapper, time.Hour)
	utils.Success(ctx, payload)
}

// buildReviewItem shapes one review row, falling back to the anonymous
// display identity when the owning user record is unreachable.
func buildReviewItem(rv models.Review) reviewItem {
	item := reviewItem{
		ReviewID:      rv.ID,
		Comment:       rv.Comment,
		Rating:        rv.Rating,
		CreatedAt:     rv.CreatedAt,
		ImageURL:      rv.ImageURL,
		UserFullName:  models.AnonymousUserName,
		UserAvatarURL: models.DefaultAvatarURL,
		LikeCount:     0,
	}
	if rv.User.ID != 0 {
		id := rv.User.ID
		item.UserID = &id
		if name := strings.TrimSpace(rv.User.FullName); name != "" {
			item.UserFullName = name
		} else if rv.User.Username != "" {
			item.UserFullName = rv.User.Username
		}
		if rv.User.AvatarURL != "" {
			item.UserAvatarURL = rv.User.AvatarURL
		}
	}
	return item
}

// CreateReview stores a new review for a spot. Owner and creation time come
// from the request context, never from the payload; the rating is validated
// before anything is written.
func (r *ReviewController) CreateReview(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	spotID := strings.TrimSpace(ctx.Param("id"))
	var spot models.TouristSpot
	if err := r.db.First(&spot, spotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40430, "spot not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50083, "failed to load spot")
		return
	}

	rating, err := strconv.Atoi(strings.TrimSpace(ctx.PostForm("rating")))
	if err != nil || rating < 1 || rating > 5 {
		utils.Error(ctx, http.StatusBadRequest, 40080, "rating must be an integer between 1 and 5")
		return
	}
	comment := utils.Sanitize(strings.TrimSpace(ctx.PostForm("comment")))

	review := models.Review{
		SpotID:    spot.ID,
		UserID:    actor.ID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}

	if file, header, err := ctx.Request.FormFile("image"); err == nil {
		defer file.Close()
		if !validImageExtension(header.Filename) {
			utils.Error(ctx, http.StatusBadRequest, 40081, "only .jpg, .jpeg, .png and .gif images are accepted")
			return
		}
		url, err := saveImageFile(file, header, filepath.Join(".", "static", "images", "reviews"), "/static/images/reviews")
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40082, err.Error())
			return
		}
		review.ImageURL = url
	}

	if err := r.db.Create(&review).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50084, "failed to create review")
		return
	}

	invalidateReviewCache(spot.ID)
	utils.Success(ctx, gin.H{"review": review})
}

// UpdateReview lets the owner change rating, comment and image. Owner and
// creation time of the stored row are preserved; an admin has no say here.
func (r *ReviewController) UpdateReview(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	reviewID := strings.TrimSpace(ctx.Param("id"))
	var existing models.Review
	if err := r.db.First(&existing, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40431, "review not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50085, "failed to load review")
		return
	}

	if allowed, status, code, msg := reviewMutationGate(actor, existing.UserID, 40330); !allowed {
		utils.Error(ctx, status, code, msg)
		return
	}

	rating, err := strconv.Atoi(strings.TrimSpace(ctx.PostForm("rating")))
	if err != nil || rating < 1 || rating > 5 {
		utils.Error(ctx, http.StatusBadRequest, 40080, "rating must be an integer between 1 and 5")
		return
	}
	existing.Rating = rating
	existing.Comment = utils.Sanitize(strings.TrimSpace(ctx.PostForm("comment")))

	if file, header, err := ctx.Request.FormFile("image"); err == nil {
		defer file.Close()
		if !validImageExtension(header.Filename) {
			utils.Error(ctx, http.StatusBadRequest, 40081, "only .jpg, .jpeg, .png and .gif images are accepted")
			return
		}
		url, err := saveImageFile(file, header, filepath.Join(".", "static", "images", "reviews"), "/static/images/reviews")
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40082, err.Error())
			return
		}
		removeStoredImage(existing.ImageURL)
		existing.ImageURL = url
	}

	res := r.db.Model(&models.Review{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
		"rating":    existing.Rating,
		"comment":   existing.Comment,
		"image_url": existing.ImageURL,
	})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50086, "failed to update review")
		return
	}
	if res.RowsAffected == 0 {
		// The row changed under us; if it vanished report not-found,
		// otherwise surface the conflict.
		var count int64
		r.db.Model(&models.Review{}).Where("id = ?", existing.ID).Count(&count)
		if count == 0 {
			utils.Error(ctx, http.StatusNotFound, 40431, "review not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50087, "review update conflicted")
		return
	}

	invalidateReviewCache(existing.SpotID)
	utils.Success(ctx, gin.H{"review": existing})
}

// DeleteReview removes the owner's review together with its stored image.
func (r *ReviewController) DeleteReview(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	reviewID := strings.TrimSpace(ctx.Param("id"))
	var review models.Review
	if err := r.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondMissingOnDelete(ctx, false, 40431, "review")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50085, "failed to load review")
		return
	}

	if allowed, status, code, msg := reviewMutationGate(actor, review.UserID, 40331); !allowed {
		utils.Error(ctx, status, code, msg)
		return
	}

	if err := r.db.Delete(&review).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50088, "failed to delete review")
		return
	}

	removeStoredImage(review.ImageURL)
	invalidateReviewCache(review.SpotID)
	utils.Success(ctx, gin.H{"message": "review deleted", "spot_id": review.SpotID})
}
