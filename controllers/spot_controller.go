package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vntour/tourismweb/models"
	"github.com/vntour/tourismweb/utils"
)

// SpotController manages tourist spots and the favorite/share actions
// attached to them.
type SpotController struct {
	db *gorm.DB
}

// NewSpotController creates a new SpotController instance.
func NewSpotController(db *gorm.DB) *SpotController {
	return &SpotController{db: db}
}

// CreateSpot registers a new tourist spot. Any signed-in user can add one;
// the creator is recorded for attribution only and grants no special rights.
func (s *SpotController) CreateSpot(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,min=1,max=100"`
		Address     string `json:"address" binding:"required,min=1,max=255"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request payload")
		return
	}

	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	spot := models.TouristSpot{
		Name:          utils.Sanitize(strings.TrimSpace(req.Name)),
		Address:       utils.Sanitize(strings.TrimSpace(req.Address)),
		Description:   utils.Sanitize(req.Description),
		ImageURL:      strings.TrimSpace(req.ImageURL),
		CreatorUserID: actor.ID,
	}
	if spot.Name == "" {
		utils.Error(ctx, http.StatusBadRequest, 40041, "name cannot be empty")
		return
	}

	if err := s.db.Create(&spot).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to create spot")
		return
	}

	utils.ClaimUpload(spot.ImageURL)
	utils.InvalidateByPrefix(utils.CacheKeyf("spots:list:"))
	utils.Success(ctx, gin.H{"spot": spot})
}

// ListSpots returns a paginated spot listing with optional name/address
// search.
func (s *SpotController) ListSpots(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))
	search := strings.TrimSpace(ctx.Query("search"))

	cacheKey := utils.CacheKeyf("spots:list:page=%d:size=%d", page, pageSize)
	if search == "" {
		if b, ok := utils.CacheGetBytes(cacheKey); ok {
			ctx.Data(http.StatusOK, "application/json", b)
			return
		}
	}

	query := s.db.Model(&models.TouristSpot{}).Order("name ASC")
	if search != "" {
		query = query.Where("name LIKE ? OR address LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to count spots")
		return
	}

	var spots []models.TouristSpot
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&spots).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to list spots")
		return
	}

	payload := gin.H{
		"items": spots,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	}
	if search == "" {
		wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
		utils.CacheSetJSON(cacheKey, wrapper, time.Hour)
	}
	utils.Success(ctx, payload)
}

// GetSpot returns one spot with its review aggregate (count and average
// rating) so the detail page can render a summary without a second call.
func (s *SpotController) GetSpot(ctx *gin.Context) {
	spotID := ctx.Param("id")

	cacheKey := utils.CacheKeyf("spot:detail:%s", spotID)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var spot models.TouristSpot
	if err := s.db.Preload("CreatorUser").First(&spot, spotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40430, "spot not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to load spot")
		return
	}

	var agg struct {
		Count int64
		Avg   float64
	}
	if err := s.db.Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
		Where("spot_id = ?", spot.ID).
		Scan(&agg).Error; err != nil {
		utils.Sugar.Warnf("failed to aggregate reviews for spot %d: %v", spot.ID, err)
	}

	payload := gin.H{
		"spot":           spot,
		"review_count":   agg.Count,
		"average_rating": agg.Avg,
	}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON(cacheKey, wrapper, time.Hour)
	utils.Success(ctx, payload)
}

// FavoriteSpot bookmarks a spot for the actor. Repeating the call is a
// no-op thanks to the unique (user, spot) index.
func (s *SpotController) FavoriteSpot(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	spotID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || spotID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40042, "invalid spot id")
		return
	}

	var count int64
	if err := s.db.Model(&models.TouristSpot{}).Where("id = ?", spotID).Count(&count).Error; err != nil || count == 0 {
		utils.Error(ctx, http.StatusNotFound, 40430, "spot not found")
		return
	}

	fav := models.SpotFavorite{UserID: actor.ID, TouristSpotID: uint(spotID), CreatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50044, "failed to favorite spot")
		return
	}
	utils.Success(ctx, gin.H{"message": "spot favorited"})
}

// UnfavoriteSpot removes the actor's bookmark. Removing a bookmark that does
// not exist still succeeds.
func (s *SpotController) UnfavoriteSpot(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	spotID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || spotID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40042, "invalid spot id")
		return
	}

	if err := s.db.Where("user_id = ? AND tourist_spot_id = ?", actor.ID, spotID).
		Delete(&models.SpotFavorite{}).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50045, "failed to unfavorite spot")
		return
	}
	utils.Success(ctx, gin.H{"message": "spot unfavorited"})
}

// ListMyFavoriteSpots returns the actor's bookmarked spots.
func (s *SpotController) ListMyFavoriteSpots(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var spots []models.TouristSpot
	if err := s.db.
		Joins("JOIN spot_favorites ON spot_favorites.tourist_spot_id = tourist_spots.id").
		Where("spot_favorites.user_id = ?", actor.ID).
		Order("spot_favorites.created_at DESC").
		Find(&spots).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50046, "failed to list favorites")
		return
	}
	utils.Success(ctx, gin.H{"spots": spots})
}

// ShareSpot records a share event for a spot.
func (s *SpotController) ShareSpot(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	spotID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || spotID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40042, "invalid spot id")
		return
	}

	var count int64
	if err := s.db.Model(&models.TouristSpot{}).Where("id = ?", spotID).Count(&count).Error; err != nil || count == 0 {
		utils.Error(ctx, http.StatusNotFound, 40430, "spot not found")
		return
	}

	share := models.SpotShare{UserID: actor.ID, TouristSpotID: uint(spotID), CreatedAt: time.Now()}
	if err := s.db.Create(&share).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50047, "failed to record share")
		return
	}
	utils.Success(ctx, gin.H{"message": "share recorded"})
}

// FavoritePost bookmarks a post for the actor.
func (s *SpotController) FavoritePost(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || postID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40043, "invalid post id")
		return
	}

	var count int64
	if err := s.db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil || count == 0 {
		utils.Error(ctx, http.StatusNotFound, 40404, "post not found")
		return
	}

	fav := models.PostFavorite{UserID: actor.ID, PostID: uint(postID), CreatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50048, "failed to favorite post")
		return
	}
	utils.Success(ctx, gin.H{"message": "post favorited"})
}

// UnfavoritePost removes the actor's post bookmark.
func (s *SpotController) UnfavoritePost(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || postID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40043, "invalid post id")
		return
	}

	if err := s.db.Where("user_id = ? AND post_id = ?", actor.ID, postID).
		Delete(&models.PostFavorite{}).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50049, "failed to unfavorite post")
		return
	}
	utils.Success(ctx, gin.H{"message": "post unfavorited"})
}

// SharePost records a share event for a post.
func (s *SpotController) SharePost(ctx *gin.Context) {
	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || postID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40043, "invalid post id")
		return
	}

	var count int64
	if err := s.db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil || count == 0 {
		utils.Error(ctx, http.StatusNotFound, 40404, "post not found")
		return
	}

	share := models.PostShare{UserID: actor.ID, PostID: uint(postID), CreatedAt: time.Now()}
	if err := s.db.Create(&share).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to record share")
		return
	}
	utils.Success(ctx, gin.H{"message": "share recorded"})
}
