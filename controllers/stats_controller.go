package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vntour/tourismweb/models"
	"github.com/vntour/tourismweb/utils"
)

// StatsController provides site statistics such as counts and daily page views.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns aggregate statistics for the site.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var userCount int64
	var spotCount int64
	var postCount int64
	var reviewCount int64
	var dailyViews int64

	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		// Fallback to 0 instead of failing the whole endpoint
		userCount = 0
	}
	if err := s.db.Model(&models.TouristSpot{}).Count(&spotCount).Error; err != nil {
		spotCount = 0
	}
	if err := s.db.Model(&models.Post{}).Where("status = ?", models.PostStatusApproved).Count(&postCount).Error; err != nil {
		postCount = 0
	}
	if err := s.db.Model(&models.Review{}).Count(&reviewCount).Error; err != nil {
		reviewCount = 0
	}

	// Use string date equality to avoid timezone/type mismatches with DATE column
	today := time.Now().In(time.Local).Format("2006-01-02")
	if err := s.db.Model(&models.PageView{}).
		Where("date = ?", today).
		Select("COALESCE(SUM(count),0)").
		Scan(&dailyViews).Error; err != nil {
		dailyViews = 0
	}

	utils.Success(ctx, gin.H{
		"user_count":   userCount,
		"spot_count":   spotCount,
		"post_count":   postCount,
		"review_count": reviewCount,
		"daily_views":  dailyViews,
	})
}

// GetSpotStats returns PV, review and post counts for a given spot id.
func (s *StatsController) GetSpotStats(ctx *gin.Context) {
	id := ctx.Param("id")

	var pv int64
	if err := s.db.Model(&models.PageView{}).
		Where("path = ?", "/api/v1/spots/"+id).
		Select("COALESCE(SUM(count),0)").
		Scan(&pv).Error; err != nil {
		pv = 0
	}

	var reviewCount int64
	if err := s.db.Model(&models.Review{}).Where("spot_id = ?", id).Count(&reviewCount).Error; err != nil {
		reviewCount = 0
	}

	var postCount int64
	if err := s.db.Model(&models.Post{}).
		Where("spot_id = ? AND status = ?", id, models.PostStatusApproved).
		Count(&postCount).Error; err != nil {
		postCount = 0
	}

	var favoriteCount int64
	if err := s.db.Model(&models.SpotFavorite{}).Where("tourist_spot_id = ?", id).Count(&favoriteCount).Error; err != nil {
		favoriteCount = 0
	}

	utils.Success(ctx, gin.H{
		"pv":             pv,
		"review_count":   reviewCount,
		"post_count":     postCount,
		"favorite_count": favoriteCount,
	})
}

// GetPostStats returns PV, comment and favorite counts for a given post id.
func (s *StatsController) GetPostStats(ctx *gin.Context) {
	id := ctx.Param("id")

	var pv int64
	if err := s.db.Model(&models.PageView{}).
		Where("path = ?", "/api/v1/posts/"+id).
		Select("COALESCE(SUM(count),0)").
		Scan(&pv).Error; err != nil {
		pv = 0
	}

	var commentCount int64
	if err := s.db.Model(&models.Comment{}).Where("post_id = ?", id).Count(&commentCount).Error; err != nil {
		commentCount = 0
	}

	var favoriteCount int64
	if err := s.db.Model(&models.PostFavorite{}).Where("post_id = ?", id).Count(&favoriteCount).Error; err != nil {
		favoriteCount = 0
	}

	utils.Success(ctx, gin.H{
		"pv":             pv,
		"comment_count":  commentCount,
		"favorite_count": favoriteCount,
	})
}
