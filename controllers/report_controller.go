package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vntour/tourismweb/models"
	"github.com/vntour/tourismweb/policy"
	"github.com/vntour/tourismweb/utils"
)

// ReportController handles abuse reports. Anyone signed in can file one;
// reading and deleting the queue is admin-only.
type ReportController struct {
	db *gorm.DB
}

// NewReportController creates a new ReportController instance.
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{db: db}
}

// CreateReport files a report against content or another user. Reporter
// identity, timestamp and status are set server-side regardless of the
// payload.
func (r *ReportController) CreateReport(ctx *gin.Context) {
	var req struct {
		TargetType     string `json:"target_type" binding:"required"`
		TargetID       uint   `json:"target_id" binding:"required"`
		ReportedUserID *uint  `json:"reported_user_id"`
		Reason         string `json:"reason" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid request payload")
		return
	}

	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	reason := utils.Sanitize(strings.TrimSpace(req.Reason))
	if reason == "" {
		utils.Error(ctx, http.StatusBadRequest, 40061, "reason cannot be empty")
		return
	}

	report, err := policy.NormalizeReport(actor, req.TargetType, req.TargetID, req.ReportedUserID, reason, time.Now())
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40062, err.Error())
		return
	}

	if err := r.db.Create(&report).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to create report")
		return
	}

	utils.Success(ctx, gin.H{"report": report})
}

// ListReports returns all reports newest-first with reporter and reported
// user records attached, for the admin moderation view.
func (r *ReportController) ListReports(ctx *gin.Context) {
	var reports []models.Report
	if err := r.db.Preload("ReporterUser").Preload("ReportedUser").
		Order("reported_at DESC").
		Find(&reports).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to list reports")
		return
	}
	utils.Success(ctx, gin.H{"reports": reports})
}

// UpdateReportStatus lets an admin mark a report Reviewed or Dismissed.
func (r *ReportController) UpdateReportStatus(ctx *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40063, "invalid request payload")
		return
	}
	if req.Status != models.ReportStatusReviewed && req.Status != models.ReportStatusDismissed {
		utils.Error(ctx, http.StatusBadRequest, 40064, "status must be Reviewed or Dismissed")
		return
	}

	var report models.Report
	if err := r.db.First(&report, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40440, "report not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to load report")
		return
	}

	if err := r.db.Model(&report).Update("status", req.Status).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to update report")
		return
	}
	utils.Success(ctx, gin.H{"report": report})
}

// DeleteReport removes a report from the queue. A missing id is treated as
// already handled and reported as success.
func (r *ReportController) DeleteReport(ctx *gin.Context) {
	var report models.Report
	if err := r.db.First(&report, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondMissingOnDelete(ctx, true, 0, "report")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to load report")
		return
	}
	if err := r.db.Delete(&report).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to delete report")
		return
	}
	utils.Success(ctx, gin.H{"message": "report removed"})
}
