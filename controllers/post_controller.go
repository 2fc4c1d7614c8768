package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vntour/tourismweb/models"
	"github.com/vntour/tourismweb/policy"
	"github.com/vntour/tourismweb/utils"
)

// PostController manages posts about tourist spots and their comments.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

func postListCacheKey(postType, spotID string, page, pageSize int) string {
	return utils.CacheKeyf("posts:list:type=%s:spot=%s:page=%d:size=%d", postType, spotID, page, pageSize)
}

func postDetailCacheKey(postID string) string {
	return utils.CacheKeyf("post:detail:%s", postID)
}

func invalidatePostCache(postID string) {
	utils.InvalidateByPrefix(utils.CacheKeyf("posts:list:"))
	utils.InvalidateByPrefix(postDetailCacheKey(postID))
}

// CreatePost allows authenticated users to submit a new post. Every post
// enters the moderation queue as Pending; the author cannot choose a status.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		SpotID     uint   `json:"spot_id" binding:"required"`
		TypeOfPost string `json:"type_of_post" binding:"required"`
		Title      string `json:"title" binding:"required,min=1,max=100"`
		Content    string `json:"content" binding:"required"`
		ImageURL   string `json:"image_url"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	if !models.ValidPostType(req.TypeOfPost) {
		utils.Error(ctx, http.StatusBadRequest, 40022, "invalid post type")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40021, "title cannot be empty")
		return
	}
	content := utils.Sanitize(req.Content)

	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var spot models.TouristSpot
	if err := p.db.First(&spot, req.SpotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40430, "spot not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to load spot")
		return
	}

	post := models.Post{
		UserID:     actor.ID,
		SpotID:     spot.ID,
		TypeOfPost: req.TypeOfPost,
		Title:      title,
		Content:    content,
		ImageURL:   req.ImageURL,
	}

	if err := p.db.Create(&post).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to create post")
		return
	}

	utils.ClaimUpload(post.ImageURL)
	utils.InvalidateByPrefix(utils.CacheKeyf("posts:list:"))

	utils.Success(ctx, gin.H{"post": post})
}

// ListPosts returns paginated approved posts including author information.
// Pending and rejected posts never appear here.
func (p *PostController) ListPosts(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))
	search := strings.TrimSpace(ctx.Query("search"))
	postType := strings.TrimSpace(ctx.Query("type"))
	spotID := strings.TrimSpace(ctx.Query("spot_id"))

	// Cache list pages when no search term to avoid cache key explosion
	cacheKey := postListCacheKey(postType, spotID, page, pageSize)
	if search == "" {
		if b, ok := utils.CacheGetBytes(cacheKey); ok {
			ctx.Data(http.StatusOK, "application/json", b)
			return
		}
	}

	query := p.db.Preload("User").Where("status = ?", models.PostStatusApproved).Order("created_at DESC")
	if search != "" {
		query = query.Where("title LIKE ? OR content LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if postType != "" {
		query = query.Where("type_of_post = ?", postType)
	}
	if spotID != "" {
		query = query.Where("spot_id = ?", spotID)
	}

	var posts []models.Post
	var total int64
	if err := query.Model(&models.Post{}).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to count posts")
		return
	}
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to list posts")
		return
	}

	payload := gin.H{
		"items": posts,
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

// GetPost returns a single post with comments and their authors.
func (p *PostController) GetPost(ctx *gin.Context) {
	postID := ctx.Param("id")

	if b, ok := utils.CacheGetBytes(postDetailCacheKey(postID)); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var post models.Post
	if err := p.db.Preload("User").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to load post")
		return
	}

	var comments []models.Comment
	if err := p.db.Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments).Error; err != nil {
		utils.Sugar.Warnf("failed to load comments for post %d: %v", post.ID, err)
	} else {
		post.Comments = comments
	}

	// Load comment authors in one query instead of preloading per row
	if len(post.Comments) > 0 {
		var userIDs []uint
		for _, c := range post.Comments {
			userIDs = append(userIDs, c.UserID)
		}
		userIDs = utils.UniqueUint(userIDs)

		var users []models.User
		if err := p.db.Find(&users, userIDs).Error; err == nil {
			userMap := make(map[uint]models.User, len(users))
			for _, u := range users {
				userMap[u.ID] = u
			}
			for i := range post.Comments {
				if user, ok := userMap[post.Comments[i].UserID]; ok {
					post.Comments[i].User = user
				}
			}
		} else {
			utils.Sugar.Warnf("failed to load users for comments: %v", err)
		}
	}

	payload := gin.H{"post": post}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON(postDetailCacheKey(postID), wrapper, time.Hour)
	utils.Success(ctx, payload)
}

// DeletePost allows the author or an admin to delete a post.
func (p *PostController) DeletePost(ctx *gin.Context) {
	postID := ctx.Param("id")
	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40404, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50025, "failed to load post")
		return
	}

	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40112, "unauthorized")
		return
	}
	if !policy.CanMutate(actor, post.UserID, true) {
		utils.Error(ctx, http.StatusForbidden, 40302, "you can only delete your own posts")
		return
	}

	if err := p.db.Delete(&post).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50026, "failed to delete post")
		return
	}

	invalidatePostCache(postID)
	utils.Success(ctx, gin.H{"message": "post deleted"})
}

// ListPostsForModeration returns posts by status for the admin queue.
func (p *PostController) ListPostsForModeration(ctx *gin.Context) {
	status := ctx.DefaultQuery("status", models.PostStatusPending)
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	var posts []models.Post
	var total int64
	q := p.db.Preload("User").Where("status = ?", status).Order("created_at ASC")
	if err := q.Model(&models.Post{}).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50027, "failed to count posts")
		return
	}
	if err := q.Offset((page - 1) * pageSize).Limit(pageSize).Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50028, "failed to list posts")
		return
	}

	utils.Success(ctx, gin.H{
		"items": posts,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	})
}

// UpdatePostStatus moves a post through moderation. Only Approved and
// Rejected are reachable; a post cannot be moved back to Pending.
func (p *PostController) UpdatePostStatus(ctx *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40024, "invalid request payload")
		return
	}
	if req.Status != models.PostStatusApproved && req.Status != models.PostStatusRejected {
		utils.Error(ctx, http.StatusBadRequest, 40025, "status must be Approved or Rejected")
		return
	}

	postID := ctx.Param("id")
	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40404, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50025, "failed to load post")
		return
	}

	if err := p.db.Model(&post).Update("status", req.Status).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50029, "failed to update post status")
		return
	}

	invalidatePostCache(postID)
	utils.Success(ctx, gin.H{"post": post})
}

// CreateComment allows authenticated users to comment on posts. The owner and
// creation time are taken from the request context; an omitted image gets the
// placeholder path.
func (p *PostController) CreateComment(ctx *gin.Context) {
	var req struct {
		Content  string `json:"content" binding:"required"`
		ImageURL string `json:"image_url"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40022, "invalid request payload")
		return
	}

	content := utils.Sanitize(req.Content)
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40023, "content cannot be empty")
		return
	}

	postID := ctx.Param("id")
	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40402, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to load post")
		return
	}

	actor, ok := getActor(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	comment := models.Comment{
		PostID:    post.ID,
		UserID:    actor.ID,
		Content:   content,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		CreatedAt: time.Now(),
	}

	if err := p.db.Create(&comment).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to create comment")
		return
	}

	if err := p.db.Preload("User").First(&comment, comment.ID).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to load comment")
		return
	}

	utils.ClaimUpload(comment.ImageURL)
	utils.InvalidateByPrefix(postDetailCacheKey(strconv.Itoa(int(post.ID))))

	utils.Success(ctx, gin.H{"comment": comment})
}

// UpdateComment applies a fully-specified comment record. Only the id match
// between path and payload is verified before the update is applied.
func (p *PostController) UpdateComment(ctx *gin.Context) {
	var req struct {
		ID       uint   `json:"id" binding:"required"`
		UserID   uint   `json:"user_id" binding:"required"`
		PostID   uint   `json:"post_id" binding:"required"`
		Content  string `json:"content" binding:"required"`
		ImageURL string `json:"image_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40024, "invalid request payload")
		return
	}

	cid := strings.TrimSpace(ctx.Param("commentId"))
	pathID, err := strconv.Atoi(cid)
	if err != nil || uint(pathID) != req.ID {
		utils.Error(ctx, http.StatusNotFound, 40420, "comment not found")
		return
	}

	if _, ok := getActor(ctx); !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40120, "unauthorized")
		return
	}

	content := utils.Sanitize(req.Content)
	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		imageURL = models.DefaultPostImageURL
	}

	res := p.db.Model(&models.Comment{}).Where("id = ?", req.ID).Updates(map[string]interface{}{
		"user_id":   req.UserID,
		"post_id":   req.PostID,
		"content":   content,
		"image_url": imageURL,
	})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to update comment")
		return
	}
	if res.RowsAffected == 0 {
		var count int64
		p.db.Model(&models.Comment{}).Where("id = ?", req.ID).Count(&count)
		if count == 0 {
			utils.Error(ctx, http.StatusNotFound, 40420, "comment not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50033, "comment update conflicted")
		return
	}

	utils.InvalidateByPrefix(postDetailCacheKey(strconv.Itoa(int(req.PostID))))
	utils.Success(ctx, gin.H{"message": "comment updated"})
}

// DeleteComment removes a comment when the actor owns it or is an admin. The
// response carries the parent post id so clients can return to its detail
// view.
func (p *PostController) DeleteComment(ctx *gin.Context) {
	cid := strings.TrimSpace(ctx.Param("commentId"))
	if cid == "" {
		utils.Error(ctx, http.StatusBadRequest, 40070, "missing comment id")
		return
	}
	var cmt models.Comment
	if err := p.db.First(&cmt, cid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondMissingOnDelete(ctx, false, 40420, "comment")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50034, "failed to load comment")
		return
	}

	actor, _ := getActor(ctx)
	if allowed, status, code, msg := commentDeleteGate(actor, cmt.UserID); !allowed {
		utils.Error(ctx, status, code, msg)
		return
	}
	if err := p.db.Delete(&cmt).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50035, "failed to delete comment")
		return
	}

	utils.InvalidateByPrefix(postDetailCacheKey(strconv.Itoa(int(cmt.PostID))))
	utils.Success(ctx, gin.H{"message": "comment deleted", "post_id": cmt.PostID})
}
