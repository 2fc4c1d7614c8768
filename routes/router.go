package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vntour/tourismweb/config"
	"github.com/vntour/tourismweb/controllers"
	"github.com/vntour/tourismweb/middleware"
	"github.com/vntour/tourismweb/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Record PV on spot and post detail pages
	r.Use(middleware.PageViewRecorder(db))

	r.Static("/static", "./static")

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	spotController := controllers.NewSpotController(db)
	reviewController := controllers.NewReviewController(db)
	postController := controllers.NewPostController(db)
	reportController := controllers.NewReportController(db)
	uploadController := controllers.NewUploadController(db)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/oauth/:provider/login", authController.OAuthRedirect)
	authGroup.GET("/oauth/:provider/callback", authController.OAuthCallback)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.PATCH("/profile", middleware.AuthRequired(), authController.UpdateProfile)

	// Public reads
	api.GET("/spots", spotController.ListSpots)
	api.GET("/spots/:id", spotController.GetSpot)
	api.GET("/spots/:id/reviews", reviewController.GetSpotReviews)
	api.GET("/spots/:id/stats", statsController.GetSpotStats)
	api.GET("/posts", postController.ListPosts)
	api.GET("/posts/:id", postController.GetPost)
	api.GET("/posts/:id/stats", statsController.GetPostStats)
	api.GET("/stats", statsController.GetStats)
	api.GET("/users/:id", authController.GetUserPublic)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	protected.POST("/upload", uploadController.UploadAttachment)

	protected.POST("/spots", spotController.CreateSpot)
	protected.POST("/spots/:id/reviews", reviewController.CreateReview)
	protected.PUT("/reviews/:id", reviewController.UpdateReview)
	protected.DELETE("/reviews/:id", reviewController.DeleteReview)
	protected.POST("/spots/:id/favorite", spotController.FavoriteSpot)
	protected.DELETE("/spots/:id/favorite", spotController.UnfavoriteSpot)
	protected.POST("/spots/:id/share", spotController.ShareSpot)
	protected.GET("/users/me/favorites/spots", spotController.ListMyFavoriteSpots)

	protected.POST("/posts", postController.CreatePost)
	protected.DELETE("/posts/:id", postController.DeletePost)
	protected.POST("/posts/:id/comments", postController.CreateComment)
	protected.PUT("/comments/:commentId", postController.UpdateComment)
	protected.DELETE("/comments/:commentId", postController.DeleteComment)
	protected.POST("/posts/:id/favorite", spotController.FavoritePost)
	protected.DELETE("/posts/:id/favorite", spotController.UnfavoritePost)
	protected.POST("/posts/:id/share", spotController.SharePost)

	protected.POST("/reports", reportController.CreateReport)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	admin.GET("/posts", postController.ListPostsForModeration)
	admin.PATCH("/posts/:id/status", postController.UpdatePostStatus)
	admin.GET("/reports", reportController.ListReports)
	admin.PATCH("/reports/:id/status", reportController.UpdateReportStatus)
	admin.DELETE("/reports/:id", reportController.DeleteReport)

	r.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		if strings.HasPrefix(path, "/static/") {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "static asset not found"})
			return
		}
		ctx.Status(http.StatusOK)
		ctx.File("./static/index.html")
	})

	return r
}
