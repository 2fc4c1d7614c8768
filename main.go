package main

import (
	"time"

	"github.com/vntour/tourismweb/config"
	"github.com/vntour/tourismweb/models"
	"github.com/vntour/tourismweb/routes"
	"github.com/vntour/tourismweb/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.TouristSpot{},
		&models.Post{},
		&models.Comment{},
		&models.Review{},
		&models.Report{},
		&models.SpotFavorite{},
		&models.PostFavorite{},
		&models.SpotShare{},
		&models.PostShare{},
		&models.PageView{},
		&models.UploadedFile{},
	)

	r := routes.SetupRouter(db)

	// Start background cleanup for unclaimed uploads (best-effort)
	utils.StartUploadCleaner(5 * time.Minute)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
