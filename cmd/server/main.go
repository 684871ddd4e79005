package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmdash/config"
	"farmdash/database"
	"farmdash/pkg/logging"
	"farmdash/router"

	// Crop
	cropCtrlImp "farmdash/pkg/crop/controllerImp"
	cropRepoImp "farmdash/pkg/crop/repositoryImp"
	cropSvcImp "farmdash/pkg/crop/serviceImp"

	// Activity
	actCtrlImp "farmdash/pkg/activity/controllerImp"
	actRepoImp "farmdash/pkg/activity/repositoryImp"
	actSvcImp "farmdash/pkg/activity/serviceImp"

	// Resource
	resCtrlImp "farmdash/pkg/resource/controllerImp"
	resRepoImp "farmdash/pkg/resource/repositoryImp"
	resSvcImp "farmdash/pkg/resource/serviceImp"

	// Health
	healthCtrlImp "farmdash/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log := logging.Must(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if cfg.SeedDemo {
		seeded, err := database.SeedDemo(db, time.Now().In(cfg.Location()))
		if err != nil {
			log.Fatal("seed", zap.Error(err))
		}
		if seeded {
			log.Info("seeded demo data")
		}
	}

	// 3) Repos/Services/Controllers
	cRepo := cropRepoImp.New(db)
	aRepo := actRepoImp.New(db)
	rRepo := resRepoImp.New(db)
	cCtrl := cropCtrlImp.New(cropSvcImp.NewCropService(cRepo))
	aCtrl := actCtrlImp.New(actSvcImp.NewActivityService(aRepo))
	rCtrl := resCtrlImp.New(resSvcImp.New(rRepo))

	hCtrl := healthCtrlImp.NewHealthCtrl(db, map[string]healthCtrlImp.Counter{
		"crops":      cRepo,
		"activities": aRepo,
		"resources":  rRepo,
	})

	// 4) Router
	r := router.New(echo.New(), log, cCtrl, aCtrl, rCtrl, hCtrl)

	// 5) Start
	log.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
