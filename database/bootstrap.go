// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"farmdash/entities"
)

// OpenSQLite opens the database and migrates it. Crop references are not
// enforced by the schema: deleting a crop leaves its activities and
// resources pointing at a missing id.
func OpenSQLite(path string, log *zap.Logger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// rename legacy columns BEFORE AutoMigrate, otherwise it adds an empty
	// description column next to the old one
	if err := migrateActivityDescription(db, log); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Crop{},
		&entities.Activity{},
		&entities.Resource{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

type colInfo struct {
	Cid       int
	Name      string
	Type      string
	NotNull   int
	DfltValue sql.NullString
	Pk        int
}

// migrateActivityDescription renames activities.activity (the column name
// used by early databases) to description.
func migrateActivityDescription(db *gorm.DB, log *zap.Logger) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='activities'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB
		return nil
	}

	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(activities)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	have := map[string]bool{}
	for _, c := range cols {
		have[strings.ToLower(c.Name)] = true
	}
	if !have["activity"] || have["description"] {
		return nil
	}

	log.Info("renaming activities.activity to description")
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec(`ALTER TABLE activities RENAME COLUMN activity TO description`).Error
	})
}

// SeedDemo inserts a few crops with activities and resources when the crops
// table is empty. It reports whether anything was written.
func SeedDemo(db *gorm.DB, now time.Time) (bool, error) {
	var n int64
	if err := db.Model(&entities.Crop{}).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := func(d int) time.Time { return today.AddDate(0, 0, d) }

	crops := []entities.Crop{
		{Name: "Tomato", Variety: "Roma", PlantingDate: days(-30), HarvestDate: days(45), Status: entities.StatusGrowing},
		{Name: "Wheat", Variety: "Durum", PlantingDate: days(-120), HarvestDate: days(-2), Status: entities.StatusHarvesting},
		{Name: "Basil", Variety: "Genovese", PlantingDate: days(3), HarvestDate: days(60), Status: entities.StatusPlanting},
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range crops {
			crops[i].ID = uuid.NewString()
			if err := tx.Create(&crops[i]).Error; err != nil {
				return err
			}
		}
		acts := []entities.Activity{
			{Description: "Transplant seedlings", Date: days(-28), CropID: crops[0].ID},
			{Description: "Drip irrigation check", Date: days(-1), CropID: crops[0].ID},
			{Description: "Combine harvest", Date: days(1), CropID: crops[1].ID},
			{Description: "Sow seed trays", Date: days(3), CropID: crops[2].ID},
		}
		for i := range acts {
			acts[i].ID = uuid.NewString()
			if err := tx.Omit("Crop").Create(&acts[i]).Error; err != nil {
				return err
			}
		}
		res := []entities.Resource{
			{Name: "NPK 15-15-15", Quantity: 50, Type: "fertilizer", CropID: crops[0].ID},
			{Name: "Drip tape", Quantity: 4, Type: "equipment", CropID: crops[0].ID},
			{Name: "Basil seed", Quantity: 2, Type: "seed", CropID: crops[2].ID},
		}
		for i := range res {
			res[i].ID = uuid.NewString()
			if err := tx.Omit("Crop").Create(&res[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return err == nil, err
}
