package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// Counter is a collection whose size the health report includes.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type HealthCtrl struct {
	db     *gorm.DB
	counts map[string]Counter
}

func NewHealthCtrl(db *gorm.DB, counts map[string]Counter) *HealthCtrl {
	return &HealthCtrl{db: db, counts: counts}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	counts := map[string]int64{}
	if dbOK {
		for name, ctr := range h.counts {
			n, err := ctr.Count(ctx)
			if err != nil {
				dbOK = false
				dbErr = "count " + name + ": " + err.Error()
				break
			}
			counts[name] = n
		}
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
		},
		"counts": counts,
		"time":   time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
