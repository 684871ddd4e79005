package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	actCtrl "farmdash/pkg/activity/controller"
	cropCtrl "farmdash/pkg/crop/controller"
	"farmdash/pkg/middleware"
	resCtrl "farmdash/pkg/resource/controller"
	"farmdash/pkg/schema"
)

type crud interface {
	List(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func New(
	e *echo.Echo,
	log *zap.Logger,
	crops cropCtrl.CropController,
	activities actCtrl.ActivityController,
	resources resCtrl.ResourceController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.HideBanner = true
	e.Validator = schema.EchoValidator{}
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(log))
	e.Use(echoMiddleware.CORS())

	e.GET("/health", healthCtrl.Health)

	collection(e.Group("/crops"), crops)
	collection(e.Group("/activities"), activities)
	g := collection(e.Group("/resources"), resources)
	g.PATCH("/:id", resources.Patch)
	return e
}

// collection mounts the REST contract shared by every kind. GET /all is the
// same listing under the path older clients use.
func collection(g *echo.Group, h crud) *echo.Group {
	g.GET("", h.List)
	g.GET("/all", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return g
}
