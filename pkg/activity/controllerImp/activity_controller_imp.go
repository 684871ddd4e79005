package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/activity/service"
	"farmdash/pkg/respond"
)

type ActivityCtrl struct{ svc service.ActivityService }

func New(svc service.ActivityService) *ActivityCtrl { return &ActivityCtrl{svc} }

func (h *ActivityCtrl) List(c echo.Context) error {
	out, err := h.svc.ListActivities(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, nil)
	}
	return respond.OK(c, http.StatusOK, out)
}

func (h *ActivityCtrl) Create(c echo.Context) error {
	var in entities.ActivityInput
	if err := c.Bind(&in); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return respond.Error(c, err, nil)
	}
	out, err := h.svc.CreateActivity(c.Request().Context(), in)
	if err != nil {
		return respond.Error(c, err, nil)
	}
	return respond.OK(c, http.StatusCreated, out)
}

func (h *ActivityCtrl) Update(c echo.Context) error {
	var in entities.ActivityInput
	if err := c.Bind(&in); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return respond.Error(c, err, nil)
	}
	out, err := h.svc.UpdateActivity(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return respond.Error(c, err, service.ErrNotFound)
	}
	return respond.OK(c, http.StatusOK, out)
}

func (h *ActivityCtrl) Delete(c echo.Context) error {
	out, err := h.svc.DeleteActivity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Error(c, err, service.ErrNotFound)
	}
	return respond.OK(c, http.StatusOK, out)
}
