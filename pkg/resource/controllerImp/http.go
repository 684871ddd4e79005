package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/respond"
	rsvc "farmdash/pkg/resource/service"
)

type httpCtrl struct{ s rsvc.Service }

func New(s rsvc.Service) *httpCtrl { return &httpCtrl{s: s} }

func (h *httpCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, nil)
	}
	return respond.OK(c, http.StatusOK, list)
}

func (h *httpCtrl) Create(c echo.Context) error {
	var in entities.ResourceInput
	if err := c.Bind(&in); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return respond.Error(c, err, nil)
	}
	out, err := h.s.Create(c.Request().Context(), in)
	if err != nil {
		return respond.Error(c, err, nil)
	}
	return respond.OK(c, http.StatusCreated, out)
}

func (h *httpCtrl) Update(c echo.Context) error {
	var in entities.ResourceInput
	if err := c.Bind(&in); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid json")
	}
	if err := c.Validate(&in); err != nil {
		return respond.Error(c, err, nil)
	}
	out, err := h.s.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return respond.Error(c, err, rsvc.ErrNotFound)
	}
	return respond.OK(c, http.StatusOK, out)
}

func (h *httpCtrl) Patch(c echo.Context) error {
	var in rsvc.ResourcePatch
	if err := c.Bind(&in); err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid json")
	}
	out, err := h.s.UpdatePartial(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return respond.Error(c, err, rsvc.ErrNotFound)
	}
	return respond.OK(c, http.StatusOK, out)
}

func (h *httpCtrl) Delete(c echo.Context) error {
	out, err := h.s.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Error(c, err, rsvc.ErrNotFound)
	}
	return respond.OK(c, http.StatusOK, out)
}
