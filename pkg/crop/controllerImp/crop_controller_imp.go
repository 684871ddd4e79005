package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/crop/service"
	"farmdash/pkg/respond"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.svc.ListCrops(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, nil)
	}
	return respond.OK(c, http.StatusOK, out)
}

func (h *CropCtrl) Create(c echo.Context) error {
	in, ok, err := bind(c)
	if !ok {
		return err
	}
	out, err := h.svc.CreateCrop(c.Request().Context(), in)
	if err != nil {
		return respond.Error(c, err, nil)
	}
	return respond.OK(c, http.StatusCreated, out)
}

func (h *CropCtrl) Update(c echo.Context) error {
	in, ok, err := bind(c)
	if !ok {
		return err
	}
	out, err := h.svc.UpdateCrop(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return respond.Error(c, err, service.ErrNotFound)
	}
	return respond.OK(c, http.StatusOK, out)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	out, err := h.svc.DeleteCrop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Error(c, err, service.ErrNotFound)
	}
	return respond.OK(c, http.StatusOK, out)
}

// bind decodes and validates the write shape. When ok is false the request
// has already been answered and err is the result of writing that answer.
func bind(c echo.Context) (in entities.CropInput, ok bool, err error) {
	if err := c.Bind(&in); err != nil {
		return in, false, respond.Fail(c, http.StatusBadRequest, "invalid json")
	}
	in = in.WithDefaults()
	if err := c.Validate(&in); err != nil {
		return in, false, respond.Error(c, err, nil)
	}
	return in, true, nil
}
