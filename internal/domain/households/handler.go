package households

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/brgycare/brgycare/internal/platform/auth"
	"github.com/brgycare/brgycare/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "bhw", "household"))
	readGroup.GET("/households", h.ListHouseholds)
	readGroup.GET("/households/:id", h.GetHousehold)
	readGroup.GET("/households/by-number/:number", h.GetHouseholdByNumber)

	writeGroup := api.Group("", auth.RequireRole("admin", "bhw"))
	writeGroup.POST("/households", h.CreateHousehold)
	writeGroup.PUT("/households/:id", h.UpdateHousehold)
	writeGroup.POST("/households/:number/recount", h.RecountMembers)

	adminGroup := api.Group("", auth.RequireRole("admin"))
	adminGroup.DELETE("/households/:id", h.DeleteHousehold)
}

func (h *Handler) CreateHousehold(c echo.Context) error {
	var hh Household
	if err := c.Bind(&hh); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &hh); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, hh)
}

func (h *Handler) GetHousehold(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	hh, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "household not found")
	}
	return c.JSON(http.StatusOK, hh)
}

func (h *Handler) GetHouseholdByNumber(c echo.Context) error {
	hh, err := h.svc.GetByNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "household not found")
	}
	return c.JSON(http.StatusOK, hh)
}

func (h *Handler) ListHouseholds(c echo.Context) error {
	pg := pagination.FromContext(c)
	params := map[string]string{}
	for _, k := range []string{"household_number", "q"} {
		if v := c.QueryParam(k); v != "" {
			params[k] = v
		}
	}
	items, total, err := h.svc.Search(c.Request().Context(), params, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateHousehold(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var hh Household
	if err := c.Bind(&hh); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	hh.ID = id
	if err := h.svc.Update(c.Request().Context(), &hh); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, hh)
}

func (h *Handler) RecountMembers(c echo.Context) error {
	if err := h.svc.RecountMembers(c.Request().Context(), c.Param("number")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteHousehold(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
