package reports

import (
	"net/http"
	"time"

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
	api.GET("/reports/tasks", h.ListTasks, auth.RequireRole("admin", "bhw"))

	bhwGroup := api.Group("", auth.RequireRole("bhw"))
	bhwGroup.POST("/reports/weekly", h.SubmitWeekly)
	bhwGroup.POST("/reports/monthly", h.SubmitMonthly)
	bhwGroup.GET("/reports/weekly/mine", h.MyWeeklyReports)
	bhwGroup.GET("/reports/monthly/mine", h.MyMonthlyReports)

	adminGroup := api.Group("", auth.RequireRole("admin"))
	adminGroup.GET("/reports/weekly", h.WeeklyByWeek)
	adminGroup.GET("/reports/weekly/export", h.ExportWeekly)
	adminGroup.GET("/reports/weekly/:id", h.GetWeekly)
	adminGroup.GET("/reports/monthly", h.MonthlyByMonth)
	adminGroup.GET("/reports/monthly/:id", h.GetMonthly)
}

func (h *Handler) ListTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, BHWTasks)
}

func currentAccountID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(auth.AccountIDFromContext(c))
}

func (h *Handler) SubmitWeekly(c echo.Context) error {
	bhwID, err := currentAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	var req SubmitWeeklyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	w, err := h.svc.SubmitWeekly(c.Request().Context(), bhwID, auth.NameFromContext(c), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *Handler) SubmitMonthly(c echo.Context) error {
	bhwID, err := currentAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	var req SubmitMonthlyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.SubmitMonthly(c.Request().Context(), bhwID, auth.NameFromContext(c), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) MyWeeklyReports(c echo.Context) error {
	bhwID, err := currentAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.WeeklyByBHW(c.Request().Context(), bhwID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) MyMonthlyReports(c echo.Context) error {
	bhwID, err := currentAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.MonthlyByBHW(c.Request().Context(), bhwID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetWeekly(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	w, err := h.svc.GetWeekly(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.JSON(http.StatusOK, w)
}

func (h *Handler) GetMonthly(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	m, err := h.svc.GetMonthly(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.JSON(http.StatusOK, m)
}

func weekParam(c echo.Context) (time.Time, error) {
	v := c.QueryParam("week")
	if v == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", v)
}

func (h *Handler) WeeklyByWeek(c echo.Context) error {
	weekOf, err := weekParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "week must be formatted YYYY-MM-DD")
	}
	items, err := h.svc.WeeklyByWeek(c.Request().Context(), weekOf)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ExportWeekly(c echo.Context) error {
	weekOf, err := weekParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "week must be formatted YYYY-MM-DD")
	}
	items, err := h.svc.WeeklyByWeek(c.Request().Context(), weekOf)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	f, err := ExportWeeklyXLSX(items)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set("Content-Disposition", `attachment; filename="weekly-reports.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}

func (h *Handler) MonthlyByMonth(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	items, err := h.svc.MonthlyByMonth(c.Request().Context(), month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
