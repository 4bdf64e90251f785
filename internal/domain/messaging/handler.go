package messaging

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
	api.POST("/messages", h.SendMessage)
	api.GET("/messages/unread-count", h.UnreadCount)
	api.GET("/conversations", h.ListConversations)
	api.GET("/conversations/:partnerId", h.GetThread)
	api.POST("/conversations/:partnerId/read", h.MarkRead)
}

func currentAccountID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(auth.AccountIDFromContext(c))
}

func (h *Handler) SendMessage(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Send(c.Request().Context(), accountID, auth.NameFromContext(c), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListConversations(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	convos, err := h.svc.Conversations(c.Request().Context(), accountID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, convos)
}

func (h *Handler) GetThread(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	partnerID, err := uuid.Parse(c.Param("partnerId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid partner id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.Thread(c.Request().Context(), accountID, partnerID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) MarkRead(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	partnerID, err := uuid.Parse(c.Param("partnerId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid partner id")
	}
	if err := h.svc.MarkRead(c.Request().Context(), accountID, partnerID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UnreadCount(c echo.Context) error {
	accountID, err := currentAccountID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	count, err := h.svc.UnreadCount(c.Request().Context(), accountID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int{"unread": count})
}
