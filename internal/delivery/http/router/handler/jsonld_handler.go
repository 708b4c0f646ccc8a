package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/delivery/http/response"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JsonLDHandler holds dependencies for structured-data feed handlers.
type JsonLDHandler struct {
	jsonLDUC usecase.JsonLDUsecase
	logger   *slog.Logger
}

// NewJsonLDHandler is the constructor for JsonLDHandler.
func NewJsonLDHandler(jsonLDUC usecase.JsonLDUsecase, logger *slog.Logger) *JsonLDHandler {
	return &JsonLDHandler{
		jsonLDUC: jsonLDUC,
		logger:   logger,
	}
}

// GenerateFeed handles synthesizing a fresh JSON-LD snapshot for a business.
func (h *JsonLDHandler) GenerateFeed(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	feed, err := h.jsonLDUC.GenerateFeed(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feed, "Feed generated successfully")
}

// ListFeeds handles retrieving the feed history of a business.
func (h *JsonLDHandler) ListFeeds(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	feeds, err := h.jsonLDUC.ListFeeds(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feeds, "Feeds retrieved successfully")
}

// GetFeed handles retrieving a single feed row.
func (h *JsonLDHandler) GetFeed(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid feed ID")
	}

	feed, err := h.jsonLDUC.GetFeed(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feed, "Feed retrieved successfully")
}

// DeleteFeed handles removing a feed row.
func (h *JsonLDHandler) DeleteFeed(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid feed ID")
	}

	if err := h.jsonLDUC.DeleteFeed(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Feed deleted"}, "Feed deleted successfully")
}
