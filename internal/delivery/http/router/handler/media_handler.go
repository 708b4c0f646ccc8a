package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/delivery/http/response"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for media-asset handlers.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(mediaUC usecase.MediaUsecase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUC: mediaUC,
		logger:  logger,
	}
}

// UploadMedia handles a multipart file upload. The binary goes to blob
// storage and the asset record is returned.
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	businessID, err := uuidFromForm(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	mediaType := c.FormValue("media_type")
	if mediaType == "" {
		return response.BadRequest(c, "INVALID_INPUT", "media_type is required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "file is required")
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	input := &usecase.UploadMediaInput{
		BusinessID: businessID,
		MediaType:  mediaType,
		Filename:   file.Filename,
		AltText:    c.FormValue("alt_text"),
		Size:       file.Size,
		Content:    src,
	}

	asset, err := h.mediaUC.UploadMedia(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, asset, "Media uploaded successfully")
}

// GetMedia handles retrieving a single asset record.
func (h *MediaHandler) GetMedia(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid media ID")
	}

	asset, err := h.mediaUC.GetMedia(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, asset, "Media retrieved successfully")
}

// ListMedia handles retrieving a page of a business's assets.
func (h *MediaHandler) ListMedia(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	limit, offset := pagination(c)

	assets, err := h.mediaUC.ListMedia(c.Request().Context(), businessID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, assets, "Media retrieved successfully")
}

// DeleteMedia handles removing an asset record and its stored binary.
func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid media ID")
	}

	if err := h.mediaUC.DeleteMedia(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Media deleted"}, "Media deleted successfully")
}
