package impl

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"slices"
	"strings"

	"vault/config"
	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/domain/service"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedExtensions maps each media type to the file extensions it accepts.
var allowedExtensions = map[string][]string{
	entity.MediaTypeImage:    {".jpg", ".jpeg", ".png", ".gif"},
	entity.MediaTypeVideo:    {".mp4", ".mov", ".avi", ".mkv"},
	entity.MediaTypeDocument: {".pdf", ".doc", ".docx", ".txt"},
}

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	txManager      repository.TransactionManager
	store          service.MediaStore
	maxUploadBytes int64
	logger         *slog.Logger
}

// MediaServiceParams defines the dependencies for creating a mediaService.
type MediaServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Store     service.MediaStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		txManager:      params.TxManager,
		store:          params.Store,
		maxUploadBytes: params.Config.Media.MaxUploadBytes,
		logger:         params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadMedia validates the file against its declared media type and the
// size limit, stores the binary and records the asset row.
func (srv *mediaService) UploadMedia(ctx context.Context, input *usecase.UploadMediaInput) (*entity.MediaAsset, error) {
	srv.log(ctx).Debug("Uploading media",
		slog.Any("businessID", input.BusinessID),
		slog.String("mediaType", input.MediaType),
		slog.String("filename", input.Filename))

	if err := srv.validateUpload(input); err != nil {
		return nil, err
	}

	// Upload first so the transaction only commits a row whose binary
	// actually exists.
	key := uuid.New().String() + "_" + input.Filename
	url, err := srv.store.Save(ctx, key, contentTypeFor(input.Filename), input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store media file", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store media file")
	}

	var created *entity.MediaAsset

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireBusiness(ctx, repoFactory, input.BusinessID); err != nil {
			return err
		}

		asset := &entity.MediaAsset{
			BusinessID: input.BusinessID,
			MediaType:  input.MediaType,
			URL:        url,
			AltText:    input.AltText,
		}
		if err := repoFactory.MediaRepo().Create(ctx, asset); err != nil {
			return errors.Wrap(err, "failed to create media asset")
		}
		created = asset

		return nil
	})
	if err != nil {
		// The row never landed, so drop the orphaned binary.
		if delErr := srv.store.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned media file", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to execute media upload transaction")
	}

	return created, nil
}

// GetMedia retrieves a single asset record by ID.
func (srv *mediaService) GetMedia(ctx context.Context, id uuid.UUID) (*entity.MediaAsset, error) {
	var found *entity.MediaAsset

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		asset, err := repoFactory.MediaRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMediaNotFound) {
				return errors.Wrap(domainerrors.ErrMediaNotFound, "media asset not found")
			}

			return errors.Wrap(err, "failed to find media asset")
		}
		found = asset

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute media lookup transaction")
	}

	return found, nil
}

// ListMedia retrieves a page of a business's assets, newest first.
func (srv *mediaService) ListMedia(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.MediaAsset, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var page []*entity.MediaAsset

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assets, err := repoFactory.MediaRepo().ListByBusiness(ctx, businessID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list media assets")
		}
		page = assets

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute media list transaction")
	}

	return page, nil
}

// DeleteMedia removes the asset record and makes a best-effort attempt to
// remove the stored binary.
func (srv *mediaService) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	var url string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mediaRepo := repoFactory.MediaRepo()

		asset, err := mediaRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMediaNotFound) {
				return errors.Wrap(domainerrors.ErrMediaNotFound, "media asset not found")
			}

			return errors.Wrap(err, "failed to find media asset")
		}
		url = asset.URL

		if err := mediaRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete media asset")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute media deletion transaction")
	}

	if key := storageKeyFromURL(url); key != "" {
		if err := srv.store.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to delete stored media file", slog.String("key", key), slog.Any("error", err))
		}
	}

	return nil
}

// validateUpload checks the declared media type, the file extension and
// the declared size against the configured limit.
func (srv *mediaService) validateUpload(input *usecase.UploadMediaInput) error {
	allowed, ok := allowedExtensions[input.MediaType]
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidMediaType, "invalid media type")
	}

	ext := strings.ToLower(filepath.Ext(input.Filename))
	if !slices.Contains(allowed, ext) {
		return errors.Wrap(
			domainerrors.ErrInvalidMediaType.WithDetails(fmt.Sprintf(
				"invalid file extension '%s' for %s, allowed: %s",
				ext, input.MediaType, strings.Join(allowed, ", "),
			)),
			"invalid file extension",
		)
	}

	if input.Size > srv.maxUploadBytes {
		return errors.Wrap(
			domainerrors.ErrFileTooLarge.WithDetails(fmt.Sprintf(
				"file too large, max allowed size is %d MB",
				srv.maxUploadBytes/(1<<20),
			)),
			"file too large",
		)
	}

	return nil
}

// contentTypeFor derives the MIME type from the file extension.
func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}

	return "application/octet-stream"
}

// storageKeyFromURL recovers the bucket key from a stored public URL.
// The key is the path segment after the last slash.
func storageKeyFromURL(url string) string {
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:]
	}

	return url
}
