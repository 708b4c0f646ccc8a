package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	"vault/internal/domain/service"
)

// publishBusinessChange emits a change event for downstream consumers.
// Publishing is best-effort: a broker outage must never fail the request
// that triggered it, so failures are logged and swallowed.
func publishBusinessChange(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, business *entity.BusinessProfile, action string) {
	event := &service.BusinessChangeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		BusinessID: business.ID.String(),
		OwnerID:    business.OwnerID.String(),
		Action:     action,
		Name:       business.Name,
		Type:       business.BusinessType,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := publisher.PublishBusinessChange(ctx, event); err != nil {
		logger.Warn("Failed to publish business change event",
			slog.String("businessID", event.BusinessID),
			slog.String("action", action),
			slog.Any("error", err))
	}
}
