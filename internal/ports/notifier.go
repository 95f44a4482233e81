package ports

import (
	"context"

	"toasty/internal/domain"
)

// Notifier delivers a notification to the push service
type Notifier interface {
	// Send delivers the notification. Delivery is best-effort; a non-nil
	// error means the notification did not reach the service.
	Send(ctx context.Context, n domain.Notification, meta domain.DeliveryMeta) error
}
