package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
	"printshop/internal/errors"
	"printshop/internal/usecase"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type notifierService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotifierService creates the staff push fan-out used by the worker.
func NewNotifierService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotifierUsecase {
	return &notifierService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleInventoryEvent pushes the event to every active staff device. Only a
// failure to reach the device store or the push provider at all is retryable.
func (s *notifierService) HandleInventoryEvent(ctx context.Context, event *service.InventoryEvent) error {
	devices, err := s.deviceRepo.FindActiveDevices(ctx)
	if err != nil {
		return usecase.NewRetryableError(errors.Wrap(err, "failed to find active devices"))
	}
	if len(devices) == 0 {
		s.log(ctx).Info("[Worker] No staff devices to notify", slog.String("event_id", event.ID))

		return nil
	}

	title, body := renderEvent(event)
	data := eventData(event)
	tokens := collectTokens(devices)

	var (
		totalSent, totalFailed, failedBatches int
		invalidTokens                         []string
		lastErr                               error
	)
	batches := 0
	for idx := 0; idx < len(tokens); idx += firebaseBatchSize {
		batches++
		end := min(idx+firebaseBatchSize, len(tokens))
		batch := tokens[idx:end]

		sent, failed, invalid, sendErr := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if sendErr != nil {
			s.log(ctx).Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			failedBatches++
			totalFailed += len(batch)
			lastErr = sendErr

			continue
		}

		totalSent += sent
		totalFailed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		removed, err := s.deviceRepo.DeleteByTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).Warn("[Worker] Failed to remove invalid devices", slog.Any("error", err))
		} else {
			s.log(ctx).Info("[Worker] Removed invalid devices", slog.Int64("count", removed))
		}
	}

	s.log(ctx).Info("[Worker] Inventory event delivered",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	if batches > 0 && failedBatches == batches {
		return usecase.NewRetryableError(errors.Wrap(lastErr, "every notification batch failed"))
	}

	return nil
}

func collectTokens(devices []*entity.StaffDevice) []string {
	tokens := make([]string, 0, len(devices))
	seen := make(map[string]bool, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" || seen[device.FCMToken] {
			continue
		}
		seen[device.FCMToken] = true
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}

// renderEvent creates the notification title and body
func renderEvent(event *service.InventoryEvent) (title, body string) {
	switch event.Type {
	case service.EventStockChanged:
		quantity := "unknown"
		if event.NewQuantity != nil {
			quantity = strconv.Itoa(*event.NewQuantity)
		}

		return "Stock updated", fmt.Sprintf("Product #%d now has %s in stock", event.ProductID, quantity)
	case service.EventOrderStatusChanged:
		return "Order updated", fmt.Sprintf("Order #%d is now %s", event.OrderID, event.Status)
	case service.EventSalesChanged:
		return "Sales updated", fmt.Sprintf("Order #%d changed sales figures", event.OrderID)
	default:
		return "Inventory updated", "Inventory figures changed"
	}
}

func eventData(event *service.InventoryEvent) map[string]string {
	data := map[string]string{
		"event_id":   event.ID,
		"event_type": string(event.Type),
	}
	if event.ProductID != 0 {
		data["product_id"] = strconv.FormatInt(event.ProductID, 10)
	}
	if event.NewQuantity != nil {
		data["new_quantity"] = strconv.Itoa(*event.NewQuantity)
	}
	if event.OrderID != 0 {
		data["order_id"] = strconv.FormatInt(event.OrderID, 10)
	}
	if event.Status != "" {
		data["status"] = event.Status
	}

	return data
}
