package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	"printshop/internal/domain/service"
	"printshop/internal/errors"
	mockService "printshop/internal/mocks/service"
	"printshop/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventDispatcher_FillsEnvelopeAndSurvivesCancellation(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	dispatcher := NewEventDispatcher(publisher, time.Second, clock.NewMockClock(now), discardLogger())

	var published []*service.InventoryEvent
	publisher.EXPECT().
		PublishInventoryEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, event *service.InventoryEvent) error {
			// The request context is already cancelled by now.
			assert.NoError(t, ctx.Err())
			published = append(published, event)

			return nil
		}).
		Times(2)

	ctx, cancel := context.WithCancel(deliverycontext.WithRequestID(context.Background(), "req-42"))
	cancel()

	dispatcher.Dispatch(ctx, StockChangedEvent(3, 7), SalesChangedEvent(11))
	dispatcher.Wait()

	require.Len(t, published, 2)
	for _, event := range published {
		assert.NotEmpty(t, event.ID)
		assert.Equal(t, now, event.OccurredAt)
		assert.Equal(t, "req-42", event.RequestID)
	}
	assert.NotEqual(t, published[0].ID, published[1].ID)
	assert.Equal(t, service.EventStockChanged, published[0].Type)
	require.NotNil(t, published[0].NewQuantity)
	assert.Equal(t, 7, *published[0].NewQuantity)
	assert.Equal(t, int64(11), published[1].OrderID)
}

func TestEventDispatcher_PublishFailureIsSwallowed(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	dispatcher := NewEventDispatcher(publisher, time.Second, clock.NewMockClock(time.Now()), discardLogger())

	publisher.EXPECT().
		PublishInventoryEvent(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).
		Times(2)

	dispatcher.Dispatch(context.Background(), InventoryChangedEvent(), OrderStatusChangedEvent(1, "shipped"))
	dispatcher.Wait()
}

func TestEventDispatcher_NoEvents(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	dispatcher := NewEventDispatcher(publisher, time.Second, clock.NewMockClock(time.Now()), discardLogger())

	dispatcher.Dispatch(context.Background())
	dispatcher.Wait()
}

func TestStockEvents_LatestQuantityPerProduct(t *testing.T) {
	changes := []*entity.StockChange{
		{Product: &entity.Product{ID: 2, StockQuantity: 8}},
		{Product: &entity.Product{ID: 5, StockQuantity: 1}},
		{Product: &entity.Product{ID: 2, StockQuantity: 6}},
	}

	events := stockEvents(changes)

	require.Len(t, events, 3)
	assert.Equal(t, int64(2), events[0].ProductID)
	assert.Equal(t, 6, *events[0].NewQuantity)
	assert.Equal(t, int64(5), events[1].ProductID)
	assert.Equal(t, 1, *events[1].NewQuantity)
	assert.Equal(t, service.EventInventoryChanged, events[2].Type)

	assert.Empty(t, stockEvents(nil))
}
