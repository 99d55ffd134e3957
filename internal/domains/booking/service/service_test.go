package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	bookingMocks "resort/internal/domains/booking/mocks"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/service"
	cacheMocks "resort/shared/cache/mocks"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

func intPtr(v int) *int {
	return &v
}

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	// Async cache writes may or may not land before the test ends.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func sampleBooking() model.Booking {
	return model.Booking{
		ID:             "booking-id-123",
		ClientName:     "John Carter",
		Email:          "john@example.com",
		PhoneNumber:    "555-0199",
		CheckInDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		NumberOfAdults: 2,
		NumberOfKids:   1,
		RoomType:       "Deluxe",
		FoodPreference: "Veg",
		RoomNumber:     "A-12",
		Amount:         1200,
		CheckInStatus:  model.CheckInStatusNotCheckedIn,
		BookingStatus:  model.BookingStatusPending,
		PaymentStatus:  model.PaymentStatusUnpaid,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ClientName:     "John Carter",
		Email:          "john@example.com",
		PhoneNumber:    "555-0199",
		CheckInDate:    "2026-10-01",
		CheckOutDate:   "2026-10-05",
		NumberOfAdults: intPtr(2),
		NumberOfKids:   intPtr(0),
		RoomType:       "Deluxe",
		FoodPreference: "Veg",
		RoomNumber:     "A-12",
		Amount:         1200,
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful create returns the new booking with defaults", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Create(context.Background(), createRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, model.CheckInStatusNotCheckedIn, res.CheckInStatus)
		assert.Equal(t, model.BookingStatusPending, res.BookingStatus)
		assert.Equal(t, model.PaymentStatusUnpaid, res.PaymentStatus)
		assert.Equal(t, "2026-10-01", res.CheckInDate)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := createRequest()
		req.CheckInDate = "01-10-2026"

		_, err := svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := createRequest()
		req.CheckInDate = "2026-10-05"
		req.CheckOutDate = "2026-10-01"

		_, err := svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("insert error", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		_, err := svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	t.Run("cache miss falls through to repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{sampleBooking()}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "booking-id-123", res[0].ID)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Empty(t, res)
		assert.NotNil(t, res)
	})
}

func TestBookingService_Update(t *testing.T) {
	updateReq := dto.UpdateBookingRequest{
		ClientName:     "John Carter",
		Email:          "john@example.com",
		PhoneNumber:    "555-0199",
		CheckInDate:    "2026-10-01",
		CheckOutDate:   "2026-10-05",
		NumberOfAdults: intPtr(2),
		NumberOfKids:   intPtr(1),
		RoomType:       "Deluxe",
		FoodPreference: "Veg",
		RoomNumber:     "A-12",
		Amount:         1200,
		CheckInStatus:  model.CheckInStatusCheckedIn,
		BookingStatus:  model.BookingStatusConfirmed,
		PaymentStatus:  model.PaymentStatusPaid,
	}

	t.Run("successful update returns the updated record", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		updated := sampleBooking()
		updated.CheckInStatus = model.CheckInStatusCheckedIn
		updated.BookingStatus = model.BookingStatusConfirmed
		updated.PaymentStatus = model.PaymentStatusPaid

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(updated, nil)

		res, err := svc.Update(context.Background(), updateReq, "booking-id-123")

		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusConfirmed, res.BookingStatus)
	})

	t.Run("no rows affected means not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		_, err := svc.Update(context.Background(), updateReq, "missing-id")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := updateReq
		req.CheckOutDate = "next tuesday"

		_, err := svc.Update(context.Background(), req, "booking-id-123")

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("successful delete returns the removed record", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sampleBooking(), nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		res, err := svc.Delete(context.Background(), "booking-id-123")

		require.NoError(t, err)
		assert.Equal(t, "booking-id-123", res.ID)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Delete(context.Background(), "missing-id")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
