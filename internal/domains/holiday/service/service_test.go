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
	holidayMocks "resort/internal/domains/holiday/mocks"
	"resort/internal/domains/holiday/model"
	"resort/internal/domains/holiday/model/dto"
	"resort/internal/domains/holiday/service"
	cacheMocks "resort/shared/cache/mocks"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

func newService(t *testing.T) (service.Holiday, *holidayMocks.MockHoliday, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := holidayMocks.NewMockHoliday(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	// Async cache writes may or may not land before the test ends.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func sampleHoliday() model.Holiday {
	description := "National holiday"

	return model.Holiday{
		ID:                 "holiday-id-123",
		HolidayName:        "Independence Day",
		HolidayDescription: &description,
		StartDate:          time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestHolidayService_Create(t *testing.T) {
	req := dto.CreateHolidayRequest{
		HolidayName: "Independence Day",
		StartDate:   "2026-08-15",
		EndDate:     "2026-08-15",
	}

	t.Run("successful create returns the new holiday", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Independence Day", res.HolidayName)
		assert.Nil(t, res.HolidayDescription)
	})

	t.Run("end date before start date", func(t *testing.T) {
		svc, _, _ := newService(t)

		bad := req
		bad.StartDate = "2026-08-16"

		_, err := svc.Create(context.Background(), bad)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _, _ := newService(t)

		bad := req
		bad.EndDate = "August 15th"

		_, err := svc.Create(context.Background(), bad)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestHolidayService_GetAll(t *testing.T) {
	t.Run("cache miss falls through to repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Holiday{sampleHoliday()}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "2026-08-15", res[0].StartDate)
	})
}

func TestHolidayService_Update(t *testing.T) {
	req := dto.UpdateHolidayRequest{
		HolidayName: "Independence Day",
		StartDate:   "2026-08-15",
		EndDate:     "2026-08-16",
	}

	t.Run("successful update returns the updated record", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		updated := sampleHoliday()
		updated.EndDate = time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(updated, nil)

		res, err := svc.Update(context.Background(), req, "holiday-id-123")

		require.NoError(t, err)
		assert.Equal(t, "2026-08-16", res.EndDate)
	})

	t.Run("no rows affected means not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		_, err := svc.Update(context.Background(), req, "missing-id")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestHolidayService_Delete(t *testing.T) {
	t.Run("successful delete returns the removed record", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sampleHoliday(), nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		res, err := svc.Delete(context.Background(), "holiday-id-123")

		require.NoError(t, err)
		assert.Equal(t, "holiday-id-123", res.ID)
	})

	t.Run("unknown holiday", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Holiday{}, nil)

		_, err := svc.Delete(context.Background(), "missing-id")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
