package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports/mocks"
	"venuegate/internal/core/services"
	"venuegate/internal/monitoring"
)

func TestGetCapacity_CacheMiss_ReadsRepoAndCaches(t *testing.T) {
	mockRepo := mocks.NewCapacityRepository(t)
	db, mockRedis := redismock.NewClientMock()

	service := services.NewCapacityService(mockRepo, db, monitoring.NewMonitor(), time.Minute)

	ctx := context.Background()
	venueID := uuid.New()
	snap := &domain.VenueCapacity{
		VenueID:   venueID,
		Current:   3,
		Maximum:   10,
		UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	cacheKey := fmt.Sprintf("capacity:%s", venueID)
	data, err := json.Marshal(snap)
	assert.NoError(t, err)

	mockRedis.ExpectGet(cacheKey).RedisNil()
	mockRepo.On("Get", ctx, venueID).Return(snap, nil)
	mockRedis.ExpectSet(cacheKey, data, time.Minute).SetVal("OK")

	got, err := service.Get(ctx, venueID)

	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, 3, got.Current)
		assert.Equal(t, 10, got.Maximum)
	}

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestGetCapacity_CacheHit_SkipsRepo(t *testing.T) {
	mockRepo := mocks.NewCapacityRepository(t)
	db, mockRedis := redismock.NewClientMock()

	service := services.NewCapacityService(mockRepo, db, monitoring.NewMonitor(), time.Minute)

	ctx := context.Background()
	venueID := uuid.New()
	snap := domain.VenueCapacity{VenueID: venueID, Current: 8, Maximum: 10}

	data, err := json.Marshal(snap)
	assert.NoError(t, err)

	mockRedis.ExpectGet(fmt.Sprintf("capacity:%s", venueID)).SetVal(string(data))

	got, err := service.Get(ctx, venueID)

	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, 8, got.Current)
	}
	mockRepo.AssertNotCalled(t, "Get")
}

func TestGetCapacity_UnknownVenue_ReadsEmpty(t *testing.T) {
	mockRepo := mocks.NewCapacityRepository(t)
	db, mockRedis := redismock.NewClientMock()

	service := services.NewCapacityService(mockRepo, db, monitoring.NewMonitor(), time.Minute)

	ctx := context.Background()
	venueID := uuid.New()

	mockRedis.ExpectGet(fmt.Sprintf("capacity:%s", venueID)).RedisNil()
	mockRepo.On("Get", ctx, venueID).Return(nil, domain.ErrVenueNotFound)

	got, err := service.Get(ctx, venueID)

	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, venueID, got.VenueID)
		assert.Equal(t, 0, got.Current)
		assert.Equal(t, 0, got.Maximum)
	}
}

func TestIncrement_Success_InvalidatesCache(t *testing.T) {
	mockRepo := mocks.NewCapacityRepository(t)
	db, mockRedis := redismock.NewClientMock()

	service := services.NewCapacityService(mockRepo, db, monitoring.NewMonitor(), time.Minute)

	ctx := context.Background()
	venueID := uuid.New()
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 4, Maximum: 10, UpdatedAt: time.Now()}

	mockRepo.On("TryIncrement", ctx, venueID).Return(snap, nil)
	mockRedis.ExpectDel(fmt.Sprintf("capacity:%s", venueID)).SetVal(1)

	got, err := service.Increment(ctx, venueID)

	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, 4, got.Current)
	}

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestIncrement_Full_SurfacesErrorWithoutInvalidation(t *testing.T) {
	mockRepo := mocks.NewCapacityRepository(t)
	db, mockRedis := redismock.NewClientMock()

	service := services.NewCapacityService(mockRepo, db, monitoring.NewMonitor(), time.Minute)

	ctx := context.Background()
	venueID := uuid.New()

	mockRepo.On("TryIncrement", ctx, venueID).Return(nil, domain.ErrCapacityExceeded)

	got, err := service.Increment(ctx, venueID)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Nil(t, got)

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestDecrement_Empty_SurfacesError(t *testing.T) {
	mockRepo := mocks.NewCapacityRepository(t)
	db, _ := redismock.NewClientMock()

	service := services.NewCapacityService(mockRepo, db, monitoring.NewMonitor(), time.Minute)

	ctx := context.Background()
	venueID := uuid.New()

	mockRepo.On("TryDecrement", ctx, venueID).Return(nil, domain.ErrAlreadyEmpty)

	got, err := service.Decrement(ctx, venueID)

	assert.ErrorIs(t, err, domain.ErrAlreadyEmpty)
	assert.Nil(t, got)
}

func TestSetMaximum_RejectsNonPositive(t *testing.T) {
	mockRepo := mocks.NewCapacityRepository(t)
	db, _ := redismock.NewClientMock()

	service := services.NewCapacityService(mockRepo, db, monitoring.NewMonitor(), time.Minute)

	got, err := service.SetMaximum(context.Background(), uuid.New(), 0, false)

	assert.ErrorIs(t, err, domain.ErrInvalidMaximum)
	assert.Nil(t, got)
	mockRepo.AssertNotCalled(t, "SetMaximum")
}

func TestSetMaximum_Success_InvalidatesCache(t *testing.T) {
	mockRepo := mocks.NewCapacityRepository(t)
	db, mockRedis := redismock.NewClientMock()

	service := services.NewCapacityService(mockRepo, db, monitoring.NewMonitor(), time.Minute)

	ctx := context.Background()
	venueID := uuid.New()
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 0, Maximum: 250, UpdatedAt: time.Now()}

	mockRepo.On("SetMaximum", ctx, venueID, 250, false).Return(snap, nil)
	mockRedis.ExpectDel(fmt.Sprintf("capacity:%s", venueID)).SetVal(1)

	got, err := service.SetMaximum(ctx, venueID, 250, false)

	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, 250, got.Maximum)
	}

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
