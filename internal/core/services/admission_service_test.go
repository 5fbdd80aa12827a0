package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports/mocks"
	"venuegate/internal/core/services"
	"venuegate/internal/monitoring"
)

func TestCheckIn_Admitted(t *testing.T) {
	mockStore := mocks.NewCapacityStore(t)
	mockNotifier := mocks.NewCrowdNotifier(t)

	service := services.NewAdmissionService(mockStore, mockNotifier, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 5, Maximum: 10, UpdatedAt: time.Now()}

	mockStore.On("Increment", ctx, venueID).Return(snap, nil)

	res, err := service.CheckIn(ctx, venueID, "gate-3")

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.AdmissionAdmitted, res.Outcome)
		assert.Equal(t, domain.CrowdQuiet, res.CrowdLevel)
		assert.Equal(t, snap, res.Capacity)
	}
	// 4 -> 5 of 10 stays quiet, so no transition is published.
	mockNotifier.AssertNotCalled(t, "PublishCrowdTransition")
}

func TestCheckIn_CrossingBoundary_PublishesTransition(t *testing.T) {
	mockStore := mocks.NewCapacityStore(t)
	mockNotifier := mocks.NewCrowdNotifier(t)

	service := services.NewAdmissionService(mockStore, mockNotifier, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()
	// 6 -> 7 of 10 crosses the 60% boundary: QUIET -> BUSY.
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 7, Maximum: 10, UpdatedAt: time.Now()}

	mockStore.On("Increment", ctx, venueID).Return(snap, nil)
	mockNotifier.On("PublishCrowdTransition", ctx, mock.MatchedBy(func(tr domain.CrowdTransition) bool {
		return tr.VenueID == venueID && tr.From == domain.CrowdQuiet && tr.To == domain.CrowdBusy && tr.Current == 7
	})).Return(nil)

	res, err := service.CheckIn(ctx, venueID, "gate-3")

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.AdmissionAdmitted, res.Outcome)
		assert.Equal(t, domain.CrowdBusy, res.CrowdLevel)
	}
}

func TestCheckIn_VenueFull_AttachesSnapshot(t *testing.T) {
	mockStore := mocks.NewCapacityStore(t)
	mockNotifier := mocks.NewCrowdNotifier(t)

	service := services.NewAdmissionService(mockStore, mockNotifier, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 10, Maximum: 10, UpdatedAt: time.Now()}

	mockStore.On("Increment", ctx, venueID).Return(nil, domain.ErrCapacityExceeded)
	mockStore.On("Get", ctx, venueID).Return(snap, nil)

	res, err := service.CheckIn(ctx, venueID, "gate-3")

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.AdmissionVenueFull, res.Outcome)
		assert.Equal(t, domain.CrowdPacked, res.CrowdLevel)
		assert.Equal(t, snap, res.Capacity)
	}
}

func TestCheckIn_VenueUnknown(t *testing.T) {
	mockStore := mocks.NewCapacityStore(t)
	mockNotifier := mocks.NewCrowdNotifier(t)

	service := services.NewAdmissionService(mockStore, mockNotifier, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()

	mockStore.On("Increment", ctx, venueID).Return(nil, domain.ErrVenueNotFound)

	res, err := service.CheckIn(ctx, venueID, "gate-3")

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.AdmissionVenueUnknown, res.Outcome)
		assert.Nil(t, res.Capacity)
	}
}

func TestCheckOut_CheckedOut(t *testing.T) {
	mockStore := mocks.NewCapacityStore(t)
	mockNotifier := mocks.NewCrowdNotifier(t)

	service := services.NewAdmissionService(mockStore, mockNotifier, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()
	// 7 -> 6 of 10 crosses back down: BUSY -> QUIET.
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 6, Maximum: 10, UpdatedAt: time.Now()}

	mockStore.On("Decrement", ctx, venueID).Return(snap, nil)
	mockNotifier.On("PublishCrowdTransition", ctx, mock.MatchedBy(func(tr domain.CrowdTransition) bool {
		return tr.From == domain.CrowdBusy && tr.To == domain.CrowdQuiet
	})).Return(nil)

	res, err := service.CheckOut(ctx, venueID, "gate-3")

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.AdmissionCheckedOut, res.Outcome)
		assert.Equal(t, domain.CrowdQuiet, res.CrowdLevel)
	}
}

func TestCheckOut_VenueEmpty(t *testing.T) {
	mockStore := mocks.NewCapacityStore(t)
	mockNotifier := mocks.NewCrowdNotifier(t)

	service := services.NewAdmissionService(mockStore, mockNotifier, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 0, Maximum: 10, UpdatedAt: time.Now()}

	mockStore.On("Decrement", ctx, venueID).Return(nil, domain.ErrAlreadyEmpty)
	mockStore.On("Get", ctx, venueID).Return(snap, nil)

	res, err := service.CheckOut(ctx, venueID, "gate-3")

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.AdmissionVenueEmpty, res.Outcome)
		assert.Equal(t, snap, res.Capacity)
	}
}

func TestCheckIn_NotifierFailure_DoesNotFailAdmission(t *testing.T) {
	mockStore := mocks.NewCapacityStore(t)
	mockNotifier := mocks.NewCrowdNotifier(t)

	service := services.NewAdmissionService(mockStore, mockNotifier, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 9, Maximum: 10, UpdatedAt: time.Now()}

	mockStore.On("Increment", ctx, venueID).Return(snap, nil)
	mockNotifier.On("PublishCrowdTransition", ctx, mock.AnythingOfType("domain.CrowdTransition")).
		Return(assert.AnError)

	res, err := service.CheckIn(ctx, venueID, "gate-3")

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.AdmissionAdmitted, res.Outcome)
	}
}
