package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"venuegate/internal/adapter/repository/memory"
	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports/mocks"
	"venuegate/internal/core/services"
	"venuegate/internal/monitoring"
)

func TestRedeem_Admitted(t *testing.T) {
	mockLedger := mocks.NewTicketLedger(t)
	mockAdmission := mocks.NewAdmissionControl(t)

	service := services.NewRedemptionService(mockLedger, mockAdmission, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()
	ticket := &domain.Ticket{
		ID:      uuid.New(),
		VenueID: venueID,
		Code:    "A1B2C3D4E5F60718293A4B5C6D7E8F90",
		Status:  domain.TicketValid,
	}
	checkedIn := time.Now()
	used := &domain.Ticket{ID: ticket.ID, VenueID: venueID, Code: ticket.Code, Status: domain.TicketUsed, CheckedInAt: &checkedIn}
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 5, Maximum: 10}

	mockLedger.On("FindByCode", ctx, ticket.Code).Return(ticket, nil)
	mockAdmission.On("CheckIn", ctx, venueID, "redemption-gate").
		Return(&domain.AdmissionResult{Outcome: domain.AdmissionAdmitted, Capacity: snap, CrowdLevel: snap.CrowdLevel()}, nil)
	mockLedger.On("MarkUsed", ctx, ticket.ID, mock.AnythingOfType("time.Time")).Return(used, nil)

	res, err := service.Redeem(ctx, ticket.Code)

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.RedemptionAdmitted, res.Outcome)
		assert.Equal(t, domain.TicketUsed, res.Ticket.Status)
		assert.Equal(t, snap, res.Capacity)
	}
}

func TestRedeem_TicketNotFound(t *testing.T) {
	mockLedger := mocks.NewTicketLedger(t)
	mockAdmission := mocks.NewAdmissionControl(t)

	service := services.NewRedemptionService(mockLedger, mockAdmission, monitoring.NewMonitor())

	ctx := context.Background()

	mockLedger.On("FindByCode", ctx, "nope").Return(nil, domain.ErrTicketNotFound)

	res, err := service.Redeem(ctx, "nope")

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.RedemptionNotFound, res.Outcome)
	}
	mockAdmission.AssertNotCalled(t, "CheckIn")
}

func TestRedeem_AlreadyUsed_SkipsAdmission(t *testing.T) {
	mockLedger := mocks.NewTicketLedger(t)
	mockAdmission := mocks.NewAdmissionControl(t)

	service := services.NewRedemptionService(mockLedger, mockAdmission, monitoring.NewMonitor())

	ctx := context.Background()
	ticket := &domain.Ticket{ID: uuid.New(), VenueID: uuid.New(), Code: "used-code", Status: domain.TicketUsed}

	mockLedger.On("FindByCode", ctx, ticket.Code).Return(ticket, nil)

	res, err := service.Redeem(ctx, ticket.Code)

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.RedemptionAlreadyUsed, res.Outcome)
	}
	mockAdmission.AssertNotCalled(t, "CheckIn")
}

func TestRedeem_Refunded_SkipsAdmission(t *testing.T) {
	mockLedger := mocks.NewTicketLedger(t)
	mockAdmission := mocks.NewAdmissionControl(t)

	service := services.NewRedemptionService(mockLedger, mockAdmission, monitoring.NewMonitor())

	ctx := context.Background()
	ticket := &domain.Ticket{ID: uuid.New(), VenueID: uuid.New(), Code: "refunded-code", Status: domain.TicketRefunded}

	mockLedger.On("FindByCode", ctx, ticket.Code).Return(ticket, nil)

	res, err := service.Redeem(ctx, ticket.Code)

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.RedemptionRefunded, res.Outcome)
	}
	mockAdmission.AssertNotCalled(t, "CheckIn")
}

func TestRedeem_VenueFull_TicketStaysValid(t *testing.T) {
	mockLedger := mocks.NewTicketLedger(t)
	mockAdmission := mocks.NewAdmissionControl(t)

	service := services.NewRedemptionService(mockLedger, mockAdmission, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()
	ticket := &domain.Ticket{ID: uuid.New(), VenueID: venueID, Code: "full-code", Status: domain.TicketValid}
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 10, Maximum: 10}

	mockLedger.On("FindByCode", ctx, ticket.Code).Return(ticket, nil)
	mockAdmission.On("CheckIn", ctx, venueID, "redemption-gate").
		Return(&domain.AdmissionResult{Outcome: domain.AdmissionVenueFull, Capacity: snap, CrowdLevel: snap.CrowdLevel()}, nil)

	res, err := service.Redeem(ctx, ticket.Code)

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.RedemptionVenueFull, res.Outcome)
		assert.Equal(t, domain.TicketValid, res.Ticket.Status)
		assert.Equal(t, snap, res.Capacity)
	}
	mockLedger.AssertNotCalled(t, "MarkUsed")
	mockAdmission.AssertNotCalled(t, "CheckOut")
}

func TestRedeem_LostMarkRace_RollsBackAdmission(t *testing.T) {
	mockLedger := mocks.NewTicketLedger(t)
	mockAdmission := mocks.NewAdmissionControl(t)

	service := services.NewRedemptionService(mockLedger, mockAdmission, monitoring.NewMonitor())

	ctx := context.Background()
	venueID := uuid.New()
	ticket := &domain.Ticket{ID: uuid.New(), VenueID: venueID, Code: "raced-code", Status: domain.TicketValid}
	snap := &domain.VenueCapacity{VenueID: venueID, Current: 6, Maximum: 10}

	mockLedger.On("FindByCode", ctx, ticket.Code).Return(ticket, nil)
	mockAdmission.On("CheckIn", ctx, venueID, "redemption-gate").
		Return(&domain.AdmissionResult{Outcome: domain.AdmissionAdmitted, Capacity: snap, CrowdLevel: snap.CrowdLevel()}, nil)
	mockLedger.On("MarkUsed", ctx, ticket.ID, mock.AnythingOfType("time.Time")).
		Return(nil, domain.ErrTicketAlreadyUsed)
	mockAdmission.On("CheckOut", ctx, venueID, "redemption-gate").
		Return(&domain.AdmissionResult{Outcome: domain.AdmissionCheckedOut}, nil)

	res, err := service.Redeem(ctx, ticket.Code)

	assert.NoError(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, domain.RedemptionAlreadyUsed, res.Outcome)
	}
}

// Two concurrent scans of the same code, end to end over the in-memory
// adapters: exactly one admission, and the counter moves by exactly one.
func TestRedeem_ConcurrentScansOfSameCode(t *testing.T) {
	db, _ := redismock.NewClientMock()
	monitor := monitoring.NewMonitor()

	capacityRepo := memory.NewCapacityRepository()
	ticketRepo := memory.NewTicketRepository()

	capacityService := services.NewCapacityService(capacityRepo, db, monitor, time.Second)
	admissionService := services.NewAdmissionService(capacityService, nil, monitor)
	ticketService := services.NewTicketService(ticketRepo)
	redemptionService := services.NewRedemptionService(ticketService, admissionService, monitor)

	ctx := context.Background()
	venueID := uuid.New()

	_, err := capacityService.SetMaximum(ctx, venueID, 50, false)
	require.NoError(t, err)

	order, err := ticketService.IssueTickets(ctx, uuid.New(), uuid.New(), uuid.New(), venueID, 1, decimal.NewFromInt(25))
	require.NoError(t, err)
	code := order.Tickets[0].Code

	outcomes := make(chan domain.RedemptionOutcome, 2)
	errs := make(chan error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := redemptionService.Redeem(ctx, code)
			if err != nil {
				errs <- err
				return
			}
			outcomes <- res.Outcome
		}()
	}
	wg.Wait()
	close(outcomes)
	close(errs)

	for err := range errs {
		t.Fatalf("redeem failed: %v", err)
	}

	counts := make(map[domain.RedemptionOutcome]int)
	for outcome := range outcomes {
		counts[outcome]++
	}

	assert.Equal(t, 1, counts[domain.RedemptionAdmitted])
	assert.Equal(t, 1, counts[domain.RedemptionAlreadyUsed])

	snap, err := capacityService.Get(ctx, venueID)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Current, "duplicate scan must not consume capacity")

	ticket, err := ticketService.FindByCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketUsed, ticket.Status)
	assert.NotNil(t, ticket.CheckedInAt)
}
