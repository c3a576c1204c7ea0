package usecases_test

import (
	"context"
	"testing"
	"time"

	"cricket-booking/config"
	"cricket-booking/internal/module/booking/mocks"
	"cricket-booking/internal/module/booking/models/entity"
	"cricket-booking/internal/module/booking/models/request"
	"cricket-booking/internal/module/booking/usecases"
	"cricket-booking/internal/pkg/errors"
	log_internal "cricket-booking/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc         usecases.Usecase
	repoMock   *mocks.Repositories
	cfgPayment = config.PaymentConfig{
		UpiPayeeName:           "Cricket Booking Ltd",
		UpiPayeeVPA:            "cricketbooking@upi",
		ClaimReconcileDelayMin: 30,
		FlowTTLMin:             30,
	}
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	logger := log_internal.Setup()
	uc = usecases.New(repoMock, logger, &mockPublisher{}, &cfgPayment)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func awaitingFlow(utrSoFar string) entity.Flow {
	now := time.Now()
	return entity.Flow{
		ID:        "2b1e7c64-5a52-4f6e-8f9f-d58b2c5a9f11",
		UserEmail: "buyer@test.com",
		State:     entity.StateAwaitingReference,
		Selection: entity.Selection{
			MatchID:   1,
			SectionID: 7,
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(1000),
			Subtotal:  decimal.NewFromInt(2000),
			Fee:       decimal.NewFromInt(60),
			Total:     decimal.NewFromInt(2060),
		},
		UTRNumber: utrSoFar,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.CreateQuote{MatchID: 1, SectionID: 7, Quantity: 2}
		sectionMock := entity.Section{
			ID:        7,
			MatchID:   1,
			Name:      "North Stand",
			Category:  "Premium",
			Price:     decimal.NewFromInt(1000),
			Available: 120,
			Capacity:  150,
		}

		repoMock.On("FindSectionByID", ctx, int64(7)).Return(sectionMock, nil)
		repoMock.On("GetSectionStock", ctx, int64(7)).Return(int64(0), errors.NotFound("section stock not cached"))
		repoMock.On("RefreshSectionStock", ctx, int64(7), 120).Return(nil)
		repoMock.On("SaveFlow", ctx, mock.Anything).Return(nil)

		resp, err := uc.CreateQuote(ctx, &payload, "buyer@test.com")

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.FlowID)
		assert.Equal(t, string(entity.StateReviewingSummary), resp.State)
		assert.Equal(t, "2000", resp.Subtotal)
		assert.Equal(t, "60", resp.Fee)
		assert.Equal(t, "2060", resp.Total)
	})

	t.Run("quantity exceeds available seats", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.CreateQuote{MatchID: 1, SectionID: 8, Quantity: 5}
		sectionMock := entity.Section{
			ID:        8,
			MatchID:   1,
			Name:      "East Stand",
			Category:  "General",
			Price:     decimal.NewFromInt(500),
			Available: 3,
			Capacity:  100,
		}

		repoMock.On("FindSectionByID", ctx, int64(8)).Return(sectionMock, nil)
		repoMock.On("GetSectionStock", ctx, int64(8)).Return(int64(3), nil)

		_, err := uc.CreateQuote(ctx, &payload, "buyer@test.com")

		assert.Error(t, err)
		repoMock.AssertNotCalled(t, "SaveFlow", ctx, mock.Anything)
	})

	t.Run("cached stock is read in preference to the section row", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.CreateQuote{MatchID: 1, SectionID: 9, Quantity: 2}
		sectionMock := entity.Section{
			ID:        9,
			MatchID:   1,
			Name:      "West Stand",
			Category:  "General",
			Price:     decimal.NewFromInt(500),
			Available: 50,
			Capacity:  100,
		}

		repoMock.On("FindSectionByID", ctx, int64(9)).Return(sectionMock, nil)
		repoMock.On("GetSectionStock", ctx, int64(9)).Return(int64(1), nil)

		_, err := uc.CreateQuote(ctx, &payload, "buyer@test.com")

		assert.Error(t, err)
		repoMock.AssertNotCalled(t, "RefreshSectionStock", ctx, mock.Anything, mock.Anything)
		repoMock.AssertNotCalled(t, "SaveFlow", ctx, mock.Anything)
	})

	t.Run("cache miss falls back to the row and rewarms the cache", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.CreateQuote{MatchID: 1, SectionID: 9, Quantity: 2}
		sectionMock := entity.Section{
			ID:        9,
			MatchID:   1,
			Name:      "West Stand",
			Category:  "General",
			Price:     decimal.NewFromInt(500),
			Available: 50,
			Capacity:  100,
		}

		repoMock.On("FindSectionByID", ctx, int64(9)).Return(sectionMock, nil)
		repoMock.On("GetSectionStock", ctx, int64(9)).Return(int64(0), errors.NotFound("section stock not cached"))
		repoMock.On("RefreshSectionStock", ctx, int64(9), 50).Return(nil)
		repoMock.On("SaveFlow", ctx, mock.Anything).Return(nil)

		resp, err := uc.CreateQuote(ctx, &payload, "buyer@test.com")

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Quantity)
		repoMock.AssertNumberOfCalls(t, "RefreshSectionStock", 1)
	})

	t.Run("section belongs to another match", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.CreateQuote{MatchID: 2, SectionID: 7, Quantity: 1}
		sectionMock := entity.Section{
			ID:        7,
			MatchID:   1,
			Price:     decimal.NewFromInt(1000),
			Available: 120,
			Capacity:  150,
		}

		repoMock.On("FindSectionByID", ctx, int64(7)).Return(sectionMock, nil)

		_, err := uc.CreateQuote(ctx, &payload, "buyer@test.com")
		assert.Error(t, err)
		repoMock.AssertNotCalled(t, "GetSectionStock", ctx, mock.Anything)
	})
}

func TestSubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed booking end to end", func(t *testing.T) {
		setup()
		defer teardown()

		flow := awaitingFlow("")
		payload := request.SubmitPayment{UTRNumber: "123456789012"}

		repoMock.On("FindFlowByID", ctx, flow.ID).Return(flow, nil)
		repoMock.On("SaveFlow", ctx, mock.Anything).Return(nil)
		repoMock.On("InsertPaymentClaim", ctx, mock.Anything).Return(nil)
		repoMock.On("EnqueueClaimReconciliation", ctx, "123456789012", 30*time.Minute).Return("task-1", nil)
		repoMock.On("CountPaymentClaimsByUTR", ctx, "123456789012").Return(int64(1), nil)
		repoMock.On("FindBookingByUTR", ctx, "123456789012").Return(entity.Booking{}, false, nil)
		repoMock.On("InsertBooking", ctx, mock.Anything).Return(nil)
		repoMock.On("DecrementSectionAvailability", ctx, int64(7), 2).Return(nil)
		repoMock.On("DecrementSectionStock", ctx, int64(7), 2).Return(nil)

		resp, err := uc.SubmitPayment(ctx, &payload, flow.ID, "buyer@test.com")

		assert.NoError(t, err)
		assert.Equal(t, string(entity.StateConfirmed), resp.State)
		assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
		assert.Equal(t, "123456789012", resp.UTRNumber)
		repoMock.AssertNumberOfCalls(t, "InsertBooking", 1)
	})

	t.Run("short reference rejected before any backend call", func(t *testing.T) {
		setup()
		defer teardown()

		flow := awaitingFlow("")
		payload := request.SubmitPayment{UTRNumber: "12345"}

		repoMock.On("FindFlowByID", ctx, flow.ID).Return(flow, nil)

		_, err := uc.SubmitPayment(ctx, &payload, flow.ID, "buyer@test.com")

		assert.Error(t, err)
		e, ok := err.(*errors.ErrorResp)
		assert.True(t, ok)
		assert.Equal(t, 400, e.HttpCode)
		repoMock.AssertNotCalled(t, "InsertPaymentClaim", ctx, mock.Anything)
		repoMock.AssertNotCalled(t, "InsertBooking", ctx, mock.Anything)
	})

	t.Run("no matching claim refuses the booking", func(t *testing.T) {
		setup()
		defer teardown()

		flow := awaitingFlow("")
		payload := request.SubmitPayment{UTRNumber: "999999999999"}

		repoMock.On("FindFlowByID", ctx, flow.ID).Return(flow, nil)
		repoMock.On("SaveFlow", ctx, mock.Anything).Return(nil)
		repoMock.On("InsertPaymentClaim", ctx, mock.Anything).Return(nil)
		repoMock.On("EnqueueClaimReconciliation", ctx, "999999999999", 30*time.Minute).Return("task-2", nil)
		repoMock.On("CountPaymentClaimsByUTR", ctx, "999999999999").Return(int64(0), nil)

		_, err := uc.SubmitPayment(ctx, &payload, flow.ID, "buyer@test.com")

		assert.Error(t, err)
		assert.Equal(t, "invalid reference number", err.Error())
		e, ok := err.(*errors.ErrorResp)
		assert.True(t, ok)
		assert.Equal(t, 422, e.HttpCode)
		repoMock.AssertNotCalled(t, "InsertBooking", ctx, mock.Anything)
	})

	t.Run("existing booking for the reference is returned, not duplicated", func(t *testing.T) {
		setup()
		defer teardown()

		flow := awaitingFlow("")
		payload := request.SubmitPayment{UTRNumber: "123456789012"}
		existing := entity.Booking{
			ID:        uuid.New(),
			MatchID:   1,
			SectionID: 7,
			Seats:     2,
			UserEmail: "buyer@test.com",
			UTRNumber: "123456789012",
			Status:    entity.BookingStatusConfirmed,
			CreatedAt: time.Now(),
		}

		repoMock.On("FindFlowByID", ctx, flow.ID).Return(flow, nil)
		repoMock.On("SaveFlow", ctx, mock.Anything).Return(nil)
		repoMock.On("InsertPaymentClaim", ctx, mock.Anything).Return(nil)
		repoMock.On("EnqueueClaimReconciliation", ctx, "123456789012", 30*time.Minute).Return("task-3", nil)
		repoMock.On("CountPaymentClaimsByUTR", ctx, "123456789012").Return(int64(1), nil)
		repoMock.On("FindBookingByUTR", ctx, "123456789012").Return(existing, true, nil)

		resp, err := uc.SubmitPayment(ctx, &payload, flow.ID, "buyer@test.com")

		assert.NoError(t, err)
		assert.Equal(t, existing.ID.String(), resp.BookingID)
		repoMock.AssertNotCalled(t, "InsertBooking", ctx, mock.Anything)
	})

	t.Run("flow owned by another buyer is refused", func(t *testing.T) {
		setup()
		defer teardown()

		flow := awaitingFlow("")
		payload := request.SubmitPayment{UTRNumber: "123456789012"}

		repoMock.On("FindFlowByID", ctx, flow.ID).Return(flow, nil)

		_, err := uc.SubmitPayment(ctx, &payload, flow.ID, "someone-else@test.com")
		assert.Error(t, err)
	})

	t.Run("claim insert failure fails the flow", func(t *testing.T) {
		setup()
		defer teardown()

		flow := awaitingFlow("")
		payload := request.SubmitPayment{UTRNumber: "123456789012"}

		repoMock.On("FindFlowByID", ctx, flow.ID).Return(flow, nil)
		repoMock.On("SaveFlow", ctx, mock.Anything).Return(nil)
		repoMock.On("InsertPaymentClaim", ctx, mock.Anything).Return(errors.InternalServerError("error insert payment claim"))

		_, err := uc.SubmitPayment(ctx, &payload, flow.ID, "buyer@test.com")

		assert.Error(t, err)
		repoMock.AssertNotCalled(t, "CountPaymentClaimsByUTR", ctx, "123456789012")
		repoMock.AssertNotCalled(t, "InsertBooking", ctx, mock.Anything)
	})
}

func TestProceedToPayment(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	flow := awaitingFlow("")
	flow.State = entity.StateReviewingSummary

	repoMock.On("FindFlowByID", ctx, flow.ID).Return(flow, nil)
	repoMock.On("SaveFlow", ctx, mock.Anything).Return(nil)

	resp, err := uc.ProceedToPayment(ctx, flow.ID, "buyer@test.com")

	assert.NoError(t, err)
	assert.Equal(t, string(entity.StateAwaitingReference), resp.State)
	assert.Equal(t, "cricketbooking@upi", resp.PayeeVPA)
	assert.Equal(t, "2060", resp.Amount)
}

func TestReconcileClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("claim with booking is marked reconciled", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.ClaimReconciliation{UTRNumber: "123456789012"}
		booking := entity.Booking{ID: uuid.New(), UTRNumber: "123456789012"}

		repoMock.On("FindBookingByUTR", ctx, "123456789012").Return(booking, true, nil)
		repoMock.On("MarkClaimReconciled", ctx, "123456789012").Return(nil)

		assert.NoError(t, uc.ReconcileClaim(ctx, &payload))
		repoMock.AssertNotCalled(t, "FlagClaimUnreconciled", ctx, "123456789012")
	})

	t.Run("claim without booking is flagged", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.ClaimReconciliation{UTRNumber: "999999999999"}

		repoMock.On("FindBookingByUTR", ctx, "999999999999").Return(entity.Booking{}, false, nil)
		repoMock.On("FlagClaimUnreconciled", ctx, "999999999999").Return(nil)

		assert.NoError(t, uc.ReconcileClaim(ctx, &payload))
		repoMock.AssertNotCalled(t, "MarkClaimReconciled", ctx, "999999999999")
	})
}
