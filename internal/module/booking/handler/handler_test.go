package handler_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"cricket-booking/internal/module/booking/handler"
	"cricket-booking/internal/module/booking/mocks"
	"cricket-booking/internal/module/booking/models/request"
	"cricket-booking/internal/module/booking/models/response"
	log_internal "cricket-booking/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

var (
	h             *handler.BookingHandler
	ucm           *mocks.Usecase
	logMock       *otelzap.Logger
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	logMock = log_internal.Setup()
	validatorTest = validator.New()
	h = &handler.BookingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	logMock = nil
	validatorTest = nil
	h = nil
	app = nil
}

// fakeAuth stands in for the token middleware in tests.
func fakeAuth(email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", int64(1))
		c.Locals("email_user", email)
		return c.Next()
	}
}

func TestCreateQuote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.CreateQuote{MatchID: 1, SectionID: 7, Quantity: 2}
		quote := response.Quote{
			FlowID:   "flow-1",
			State:    "REVIEWING_SUMMARY",
			Quantity: 2,
			Subtotal: "2000",
			Fee:      "60",
			Total:    "2060",
		}

		ucm.On("CreateQuote", mock.Anything, &payload, "buyer@test.com").Return(quote, nil)

		app.Post("/api/v1/bookings/quote", fakeAuth("buyer@test.com"), h.CreateQuote)

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/bookings/quote", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing quantity fails validation", func(t *testing.T) {
		setup()
		defer teardown()

		app.Post("/api/v1/bookings/quote", fakeAuth("buyer@test.com"), h.CreateQuote)

		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/bookings/quote", bytes.NewReader([]byte(`{"match_id":1,"section_id":7}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		ucm.AssertNotCalled(t, "CreateQuote", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSubmitPayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.SubmitPayment{UTRNumber: "123456789012"}
		confirmation := response.BookingConfirmation{
			BookingID: "5d0f5e2e-8d3c-4f3a-9c51-1f2f6f3f9f00",
			State:     "CONFIRMED",
			Status:    "CONFIRMED",
			UTRNumber: "123456789012",
		}

		ucm.On("SubmitPayment", mock.Anything, &payload, "flow-1", "buyer@test.com").Return(confirmation, nil)

		app.Post("/api/v1/bookings/:flow_id/payment", fakeAuth("buyer@test.com"), h.SubmitPayment)

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/bookings/flow-1/payment", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing utr fails validation before the usecase runs", func(t *testing.T) {
		setup()
		defer teardown()

		app.Post("/api/v1/bookings/:flow_id/payment", fakeAuth("buyer@test.com"), h.SubmitPayment)

		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/bookings/flow-1/payment", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		ucm.AssertNotCalled(t, "SubmitPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestShowBooking(t *testing.T) {
	setup()
	defer teardown()

	confirmation := response.BookingConfirmation{
		BookingID: "5d0f5e2e-8d3c-4f3a-9c51-1f2f6f3f9f00",
		Status:    "CONFIRMED",
		UTRNumber: "123456789012",
	}

	ucm.On("ShowBooking", mock.Anything, "123456789012").Return(confirmation, nil)

	app.Get("/api/v1/bookings/:utr", fakeAuth("buyer@test.com"), h.ShowBooking)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/bookings/123456789012", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestReconcileClaimTask(t *testing.T) {
	setup()
	defer teardown()

	payload, _ := json.Marshal(request.ClaimReconciliation{UTRNumber: "123456789012"})
	task := asynq.NewTask("reconcile_claim", payload)

	ucm.On("ReconcileClaim", mock.Anything, &request.ClaimReconciliation{UTRNumber: "123456789012"}).Return(nil)

	err := h.ReconcileClaim(context.Background(), task)
	assert.NoError(t, err)
}
