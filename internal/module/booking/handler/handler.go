package handler

import (
	"context"
	"fmt"
	"strconv"

	"cricket-booking/internal/module/booking/models/request"
	"cricket-booking/internal/module/booking/usecases"
	"cricket-booking/internal/pkg/errors"
	"cricket-booking/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) ListSections(ctx *fiber.Ctx) error {
	matchID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse match id"))
	}

	resp, err := h.Usecase.ListSections(ctx.UserContext(), matchID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list sections: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list sections")
}

func (h *BookingHandler) CreateQuote(ctx *fiber.Ctx) error {
	var req request.CreateQuote
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	emailUser := ctx.Locals("email_user").(string)

	resp, err := h.Usecase.CreateQuote(ctx.UserContext(), &req, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create quote: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create quote")
}

func (h *BookingHandler) ProceedToPayment(ctx *fiber.Ctx) error {
	flowID := ctx.Params("flow_id")
	if flowID == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse flow id"))
	}

	emailUser := ctx.Locals("email_user").(string)

	resp, err := h.Usecase.ProceedToPayment(ctx.UserContext(), flowID, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error proceed to payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success proceed to payment, please transfer the amount and submit your UTR")
}

func (h *BookingHandler) SubmitPayment(ctx *fiber.Ctx) error {
	flowID := ctx.Params("flow_id")
	if flowID == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse flow id"))
	}

	var req request.SubmitPayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	emailUser := ctx.Locals("email_user").(string)

	resp, err := h.Usecase.SubmitPayment(ctx.UserContext(), &req, flowID, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error submit payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success submit payment, booking confirmed")
}

func (h *BookingHandler) ShowBooking(ctx *fiber.Ctx) error {
	utrNumber := ctx.Params("utr")
	if utrNumber == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse utr number"))
	}

	resp, err := h.Usecase.ShowBooking(ctx.UserContext(), utrNumber)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booking")
}

// ConsumeBookingConfirmed handles the booking_confirmed topic. Bad
// payloads are returned as errors so the router's poison queue takes them.
func (h *BookingHandler) ConsumeBookingConfirmed(msg *message.Message) error {
	msg.Ack()

	var req request.BookingConfirmedEvent
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Usecase.NotifyBookingConfirmed(context.Background(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume booking confirmed: %v", err))
		return err
	}

	return nil
}

// ReconcileClaim is the asynq task handler for deferred claim checks.
func (h *BookingHandler) ReconcileClaim(ctx context.Context, t *asynq.Task) error {
	var req request.ClaimReconciliation
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.ReconcileClaim(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error reconcile claim: %v", err))
		return err
	}

	return nil
}
