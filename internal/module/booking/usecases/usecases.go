package usecases

import (
	"context"
	"fmt"
	"time"

	"cricket-booking/config"
	"cricket-booking/internal/module/booking/models/entity"
	"cricket-booking/internal/module/booking/models/request"
	"cricket-booking/internal/module/booking/models/response"
	"cricket-booking/internal/module/booking/repositories"
	"cricket-booking/internal/pkg/errors"
	"cricket-booking/internal/pkg/monitoring"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo       repositories.Repositories
	log        *otelzap.Logger
	publisher  message.Publisher
	cfgPayment *config.PaymentConfig
}

type Usecase interface {
	ListSections(ctx context.Context, matchID int64) ([]response.Section, error)
	CreateQuote(ctx context.Context, payload *request.CreateQuote, emailUser string) (response.Quote, error)
	ProceedToPayment(ctx context.Context, flowID string, emailUser string) (response.PaymentInstruction, error)
	SubmitPayment(ctx context.Context, payload *request.SubmitPayment, flowID string, emailUser string) (response.BookingConfirmation, error)
	ShowBooking(ctx context.Context, utrNumber string) (response.BookingConfirmation, error)
	ReconcileClaim(ctx context.Context, payload *request.ClaimReconciliation) error
	NotifyBookingConfirmed(ctx context.Context, payload *request.BookingConfirmedEvent) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publisher message.Publisher, cfgPayment *config.PaymentConfig) Usecase {
	return &usecase{
		repo:       repo,
		log:        log,
		publisher:  publisher,
		cfgPayment: cfgPayment,
	}
}

func (u *usecase) ListSections(ctx context.Context, matchID int64) ([]response.Section, error) {
	sections, err := u.repo.FindSectionsByMatchID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Section, 0, len(sections))
	for _, s := range sections {
		// keep the redis availability cache warm for the quote path
		if err := u.repo.RefreshSectionStock(ctx, s.ID, s.Available); err != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error refresh section stock cache: %v", err))
		}

		resp = append(resp, response.Section{
			ID:        s.ID,
			MatchID:   s.MatchID,
			Name:      s.Name,
			Category:  s.Category,
			Price:     s.Price.String(),
			Available: s.Available,
		})
	}
	return resp, nil
}

// CreateQuote starts a booking flow: SelectingSection -> ReviewingSummary.
func (u *usecase) CreateQuote(ctx context.Context, payload *request.CreateQuote, emailUser string) (response.Quote, error) {
	section, err := u.repo.FindSectionByID(ctx, payload.SectionID)
	if err != nil {
		return response.Quote{}, err
	}

	if section.MatchID != payload.MatchID {
		return response.Quote{}, errors.BadRequest("section does not belong to the requested match")
	}

	// availability reads through the redis cache, falling back to the row
	available := section.Available
	if cached, err := u.repo.GetSectionStock(ctx, section.ID); err == nil {
		available = int(cached)
	} else if err := u.repo.RefreshSectionStock(ctx, section.ID, section.Available); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error refresh section stock cache: %v", err))
	}

	if payload.Quantity > available {
		return response.Quote{}, errors.BadRequest("requested quantity exceeds available seats")
	}

	subtotal, fee, total := PriceQuote(section.Price, payload.Quantity)

	now := time.Now()
	flow := entity.Flow{
		ID:        uuid.NewString(),
		UserEmail: emailUser,
		State:     entity.StateSelectingSection,
		Selection: entity.Selection{
			MatchID:   section.MatchID,
			SectionID: section.ID,
			Quantity:  payload.Quantity,
			UnitPrice: section.Price,
			Subtotal:  subtotal,
			Fee:       fee,
			Total:     total,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := flow.Transition(entity.StateReviewingSummary); err != nil {
		return response.Quote{}, err
	}

	if err := u.repo.SaveFlow(ctx, &flow); err != nil {
		return response.Quote{}, err
	}

	return response.Quote{
		FlowID:    flow.ID,
		State:     string(flow.State),
		MatchID:   section.MatchID,
		SectionID: section.ID,
		Section:   section.Name,
		Quantity:  payload.Quantity,
		UnitPrice: section.Price.String(),
		Subtotal:  subtotal.String(),
		Fee:       fee.String(),
		Total:     total.String(),
	}, nil
}

// ProceedToPayment moves the buyer from the summary to the transfer step
// and hands back the UPI payee they should send the total to.
func (u *usecase) ProceedToPayment(ctx context.Context, flowID string, emailUser string) (response.PaymentInstruction, error) {
	flow, err := u.loadFlow(ctx, flowID, emailUser)
	if err != nil {
		return response.PaymentInstruction{}, err
	}

	if err := flow.Transition(entity.StateAwaitingReference); err != nil {
		return response.PaymentInstruction{}, err
	}

	if err := u.repo.SaveFlow(ctx, &flow); err != nil {
		return response.PaymentInstruction{}, err
	}

	return response.PaymentInstruction{
		FlowID:    flow.ID,
		State:     string(flow.State),
		PayeeName: u.cfgPayment.UpiPayeeName,
		PayeeVPA:  u.cfgPayment.UpiPayeeVPA,
		Amount:    flow.Selection.Total.String(),
	}, nil
}

// SubmitPayment drives the back half of the state machine in one request:
// AwaitingReference -> SubmittingPayment -> VerifyingClaim ->
// WritingBooking -> Confirmed, with Failed reachable from each backend
// step. A Failed flow may be retried with a fresh reference.
func (u *usecase) SubmitPayment(ctx context.Context, payload *request.SubmitPayment, flowID string, emailUser string) (response.BookingConfirmation, error) {
	flow, err := u.loadFlow(ctx, flowID, emailUser)
	if err != nil {
		return response.BookingConfirmation{}, err
	}

	// resubmitting a confirmed flow must not create a second booking
	if flow.Terminal() {
		booking, found, err := u.repo.FindBookingByUTR(ctx, flow.UTRNumber)
		if err != nil {
			return response.BookingConfirmation{}, err
		}
		if found {
			return confirmationFromEntity(booking, flow.State), nil
		}
	}

	// syntactic check first, no backend call on failure; the flow stays
	// where it is so the buyer can correct the reference inline
	if !ValidUTR(payload.UTRNumber) {
		return response.BookingConfirmation{}, errors.BadRequest("reference number must be at least 12 digits with no other characters")
	}

	if err := flow.Transition(entity.StateSubmittingPayment); err != nil {
		return response.BookingConfirmation{}, err
	}
	flow.UTRNumber = payload.UTRNumber
	if err := u.repo.SaveFlow(ctx, &flow); err != nil {
		return response.BookingConfirmation{}, err
	}

	claim := entity.PaymentClaim{
		MatchID:   flow.Selection.MatchID,
		UserEmail: flow.UserEmail,
		Amount:    flow.Selection.Total,
		UTRNumber: payload.UTRNumber,
		ClaimedAt: time.Now(),
	}
	if err := u.repo.InsertPaymentClaim(ctx, &claim); err != nil {
		u.failFlow(ctx, &flow, "payment could not be recorded", "submitting_payment")
		return response.BookingConfirmation{}, errors.InternalServerError("payment could not be recorded, please try again")
	}
	monitoring.IncPaymentClaims()

	// reconciliation runs later and must not block the buyer
	delay := time.Duration(u.cfgPayment.ClaimReconcileDelayMin) * time.Minute
	if _, err := u.repo.EnqueueClaimReconciliation(ctx, payload.UTRNumber, delay); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error enqueue claim reconciliation: %v", err))
	}

	if err := flow.Transition(entity.StateVerifyingClaim); err != nil {
		return response.BookingConfirmation{}, err
	}
	if err := u.repo.SaveFlow(ctx, &flow); err != nil {
		return response.BookingConfirmation{}, err
	}

	count, err := u.repo.CountPaymentClaimsByUTR(ctx, payload.UTRNumber)
	if err != nil {
		u.failFlow(ctx, &flow, "reference could not be verified", "verifying_claim")
		return response.BookingConfirmation{}, errors.InternalServerError("reference could not be verified, please try again")
	}
	if count == 0 {
		u.failFlow(ctx, &flow, "invalid reference number", "verifying_claim")
		return response.BookingConfirmation{}, errors.UnprocessableEntity("invalid reference number")
	}

	if err := flow.Transition(entity.StateWritingBooking); err != nil {
		return response.BookingConfirmation{}, err
	}

	// idempotence guard: a booking already written for this reference is
	// returned as-is instead of inserting a second row
	existing, found, err := u.repo.FindBookingByUTR(ctx, payload.UTRNumber)
	if err != nil {
		u.failFlow(ctx, &flow, "booking could not be created", "writing_booking")
		return response.BookingConfirmation{}, errors.InternalServerError("booking could not be created, please try again")
	}
	if found {
		return u.confirmFlow(ctx, &flow, existing)
	}

	booking := entity.Booking{
		ID:        uuid.New(),
		MatchID:   flow.Selection.MatchID,
		SectionID: flow.Selection.SectionID,
		Seats:     flow.Selection.Quantity,
		UserEmail: flow.UserEmail,
		UTRNumber: payload.UTRNumber,
		Status:    entity.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	}
	if err := u.repo.InsertBooking(ctx, &booking); err != nil {
		u.failFlow(ctx, &flow, "booking could not be created", "writing_booking")
		return response.BookingConfirmation{}, errors.InternalServerError("booking could not be created, please try again")
	}

	// availability is reconciled after the insert, not atomically with it;
	// a losing decrement is logged rather than rolling back the booking
	if err := u.repo.DecrementSectionAvailability(ctx, booking.SectionID, booking.Seats); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error decrement section availability after booking %s: %v", booking.ID, err))
	}
	if err := u.repo.DecrementSectionStock(ctx, booking.SectionID, booking.Seats); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error decrement section stock cache after booking %s: %v", booking.ID, err))
	}

	return u.confirmFlow(ctx, &flow, booking)
}

func (u *usecase) ShowBooking(ctx context.Context, utrNumber string) (response.BookingConfirmation, error) {
	booking, found, err := u.repo.FindBookingByUTR(ctx, utrNumber)
	if err != nil {
		return response.BookingConfirmation{}, err
	}
	if !found {
		return response.BookingConfirmation{}, errors.NotFound("no booking found for this reference number")
	}
	return confirmationFromEntity(booking, entity.StateConfirmed), nil
}

// ReconcileClaim runs from the task queue after the configured delay. A
// claim with no booking behind it is flagged for the manual admin pass;
// nothing is deleted.
func (u *usecase) ReconcileClaim(ctx context.Context, payload *request.ClaimReconciliation) error {
	_, found, err := u.repo.FindBookingByUTR(ctx, payload.UTRNumber)
	if err != nil {
		return err
	}

	if found {
		return u.repo.MarkClaimReconciled(ctx, payload.UTRNumber)
	}

	u.log.Ctx(ctx).Warn(fmt.Sprintf("payment claim %s has no booking, flagging for manual reconciliation", payload.UTRNumber))
	monitoring.IncUnreconciledClaims()
	return u.repo.FlagClaimUnreconciled(ctx, payload.UTRNumber)
}

// NotifyBookingConfirmed consumes the booking_confirmed topic.
func (u *usecase) NotifyBookingConfirmed(ctx context.Context, payload *request.BookingConfirmedEvent) error {
	u.log.Ctx(ctx).Info(fmt.Sprintf("booking %s confirmed for %s, %d seat(s), reference %s",
		payload.BookingID, payload.UserEmail, payload.Seats, payload.UTRNumber))
	return nil
}

func (u *usecase) loadFlow(ctx context.Context, flowID string, emailUser string) (entity.Flow, error) {
	flow, err := u.repo.FindFlowByID(ctx, flowID)
	if err != nil {
		return entity.Flow{}, err
	}
	if flow.UserEmail != emailUser {
		return entity.Flow{}, errors.UnauthorizedError("booking flow belongs to another user")
	}
	return flow, nil
}

func (u *usecase) failFlow(ctx context.Context, flow *entity.Flow, reason string, stage string) {
	flow.Fail(reason)
	monitoring.IncBookingFailures(stage)
	if err := u.repo.SaveFlow(ctx, flow); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save failed booking flow: %v", err))
	}
}

func (u *usecase) confirmFlow(ctx context.Context, flow *entity.Flow, booking entity.Booking) (response.BookingConfirmation, error) {
	if err := flow.Transition(entity.StateConfirmed); err != nil {
		return response.BookingConfirmation{}, err
	}
	flow.BookingID = booking.ID.String()
	if err := u.repo.SaveFlow(ctx, flow); err != nil {
		return response.BookingConfirmation{}, err
	}

	event := request.BookingConfirmedEvent{
		BookingID: booking.ID.String(),
		MatchID:   booking.MatchID,
		Seats:     booking.Seats,
		UserEmail: booking.UserEmail,
		UTRNumber: booking.UTRNumber,
	}
	eventPayload, _ := json.Marshal(event)
	if err := u.publisher.Publish("booking_confirmed", message.NewMessage(watermill.NewUUID(), eventPayload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish booking_confirmed event: %v", err))
	}

	monitoring.IncBookingsConfirmed()
	return confirmationFromEntity(booking, flow.State), nil
}

func confirmationFromEntity(booking entity.Booking, state entity.FlowState) response.BookingConfirmation {
	return response.BookingConfirmation{
		BookingID: booking.ID.String(),
		State:     string(state),
		MatchID:   booking.MatchID,
		SectionID: booking.SectionID,
		Seats:     booking.Seats,
		UserEmail: booking.UserEmail,
		UTRNumber: booking.UTRNumber,
		Status:    booking.Status,
		BookedAt:  booking.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
