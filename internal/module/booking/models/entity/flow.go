package entity

import (
	"time"

	"cricket-booking/internal/pkg/errors"

	"github.com/shopspring/decimal"
)

type FlowState string

const (
	StateSelectingSection  FlowState = "SELECTING_SECTION"
	StateReviewingSummary  FlowState = "REVIEWING_SUMMARY"
	StateAwaitingReference FlowState = "AWAITING_REFERENCE"
	StateSubmittingPayment FlowState = "SUBMITTING_PAYMENT"
	StateVerifyingClaim    FlowState = "VERIFYING_CLAIM"
	StateWritingBooking    FlowState = "WRITING_BOOKING"
	StateConfirmed         FlowState = "CONFIRMED"
	StateFailed            FlowState = "FAILED"
)

// allowedTransitions is the whole booking state machine. Failed is
// re-entrant: the buyer retries by submitting a fresh reference, which
// moves the flow back through SubmittingPayment.
var allowedTransitions = map[FlowState][]FlowState{
	StateSelectingSection:  {StateReviewingSummary},
	StateReviewingSummary:  {StateAwaitingReference},
	StateAwaitingReference: {StateSubmittingPayment},
	StateSubmittingPayment: {StateVerifyingClaim, StateFailed},
	StateVerifyingClaim:    {StateWritingBooking, StateFailed},
	StateWritingBooking:    {StateConfirmed, StateFailed},
	StateFailed:            {StateSubmittingPayment},
	StateConfirmed:         {},
}

// Selection is the buyer's in-progress choice. It is immutable once the
// quote is computed; a retry starts a new flow rather than mutating it.
type Selection struct {
	MatchID   int64           `json:"match_id"`
	SectionID int64           `json:"section_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Fee       decimal.Decimal `json:"fee"`
	Total     decimal.Decimal `json:"total"`
}

// Flow is the serialized snapshot of one booking attempt. It lives in
// redis keyed by ID so a page reload can pick the attempt back up.
type Flow struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	State     FlowState `json:"state"`
	Selection Selection `json:"selection"`
	UTRNumber string    `json:"utr_number,omitempty"`
	BookingID string    `json:"booking_id,omitempty"`
	Failure   string    `json:"failure,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transition advances the flow or rejects an out-of-order call.
func (f *Flow) Transition(next FlowState) error {
	for _, s := range allowedTransitions[f.State] {
		if s == next {
			f.State = next
			f.UpdatedAt = time.Now()
			if next != StateFailed {
				f.Failure = ""
			}
			return nil
		}
	}
	return errors.Conflict("booking flow is not in a state that allows this action")
}

// Fail records why the attempt stopped. The buyer sees this message and
// may retry with a new reference.
func (f *Flow) Fail(reason string) {
	f.State = StateFailed
	f.Failure = reason
	f.UpdatedAt = time.Now()
}

func (f *Flow) Terminal() bool {
	return f.State == StateConfirmed
}
