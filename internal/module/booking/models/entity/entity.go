package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Section is a priced seating block of a match. Availability is decremented
// on every confirmed booking, never incremented by buyers.
type Section struct {
	ID        int64           `db:"id"`
	MatchID   int64           `db:"match_id"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	Price     decimal.Decimal `db:"price"`
	Available int             `db:"available"`
	Capacity  int             `db:"capacity"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt sql.NullTime    `db:"updated_at"`
}

// PaymentClaim is a buyer-reported UPI transfer. Inserting one proves
// nothing about the money having moved; reconciliation is manual.
type PaymentClaim struct {
	ID           int64           `db:"id"`
	MatchID      int64           `db:"match_id"`
	UserEmail    string          `db:"user_email"`
	Amount       decimal.Decimal `db:"amount"`
	UTRNumber    string          `db:"utr_number"`
	ClaimedAt    time.Time       `db:"claimed_at"`
	ReconciledAt sql.NullTime    `db:"reconciled_at"`
	FlaggedAt    sql.NullTime    `db:"flagged_at"`
}

const (
	BookingStatusConfirmed = "CONFIRMED"
)

type Booking struct {
	ID        uuid.UUID    `db:"id"`
	MatchID   int64        `db:"match_id"`
	SectionID int64        `db:"section_id"`
	Seats     int          `db:"seats"`
	UserEmail string       `db:"user_email"`
	UTRNumber string       `db:"utr_number"`
	Status    string       `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}
