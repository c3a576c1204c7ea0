package request

type CreateQuote struct {
	MatchID   int64 `json:"match_id" validate:"required"`
	SectionID int64 `json:"section_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

type SubmitPayment struct {
	UTRNumber string `json:"utr_number" validate:"required"`
}

type ClaimReconciliation struct {
	UTRNumber string `json:"utr_number" validate:"required"`
}

type BookingConfirmedEvent struct {
	BookingID string `json:"booking_id" validate:"required"`
	MatchID   int64  `json:"match_id" validate:"required"`
	Seats     int    `json:"seats" validate:"required"`
	UserEmail string `json:"user_email" validate:"required"`
	UTRNumber string `json:"utr_number" validate:"required"`
}
