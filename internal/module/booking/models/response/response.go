package response

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    int64  `json:"user_id"`
	EmailUser string `json:"email_user"`
}

type Section struct {
	ID        int64  `json:"id"`
	MatchID   int64  `json:"match_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Available int    `json:"available"`
}

type Quote struct {
	FlowID    string `json:"flow_id"`
	State     string `json:"state"`
	MatchID   int64  `json:"match_id"`
	SectionID int64  `json:"section_id"`
	Section   string `json:"section"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
	Fee       string `json:"convenience_fee"`
	Total     string `json:"total"`
}

// PaymentInstruction tells the buyer where to transfer the total. The UTR
// they get back from their bank is what they submit next.
type PaymentInstruction struct {
	FlowID    string `json:"flow_id"`
	State     string `json:"state"`
	PayeeName string `json:"payee_name"`
	PayeeVPA  string `json:"payee_vpa"`
	Amount    string `json:"amount"`
}

type BookingConfirmation struct {
	BookingID string `json:"booking_id"`
	State     string `json:"state"`
	MatchID   int64  `json:"match_id"`
	SectionID int64  `json:"section_id"`
	Seats     int    `json:"seats"`
	UserEmail string `json:"user_email"`
	UTRNumber string `json:"utr_number"`
	Status    string `json:"status"`
	BookedAt  string `json:"booked_at"`
}
