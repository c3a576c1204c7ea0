package router

import (
	booking "cricket-booking/internal/module/booking/handler"
	match "cricket-booking/internal/module/match/handler"
	"cricket-booking/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *booking.BookingHandler, handlerMatch *match.MatchHandler, m *middleware.Middleware) *fiber.App {

	app.Use(m.Trace, m.Metrics)

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	v1 := Api.Group("/v1")

	// browsing is public
	v1.Get("/matches", handlerMatch.ListMatches)
	v1.Get("/matches/:id", handlerMatch.GetMatch)
	v1.Get("/matches/:id/sections", handlerBooking.ListSections)
	v1.Get("/teams", handlerMatch.ListTeams)
	v1.Get("/stadiums", handlerMatch.ListStadiums)

	// the booking flow needs a signed-in buyer
	v1.Post("/bookings/quote", m.ValidateToken, handlerBooking.CreateQuote)
	v1.Post("/bookings/:flow_id/proceed", m.ValidateToken, handlerBooking.ProceedToPayment)
	v1.Post("/bookings/:flow_id/payment", m.ValidateToken, handlerBooking.SubmitPayment)
	v1.Get("/bookings/:utr", m.ValidateToken, handlerBooking.ShowBooking)

	return app
}
