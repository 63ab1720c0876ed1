package wire

import (
	"bike-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/booking", func(r chi.Router) {
		// POST /api/booking/add - Create a new booking
		r.Post("/add", bookingHandler.CreateBooking)

		// PUT /api/booking/update - Reschedule a pending booking
		r.Put("/update", bookingHandler.UpdateBooking)

		// GET /api/booking/getall - List every booking
		r.Get("/getall", bookingHandler.GetAllBookings)

		// GET /api/booking/getall/{userId} - List a customer's bookings
		r.Get("/getall/{userId}", bookingHandler.GetUserBookings)

		// GET /api/booking/pending - List pending bookings
		r.Get("/pending", bookingHandler.GetPendingBookings)

		// GET /api/booking/completed - List completed bookings
		r.Get("/completed", bookingHandler.GetCompletedBookings)

		// POST /api/booking/cancel/{id} - Cancel a booking
		r.Post("/cancel/{id}", bookingHandler.CancelBooking)

		// DELETE /api/booking/delete/{id} - Remove a booking record
		r.Delete("/delete/{id}", bookingHandler.DeleteBooking)
	})
}
