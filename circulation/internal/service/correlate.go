package service

import (
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// Reservations and rentals carry no link to each other. They are correlated by the
// (user, book) pair and by time: a rental belongs to a reservation created no later
// than the rental started. The correlation is best effort. When one pair has several
// reservations with interleaved rentals, a rental may be attributed to the wrong one.

// MatchRental returns the earliest rental of the reservation's pair that started at or after
// the reservation was created.
func MatchRental(res model.Reservation, rentals []model.RentalRecord) (model.RentalRecord, bool) {
	var (
		best  model.RentalRecord
		found bool
	)
	for _, r := range rentals {
		if r.UserID != res.UserID || r.BookID != res.BookID || r.StartedAt.Before(res.CreatedAt) {
			continue
		}
		if !found || r.StartedAt.Before(best.StartedAt) || (r.StartedAt.Equal(best.StartedAt) && r.ID < best.ID) {
			best, found = r, true
		}
	}
	return best, found
}

// MatchReservation returns the latest reservation of the rental's pair, in any status,
// created at or before the rental started.
func MatchReservation(rental model.Rental, reservations []model.Reservation) (model.Reservation, bool) {
	var (
		best  model.Reservation
		found bool
	)
	for _, r := range reservations {
		if r.UserID != rental.UserID || r.BookID != rental.BookID || r.CreatedAt.After(rental.StartedAt) {
			continue
		}
		if !found || r.CreatedAt.After(best.CreatedAt) || (r.CreatedAt.Equal(best.CreatedAt) && r.ID > best.ID) {
			best, found = r, true
		}
	}
	return best, found
}

// hasRentalSince reports whether the reservation ever turned into a rental.
func hasRentalSince(res model.Reservation, rentals []model.RentalRecord) bool {
	_, ok := MatchRental(res, rentals)
	return ok
}
