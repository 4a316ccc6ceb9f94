package service

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// ListReservations returns reservations with their correlated rental and derived phase.
func (s *Service) ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.ReservationView, error) {
	list, err := s.repo.ListReservations(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "ListReservations")
	}
	var rentals []model.RentalRecord
	if ids := reservationUsers(list); len(ids) != 0 {
		if rentals, err = s.repo.RentalHistory(ctx, ids); err != nil {
			return nil, errors.Wrap(err, "ListReservations")
		}
	}

	byPair := make(map[pair][]model.RentalRecord)
	for _, r := range rentals {
		k := pair{r.UserID, r.BookID}
		byPair[k] = append(byPair[k], r)
	}
	views := make([]model.ReservationView, 0, len(list))
	now := s.clock()
	for _, res := range list {
		v := reservationView(res, byPair[pair{res.UserID, res.BookID}], now)
		if f.Phase != "" && v.Phase != f.Phase {
			continue
		}
		views = append(views, v)
	}
	sortViews(views, f.Sort)
	return views, nil
}

func reservationView(res model.ReservationDetails, rentals []model.RentalRecord, now time.Time) model.ReservationView {
	v := model.ReservationView{
		Reservation: res,
		IsExpired:   res.Status == model.ReservationActive && now.After(res.ExpiresAt),
	}
	rental, ok := MatchRental(res.Reservation, rentals)
	if ok {
		v.Rental = &rental
		v.IsOverdue = rental.Open() && now.After(rental.DueDate)
	}
	switch {
	case res.Status == model.ReservationCancelled:
		v.Phase = model.PhaseCancelled
	case ok && !rental.Open():
		v.Phase = model.PhaseReturned
	case ok:
		v.Phase = model.PhaseRented
	default:
		v.Phase = model.PhaseReserved
	}
	return v
}

// sortViews orders views in place. The repository already returns newest first.
func sortViews(views []model.ReservationView, by model.ReservationSort) {
	var less func(a, b model.ReservationView) bool
	switch by {
	case model.SortTitle:
		less = func(a, b model.ReservationView) bool { return a.Reservation.BookTitle < b.Reservation.BookTitle }
	case model.SortTitleDesc:
		less = func(a, b model.ReservationView) bool { return a.Reservation.BookTitle > b.Reservation.BookTitle }
	case model.SortCreated:
		less = func(a, b model.ReservationView) bool { return a.Reservation.CreatedAt.Before(b.Reservation.CreatedAt) }
	case model.SortExpiry:
		less = func(a, b model.ReservationView) bool { return a.Reservation.ExpiresAt.Before(b.Reservation.ExpiresAt) }
	case model.SortExpiryDesc:
		less = func(a, b model.ReservationView) bool { return a.Reservation.ExpiresAt.After(b.Reservation.ExpiresAt) }
	case model.SortDue, model.SortDueDesc:
		desc := by == model.SortDueDesc
		// views without a rental go last either way
		less = func(a, b model.ReservationView) bool {
			if a.Rental == nil || b.Rental == nil {
				return a.Rental != nil && b.Rental == nil
			}
			if desc {
				return a.Rental.DueDate.After(b.Rental.DueDate)
			}
			return a.Rental.DueDate.Before(b.Rental.DueDate)
		}
	default:
		return
	}
	sort.SliceStable(views, func(i, j int) bool { return less(views[i], views[j]) })
}
