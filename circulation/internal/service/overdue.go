package service

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

type pair struct {
	userID, bookID int64
}

// ListOverdue reports expired reservations that never became rentals together with open
// rentals past their due date, grouped by book and by user.
func (s *Service) ListOverdue(ctx context.Context) (model.OverdueReport, error) {
	now := s.clock()

	var (
		expired []model.ReservationDetails
		overdue []model.RentalDetails
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		expired, err = s.repo.ExpiredReservations(gctx, now)
		return err
	})
	g.Go(func() (err error) {
		overdue, err = s.repo.OverdueRentals(gctx, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.OverdueReport{}, errors.Wrap(err, "ListOverdue")
	}

	var (
		rentals      []model.RentalRecord
		reservations []model.Reservation
	)
	g, gctx = errgroup.WithContext(ctx)
	if ids := reservationUsers(expired); len(ids) != 0 {
		g.Go(func() (err error) {
			rentals, err = s.repo.RentalHistory(gctx, ids)
			return err
		})
	}
	if ids := rentalUsers(overdue); len(ids) != 0 {
		g.Go(func() (err error) {
			reservations, err = s.repo.ReservationHistory(gctx, ids)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return model.OverdueReport{}, errors.Wrap(err, "ListOverdue")
	}
	return Reconcile(expired, overdue, rentals, reservations), nil
}

// Reconcile builds the overdue report from already loaded rows. expired must be Active
// reservations past expiry and overdue open rentals past due; rentals and reservations
// are the histories used for correlation.
func Reconcile(
	expired []model.ReservationDetails,
	overdue []model.RentalDetails,
	rentals []model.RentalRecord,
	reservations []model.Reservation,
) model.OverdueReport {
	rentalsByPair := make(map[pair][]model.RentalRecord)
	for _, r := range rentals {
		k := pair{r.UserID, r.BookID}
		rentalsByPair[k] = append(rentalsByPair[k], r)
	}
	reservationsByPair := make(map[pair][]model.Reservation)
	for _, r := range reservations {
		k := pair{r.UserID, r.BookID}
		reservationsByPair[k] = append(reservationsByPair[k], r)
	}

	items := make([]model.OverdueItem, 0, len(expired)+len(overdue))
	for i := range expired {
		res := expired[i].Reservation
		if hasRentalSince(res, rentalsByPair[pair{res.UserID, res.BookID}]) {
			continue
		}
		items = append(items, model.OverdueItem{
			Kind:         model.OverdueReservation,
			BookID:       res.BookID,
			BookTitle:    expired[i].BookTitle,
			UserID:       res.UserID,
			Reservation:  &res,
			OverdueSince: res.ExpiresAt,
		})
	}
	for i := range overdue {
		rental := overdue[i].Rental
		item := model.OverdueItem{
			Kind:         model.OverdueRental,
			BookID:       rental.BookID,
			BookTitle:    overdue[i].BookTitle,
			UserID:       rental.UserID,
			CopyID:       rental.CopyID,
			Rental:       &rental,
			OverdueSince: rental.DueDate,
		}
		if res, ok := MatchReservation(rental, reservationsByPair[pair{rental.UserID, rental.BookID}]); ok {
			item.Reservation = &res
		}
		items = append(items, item)
	}

	return model.OverdueReport{
		ByBook:     groupByBook(items),
		ByUser:     groupByUser(items),
		TotalCount: len(items),
	}
}

// groups keep first-seen order among equal counts.
func groupByBook(items []model.OverdueItem) []model.OverdueBookGroup {
	groups := make([]model.OverdueBookGroup, 0)
	index := make(map[int64]int)
	for _, it := range items {
		i, ok := index[it.BookID]
		if !ok {
			i = len(groups)
			index[it.BookID] = i
			groups = append(groups, model.OverdueBookGroup{BookID: it.BookID, BookTitle: it.BookTitle})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Items) > len(groups[j].Items)
	})
	return groups
}

func groupByUser(items []model.OverdueItem) []model.OverdueUserGroup {
	groups := make([]model.OverdueUserGroup, 0)
	index := make(map[int64]int)
	for _, it := range items {
		i, ok := index[it.UserID]
		if !ok {
			i = len(groups)
			index[it.UserID] = i
			groups = append(groups, model.OverdueUserGroup{UserID: it.UserID})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Items) > len(groups[j].Items)
	})
	return groups
}

func reservationUsers(list []model.ReservationDetails) []int64 {
	return distinctUsers(list, func(r model.ReservationDetails) int64 { return r.UserID })
}

func rentalUsers(list []model.RentalDetails) []int64 {
	return distinctUsers(list, func(r model.RentalDetails) int64 { return r.UserID })
}

// distinctUsers keeps first-seen order.
func distinctUsers[T any](list []T, userID func(T) int64) []int64 {
	ids := make([]int64, 0, len(list))
	seen := make(map[int64]struct{}, len(list))
	for _, item := range list {
		id := userID(item)
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
