package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

var reservationColumns = []string{
	"r.id", "r.user_id", "r.book_id", "r.created_at", "r.expires_at", "r.status",
}

func (s *store) CreateReservation(ctx context.Context, r model.Reservation) (model.Reservation, error) {
	q := qb.Insert(reservationsTable).
		Columns("user_id", "book_id", "created_at", "expires_at", "status").
		Values(r.UserID, r.BookID, r.CreatedAt, r.ExpiresAt, r.Status).
		Suffix("RETURNING id, user_id, book_id, created_at, expires_at, status")
	res, err := getOne[model.Reservation](ctx, s, q, errs.ErrReservationNotFound)
	return res, errors.Wrap(err, "CreateReservation")
}

func (s *store) LockReservation(ctx context.Context, reservationID int64) (model.Reservation, error) {
	q := qb.Select(reservationColumns...).
		From(reservationsTable + " r").
		Where(sq.Eq{"r.id": reservationID}).
		Suffix("FOR UPDATE")
	res, err := getOne[model.Reservation](ctx, s, q, errs.ErrReservationNotFound)
	return res, errors.Wrap(err, "LockReservation")
}

func (s *store) HasActiveReservation(ctx context.Context, userID, bookID int64) (bool, error) {
	q := qb.Select("1").
		From(reservationsTable).
		Where(sq.Eq{"user_id": userID, "book_id": bookID, "status": model.ReservationActive})
	ok, err := s.exists(ctx, q)
	return ok, errors.Wrap(err, "HasActiveReservation")
}

// LatestActiveReservation is the most recent Active reservation of the pair created no later than notAfter.
func (s *store) LatestActiveReservation(ctx context.Context, userID, bookID int64, notAfter time.Time) (model.Reservation, error) {
	q := qb.Select(reservationColumns...).
		From(reservationsTable + " r").
		Where(sq.Eq{"r.user_id": userID, "r.book_id": bookID, "r.status": model.ReservationActive}).
		Where(sq.LtOrEq{"r.created_at": notAfter}).
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(1).
		Suffix("FOR UPDATE")
	res, err := getOne[model.Reservation](ctx, s, q, errs.ErrReservationNotFound)
	return res, errors.Wrap(err, "LatestActiveReservation")
}

func (s *store) SetReservationStatus(ctx context.Context, reservationID int64, status model.ReservationStatus) error {
	q := qb.Update(reservationsTable).
		Set("status", status).
		Where(sq.Eq{"id": reservationID})
	return errors.Wrap(s.exec(ctx, q, errs.ErrReservationNotFound), "SetReservationStatus")
}

func (s *store) SetReservationExpiry(ctx context.Context, reservationID int64, expiresAt time.Time) error {
	q := qb.Update(reservationsTable).
		Set("expires_at", expiresAt).
		Where(sq.Eq{"id": reservationID})
	return errors.Wrap(s.exec(ctx, q, errs.ErrReservationNotFound), "SetReservationExpiry")
}

func (s *store) DeleteReservation(ctx context.Context, reservationID int64) error {
	q := qb.Delete(reservationsTable).Where(sq.Eq{"id": reservationID})
	return errors.Wrap(s.exec(ctx, q, errs.ErrReservationNotFound), "DeleteReservation")
}

func reservationDetails() sq.SelectBuilder {
	return qb.Select(append(append([]string{}, reservationColumns...), "b.title AS book_title")...).
		From(reservationsTable + " r").
		Join(booksTable + " b ON b.id = r.book_id")
}

func (s *store) ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.ReservationDetails, error) {
	q := reservationDetails().OrderBy("r.created_at DESC", "r.id DESC")
	if f.UserID != 0 {
		q = q.Where(sq.Eq{"r.user_id": f.UserID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"r.status": f.Status})
	}
	if f.Search != "" {
		q = q.Where(sq.ILike{"b.title": "%" + f.Search + "%"})
	}
	list, err := getAll[model.ReservationDetails](ctx, s, q)
	return list, errors.Wrap(err, "ListReservations")
}

func (s *store) ExpiredReservations(ctx context.Context, now time.Time) ([]model.ReservationDetails, error) {
	q := reservationDetails().
		Where(sq.Eq{"r.status": model.ReservationActive}).
		Where(sq.Lt{"r.expires_at": now}).
		OrderBy("r.expires_at", "r.id")
	list, err := getAll[model.ReservationDetails](ctx, s, q)
	return list, errors.Wrap(err, "ExpiredReservations")
}

func (s *store) ReservationHistory(ctx context.Context, userIDs []int64) ([]model.Reservation, error) {
	q := qb.Select(reservationColumns...).
		From(reservationsTable + " r").
		Where(sq.Eq{"r.user_id": userIDs}).
		OrderBy("r.created_at", "r.id")
	list, err := getAll[model.Reservation](ctx, s, q)
	return list, errors.Wrap(err, "ReservationHistory")
}
