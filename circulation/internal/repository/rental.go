package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

var rentalColumns = []string{
	"rt.id", "rt.copy_id", "c.book_id", "rt.user_id", "rt.staff_id", "rt.started_at", "rt.due_date",
}

func rentalRecords() sq.SelectBuilder {
	return qb.Select(append(append([]string{}, rentalColumns...), "ret.returned_at")...).
		From(rentalsTable + " rt").
		Join(copiesTable + " c ON c.id = rt.copy_id").
		LeftJoin(returnsTable + " ret ON ret.rental_id = rt.id")
}

func (s *store) CreateRental(ctx context.Context, r model.Rental) (model.Rental, error) {
	query, args, err := qb.Insert(rentalsTable).
		Columns("copy_id", "user_id", "staff_id", "started_at", "due_date").
		Values(r.CopyID, r.UserID, r.StaffID, r.StartedAt, r.DueDate).
		Suffix("RETURNING id, started_at, due_date").
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}
	if err = s.q.QueryRow(ctx, query, args...).Scan(&r.ID, &r.StartedAt, &r.DueDate); err != nil {
		return model.Rental{}, errors.Wrap(translate(err), "CreateRental")
	}
	return r, nil
}

func (s *store) LockRental(ctx context.Context, rentalID int64) (model.RentalRecord, error) {
	q := rentalRecords().
		Where(sq.Eq{"rt.id": rentalID}).
		Suffix("FOR UPDATE OF rt")
	rec, err := getOne[model.RentalRecord](ctx, s, q, errs.ErrRentalNotFound)
	return rec, errors.Wrap(err, "LockRental")
}

// HasOpenRental reports whether the pair has a rental with no return.
func (s *store) HasOpenRental(ctx context.Context, userID, bookID int64) (bool, error) {
	q := qb.Select("1").
		From(rentalsTable + " rt").
		Join(copiesTable + " c ON c.id = rt.copy_id").
		LeftJoin(returnsTable + " ret ON ret.rental_id = rt.id").
		Where(sq.Eq{"rt.user_id": userID, "c.book_id": bookID, "ret.id": nil})
	ok, err := s.exists(ctx, q)
	return ok, errors.Wrap(err, "HasOpenRental")
}

func (s *store) SetRentalDueDate(ctx context.Context, rentalID int64, due time.Time) error {
	q := qb.Update(rentalsTable).
		Set("due_date", due).
		Where(sq.Eq{"id": rentalID})
	return errors.Wrap(s.exec(ctx, q, errs.ErrRentalNotFound), "SetRentalDueDate")
}

func (s *store) CreateReturn(ctx context.Context, ret model.Return) (model.Return, error) {
	q := qb.Insert(returnsTable).
		Columns("rental_id", "staff_id", "returned_at").
		Values(ret.RentalID, ret.StaffID, ret.ReturnedAt).
		Suffix("RETURNING id, rental_id, staff_id, returned_at")
	res, err := getOne[model.Return](ctx, s, q, errs.ErrRentalNotFound)
	return res, errors.Wrap(err, "CreateReturn")
}

func (s *store) RentalHistory(ctx context.Context, userIDs []int64) ([]model.RentalRecord, error) {
	q := rentalRecords().
		Where(sq.Eq{"rt.user_id": userIDs}).
		OrderBy("rt.started_at", "rt.id")
	list, err := getAll[model.RentalRecord](ctx, s, q)
	return list, errors.Wrap(err, "RentalHistory")
}

func (s *store) OverdueRentals(ctx context.Context, now time.Time) ([]model.RentalDetails, error) {
	q := qb.Select(append(append([]string{}, rentalColumns...), "b.title AS book_title")...).
		From(rentalsTable + " rt").
		Join(copiesTable + " c ON c.id = rt.copy_id").
		Join(booksTable + " b ON b.id = c.book_id").
		LeftJoin(returnsTable + " ret ON ret.rental_id = rt.id").
		Where(sq.Eq{"ret.id": nil}).
		Where(sq.Lt{"rt.due_date": now}).
		OrderBy("rt.due_date", "rt.id")
	list, err := getAll[model.RentalDetails](ctx, s, q)
	return list, errors.Wrap(err, "OverdueRentals")
}
