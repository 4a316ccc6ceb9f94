package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Store is the set of queries a workflow step may run. Lock* methods take row locks
// that are held until the enclosing transaction ends.
type Store interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, bookID int64) error
	GetBook(ctx context.Context, bookID int64) (model.Book, error)
	CopyCounts(ctx context.Context, bookID int64) (model.CopyCounts, error)
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)

	AddCopies(ctx context.Context, bookID int64, n int) ([]model.Copy, error)
	ListCopies(ctx context.Context, bookID int64) ([]model.Copy, error)
	LockCopy(ctx context.Context, copyID int64) (model.Copy, error)
	ClaimCopy(ctx context.Context, bookID int64, status model.CopyStatus) (model.Copy, error)
	LockReservedCopy(ctx context.Context, bookID int64) (model.Copy, error)
	SetCopyStatus(ctx context.Context, copyID int64, status model.CopyStatus) error

	CreateReservation(ctx context.Context, r model.Reservation) (model.Reservation, error)
	LockReservation(ctx context.Context, reservationID int64) (model.Reservation, error)
	HasActiveReservation(ctx context.Context, userID, bookID int64) (bool, error)
	LatestActiveReservation(ctx context.Context, userID, bookID int64, notAfter time.Time) (model.Reservation, error)
	SetReservationStatus(ctx context.Context, reservationID int64, status model.ReservationStatus) error
	SetReservationExpiry(ctx context.Context, reservationID int64, expiresAt time.Time) error
	DeleteReservation(ctx context.Context, reservationID int64) error
	ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.ReservationDetails, error)
	ExpiredReservations(ctx context.Context, now time.Time) ([]model.ReservationDetails, error)
	ReservationHistory(ctx context.Context, userIDs []int64) ([]model.Reservation, error)

	CreateRental(ctx context.Context, r model.Rental) (model.Rental, error)
	LockRental(ctx context.Context, rentalID int64) (model.RentalRecord, error)
	HasOpenRental(ctx context.Context, userID, bookID int64) (bool, error)
	SetRentalDueDate(ctx context.Context, rentalID int64, due time.Time) error
	CreateReturn(ctx context.Context, ret model.Return) (model.Return, error)
	RentalHistory(ctx context.Context, userIDs []int64) ([]model.RentalRecord, error)
	OverdueRentals(ctx context.Context, now time.Time) ([]model.RentalDetails, error)
}

type Repository interface {
	Store
	// WithTx runs fn in one read committed transaction, rolled back when fn returns an error.
	WithTx(ctx context.Context, fn func(Store) error) error
}

type repository struct {
	*store
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	log = log.Named("repo")
	return &repository{
		store: &store{q: pool, log: log},
		pool:  pool,
	}, nil
}

func (r *repository) WithTx(ctx context.Context, fn func(Store) error) error {
	return pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(&store{q: tx, log: r.log})
	})
}

const (
	booksTable        = `books`
	copiesTable       = `copies`
	reservationsTable = `reservations`
	rentalsTable      = `rentals`
	returnsTable      = `returns`
)

const (
	activeReservationKey = "reservations_active_user_book_key"
	returnRentalKey      = "returns_rental_id_key"
	bookISBNKey          = "books_isbn_key"
	bookAuthorFK         = "books_author_id_fkey"
	bookGenreFK          = "books_genre_id_fkey"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// translate maps constraint violations onto workflow errors.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case activeReservationKey:
			return errs.ErrDuplicateActiveReservation
		case returnRentalKey:
			return errs.ErrAlreadyReturned
		case bookISBNKey:
			return errs.ErrDuplicateISBN
		}
	case pgerrcode.ForeignKeyViolation:
		switch pgErr.ConstraintName {
		case bookAuthorFK, bookGenreFK:
			return errs.ErrInvalidReference
		default:
			return errs.ErrBookNotFound
		}
	}
	return err
}

func getOne[T any](ctx context.Context, s *store, q sq.Sqlizer, notFound error) (T, error) {
	var v T
	query, args, err := q.ToSql()
	if err != nil {
		return v, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return v, translate(err)
	}
	v, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return v, notFound
	}
	if err != nil {
		s.log.Debug("query", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return v, translate(err)
	}
	return v, nil
}

func getAll[T any](ctx context.Context, s *store, q sq.Sqlizer) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		s.log.Error("query", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func (s *store) exists(ctx context.Context, q sq.SelectBuilder) (bool, error) {
	query, args, err := q.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}
	var ok bool
	if err = s.q.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// exec runs a write and reports notFound when no row matched.
func (s *store) exec(ctx context.Context, q sq.Sqlizer, notFound error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	tag, err := s.q.Exec(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 && notFound != nil {
		return notFound
	}
	return nil
}
