package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

var bookColumns = []string{
	"b.id", "b.isbn", "b.title", "b.author_id", "b.genre_id", "b.publication_date", "b.cover_image_url",
}

const bookReturning = "RETURNING id, isbn, title, author_id, genre_id, publication_date, cover_image_url"

func countColumns() []string {
	cols := []string{"COUNT(c.id) AS total_copies"}
	for _, st := range []model.CopyStatus{
		model.CopyAvailable, model.CopyReserved, model.CopyRented, model.CopyDamaged, model.CopyLost,
	} {
		cols = append(cols, fmt.Sprintf("COUNT(c.id) FILTER (WHERE c.status = '%s') AS %s_copies", st, strings.ToLower(string(st))))
	}
	return cols
}

func (s *store) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q := qb.Insert(booksTable).
		Columns("isbn", "title", "author_id", "genre_id", "publication_date", "cover_image_url").
		Values(book.ISBN, book.Title, book.AuthorID, book.GenreID, book.PublicationDate, book.CoverImageURL).
		Suffix(bookReturning)
	b, err := getOne[model.Book](ctx, s, q, errs.ErrBookNotFound)
	return b, errors.Wrap(err, "CreateBook")
}

func (s *store) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q := qb.Update(booksTable).
		SetMap(map[string]any{
			"isbn":             book.ISBN,
			"title":            book.Title,
			"author_id":        book.AuthorID,
			"genre_id":         book.GenreID,
			"publication_date": book.PublicationDate,
			"cover_image_url":  book.CoverImageURL,
		}).
		Where(sq.Eq{"id": book.ID}).
		Suffix(bookReturning)
	b, err := getOne[model.Book](ctx, s, q, errs.ErrBookNotFound)
	return b, errors.Wrap(err, "UpdateBook")
}

// DeleteBook removes the book together with its copies and their circulation history.
func (s *store) DeleteBook(ctx context.Context, bookID int64) error {
	q := qb.Delete(booksTable).Where(sq.Eq{"id": bookID})
	return errors.Wrap(s.exec(ctx, q, errs.ErrBookNotFound), "DeleteBook")
}

func (s *store) GetBook(ctx context.Context, bookID int64) (model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTable + " b").
		Where(sq.Eq{"b.id": bookID})
	b, err := getOne[model.Book](ctx, s, q, errs.ErrBookNotFound)
	return b, errors.Wrap(err, "GetBook")
}

func (s *store) CopyCounts(ctx context.Context, bookID int64) (model.CopyCounts, error) {
	q := qb.Select(countColumns()...).
		From(copiesTable + " c").
		Where(sq.Eq{"c.book_id": bookID})
	counts, err := getOne[model.CopyCounts](ctx, s, q, errs.ErrBookNotFound)
	return counts, errors.Wrap(err, "CopyCounts")
}

type bookRow struct {
	model.Book
	model.CopyCounts
	TotalElements int `db:"total_elements"`
}

func (s *store) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	cols := append(append([]string{}, bookColumns...), countColumns()...)
	cols = append(cols, "COUNT(*) OVER () AS total_elements")
	q := qb.Select(cols...).
		From(booksTable + " b").
		LeftJoin(copiesTable + " c ON c.book_id = b.id").
		GroupBy("b.id").
		OrderBy("b.title", "b.id")

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(sq.Or{sq.ILike{"b.title": pattern}, sq.ILike{"b.isbn": pattern}})
	}
	if f.AuthorID != 0 {
		q = q.Where(sq.Eq{"b.author_id": f.AuthorID})
	}
	if f.GenreID != 0 {
		q = q.Where(sq.Eq{"b.genre_id": f.GenreID})
	}
	switch f.Availability {
	case model.AvailabilityAvailable:
		q = q.Having("COUNT(c.id) FILTER (WHERE c.status = ?) > 0", model.CopyAvailable)
	case model.AvailabilityUnavailable:
		q = q.Having("COUNT(c.id) FILTER (WHERE c.status = ?) = 0", model.CopyAvailable)
	}
	if f.Page != 0 && f.Size != 0 {
		q = q.Limit(uint64(f.Size)).Offset(uint64((f.Page - 1) * f.Size))
	}

	rows, err := getAll[bookRow](ctx, s, q)
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "ListBooks")
	}
	s.log.Debug("ListBooks", zap.Int("rows", len(rows)))

	list := model.ListBooks{
		Paging: model.Paging{Page: f.Page, PageSize: f.Size},
		Items:  make([]model.BookInventory, 0, len(rows)),
	}
	for _, r := range rows {
		list.TotalElements = r.TotalElements
		list.Items = append(list.Items, model.BookInventory{Book: r.Book, Copies: r.CopyCounts})
	}
	return list, nil
}

func (s *store) AddCopies(ctx context.Context, bookID int64, n int) ([]model.Copy, error) {
	q := qb.Insert(copiesTable).Columns("book_id", "status")
	for i := 0; i < n; i++ {
		q = q.Values(bookID, model.CopyAvailable)
	}
	cp, err := getAll[model.Copy](ctx, s, q.Suffix("RETURNING id, book_id, status"))
	if err != nil {
		return nil, errors.Wrap(translate(err), "AddCopies")
	}
	return cp, nil
}

func (s *store) ListCopies(ctx context.Context, bookID int64) ([]model.Copy, error) {
	q := qb.Select("id", "book_id", "status").
		From(copiesTable).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("id")
	cp, err := getAll[model.Copy](ctx, s, q)
	return cp, errors.Wrap(err, "ListCopies")
}

func (s *store) LockCopy(ctx context.Context, copyID int64) (model.Copy, error) {
	q := qb.Select("id", "book_id", "status").
		From(copiesTable).
		Where(sq.Eq{"id": copyID}).
		Suffix("FOR UPDATE")
	cp, err := getOne[model.Copy](ctx, s, q, errs.ErrCopyNotFound)
	return cp, errors.Wrap(err, "LockCopy")
}

// ClaimCopy locks one copy of the book in the given status. Copies already locked by
// a concurrent transaction are skipped, so two claimers never get the same row.
func (s *store) ClaimCopy(ctx context.Context, bookID int64, status model.CopyStatus) (model.Copy, error) {
	q := qb.Select("id", "book_id", "status").
		From(copiesTable).
		Where(sq.Eq{"book_id": bookID, "status": status}).
		OrderBy("id").
		Limit(1).
		Suffix("FOR UPDATE SKIP LOCKED")
	cp, err := getOne[model.Copy](ctx, s, q, errs.ErrCopyNotFound)
	return cp, errors.Wrap(err, "ClaimCopy")
}

// LockReservedCopy waits for the row locks on every Reserved copy of the book and returns
// the first copy still Reserved once they are held. Unlike ClaimCopy it never skips a row.
func (s *store) LockReservedCopy(ctx context.Context, bookID int64) (model.Copy, error) {
	q := qb.Select("id", "book_id", "status").
		From(copiesTable).
		Where(sq.Eq{"book_id": bookID, "status": model.CopyReserved}).
		OrderBy("id").
		Suffix("FOR UPDATE")
	copies, err := getAll[model.Copy](ctx, s, q)
	if err != nil {
		return model.Copy{}, errors.Wrap(err, "LockReservedCopy")
	}
	if len(copies) == 0 {
		return model.Copy{}, errs.ErrCopyNotFound
	}
	return copies[0], nil
}

func (s *store) SetCopyStatus(ctx context.Context, copyID int64, status model.CopyStatus) error {
	q := qb.Update(copiesTable).
		Set("status", status).
		Where(sq.Eq{"id": copyID})
	return errors.Wrap(s.exec(ctx, q, errs.ErrCopyNotFound), "SetCopyStatus")
}
