package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

func bookFrom(isbn, title string, authorID, genreID int64, published *model.Date, cover string) model.Book {
	b := model.Book{ISBN: isbn, Title: title, AuthorID: authorID, GenreID: genreID}
	if published != nil {
		t := published.Time
		b.PublicationDate = &t
	}
	if cover != "" {
		b.CoverImageURL = &cover
	}
	return b
}

// CreateBook adds the book with its initial Available copies.
func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.BookInventory, error) {
	var inv model.BookInventory
	err := s.repo.WithTx(ctx, func(tx repository.Store) (err error) {
		inv.Book, err = tx.CreateBook(ctx, bookFrom(req.ISBN, req.Title, req.AuthorID, req.GenreID, req.PublicationDate, req.CoverImageURL))
		if err != nil {
			return err
		}
		copies, err := tx.AddCopies(ctx, inv.ID, req.Copies)
		if err != nil {
			return err
		}
		inv.Copies = model.CopyCounts{Total: len(copies), Available: len(copies)}
		return nil
	})
	if err != nil {
		return model.BookInventory{}, errors.Wrap(err, "CreateBook")
	}
	return inv, nil
}

func (s *Service) UpdateBook(ctx context.Context, bookID int64, req model.UpdateBookRequest) (model.Book, error) {
	b := bookFrom(req.ISBN, req.Title, req.AuthorID, req.GenreID, req.PublicationDate, req.CoverImageURL)
	b.ID = bookID
	book, err := s.repo.UpdateBook(ctx, b)
	return book, errors.Wrap(err, "UpdateBook")
}

func (s *Service) DeleteBook(ctx context.Context, bookID int64) error {
	return errors.Wrap(s.repo.DeleteBook(ctx, bookID), "DeleteBook")
}

func (s *Service) GetBook(ctx context.Context, bookID int64) (model.BookInventory, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BookInventory{}, errors.Wrap(err, "GetBook")
	}
	counts, err := s.repo.CopyCounts(ctx, bookID)
	if err != nil {
		return model.BookInventory{}, errors.Wrap(err, "GetBook")
	}
	return model.BookInventory{Book: book, Copies: counts}, nil
}

func (s *Service) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	list, err := s.repo.ListBooks(ctx, f)
	return list, errors.Wrap(err, "ListBooks")
}

func (s *Service) AddCopies(ctx context.Context, bookID int64, n int) ([]model.Copy, error) {
	var copies []model.Copy
	err := s.repo.WithTx(ctx, func(tx repository.Store) (err error) {
		if _, err = tx.GetBook(ctx, bookID); err != nil {
			return err
		}
		copies, err = tx.AddCopies(ctx, bookID, n)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "AddCopies")
	}
	return copies, nil
}

func (s *Service) ListCopies(ctx context.Context, bookID int64) ([]model.Copy, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return nil, errors.Wrap(err, "ListCopies")
	}
	copies, err := s.repo.ListCopies(ctx, bookID)
	return copies, errors.Wrap(err, "ListCopies")
}

// SetCopyStatus is the manual override for idle copies. Reserved and Rented copies
// belong to the workflow and cannot be changed here.
func (s *Service) SetCopyStatus(ctx context.Context, copyID int64, status model.CopyStatus) (model.Copy, error) {
	if !status.Manual() {
		return model.Copy{}, errs.ErrInvalidCopyStatus
	}
	var cp model.Copy
	err := s.repo.WithTx(ctx, func(tx repository.Store) (err error) {
		cp, err = tx.LockCopy(ctx, copyID)
		if err != nil {
			return err
		}
		if cp.Status == model.CopyReserved || cp.Status == model.CopyRented {
			return errs.ErrCopyBusy
		}
		cp.Status = status
		return tx.SetCopyStatus(ctx, cp.ID, status)
	})
	if err != nil {
		return model.Copy{}, errors.Wrap(err, "SetCopyStatus")
	}

	ev := kafka.NewEvent(kafka.EventCopyStatus, s.clock())
	ev.BookID, ev.CopyID, ev.CopyStatus = cp.BookID, cp.ID, string(cp.Status)
	s.publish(ctx, ev)
	return cp, nil
}
