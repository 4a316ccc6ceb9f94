package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

// Reserve claims an Available copy of the book for the user.
func (s *Service) Reserve(ctx context.Context, userID, bookID int64) (model.Reservation, error) {
	var res model.Reservation
	err := s.repo.WithTx(ctx, func(tx repository.Store) error {
		if _, err := tx.GetBook(ctx, bookID); err != nil {
			return err
		}
		cp, err := tx.ClaimCopy(ctx, bookID, model.CopyAvailable)
		if err != nil {
			if errors.Is(err, errs.ErrCopyNotFound) {
				return errs.ErrNoCopyAvailable
			}
			return err
		}
		active, err := tx.HasActiveReservation(ctx, userID, bookID)
		if err != nil {
			return err
		}
		if active {
			return errs.ErrDuplicateActiveReservation
		}

		now := s.clock()
		res, err = tx.CreateReservation(ctx, model.Reservation{
			UserID:    userID,
			BookID:    bookID,
			CreatedAt: now,
			ExpiresAt: now.Add(s.reservationTTL),
			Status:    model.ReservationActive,
		})
		if err != nil {
			return err
		}
		return tx.SetCopyStatus(ctx, cp.ID, model.CopyReserved)
	})
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "Reserve")
	}
	s.log.Debug("reserved", zap.Int64("reservationId", res.ID), zap.Int64("userId", userID), zap.Int64("bookId", bookID))

	ev := kafka.NewEvent(kafka.EventReserved, res.CreatedAt)
	ev.UserID, ev.BookID, ev.ReservationID = userID, bookID, res.ID
	s.publish(ctx, ev)
	return res, nil
}

// CancelReservation releases one Reserved copy of the book. Copies of a book are fungible,
// so the released copy need not be the one claimed at reserve time.
func (s *Service) CancelReservation(ctx context.Context, userID, reservationID int64) (model.Reservation, error) {
	var res model.Reservation
	err := s.repo.WithTx(ctx, func(tx repository.Store) (err error) {
		res, err = tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.UserID != userID {
			return errs.ErrForbidden
		}
		if res.Status != model.ReservationActive {
			return errs.ErrReservationNotActive
		}
		open, err := tx.HasOpenRental(ctx, res.UserID, res.BookID)
		if err != nil {
			return err
		}
		if open {
			return errs.ErrAlreadyIssued
		}
		if err = s.releaseReservedCopy(ctx, tx, res.BookID); err != nil {
			return err
		}
		res.Status = model.ReservationCancelled
		return tx.SetReservationStatus(ctx, res.ID, model.ReservationCancelled)
	})
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "CancelReservation")
	}

	ev := kafka.NewEvent(kafka.EventReservationCancel, s.clock())
	ev.UserID, ev.BookID, ev.ReservationID = res.UserID, res.BookID, res.ID
	s.publish(ctx, ev)
	return res, nil
}

// releaseReservedCopy flips one Reserved copy back to Available. It waits on copies locked
// by other transactions instead of skipping them, so only a book with no Reserved copy at
// all releases nothing.
func (s *Service) releaseReservedCopy(ctx context.Context, tx repository.Store, bookID int64) error {
	cp, err := tx.LockReservedCopy(ctx, bookID)
	if errors.Is(err, errs.ErrCopyNotFound) {
		s.log.Warn("no reserved copy to release", zap.Int64("bookId", bookID))
		return nil
	}
	if err != nil {
		return err
	}
	return tx.SetCopyStatus(ctx, cp.ID, model.CopyAvailable)
}

// DeleteReservation removes a reservation that never turned into an open rental.
func (s *Service) DeleteReservation(ctx context.Context, reservationID int64) error {
	var res model.Reservation
	err := s.repo.WithTx(ctx, func(tx repository.Store) (err error) {
		res, err = tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		open, err := tx.HasOpenRental(ctx, res.UserID, res.BookID)
		if err != nil {
			return err
		}
		if open {
			return errs.ErrOpenRental
		}
		if res.Status == model.ReservationActive {
			if err = s.releaseReservedCopy(ctx, tx, res.BookID); err != nil {
				return err
			}
		}
		return tx.DeleteReservation(ctx, res.ID)
	})
	if err != nil {
		return errors.Wrap(err, "DeleteReservation")
	}

	ev := kafka.NewEvent(kafka.EventReservationDeleted, s.clock())
	ev.UserID, ev.BookID, ev.ReservationID = res.UserID, res.BookID, res.ID
	s.publish(ctx, ev)
	return nil
}

// UpdateReservationDates moves the reservation expiry and/or the due date of the rental the
// reservation is matched to. Dates are calendar days, effective at their last second.
func (s *Service) UpdateReservationDates(ctx context.Context, reservationID int64, req model.UpdateDatesRequest) error {
	if req.ExpiresAt == nil && req.DueDate == nil {
		return errs.ErrNothingToUpdate
	}
	err := s.repo.WithTx(ctx, func(tx repository.Store) error {
		res, err := tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if req.ExpiresAt != nil {
			expiresAt := req.ExpiresAt.EndOfDay()
			if expiresAt.Before(res.CreatedAt) {
				return errs.ErrInvalidExpiry
			}
			if err = tx.SetReservationExpiry(ctx, res.ID, expiresAt); err != nil {
				return err
			}
		}
		if req.DueDate != nil {
			return s.updateDueDate(ctx, tx, res, req.DueDate.EndOfDay())
		}
		return nil
	})
	return errors.Wrap(err, "UpdateReservationDates")
}

func (s *Service) updateDueDate(ctx context.Context, tx repository.Store, res model.Reservation, due time.Time) error {
	history, err := tx.RentalHistory(ctx, []int64{res.UserID})
	if err != nil {
		return err
	}
	rental, ok := MatchRental(res, history)
	if !ok {
		return errs.ErrRentalNotFound
	}
	if !rental.Open() {
		return errs.ErrAlreadyReturned
	}
	if !due.After(s.clock()) {
		return errs.ErrInvalidDueDate
	}
	return tx.SetRentalDueDate(ctx, rental.ID, due)
}
