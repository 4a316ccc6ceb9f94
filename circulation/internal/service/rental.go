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

// IssueBook binds a Reserved copy of the reservation's book to its user. The reservation
// stays Active until the rental is returned.
func (s *Service) IssueBook(ctx context.Context, staffID, reservationID int64, dueDate time.Time) (model.Rental, error) {
	var rental model.Rental
	err := s.repo.WithTx(ctx, func(tx repository.Store) error {
		res, err := tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
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
		cp, err := tx.ClaimCopy(ctx, res.BookID, model.CopyReserved)
		if err != nil {
			if errors.Is(err, errs.ErrCopyNotFound) {
				return errs.ErrNoReservedCopy
			}
			return err
		}
		now := s.clock()
		if !dueDate.After(now) {
			return errs.ErrInvalidDueDate
		}

		rental, err = tx.CreateRental(ctx, model.Rental{
			CopyID:    cp.ID,
			BookID:    res.BookID,
			UserID:    res.UserID,
			StaffID:   staffID,
			StartedAt: now,
			DueDate:   dueDate,
		})
		if err != nil {
			return err
		}
		return tx.SetCopyStatus(ctx, cp.ID, model.CopyRented)
	})
	if err != nil {
		return model.Rental{}, errors.Wrap(err, "IssueBook")
	}
	s.log.Debug("issued", zap.Int64("rentalId", rental.ID), zap.Int64("copyId", rental.CopyID))

	ev := kafka.NewEvent(kafka.EventIssued, rental.StartedAt)
	ev.UserID, ev.StaffID, ev.BookID = rental.UserID, staffID, rental.BookID
	ev.CopyID, ev.ReservationID, ev.RentalID = rental.CopyID, reservationID, rental.ID
	s.publish(ctx, ev)
	return rental, nil
}

// ProcessReturn closes the rental, frees its copy and completes the reservation the rental
// most likely came from.
func (s *Service) ProcessReturn(ctx context.Context, staffID, rentalID int64) (model.Return, error) {
	var (
		ret    model.Return
		rental model.RentalRecord
	)
	err := s.repo.WithTx(ctx, func(tx repository.Store) (err error) {
		rental, err = tx.LockRental(ctx, rentalID)
		if err != nil {
			return err
		}
		if !rental.Open() {
			return errs.ErrAlreadyReturned
		}
		ret, err = tx.CreateReturn(ctx, model.Return{
			RentalID:   rental.ID,
			StaffID:    staffID,
			ReturnedAt: s.clock(),
		})
		if err != nil {
			return err
		}
		if err = tx.SetCopyStatus(ctx, rental.CopyID, model.CopyAvailable); err != nil {
			return err
		}

		res, err := tx.LatestActiveReservation(ctx, rental.UserID, rental.BookID, rental.StartedAt)
		if errors.Is(err, errs.ErrReservationNotFound) {
			s.log.Warn("return without traceable reservation",
				zap.Int64("rentalId", rental.ID), zap.Int64("userId", rental.UserID), zap.Int64("bookId", rental.BookID))
			return nil
		}
		if err != nil {
			return err
		}
		return tx.SetReservationStatus(ctx, res.ID, model.ReservationCompleted)
	})
	if err != nil {
		return model.Return{}, errors.Wrap(err, "ProcessReturn")
	}

	ev := kafka.NewEvent(kafka.EventReturned, ret.ReturnedAt)
	ev.UserID, ev.StaffID, ev.BookID = rental.UserID, staffID, rental.BookID
	ev.CopyID, ev.RentalID = rental.CopyID, rental.ID
	s.publish(ctx, ev)
	return ret, nil
}
