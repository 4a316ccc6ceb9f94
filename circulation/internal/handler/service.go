package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	Reserve(ctx context.Context, userID, bookID int64) (model.Reservation, error)
	CancelReservation(ctx context.Context, userID, reservationID int64) (model.Reservation, error)
	IssueBook(ctx context.Context, staffID, reservationID int64, dueDate time.Time) (model.Rental, error)
	ProcessReturn(ctx context.Context, staffID, rentalID int64) (model.Return, error)
	DeleteReservation(ctx context.Context, reservationID int64) error
	UpdateReservationDates(ctx context.Context, reservationID int64, req model.UpdateDatesRequest) error
	ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.ReservationView, error)
	ListOverdue(ctx context.Context) (model.OverdueReport, error)
}

type CatalogService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.BookInventory, error)
	UpdateBook(ctx context.Context, bookID int64, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookID int64) error
	GetBook(ctx context.Context, bookID int64) (model.BookInventory, error)
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	AddCopies(ctx context.Context, bookID int64, n int) ([]model.Copy, error)
	ListCopies(ctx context.Context, bookID int64) ([]model.Copy, error)
	SetCopyStatus(ctx context.Context, copyID int64, status model.CopyStatus) (model.Copy, error)
}

type Service interface {
	CirculationService
	CatalogService
}

var _ Service = (*service.Service)(nil)
