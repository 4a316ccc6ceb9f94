package model

import (
	"time"
)

type CopyStatus string

const (
	CopyAvailable CopyStatus = "Available"
	CopyReserved  CopyStatus = "Reserved"
	CopyRented    CopyStatus = "Rented"
	CopyDamaged   CopyStatus = "Damaged"
	CopyLost      CopyStatus = "Lost"
)

var CopyStatuses = []CopyStatus{CopyAvailable, CopyReserved, CopyRented, CopyDamaged, CopyLost}

func (s CopyStatus) Valid() bool {
	for _, st := range CopyStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Manual reports whether an admin may set the status directly.
// Reserved and Rented are only reachable through the workflow.
func (s CopyStatus) Manual() bool {
	return s == CopyAvailable || s == CopyDamaged || s == CopyLost
}

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "Active"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationCompleted ReservationStatus = "Completed"
)

func (s ReservationStatus) Valid() bool {
	return s == ReservationActive || s == ReservationCancelled || s == ReservationCompleted
}

type Book struct {
	ID              int64      `json:"id" db:"id"`
	ISBN            string     `json:"isbn" db:"isbn"`
	Title           string     `json:"title" db:"title"`
	AuthorID        int64      `json:"authorId" db:"author_id"`
	GenreID         int64      `json:"genreId" db:"genre_id"`
	PublicationDate *time.Time `json:"publicationDate,omitempty" db:"publication_date"`
	CoverImageURL   *string    `json:"coverImageUrl,omitempty" db:"cover_image_url"`
}

type CopyCounts struct {
	Total     int `json:"total" db:"total_copies"`
	Available int `json:"available" db:"available_copies"`
	Reserved  int `json:"reserved" db:"reserved_copies"`
	Rented    int `json:"rented" db:"rented_copies"`
	Damaged   int `json:"damaged" db:"damaged_copies"`
	Lost      int `json:"lost" db:"lost_copies"`
}

type BookInventory struct {
	Book   `json:",inline"`
	Copies CopyCounts `json:"copies"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []BookInventory `json:"items"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Copy struct {
	ID     int64      `json:"id" db:"id"`
	BookID int64      `json:"bookId" db:"book_id"`
	Status CopyStatus `json:"status" db:"status"`
}

type Reservation struct {
	ID        int64             `json:"id" db:"id"`
	UserID    int64             `json:"userId" db:"user_id"`
	BookID    int64             `json:"bookId" db:"book_id"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	ExpiresAt time.Time         `json:"expiresAt" db:"expires_at"`
	Status    ReservationStatus `json:"status" db:"status"`
}

type ReservationDetails struct {
	Reservation `json:",inline"`
	BookTitle   string `json:"bookTitle" db:"book_title"`
}

// Rental carries BookID from its copy so the (user, book) pair is available without another lookup.
type Rental struct {
	ID        int64     `json:"id" db:"id"`
	CopyID    int64     `json:"copyId" db:"copy_id"`
	BookID    int64     `json:"bookId" db:"book_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	StaffID   int64     `json:"staffId" db:"staff_id"`
	StartedAt time.Time `json:"startedAt" db:"started_at"`
	DueDate   time.Time `json:"dueDate" db:"due_date"`
}

type RentalRecord struct {
	Rental     `json:",inline"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
}

func (r RentalRecord) Open() bool { return r.ReturnedAt == nil }

type RentalDetails struct {
	Rental    `json:",inline"`
	BookTitle string `json:"bookTitle" db:"book_title"`
}

type Return struct {
	ID         int64     `json:"id" db:"id"`
	RentalID   int64     `json:"rentalId" db:"rental_id"`
	StaffID    int64     `json:"staffId" db:"staff_id"`
	ReturnedAt time.Time `json:"returnedAt" db:"returned_at"`
}

type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
