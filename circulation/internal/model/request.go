package model

import (
	"strings"
	"time"
)

// Date is a calendar day in YYYY-MM-DD form.
type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	if s == "null" {
		return nil
	}
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = date
	return
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

// EndOfDay is the last second of the day in UTC, the instant a due date or expiry refers to.
func (d Date) EndOfDay() time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, 0, time.UTC)
}

type CreateBookRequest struct {
	ISBN            string `json:"isbn" validate:"required,max=13"`
	Title           string `json:"title" validate:"required,max=255"`
	AuthorID        int64  `json:"authorId" validate:"required,gt=0"`
	GenreID         int64  `json:"genreId" validate:"required,gt=0"`
	PublicationDate *Date  `json:"publicationDate"`
	CoverImageURL   string `json:"coverImageUrl" validate:"omitempty,url,max=500"`
	Copies          int    `json:"copies" validate:"required,min=1"`
}

type UpdateBookRequest struct {
	ISBN            string `json:"isbn" validate:"required,max=13"`
	Title           string `json:"title" validate:"required,max=255"`
	AuthorID        int64  `json:"authorId" validate:"required,gt=0"`
	GenreID         int64  `json:"genreId" validate:"required,gt=0"`
	PublicationDate *Date  `json:"publicationDate"`
	CoverImageURL   string `json:"coverImageUrl" validate:"omitempty,url,max=500"`
}

type AddCopiesRequest struct {
	Count int `json:"count" validate:"required,min=1,max=10"`
}

type SetCopyStatusRequest struct {
	Status CopyStatus `json:"status" validate:"required"`
}

type IssueRequest struct {
	DueDate Date `json:"dueDate"`
}

type UpdateDatesRequest struct {
	ExpiresAt *Date `json:"expiresAt"`
	DueDate   *Date `json:"dueDate"`
}

type Availability string

const (
	AvailabilityAny         Availability = ""
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

type BookFilter struct {
	Search       string
	AuthorID     int64
	GenreID      int64
	Availability Availability
	Page, Size   int
}

type ReservationSort string

const (
	SortTitle       ReservationSort = "title"
	SortTitleDesc   ReservationSort = "-title"
	SortCreated     ReservationSort = "created"
	SortCreatedDesc ReservationSort = "-created"
	SortExpiry      ReservationSort = "expiry"
	SortExpiryDesc  ReservationSort = "-expiry"
	SortDue         ReservationSort = "due"
	SortDueDesc     ReservationSort = "-due"
)

func (s ReservationSort) Valid() bool {
	switch s {
	case SortTitle, SortTitleDesc, SortCreated, SortCreatedDesc,
		SortExpiry, SortExpiryDesc, SortDue, SortDueDesc:
		return true
	}
	return false
}

type ReservationFilter struct {
	// UserID restricts the listing to one user, zero lists everyone.
	UserID int64
	Status ReservationStatus
	Phase  Phase
	Search string
	Sort   ReservationSort
}
