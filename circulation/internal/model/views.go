package model

import "time"

// Phase is where a reservation stands, derived from its correlated rental and return.
type Phase string

const (
	PhaseReserved  Phase = "Reserved"
	PhaseRented    Phase = "Rented"
	PhaseReturned  Phase = "Returned"
	PhaseCancelled Phase = "Cancelled"
)

type ReservationView struct {
	Reservation ReservationDetails `json:"reservation"`
	Rental      *RentalRecord      `json:"rental,omitempty"`
	Phase       Phase              `json:"phase"`
	IsOverdue   bool               `json:"isOverdue"`
	IsExpired   bool               `json:"isExpired"`
}

type OverdueKind string

const (
	OverdueReservation OverdueKind = "reservation"
	OverdueRental      OverdueKind = "rental"
)

type OverdueItem struct {
	Kind         OverdueKind  `json:"type"`
	BookID       int64        `json:"bookId"`
	BookTitle    string       `json:"bookTitle"`
	UserID       int64        `json:"userId"`
	CopyID       int64        `json:"copyId,omitempty"`
	Reservation  *Reservation `json:"reservation,omitempty"`
	Rental       *Rental      `json:"rental,omitempty"`
	OverdueSince time.Time    `json:"overdueSince"`
}

type OverdueBookGroup struct {
	BookID    int64         `json:"bookId"`
	BookTitle string        `json:"bookTitle"`
	Items     []OverdueItem `json:"items"`
}

type OverdueUserGroup struct {
	UserID int64         `json:"userId"`
	Items  []OverdueItem `json:"items"`
}

type OverdueReport struct {
	ByBook     []OverdueBookGroup `json:"byBook"`
	ByUser     []OverdueUserGroup `json:"byUser"`
	TotalCount int                `json:"totalCount"`
}

func (p Phase) Valid() bool {
	switch p {
	case PhaseReserved, PhaseRented, PhaseReturned, PhaseCancelled:
		return true
	}
	return false
}
