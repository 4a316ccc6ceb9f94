package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
)

type memData struct {
	seq          int64
	books        map[int64]model.Book
	copies       map[int64]model.Copy
	reservations map[int64]model.Reservation
	rentals      map[int64]model.Rental
	returns      map[int64]model.Return // by rental id
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (d *memData) clone() *memData {
	return &memData{
		seq:          d.seq,
		books:        cloneMap(d.books),
		copies:       cloneMap(d.copies),
		reservations: cloneMap(d.reservations),
		rentals:      cloneMap(d.rentals),
		returns:      cloneMap(d.returns),
	}
}

func (d *memData) next() int64 {
	d.seq++
	return d.seq
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// memStore applies writes to a private snapshot while in a transaction. A single mutex
// serializes whole transactions, so tests on it check workflow outcomes but never exercise
// row locking: ClaimCopy and LockReservedCopy cannot observe a row held by another
// transaction. Lock behaviour is covered against Postgres in the integration suite.
type memStore struct {
	mu   *sync.Mutex
	d    *memData
	inTx bool
}

type memRepo struct {
	*memStore
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{memStore: &memStore{
		mu: &sync.Mutex{},
		d: &memData{
			books:        map[int64]model.Book{},
			copies:       map[int64]model.Copy{},
			reservations: map[int64]model.Reservation{},
			rentals:      map[int64]model.Rental{},
			returns:      map[int64]model.Return{},
		},
	}}
}

func (r *memRepo) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.d.clone()
	if err := fn(&memStore{mu: r.mu, d: snap, inTx: true}); err != nil {
		return err
	}
	*r.d = *snap
	return nil
}

func (s *memStore) guard() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *memStore) CreateBook(_ context.Context, book model.Book) (model.Book, error) {
	defer s.guard()()
	for _, b := range s.d.books {
		if b.ISBN == book.ISBN {
			return model.Book{}, errs.ErrDuplicateISBN
		}
	}
	book.ID = s.d.next()
	s.d.books[book.ID] = book
	return book, nil
}

func (s *memStore) UpdateBook(_ context.Context, book model.Book) (model.Book, error) {
	defer s.guard()()
	if _, ok := s.d.books[book.ID]; !ok {
		return model.Book{}, errs.ErrBookNotFound
	}
	s.d.books[book.ID] = book
	return book, nil
}

func (s *memStore) DeleteBook(_ context.Context, bookID int64) error {
	defer s.guard()()
	if _, ok := s.d.books[bookID]; !ok {
		return errs.ErrBookNotFound
	}
	delete(s.d.books, bookID)
	for id, c := range s.d.copies {
		if c.BookID == bookID {
			delete(s.d.copies, id)
		}
	}
	for id, r := range s.d.reservations {
		if r.BookID == bookID {
			delete(s.d.reservations, id)
		}
	}
	for id, r := range s.d.rentals {
		if r.BookID == bookID {
			delete(s.d.rentals, id)
			delete(s.d.returns, id)
		}
	}
	return nil
}

func (s *memStore) GetBook(_ context.Context, bookID int64) (model.Book, error) {
	defer s.guard()()
	b, ok := s.d.books[bookID]
	if !ok {
		return model.Book{}, errs.ErrBookNotFound
	}
	return b, nil
}

func (s *memStore) counts(bookID int64) model.CopyCounts {
	var c model.CopyCounts
	for _, cp := range s.d.copies {
		if cp.BookID != bookID {
			continue
		}
		c.Total++
		switch cp.Status {
		case model.CopyAvailable:
			c.Available++
		case model.CopyReserved:
			c.Reserved++
		case model.CopyRented:
			c.Rented++
		case model.CopyDamaged:
			c.Damaged++
		case model.CopyLost:
			c.Lost++
		}
	}
	return c
}

func (s *memStore) CopyCounts(_ context.Context, bookID int64) (model.CopyCounts, error) {
	defer s.guard()()
	return s.counts(bookID), nil
}

func (s *memStore) ListBooks(_ context.Context, f model.BookFilter) (model.ListBooks, error) {
	defer s.guard()()
	list := model.ListBooks{Paging: model.Paging{Page: f.Page, PageSize: f.Size}, Items: []model.BookInventory{}}
	for _, id := range sortedKeys(s.d.books) {
		b := s.d.books[id]
		if f.Search != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(f.Search)) {
			continue
		}
		c := s.counts(id)
		if f.Availability == model.AvailabilityAvailable && c.Available == 0 ||
			f.Availability == model.AvailabilityUnavailable && c.Available != 0 {
			continue
		}
		list.Items = append(list.Items, model.BookInventory{Book: b, Copies: c})
	}
	list.TotalElements = len(list.Items)
	return list, nil
}

func (s *memStore) AddCopies(_ context.Context, bookID int64, n int) ([]model.Copy, error) {
	defer s.guard()()
	if _, ok := s.d.books[bookID]; !ok {
		return nil, errs.ErrBookNotFound
	}
	out := make([]model.Copy, 0, n)
	for i := 0; i < n; i++ {
		cp := model.Copy{ID: s.d.next(), BookID: bookID, Status: model.CopyAvailable}
		s.d.copies[cp.ID] = cp
		out = append(out, cp)
	}
	return out, nil
}

func (s *memStore) ListCopies(_ context.Context, bookID int64) ([]model.Copy, error) {
	defer s.guard()()
	var out []model.Copy
	for _, id := range sortedKeys(s.d.copies) {
		if cp := s.d.copies[id]; cp.BookID == bookID {
			out = append(out, cp)
		}
	}
	return out, nil
}

func (s *memStore) LockCopy(_ context.Context, copyID int64) (model.Copy, error) {
	defer s.guard()()
	cp, ok := s.d.copies[copyID]
	if !ok {
		return model.Copy{}, errs.ErrCopyNotFound
	}
	return cp, nil
}

func (s *memStore) ClaimCopy(_ context.Context, bookID int64, status model.CopyStatus) (model.Copy, error) {
	defer s.guard()()
	for _, id := range sortedKeys(s.d.copies) {
		if cp := s.d.copies[id]; cp.BookID == bookID && cp.Status == status {
			return cp, nil
		}
	}
	return model.Copy{}, errs.ErrCopyNotFound
}

func (s *memStore) LockReservedCopy(ctx context.Context, bookID int64) (model.Copy, error) {
	return s.ClaimCopy(ctx, bookID, model.CopyReserved)
}

func (s *memStore) SetCopyStatus(_ context.Context, copyID int64, status model.CopyStatus) error {
	defer s.guard()()
	cp, ok := s.d.copies[copyID]
	if !ok {
		return errs.ErrCopyNotFound
	}
	cp.Status = status
	s.d.copies[copyID] = cp
	return nil
}

func (s *memStore) activeExists(userID, bookID int64) bool {
	for _, r := range s.d.reservations {
		if r.UserID == userID && r.BookID == bookID && r.Status == model.ReservationActive {
			return true
		}
	}
	return false
}

func (s *memStore) CreateReservation(_ context.Context, r model.Reservation) (model.Reservation, error) {
	defer s.guard()()
	if r.Status == model.ReservationActive && s.activeExists(r.UserID, r.BookID) {
		return model.Reservation{}, errs.ErrDuplicateActiveReservation
	}
	r.ID = s.d.next()
	s.d.reservations[r.ID] = r
	return r, nil
}

func (s *memStore) LockReservation(_ context.Context, reservationID int64) (model.Reservation, error) {
	defer s.guard()()
	r, ok := s.d.reservations[reservationID]
	if !ok {
		return model.Reservation{}, errs.ErrReservationNotFound
	}
	return r, nil
}

func (s *memStore) HasActiveReservation(_ context.Context, userID, bookID int64) (bool, error) {
	defer s.guard()()
	return s.activeExists(userID, bookID), nil
}

func (s *memStore) LatestActiveReservation(_ context.Context, userID, bookID int64, notAfter time.Time) (model.Reservation, error) {
	defer s.guard()()
	var (
		best  model.Reservation
		found bool
	)
	for _, id := range sortedKeys(s.d.reservations) {
		r := s.d.reservations[id]
		if r.UserID != userID || r.BookID != bookID || r.Status != model.ReservationActive || r.CreatedAt.After(notAfter) {
			continue
		}
		if !found || !r.CreatedAt.Before(best.CreatedAt) {
			best, found = r, true
		}
	}
	if !found {
		return model.Reservation{}, errs.ErrReservationNotFound
	}
	return best, nil
}

func (s *memStore) SetReservationStatus(_ context.Context, reservationID int64, status model.ReservationStatus) error {
	defer s.guard()()
	r, ok := s.d.reservations[reservationID]
	if !ok {
		return errs.ErrReservationNotFound
	}
	r.Status = status
	s.d.reservations[reservationID] = r
	return nil
}

func (s *memStore) SetReservationExpiry(_ context.Context, reservationID int64, expiresAt time.Time) error {
	defer s.guard()()
	r, ok := s.d.reservations[reservationID]
	if !ok {
		return errs.ErrReservationNotFound
	}
	r.ExpiresAt = expiresAt
	s.d.reservations[reservationID] = r
	return nil
}

func (s *memStore) DeleteReservation(_ context.Context, reservationID int64) error {
	defer s.guard()()
	if _, ok := s.d.reservations[reservationID]; !ok {
		return errs.ErrReservationNotFound
	}
	delete(s.d.reservations, reservationID)
	return nil
}

func (s *memStore) details(r model.Reservation) model.ReservationDetails {
	return model.ReservationDetails{Reservation: r, BookTitle: s.d.books[r.BookID].Title}
}

func (s *memStore) ListReservations(_ context.Context, f model.ReservationFilter) ([]model.ReservationDetails, error) {
	defer s.guard()()
	var out []model.ReservationDetails
	keys := sortedKeys(s.d.reservations)
	for i := len(keys) - 1; i >= 0; i-- {
		r := s.d.reservations[keys[i]]
		if f.UserID != 0 && r.UserID != f.UserID || f.Status != "" && r.Status != f.Status {
			continue
		}
		d := s.details(r)
		if f.Search != "" && !strings.Contains(strings.ToLower(d.BookTitle), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *memStore) ExpiredReservations(_ context.Context, now time.Time) ([]model.ReservationDetails, error) {
	defer s.guard()()
	var out []model.ReservationDetails
	for _, id := range sortedKeys(s.d.reservations) {
		if r := s.d.reservations[id]; r.Status == model.ReservationActive && r.ExpiresAt.Before(now) {
			out = append(out, s.details(r))
		}
	}
	return out, nil
}

func inUsers(id int64, ids []int64) bool {
	for _, u := range ids {
		if u == id {
			return true
		}
	}
	return false
}

func (s *memStore) ReservationHistory(_ context.Context, userIDs []int64) ([]model.Reservation, error) {
	defer s.guard()()
	var out []model.Reservation
	for _, id := range sortedKeys(s.d.reservations) {
		if r := s.d.reservations[id]; inUsers(r.UserID, userIDs) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) CreateRental(_ context.Context, r model.Rental) (model.Rental, error) {
	defer s.guard()()
	r.ID = s.d.next()
	s.d.rentals[r.ID] = r
	return r, nil
}

func (s *memStore) record(r model.Rental) model.RentalRecord {
	rec := model.RentalRecord{Rental: r}
	if ret, ok := s.d.returns[r.ID]; ok {
		at := ret.ReturnedAt
		rec.ReturnedAt = &at
	}
	return rec
}

func (s *memStore) LockRental(_ context.Context, rentalID int64) (model.RentalRecord, error) {
	defer s.guard()()
	r, ok := s.d.rentals[rentalID]
	if !ok {
		return model.RentalRecord{}, errs.ErrRentalNotFound
	}
	return s.record(r), nil
}

func (s *memStore) HasOpenRental(_ context.Context, userID, bookID int64) (bool, error) {
	defer s.guard()()
	for id, r := range s.d.rentals {
		if _, returned := s.d.returns[id]; r.UserID == userID && r.BookID == bookID && !returned {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) SetRentalDueDate(_ context.Context, rentalID int64, due time.Time) error {
	defer s.guard()()
	r, ok := s.d.rentals[rentalID]
	if !ok {
		return errs.ErrRentalNotFound
	}
	r.DueDate = due
	s.d.rentals[rentalID] = r
	return nil
}

func (s *memStore) CreateReturn(_ context.Context, ret model.Return) (model.Return, error) {
	defer s.guard()()
	if _, ok := s.d.returns[ret.RentalID]; ok {
		return model.Return{}, errs.ErrAlreadyReturned
	}
	ret.ID = s.d.next()
	s.d.returns[ret.RentalID] = ret
	return ret, nil
}

func (s *memStore) RentalHistory(_ context.Context, userIDs []int64) ([]model.RentalRecord, error) {
	defer s.guard()()
	var out []model.RentalRecord
	for _, id := range sortedKeys(s.d.rentals) {
		if r := s.d.rentals[id]; inUsers(r.UserID, userIDs) {
			out = append(out, s.record(r))
		}
	}
	return out, nil
}

func (s *memStore) OverdueRentals(_ context.Context, now time.Time) ([]model.RentalDetails, error) {
	defer s.guard()()
	var out []model.RentalDetails
	for _, id := range sortedKeys(s.d.rentals) {
		r := s.d.rentals[id]
		if _, returned := s.d.returns[id]; returned || !r.DueDate.Before(now) {
			continue
		}
		out = append(out, model.RentalDetails{Rental: r, BookTitle: s.d.books[r.BookID].Title})
	}
	return out, nil
}

// returnRows counts stored returns for a rental.
func (r *memRepo) returnRows(rentalID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.d.returns[rentalID]; ok {
		return 1
	}
	return 0
}
