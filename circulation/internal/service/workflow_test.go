package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

const (
	reader  int64 = 11
	reader2 int64 = 12
	staff   int64 = 1
)

var base = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.EventCirculation
}

func (p *recordingPublisher) Publish(_ context.Context, ev kafka.EventCirculation) error {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
	return nil
}

func (p *recordingPublisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.EventType, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.EventType)
	}
	return out
}

type fixture struct {
	repo  *memRepo
	svc   *service.Service
	clock *fakeClock
	pub   *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:  newMemRepo(),
		clock: &fakeClock{t: base},
		pub:   &recordingPublisher{},
	}
	f.svc = service.NewService(f.repo, zap.NewNop(),
		service.WithClock(f.clock.Now),
		service.WithPublisher(f.pub),
	)
	return f
}

func (f *fixture) book(t *testing.T, isbn string, copies int) model.BookInventory {
	t.Helper()
	inv, err := f.svc.CreateBook(context.Background(), model.CreateBookRequest{
		ISBN: isbn, Title: "Book " + isbn, AuthorID: 1, GenreID: 1, Copies: copies,
	})
	require.NoError(t, err)
	return inv
}

func (f *fixture) counts(t *testing.T, bookID int64) model.CopyCounts {
	t.Helper()
	inv, err := f.svc.GetBook(context.Background(), bookID)
	require.NoError(t, err)
	c := inv.Copies
	require.Equal(t, c.Total, c.Available+c.Reserved+c.Rented+c.Damaged+c.Lost)
	return c
}

func (f *fixture) reservation(t *testing.T, id int64) model.Reservation {
	t.Helper()
	res, err := f.repo.LockReservation(context.Background(), id)
	require.NoError(t, err)
	return res
}

func TestWorkflow_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "111", 1)

	res, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	require.Equal(t, model.ReservationActive, res.Status)
	require.Equal(t, base.Add(7*24*time.Hour), res.ExpiresAt)
	require.Equal(t, model.CopyCounts{Total: 1, Reserved: 1}, f.counts(t, b.ID))

	f.clock.Advance(time.Hour)
	rental, err := f.svc.IssueBook(ctx, staff, res.ID, f.clock.Now().Add(3*24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, reader, rental.UserID)
	require.Equal(t, model.CopyCounts{Total: 1, Rented: 1}, f.counts(t, b.ID))
	require.Equal(t, model.ReservationActive, f.reservation(t, res.ID).Status)

	f.clock.Advance(24 * time.Hour)
	ret, err := f.svc.ProcessReturn(ctx, staff, rental.ID)
	require.NoError(t, err)
	require.Equal(t, rental.ID, ret.RentalID)

	require.Equal(t, model.CopyCounts{Total: 1, Available: 1}, f.counts(t, b.ID))
	require.Equal(t, model.ReservationCompleted, f.reservation(t, res.ID).Status)
	require.Equal(t, 1, f.repo.returnRows(rental.ID))
	require.Equal(t, []kafka.EventType{kafka.EventReserved, kafka.EventIssued, kafka.EventReturned}, f.pub.types())

	// a completed reservation no longer blocks reserving again
	_, err = f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
}

func TestWorkflow_DuplicateReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "222", 2)

	_, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	_, err = f.svc.Reserve(ctx, reader, b.ID)
	require.ErrorIs(t, err, errs.ErrDuplicateActiveReservation)
	require.Equal(t, model.CopyCounts{Total: 2, Available: 1, Reserved: 1}, f.counts(t, b.ID))
}

func TestWorkflow_ReserveNoCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "223", 1)

	_, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	_, err = f.svc.Reserve(ctx, reader2, b.ID)
	require.ErrorIs(t, err, errs.ErrNoCopyAvailable)

	_, err = f.svc.Reserve(ctx, reader, 999)
	require.ErrorIs(t, err, errs.ErrBookNotFound)
}

func TestWorkflow_ConcurrentReserve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "333", 1)

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errCh = make(chan error, 2)
	)
	for _, u := range []int64{reader, reader2} {
		wg.Add(1)
		go func(user int64) {
			defer wg.Done()
			<-start
			_, err := f.svc.Reserve(ctx, user, b.ID)
			errCh <- err
		}(u)
	}
	close(start)
	wg.Wait()
	close(errCh)

	var ok, noCopy int
	for err := range errCh {
		switch {
		case err == nil:
			ok++
		case errs.KindOf(err) == errs.KindInvariant:
			require.ErrorIs(t, err, errs.ErrNoCopyAvailable)
			noCopy++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, noCopy)
	require.Equal(t, model.CopyCounts{Total: 1, Reserved: 1}, f.counts(t, b.ID))
}

func TestWorkflow_ReturnIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "444", 2)

	res, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	rental, err := f.svc.IssueBook(ctx, staff, res.ID, base.Add(48*time.Hour))
	require.NoError(t, err)

	_, err = f.svc.ProcessReturn(ctx, staff, rental.ID)
	require.NoError(t, err)
	_, err = f.svc.ProcessReturn(ctx, staff, rental.ID)
	require.ErrorIs(t, err, errs.ErrAlreadyReturned)

	require.Equal(t, model.CopyCounts{Total: 2, Available: 2}, f.counts(t, b.ID))
	require.Equal(t, 1, f.repo.returnRows(rental.ID))
}

func TestWorkflow_IssueChecks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "555", 2)
	due := base.Add(72 * time.Hour)

	_, err := f.svc.IssueBook(ctx, staff, 404, due)
	require.ErrorIs(t, err, errs.ErrReservationNotFound)

	res, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)

	_, err = f.svc.IssueBook(ctx, staff, res.ID, base)
	require.ErrorIs(t, err, errs.ErrInvalidDueDate)
	require.Equal(t, model.CopyCounts{Total: 2, Available: 1, Reserved: 1}, f.counts(t, b.ID))

	_, err = f.svc.IssueBook(ctx, staff, res.ID, due)
	require.NoError(t, err)
	_, err = f.svc.IssueBook(ctx, staff, res.ID, due)
	require.ErrorIs(t, err, errs.ErrAlreadyIssued)

	cancelled, err := f.svc.Reserve(ctx, reader2, b.ID)
	require.NoError(t, err)
	_, err = f.svc.CancelReservation(ctx, reader2, cancelled.ID)
	require.NoError(t, err)
	_, err = f.svc.IssueBook(ctx, staff, cancelled.ID, due)
	require.ErrorIs(t, err, errs.ErrReservationNotActive)
}

func TestWorkflow_IssueNoReservedCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "556", 1)

	res, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	copies, err := f.svc.ListCopies(ctx, b.ID)
	require.NoError(t, err)
	// corrupt state behind the workflow's back
	require.NoError(t, f.repo.SetCopyStatus(ctx, copies[0].ID, model.CopyLost))

	_, err = f.svc.IssueBook(ctx, staff, res.ID, base.Add(time.Hour))
	require.ErrorIs(t, err, errs.ErrNoReservedCopy)
}

func TestWorkflow_Cancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "666", 1)

	res, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)

	_, err = f.svc.CancelReservation(ctx, reader2, res.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)

	got, err := f.svc.CancelReservation(ctx, reader, res.ID)
	require.NoError(t, err)
	require.Equal(t, model.ReservationCancelled, got.Status)
	require.Equal(t, model.CopyCounts{Total: 1, Available: 1}, f.counts(t, b.ID))

	_, err = f.svc.CancelReservation(ctx, reader, res.ID)
	require.ErrorIs(t, err, errs.ErrReservationNotActive)

	res, err = f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	_, err = f.svc.IssueBook(ctx, staff, res.ID, base.Add(time.Hour))
	require.NoError(t, err)
	_, err = f.svc.CancelReservation(ctx, reader, res.ID)
	require.ErrorIs(t, err, errs.ErrAlreadyIssued)
	require.Equal(t, model.CopyCounts{Total: 1, Rented: 1}, f.counts(t, b.ID))
}

func TestWorkflow_DeleteReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "777", 2)

	res, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteReservation(ctx, res.ID))
	require.Equal(t, model.CopyCounts{Total: 2, Available: 2}, f.counts(t, b.ID))
	require.ErrorIs(t, f.svc.DeleteReservation(ctx, res.ID), errs.ErrReservationNotFound)

	res, err = f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	rental, err := f.svc.IssueBook(ctx, staff, res.ID, base.Add(time.Hour))
	require.NoError(t, err)
	require.ErrorIs(t, f.svc.DeleteReservation(ctx, res.ID), errs.ErrOpenRental)

	_, err = f.svc.ProcessReturn(ctx, staff, rental.ID)
	require.NoError(t, err)
	// completed reservations are deleted without touching copies
	other, err := f.svc.Reserve(ctx, reader2, b.ID)
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteReservation(ctx, res.ID))
	require.Equal(t, model.CopyCounts{Total: 2, Available: 1, Reserved: 1}, f.counts(t, b.ID))
	require.Equal(t, model.ReservationActive, f.reservation(t, other.ID).Status)
}

func TestWorkflow_UpdateReservationDates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "888", 1)

	res, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.UpdateReservationDates(ctx, res.ID, model.UpdateDatesRequest{}), errs.ErrNothingToUpdate)

	past := &model.Date{Time: base.AddDate(0, 0, -1)}
	require.ErrorIs(t, f.svc.UpdateReservationDates(ctx, res.ID, model.UpdateDatesRequest{ExpiresAt: past}), errs.ErrInvalidExpiry)

	expiry := &model.Date{Time: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, f.svc.UpdateReservationDates(ctx, res.ID, model.UpdateDatesRequest{ExpiresAt: expiry}))
	require.Equal(t, time.Date(2024, time.March, 20, 23, 59, 59, 0, time.UTC), f.reservation(t, res.ID).ExpiresAt)

	due := &model.Date{Time: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)}
	require.ErrorIs(t, f.svc.UpdateReservationDates(ctx, res.ID, model.UpdateDatesRequest{DueDate: due}), errs.ErrRentalNotFound)

	f.clock.Advance(time.Minute)
	rental, err := f.svc.IssueBook(ctx, staff, res.ID, base.Add(48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, f.svc.UpdateReservationDates(ctx, res.ID, model.UpdateDatesRequest{DueDate: due}))
	rec, err := f.repo.LockRental(ctx, rental.ID)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC), rec.DueDate)

	require.ErrorIs(t, f.svc.UpdateReservationDates(ctx, res.ID, model.UpdateDatesRequest{DueDate: past}), errs.ErrInvalidDueDate)
}

func TestWorkflow_SetCopyStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "999", 2)

	_, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	copies, err := f.svc.ListCopies(ctx, b.ID)
	require.NoError(t, err)
	reserved, idle := copies[0], copies[1]
	require.Equal(t, model.CopyReserved, reserved.Status)

	_, err = f.svc.SetCopyStatus(ctx, reserved.ID, model.CopyDamaged)
	require.ErrorIs(t, err, errs.ErrCopyBusy)
	_, err = f.svc.SetCopyStatus(ctx, idle.ID, model.CopyRented)
	require.ErrorIs(t, err, errs.ErrInvalidCopyStatus)
	_, err = f.svc.SetCopyStatus(ctx, 404, model.CopyLost)
	require.ErrorIs(t, err, errs.ErrCopyNotFound)

	cp, err := f.svc.SetCopyStatus(ctx, idle.ID, model.CopyDamaged)
	require.NoError(t, err)
	require.Equal(t, model.CopyDamaged, cp.Status)
	require.Equal(t, model.CopyCounts{Total: 2, Reserved: 1, Damaged: 1}, f.counts(t, b.ID))

	_, err = f.svc.Reserve(ctx, reader2, b.ID)
	require.ErrorIs(t, err, errs.ErrNoCopyAvailable)

	_, err = f.svc.SetCopyStatus(ctx, idle.ID, model.CopyAvailable)
	require.NoError(t, err)
	_, err = f.svc.Reserve(ctx, reader2, b.ID)
	require.NoError(t, err)
}

func TestWorkflow_CopyCountInvariant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "1010", 3)

	r1, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	f.counts(t, b.ID)
	r2, err := f.svc.Reserve(ctx, reader2, b.ID)
	require.NoError(t, err)
	f.counts(t, b.ID)
	rental, err := f.svc.IssueBook(ctx, staff, r1.ID, base.Add(time.Hour))
	require.NoError(t, err)
	f.counts(t, b.ID)
	_, err = f.svc.CancelReservation(ctx, reader2, r2.ID)
	require.NoError(t, err)
	f.counts(t, b.ID)
	added, err := f.svc.AddCopies(ctx, b.ID, 2)
	require.NoError(t, err)
	require.Len(t, added, 2)
	_, err = f.svc.SetCopyStatus(ctx, added[0].ID, model.CopyLost)
	require.NoError(t, err)
	_, err = f.svc.ProcessReturn(ctx, staff, rental.ID)
	require.NoError(t, err)

	require.Equal(t, model.CopyCounts{Total: 5, Available: 4, Lost: 1}, f.counts(t, b.ID))
}

func TestListOverdue_ExpiredReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "1111", 1)

	res, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)

	f.clock.Advance(8 * 24 * time.Hour)
	report, err := f.svc.ListOverdue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalCount)
	require.Len(t, report.ByBook, 1)
	require.Equal(t, b.ID, report.ByBook[0].BookID)
	require.Len(t, report.ByBook[0].Items, 1)

	item := report.ByBook[0].Items[0]
	require.Equal(t, model.OverdueReservation, item.Kind)
	require.Equal(t, base.Add(7*24*time.Hour), item.OverdueSince)
	require.Equal(t, res.ID, item.Reservation.ID)
	require.Nil(t, item.Rental)
	require.Equal(t, reader, report.ByUser[0].UserID)
}

func TestListOverdue_OverdueRental(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "1212", 1)
	due := base.Add(3 * 24 * time.Hour)

	res, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	rental, err := f.svc.IssueBook(ctx, staff, res.ID, due)
	require.NoError(t, err)

	f.clock.Advance(4 * 24 * time.Hour)
	report, err := f.svc.ListOverdue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalCount)
	item := report.ByUser[0].Items[0]
	require.Equal(t, model.OverdueRental, item.Kind)
	require.Equal(t, due, item.OverdueSince)
	require.Equal(t, rental.ID, item.Rental.ID)
	require.Equal(t, res.ID, item.Reservation.ID)

	// the reservation expired too, but it became a rental so it is not reported
	f.clock.Advance(7 * 24 * time.Hour)
	report, err = f.svc.ListOverdue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalCount)

	_, err = f.svc.ProcessReturn(ctx, staff, rental.ID)
	require.NoError(t, err)
	report, err = f.svc.ListOverdue(ctx)
	require.NoError(t, err)
	require.Zero(t, report.TotalCount)
	require.Empty(t, report.ByBook)
	require.NotNil(t, report.ByBook)
}

func TestListReservations_Phases(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	a := f.book(t, "1313", 1)
	b := f.book(t, "1414", 1)
	c := f.book(t, "1515", 1)
	d := f.book(t, "1616", 1)

	cancelled, err := f.svc.Reserve(ctx, reader, a.ID)
	require.NoError(t, err)
	_, err = f.svc.CancelReservation(ctx, reader, cancelled.ID)
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	returned, err := f.svc.Reserve(ctx, reader, b.ID)
	require.NoError(t, err)
	rb, err := f.svc.IssueBook(ctx, staff, returned.ID, base.Add(time.Hour))
	require.NoError(t, err)
	_, err = f.svc.ProcessReturn(ctx, staff, rb.ID)
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	rented, err := f.svc.Reserve(ctx, reader, c.ID)
	require.NoError(t, err)
	_, err = f.svc.IssueBook(ctx, staff, rented.ID, base.Add(2*time.Hour))
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	reserved, err := f.svc.Reserve(ctx, reader, d.ID)
	require.NoError(t, err)
	_, err = f.svc.Reserve(ctx, reader2, a.ID)
	require.NoError(t, err)

	views, err := f.svc.ListReservations(ctx, model.ReservationFilter{UserID: reader})
	require.NoError(t, err)
	got := map[int64]model.Phase{}
	for _, v := range views {
		got[v.Reservation.ID] = v.Phase
	}
	require.Equal(t, map[int64]model.Phase{
		cancelled.ID: model.PhaseCancelled,
		returned.ID:  model.PhaseReturned,
		rented.ID:    model.PhaseRented,
		reserved.ID:  model.PhaseReserved,
	}, got)
	require.Equal(t, reserved.ID, views[0].Reservation.ID)

	views, err = f.svc.ListReservations(ctx, model.ReservationFilter{UserID: reader, Phase: model.PhaseRented})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, rented.ID, views[0].Reservation.ID)
	require.False(t, views[0].IsOverdue)

	f.clock.Advance(3 * time.Hour)
	views, err = f.svc.ListReservations(ctx, model.ReservationFilter{Sort: model.SortDue})
	require.NoError(t, err)
	require.Len(t, views, 5)
	require.Equal(t, returned.ID, views[0].Reservation.ID)
	require.Equal(t, rented.ID, views[1].Reservation.ID)
	require.True(t, views[1].IsOverdue)
	for _, v := range views[2:] {
		require.Nil(t, v.Rental)
	}
}
