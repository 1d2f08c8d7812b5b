package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwistay/hotel-booking-backend/internal/pkg/civil"
	"github.com/kiwistay/hotel-booking-backend/internal/roomtype"
)

// testToday is the fixed civil date all service tests run against.
var testToday = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

// fakeRoomTypes is an in-memory roomtype.Service.
type fakeRoomTypes struct {
	types map[int64]*roomtype.RoomType
}

func (f *fakeRoomTypes) GetByID(_ context.Context, id int64) (*roomtype.RoomType, error) {
	if id <= 0 {
		return nil, roomtype.ErrInvalidID
	}
	rt, ok := f.types[id]
	if !ok {
		return nil, roomtype.ErrNotFound
	}
	return rt, nil
}

func (f *fakeRoomTypes) List(_ context.Context) ([]*roomtype.RoomType, error) {
	var out []*roomtype.RoomType
	for _, rt := range f.types {
		out = append(out, rt)
	}
	return out, nil
}

func (f *fakeRoomTypes) SetImageURL(_ context.Context, id int64, url string) error {
	rt, ok := f.types[id]
	if !ok {
		return roomtype.ErrNotFound
	}
	rt.ImageURL = url
	return nil
}

// fakeRepo is an in-memory Repository with the same transactional semantics
// as the pgx implementation: the scan-and-insert in CreateWithAssignment is
// serialized by a mutex the way concurrent transactions serialize on the
// room type row lock.
type fakeRepo struct {
	mu       sync.Mutex
	capacity map[int64]int
	rooms    []BookedRoom
	bookings []Booking
	nextID   int64
}

func newFakeRepo(capacity map[int64]int) *fakeRepo {
	return &fakeRepo{capacity: capacity}
}

func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

func (f *fakeRepo) occupiedLocked(roomTypeID int64, checkIn, checkOut time.Time) []int {
	var occupied []int
	for _, room := range f.rooms {
		if room.RoomTypeID == roomTypeID && overlaps(room.CheckInDate, room.CheckOutDate, checkIn, checkOut) {
			occupied = append(occupied, room.RoomNumber)
		}
	}
	return occupied
}

func (f *fakeRepo) OccupiedRoomNumbers(_ context.Context, roomTypeID int64, checkIn, checkOut time.Time) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.occupiedLocked(roomTypeID, checkIn, checkOut), nil
}

func (f *fakeRepo) CreateWithAssignment(_ context.Context, b *Booking) (*BookedRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	capacity, ok := f.capacity[b.RoomTypeID]
	if !ok {
		return nil, ErrRoomTypeNotFound
	}

	occupied := f.occupiedLocked(b.RoomTypeID, b.CheckInDate, b.CheckOutDate)
	roomNumber := firstFreeRoom(capacity, occupied)
	if roomNumber == 0 {
		return nil, ErrSoldOut
	}

	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	b.RoomNumber = roomNumber

	room := BookedRoom{
		ID:           f.nextID,
		BookingID:    b.ID,
		RoomTypeID:   b.RoomTypeID,
		RoomNumber:   roomNumber,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
	}
	f.rooms = append(f.rooms, room)
	f.bookings = append(f.bookings, *b)

	return &room, nil
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Booking, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*Booking
	for i := range f.bookings {
		b := f.bookings[i]
		if filter.FutureOnly && b.CheckInDate.Before(filter.Today) {
			continue
		}
		out = append(out, &b)
	}
	return out, len(out), nil
}

func (f *fakeRepo) DeleteByIDs(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := 0
	for _, id := range ids {
		for _, b := range f.bookings {
			if b.ID == id {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return ErrNotFound
	}
	if matched != len(ids) {
		return ErrPartialDelete
	}

	keepBookings := f.bookings[:0]
	for _, b := range f.bookings {
		remove := false
		for _, id := range ids {
			if b.ID == id {
				remove = true
				break
			}
		}
		if !remove {
			keepBookings = append(keepBookings, b)
		}
	}
	f.bookings = keepBookings

	keepRooms := f.rooms[:0]
	for _, room := range f.rooms {
		remove := false
		for _, id := range ids {
			if room.BookingID == id {
				remove = true
				break
			}
		}
		if !remove {
			keepRooms = append(keepRooms, room)
		}
	}
	f.rooms = keepRooms

	return nil
}

func newTestService(capacity map[int64]int) (Service, *fakeRepo) {
	repo := newFakeRepo(capacity)
	types := make(map[int64]*roomtype.RoomType, len(capacity))
	for id, total := range capacity {
		types[id] = &roomtype.RoomType{
			ID:                   id,
			TypeName:             "Test Room",
			Price:                100,
			BedNumber:            2,
			AvailableRoomsNumber: total,
		}
	}
	svc := NewService(repo, &fakeRoomTypes{types: types}, civil.FixedClock{Date: testToday})
	return svc, repo
}

func validRequest() CreateRequest {
	return CreateRequest{
		RoomTypeID:   1,
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-05",
		GuestName:    "Riley Chen",
		GuestEmail:   "riley.chen@example.com",
		GuestPhone:   "+6421555123",
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{
			name:    "blank guest name",
			mutate:  func(r *CreateRequest) { r.GuestName = "   " },
			wantErr: ErrGuestNameRequired,
		},
		{
			name:    "malformed email",
			mutate:  func(r *CreateRequest) { r.GuestEmail = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty email",
			mutate:  func(r *CreateRequest) { r.GuestEmail = " " },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "phone too short",
			mutate:  func(r *CreateRequest) { r.GuestPhone = "12345" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "phone too long",
			mutate:  func(r *CreateRequest) { r.GuestPhone = "1234567890123456" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "phone with letters",
			mutate:  func(r *CreateRequest) { r.GuestPhone = "CALL-ME-MAYBE" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "bad check-in format",
			mutate:  func(r *CreateRequest) { r.CheckInDate = "01/06/2025" },
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "bad check-out format",
			mutate:  func(r *CreateRequest) { r.CheckOutDate = "June 5" },
			wantErr: ErrInvalidDateFormat,
		},
		{
			name: "check-out before check-in",
			mutate: func(r *CreateRequest) {
				r.CheckInDate = "2025-06-05"
				r.CheckOutDate = "2025-06-01"
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "zero-night stay",
			mutate: func(r *CreateRequest) {
				r.CheckInDate = "2025-06-01"
				r.CheckOutDate = "2025-06-01"
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "check-in yesterday",
			mutate: func(r *CreateRequest) {
				r.CheckInDate = "2025-05-19"
				r.CheckOutDate = "2025-05-21"
			},
			wantErr: ErrCheckInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(map[int64]int{1: 3})

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)

			// Validation failures must leave no state behind.
			assert.Empty(t, repo.bookings)
			assert.Empty(t, repo.rooms)
		})
	}
}

func TestCreateNormalizesPhone(t *testing.T) {
	svc, repo := newTestService(map[int64]int{1: 3})

	req := validRequest()
	req.GuestPhone = "+64 (21) 555-123"

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "+6421555123", repo.bookings[0].GuestPhone)
}

func TestCreateRoomTypeNotFound(t *testing.T) {
	svc, _ := newTestService(map[int64]int{1: 3})

	req := validRequest()
	req.RoomTypeID = 99

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestCreateAssignsLowestFreeRoom(t *testing.T) {
	svc, _ := newTestService(map[int64]int{1: 3})
	ctx := context.Background()

	// Occupy rooms 1, 2 and 3, then free up room 2 by booking an interval
	// that does not overlap the request window for it.
	first, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, first.RoomNumber)

	second, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, second.RoomNumber)

	third, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, third.RoomNumber)

	// Room 2's booking removed: rooms 1 and 3 stay occupied, so the next
	// booking for the same window must get room 2.
	require.NoError(t, svc.Delete(ctx, []int64{second.BookingID}))

	fourth, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, fourth.RoomNumber)
}

func TestCreateSoldOutAndAdjacentStay(t *testing.T) {
	svc, _ := newTestService(map[int64]int{1: 1})
	ctx := context.Background()

	req := validRequest()
	req.CheckInDate = "2025-06-01"
	req.CheckOutDate = "2025-06-05"
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	// Overlapping sub-interval conflicts.
	overlapping := validRequest()
	overlapping.CheckInDate = "2025-06-02"
	overlapping.CheckOutDate = "2025-06-03"
	_, err = svc.Create(ctx, overlapping)
	assert.ErrorIs(t, err, ErrSoldOut)

	// Touching interval does not overlap: same-day turnover reuses room 1.
	adjacent := validRequest()
	adjacent.CheckInDate = "2025-06-05"
	adjacent.CheckOutDate = "2025-06-06"
	result, err := svc.Create(ctx, adjacent)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RoomNumber)
}

func TestCheckAvailability(t *testing.T) {
	svc, repo := newTestService(map[int64]int{1: 3})
	ctx := context.Background()

	avail, err := svc.CheckAvailability(ctx, 1, "2025-06-01", "2025-06-05")
	require.NoError(t, err)
	assert.True(t, avail.Available)
	assert.Equal(t, 3, avail.Remaining)

	_, err = svc.Create(ctx, validRequest())
	require.NoError(t, err)

	avail, err = svc.CheckAvailability(ctx, 1, "2025-06-01", "2025-06-05")
	require.NoError(t, err)
	assert.True(t, avail.Available)
	assert.Equal(t, 2, avail.Remaining)

	// Identical inputs with no intervening writes return identical results.
	again, err := svc.CheckAvailability(ctx, 1, "2025-06-01", "2025-06-05")
	require.NoError(t, err)
	assert.Equal(t, avail, again)

	// A duplicated occupied row still counts as one occupied room.
	repo.mu.Lock()
	repo.rooms = append(repo.rooms, repo.rooms[0])
	repo.mu.Unlock()

	avail, err = svc.CheckAvailability(ctx, 1, "2025-06-01", "2025-06-05")
	require.NoError(t, err)
	assert.Equal(t, 2, avail.Remaining)
}

func TestCheckAvailabilityErrors(t *testing.T) {
	svc, _ := newTestService(map[int64]int{1: 1})
	ctx := context.Background()

	_, err := svc.CheckAvailability(ctx, 99, "2025-06-01", "2025-06-05")
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)

	_, err = svc.CheckAvailability(ctx, 1, "2025-06-05", "2025-06-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.CheckAvailability(ctx, 1, "2025-05-19", "2025-05-21")
	assert.ErrorIs(t, err, ErrCheckInPast)

	// Validation happens before the room type lookup, so a bad range on a
	// missing room type still reports the range problem.
	_, err = svc.CheckAvailability(ctx, 99, "bad", "2025-06-01")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestCapacityInvariantUnderSequentialBookings(t *testing.T) {
	const capacity = 3
	svc, repo := newTestService(map[int64]int{1: capacity})
	ctx := context.Background()

	// Book the same window until sold out, then verify per-date occupancy.
	var successes int
	for i := 0; i < capacity+2; i++ {
		_, err := svc.Create(ctx, validRequest())
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, ErrSoldOut)
	}
	assert.Equal(t, capacity, successes)

	day := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	occupied := map[int]struct{}{}
	for _, room := range repo.rooms {
		if !day.Before(room.CheckInDate) && day.Before(room.CheckOutDate) {
			occupied[room.RoomNumber] = struct{}{}
		}
	}
	assert.LessOrEqual(t, len(occupied), capacity)
}

func TestConcurrentBookingsLastSlot(t *testing.T) {
	svc, repo := newTestService(map[int64]int{1: 1})
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(ctx, validRequest())
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSoldOut):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one booking must win the last slot")
	assert.Equal(t, attempts-1, conflicts)

	// No double assignment of the single room.
	require.Len(t, repo.rooms, 1)
}

func TestDeleteValidation(t *testing.T) {
	svc, _ := newTestService(map[int64]int{1: 1})
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, nil), ErrInvalidBookingIDs)
	assert.ErrorIs(t, svc.Delete(ctx, []int64{0, -3}), ErrInvalidBookingIDs)
	assert.ErrorIs(t, svc.Delete(ctx, []int64{42}), ErrNotFound)
}

func TestDeletePartialMatchRollsBack(t *testing.T) {
	svc, repo := newTestService(map[int64]int{1: 2})
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	err = svc.Delete(ctx, []int64{created.BookingID, 999})
	assert.ErrorIs(t, err, ErrPartialDelete)

	// Nothing was deleted.
	assert.Len(t, repo.bookings, 1)
	assert.Len(t, repo.rooms, 1)
}

func TestListFutureScope(t *testing.T) {
	svc, repo := newTestService(map[int64]int{1: 5})
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// Backdate one booking below today; the repository accepts it because
	// past-stay validation is the service's job on the way in.
	repo.mu.Lock()
	repo.bookings = append(repo.bookings, Booking{
		ID:           100,
		RoomTypeID:   1,
		CheckInDate:  testToday.AddDate(0, -1, 0),
		CheckOutDate: testToday.AddDate(0, -1, 2),
	})
	repo.mu.Unlock()

	all, total, err := svc.List(ctx, false, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	future, total, err := svc.List(ctx, true, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, future, 1)
	assert.Equal(t, "2025-06-01", future[0].CheckInDate.Format("2006-01-02"))
}
