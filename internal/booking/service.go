package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kiwistay/hotel-booking-backend/internal/pkg/civil"
	"github.com/kiwistay/hotel-booking-backend/internal/roomtype"
)

// phoneRegex matches a normalized phone: optional leading +, 7 to 15 digits.
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// CreateRequest carries the validated-to-be inputs for a new booking.
// Dates arrive as yyyy-mm-dd strings straight from the transport layer.
type CreateRequest struct {
	RoomTypeID   int64
	CheckInDate  string
	CheckOutDate string
	GuestName    string
	GuestEmail   string
	GuestPhone   string
}

// CreateResult is what a successful booking returns to the guest.
type CreateResult struct {
	BookingID  int64
	RoomNumber int
}

type Service interface {
	// CheckAvailability computes how many rooms of the type remain free for
	// the whole half-open interval [checkInDate, checkOutDate). Read-only.
	CheckAvailability(ctx context.Context, roomTypeID int64, checkInDate, checkOutDate string) (*Availability, error)

	// Create validates the request and books a room atomically.
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)

	List(ctx context.Context, futureOnly bool, page, pageSize int) ([]*Booking, int, error)
	Delete(ctx context.Context, ids []int64) error
}

type service struct {
	repo     Repository
	rtSvc    roomtype.Service
	clock    civil.Clock
	validate *validator.Validate
}

func NewService(repo Repository, rtSvc roomtype.Service, clock civil.Clock) Service {
	return &service{
		repo:     repo,
		rtSvc:    rtSvc,
		clock:    clock,
		validate: validator.New(),
	}
}

// parseStay validates the date pair: both parse as calendar dates, check-out
// is strictly after check-in, and check-in is not before today's civil date.
func (s *service) parseStay(checkInDate, checkOutDate string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = civil.ParseDate(checkInDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	checkOut, err = civil.ParseDate(checkOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if checkIn.Before(s.clock.Today()) {
		return time.Time{}, time.Time{}, ErrCheckInPast
	}

	return checkIn, checkOut, nil
}

func (s *service) CheckAvailability(ctx context.Context, roomTypeID int64, checkInDate, checkOutDate string) (*Availability, error) {
	checkIn, checkOut, err := s.parseStay(checkInDate, checkOutDate)
	if err != nil {
		return nil, err
	}

	rt, err := s.rtSvc.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, roomtype.ErrNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}

	occupied, err := s.repo.OccupiedRoomNumbers(ctx, rt.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	remaining := remainingRooms(rt.AvailableRoomsNumber, occupied)
	return &Availability{
		Available: remaining > 0,
		Remaining: remaining,
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return nil, ErrGuestNameRequired
	}

	email := strings.TrimSpace(req.GuestEmail)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}

	phone, ok := normalizePhone(req.GuestPhone)
	if !ok {
		return nil, ErrInvalidPhone
	}

	checkIn, checkOut, err := s.parseStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	// Fail fast on a missing room type before opening a transaction. The
	// repository re-checks under lock, so this read is not trusted for
	// capacity.
	rt, err := s.rtSvc.GetByID(ctx, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, roomtype.ErrNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}

	b := &Booking{
		RoomTypeID:   rt.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestName:    name,
		GuestEmail:   email,
		GuestPhone:   phone,
	}

	room, err := s.repo.CreateWithAssignment(ctx, b)
	if err != nil {
		return nil, err
	}

	return &CreateResult{
		BookingID:  b.ID,
		RoomNumber: room.RoomNumber,
	}, nil
}

func (s *service) List(ctx context.Context, futureOnly bool, page, pageSize int) ([]*Booking, int, error) {
	return s.repo.List(ctx, Filter{
		FutureOnly: futureOnly,
		Today:      s.clock.Today(),
		Page:       page,
		PageSize:   pageSize,
	})
}

func (s *service) Delete(ctx context.Context, ids []int64) error {
	cleaned := sanitizeIDs(ids)
	if len(cleaned) == 0 {
		return ErrInvalidBookingIDs
	}
	return s.repo.DeleteByIDs(ctx, cleaned)
}

// normalizePhone strips everything except digits and a leading plus, then
// checks the result is 7 to 15 digits.
func normalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if !phoneRegex.MatchString(normalized) {
		return "", false
	}
	return normalized, true
}

// sanitizeIDs drops non-positive ids and duplicates, preserving order.
func sanitizeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	var out []int64
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
