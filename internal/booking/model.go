package booking

import (
	"net/http"
	"time"

	"github.com/kiwistay/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomTypeNotFound  = apperror.New(http.StatusNotFound, "room type not found")
	ErrSoldOut           = apperror.New(http.StatusConflict, "this room type is sold out for the selected dates")
	ErrInvalidDateFormat = apperror.New(http.StatusBadRequest, "dates must be in yyyy-mm-dd format")
	ErrInvalidDateRange  = apperror.New(http.StatusBadRequest, "checkOutDate must be after checkInDate")
	ErrCheckInPast       = apperror.New(http.StatusBadRequest, "checkInDate cannot be before today's date (NZ time)")
	ErrGuestNameRequired = apperror.New(http.StatusBadRequest, "guestName is required")
	ErrInvalidEmail      = apperror.New(http.StatusBadRequest, "guestEmail is not a valid email address")
	ErrInvalidPhone      = apperror.New(http.StatusBadRequest, "guestPhone must be 7 to 15 digits with an optional leading +")
	ErrInvalidBookingIDs = apperror.New(http.StatusBadRequest, "bookingIds are required")
	ErrPartialDelete     = apperror.New(http.StatusConflict, "some bookings were not found; nothing was deleted")
)

// Booking is a guest's stay request for a room type over a half-open date
// interval [CheckInDate, CheckOutDate). Bookings are immutable once created;
// the admin console can only delete them.
type Booking struct {
	ID           int64
	RoomTypeID   int64
	CheckInDate  time.Time
	CheckOutDate time.Time
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	RoomNumber   int // Denormalized from the booked room for listings
	CreatedAt    time.Time
}

// BookedRoom binds one concrete room number to one booking for a date range.
// The stay interval is copied from the booking so overlap queries need no
// join. It is created and deleted in the same transaction as its booking.
type BookedRoom struct {
	ID           int64
	BookingID    int64
	RoomTypeID   int64
	RoomNumber   int
	CheckInDate  time.Time
	CheckOutDate time.Time
}

// Availability is the result of an availability check: how many rooms of
// the type are still free for the whole requested interval.
type Availability struct {
	Available bool
	Remaining int
}

// Filter defines parameters for the admin booking list.
type Filter struct {
	FutureOnly bool // Only bookings with CheckInDate >= today
	Today      time.Time
	Page       int
	PageSize   int
}
