package http

import (
	"github.com/kiwistay/hotel-booking-backend/internal/booking"
	"github.com/kiwistay/hotel-booking-backend/internal/pkg/civil"
	"github.com/kiwistay/hotel-booking-backend/internal/pkg/request"
)

// AvailabilityQuery defines query parameters for the availability check.
// Business validation (date order, not-in-past) happens in the service.
type AvailabilityQuery struct {
	CheckInDate  string `form:"checkInDate" binding:"required"`
	CheckOutDate string `form:"checkOutDate" binding:"required"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
	Remaining int  `json:"remaining"`
}

type CreateBookingBody struct {
	RoomTypeID   int64  `json:"roomTypeId" binding:"required,gt=0"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	GuestName    string `json:"guestName" binding:"required"`
	GuestEmail   string `json:"guestEmail" binding:"required"`
	GuestPhone   string `json:"guestPhone" binding:"required"`
}

type CreateBookingResponse struct {
	ID         int64 `json:"id"`
	RoomNumber int   `json:"roomNumber"`
}

// ListBookingsQuery defines query parameters for the admin booking list.
type ListBookingsQuery struct {
	request.ListParams
	Scope string `form:"scope" binding:"omitempty,oneof=all future"`
}

type DeleteBookingsBody struct {
	BookingIDs []int64 `json:"bookingIds" binding:"required,min=1"`
}

type BookingResponse struct {
	ID           int64  `json:"id"`
	RoomTypeID   int64  `json:"roomTypeId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	RoomNumber   int    `json:"roomNumber"`
	GuestName    string `json:"guestName"`
	GuestEmail   string `json:"guestEmail"`
	GuestPhone   string `json:"guestPhone"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		RoomTypeID:   b.RoomTypeID,
		CheckInDate:  civil.FormatDate(b.CheckInDate),
		CheckOutDate: civil.FormatDate(b.CheckOutDate),
		RoomNumber:   b.RoomNumber,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		GuestPhone:   b.GuestPhone,
	}
}
