package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kiwistay/hotel-booking-backend/internal/booking"
	"github.com/kiwistay/hotel-booking-backend/internal/pkg/request"
	"github.com/kiwistay/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// CheckAvailability handles GET /room-types/:id/availability.
func (h *Handler) CheckAvailability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room type id"})
		return
	}

	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkInDate and checkOutDate are required"})
		return
	}

	avail, err := h.service.CheckAvailability(c.Request.Context(), uri.ID, q.CheckInDate, q.CheckOutDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		Available: avail.Available,
		Remaining: avail.Remaining,
	})
}

// Create handles POST /bookings.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		RoomTypeID:   body.RoomTypeID,
		CheckInDate:  body.CheckInDate,
		CheckOutDate: body.CheckOutDate,
		GuestName:    body.GuestName,
		GuestEmail:   body.GuestEmail,
		GuestPhone:   body.GuestPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		ID:         result.BookingID,
		RoomNumber: result.RoomNumber,
	})
}

// List handles GET /admin/bookings.
func (h *Handler) List(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	futureOnly := strings.EqualFold(q.Scope, "future")

	bookings, total, err := h.service.List(c.Request.Context(), futureOnly, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

// Delete handles DELETE /admin/bookings.
func (h *Handler) Delete(c *gin.Context) {
	var body DeleteBookingsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookingIds are required"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), body.BookingIDs); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
