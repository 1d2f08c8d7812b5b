package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiwistay/hotel-booking-backend/internal/pkg/request"
	"github.com/kiwistay/hotel-booking-backend/internal/pkg/response"
	"github.com/kiwistay/hotel-booking-backend/internal/roomtype"
)

type Handler struct {
	service roomtype.Service
}

func NewHandler(service roomtype.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	roomTypes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		items[i] = NewRoomTypeResponse(rt)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room type id"})
		return
	}

	rt, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomTypeResponse(rt))
}
