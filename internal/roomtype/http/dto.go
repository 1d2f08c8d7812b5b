package http

import (
	"github.com/kiwistay/hotel-booking-backend/internal/roomtype"
)

type RoomTypeResponse struct {
	ID                   int64   `json:"id"`
	TypeName             string  `json:"typeName"`
	Price                float64 `json:"price"`
	BedNumber            int     `json:"bedNumber"`
	ImageURL             string  `json:"imageUrl"`
	AvailableRoomsNumber int     `json:"availableRoomsNumber"`
}

func NewRoomTypeResponse(rt *roomtype.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:                   rt.ID,
		TypeName:             rt.TypeName,
		Price:                rt.Price,
		BedNumber:            rt.BedNumber,
		ImageURL:             rt.ImageURL,
		AvailableRoomsNumber: rt.AvailableRoomsNumber,
	}
}
