package roomtype

import (
	"net/http"

	"github.com/kiwistay/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "room type not found")
	ErrInvalidID = apperror.New(http.StatusBadRequest, "roomTypeId must be a positive integer")
)

// RoomType is a class of rooms sharing price, capacity and amenities.
// AvailableRoomsNumber is the total count of physical rooms of this type;
// concrete rooms are numbered 1..AvailableRoomsNumber.
type RoomType struct {
	ID                   int64
	TypeName             string
	Price                float64
	BedNumber            int
	ImageURL             string
	AvailableRoomsNumber int
}
