package http

import (
	"time"

	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/parcel"
)

// CheckInRequest is the request body for POST /api/packages/checkin.
// Field names stay snake_case for compatibility with the existing frontend.
type CheckInRequest struct {
	TrackingNumber  string `json:"tracking_number"`
	Carrier         string `json:"carrier"`
	GuestName       string `json:"guest_name"`
	RoomNumber      string `json:"room_number"`
	ReceivedBy      string `json:"received_by"`
	GuestPhone      string `json:"guest_phone,omitempty"`
	Notes           string `json:"notes,omitempty"`
	StorageLocation string `json:"storage_location,omitempty"`
	StorageNumber   string `json:"storage_number,omitempty"`
}

// CheckOutRequest is the request body for POST /api/packages/checkout.
// The parcel is identified by id or tracking number; id wins when both are
// present.
type CheckOutRequest struct {
	ID             int64  `json:"id,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	PickedUpBy     string `json:"picked_up_by"`
	Notes          string `json:"notes,omitempty"`
}

// ParcelResponse is the wire representation of one parcel record.
type ParcelResponse struct {
	ID              int64      `json:"id"`
	TrackingNumber  string     `json:"tracking_number"`
	Carrier         string     `json:"carrier"`
	GuestName       string     `json:"guest_name"`
	RoomNumber      string     `json:"room_number"`
	GuestPhone      string     `json:"guest_phone,omitempty"`
	Status          string     `json:"status"`
	ReceiveTime     time.Time  `json:"receive_time"`
	PickupTime      *time.Time `json:"pickup_time,omitempty"`
	ReceivedBy      string     `json:"received_by"`
	PickedUpBy      string     `json:"picked_up_by,omitempty"`
	StorageLocation string     `json:"storage_location,omitempty"`
	StorageNumber   string     `json:"storage_number,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ListResponse wraps list results in the data envelope the frontend expects.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

// ErrorResponse is the error payload of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func parcelResponseFromAggregate(p *parcel.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:              p.ID(),
		TrackingNumber:  p.TrackingNumber(),
		Carrier:         p.Carrier(),
		GuestName:       p.GuestName(),
		RoomNumber:      p.RoomNumber(),
		GuestPhone:      p.GuestPhone(),
		Status:          p.Status().String(),
		ReceiveTime:     p.ReceivedAt(),
		PickupTime:      p.PickedUpAt(),
		ReceivedBy:      p.ReceivedBy(),
		PickedUpBy:      p.PickedUpBy(),
		StorageLocation: p.StorageLocation(),
		StorageNumber:   p.StorageNumber(),
		Notes:           p.Notes(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

func parcelResponseFromReadModel(row queries.GetParcelsQueryResponse) ParcelResponse {
	return ParcelResponse{
		ID:              row.ID,
		TrackingNumber:  row.TrackingNumber,
		Carrier:         row.Carrier,
		GuestName:       row.GuestName,
		RoomNumber:      row.RoomNumber,
		GuestPhone:      row.GuestPhone,
		Status:          row.Status,
		ReceiveTime:     row.ReceivedAt,
		PickupTime:      row.PickedUpAt,
		ReceivedBy:      row.ReceivedBy,
		PickedUpBy:      row.PickedUpBy,
		StorageLocation: row.StorageLocation,
		StorageNumber:   row.StorageNumber,
		Notes:           row.Notes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
