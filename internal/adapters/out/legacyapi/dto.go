package legacyapi

import (
	"time"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
)

// legacy status tags as the old system emits them.
const (
	legacyStatusReceived  = "已接收"
	legacyStatusPickedUp  = "已领取"
	legacyStatusException = "异常"
)

// packageDTO mirrors one record of the legacy list payload. Optional fields
// arrive as JSON null, hence the pointers.
type packageDTO struct {
	ID              int64   `json:"id"`
	TrackingNumber  string  `json:"tracking_number"`
	Carrier         string  `json:"carrier"`
	GuestName       string  `json:"guest_name"`
	RoomNumber      string  `json:"room_number"`
	GuestPhone      *string `json:"guest_phone"`
	Status          string  `json:"status"`
	ReceiveTime     string  `json:"receive_time"`
	PickupTime      *string `json:"pickup_time"`
	ReceivedBy      string  `json:"received_by"`
	PickedUpBy      *string `json:"picked_up_by"`
	StorageLocation *string `json:"storage_location"`
	StorageNumber   *string `json:"storage_number"`
	Notes           *string `json:"notes"`
}

// checkInDTO is the request body of the legacy check-in endpoint. Optional
// fields are omitted entirely rather than sent empty, matching what the old
// frontend does.
type checkInDTO struct {
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

// checkOutDTO is the request body of the legacy check-out endpoint.
type checkOutDTO struct {
	TrackingNumber string `json:"tracking_number"`
	PickedUpBy     string `json:"picked_up_by"`
	Notes          string `json:"notes,omitempty"`
}

// Package is one normalized record from the legacy system: status tag mapped
// onto the domain state machine and timestamps parsed.
type Package struct {
	ID              int64
	TrackingNumber  string
	Carrier         string
	GuestName       string
	RoomNumber      string
	GuestPhone      string
	Status          parcel.Status
	ReceivedBy      string
	ReceivedAt      time.Time
	PickedUpBy      string
	PickedUpAt      *time.Time
	StorageLocation string
	StorageNumber   string
	Notes           string
}

// legacy payloads carry local times without a zone marker alongside RFC3339.
var legacyTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseLegacyTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range legacyTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause("receive_time", lastErr)
}

func statusFromLegacy(tag string) (parcel.Status, error) {
	switch tag {
	case legacyStatusReceived:
		return parcel.Received, nil
	case legacyStatusPickedUp:
		return parcel.PickedUp, nil
	case legacyStatusException:
		return parcel.Exception, nil
	default:
		return parcel.Unknown, errs.NewValueIsInvalidError("status")
	}
}

func toPackage(dto packageDTO) (Package, error) {
	status, err := statusFromLegacy(dto.Status)
	if err != nil {
		return Package{}, err
	}

	receivedAt, err := parseLegacyTime(dto.ReceiveTime)
	if err != nil {
		return Package{}, err
	}

	pkg := Package{
		ID:             dto.ID,
		TrackingNumber: dto.TrackingNumber,
		Carrier:        dto.Carrier,
		GuestName:      dto.GuestName,
		RoomNumber:     dto.RoomNumber,
		Status:         status,
		ReceivedBy:     dto.ReceivedBy,
		ReceivedAt:     receivedAt,
	}

	if dto.GuestPhone != nil {
		pkg.GuestPhone = *dto.GuestPhone
	}
	if dto.PickedUpBy != nil {
		pkg.PickedUpBy = *dto.PickedUpBy
	}
	if dto.StorageLocation != nil {
		pkg.StorageLocation = *dto.StorageLocation
	}
	if dto.StorageNumber != nil {
		pkg.StorageNumber = *dto.StorageNumber
	}
	if dto.Notes != nil {
		pkg.Notes = *dto.Notes
	}
	if dto.PickupTime != nil && *dto.PickupTime != "" {
		pickedUpAt, timeErr := parseLegacyTime(*dto.PickupTime)
		if timeErr != nil {
			return Package{}, timeErr
		}
		pkg.PickedUpAt = &pickedUpAt
	}

	return pkg, nil
}
