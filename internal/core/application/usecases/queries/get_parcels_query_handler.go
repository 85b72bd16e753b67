package queries

import (
	"context"
	"database/sql"

	"mailroom/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetParcelsQueryHandler retrieves parcel rows from the database.
// Reads the persistence model directly rather than going through the
// aggregate, so listing stays cheap and cannot mutate anything.
//
// Example:
//
//	handler := NewGetParcelsQueryHandler(db)
//	query, _ := NewGetParcelsQuery(GetParcelsFilter{Status: "Received"})
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list parcels: %v", err)
//	    return err
//	}
//	fmt.Printf("%d parcels on hand\n", len(parcels))
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel listing.
// Requires a GORM database connection for query execution.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the query and returns the matching parcels.
// Filters combine as a conjunction; results are ordered newest receipt
// first, ties broken by id descending, so pagination-free clients see a
// stable order.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) ([]GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			tracking_number,
			carrier,
			guest_name,
			room_number,
			guest_phone,
			status,
			received_by,
			receive_time,
			picked_up_by,
			pickup_time,
			storage_location,
			storage_number,
			notes,
			created_at,
			updated_at
		FROM parcels
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if status, ok := query.Status(); ok {
		sqlQuery += " AND status = ?"
		args = append(args, status)
	}
	if query.RoomNumber() != "" {
		sqlQuery += " AND room_number = ?"
		args = append(args, query.RoomNumber())
	}
	if query.Carrier() != "" {
		sqlQuery += " AND carrier = ?"
		args = append(args, query.Carrier())
	}
	if query.TrackingNumber() != "" {
		sqlQuery += " AND tracking_number = ?"
		args = append(args, query.TrackingNumber())
	}

	sqlQuery += " ORDER BY receive_time DESC, id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]GetParcelsQueryResponse, 0)

	for rows.Next() {
		var resp GetParcelsQueryResponse
		var status int
		var guestPhone, pickedUpBy, storageLocation, storageNumber, notes sql.NullString
		var pickedUpAt sql.NullTime

		err = rows.Scan(
			&resp.ID,
			&resp.TrackingNumber,
			&resp.Carrier,
			&resp.GuestName,
			&resp.RoomNumber,
			&guestPhone,
			&status,
			&resp.ReceivedBy,
			&resp.ReceivedAt,
			&pickedUpBy,
			&pickedUpAt,
			&storageLocation,
			&storageNumber,
			&notes,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = parcel.Status(status).String()
		resp.GuestPhone = guestPhone.String
		resp.PickedUpBy = pickedUpBy.String
		resp.StorageLocation = storageLocation.String
		resp.StorageNumber = storageNumber.String
		resp.Notes = notes.String
		if pickedUpAt.Valid {
			t := pickedUpAt.Time
			resp.PickedUpAt = &t
		}

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
