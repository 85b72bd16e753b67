// Package http exposes the mailroom over the wire protocol the existing
// frontend already speaks.
package http

import (
	"errors"
	"net/http"

	"mailroom/internal/core/application/usecases/commands"
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkInHandler        commands.CheckInParcelCommandHandler
	pickUpHandler         commands.PickUpParcelCommandHandler
	recordReceiverHandler commands.RecordReceiverCommandHandler

	// Query handlers
	getParcelsHandler   queries.GetParcelsQueryHandler
	getReceiversHandler queries.GetReceiversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkInHandler commands.CheckInParcelCommandHandler,
	pickUpHandler commands.PickUpParcelCommandHandler,
	recordReceiverHandler commands.RecordReceiverCommandHandler,
	getParcelsHandler queries.GetParcelsQueryHandler,
	getReceiversHandler queries.GetReceiversQueryHandler,
) *Server {
	return &Server{
		checkInHandler:        checkInHandler,
		pickUpHandler:         pickUpHandler,
		recordReceiverHandler: recordReceiverHandler,
		getParcelsHandler:     getParcelsHandler,
		getReceiversHandler:   getReceiversHandler,
	}
}

// RegisterRoutes binds the mailroom endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/packages/getlist", s.GetPackageList)
	e.GET("/api/packages/search", s.SearchPackages)
	e.POST("/api/packages/checkin", s.CheckInPackage)
	e.POST("/api/packages/checkout", s.CheckOutPackage)
	e.GET("/api/receivers", s.GetReceivers)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetPackageList handles GET /api/packages/getlist - the full parcel list,
// newest receipt first, wrapped in the data envelope.
func (s *Server) GetPackageList(ctx echo.Context) error {
	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{})
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.listParcels(ctx, query)
}

// SearchPackages handles GET /api/packages/search - the parcel list narrowed
// by the status, room_number, carrier, and tracking_number query parameters.
func (s *Server) SearchPackages(ctx echo.Context) error {
	query, err := queries.NewGetParcelsQuery(queries.GetParcelsFilter{
		Status:         ctx.QueryParam("status"),
		RoomNumber:     ctx.QueryParam("room_number"),
		Carrier:        ctx.QueryParam("carrier"),
		TrackingNumber: ctx.QueryParam("tracking_number"),
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.listParcels(ctx, query)
}

func (s *Server) listParcels(ctx echo.Context, query queries.GetParcelsQuery) error {
	rows, err := s.getParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := ListResponse[ParcelResponse]{Data: make([]ParcelResponse, len(rows))}
	for i, row := range rows {
		response.Data[i] = parcelResponseFromReadModel(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CheckInPackage handles POST /api/packages/checkin - records a parcel
// arrival and returns the stored record with its assigned id.
func (s *Server) CheckInPackage(ctx echo.Context) error {
	var req CheckInRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCheckInParcelCommand(
		req.TrackingNumber,
		req.Carrier,
		req.GuestName,
		req.RoomNumber,
		req.ReceivedBy,
		parcel.Details{
			GuestPhone:      req.GuestPhone,
			Notes:           req.Notes,
			StorageLocation: req.StorageLocation,
			StorageNumber:   req.StorageNumber,
		},
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	stored, err := s.checkInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	// The receiver directory is a convenience; a failure to update it must
	// not fail the check-in that already committed.
	if recordCmd, recordErr := commands.NewRecordReceiverCommand(req.ReceivedBy); recordErr == nil {
		if recordErr = s.recordReceiverHandler.Handle(ctx.Request().Context(), recordCmd); recordErr != nil {
			ctx.Logger().Warnf("failed to record receiver %q: %v", req.ReceivedBy, recordErr)
		}
	}

	return ctx.JSON(http.StatusCreated, parcelResponseFromAggregate(stored))
}

// CheckOutPackage handles POST /api/packages/checkout - records a pickup and
// returns the updated record.
func (s *Server) CheckOutPackage(ctx echo.Context) error {
	var req CheckOutRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPickUpParcelCommand(req.ID, req.TrackingNumber, req.PickedUpBy, req.Notes)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.pickUpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelResponseFromAggregate(updated))
}

// GetReceivers handles GET /api/receivers - known receiver names for the
// check-in autocomplete, wrapped in the data envelope.
func (s *Server) GetReceivers(ctx echo.Context) error {
	query, err := queries.NewGetReceiversQuery(0)
	if err != nil {
		return s.writeError(ctx, err)
	}

	names, err := s.getReceiversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ListResponse[string]{Data: names})
}

// writeError translates the error taxonomy into the wire status codes.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrParcelIdentifierIsRequired):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, commands.ErrTrackingNumberAmbiguous):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrTransport):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
