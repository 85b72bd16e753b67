// Package legacyapi is an HTTP client for the previous mailroom system.
// The old backend is loose about response shapes: the list endpoint answers
// either a bare JSON array or an object wrapping it in a "data" field, and
// status values are Chinese tags. This client normalizes both at the
// boundary so nothing downstream has to know about them.
package legacyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mailroom/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client talks to the legacy mailroom HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the legacy API at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// GetList fetches every parcel record the legacy system holds.
// Accepts both observed response shapes; anything else is a TransportError.
func (c *Client) GetList(ctx context.Context) ([]Package, error) {
	const op = "getlist"

	body, err := c.get(ctx, op, "/api/packages/getlist")
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList(body)
	if err != nil {
		return nil, errs.NewTransportError(op, err)
	}

	packages := make([]Package, 0, len(dtos))
	for _, dto := range dtos {
		pkg, convErr := toPackage(dto)
		if convErr != nil {
			return nil, convErr
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

// CheckInRequest carries the fields of a legacy check-in call.
type CheckInRequest struct {
	TrackingNumber  string
	Carrier         string
	GuestName       string
	RoomNumber      string
	ReceivedBy      string
	GuestPhone      string
	Notes           string
	StorageLocation string
	StorageNumber   string
}

// CheckIn records a parcel arrival in the legacy system.
func (c *Client) CheckIn(ctx context.Context, req CheckInRequest) error {
	return c.post(ctx, "checkin", "/api/packages/checkin", checkInDTO{
		TrackingNumber:  req.TrackingNumber,
		Carrier:         req.Carrier,
		GuestName:       req.GuestName,
		RoomNumber:      req.RoomNumber,
		ReceivedBy:      req.ReceivedBy,
		GuestPhone:      req.GuestPhone,
		Notes:           req.Notes,
		StorageLocation: req.StorageLocation,
		StorageNumber:   req.StorageNumber,
	})
}

// CheckOutRequest carries the fields of a legacy check-out call.
type CheckOutRequest struct {
	TrackingNumber string
	PickedUpBy     string
	Notes          string
}

// CheckOut records a parcel collection in the legacy system.
func (c *Client) CheckOut(ctx context.Context, req CheckOutRequest) error {
	return c.post(ctx, "checkout", "/api/packages/checkout", checkOutDTO{
		TrackingNumber: req.TrackingNumber,
		PickedUpBy:     req.PickedUpBy,
		Notes:          req.Notes,
	})
}

func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errs.NewTransportError(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.NewTransportErrorWithStatusCode(op, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewTransportError(op, err)
	}

	return body, nil
}

func (c *Client) post(ctx context.Context, op, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.NewTransportError(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.NewTransportError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewTransportErrorWithStatusCode(op, resp.StatusCode)
	}

	return nil
}

// decodeList handles both list shapes the legacy backend has been seen to
// produce.
func decodeList(body []byte) ([]packageDTO, error) {
	var bare []packageDTO
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var enveloped struct {
		Data []packageDTO `json:"data"`
	}
	if err := json.Unmarshal(body, &enveloped); err == nil && enveloped.Data != nil {
		return enveloped.Data, nil
	}

	return nil, fmt.Errorf("unrecognized list payload")
}
