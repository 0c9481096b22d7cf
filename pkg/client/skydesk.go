package client

import (
	"context"
	"fmt"
	"net/http"
	apperrors "skydesk/pkg/errors"
	"skydesk/pkg/model"
	"time"
)

// SkyDeskClient is the typed client for the SkyDesk360 booking API.
type SkyDeskClient struct {
	httpClient *HttpClient
}

func NewSkyDeskClient(baseURL string, timeout time.Duration, tokens TokenSource) *SkyDeskClient {
	httpClient := NewHttpClient(baseURL, timeout)
	httpClient.TokenSource = tokens
	return &SkyDeskClient{
		httpClient: httpClient,
	}
}

func (c *SkyDeskClient) Signup(ctx context.Context, req model.SignupRequest) error {
	if err := model.Validate(req); err != nil {
		return apperrors.Wrap(err, apperrors.CodeValidation, "invalid signup request", http.StatusUnprocessableEntity)
	}

	resp, err := c.httpClient.POST(ctx, "/signup", req)
	if err != nil {
		return apperrors.Network("signup request failed", err)
	}
	if !resp.OK() {
		return c.apiError(resp, "signup rejected")
	}
	return nil
}

func (c *SkyDeskClient) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := model.Validate(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidation, "invalid login request", http.StatusUnprocessableEntity)
	}

	resp, err := c.httpClient.POST(ctx, "/login", req)
	if err != nil {
		return nil, apperrors.Network("login request failed", err)
	}
	if !resp.OK() {
		return nil, c.apiError(resp, "login rejected")
	}

	var login model.LoginResponse
	if err := resp.DecodeJSON(&login); err != nil {
		return nil, apperrors.Internal("could not decode login response", err)
	}
	return &login, nil
}

// BookSeat creates one booking record for one unit. The server rejects a unit
// that already carries a booking with 400.
func (c *SkyDeskClient) BookSeat(ctx context.Context, req model.BookSeatRequest) error {
	if err := model.Validate(req); err != nil {
		return apperrors.Wrap(err, apperrors.CodeValidation, "invalid booking request", http.StatusUnprocessableEntity)
	}

	resp, err := c.httpClient.POST(ctx, "/book-seat", req)
	if err != nil {
		return apperrors.Network(fmt.Sprintf("booking request for %s failed", req.UnitID), err)
	}
	if resp.StatusCode == http.StatusBadRequest {
		return apperrors.UnitOccupied(req.UnitID)
	}
	if !resp.OK() {
		return c.apiError(resp, fmt.Sprintf("booking of %s rejected", req.UnitID))
	}
	return nil
}

func (c *SkyDeskClient) MyBookings(ctx context.Context, userID int) ([]model.BookingRecord, error) {
	resp, err := c.httpClient.GET(ctx, fmt.Sprintf("/my-bookings/%d", userID))
	if err != nil {
		return nil, apperrors.Network("could not fetch user bookings", err)
	}
	if !resp.OK() {
		return nil, c.apiError(resp, "user bookings request rejected")
	}

	var bookings []model.BookingRecord
	if err := resp.DecodeJSON(&bookings); err != nil {
		return nil, apperrors.Internal("could not decode booking list", err)
	}
	return bookings, nil
}

func (c *SkyDeskClient) CancelBooking(ctx context.Context, bookingID int) error {
	resp, err := c.httpClient.DELETE(ctx, fmt.Sprintf("/cancel-booking/%d", bookingID))
	if err != nil {
		return apperrors.Network("cancel request failed", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NotFoundWithID("Booking", fmt.Sprintf("%d", bookingID))
	}
	if !resp.OK() {
		return c.apiError(resp, "cancel request rejected")
	}
	return nil
}

// AllBookings returns every booking record on the floor. The floor plan and
// the admin dashboard both derive occupancy from it.
func (c *SkyDeskClient) AllBookings(ctx context.Context) ([]model.BookingRecord, error) {
	resp, err := c.httpClient.GET(ctx, "/admin/all-bookings")
	if err != nil {
		return nil, apperrors.Network("could not fetch floor occupancy", err)
	}
	if !resp.OK() {
		return nil, c.apiError(resp, "occupancy request rejected")
	}

	var bookings []model.BookingRecord
	if err := resp.DecodeJSON(&bookings); err != nil {
		return nil, apperrors.Internal("could not decode booking list", err)
	}
	return bookings, nil
}

func (c *SkyDeskClient) CreateSubAdmin(ctx context.Context, req model.CreateSubAdminRequest) error {
	if err := model.Validate(req); err != nil {
		return apperrors.Wrap(err, apperrors.CodeValidation, "invalid sub-admin request", http.StatusUnprocessableEntity)
	}

	resp, err := c.httpClient.POST(ctx, "/admin/create-sub-admin", req)
	if err != nil {
		return apperrors.Network("sub-admin request failed", err)
	}
	if !resp.OK() {
		return c.apiError(resp, "sub-admin request rejected")
	}
	return nil
}

// apiError maps a non-2xx API response onto the error taxonomy. The API
// reports failures as {"detail": "..."}.
func (c *SkyDeskClient) apiError(resp *Response, fallback string) *apperrors.AppError {
	var body struct {
		Detail string `json:"detail"`
	}
	message := fallback
	if err := resp.DecodeJSON(&body); err == nil && body.Detail != "" {
		message = body.Detail
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case http.StatusNotFound:
		return apperrors.NotFound(message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.InvalidInput(message)
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return apperrors.Unavailable(message)
	default:
		return apperrors.New(apperrors.CodeInternal, message, resp.StatusCode)
	}
}
