// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-tracker/models"
)

// Taxonomy codes stamped into the normalized [models.AppError].
const (
	codeNetwork    = "NETWORK"
	codeTransport  = "TRANSPORT"
	codeAuth       = "AUTH"
	codeValidation = "VALIDATION"
	codeNotFound   = "NOT_FOUND"
	codeServer     = "SERVER"
	codeUnknown    = "UNKNOWN"
)

// mapTransportError normalizes failures where no HTTP response exists: either
// the request never left the client (request error) or it was sent and
// nothing came back (network error).
func mapTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		appErr := models.NewAppError("no response received from server", codeNetwork, 0)
		return fmt.Errorf("%w: %w", ErrNoResponse, appErr)
	}

	appErr := models.NewAppError(err.Error(), codeTransport, 0)
	return fmt.Errorf("%w: %w", ErrRequest, appErr)
}

// mapHTTPError normalizes a non-2xx HTTP response to the sentinel taxonomy.
// The server-provided message is used when present, otherwise a generic
// "API error, status <code>" message.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := serverMessage(resp)

	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, models.NewAppError(message, codeAuth, status))
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, models.NewAppError(message, codeAuth, status))
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrValidation, models.NewAppError(message, codeValidation, status))
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, models.NewAppError(message, codeNotFound, status))
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrServer, models.NewAppError(message, codeServer, status))
	default:
		return fmt.Errorf("%w: %w", ErrUnknown, models.NewAppError(message, codeUnknown, status))
	}
}

// serverMessage extracts the "message" field from a structured error body,
// falling back to the generic status description.
func serverMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}

	return fmt.Sprintf("API error, status %d", resp.StatusCode())
}
