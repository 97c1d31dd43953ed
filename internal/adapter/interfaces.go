// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// task-tracker server.
//
// The primary abstraction is [Gateway], the only component in the application
// permitted to perform network I/O. It exposes verb-generic operations
// parametrized by path and payload; the service layer builds its endpoint
// paths on top. The gateway injects the bearer token into every outgoing
// request and normalizes all transport and HTTP failures into the sentinel
// values defined in errors.go (usable with [errors.Is]) wrapped around a
// [models.AppError] (extractable with [errors.As]).
//
// Receiving HTTP 401 anywhere triggers the registered unauthorized hook
// before the error is reported, which lets the session layer invalidate the
// local session regardless of which operation observed the rejection. The
// decision to navigate away afterwards belongs to the presentation layer
// reacting to session state, not to the transport.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines verb-generic communication with the task-tracker server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level failures to the sentinel values
// defined in this package.
type Gateway interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. An empty token detaches the header: requests are
	// then sent unauthenticated and the server enforces rejection.
	SetToken(token string)

	// Token returns the bearer token currently stored in the gateway, or an
	// empty string if no token has been set yet.
	Token() string

	// OnUnauthorized registers the hook invoked whenever any response comes
	// back with HTTP 401. The gateway clears its own token before calling
	// the hook.
	OnUnauthorized(hook func())

	// Get performs a GET request against path and returns the raw response
	// body.
	Get(ctx context.Context, path string) ([]byte, error)

	// Post performs a POST request with body serialised as JSON. A nil body
	// sends an empty payload.
	Post(ctx context.Context, path string, body any) ([]byte, error)

	// Put performs a PUT request with body serialised as JSON.
	Put(ctx context.Context, path string, body any) ([]byte, error)

	// Patch performs a PATCH request with body serialised as JSON. A nil
	// body sends an empty payload.
	Patch(ctx context.Context, path string, body any) ([]byte, error)

	// Delete performs a DELETE request against path.
	Delete(ctx context.Context, path string) ([]byte, error)
}
