// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lookup provides the HTTP client for the FUNDus! data API:
// catalog entity lookups and the user image store.
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/uhh-lt/fundus-chat-tui/internal/fundus"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the lookup client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeNotFound
	ErrTypeRequestFailed
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "lookup backend is unreachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrNotFound    = &ClientError{Type: ErrTypeNotFound, Message: "entity not found"}
)

// IsNotFound checks if an error is an entity-not-found error.
func IsNotFound(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the lookup client.
type ClientConfig struct {
	// BaseURL is the data API base URL (default: http://127.0.0.1:8000)
	BaseURL string

	// Timeout for requests (default: 30s)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the data API. Entity lookups take a
// murag_id query parameter and return one entity; the image store
// accepts an upload and resolves handles back to base64 payloads.
//
// The Client is safe for concurrent use; the resolver issues one lookup
// per referenced entity concurrently.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new lookup client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new lookup client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// get issues a lookup GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path, muragID string, out any) error {
	u := c.config.BaseURL + path + "?murag_id=" + url.QueryEscape(muragID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeRequestFailed,
			Message: "lookup failed: " + resp.Status,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// =============================================================================
// ENTITY LOOKUPS
// =============================================================================

// GetRecord retrieves a FUNDus record by its murag_id.
func (c *Client) GetRecord(ctx context.Context, muragID string) (*fundus.Record, error) {
	var record fundus.Record
	if err := c.get(ctx, "/api/data/lookup/records", muragID, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetRecordImage retrieves the image payload of a record by its murag_id.
func (c *Client) GetRecordImage(ctx context.Context, muragID string) (*fundus.RecordImage, error) {
	var image fundus.RecordImage
	if err := c.get(ctx, "/api/data/lookup/records/image", muragID, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// GetCollection retrieves a FUNDus collection by its murag_id.
func (c *Client) GetCollection(ctx context.Context, muragID string) (*fundus.Collection, error) {
	var collection fundus.Collection
	if err := c.get(ctx, "/api/data/lookup/collections", muragID, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// =============================================================================
// USER IMAGE STORE
// =============================================================================

// StoreUserImage uploads an image and returns its opaque handle. The
// handle is what travels with a send-message request instead of the raw
// payload.
func (c *Client) StoreUserImage(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to build multipart body", Cause: err}
	}
	if _, err := part.Write(data); err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to build multipart body", Cause: err}
	}
	if err := mw.Close(); err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to build multipart body", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/data/user_image/store", &buf)
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ClientError{
			Type:    ErrTypeRequestFailed,
			Message: "store user image failed: " + resp.Status,
		}
	}

	var handle string
	if err := json.NewDecoder(resp.Body).Decode(&handle); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return handle, nil
}

// GetUserImage resolves a stored-image handle back to its base64 payload.
func (c *Client) GetUserImage(ctx context.Context, userImageID string) (string, error) {
	u := c.config.BaseURL + "/api/data/user_image/" + url.PathEscape(userImageID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ClientError{
			Type:    ErrTypeRequestFailed,
			Message: "fetch user image failed: " + resp.Status,
		}
	}

	var base64Image string
	if err := json.NewDecoder(resp.Body).Decode(&base64Image); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return base64Image, nil
}
