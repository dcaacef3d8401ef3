// Package api implements the REST transport for the recommendation
// backend: request construction, bearer-auth headers, and classification
// of HTTP statuses into the typed error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/example/covermate/internal/logging"
)

// TokenSource supplies the bearer token attached to authenticated
// requests. A missing token yields an empty Authorization credential;
// the server answers 401 and the caller sees ErrUnauthorized.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Doer is the transport contract consumed by the domain services.
// body is marshalled to JSON when non-nil; out, when non-nil, receives
// the decoded 2xx response body.
type Doer interface {
	Send(ctx context.Context, method, path string, body, out any, requiresAuth bool) error
}

// Client is the HTTP implementation of Doer. One attempt per call:
// no retries, no backoff, no response caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
}

// Config carries the client settings.
type Config struct {
	// BaseURL is the server root; request URLs are BaseURL + "/" + path.
	BaseURL string
	// Timeout bounds the whole round trip. Zero means 30 seconds.
	Timeout time.Duration
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// New creates a Client. tokens supplies bearer credentials for
// authenticated endpoints.
func New(cfg Config, tokens TokenSource, log logging.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		log:        log,
	}
}

// Send performs one round trip and classifies the outcome:
//
//	2xx        — decode into out (DecodingFailed on malformed body)
//	401        — ErrUnauthorized, body ignored
//	422        — ValidationError from the structured detail list
//	other 4xx  — ServerError with the extracted message
//	5xx        — ServerError with the extracted message
//	anything else — UnknownError carrying the raw body
//
// Failures below HTTP (DNS, refused connection) come back as
// RequestFailed wrapping the underlying error.
func (c *Client) Send(ctx context.Context, method, path string, body, out any, requiresAuth bool) error {
	reqURL := c.baseURL + "/" + path
	if _, err := url.ParseRequestURI(reqURL); err != nil {
		return &Error{Kind: KindInvalidURL, Err: err}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindDecodingFailed, Message: "failed to encode request body", Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return &Error{Kind: KindInvalidURL, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if requiresAuth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			token = ""
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "sending request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindRequestFailed, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindInvalidResponse, Err: err}
	}

	c.log.Debug(ctx, "received response", "method", method, "url", reqURL, "status", resp.StatusCode)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: KindDecodingFailed, Err: err}
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized

	case resp.StatusCode == http.StatusUnprocessableEntity:
		return validationError(data)

	case resp.StatusCode >= 400 && resp.StatusCode <= 499:
		return &Error{Kind: KindServer, Message: extractErrorMessage(data, "Client error")}

	case resp.StatusCode >= 500 && resp.StatusCode <= 599:
		return &Error{Kind: KindServer, Message: extractErrorMessage(data, "Server error")}

	default:
		return &Error{Kind: KindUnknown, Message: string(data)}
	}
}

// validationError decodes a structured 422 body and joins the messages in
// array order. A body that does not carry the detail list at all degrades
// to a generic message embedding the raw text.
func validationError(data []byte) error {
	var body validationErrorBody
	if err := json.Unmarshal(data, &body); err != nil || body.Detail == nil {
		return &Error{Kind: KindValidation, Message: "Validation failed: " + string(data)}
	}
	msgs := make([]string, 0, len(body.Detail))
	for _, d := range body.Detail {
		msgs = append(msgs, d.Msg)
	}
	return &Error{Kind: KindValidation, Message: strings.Join(msgs, ", ")}
}

// extractErrorMessage pulls a human-readable message out of a generic
// error body, trying the known shapes in order: a "message" string, a
// "detail" string, a "detail" array of {msg}. Bodies matching none of
// these are returned verbatim; an empty body yields the fallback.
func extractErrorMessage(data []byte, fallback string) string {
	if m := gjson.GetBytes(data, "message"); m.Type == gjson.String {
		return m.Str
	}
	detail := gjson.GetBytes(data, "detail")
	if detail.Type == gjson.String {
		return detail.Str
	}
	if detail.IsArray() {
		var msgs []string
		for _, item := range detail.Array() {
			if msg := item.Get("msg"); msg.Type == gjson.String {
				msgs = append(msgs, msg.Str)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, ", ")
		}
	}
	if s := strings.TrimSpace(string(data)); s != "" {
		return s
	}
	return fallback
}
