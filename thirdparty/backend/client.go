package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/utils/errors"
)

// Client talks to the shop REST API. Every call is a single attempt.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Token  string
	Body   interface{}
}

// APIError is a non-2xx answer of the shop backend.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend status %d", e.StatusCode)
}

// Do sends req and decodes a successful JSON body into out (which may be nil).
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// parseAPIError understands {"message": "..."}, {"errors": {field: msg}} and
// a bare {field: msg} object.
func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}

	if m, ok := obj["message"]; ok {
		_ = json.Unmarshal(m, &apiErr.Message)
	}
	if e, ok := obj["errors"]; ok {
		fields := map[string]string{}
		if json.Unmarshal(e, &fields) == nil && len(fields) > 0 {
			apiErr.Fields = fields
		}
		return apiErr
	}
	if apiErr.Message != "" {
		return apiErr
	}

	fields := map[string]string{}
	for k, v := range obj {
		var s string
		if json.Unmarshal(v, &s) != nil {
			return apiErr
		}
		fields[k] = s
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}

// MapError turns a backend failure into the storefront error taxonomy.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		return errors.SetCustomError(constant.ErrBackendUnavailable)
	}
	switch {
	case apiErr.StatusCode == http.StatusUnauthorized:
		return errors.SetCustomError(constant.ErrUnauthorize)
	case apiErr.StatusCode == http.StatusForbidden:
		return errors.SetCustomError(constant.ErrForbidden)
	case apiErr.StatusCode == http.StatusNotFound:
		return errors.SetCustomError(constant.ErrNotFound)
	case len(apiErr.Fields) > 0:
		return errors.SetValidationError(apiErr.Fields)
	case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		if apiErr.Message != "" {
			return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, apiErr.Message)
		}
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return errors.SetCustomError(constant.ErrBackendUnavailable)
}
