package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/muhammadheryan/watch-storefront/constant"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	cerr "github.com/muhammadheryan/watch-storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/echo":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.Equal(t, "9", r.URL.Query().Get("userId"))
			var body map[string]int
			_ = json.NewDecoder(r.Body).Decode(&body)
			_ = json.NewEncoder(w).Encode(map[string]int{"quantity": body["quantity"] + 1})
		case "/api/empty":
			w.WriteHeader(http.StatusNoContent)
		case "/api/fields":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"username":"must not be blank"}`))
		case "/api/nested":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"bad","errors":{"password":"too short"}}`))
		case "/api/message":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Sai tên đăng nhập hoặc mật khẩu"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}
	}))
	defer srv.Close()

	c := backend.NewClient(srv.URL+"/api/", time.Second)
	ctx := context.Background()

	t.Run("success: decodes json", func(t *testing.T) {
		var out map[string]int
		err := c.Do(ctx, backend.Request{
			Method: http.MethodPost,
			Path:   "/echo",
			Query:  url.Values{"userId": {"9"}},
			Token:  "tok",
			Body:   map[string]int{"quantity": 1},
		}, &out)
		require.NoError(t, err)
		assert.Equal(t, 2, out["quantity"])
	})

	t.Run("success: empty body", func(t *testing.T) {
		var out map[string]int
		require.NoError(t, c.Do(ctx, backend.Request{Method: http.MethodDelete, Path: "/empty"}, &out))
	})

	t.Run("error: bare field map", func(t *testing.T) {
		err := c.Do(ctx, backend.Request{Method: http.MethodPost, Path: "/fields"}, nil)
		var apiErr *backend.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, map[string]string{"username": "must not be blank"}, apiErr.Fields)
	})

	t.Run("error: nested field map", func(t *testing.T) {
		err := c.Do(ctx, backend.Request{Method: http.MethodPost, Path: "/nested"}, nil)
		var apiErr *backend.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "bad", apiErr.Message)
		assert.Equal(t, map[string]string{"password": "too short"}, apiErr.Fields)
	})

	t.Run("error: message only", func(t *testing.T) {
		err := c.Do(ctx, backend.Request{Method: http.MethodPost, Path: "/message"}, nil)
		var apiErr *backend.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.True(t, cerr.IsType(backend.MapError(err), constant.ErrUnauthorize))
	})

	t.Run("error: plain text", func(t *testing.T) {
		err := c.Do(ctx, backend.Request{Method: http.MethodGet, Path: "/other"}, nil)
		var apiErr *backend.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "boom", apiErr.Message)
		assert.True(t, cerr.IsType(backend.MapError(err), constant.ErrBackendUnavailable))
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want constant.ErrorType
	}{
		{name: "network failure", err: context.DeadlineExceeded, want: constant.ErrBackendUnavailable},
		{name: "not found", err: &backend.APIError{StatusCode: 404}, want: constant.ErrNotFound},
		{name: "forbidden", err: &backend.APIError{StatusCode: 403}, want: constant.ErrForbidden},
		{name: "field errors", err: &backend.APIError{StatusCode: 400, Fields: map[string]string{"a": "b"}}, want: constant.ErrInvalidRequest},
		{name: "bad request message", err: &backend.APIError{StatusCode: 409, Message: "out of stock"}, want: constant.ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := backend.MapError(tt.err)
			if !cerr.IsType(got, tt.want) {
				t.Fatalf("MapError() = %v, want type %v", got, tt.want)
			}
		})
	}

	if backend.MapError(nil) != nil {
		t.Fatal("MapError(nil) should be nil")
	}
	ce, _ := cerr.As(backend.MapError(&backend.APIError{StatusCode: 409, Message: "out of stock"}))
	if ce.Error() != "out of stock" {
		t.Fatalf("message = %q, want backend message", ce.Error())
	}
}
