package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestConsumer_handle(t *testing.T) {
	var calls int32
	var status int32 = http.StatusNoContent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.URL.Path != "/internal/v1/history/9/invalidate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(int(atomic.LoadInt32(&status)))
	}))
	defer srv.Close()

	c := &Consumer{apiURL: srv.URL, apiKey: "key", http: &http.Client{Timeout: time.Second}}
	ctx := context.Background()

	tests := []struct {
		name        string
		body        string
		status      int32
		wantErr     bool
		wantRequeue bool
		wantCalls   int32
	}{
		{name: "success: api called", body: `{"user_id":9,"reason":"checkout_reconciled"}`, status: http.StatusNoContent, wantCalls: 1},
		{name: "error: malformed body dropped", body: `{`, status: http.StatusNoContent, wantErr: true, wantCalls: 0},
		{name: "error: missing user dropped", body: `{"reason":"x"}`, status: http.StatusNoContent, wantErr: true, wantCalls: 0},
		{name: "error: api failure requeued", body: `{"user_id":9}`, status: http.StatusInternalServerError, wantErr: true, wantRequeue: true, wantCalls: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atomic.StoreInt32(&calls, 0)
			atomic.StoreInt32(&status, tt.status)

			requeue, err := c.handle(ctx, []byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("handle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if requeue != tt.wantRequeue {
				t.Fatalf("requeue = %v, want %v", requeue, tt.wantRequeue)
			}
			if got := atomic.LoadInt32(&calls); got != tt.wantCalls {
				t.Fatalf("api calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}
