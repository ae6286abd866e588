package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"tabi/internal/chat"
	"tabi/internal/ledger"
	"tabi/internal/log"
	"tabi/internal/storage"
)

type stubAssistant struct {
	reply string
	delay time.Duration
}

func (a stubAssistant) Send(ctx context.Context, _ string) string {
	if a.delay > 0 {
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
		}
	}
	return a.reply
}

func newTestServer(t *testing.T, assistant chat.Assistant) *Server {
	t.Helper()

	store := ledger.New(storage.NewMemoryStore(), ledger.DefaultOptions())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	srv, err := NewServer(Config{
		Addr:        "127.0.0.1:0",
		Store:       store,
		Assistant:   assistant,
		ChatTimeout: time.Second,
		Logger:      log.New(log.Config{Component: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func (s *Server) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestIndexRenders(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	rec := srv.do(http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"東京之旅", "品川王子大飯店", "ledger-panel"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestHealthAndReady(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	if rec := srv.do(http.MethodGet, "/healthz", nil); rec.Code != http.StatusOK {
		t.Errorf("GET /healthz = %d, want 200", rec.Code)
	}
	if rec := srv.do(http.MethodGet, "/readyz", nil); rec.Code != http.StatusOK {
		t.Errorf("GET /readyz = %d, want 200", rec.Code)
	}
}

func TestAddExpenseUpdatesLedger(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	rec := srv.do(http.MethodPost, "/expenses", url.Values{
		"title":    {"拉麵"},
		"amount":   {"1200"},
		"category": {"餐飲"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /expenses = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "拉麵") {
		t.Error("response fragment missing the new expense")
	}

	// The fragment endpoint reflects the mutation immediately.
	view := srv.do(http.MethodGet, "/ui/ledger", nil)
	if !strings.Contains(view.Body.String(), "拉麵") {
		t.Error("GET /ui/ledger missing the new expense; stale cache?")
	}
}

func TestAddExpenseRejectsBadInput(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	tests := []struct {
		name string
		form url.Values
	}{
		{"empty title", url.Values{"title": {"  "}, "amount": {"100"}, "category": {"餐飲"}}},
		{"zero amount", url.Values{"title": {"x"}, "amount": {"0"}, "category": {"餐飲"}}},
		{"negative amount", url.Values{"title": {"x"}, "amount": {"-5"}, "category": {"餐飲"}}},
		{"unknown category", url.Values{"title": {"x"}, "amount": {"100"}, "category": {"nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(http.MethodPost, "/expenses", tt.form)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	rec := srv.do(http.MethodPost, "/expenses/delete", url.Values{"id": {"initial-hotel"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed delete = %d, want 400", rec.Code)
	}
	if view := srv.do(http.MethodGet, "/ui/ledger", nil); !strings.Contains(view.Body.String(), "品川王子大飯店") {
		t.Error("record removed without confirmation")
	}

	rec = srv.do(http.MethodPost, "/expenses/delete", url.Values{"id": {"initial-hotel"}, "confirm": {"1"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("confirmed delete = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "品川王子大飯店") {
		t.Error("record still present after confirmed delete")
	}
}

func TestDeleteUnknownID(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	rec := srv.do(http.MethodPost, "/expenses/delete", url.Values{"id": {"no-such"}, "confirm": {"1"}})
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete unknown = %d, want 404", rec.Code)
	}
}

func TestTogglePaid(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	rec := srv.do(http.MethodPost, "/expenses/toggle", url.Values{"id": {"initial-hotel"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle = %d, want 200", rec.Code)
	}
	if rec := srv.do(http.MethodPost, "/expenses/toggle", url.Values{"id": {"missing"}}); rec.Code != http.StatusNotFound {
		t.Errorf("toggle unknown = %d, want 404", rec.Code)
	}
}

func TestSetRate(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	rec := srv.do(http.MethodPost, "/rate", url.Values{"rate": {"0.22"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /rate = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "0.22") {
		t.Error("fragment does not show the new rate")
	}
	if rec := srv.do(http.MethodPost, "/rate", url.Values{"rate": {"-1"}}); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid rate = %d, want 400", rec.Code)
	}
}

func TestMarkersJSON(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	rec := srv.do(http.MethodGet, "/api/markers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/markers = %d, want 200", rec.Code)
	}

	var markers []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &markers); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(markers) == 0 {
		t.Fatal("no markers returned")
	}
	for _, m := range markers {
		if m["color"] == "" {
			t.Errorf("marker %v missing color", m["title"])
		}
	}
}

func TestChatRoundTrip(t *testing.T) {
	srv := newTestServer(t, stubAssistant{reply: "富士山在靜岡縣"})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"富士山在哪裡？"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /chat = %d", rec.Code)
	}
	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Reply != "富士山在靜岡縣" {
		t.Errorf("reply = %q", resp.Reply)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	srv := newTestServer(t, chat.Disabled{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty chat = %d, want 400", rec.Code)
	}
}

func TestChatBusyLatch(t *testing.T) {
	srv := newTestServer(t, stubAssistant{reply: "ok", delay: 200 * time.Millisecond})

	done := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"first"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rec, req)
		done <- rec.Code
	}()

	time.Sleep(50 * time.Millisecond)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"second"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("concurrent chat = %d, want 429", rec.Code)
	}

	if code := <-done; code != http.StatusOK {
		t.Errorf("first chat = %d, want 200", code)
	}
}
