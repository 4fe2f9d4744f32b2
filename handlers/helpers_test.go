package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/club-records/services"
	"github.com/go-chi/chi/v5"
)

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"Alex","jersey_number":7}`},
		{name: "empty", body: ``, wantErr: "body must not be empty"},
		{name: "unknown field", body: `{"nickname":"Al"}`, wantErr: "unknown key"},
		{name: "wrong type", body: `{"jersey_number":"seven"}`, wantErr: "incorrect JSON type"},
		{name: "two values", body: `{} {}`, wantErr: "single JSON value"},
		{name: "broken", body: `{"name":`, wantErr: "badly-formed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			var dst services.LoginInput
			err := readJSON(w, r, &dst)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("readJSON: %v", err)
				}
				if dst.Name != "Alex" || dst.JerseyNumber != 7 {
					t.Fatalf("decoded = %+v", dst)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: &services.ValidationError{Fields: map[string]string{"date": "bad"}}, status: http.StatusUnprocessableEntity},
		{name: "not found", err: services.ErrMatchNotFound, status: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", services.ErrPlayerNotFound), status: http.StatusNotFound},
		{name: "photo storage", err: services.ErrPhotoStorageUnavailable, status: http.StatusServiceUnavailable},
		{name: "persistence", err: fmt.Errorf("%w: boom", services.ErrPersistence), status: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("surprise"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			mapServiceErrorToHTTP(w, r, tt.err)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestServerErrorDoesNotLeakDetails(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	mapServiceErrorToHTTP(w, r, fmt.Errorf("%w: pq: password authentication failed", services.ErrPersistence))

	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("body leaks internal error: %s", w.Body.String())
	}
}

func TestValidationResponseListsFields(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	mapServiceErrorToHTTP(w, r, &services.ValidationError{Fields: map[string]string{"date": "must be provided"}})

	var body struct {
		Error map[string]string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error["date"] != "must be provided" {
		t.Fatalf("error body = %v", body.Error)
	}
}

func TestGetIDFromURL(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{value: "12", want: 12},
		{value: "0", wantErr: true},
		{value: "-4", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("matchID", tt.value)
		r = r.WithContext(contextWithRoute(r, rctx))

		got, err := getIDFromURL(r, "matchID")
		if tt.wantErr {
			if err == nil {
				t.Fatalf("getIDFromURL(%q) = %d, want error", tt.value, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("getIDFromURL(%q) = %d, %v; want %d", tt.value, got, err, tt.want)
		}
	}
}

func TestDayFromRequest(t *testing.T) {
	now := time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)
	clock := services.Clock{Now: func() time.Time { return now }, Location: time.UTC}

	r := httptest.NewRequest(http.MethodGet, "/matches/past", nil)
	day, err := dayFromRequest(r, clock)
	if err != nil || day.String() != "2024-05-20" {
		t.Fatalf("default day = %s, %v; want 2024-05-20", day, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/matches/past?date=2023-01-02", nil)
	day, err = dayFromRequest(r, clock)
	if err != nil || day.String() != "2023-01-02" {
		t.Fatalf("override day = %s, %v; want 2023-01-02", day, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/matches/past?date=yesterday", nil)
	if _, err := dayFromRequest(r, clock); !errors.Is(err, services.ErrValidationFailed) {
		t.Fatalf("bad override err = %v, want validation failure", err)
	}
}

func contextWithRoute(r *http.Request, rctx *chi.Context) context.Context {
	return context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
}
