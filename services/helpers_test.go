package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/club-records/db"
	"github.com/Dosada05/club-records/db/dbtest"
	"github.com/Dosada05/club-records/models"
	"github.com/Dosada05/club-records/repositories"
	"github.com/Dosada05/club-records/storage"
)

type recordedBroadcast struct {
	room    string
	message interface{}
}

type fakeFeed struct {
	mu   sync.Mutex
	sent []recordedBroadcast
}

func (f *fakeFeed) BroadcastToRoom(roomID string, message interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, recordedBroadcast{room: roomID, message: message})
}

func (f *fakeFeed) rooms() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	rooms := make([]string, 0, len(f.sent))
	for _, b := range f.sent {
		rooms = append(rooms, b.room)
	}
	return rooms
}

type fakeUploader struct {
	objects   map[string][]byte
	deleted   []string
	uploadErr error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (u *fakeUploader) Upload(_ context.Context, key, _ string, reader io.Reader) (*storage.UploadResult, error) {
	if u.uploadErr != nil {
		return nil, u.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.objects[key] = data
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.test/" + key
}

type testEnv struct {
	conn    *sql.DB
	feed    *fakeFeed
	players PlayerService
	matches MatchService
	stats   StatService
	reports ReportService
}

func newTestEnv(t *testing.T, uploader storage.FileUploader) *testEnv {
	t.Helper()
	conn := dbtest.OpenSQLite(t)
	feed := &fakeFeed{}

	playerRepo := repositories.NewSQLPlayerRepository(conn, db.DriverSQLite)
	matchRepo := repositories.NewSQLMatchRepository(conn, db.DriverSQLite)
	statRepo := repositories.NewSQLStatRepository(conn, db.DriverSQLite)
	reportRepo := repositories.NewSQLReportRepository(conn, db.DriverSQLite)

	matches := NewMatchService(matchRepo, feed, nil)
	stats := NewStatService(statRepo, matchRepo, feed, nil)
	return &testEnv{
		conn:    conn,
		feed:    feed,
		players: NewPlayerService(playerRepo, uploader, nil),
		matches: matches,
		stats:   stats,
		reports: NewReportService(reportRepo, matches, stats),
	}
}

func (e *testEnv) createMatch(t *testing.T, day, location string) *models.Match {
	t.Helper()
	m, err := e.matches.CreateMatch(context.Background(), MatchInput{
		Result:   "TBD",
		Lineup:   "4-3-3",
		Date:     day,
		Location: location,
		Time:     "19:45",
	})
	if err != nil {
		t.Fatalf("create match %s: %v", day, err)
	}
	return m
}

func (e *testEnv) matchCount(t *testing.T) int {
	t.Helper()
	var n int
	if err := e.conn.QueryRow("SELECT COUNT(*) FROM matches").Scan(&n); err != nil {
		t.Fatalf("count matches: %v", err)
	}
	return n
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func assertValidationField(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("err = %v, want it to wrap ErrValidationFailed", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Fatalf("validation fields = %v, want %q", verr.Fields, field)
	}
}

func fixedClock(day string) Clock {
	now, _ := time.Parse(time.RFC3339, day+"T12:00:00Z")
	return Clock{Now: func() time.Time { return now }, Location: time.UTC}
}
