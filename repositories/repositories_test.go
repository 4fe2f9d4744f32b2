package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/club-records/db"
	"github.com/Dosada05/club-records/db/dbtest"
	"github.com/Dosada05/club-records/models"
)

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func createMatch(t *testing.T, repo MatchRepository, day, location string) *models.Match {
	t.Helper()
	m := &models.Match{Result: "TBD", Lineup: "4-4-2", Date: date(t, day), Time: "15:00", Location: location}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("create match %s: %v", day, err)
	}
	return m
}

func matchIDs(matches []models.Match) []int {
	ids := make([]int, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMatchRepositoryCreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLMatchRepository(dbtest.OpenSQLite(t), db.DriverSQLite)

	m := createMatch(t, repo, "2024-01-10", "Park A")
	if m.ID == 0 {
		t.Fatal("expected id to be assigned")
	}

	got, err := repo.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if *got != *m {
		t.Fatalf("get match = %+v, want %+v", *got, *m)
	}

	m.Result = "2-1"
	m.Date = date(t, "2024-01-11")
	m.Location = "Park B"
	if err := repo.Update(ctx, m); err != nil {
		t.Fatalf("update match: %v", err)
	}
	got, err = repo.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("get updated match: %v", err)
	}
	if *got != *m {
		t.Fatalf("updated match = %+v, want %+v", *got, *m)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("get missing match err = %v, want ErrMatchNotFound", err)
	}
	missing := *m
	missing.ID = 999
	if err := repo.Update(ctx, &missing); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("update missing match err = %v, want ErrMatchNotFound", err)
	}

	exists, err := repo.Exists(ctx, m.ID)
	if err != nil || !exists {
		t.Fatalf("Exists(%d) = %v, %v; want true", m.ID, exists, err)
	}
	exists, err = repo.Exists(ctx, 999)
	if err != nil || exists {
		t.Fatalf("Exists(999) = %v, %v; want false", exists, err)
	}
}

func TestMatchRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLMatchRepository(dbtest.OpenSQLite(t), db.DriverSQLite)

	a := createMatch(t, repo, "2024-01-10", "Park A")
	b := createMatch(t, repo, "2024-06-01", "Park A")
	c := createMatch(t, repo, "2024-03-15", "Stadium")
	d := createMatch(t, repo, "2024-06-01", "Stadium")

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	// Date descending, same-day matches in insertion order.
	if want := []int{b.ID, d.ID, c.ID, a.ID}; !equalInts(matchIDs(all), want) {
		t.Fatalf("ListAll ids = %v, want %v", matchIDs(all), want)
	}

	cut := date(t, "2024-03-15")
	past, err := repo.ListBefore(ctx, cut)
	if err != nil {
		t.Fatalf("list before: %v", err)
	}
	if want := []int{a.ID}; !equalInts(matchIDs(past), want) {
		t.Fatalf("ListBefore ids = %v, want %v", matchIDs(past), want)
	}

	upcoming, err := repo.ListOnOrAfter(ctx, cut)
	if err != nil {
		t.Fatalf("list on or after: %v", err)
	}
	if want := []int{b.ID, d.ID, c.ID}; !equalInts(matchIDs(upcoming), want) {
		t.Fatalf("ListOnOrAfter ids = %v, want %v", matchIDs(upcoming), want)
	}

	options, err := repo.ListOptions(ctx)
	if err != nil {
		t.Fatalf("list options: %v", err)
	}
	if len(options) != 4 || options[0].ID != b.ID || options[0].Date.String() != "2024-06-01" {
		t.Fatalf("ListOptions = %+v", options)
	}
}

func TestPlayerRepositoryIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLPlayerRepository(dbtest.OpenSQLite(t), db.DriverSQLite)

	if _, err := repo.FindByIdentity(ctx, "Alex", 7); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("empty directory err = %v, want ErrPlayerNotFound", err)
	}

	first := &models.Player{Name: "Alex", Age: 21, JerseyNumber: 7, Nationality: "NL"}
	second := &models.Player{Name: "Alex", Age: 30, JerseyNumber: 7, Nationality: "BE"}
	other := &models.Player{Name: "alex", Age: 19, JerseyNumber: 7, Nationality: "DE"}
	for _, p := range []*models.Player{first, second, other} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create player: %v", err)
		}
	}

	got, err := repo.FindByIdentity(ctx, "Alex", 7)
	if err != nil {
		t.Fatalf("find identity: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("FindByIdentity id = %d, want first registered %d", got.ID, first.ID)
	}
	if _, err := repo.FindByIdentity(ctx, "Alex", 8); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("wrong jersey err = %v, want ErrPlayerNotFound", err)
	}

	players, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 3 || players[0].ID != first.ID || players[2].ID != other.ID {
		t.Fatalf("List = %+v", players)
	}
}

func TestPlayerRepositoryPhotoKey(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLPlayerRepository(dbtest.OpenSQLite(t), db.DriverSQLite)

	p := &models.Player{Name: "Sam", JerseyNumber: 9}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create player: %v", err)
	}
	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.PhotoKey != nil {
		t.Fatalf("new player photo key = %q, want nil", *got.PhotoKey)
	}

	key := "players/1/photo.png"
	if err := repo.UpdatePhotoKey(ctx, p.ID, &key); err != nil {
		t.Fatalf("update photo key: %v", err)
	}
	got, err = repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.PhotoKey == nil || *got.PhotoKey != key {
		t.Fatalf("photo key = %v, want %q", got.PhotoKey, key)
	}

	if err := repo.UpdatePhotoKey(ctx, 999, &key); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("update missing player err = %v, want ErrPlayerNotFound", err)
	}
}

func TestStatRepository(t *testing.T) {
	ctx := context.Background()
	conn := dbtest.OpenSQLite(t)
	matches := NewSQLMatchRepository(conn, db.DriverSQLite)
	stats := NewSQLStatRepository(conn, db.DriverSQLite)

	m1 := createMatch(t, matches, "2024-01-10", "Park A")
	m2 := createMatch(t, matches, "2024-02-10", "Park A")

	records := []*models.StatRecord{
		{PlayerName: "Alex", Goals: 2, Assists: 1, Rating: 8.5, Cards: 0, MatchID: m2.ID},
		{PlayerName: "Sam", Goals: 0, Assists: 0, Rating: 6, Cards: 1, MatchID: m1.ID},
		{PlayerName: "Jo", Goals: 1, Assists: 0, Rating: 7, Cards: 0, MatchID: m2.ID},
	}
	for _, s := range records {
		if err := stats.Create(ctx, s); err != nil {
			t.Fatalf("create stat: %v", err)
		}
	}

	all, err := stats.ListAll(ctx)
	if err != nil {
		t.Fatalf("list stats: %v", err)
	}
	if len(all) != 3 || all[0] != *records[0] || all[2] != *records[2] {
		t.Fatalf("ListAll = %+v", all)
	}

	forM2, err := stats.ListByMatch(ctx, m2.ID)
	if err != nil {
		t.Fatalf("list by match: %v", err)
	}
	if len(forM2) != 2 || forM2[0].ID != records[0].ID || forM2[1].ID != records[2].ID {
		t.Fatalf("ListByMatch = %+v", forM2)
	}

	none, err := stats.ListByMatch(ctx, 999)
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("ListByMatch(999) = %v, %v; want empty slice", none, err)
	}

	err = stats.Create(ctx, &models.StatRecord{PlayerName: "Ghost", MatchID: 999})
	if !errors.Is(err, ErrStatMatchInvalid) {
		t.Fatalf("create stat for missing match err = %v, want ErrStatMatchInvalid", err)
	}
}

func TestReportRepository(t *testing.T) {
	ctx := context.Background()
	conn := dbtest.OpenSQLite(t)
	matches := NewSQLMatchRepository(conn, db.DriverSQLite)
	stats := NewSQLStatRepository(conn, db.DriverSQLite)
	reports := NewSQLReportRepository(conn, db.DriverSQLite)

	empty, err := reports.SummaryCounts(ctx, models.NewDate(2024, time.March, 1))
	if err != nil {
		t.Fatalf("summary on empty store: %v", err)
	}
	if empty != (models.SummaryCounts{}) {
		t.Fatalf("empty summary = %+v, want zeros", empty)
	}

	m1 := createMatch(t, matches, "2024-01-10", "Stadium")
	createMatch(t, matches, "2024-03-01", "Park A")
	createMatch(t, matches, "2024-06-01", "Stadium")
	createMatch(t, matches, "2024-07-01", "park a")

	counts, err := reports.SummaryCounts(ctx, models.NewDate(2024, time.March, 1))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if want := (models.SummaryCounts{Total: 4, Past: 1, Upcoming: 3}); counts != want {
		t.Fatalf("summary = %+v, want %+v", counts, want)
	}

	groups, err := reports.LocationBreakdown(ctx)
	if err != nil {
		t.Fatalf("location breakdown: %v", err)
	}
	want := []models.LocationCount{
		{Location: "Stadium", Count: 2},
		{Location: "Park A", Count: 1},
		{Location: "park a", Count: 1},
	}
	if len(groups) != len(want) {
		t.Fatalf("groups = %+v, want %+v", groups, want)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Fatalf("groups[%d] = %+v, want %+v", i, groups[i], want[i])
		}
	}

	for _, s := range []*models.StatRecord{
		{PlayerName: "Sam", Goals: 1, Assists: 0, Rating: 6, Cards: 1, MatchID: m1.ID},
		{PlayerName: "Alex", Goals: 2, Assists: 1, Rating: 8, MatchID: m1.ID},
		{PlayerName: "Sam", Goals: 1, Assists: 2, Rating: 7, Cards: 1, MatchID: m1.ID},
		{PlayerName: "Jo", Goals: 2, Assists: 1, Rating: 9, MatchID: m1.ID},
	} {
		if err := stats.Create(ctx, s); err != nil {
			t.Fatalf("create stat: %v", err)
		}
	}

	totals, err := reports.PlayerTotals(ctx)
	if err != nil {
		t.Fatalf("player totals: %v", err)
	}
	// Sam ties Alex and Jo on goals but leads on assists; Alex and Jo tie fully.
	wantTotals := []models.PlayerTotals{
		{PlayerName: "Sam", Appearances: 2, Goals: 2, Assists: 2, Cards: 2, AverageRating: 6.5},
		{PlayerName: "Alex", Appearances: 1, Goals: 2, Assists: 1, Cards: 0, AverageRating: 8},
		{PlayerName: "Jo", Appearances: 1, Goals: 2, Assists: 1, Cards: 0, AverageRating: 9},
	}
	if len(totals) != len(wantTotals) {
		t.Fatalf("totals = %+v, want %+v", totals, wantTotals)
	}
	for i := range wantTotals {
		if totals[i] != wantTotals[i] {
			t.Fatalf("totals[%d] = %+v, want %+v", i, totals[i], wantTotals[i])
		}
	}
}
