package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Dosada05/club-records/live"
)

func TestRecordThenListForMatch(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	m := env.createMatch(t, "2024-01-10", "Park A")

	stat, err := env.stats.RecordStat(ctx, RecordStatInput{
		PlayerName: "Alex", Goals: 2, Assists: 1, Rating: 8.5, Cards: 0, MatchID: m.ID,
	})
	if err != nil {
		t.Fatalf("record stat: %v", err)
	}
	if stat.ID == 0 {
		t.Fatal("expected stat id to be assigned")
	}

	forMatch, err := env.stats.ListStatsForMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list for match: %v", err)
	}
	found := false
	for _, s := range forMatch {
		if s == *stat {
			found = true
		}
	}
	if !found {
		t.Fatalf("ListStatsForMatch = %+v, missing %+v", forMatch, *stat)
	}

	unused, err := env.stats.ListStatsForMatch(ctx, 12345)
	if err != nil {
		t.Fatalf("list for unused match: %v", err)
	}
	if unused == nil || len(unused) != 0 {
		t.Fatalf("ListStatsForMatch(unused) = %v, want empty slice", unused)
	}
}

func TestListStatsInEntryOrder(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	m1 := env.createMatch(t, "2024-06-01", "Park A")
	m2 := env.createMatch(t, "2024-01-01", "Park A")

	names := []string{"Sam", "Alex", "Jo"}
	for i, name := range names {
		matchID := m1.ID
		if i == 1 {
			matchID = m2.ID
		}
		if _, err := env.stats.RecordStat(ctx, RecordStatInput{PlayerName: name, MatchID: matchID}); err != nil {
			t.Fatalf("record stat: %v", err)
		}
	}

	all, err := env.stats.ListStats(ctx)
	if err != nil {
		t.Fatalf("list stats: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("list stats = %+v", all)
	}
	for i, name := range names {
		if all[i].PlayerName != name {
			t.Fatalf("stats[%d] = %q, want %q", i, all[i].PlayerName, name)
		}
	}
}

func TestRecordStatValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	m := env.createMatch(t, "2024-01-10", "Park A")

	tests := []struct {
		name  string
		input RecordStatInput
		field string
	}{
		{name: "blank player", input: RecordStatInput{PlayerName: "  ", MatchID: m.ID}, field: "player_name"},
		{name: "negative goals", input: RecordStatInput{PlayerName: "Alex", Goals: -1, MatchID: m.ID}, field: "goals"},
		{name: "negative assists", input: RecordStatInput{PlayerName: "Alex", Assists: -2, MatchID: m.ID}, field: "assists"},
		{name: "negative cards", input: RecordStatInput{PlayerName: "Alex", Cards: -1, MatchID: m.ID}, field: "cards"},
		{name: "nan rating", input: RecordStatInput{PlayerName: "Alex", Rating: math.NaN(), MatchID: m.ID}, field: "rating"},
		{name: "infinite rating", input: RecordStatInput{PlayerName: "Alex", Rating: math.Inf(1), MatchID: m.ID}, field: "rating"},
		{name: "unknown match", input: RecordStatInput{PlayerName: "Alex", MatchID: m.ID + 100}, field: "match_id"},
		{name: "zero match", input: RecordStatInput{PlayerName: "Alex"}, field: "match_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.stats.RecordStat(ctx, tt.input)
			assertValidationField(t, err, tt.field)
		})
	}

	all, err := env.stats.ListStats(ctx)
	if err != nil {
		t.Fatalf("list stats: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("rejected stats were stored: %+v", all)
	}
}

func TestRecordStatAcceptsUnregisteredPlayerName(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.createMatch(t, "2024-01-10", "Park A")

	if _, err := env.stats.RecordStat(context.Background(), RecordStatInput{PlayerName: "Trialist", MatchID: m.ID}); err != nil {
		t.Fatalf("record stat for free-text name: %v", err)
	}
}

func TestRecordStatIsPublished(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.createMatch(t, "2024-01-10", "Park A")
	before := len(env.feed.rooms())

	if _, err := env.stats.RecordStat(context.Background(), RecordStatInput{PlayerName: "Alex", MatchID: m.ID}); err != nil {
		t.Fatalf("record stat: %v", err)
	}

	rooms := env.feed.rooms()[before:]
	if len(rooms) != 2 || rooms[0] != live.RoomFixtures || rooms[1] != live.MatchRoom(m.ID) {
		t.Fatalf("rooms = %v", rooms)
	}
	msg := env.feed.sent[before].message.(live.Message)
	if msg.Type != live.MessageStatRecorded {
		t.Fatalf("message type = %q, want %q", msg.Type, live.MessageStatRecorded)
	}
}

func TestRecordStatOnClosedStore(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.createMatch(t, "2024-01-10", "Park A")
	if err := env.conn.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	_, err := env.stats.RecordStat(context.Background(), RecordStatInput{PlayerName: "Alex", MatchID: m.ID})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("err = %v, want ErrPersistence", err)
	}
	if _, err := env.stats.ListStatsForMatch(context.Background(), m.ID); !errors.Is(err, ErrPersistence) {
		t.Fatalf("list err = %v, want ErrPersistence", err)
	}
}
