package db

import "testing"

func TestRebind(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		in     string
		want   string
	}{
		{
			name:   "postgres untouched",
			driver: DriverPostgres,
			in:     "SELECT * FROM matches WHERE id = $1",
			want:   "SELECT * FROM matches WHERE id = $1",
		},
		{
			name:   "sqlite numbered",
			driver: DriverSQLite,
			in:     "UPDATE matches SET match_result = $1 WHERE id = $12",
			want:   "UPDATE matches SET match_result = ?1 WHERE id = ?12",
		},
		{
			name:   "sqlite quoted dollar kept",
			driver: DriverSQLite,
			in:     "SELECT '$1' , $2",
			want:   "SELECT '$1' , ?2",
		},
		{
			name:   "sqlite bare dollar kept",
			driver: DriverSQLite,
			in:     "SELECT $ FROM t",
			want:   "SELECT $ FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rebind(tt.driver, tt.in); got != tt.want {
				t.Fatalf("Rebind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
