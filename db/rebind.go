package db

import "strings"

// Rebind rewrites postgres-style $N placeholders into the form the driver
// understands. SQLite accepts ?N, which keeps the explicit numbering.
func Rebind(driver, query string) string {
	if driver != DriverSQLite || !strings.Contains(query, "$") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '$' && !inQuote && i+1 < len(query) && isDigit(query[i+1]):
			b.WriteByte('?')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
