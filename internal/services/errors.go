package services

import "strings"

// isForeignKeyViolation reports whether a store error is a foreign key
// rejection. Matches the message text because mysql, postgres, sqlite and
// sqlserver each surface constraint violations through a different error
// type, but all mention the constraint kind.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
