package sqlite

import "strings"

// The modernc driver surfaces constraint failures as flattened SQLite
// messages, so classification is by message text.
func violatesConstraint(err error, kind string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), kind+" constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return violatesConstraint(err, "FOREIGN KEY")
}

func isUniqueViolation(err error) bool {
	return violatesConstraint(err, "UNIQUE")
}
