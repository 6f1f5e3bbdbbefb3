package models

// AllModels returns every model that participates in auto migration, in
// dependency order.
func AllModels() []any {
	return []any{
		&Session{},
		&Event{},
		&RSVP{},
		&Attendance{},
		&Bookmark{},
	}
}
