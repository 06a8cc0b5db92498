package domain

import "time"

// User represents a bot user
type User struct {
	UserID    int64
	Username  string
	CreatedAt time.Time
}

// Selection is a user's persistent level/category choice. It lives in the
// database and survives restarts, unlike quiz progress which is held in a
// volatile Session.
type Selection struct {
	UserID   int64
	Level    int    // 0 means no level chosen yet
	Category string // empty means no category chosen yet
}

// Active reports whether both a level and a category have been chosen.
// Card rendering and add/delete flows require an active selection.
func (s *Selection) Active() bool {
	return s != nil && s.Level > 0 && s.Category != ""
}
