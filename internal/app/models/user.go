package models

import "time"

// User is an identity allowed to administer student records. The id is a
// fresh UUID assigned when the row is created. Password holds only the
// bcrypt hash, never plaintext.
type User struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Gender     *string
	Password   string
	DateJoined time.Time
}
