package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateEmail      = errors.New("email already in use")
	ErrDuplicatePick       = errors.New("pick already exists for this game")
	ErrDuplicateSubscriber = errors.New("email already subscribed")
)

// isDuplicateKey reports whether err is a MySQL duplicate-entry error (1062),
// raised when an insert collides with a unique key.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
