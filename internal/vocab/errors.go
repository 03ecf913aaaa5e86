package vocab

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrWordNotFound = errors.New("word not found")
)
