package validation

import "errors"

// Error is a user-correctable rejection. Key is a translation key.
type Error struct {
	Key string
}

func (e *Error) Error() string { return "validation: " + e.Key }

func New(key string) error { return &Error{Key: key} }

// KeyOf reports the translation key of a validation error.
func KeyOf(err error) (string, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Key, true
	}
	return "", false
}
