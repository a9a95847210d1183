package service

import "errors"

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrCompletionFailed   = errors.New("summary generation failed")
	ErrStorageUnavailable = errors.New("cover storage is not configured")
	ErrUnsupportedCover   = errors.New("cover must be an image")
	ErrCoverNotFound      = errors.New("book has no cover")
)
