package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrNoEnrolledCourses = errors.New("no enrolled courses found")
	ErrNoFileUploaded    = errors.New("no file uploaded")
	ErrPermissionDenied  = errors.New("permission denied")
)
