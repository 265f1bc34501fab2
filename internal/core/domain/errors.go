package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthorized = errors.New("session not authorized")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrNotFound = errors.New("resource not found")
var ErrSessionNotFound = errors.New("session not found")
var ErrSessionCorrupt = errors.New("stored session data is corrupt")
var ErrUpstream = errors.New("upstream request failed")
