package domain

import "errors"

var (
	ErrInvalidURL    = errors.New("invalid url: must be an absolute http(s) url")
	ErrInvalidTTL    = errors.New("invalid ttl")
	ErrInvalidCode   = errors.New("invalid short code format")
	ErrCodeTaken     = errors.New("short code already exists")
	ErrCodeExhausted = errors.New("could not generate a unique short code")
	ErrLinkNotFound  = errors.New("link not found")
	ErrLinkExpired   = errors.New("link has expired")
	ErrStorage       = errors.New("storage error")
)
