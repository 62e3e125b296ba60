package service

import "errors"

var (
	ErrInternal      = errors.New("internal server error")
	ErrPostNotFound  = errors.New("post not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrSlugTaken     = errors.New("group slug is already taken")
)
