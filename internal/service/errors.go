package service

import "errors"

// 业务错误由 handler 统一映射到 HTTP 状态码：
// 校验类 400、缺失类 404、冲突类 409
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrTagNotFound     = errors.New("tag not found")

	ErrEmailTaken    = errors.New("email already registered")
	ErrProfileExists = errors.New("user already has a profile")

	ErrInvalidStatus = errors.New("status must be one of active, draft, archived")
	ErrTitleTooShort = errors.New("title must be at least 5 characters long")
)
