package user

import "errors"

var (
	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrManagerAccessRequired = errors.New("manager, HR or admin access required")
	ErrHRAccessRequired      = errors.New("HR or admin access required")
)
