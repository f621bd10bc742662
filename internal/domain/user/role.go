package user

import "errors"

// Role is the access level carried in the JWT issued by the campus
// account service.
type Role string

const (
	RoleManager Role = "manager"
	RoleTeacher Role = "teacher"
)

var (
	ErrInvalidToken          = errors.New("invalid or missing access token")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrTeacherAccessRequired = errors.New("teacher access required")
)
