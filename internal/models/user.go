package models

// Role enum
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RoleNurse   Role = "Nurse"
	RolePatient Role = "Patient"
)

// User represents the currently signed-in operator. It lives only in memory
// for the duration of a session and is never mirrored to storage.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}
