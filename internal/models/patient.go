package models

// Gender enum
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Patient represents a patient registered with the hospital.
type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Age       int    `json:"age"`
	Gender    Gender `json:"gender"`
	Contact   string `json:"contact"`
	History   string `json:"history"`
	LastVisit string `json:"lastVisit"`
}
