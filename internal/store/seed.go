package store

import "hospital-admin-core/internal/models"

// Seed data used when a collection has no usable value in the durable store.
// Each seed function returns a fresh slice so hydration never hands out
// shared backing arrays.

func seedPatients() []models.Patient {
	return []models.Patient{
		{
			ID:        "p-1001",
			Name:      "John Carter",
			Email:     "john.carter@example.com",
			Age:       45,
			Gender:    models.GenderMale,
			Contact:   "555-0101",
			History:   "Hypertension, under medication since 2021.",
			LastVisit: "2024-02-14",
		},
		{
			ID:        "p-1002",
			Name:      "Maria Lopez",
			Email:     "maria.lopez@example.com",
			Age:       34,
			Gender:    models.GenderFemale,
			Contact:   "555-0102",
			History:   "Seasonal asthma.",
			LastVisit: "2024-01-28",
		},
		{
			ID:        "p-1003",
			Name:      "Ahmed Hassan",
			Age:       58,
			Gender:    models.GenderMale,
			Contact:   "555-0103",
			History:   "Type 2 diabetes, quarterly check-ups.",
			LastVisit: "2024-03-02",
		},
	}
}

func seedDoctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:             "d-2001",
			Name:           "Dr. Sarah Chen",
			Specialization: "Cardiology",
			Contact:        "555-0201",
			Availability:   models.AvailabilityAvailable,
		},
		{
			ID:             "d-2002",
			Name:           "Dr. James Wright",
			Specialization: "Orthopedics",
			Contact:        "555-0202",
			Availability:   models.AvailabilityBusy,
		},
		{
			ID:             "d-2003",
			Name:           "Dr. Priya Nair",
			Specialization: "Pediatrics",
			Contact:        "555-0203",
			Availability:   models.AvailabilityOffDuty,
		},
	}
}

func seedAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:        "a-3001",
			PatientID: "p-1001",
			DoctorID:  "d-2001",
			Date:      "2024-03-15",
			Time:      "09:30",
			Status:    models.StatusScheduled,
			Notes:     "Follow-up on blood pressure readings.",
		},
		{
			ID:        "a-3002",
			PatientID: "p-1002",
			DoctorID:  "d-2003",
			Date:      "2024-03-11",
			Time:      "14:00",
			Status:    models.StatusCompleted,
		},
	}
}

func seedRooms() []models.Room {
	return []models.Room{
		{ID: "101", Status: models.RoomOccupied, CurrentPatient: "John Carter", AssignedDoctor: "Dr. Sarah Chen", OccupiedBeds: 1},
		{ID: "102", Status: models.RoomAvailable},
		{ID: "103", Status: models.RoomAvailable},
		{ID: "104", Status: models.RoomMaintenance},
		{ID: "105", Status: models.RoomReserved, AssignedDoctor: "Dr. James Wright"},
		{ID: "106", Status: models.RoomAvailable},
	}
}
