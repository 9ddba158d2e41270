package student

import (
	"time"

	"univadmin/internal/domain"
)

type ListQuery struct {
	Search string `query:"search" validate:"max=100"`
	Status string `query:"status" validate:"omitempty,oneof=all active suspended pending"`
	Level  string `query:"level" validate:"omitempty,oneof=all beginner intermediate expert"`
}

type StudentDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status"`
	GigsCount        int       `json:"gigsCount"`
	ProfileLevel     string    `json:"profileLevel"`
}

func toDTO(s domain.Student) StudentDTO {
	return StudentDTO{
		ID:               s.ID,
		Name:             s.Name,
		Email:            s.Email,
		RegistrationDate: s.RegistrationDate,
		Status:           string(s.Status),
		GigsCount:        s.GigsCount,
		ProfileLevel:     string(s.ProfileLevel),
	}
}
