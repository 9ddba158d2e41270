package profile

import (
	"time"

	"univadmin/internal/domain"
)

type SessionDTO struct {
	ID           string    `json:"id"`
	Device       string    `json:"device"`
	Location     string    `json:"location"`
	LastActiveAt time.Time `json:"lastActiveAt"`
	Current      bool      `json:"current"`
}

type ProfileResponse struct {
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Role             string       `json:"role"`
	Phone            string       `json:"phone"`
	Avatar           string       `json:"avatar"`
	LastLogin        time.Time    `json:"lastLogin"`
	TwoFactorEnabled bool         `json:"twoFactorEnabled"`
	ActiveSessions   []SessionDTO `json:"activeSessions"`
}

func toResponse(p *domain.AdminProfile) ProfileResponse {
	resp := ProfileResponse{
		Name:             p.Name,
		Email:            p.Email,
		Role:             p.Role,
		Phone:            p.Phone,
		Avatar:           p.AvatarURL,
		LastLogin:        p.LastLogin,
		TwoFactorEnabled: p.TwoFactorEnabled,
		ActiveSessions:   make([]SessionDTO, 0, len(p.Sessions)),
	}
	for _, s := range p.Sessions {
		resp.ActiveSessions = append(resp.ActiveSessions, SessionDTO{
			ID:           s.ID,
			Device:       s.Device,
			Location:     s.Location,
			LastActiveAt: s.LastActive,
			Current:      s.Current,
		})
	}
	return resp
}
