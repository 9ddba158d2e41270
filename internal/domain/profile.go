package domain

import "time"

type AdminSession struct {
	ID         string
	Device     string
	Location   string
	LastActive time.Time
	Current    bool
}

// AdminProfile is the signed-in administrator as shown on the profile page.
// It is read-only; credentials are not part of it.
type AdminProfile struct {
	Name             string
	Email            string
	Role             string
	Phone            string
	AvatarURL        string
	LastLogin        time.Time
	TwoFactorEnabled bool
	Sessions         []AdminSession
}
