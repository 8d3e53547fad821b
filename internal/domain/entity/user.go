package entity

import "time"

// Perfiles válidos para User.
const (
	RoleVisita = "visita"
	RoleOpera  = "opera"
	RoleAdmin  = "admin"
)

// User representa un usuario del sistema.
type User struct {
	ID           string // uuid
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // visita, opera, admin
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
