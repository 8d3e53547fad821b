package repository

import "github.com/tu-usuario/inventario-kardex/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	// Delete elimina el usuario; los movimientos que lo referencian quedan
	// con usuario nulo (se preserva la historia).
	Delete(id string) error
}
