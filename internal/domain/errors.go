package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInactiveLocation   = errors.New("ubicación inactiva o inexistente")
	ErrNoMainWarehouse    = errors.New("no se ha definido una bodega principal en el sistema")
	ErrManyMainWarehouses = errors.New("existe más de una bodega principal activa")
)
