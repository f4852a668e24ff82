package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidStatus = errors.New("estado de conciliación inválido")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrMissingShop   = errors.New("dominio de tienda requerido")
	ErrInvalidShop   = errors.New("dominio de tienda inválido")
	ErrNoSession     = errors.New("la tienda no tiene sesión offline")
	ErrPlatform      = errors.New("error de la plataforma de la tienda")
)
