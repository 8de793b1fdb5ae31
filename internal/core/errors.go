package core

import "errors"

var (
	ErrUnauthorized     = errors.New("Unauthorized")
	ErrInvalidEmail     = errors.New("Por favor ingresa un email válido")
	ErrPasswordTooShort = errors.New("La contraseña debe tener al menos 8 caracteres")
	ErrPasswordMismatch = errors.New("Las contraseñas no coinciden")
	ErrInvalidAmount    = errors.New("El monto debe ser mayor que 0")
	ErrNameRequired     = errors.New("El nombre es requerido")
	ErrDescriptionEmpty = errors.New("La descripción es requerida")
	ErrInvalidType      = errors.New("El tipo debe ser gasto o ingreso")
	ErrIncomeWithPocket = errors.New("Los ingresos no pueden asignarse a un bolsillo")
	ErrInvalidPeriod    = errors.New("Periodo inválido")

	// ErrDefaultNotDeletable guards default categories and pockets.
	ErrDefaultNotDeletable = errors.New("Los elementos predeterminados no se pueden eliminar")
)
