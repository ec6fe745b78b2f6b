package registry

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do cadastro de entidades
var (
	// Erros de validação
	ErrEntityIDRequired  = errors.New("entity ID is required")
	ErrEntityNotFound    = errors.New("entity not found")
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrInvalidStatus     = errors.New("invalid entity status")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchEntities     = errors.New("error fetching entities from database")
	ErrSaveEntity        = errors.New("error saving entity")

	// Erros de cadastro
	ErrGenerateID = errors.New("error generating entity ID")
)

// RegistryError é um erro com contexto adicional para o cadastro de entidades
type RegistryError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // ID da entidade envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RegistryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// NewRegistryError cria um novo RegistryError
func NewRegistryError(err error, code string, details string) *RegistryError {
	return &RegistryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewRegistryErrorWithID cria um novo RegistryError com ID da entidade
func NewRegistryErrorWithID(err error, code string, entityID string, details string) *RegistryError {
	return &RegistryError{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}
