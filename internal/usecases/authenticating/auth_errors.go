package authenticating

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Erros de autenticação do serviço
var (
	ErrInvalidCredentials  = stderrors.New("credenciais inválidas")
	ErrUserDisabled        = stderrors.New("usuário desativado")
	ErrUserNotFound        = stderrors.New("usuário não encontrado")
	ErrInvalidToken        = stderrors.New("token inválido")
	ErrExpiredToken        = stderrors.New("token expirado")
	ErrUserAlreadyExists   = stderrors.New("usuário já existe")
	ErrMissingRequiredData = stderrors.New("dados obrigatórios ausentes")
)

// ErrDatabase envolve um erro de banco com contexto de autenticação
func ErrDatabase(err error) error {
	return errors.Wrap(err, "erro ao realizar operação no banco de dados")
}
