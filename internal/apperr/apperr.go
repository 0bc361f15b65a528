// Package apperr define os erros de negócio da API e como cada um vira
// um status HTTP.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidacaoError indica entrada malformada ou campo obrigatório ausente.
type ValidacaoError struct {
	msg string
}

func (e *ValidacaoError) Error() string { return e.msg }

func Validacao(format string, args ...any) error {
	return &ValidacaoError{msg: fmt.Sprintf(format, args...)}
}

func IsValidacao(err error) bool {
	var alvo *ValidacaoError
	return errors.As(err, &alvo)
}

// DuplicadoError indica violação de unicidade (ex.: segundo faturamento
// para o mesmo contrato e competência).
type DuplicadoError struct {
	msg string
}

func (e *DuplicadoError) Error() string { return e.msg }

func Duplicado(format string, args ...any) error {
	return &DuplicadoError{msg: fmt.Sprintf(format, args...)}
}

func IsDuplicado(err error) bool {
	var alvo *DuplicadoError
	return errors.As(err, &alvo)
}

// PersistenciaError embrulha qualquer falha do banco durante leitura ou escrita.
type PersistenciaError struct {
	Op  string
	Err error
}

func (e *PersistenciaError) Error() string {
	return fmt.Sprintf("erro ao %s: %v", e.Op, e.Err)
}

func (e *PersistenciaError) Unwrap() error { return e.Err }

func Persistencia(op string, err error) error {
	return &PersistenciaError{Op: op, Err: err}
}

func IsPersistencia(err error) bool {
	var alvo *PersistenciaError
	return errors.As(err, &alvo)
}

// NaoEncontradoError indica operação sobre um registro inexistente.
type NaoEncontradoError struct {
	Entidade string
	ID       uint
}

func (e *NaoEncontradoError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s não encontrado", e.Entidade)
	}
	return fmt.Sprintf("%s %d não encontrado", e.Entidade, e.ID)
}

func NaoEncontrado(entidade string, id uint) error {
	return &NaoEncontradoError{Entidade: entidade, ID: id}
}

func IsNaoEncontrado(err error) bool {
	var alvo *NaoEncontradoError
	return errors.As(err, &alvo)
}

// StatusHTTP traduz o erro para o status de resposta.
func StatusHTTP(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidacao(err):
		return http.StatusBadRequest
	case IsNaoEncontrado(err):
		return http.StatusNotFound
	case IsDuplicado(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
