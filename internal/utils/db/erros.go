package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
)

// IsViolacaoUnica reconhece violação de índice único no Postgres (23505)
// e no SQLite usado nos testes.
func IsViolacaoUnica(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "sqlstate 23505")
}

// Traduzir converte erros do gorm para a taxonomia de apperr.
func Traduzir(err error, op, entidade string, id uint) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NaoEncontrado(entidade, id)
	case IsViolacaoUnica(err):
		return apperr.Duplicado("%s já existe", entidade)
	default:
		return apperr.Persistencia(op, err)
	}
}
