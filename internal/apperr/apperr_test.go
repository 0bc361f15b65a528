package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusHTTP(t *testing.T) {
	cases := []struct {
		nome string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validacao", Validacao("campo %s obrigatório", "dataVencimento"), http.StatusBadRequest},
		{"nao encontrado", NaoEncontrado("faturamento", 7), http.StatusNotFound},
		{"duplicado", Duplicado("já existe"), http.StatusConflict},
		{"persistencia", Persistencia("inserir faturamento", errors.New("conn reset")), http.StatusInternalServerError},
		{"generico", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusHTTP(tc.err))
		})
	}
}

func TestErrosSobrevivemAoWrap(t *testing.T) {
	base := NaoEncontrado("recebimento", 3)
	err := fmt.Errorf("desfazer: %w", base)

	assert.True(t, IsNaoEncontrado(err))
	assert.False(t, IsValidacao(err))
	assert.Equal(t, "recebimento 3 não encontrado", base.Error())
}

func TestPersistenciaUnwrap(t *testing.T) {
	causa := errors.New("timeout")
	err := Persistencia("listar contratos", causa)

	assert.True(t, IsPersistencia(err))
	assert.ErrorIs(t, err, causa)
	assert.Equal(t, "erro ao listar contratos: timeout", err.Error())
}
