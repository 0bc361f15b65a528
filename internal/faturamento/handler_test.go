package faturamento

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromaEnergia/api-faturamento/internal/auth"
	"github.com/KromaEnergia/api-faturamento/internal/contrato"
)

func setupRouter(t *testing.T) (*mux.Router, *auth.Autenticador) {
	database := setupTestDB(t)
	criarContrato(t, database, contrato.Contrato{Ativo: true, EmpresaID: 5})
	repo := NewRepository(database)
	h := NewHandler(novoGerador(repo), NewServico(repo))

	a := auth.NewAutenticador("segredo-teste")
	r := mux.NewRouter()
	r.Use(a.Middleware)
	r.HandleFunc("/faturamentos/gerar", h.Gerar).Methods("POST")
	r.HandleFunc("/empresas/{id}/faturamentos", h.ListarPorEmpresa).Methods("GET")
	r.HandleFunc("/faturamentos/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/faturamentos/{id}/valores", h.AjustarValores).Methods("PATCH")
	r.HandleFunc("/faturamentos/{id}/datas", h.AlterarDatas).Methods("PATCH")
	return r, a
}

func requisitar(t *testing.T, r http.Handler, a *auth.Autenticador, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	tok, err := a.GerarToken(1, 5, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerGerarUsaEmpresaDoToken(t *testing.T) {
	r, a := setupRouter(t)

	w := requisitar(t, r, a, http.MethodPost, "/faturamentos/gerar", `{"competencia":"2025-10"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res ResultadoGeracao
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, uint(5), res.EmpresaID)
	assert.Equal(t, "2025-10", res.Competencia)
	assert.Equal(t, 1, res.Criados)

	w = requisitar(t, r, a, http.MethodGet, "/empresas/5/faturamentos?competencia=2025-10", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []Faturamento
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, StatusPendente, list[0].Status)
}

func TestHandlerGerarCompetenciaInvalida(t *testing.T) {
	r, a := setupRouter(t)

	w := requisitar(t, r, a, http.MethodPost, "/faturamentos/gerar", `{"competencia":"10/2025"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = requisitar(t, r, a, http.MethodPost, "/faturamentos/gerar", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerAjustesEBusca(t *testing.T) {
	r, a := setupRouter(t)
	w := requisitar(t, r, a, http.MethodPost, "/faturamentos/gerar", `{"competencia":"2025-10"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = requisitar(t, r, a, http.MethodPatch, "/faturamentos/1/valores", `{"acrescimo":"150","desconto":"50"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var f Faturamento
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	assert.Equal(t, "10100.00", f.ValorReceber.StringFixed(2))

	w = requisitar(t, r, a, http.MethodPatch, "/faturamentos/1/datas",
		`{"dataFaturamento":"2025-10-20T00:00:00Z","dataVencimento":"2025-10-05T00:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = requisitar(t, r, a, http.MethodGet, "/faturamentos/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = requisitar(t, r, a, http.MethodGet, "/faturamentos/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
