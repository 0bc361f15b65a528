package empresa

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KromaEnergia/api-faturamento/internal/utils/testdb"
)

func setupRouter(t *testing.T) *mux.Router {
	h := NewHandler(NewRepository(testdb.Abrir(t, &Empresa{})))
	r := mux.NewRouter()
	r.HandleFunc("/empresas", h.Criar).Methods("POST")
	r.HandleFunc("/empresas", h.Listar).Methods("GET")
	r.HandleFunc("/empresas/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/empresas/{id}", h.Atualizar).Methods("PUT")
	r.HandleFunc("/empresas/{id}", h.Deletar).Methods("DELETE")
	return r
}

func chamar(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestEmpresaCRUD(t *testing.T) {
	r := setupRouter(t)

	w := chamar(r, http.MethodPost, "/empresas", `{"nome":"Beta Vigilância","cnpj":"12.345.678/0001-90"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = chamar(r, http.MethodPost, "/empresas", `{"nome":"Alfa Limpeza"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = chamar(r, http.MethodGet, "/empresas", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []Empresa
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Alfa Limpeza", list[0].Nome)

	w = chamar(r, http.MethodPut, "/empresas/1", `{"nome":"Beta Segurança","cnpj":"12.345.678/0001-90"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = chamar(r, http.MethodGet, "/empresas/1", "")
	var e Empresa
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	assert.Equal(t, "Beta Segurança", e.Nome)

	w = chamar(r, http.MethodDelete, "/empresas/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = chamar(r, http.MethodDelete, "/empresas/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmpresaValidacao(t *testing.T) {
	r := setupRouter(t)

	w := chamar(r, http.MethodPost, "/empresas", `{"cnpj":"1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = chamar(r, http.MethodPost, "/empresas", ``)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
