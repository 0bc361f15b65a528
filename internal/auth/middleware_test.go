package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	a := NewAutenticador("segredo-teste")

	var empresa uint
	protegido := a.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		empresa, _ = EmpresaDoContexto(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("sem token", func(t *testing.T) {
		w := httptest.NewRecorder()
		protegido.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/faturamentos/1", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token valido", func(t *testing.T) {
		tok, err := a.GerarToken(7, 3, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/faturamentos/1", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		protegido.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), empresa)
	})

	t.Run("expirado", func(t *testing.T) {
		tok, err := a.GerarToken(7, 3, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/faturamentos/1", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		protegido.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("outro segredo", func(t *testing.T) {
		tok, err := NewAutenticador("outro").GerarToken(7, 3, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/faturamentos/1", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		protegido.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestEmpresaDoContextoVazio(t *testing.T) {
	_, ok := EmpresaDoContexto(context.Background())
	assert.False(t, ok)
}
