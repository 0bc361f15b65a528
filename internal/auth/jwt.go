package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de acesso emitido pelo painel.
type Claims struct {
	UserID    uint `json:"userId"`
	EmpresaID uint `json:"empresaId"`
	jwt.RegisteredClaims
}

// Autenticador valida (e, para ferramentas internas, emite) tokens HS256.
type Autenticador struct {
	segredo []byte
}

func NewAutenticador(segredo string) *Autenticador {
	return &Autenticador{segredo: []byte(segredo)}
}

// GerarToken gera um JWT com a validade informada
func (a *Autenticador) GerarToken(userID, empresaID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		EmpresaID: empresaID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.segredo)
}

// ValidarToken valida o token e retorna as claims
func (a *Autenticador) ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return a.segredo, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
