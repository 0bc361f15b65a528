package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ResponderJSON escreve v como JSON com o status informado.
func ResponderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// ResponderErro traduz err pela taxonomia de apperr.
func ResponderErro(w http.ResponseWriter, err error) {
	status := apperr.StatusHTTP(err)
	msg := err.Error()
	if status == http.StatusInternalServerError && !apperr.IsPersistencia(err) {
		msg = "Erro interno"
	}
	ResponderJSON(w, status, map[string]string{"erro": msg})
}

// IDDaRota lê um ID numérico da rota (mux.Vars).
func IDDaRota(r *http.Request, chave string) (uint, error) {
	raw := mux.Vars(r)[chave]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validacao("ID inválido: %q", raw)
	}
	return uint(id), nil
}

// DecodificarJSON lê o corpo em dst e aplica as tags `validate`.
func DecodificarJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validacao("corpo da requisição vazio")
		}
		return apperr.Validacao("JSON mal formado: %v", err)
	}
	return Validar(dst)
}

// Validar roda o validator e devolve um ValidacaoError legível.
func Validar(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validacao("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return apperr.Validacao("campos inválidos: %s", strings.Join(msgs, "; "))
}
