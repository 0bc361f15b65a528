package servicoextra

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
	"github.com/KromaEnergia/api-faturamento/internal/utils"
)

type Handler struct {
	Servico *Servico
}

func NewHandler(servico *Servico) *Handler {
	return &Handler{Servico: servico}
}

// DTO usado no POST /servicos-extras/calcular
type CalcularDTO struct {
	Entrada     time.Time       `json:"entrada" validate:"required"`
	Saida       time.Time       `json:"saida" validate:"required"`
	ValorDiaria decimal.Decimal `json:"valorDiaria"`
}

// POST /servicos-extras/calcular
// Só calcula; nada é gravado.
func (h *Handler) Calcular(w http.ResponseWriter, r *http.Request) {
	var in CalcularDTO
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	calc, err := Calcular(in.Entrada, in.Saida, in.ValorDiaria)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, calc)
}

// POST /servicos-extras
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in Lancamento
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	se, err := h.Servico.Registrar(r.Context(), in)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, se)
}

// GET /empresas/{id}/servicos-extras?funcionarioId=&contratoId=&inicio=&fim=
// inicio e fim no formato AAAA-MM-DD; fim é exclusivo.
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	empresaID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	f, err := filtroDaQuery(r.URL.Query())
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	list, err := h.Servico.Listar(r.Context(), empresaID, f)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, list)
}

func filtroDaQuery(q url.Values) (Filtro, error) {
	var f Filtro
	for chave, dst := range map[string]*uint{"funcionarioId": &f.FuncionarioID, "contratoId": &f.ContratoID} {
		if v := q.Get(chave); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return f, apperr.Validacao("%s inválido: %q", chave, v)
			}
			*dst = uint(id)
		}
	}
	for chave, dst := range map[string]*time.Time{"inicio": &f.Inicio, "fim": &f.Fim} {
		if v := q.Get(chave); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return f, apperr.Validacao("%s inválido: use AAAA-MM-DD", chave)
			}
			*dst = t
		}
	}
	return f, nil
}

// GET /servicos-extras/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	se, err := h.Servico.Buscar(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, se)
}

// PUT /servicos-extras/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	var in Lancamento
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	se, err := h.Servico.Atualizar(r.Context(), id, in)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, se)
}

// DELETE /servicos-extras/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Servico.Excluir(r.Context(), id); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
