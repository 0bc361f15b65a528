package faturamento

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
	"github.com/KromaEnergia/api-faturamento/internal/auth"
	"github.com/KromaEnergia/api-faturamento/internal/utils"
)

// Handler gerencia rotas de faturamento
type Handler struct {
	Gerador *Gerador
	Servico *Servico
}

func NewHandler(gerador *Gerador, servico *Servico) *Handler {
	return &Handler{Gerador: gerador, Servico: servico}
}

// DTO usado no POST /faturamentos/gerar
type GerarDTO struct {
	EmpresaID   uint        `json:"empresaId"`
	Competencia Competencia `json:"competencia"`
}

// DTO usado no PATCH /faturamentos/{id}/valores
type ValoresDTO struct {
	Acrescimo decimal.Decimal `json:"acrescimo"`
	Desconto  decimal.Decimal `json:"desconto"`
}

// DTO usado no PATCH /faturamentos/{id}/datas
type DatasDTO struct {
	DataFaturamento time.Time `json:"dataFaturamento" validate:"required"`
	DataVencimento  time.Time `json:"dataVencimento" validate:"required"`
}

// POST /faturamentos/gerar
// Sem empresaId no corpo, usa a empresa do token.
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	var in GerarDTO
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if in.EmpresaID == 0 {
		in.EmpresaID, _ = auth.EmpresaDoContexto(r.Context())
	}
	if in.Competencia.IsZero() {
		utils.ResponderErro(w, apperr.Validacao("competência obrigatória"))
		return
	}

	res, err := h.Gerador.Gerar(r.Context(), in.Competencia, in.EmpresaID)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, res)
}

// GET /empresas/{id}/faturamentos?competencia=&status=
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	empresaID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	q := r.URL.Query()
	list, err := h.Servico.Listar(r.Context(), empresaID, Filtro{
		Competencia: q.Get("competencia"),
		Status:      q.Get("status"),
	})
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, list)
}

// GET /faturamentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	f, err := h.Servico.Buscar(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, f)
}

// PATCH /faturamentos/{id}/valores
func (h *Handler) AjustarValores(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	var in ValoresDTO
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	f, err := h.Servico.AjustarValores(r.Context(), id, in.Acrescimo, in.Desconto)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, f)
}

// PATCH /faturamentos/{id}/datas
func (h *Handler) AlterarDatas(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	var in DatasDTO
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	f, err := h.Servico.AlterarDatas(r.Context(), id, in.DataFaturamento, in.DataVencimento)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, f)
}
