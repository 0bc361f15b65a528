package contrato

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
	"github.com/KromaEnergia/api-faturamento/internal/utils"
)

type Handler struct {
	Repository Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Repository: repo}
}

// ContratoDTO é o corpo aceito em POST e PUT.
type ContratoDTO struct {
	EmpresaID             uint            `json:"empresaId" validate:"required"`
	Descricao             string          `json:"descricao" validate:"required,max=255"`
	ValorMensal           decimal.Decimal `json:"valorMensal"`
	Ativo                 bool            `json:"ativo"`
	DiaFaturamento        int             `json:"diaFaturamento" validate:"min=1,max=31"`
	DiaVencimento         int             `json:"diaVencimento" validate:"min=1,max=31"`
	VencimentoMesCorrente bool            `json:"vencimentoMesCorrente"`

	RetemISS    bool            `json:"retemIss"`
	AliquotaISS decimal.Decimal `json:"aliquotaIss"`
	RetemPIS    bool            `json:"retemPis"`
	RetemCOFINS bool            `json:"retemCofins"`
	RetemIRPJ   bool            `json:"retemIrpj"`
	RetemCSLL   bool            `json:"retemCsll"`
	RetemINSS   bool            `json:"retemInss"`

	PossuiRetencaoTecnica     bool            `json:"possuiRetencaoTecnica"`
	PercentualRetencaoTecnica decimal.Decimal `json:"percentualRetencaoTecnica"`
}

var cem = decimal.NewFromInt(100)

func (in ContratoDTO) validarValores() error {
	if !in.ValorMensal.IsPositive() {
		return apperr.Validacao("valorMensal deve ser maior que zero")
	}
	if in.RetemISS && (!in.AliquotaISS.IsPositive() || in.AliquotaISS.GreaterThan(cem)) {
		return apperr.Validacao("aliquotaIss deve estar entre 0 e 100 quando o ISS é retido")
	}
	if in.PossuiRetencaoTecnica && (!in.PercentualRetencaoTecnica.IsPositive() || in.PercentualRetencaoTecnica.GreaterThan(cem)) {
		return apperr.Validacao("percentualRetencaoTecnica deve estar entre 0 e 100")
	}
	return nil
}

func (in ContratoDTO) aplicar(c *Contrato) {
	c.EmpresaID = in.EmpresaID
	c.Descricao = in.Descricao
	c.ValorMensal = in.ValorMensal
	c.Ativo = in.Ativo
	c.DiaFaturamento = in.DiaFaturamento
	c.DiaVencimento = in.DiaVencimento
	c.VencimentoMesCorrente = in.VencimentoMesCorrente
	c.RetemISS = in.RetemISS
	c.AliquotaISS = in.AliquotaISS
	c.RetemPIS = in.RetemPIS
	c.RetemCOFINS = in.RetemCOFINS
	c.RetemIRPJ = in.RetemIRPJ
	c.RetemCSLL = in.RetemCSLL
	c.RetemINSS = in.RetemINSS
	c.PossuiRetencaoTecnica = in.PossuiRetencaoTecnica
	c.PercentualRetencaoTecnica = in.PercentualRetencaoTecnica
}

func decodificar(r *http.Request) (ContratoDTO, error) {
	var in ContratoDTO
	if err := utils.DecodificarJSON(r, &in); err != nil {
		return in, err
	}
	return in, in.validarValores()
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	in, err := decodificar(r)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	var c Contrato
	in.aplicar(&c)
	if err := h.Repository.Criar(r.Context(), &c); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, c)
}

// GET /empresas/{id}/contratos
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	empresaID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	list, err := h.Repository.ListarPorEmpresa(r.Context(), empresaID)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, list)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	c, err := h.Repository.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, c)
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	existente, err := h.Repository.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	in, err := decodificar(r)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	in.aplicar(existente)
	if err := h.Repository.Atualizar(r.Context(), existente); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, existente)
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Repository.Deletar(r.Context(), id); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
