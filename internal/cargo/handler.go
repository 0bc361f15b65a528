package cargo

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
	"github.com/KromaEnergia/api-faturamento/internal/utils"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /cargos e PUT /cargos/{id}
type CargoDTO struct {
	EmpresaID          uint            `json:"empresaId" validate:"required"`
	Nome               string          `json:"nome" validate:"required,max=120"`
	ValorDiariaDiurno  decimal.Decimal `json:"valorDiariaDiurno"`
	ValorDiariaNoturno decimal.Decimal `json:"valorDiariaNoturno"`
}

func (in CargoDTO) validarValores() error {
	if in.ValorDiariaDiurno.IsNegative() || in.ValorDiariaNoturno.IsNegative() {
		return apperr.Validacao("diárias não podem ser negativas")
	}
	return nil
}

func (in CargoDTO) aplicar(c *Cargo) {
	c.EmpresaID = in.EmpresaID
	c.Nome = in.Nome
	c.ValorDiariaDiurno = in.ValorDiariaDiurno.Round(2)
	c.ValorDiariaNoturno = in.ValorDiariaNoturno.Round(2)
}

// POST /cargos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in CargoDTO
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := in.validarValores(); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	var c Cargo
	in.aplicar(&c)
	if err := h.Repo.Criar(r.Context(), &c); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, c)
}

// GET /empresas/{id}/cargos
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	empresaID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	list, err := h.Repo.ListarPorEmpresa(r.Context(), empresaID)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, list)
}

// GET /cargos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	c, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, c)
}

// PUT /cargos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	var in CargoDTO
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := in.validarValores(); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	c, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	in.aplicar(c)
	if err := h.Repo.Atualizar(r.Context(), c); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, c)
}

// DELETE /cargos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Repo.Deletar(r.Context(), id); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
