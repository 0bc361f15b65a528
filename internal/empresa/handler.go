package empresa

import (
	"net/http"

	"github.com/KromaEnergia/api-faturamento/internal/utils"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type empresaDTO struct {
	Nome string `json:"nome" validate:"required"`
	CNPJ string `json:"cnpj" validate:"omitempty,max=18"`
}

// POST /empresas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in empresaDTO
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	e := Empresa{Nome: in.Nome, CNPJ: in.CNPJ}
	if err := h.Repo.Criar(r.Context(), &e); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, e)
}

// GET /empresas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodas(r.Context())
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, list)
}

// GET /empresas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	e, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, e)
}

// PUT /empresas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	existente, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	var in empresaDTO
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	existente.Nome = in.Nome
	existente.CNPJ = in.CNPJ
	if err := h.Repo.Atualizar(r.Context(), existente); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, existente)
}

// DELETE /empresas/{id}
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
