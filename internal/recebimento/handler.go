package recebimento

import (
	"net/http"
	"time"

	"github.com/KromaEnergia/api-faturamento/internal/auth"
	"github.com/KromaEnergia/api-faturamento/internal/utils"
)

// Handler expõe recebimentos e as transições de faturamento que os criam.
type Handler struct {
	Servico *Servico
}

func NewHandler(servico *Servico) *Handler {
	return &Handler{Servico: servico}
}

// DTO usado no POST /recebimentos/{id}/receber
type ReceberDTO struct {
	DataRecebimento *time.Time `json:"dataRecebimento"`
}

// POST /faturamentos/{id}/faturar
func (h *Handler) ConfirmarFaturamento(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	rec, err := h.Servico.ConfirmarFaturamento(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, rec)
}

// POST /faturamentos/{id}/desfazer
func (h *Handler) DesfazerFaturamento(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	f, err := h.Servico.DesfazerFaturamento(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, f)
}

// DELETE /faturamentos/{id}
func (h *Handler) ExcluirFaturamento(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Servico.ExcluirFaturamento(r.Context(), id); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /recebimentos/avulso
func (h *Handler) CriarAvulso(w http.ResponseWriter, r *http.Request) {
	var in NovoAvulso
	if err := utils.DecodificarJSON(r, &in); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if in.EmpresaID == 0 {
		in.EmpresaID, _ = auth.EmpresaDoContexto(r.Context())
	}
	rec, err := h.Servico.CriarAvulso(r.Context(), in)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, rec)
}

// GET /empresas/{id}/recebimentos?status=
func (h *Handler) ListarPorEmpresa(w http.ResponseWriter, r *http.Request) {
	empresaID, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	list, err := h.Servico.Listar(r.Context(), empresaID, r.URL.Query().Get("status"))
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, list)
}

// GET /recebimentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	rec, err := h.Servico.Buscar(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, rec)
}

// POST /recebimentos/{id}/receber
// Corpo opcional; sem dataRecebimento usa o instante atual.
func (h *Handler) Receber(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	var in ReceberDTO
	if r.ContentLength != 0 {
		if err := utils.DecodificarJSON(r, &in); err != nil {
			utils.ResponderErro(w, err)
			return
		}
	}
	rec, err := h.Servico.MarcarRecebido(r.Context(), id, in.DataRecebimento)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, rec)
}

// POST /recebimentos/{id}/desfazer
func (h *Handler) DesfazerRecebimento(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	rec, err := h.Servico.DesfazerRecebimento(r.Context(), id)
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, rec)
}

// DELETE /recebimentos/{id}
func (h *Handler) Excluir(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.ResponderErro(w, err)
		return
	}
	if err := h.Servico.ExcluirAvulso(r.Context(), id); err != nil {
		utils.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
