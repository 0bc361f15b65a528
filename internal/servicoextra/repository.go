package servicoextra

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-faturamento/internal/utils/db"
)

// Filtro de listagem; zero não filtra. O período compara a entrada.
type Filtro struct {
	FuncionarioID uint
	ContratoID    uint
	Inicio        time.Time
	Fim           time.Time
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(database *gorm.DB) *Repository {
	return &Repository{DB: database}
}

func (r *Repository) Criar(ctx context.Context, s *ServicoExtra) error {
	return db.Traduzir(r.DB.WithContext(ctx).Create(s).Error, "criar serviço extra", "serviço extra", 0)
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*ServicoExtra, error) {
	var s ServicoExtra
	if err := r.DB.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, db.Traduzir(err, "buscar serviço extra", "serviço extra", id)
	}
	return &s, nil
}

func (r *Repository) ListarPorEmpresa(ctx context.Context, empresaID uint, f Filtro) ([]ServicoExtra, error) {
	q := r.DB.WithContext(ctx).Where("empresa_id = ?", empresaID)
	if f.FuncionarioID != 0 {
		q = q.Where("funcionario_id = ?", f.FuncionarioID)
	}
	if f.ContratoID != 0 {
		q = q.Where("contrato_id = ?", f.ContratoID)
	}
	if !f.Inicio.IsZero() {
		q = q.Where("entrada >= ?", f.Inicio)
	}
	if !f.Fim.IsZero() {
		q = q.Where("entrada < ?", f.Fim)
	}
	var list []ServicoExtra
	err := q.Order("entrada DESC").Find(&list).Error
	return list, db.Traduzir(err, "listar serviços extras", "serviço extra", 0)
}

func (r *Repository) Atualizar(ctx context.Context, s *ServicoExtra) error {
	return db.Traduzir(r.DB.WithContext(ctx).Save(s).Error, "atualizar serviço extra", "serviço extra", s.ID)
}

func (r *Repository) Deletar(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&ServicoExtra{}, id)
	if res.Error != nil {
		return db.Traduzir(res.Error, "excluir serviço extra", "serviço extra", id)
	}
	if res.RowsAffected == 0 {
		return db.Traduzir(gorm.ErrRecordNotFound, "excluir serviço extra", "serviço extra", id)
	}
	return nil
}
