package empresa

import (
	"context"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-faturamento/internal/utils/db"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(database *gorm.DB) *Repository {
	return &Repository{DB: database}
}

func (r *Repository) Criar(ctx context.Context, e *Empresa) error {
	return db.Traduzir(r.DB.WithContext(ctx).Create(e).Error, "criar empresa", "empresa", 0)
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Empresa, error) {
	var e Empresa
	if err := r.DB.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, db.Traduzir(err, "buscar empresa", "empresa", id)
	}
	return &e, nil
}

func (r *Repository) ListarTodas(ctx context.Context) ([]Empresa, error) {
	var list []Empresa
	err := r.DB.WithContext(ctx).Order("nome ASC").Find(&list).Error
	return list, db.Traduzir(err, "listar empresas", "empresa", 0)
}

func (r *Repository) Atualizar(ctx context.Context, e *Empresa) error {
	return db.Traduzir(r.DB.WithContext(ctx).Save(e).Error, "atualizar empresa", "empresa", e.ID)
}

// Deletar faz soft delete (gorm.Model).
func (r *Repository) Deletar(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&Empresa{}, id)
	if res.Error != nil {
		return db.Traduzir(res.Error, "excluir empresa", "empresa", id)
	}
	if res.RowsAffected == 0 {
		return db.Traduzir(gorm.ErrRecordNotFound, "excluir empresa", "empresa", id)
	}
	return nil
}
