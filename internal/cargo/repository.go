package cargo

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

func (r *Repository) Criar(ctx context.Context, c *Cargo) error {
	return db.Traduzir(r.DB.WithContext(ctx).Create(c).Error, "criar cargo", "cargo", 0)
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Cargo, error) {
	var c Cargo
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, db.Traduzir(err, "buscar cargo", "cargo", id)
	}
	return &c, nil
}

func (r *Repository) ListarPorEmpresa(ctx context.Context, empresaID uint) ([]Cargo, error) {
	var list []Cargo
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("nome ASC").
		Find(&list).Error
	return list, db.Traduzir(err, "listar cargos", "cargo", 0)
}

func (r *Repository) Atualizar(ctx context.Context, c *Cargo) error {
	return db.Traduzir(r.DB.WithContext(ctx).Save(c).Error, "atualizar cargo", "cargo", c.ID)
}

func (r *Repository) Deletar(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&Cargo{}, id)
	if res.Error != nil {
		return db.Traduzir(res.Error, "excluir cargo", "cargo", id)
	}
	if res.RowsAffected == 0 {
		return db.Traduzir(gorm.ErrRecordNotFound, "excluir cargo", "cargo", id)
	}
	return nil
}
