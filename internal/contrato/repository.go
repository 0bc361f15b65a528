package contrato

import (
	"context"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-faturamento/internal/utils/db"
)

type Repository interface {
	Criar(ctx context.Context, c *Contrato) error
	BuscarPorID(ctx context.Context, id uint) (*Contrato, error)
	ListarPorEmpresa(ctx context.Context, empresaID uint) ([]Contrato, error)
	ListarAtivosPorEmpresa(ctx context.Context, empresaID uint) ([]Contrato, error)
	Atualizar(ctx context.Context, c *Contrato) error
	Deletar(ctx context.Context, id uint) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(database *gorm.DB) Repository {
	return &repositoryImpl{db: database}
}

func (r *repositoryImpl) Criar(ctx context.Context, c *Contrato) error {
	return db.Traduzir(r.db.WithContext(ctx).Create(c).Error, "criar contrato", "contrato", 0)
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id uint) (*Contrato, error) {
	var c Contrato
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, db.Traduzir(err, "buscar contrato", "contrato", id)
	}
	return &c, nil
}

func (r *repositoryImpl) ListarPorEmpresa(ctx context.Context, empresaID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("id ASC").
		Find(&contratos).Error
	return contratos, db.Traduzir(err, "listar contratos", "contrato", 0)
}

// ListarAtivosPorEmpresa devolve só contratos com ativo = true. Os excluídos
// (deleted_at preenchido) já ficam de fora pelo escopo padrão do gorm.
func (r *repositoryImpl) ListarAtivosPorEmpresa(ctx context.Context, empresaID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND ativo = ?", empresaID, true).
		Order("id ASC").
		Find(&contratos).Error
	return contratos, db.Traduzir(err, "listar contratos ativos", "contrato", 0)
}

func (r *repositoryImpl) Atualizar(ctx context.Context, c *Contrato) error {
	return db.Traduzir(r.db.WithContext(ctx).Save(c).Error, "atualizar contrato", "contrato", c.ID)
}

func (r *repositoryImpl) Deletar(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Contrato{}, id)
	if res.Error != nil {
		return db.Traduzir(res.Error, "excluir contrato", "contrato", id)
	}
	if res.RowsAffected == 0 {
		return db.Traduzir(gorm.ErrRecordNotFound, "excluir contrato", "contrato", id)
	}
	return nil
}
