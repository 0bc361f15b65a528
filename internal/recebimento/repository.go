package recebimento

import (
	"context"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-faturamento/internal/utils/db"
)

// Repository encapsula o acesso a dados de recebimentos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(database *gorm.DB) *Repository {
	return &Repository{DB: database}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(database *gorm.DB) *Repository {
	if database == nil {
		database = r.DB
	}
	return &Repository{DB: database}
}

func (r *Repository) Inserir(ctx context.Context, rec *Recebimento) error {
	return db.Traduzir(r.DB.WithContext(ctx).Create(rec).Error, "inserir recebimento", "recebimento", 0)
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Recebimento, error) {
	var rec Recebimento
	if err := r.DB.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, db.Traduzir(err, "buscar recebimento", "recebimento", id)
	}
	return &rec, nil
}

// BuscarPorFaturamento devolve nil, nil quando o faturamento não tem recebimento.
func (r *Repository) BuscarPorFaturamento(ctx context.Context, faturamentoID uint) (*Recebimento, error) {
	var list []Recebimento
	err := r.DB.WithContext(ctx).
		Where("faturamento_id = ?", faturamentoID).
		Limit(1).
		Find(&list).Error
	if err != nil {
		return nil, db.Traduzir(err, "buscar recebimento do faturamento", "recebimento", 0)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (r *Repository) ListarPorEmpresa(ctx context.Context, empresaID uint, status string) ([]Recebimento, error) {
	q := r.DB.WithContext(ctx).Where("empresa_id = ?", empresaID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []Recebimento
	err := q.Order("data_vencimento ASC, id ASC").Find(&list).Error
	return list, db.Traduzir(err, "listar recebimentos", "recebimento", 0)
}

// Atualizar aplica updates parciais. Use map para poder gravar NULL.
func (r *Repository) Atualizar(ctx context.Context, id uint, campos map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&Recebimento{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return db.Traduzir(res.Error, "atualizar recebimento", "recebimento", id)
	}
	if res.RowsAffected == 0 {
		return db.Traduzir(gorm.ErrRecordNotFound, "atualizar recebimento", "recebimento", id)
	}
	return nil
}

// ExcluirPorFaturamento apaga (sem soft delete) o recebimento do faturamento.
// Não ter o que apagar não é erro.
func (r *Repository) ExcluirPorFaturamento(ctx context.Context, faturamentoID uint) error {
	err := r.DB.WithContext(ctx).
		Where("faturamento_id = ?", faturamentoID).
		Delete(&Recebimento{}).Error
	return db.Traduzir(err, "excluir recebimento do faturamento", "recebimento", 0)
}

func (r *Repository) Excluir(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&Recebimento{}, id)
	if res.Error != nil {
		return db.Traduzir(res.Error, "excluir recebimento", "recebimento", id)
	}
	if res.RowsAffected == 0 {
		return db.Traduzir(gorm.ErrRecordNotFound, "excluir recebimento", "recebimento", id)
	}
	return nil
}
