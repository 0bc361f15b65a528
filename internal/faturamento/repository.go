package faturamento

import (
	"context"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-faturamento/internal/contrato"
	"github.com/KromaEnergia/api-faturamento/internal/utils/db"
)

// Store é o que o Gerador precisa do armazenamento.
type Store interface {
	ListarContratosAtivos(ctx context.Context, empresaID uint) ([]contrato.Contrato, error)
	// BuscarPorContratoCompetencia devolve nil, nil quando não há faturamento.
	BuscarPorContratoCompetencia(ctx context.Context, contratoID uint, competencia string) (*Faturamento, error)
	Inserir(ctx context.Context, f *Faturamento) error
	AtualizarStatus(ctx context.Context, id uint, status string) error
}

// Filtro de listagem; campos vazios não filtram.
type Filtro struct {
	Competencia string
	Status      string
	ContratoID  uint
}

// Repository encapsula o acesso a dados de faturamentos.
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

func (r *Repository) ListarContratosAtivos(ctx context.Context, empresaID uint) ([]contrato.Contrato, error) {
	return contrato.NewRepository(r.DB).ListarAtivosPorEmpresa(ctx, empresaID)
}

func (r *Repository) BuscarPorContratoCompetencia(ctx context.Context, contratoID uint, competencia string) (*Faturamento, error) {
	var list []Faturamento
	err := r.DB.WithContext(ctx).
		Where("contrato_id = ? AND competencia = ?", contratoID, competencia).
		Limit(1).
		Find(&list).Error
	if err != nil {
		return nil, db.Traduzir(err, "buscar faturamento da competência", "faturamento", 0)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (r *Repository) Inserir(ctx context.Context, f *Faturamento) error {
	return db.Traduzir(r.DB.WithContext(ctx).Create(f).Error, "inserir faturamento", "faturamento", 0)
}

func (r *Repository) AtualizarStatus(ctx context.Context, id uint, status string) error {
	res := r.DB.WithContext(ctx).Model(&Faturamento{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return db.Traduzir(res.Error, "atualizar status do faturamento", "faturamento", id)
	}
	if res.RowsAffected == 0 {
		return db.Traduzir(gorm.ErrRecordNotFound, "atualizar status do faturamento", "faturamento", id)
	}
	return nil
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Faturamento, error) {
	var f Faturamento
	if err := r.DB.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, db.Traduzir(err, "buscar faturamento", "faturamento", id)
	}
	return &f, nil
}

func (r *Repository) ListarPorEmpresa(ctx context.Context, empresaID uint, filtro Filtro) ([]Faturamento, error) {
	q := r.DB.WithContext(ctx).Where("empresa_id = ?", empresaID)
	if filtro.Competencia != "" {
		q = q.Where("competencia = ?", filtro.Competencia)
	}
	if filtro.Status != "" {
		q = q.Where("status = ?", filtro.Status)
	}
	if filtro.ContratoID != 0 {
		q = q.Where("contrato_id = ?", filtro.ContratoID)
	}
	var list []Faturamento
	err := q.Order("competencia DESC, contrato_id ASC").Find(&list).Error
	return list, db.Traduzir(err, "listar faturamentos", "faturamento", 0)
}

// Salvar grava todos os campos (Save exige PK).
func (r *Repository) Salvar(ctx context.Context, f *Faturamento) error {
	return db.Traduzir(r.DB.WithContext(ctx).Save(f).Error, "salvar faturamento", "faturamento", f.ID)
}

// Excluir faz soft delete; a competência fica livre para nova geração.
func (r *Repository) Excluir(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&Faturamento{}, id)
	if res.Error != nil {
		return db.Traduzir(res.Error, "excluir faturamento", "faturamento", id)
	}
	if res.RowsAffected == 0 {
		return db.Traduzir(gorm.ErrRecordNotFound, "excluir faturamento", "faturamento", id)
	}
	return nil
}
