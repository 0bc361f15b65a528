package faturamento

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
)

// Servico concentra as alterações manuais de um faturamento já gerado.
type Servico struct {
	Repo *Repository
}

func NewServico(repo *Repository) *Servico {
	return &Servico{Repo: repo}
}

func (s *Servico) Buscar(ctx context.Context, id uint) (*Faturamento, error) {
	return s.Repo.BuscarPorID(ctx, id)
}

func (s *Servico) Listar(ctx context.Context, empresaID uint, filtro Filtro) ([]Faturamento, error) {
	if filtro.Competencia != "" {
		comp, err := ParseCompetencia(filtro.Competencia)
		if err != nil {
			return nil, err
		}
		filtro.Competencia = comp.String()
	}
	if filtro.Status != "" && filtro.Status != StatusPendente && filtro.Status != StatusFaturado {
		return nil, apperr.Validacao("status inválido: use %s ou %s", StatusPendente, StatusFaturado)
	}
	return s.Repo.ListarPorEmpresa(ctx, empresaID, filtro)
}

func (s *Servico) buscarPendente(ctx context.Context, id uint) (*Faturamento, error) {
	f, err := s.Repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.Status != StatusPendente {
		return nil, apperr.Validacao("faturamento %d está %s; desfaça antes de alterar", id, f.Status)
	}
	return f, nil
}

// AjustarValores aplica acréscimo e desconto enquanto Pendente.
// O retrato de tributos e a retenção técnica não mudam.
func (s *Servico) AjustarValores(ctx context.Context, id uint, acrescimo, desconto decimal.Decimal) (*Faturamento, error) {
	if acrescimo.IsNegative() || desconto.IsNegative() {
		return nil, apperr.Validacao("acréscimo e desconto não podem ser negativos")
	}
	f, err := s.buscarPendente(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Acrescimo = acrescimo.Round(2)
	f.Desconto = desconto.Round(2)
	f.RecalcularLiquido()
	if err := s.Repo.Salvar(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// AlterarDatas troca faturamento e vencimento enquanto Pendente. A
// competência não muda, então não abre espaço para um segundo faturamento.
func (s *Servico) AlterarDatas(ctx context.Context, id uint, dataFat, dataVenc time.Time) (*Faturamento, error) {
	if dataFat.IsZero() || dataVenc.IsZero() {
		return nil, apperr.Validacao("dataFaturamento e dataVencimento são obrigatórias")
	}
	if dataVenc.Before(dataFat) {
		return nil, apperr.Validacao("vencimento anterior ao faturamento")
	}
	f, err := s.buscarPendente(ctx, id)
	if err != nil {
		return nil, err
	}
	f.DataFaturamento = dataFat
	f.DataVencimento = dataVenc
	if err := s.Repo.Salvar(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
