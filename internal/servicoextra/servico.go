package servicoextra

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
	"github.com/KromaEnergia/api-faturamento/internal/cargo"
)

type Servico struct {
	Repo   *Repository
	Cargos *cargo.Repository
	Log    logrus.FieldLogger
}

func NewServico(repo *Repository, cargos *cargo.Repository, log logrus.FieldLogger) *Servico {
	return &Servico{Repo: repo, Cargos: cargos, Log: log}
}

// Diaria escolhe a diária do cargo pelo turno.
func Diaria(c *cargo.Cargo, turno string) (decimal.Decimal, error) {
	switch turno {
	case TurnoDiurno:
		return c.ValorDiariaDiurno, nil
	case TurnoNoturno:
		return c.ValorDiariaNoturno, nil
	default:
		return decimal.Zero, apperr.Validacao("turno inválido: %q", turno)
	}
}

// calcular resolve o cargo e aplica Calcular sobre o lançamento.
func (s *Servico) calcular(ctx context.Context, in Lancamento) (Calculo, error) {
	c, err := s.Cargos.BuscarPorID(ctx, in.CargoID)
	if err != nil {
		return Calculo{}, err
	}
	if c.EmpresaID != in.EmpresaID {
		return Calculo{}, apperr.Validacao("cargo %d não pertence à empresa %d", c.ID, in.EmpresaID)
	}
	diaria, err := Diaria(c, in.Turno)
	if err != nil {
		return Calculo{}, err
	}
	return Calcular(in.Entrada, in.Saida, diaria)
}

func aplicar(se *ServicoExtra, in Lancamento, calc Calculo) {
	se.EmpresaID = in.EmpresaID
	se.FuncionarioID = in.FuncionarioID
	se.ContratoID = in.ContratoID
	se.CargoID = in.CargoID
	se.Entrada = in.Entrada
	se.Saida = in.Saida
	se.Turno = in.Turno
	se.Observacao = in.Observacao
	se.DuracaoHoras = calc.DuracaoHoras
	se.ValorHora = calc.ValorHora
	se.ValorTotal = calc.ValorTotal
}

func (s *Servico) Registrar(ctx context.Context, in Lancamento) (*ServicoExtra, error) {
	calc, err := s.calcular(ctx, in)
	if err != nil {
		return nil, err
	}
	var se ServicoExtra
	aplicar(&se, in, calc)
	if err := s.Repo.Criar(ctx, &se); err != nil {
		return nil, err
	}
	s.Log.WithFields(logrus.Fields{
		"servico_extra_id": se.ID,
		"funcionario_id":   se.FuncionarioID,
		"valor_total":      se.ValorTotal.StringFixed(2),
	}).Info("serviço extra registrado")
	return &se, nil
}

// Atualizar substitui os dados do lançamento e recalcula os valores.
func (s *Servico) Atualizar(ctx context.Context, id uint, in Lancamento) (*ServicoExtra, error) {
	se, err := s.Repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	calc, err := s.calcular(ctx, in)
	if err != nil {
		return nil, err
	}
	aplicar(se, in, calc)
	if err := s.Repo.Atualizar(ctx, se); err != nil {
		return nil, err
	}
	return se, nil
}

func (s *Servico) Buscar(ctx context.Context, id uint) (*ServicoExtra, error) {
	return s.Repo.BuscarPorID(ctx, id)
}

func (s *Servico) Listar(ctx context.Context, empresaID uint, f Filtro) ([]ServicoExtra, error) {
	if !f.Inicio.IsZero() && !f.Fim.IsZero() && !f.Fim.After(f.Inicio) {
		return nil, apperr.Validacao("período inválido")
	}
	return s.Repo.ListarPorEmpresa(ctx, empresaID, f)
}

func (s *Servico) Excluir(ctx context.Context, id uint) error {
	return s.Repo.Deletar(ctx, id)
}
