package recebimento

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
	"github.com/KromaEnergia/api-faturamento/internal/faturamento"
)

// Servico liga o status do faturamento ao recebimento correspondente.
// Cada transição roda numa única transação: ou muda tudo ou nada.
type Servico struct {
	DB    *gorm.DB
	Repo  *Repository
	Log   logrus.FieldLogger
	Agora func() time.Time
}

func NewServico(database *gorm.DB, log logrus.FieldLogger) *Servico {
	return &Servico{DB: database, Repo: NewRepository(database), Log: log, Agora: time.Now}
}

// transacao abre uma tx e entrega repositórios presos a ela.
func (s *Servico) transacao(ctx context.Context, fn func(fat *faturamento.Repository, rec *Repository) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(faturamento.NewRepository(tx), s.Repo.WithDB(tx))
	})
}

// ConfirmarFaturamento marca o faturamento como Faturado e cria o
// recebimento Pendente com vencimento e valor a receber do faturamento.
func (s *Servico) ConfirmarFaturamento(ctx context.Context, faturamentoID uint) (*Recebimento, error) {
	var criado *Recebimento
	err := s.transacao(ctx, func(fats *faturamento.Repository, recs *Repository) error {
		f, err := fats.BuscarPorID(ctx, faturamentoID)
		if err != nil {
			return err
		}
		if f.Status != faturamento.StatusPendente {
			return apperr.Validacao("faturamento %d já está %s", f.ID, f.Status)
		}
		if err := fats.AtualizarStatus(ctx, f.ID, faturamento.StatusFaturado); err != nil {
			return err
		}
		contratoID := f.ContratoID
		fatID := f.ID
		criado = &Recebimento{
			EmpresaID:      f.EmpresaID,
			FaturamentoID:  &fatID,
			ContratoID:     &contratoID,
			Descricao:      fmt.Sprintf("Faturamento %s", f.Competencia),
			Competencia:    f.Competencia,
			DataVencimento: f.DataVencimento,
			Valor:          f.ValorReceber,
			Status:         StatusPendente,
		}
		return recs.Inserir(ctx, criado)
	})
	if err != nil {
		return nil, err
	}
	s.Log.WithFields(logrus.Fields{"faturamento_id": faturamentoID, "recebimento_id": criado.ID}).Info("faturamento confirmado")
	return criado, nil
}

// DesfazerFaturamento apaga o recebimento vinculado e volta o faturamento
// para Pendente. Recebimento já Recebido bloqueia a operação.
func (s *Servico) DesfazerFaturamento(ctx context.Context, faturamentoID uint) (*faturamento.Faturamento, error) {
	var revertido *faturamento.Faturamento
	err := s.transacao(ctx, func(fats *faturamento.Repository, recs *Repository) error {
		f, err := fats.BuscarPorID(ctx, faturamentoID)
		if err != nil {
			return err
		}
		if f.Status != faturamento.StatusFaturado {
			return apperr.Validacao("faturamento %d não está %s", f.ID, faturamento.StatusFaturado)
		}
		if err := s.liberarRecebimento(ctx, recs, f.ID); err != nil {
			return err
		}
		if err := fats.AtualizarStatus(ctx, f.ID, faturamento.StatusPendente); err != nil {
			return err
		}
		f.Status = faturamento.StatusPendente
		revertido = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Log.WithField("faturamento_id", faturamentoID).Info("faturamento desfeito")
	return revertido, nil
}

// ExcluirFaturamento faz soft delete do faturamento e apaga o recebimento.
func (s *Servico) ExcluirFaturamento(ctx context.Context, faturamentoID uint) error {
	return s.transacao(ctx, func(fats *faturamento.Repository, recs *Repository) error {
		f, err := fats.BuscarPorID(ctx, faturamentoID)
		if err != nil {
			return err
		}
		if err := s.liberarRecebimento(ctx, recs, f.ID); err != nil {
			return err
		}
		return fats.Excluir(ctx, f.ID)
	})
}

func (s *Servico) liberarRecebimento(ctx context.Context, recs *Repository, faturamentoID uint) error {
	rec, err := recs.BuscarPorFaturamento(ctx, faturamentoID)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	if rec.Status == StatusRecebido {
		return apperr.Validacao("recebimento %d já foi recebido; desfaça o recebimento antes", rec.ID)
	}
	return recs.ExcluirPorFaturamento(ctx, faturamentoID)
}

// MarcarRecebido usa data quando informada, senão o instante atual.
func (s *Servico) MarcarRecebido(ctx context.Context, id uint, data *time.Time) (*Recebimento, error) {
	rec, err := s.Repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status == StatusRecebido {
		return nil, apperr.Validacao("recebimento %d já está %s", id, StatusRecebido)
	}
	quando := s.Agora()
	if data != nil && !data.IsZero() {
		quando = *data
	}
	err = s.Repo.Atualizar(ctx, id, map[string]any{
		"status":           StatusRecebido,
		"data_recebimento": &quando,
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.BuscarPorID(ctx, id)
}

// DesfazerRecebimento volta para Pendente e limpa data_recebimento.
func (s *Servico) DesfazerRecebimento(ctx context.Context, id uint) (*Recebimento, error) {
	rec, err := s.Repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != StatusRecebido {
		return nil, apperr.Validacao("recebimento %d não está %s", id, StatusRecebido)
	}
	err = s.Repo.Atualizar(ctx, id, map[string]any{
		"status":           StatusPendente,
		"data_recebimento": nil,
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.BuscarPorID(ctx, id)
}

func (s *Servico) CriarAvulso(ctx context.Context, in NovoAvulso) (*Recebimento, error) {
	if in.EmpresaID == 0 {
		return nil, apperr.Validacao("empresa obrigatória")
	}
	if in.Descricao == "" {
		return nil, apperr.Validacao("descrição obrigatória")
	}
	if !in.Valor.IsPositive() {
		return nil, apperr.Validacao("valor deve ser maior que zero")
	}
	if in.DataVencimento.IsZero() {
		return nil, apperr.Validacao("data de vencimento obrigatória")
	}
	if in.Competencia == "" {
		in.Competencia = in.DataVencimento.Format("2006-01")
	} else if _, err := faturamento.ParseCompetencia(in.Competencia); err != nil {
		return nil, err
	}

	rec := &Recebimento{
		EmpresaID:      in.EmpresaID,
		ContratoID:     in.ContratoID,
		Descricao:      in.Descricao,
		Competencia:    in.Competencia,
		DataVencimento: in.DataVencimento,
		Valor:          in.Valor.Round(2),
		Status:         StatusPendente,
		Avulso:         true,
	}
	if err := s.Repo.Inserir(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Servico) Buscar(ctx context.Context, id uint) (*Recebimento, error) {
	return s.Repo.BuscarPorID(ctx, id)
}

func (s *Servico) Listar(ctx context.Context, empresaID uint, status string) ([]Recebimento, error) {
	if status != "" && status != StatusPendente && status != StatusRecebido {
		return nil, apperr.Validacao("status inválido: use %s ou %s", StatusPendente, StatusRecebido)
	}
	return s.Repo.ListarPorEmpresa(ctx, empresaID, status)
}

// ExcluirAvulso apaga só recebimentos avulsos; os demais saem junto com o
// faturamento.
func (s *Servico) ExcluirAvulso(ctx context.Context, id uint) error {
	rec, err := s.Repo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if !rec.Avulso {
		return apperr.Validacao("recebimento %d pertence a um faturamento; desfaça o faturamento", id)
	}
	return s.Repo.Excluir(ctx, id)
}
