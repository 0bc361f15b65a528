package faturamento

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
	"github.com/KromaEnergia/api-faturamento/internal/contrato"
)

// ErroGeracao é a falha de um único contrato durante a geração.
type ErroGeracao struct {
	ContratoID uint   `json:"contratoId"`
	Mensagem   string `json:"mensagem"`
}

// ResultadoGeracao resume uma execução de Gerar.
type ResultadoGeracao struct {
	EmpresaID   uint          `json:"empresaId"`
	Competencia string        `json:"competencia"`
	Criados     int           `json:"criados"`
	Ignorados   int           `json:"ignorados"`
	Erros       []ErroGeracao `json:"erros"`
}

// Notificador recebe o resumo quando a geração termina com erros.
type Notificador interface {
	Enviar(ctx context.Context, payload any) error
}

type Gerador struct {
	Store       Store
	Aliquotas   Aliquotas
	Log         logrus.FieldLogger
	Notificador Notificador
}

func NewGerador(store Store, aliquotas Aliquotas, log logrus.FieldLogger) *Gerador {
	return &Gerador{Store: store, Aliquotas: aliquotas, Log: log}
}

// Datas calcula faturamento e vencimento de um contrato na competência.
func Datas(c contrato.Contrato, comp Competencia) (time.Time, time.Time, error) {
	if c.DiaFaturamento < 1 || c.DiaFaturamento > 31 {
		return time.Time{}, time.Time{}, apperr.Validacao("dia de faturamento inválido: %d", c.DiaFaturamento)
	}
	if c.DiaVencimento < 1 || c.DiaVencimento > 31 {
		return time.Time{}, time.Time{}, apperr.Validacao("dia de vencimento inválido: %d", c.DiaVencimento)
	}
	dataFat := comp.Dia(c.DiaFaturamento)
	mesVenc := comp
	if !c.VencimentoMesCorrente {
		mesVenc = comp.Proxima()
	}
	return dataFat, mesVenc.Dia(c.DiaVencimento), nil
}

// Gerar cria um faturamento Pendente por contrato ativo da empresa na
// competência. Só a leitura inicial dos contratos é fatal; falhas por
// contrato vão para Erros e o laço segue.
func (g *Gerador) Gerar(ctx context.Context, comp Competencia, empresaID uint) (ResultadoGeracao, error) {
	res := ResultadoGeracao{EmpresaID: empresaID, Competencia: comp.String(), Erros: []ErroGeracao{}}
	if comp.IsZero() {
		return res, apperr.Validacao("competência obrigatória")
	}
	if empresaID == 0 {
		return res, apperr.Validacao("empresa obrigatória")
	}

	log := g.Log.WithFields(logrus.Fields{"empresa_id": empresaID, "competencia": res.Competencia})

	contratos, err := g.Store.ListarContratosAtivos(ctx, empresaID)
	if err != nil {
		return res, err
	}

	for _, c := range contratos {
		criado, err := g.gerarContrato(ctx, c, comp, empresaID)
		switch {
		case err != nil:
			log.WithField("contrato_id", c.ID).WithError(err).Warn("falha ao gerar faturamento")
			res.Erros = append(res.Erros, ErroGeracao{ContratoID: c.ID, Mensagem: err.Error()})
		case criado:
			res.Criados++
		default:
			res.Ignorados++
		}
	}

	log.WithFields(logrus.Fields{
		"criados":   res.Criados,
		"ignorados": res.Ignorados,
		"erros":     len(res.Erros),
	}).Info("geração de faturamentos concluída")

	if len(res.Erros) > 0 && g.Notificador != nil {
		if err := g.Notificador.Enviar(ctx, res); err != nil {
			log.WithError(err).Warn("falha ao notificar erros da geração")
		}
	}
	return res, nil
}

// gerarContrato devolve false, nil quando a competência já foi faturada.
func (g *Gerador) gerarContrato(ctx context.Context, c contrato.Contrato, comp Competencia, empresaID uint) (bool, error) {
	existente, err := g.Store.BuscarPorContratoCompetencia(ctx, c.ID, comp.String())
	if err != nil {
		return false, err
	}
	if existente != nil {
		return false, nil
	}

	dataFat, dataVenc, err := Datas(c, comp)
	if err != nil {
		return false, err
	}

	f := novoFaturamento(empresaID, c.ID, comp, dataFat, dataVenc, CalcularValores(c, g.Aliquotas))
	if err := g.Store.Inserir(ctx, f); err != nil {
		// Outra geração concorrente inseriu primeiro; o índice único decide.
		if apperr.IsDuplicado(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
