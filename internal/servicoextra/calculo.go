package servicoextra

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KromaEnergia/api-faturamento/internal/apperr"
)

// Uma diária cobre 12 horas de trabalho.
var horasPorDiaria = decimal.NewFromInt(12)

var (
	sessenta = decimal.NewFromInt(60)
	dez      = decimal.NewFromInt(10)
	cem      = decimal.NewFromInt(100)
)

// Calculo é o resultado de Calcular.
type Calculo struct {
	DuracaoHoras decimal.Decimal `json:"duracaoHoras"`
	ValorHora    decimal.Decimal `json:"valorHora"`
	ValorTotal   decimal.Decimal `json:"valorTotal"`
}

// Calcular apura duração, valor da hora e total de um serviço extra.
// Minutos incompletos são descartados.
func Calcular(entrada, saida time.Time, valorDiaria decimal.Decimal) (Calculo, error) {
	if entrada.IsZero() || saida.IsZero() {
		return Calculo{}, apperr.Validacao("entrada e saída são obrigatórias")
	}
	if !saida.After(entrada) {
		return Calculo{}, apperr.Validacao("saída deve ser posterior à entrada")
	}
	if valorDiaria.IsNegative() {
		return Calculo{}, apperr.Validacao("valor da diária não pode ser negativo")
	}

	minutos := int64(saida.Sub(entrada) / time.Minute)
	duracao := decimal.NewFromInt(minutos).Div(sessenta).Round(2)
	valorHora := valorDiaria.Div(horasPorDiaria).Round(2)

	return Calculo{
		DuracaoHoras: duracao,
		ValorHora:    valorHora,
		ValorTotal:   arredondarTotal(duracao.Mul(valorHora)),
	}, nil
}

// arredondarTotal sobe para o décimo seguinte quando a segunda casa
// decimal é 6 ou mais; abaixo disso arredonda normalmente em centavos.
func arredondarTotal(v decimal.Decimal) decimal.Decimal {
	segundaCasa := v.Mul(cem).Truncate(0).Mod(dez)
	if segundaCasa.GreaterThanOrEqual(decimal.NewFromInt(6)) {
		return v.Mul(dez).Ceil().Div(dez)
	}
	return v.Round(2)
}
