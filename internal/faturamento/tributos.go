package faturamento

import (
	"github.com/shopspring/decimal"

	"github.com/KromaEnergia/api-faturamento/internal/contrato"
)

// Aliquotas federais retidas na fonte, em percentual (0.65 = 0,65%).
// O ISS não entra aqui: cada contrato informa a própria alíquota.
type Aliquotas struct {
	PIS    decimal.Decimal
	COFINS decimal.Decimal
	IRPJ   decimal.Decimal
	CSLL   decimal.Decimal
	INSS   decimal.Decimal
}

// TabelaAliquotas é a tabela padrão. IRPJ usa 1,5%; ALIQUOTA_IRPJ permite
// trocar para 1% sem recompilar.
var TabelaAliquotas = Aliquotas{
	PIS:    decimal.RequireFromString("0.65"),
	COFINS: decimal.NewFromInt(3),
	IRPJ:   decimal.RequireFromString("1.5"),
	CSLL:   decimal.NewFromInt(1),
	INSS:   decimal.NewFromInt(11),
}

// Tributos retidos de um faturamento, já arredondados em centavos.
type Tributos struct {
	ISS    decimal.Decimal
	PIS    decimal.Decimal
	COFINS decimal.Decimal
	IRPJ   decimal.Decimal
	CSLL   decimal.Decimal
	INSS   decimal.Decimal
}

func (t Tributos) Total() decimal.Decimal {
	return decimal.Sum(t.ISS, t.PIS, t.COFINS, t.IRPJ, t.CSLL, t.INSS)
}

// Valores é o resultado do cálculo financeiro de um faturamento.
type Valores struct {
	Bruto           decimal.Decimal
	Tributos        Tributos
	Liquido         decimal.Decimal
	RetencaoTecnica decimal.Decimal
	Receber         decimal.Decimal
}

// percentual calcula valor × pct / 100 arredondado em centavos.
func percentual(valor, pct decimal.Decimal) decimal.Decimal {
	return valor.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
}

func retido(flag bool, valor, pct decimal.Decimal) decimal.Decimal {
	if !flag {
		return decimal.Zero
	}
	return percentual(valor, pct)
}

// CalcularTributos aplica as retenções marcadas no contrato sobre o bruto.
func CalcularTributos(c contrato.Contrato, bruto decimal.Decimal, tabela Aliquotas) Tributos {
	return Tributos{
		ISS:    retido(c.RetemISS, bruto, c.AliquotaISS),
		PIS:    retido(c.RetemPIS, bruto, tabela.PIS),
		COFINS: retido(c.RetemCOFINS, bruto, tabela.COFINS),
		IRPJ:   retido(c.RetemIRPJ, bruto, tabela.IRPJ),
		CSLL:   retido(c.RetemCSLL, bruto, tabela.CSLL),
		INSS:   retido(c.RetemINSS, bruto, tabela.INSS),
	}
}

// CalcularValores: líquido = bruto − tributos; a receber = líquido − retenção técnica.
func CalcularValores(c contrato.Contrato, tabela Aliquotas) Valores {
	bruto := c.ValorMensal.Round(2)
	tributos := CalcularTributos(c, bruto, tabela)
	liquido := bruto.Sub(tributos.Total())
	retencao := retido(c.PossuiRetencaoTecnica, bruto, c.PercentualRetencaoTecnica)
	return Valores{
		Bruto:           bruto,
		Tributos:        tributos,
		Liquido:         liquido,
		RetencaoTecnica: retencao,
		Receber:         liquido.Sub(retencao),
	}
}
