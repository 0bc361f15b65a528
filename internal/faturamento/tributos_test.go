package faturamento

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/KromaEnergia/api-faturamento/internal/contrato"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalcularValoresIssPisCofins(t *testing.T) {
	c := contrato.Contrato{
		ValorMensal: dec("10000"),
		RetemISS:    true,
		AliquotaISS: dec("5"),
		RetemPIS:    true,
		RetemCOFINS: true,
	}

	v := CalcularValores(c, TabelaAliquotas)

	assert.Equal(t, "500.00", v.Tributos.ISS.StringFixed(2))
	assert.Equal(t, "65.00", v.Tributos.PIS.StringFixed(2))
	assert.Equal(t, "300.00", v.Tributos.COFINS.StringFixed(2))
	assert.True(t, v.Tributos.IRPJ.IsZero())
	assert.Equal(t, "9135.00", v.Liquido.StringFixed(2))
	assert.True(t, v.RetencaoTecnica.IsZero())
	assert.Equal(t, "9135.00", v.Receber.StringFixed(2))
}

func TestCalcularValoresTodasRetencoes(t *testing.T) {
	c := contrato.Contrato{
		ValorMensal:               dec("12345.67"),
		RetemISS:                  true,
		AliquotaISS:               dec("2"),
		RetemPIS:                  true,
		RetemCOFINS:               true,
		RetemIRPJ:                 true,
		RetemCSLL:                 true,
		RetemINSS:                 true,
		PossuiRetencaoTecnica:     true,
		PercentualRetencaoTecnica: dec("5"),
	}

	v := CalcularValores(c, TabelaAliquotas)

	// 12345.67 × {2, 0.65, 3, 1.5, 1, 11}% arredondado em centavos
	assert.Equal(t, "246.91", v.Tributos.ISS.StringFixed(2))
	assert.Equal(t, "80.25", v.Tributos.PIS.StringFixed(2))
	assert.Equal(t, "370.37", v.Tributos.COFINS.StringFixed(2))
	assert.Equal(t, "185.19", v.Tributos.IRPJ.StringFixed(2))
	assert.Equal(t, "123.46", v.Tributos.CSLL.StringFixed(2))
	assert.Equal(t, "1358.02", v.Tributos.INSS.StringFixed(2))
	assert.Equal(t, "2364.20", v.Tributos.Total().StringFixed(2))
	assert.Equal(t, "9981.47", v.Liquido.StringFixed(2))
	assert.Equal(t, "617.28", v.RetencaoTecnica.StringFixed(2))
	assert.Equal(t, "9364.19", v.Receber.StringFixed(2))
}

func TestCalcularTributosTabelaAlternativa(t *testing.T) {
	tabela := TabelaAliquotas
	tabela.IRPJ = dec("1")
	c := contrato.Contrato{ValorMensal: dec("10000"), RetemIRPJ: true}

	assert.Equal(t, "100.00", CalcularTributos(c, c.ValorMensal, tabela).IRPJ.StringFixed(2))
	assert.Equal(t, "150.00", CalcularTributos(c, c.ValorMensal, TabelaAliquotas).IRPJ.StringFixed(2))
}

func TestRecalcularLiquidoPreservaTributos(t *testing.T) {
	c := contrato.Contrato{ValorMensal: dec("10000"), RetemISS: true, AliquotaISS: dec("5"), PossuiRetencaoTecnica: true, PercentualRetencaoTecnica: dec("10")}
	v := CalcularValores(c, TabelaAliquotas)
	f := novoFaturamento(1, 1, Competencia{Ano: 2025, Mes: 1}, c.CreatedAt, c.CreatedAt, v)

	f.Acrescimo = dec("200")
	f.Desconto = dec("50")
	f.RecalcularLiquido()

	assert.Equal(t, "500.00", f.ValorISS.StringFixed(2))
	assert.Equal(t, "9650.00", f.ValorLiquido.StringFixed(2))
	assert.Equal(t, "8650.00", f.ValorReceber.StringFixed(2))
}
