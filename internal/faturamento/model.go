package faturamento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPendente = "Pendente"
	StatusFaturado = "Faturado"
)

// Faturamento guarda o retrato financeiro de um contrato numa competência.
// O índice único parcial garante no banco um único faturamento não excluído
// por (contrato, competência).
type Faturamento struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	EmpresaID   uint   `gorm:"not null;index" json:"empresaId"`
	ContratoID  uint   `gorm:"not null;uniqueIndex:idx_faturamento_contrato_competencia,where:deleted_at IS NULL" json:"contratoId"`
	Competencia string `gorm:"size:7;not null;index;uniqueIndex:idx_faturamento_contrato_competencia,where:deleted_at IS NULL" json:"competencia"`

	DataFaturamento time.Time `gorm:"not null" json:"dataFaturamento"`
	DataVencimento  time.Time `gorm:"not null" json:"dataVencimento"`

	ValorBruto  decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"valorBruto"`
	ValorISS    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"valorIss"`
	ValorPIS    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"valorPis"`
	ValorCOFINS decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"valorCofins"`
	ValorIRPJ   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"valorIrpj"`
	ValorCSLL   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"valorCsll"`
	ValorINSS   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"valorInss"`

	ValorLiquido         decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"valorLiquido"`
	ValorRetencaoTecnica decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"valorRetencaoTecnica"`
	ValorReceber         decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"valorReceber"`

	// Ajustes manuais; só mexem no líquido e no valor a receber.
	Acrescimo decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"acrescimo"`
	Desconto  decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"desconto"`

	Status string `gorm:"size:20;not null;default:'Pendente';index" json:"status"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// TotalTributos soma o retrato de tributos retidos.
func (f *Faturamento) TotalTributos() decimal.Decimal {
	return decimal.Sum(f.ValorISS, f.ValorPIS, f.ValorCOFINS, f.ValorIRPJ, f.ValorCSLL, f.ValorINSS)
}

// RecalcularLiquido reaplica acréscimo e desconto sem tocar nos tributos.
func (f *Faturamento) RecalcularLiquido() {
	f.ValorLiquido = f.ValorBruto.Sub(f.TotalTributos()).Add(f.Acrescimo).Sub(f.Desconto)
	f.ValorReceber = f.ValorLiquido.Sub(f.ValorRetencaoTecnica)
}

func novoFaturamento(empresaID, contratoID uint, comp Competencia, dataFat, dataVenc time.Time, v Valores) *Faturamento {
	return &Faturamento{
		EmpresaID:            empresaID,
		ContratoID:           contratoID,
		Competencia:          comp.String(),
		DataFaturamento:      dataFat,
		DataVencimento:       dataVenc,
		ValorBruto:           v.Bruto,
		ValorISS:             v.Tributos.ISS,
		ValorPIS:             v.Tributos.PIS,
		ValorCOFINS:          v.Tributos.COFINS,
		ValorIRPJ:            v.Tributos.IRPJ,
		ValorCSLL:            v.Tributos.CSLL,
		ValorINSS:            v.Tributos.INSS,
		ValorLiquido:         v.Liquido,
		ValorRetencaoTecnica: v.RetencaoTecnica,
		ValorReceber:         v.Receber,
		Acrescimo:            decimal.Zero,
		Desconto:             decimal.Zero,
		Status:               StatusPendente,
	}
}
