package recebimento

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPendente = "Pendente"
	StatusRecebido = "Recebido"
)

// Recebimento é um valor a receber. Quando nasce de um faturamento
// confirmado, FaturamentoID aponta para ele (1:1); avulsos não têm vínculo.
type Recebimento struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	EmpresaID       uint            `gorm:"not null;index" json:"empresaId"`
	FaturamentoID   *uint           `gorm:"uniqueIndex:idx_recebimento_faturamento,where:faturamento_id IS NOT NULL" json:"faturamentoId"`
	ContratoID      *uint           `gorm:"index" json:"contratoId"`
	Descricao       string          `gorm:"size:255" json:"descricao"`
	Competencia     string          `gorm:"size:7;index" json:"competencia"`
	DataVencimento  time.Time       `gorm:"not null" json:"dataVencimento"`
	Valor           decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"valor"`
	Status          string          `gorm:"size:20;not null;default:'Pendente';index" json:"status"`
	DataRecebimento *time.Time      `json:"dataRecebimento"`
	Avulso          bool            `gorm:"not null;default:false" json:"avulso"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NovoAvulso são os dados de um recebimento sem faturamento.
type NovoAvulso struct {
	EmpresaID      uint            `json:"empresaId"`
	ContratoID     *uint           `json:"contratoId"`
	Descricao      string          `json:"descricao" validate:"required,max=255"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento time.Time       `json:"dataVencimento" validate:"required"`
	Competencia    string          `json:"competencia"`
}
