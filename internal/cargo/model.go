package cargo

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cargo carrega as diárias usadas no cálculo de serviço extra.
type Cargo struct {
	gorm.Model

	EmpresaID          uint            `gorm:"not null;index" json:"empresaId"`
	Nome               string          `gorm:"size:120;not null" json:"nome"`
	ValorDiariaDiurno  decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"valorDiariaDiurno"`
	ValorDiariaNoturno decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"valorDiariaNoturno"`
}
