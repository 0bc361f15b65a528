package servicoextra

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TurnoDiurno  = "Diurno"
	TurnoNoturno = "Noturno"
)

// ServicoExtra é um lançamento de hora extra de um funcionário num posto.
type ServicoExtra struct {
	gorm.Model

	EmpresaID     uint      `gorm:"not null;index" json:"empresaId"`
	FuncionarioID uint      `gorm:"not null;index" json:"funcionarioId"`
	ContratoID    uint      `gorm:"not null;index" json:"contratoId"`
	CargoID       uint      `gorm:"not null;index" json:"cargoId"`
	Entrada       time.Time `gorm:"not null;index" json:"entrada"`
	Saida         time.Time `gorm:"not null" json:"saida"`
	Turno         string    `gorm:"size:10;not null" json:"turno"`

	DuracaoHoras decimal.Decimal `gorm:"type:numeric(9,2);not null" json:"duracaoHoras"`
	ValorHora    decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"valorHora"`
	ValorTotal   decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"valorTotal"`

	Observacao string `gorm:"size:500" json:"observacao"`
}

// Lancamento são os dados informados pelo usuário; o restante é calculado.
type Lancamento struct {
	EmpresaID     uint      `json:"empresaId" validate:"required"`
	FuncionarioID uint      `json:"funcionarioId" validate:"required"`
	ContratoID    uint      `json:"contratoId" validate:"required"`
	CargoID       uint      `json:"cargoId" validate:"required"`
	Entrada       time.Time `json:"entrada" validate:"required"`
	Saida         time.Time `json:"saida" validate:"required"`
	Turno         string    `json:"turno" validate:"required,oneof=Diurno Noturno"`
	Observacao    string    `json:"observacao" validate:"max=500"`
}
