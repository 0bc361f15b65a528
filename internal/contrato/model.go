package contrato

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Contrato de prestação de serviço faturado mensalmente para uma empresa.
// Carrega a configuração de datas, retenções de tributos e retenção técnica
// usada pela geração de faturamentos.
type Contrato struct {
	gorm.Model

	EmpresaID uint   `gorm:"not null;index" json:"empresaId"`
	Descricao string `gorm:"size:255;not null" json:"descricao"`

	ValorMensal decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"valorMensal"`
	Ativo       bool            `gorm:"not null;index" json:"ativo"`

	DiaFaturamento        int  `gorm:"not null" json:"diaFaturamento"`        // 1-31, limitado ao último dia do mês
	DiaVencimento         int  `gorm:"not null" json:"diaVencimento"`         // 1-31, idem
	VencimentoMesCorrente bool `gorm:"not null" json:"vencimentoMesCorrente"` // false: vence no mês seguinte

	// Retenções na fonte
	RetemISS    bool            `json:"retemIss"`
	AliquotaISS decimal.Decimal `gorm:"type:numeric(9,4);not null;default:0" json:"aliquotaIss"` // percentual (5 = 5%)
	RetemPIS    bool            `json:"retemPis"`
	RetemCOFINS bool            `json:"retemCofins"`
	RetemIRPJ   bool            `json:"retemIrpj"`
	RetemCSLL   bool            `json:"retemCsll"`
	RetemINSS   bool            `json:"retemInss"`

	// Retenção técnica contratual
	PossuiRetencaoTecnica     bool            `json:"possuiRetencaoTecnica"`
	PercentualRetencaoTecnica decimal.Decimal `gorm:"type:numeric(9,4);not null;default:0" json:"percentualRetencaoTecnica"`
}
