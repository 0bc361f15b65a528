package empresa

import "gorm.io/gorm"

// Empresa é a dona dos contratos, faturamentos e recebimentos.
type Empresa struct {
	gorm.Model

	Nome string `gorm:"size:255;not null" json:"nome"`
	CNPJ string `gorm:"size:18;index" json:"cnpj"`
}
