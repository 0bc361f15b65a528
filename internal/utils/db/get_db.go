package db

import (
	"context"

	"gorm.io/gorm"
)

// Parametros reúne o necessário para abrir a conexão com o banco.
type Parametros struct {
	Host        string
	Port        uint
	Nome        string
	Username    string
	Password    string
	SecretID    string
	SSLDisabled bool
}

func GetDB(ctx context.Context, p Parametros) (*gorm.DB, error) {
	username, password, err := retrieveCredentials(ctx, p)
	if err != nil {
		return nil, err
	}
	return ConnectDataBase(p.Port, p.Host, p.Nome, username, password, p.SSLDisabled)
}
