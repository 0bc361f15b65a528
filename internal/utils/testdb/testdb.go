// Package testdb abre um SQLite em memória para os testes dos repositórios.
package testdb

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Abrir cria o banco e migra os modelos informados. Uma única conexão
// mantém o mesmo banco em memória visível para todas as queries.
func Abrir(t testing.TB, modelos ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(modelos...); err != nil {
		t.Fatalf("migrar: %v", err)
	}
	return db
}
