package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/KromaEnergia/api-faturamento/internal/faturamento"
	"github.com/KromaEnergia/api-faturamento/internal/utils/db"
)

type Config struct {
	Porta string

	Banco db.Parametros

	JWTSecret        string
	CORSOrigens      []string
	WebhookAlertaURL string

	LogLevel  string
	LogFormat string

	// Aliquotas federais aplicadas na geração de faturamentos.
	Aliquotas faturamento.Aliquotas
}

// Carregar lê o .env (se existir) e as variáveis de ambiente.
func Carregar() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.ParseUint(getEnvOrDefault("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("DB_PORT inválida: %w", err)
	}

	aliquotas, err := carregarAliquotas(faturamento.TabelaAliquotas)
	if err != nil {
		return nil, err
	}

	banco := db.Parametros{
		Host:        getEnvOrDefault("DB_HOST", "localhost"),
		Port:        uint(port),
		Nome:        getEnvOrDefault("DB_NAME", "faturamento"),
		Username:    os.Getenv("DB_USERNAME"),
		Password:    os.Getenv("DB_PASSWORD"),
		SecretID:    os.Getenv("DB_SECRET_ID"),
		SSLDisabled: os.Getenv("DB_SSL_MODE_DISABLE") == "true",
	}

	cfg := &Config{
		Porta:            getEnvOrDefault("PORT", "8080"),
		Banco:            banco,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		CORSOrigens:      splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
		WebhookAlertaURL: os.Getenv("WEBHOOK_ALERTA_URL"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        getEnvOrDefault("LOG_FORMAT", "text"),
		Aliquotas:        aliquotas,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET não definida")
	}
	return cfg, nil
}

// carregarAliquotas sobrescreve a tabela padrão com ALIQUOTA_<TRIBUTO> quando presente.
func carregarAliquotas(base faturamento.Aliquotas) (faturamento.Aliquotas, error) {
	campos := []struct {
		env  string
		dest *decimal.Decimal
	}{
		{"ALIQUOTA_PIS", &base.PIS},
		{"ALIQUOTA_COFINS", &base.COFINS},
		{"ALIQUOTA_IRPJ", &base.IRPJ},
		{"ALIQUOTA_CSLL", &base.CSLL},
		{"ALIQUOTA_INSS", &base.INSS},
	}
	for _, c := range campos {
		v := strings.TrimSpace(os.Getenv(c.env))
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
		if err != nil || d.IsNegative() {
			return base, fmt.Errorf("%s inválida: %q", c.env, v)
		}
		*c.dest = d
	}
	return base, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
