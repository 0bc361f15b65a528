package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KromaEnergia/api-faturamento/internal/config"
	"github.com/KromaEnergia/api-faturamento/internal/utils"
	"github.com/KromaEnergia/api-faturamento/internal/utils/db"
)

func main() {
	cfg, err := config.Carregar()
	if err != nil {
		utils.NovoLogger("info", "text").Fatalf("Erro ao carregar configuração: %v", err)
	}
	log := utils.NovoLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.GetDB(ctx, cfg.Banco)
	if err != nil {
		log.Fatalf("Erro ao conectar no banco: %v", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(modelos...); err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Porta,
		Handler:           novoRouter(database, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("Servidor rodando em http://localhost:%s", cfg.Porta)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Erro no servidor: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Erro ao encerrar servidor")
	}
}
