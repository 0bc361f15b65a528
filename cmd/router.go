package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/KromaEnergia/api-faturamento/internal/auth"
	"github.com/KromaEnergia/api-faturamento/internal/cargo"
	"github.com/KromaEnergia/api-faturamento/internal/config"
	"github.com/KromaEnergia/api-faturamento/internal/contrato"
	"github.com/KromaEnergia/api-faturamento/internal/empresa"
	"github.com/KromaEnergia/api-faturamento/internal/faturamento"
	"github.com/KromaEnergia/api-faturamento/internal/notificacao"
	"github.com/KromaEnergia/api-faturamento/internal/recebimento"
	"github.com/KromaEnergia/api-faturamento/internal/servicoextra"
	"github.com/KromaEnergia/api-faturamento/internal/utils"
)

// modelos migrados na subida
var modelos = []any{
	&empresa.Empresa{},
	&contrato.Contrato{},
	&faturamento.Faturamento{},
	&recebimento.Recebimento{},
	&cargo.Cargo{},
	&servicoextra.ServicoExtra{},
}

func novoRouter(db *gorm.DB, cfg *config.Config, log *logrus.Logger) http.Handler {
	// Repositórios
	empresaRepo := empresa.NewRepository(db)
	contratoRepo := contrato.NewRepository(db)
	faturamentoRepo := faturamento.NewRepository(db)
	cargoRepo := cargo.NewRepository(db)

	gerador := faturamento.NewGerador(faturamentoRepo, cfg.Aliquotas, log.WithField("componente", "gerador"))
	if cfg.WebhookAlertaURL != "" {
		gerador.Notificador = notificacao.NewWebhook(cfg.WebhookAlertaURL, log)
	}

	// Handlers
	empresaHandler := empresa.NewHandler(empresaRepo)
	contratoHandler := contrato.NewHandler(contratoRepo)
	cargoHandler := cargo.NewHandler(cargoRepo)
	faturamentoHandler := faturamento.NewHandler(gerador, faturamento.NewServico(faturamentoRepo))
	recebimentoHandler := recebimento.NewHandler(recebimento.NewServico(db, log.WithField("componente", "recebimento")))
	servicoExtraHandler := servicoextra.NewHandler(servicoextra.NewServico(
		servicoextra.NewRepository(db), cargoRepo, log.WithField("componente", "servico_extra"),
	))

	// Router
	r := mux.NewRouter()
	r.Use(utils.LogAcesso(log))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.NewAutenticador(cfg.JWTSecret).Middleware)

	// Rotas de empresas
	api.HandleFunc("/empresas", empresaHandler.Criar).Methods("POST")
	api.HandleFunc("/empresas", empresaHandler.Listar).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/empresas/{id}", empresaHandler.Deletar).Methods("DELETE")

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/empresas/{id}/contratos", contratoHandler.ListarPorEmpresa).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")

	// Rotas de cargos
	api.HandleFunc("/cargos", cargoHandler.Criar).Methods("POST")
	api.HandleFunc("/empresas/{id}/cargos", cargoHandler.ListarPorEmpresa).Methods("GET")
	api.HandleFunc("/cargos/{id}", cargoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/cargos/{id}", cargoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/cargos/{id}", cargoHandler.Deletar).Methods("DELETE")

	// Rotas de faturamentos
	api.HandleFunc("/faturamentos/gerar", faturamentoHandler.Gerar).Methods("POST")
	api.HandleFunc("/empresas/{id}/faturamentos", faturamentoHandler.ListarPorEmpresa).Methods("GET")
	api.HandleFunc("/faturamentos/{id}", faturamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/faturamentos/{id}/valores", faturamentoHandler.AjustarValores).Methods("PATCH")
	api.HandleFunc("/faturamentos/{id}/datas", faturamentoHandler.AlterarDatas).Methods("PATCH")
	api.HandleFunc("/faturamentos/{id}/faturar", recebimentoHandler.ConfirmarFaturamento).Methods("POST")
	api.HandleFunc("/faturamentos/{id}/desfazer", recebimentoHandler.DesfazerFaturamento).Methods("POST")
	api.HandleFunc("/faturamentos/{id}", recebimentoHandler.ExcluirFaturamento).Methods("DELETE")

	// Rotas de recebimentos
	api.HandleFunc("/recebimentos/avulso", recebimentoHandler.CriarAvulso).Methods("POST")
	api.HandleFunc("/empresas/{id}/recebimentos", recebimentoHandler.ListarPorEmpresa).Methods("GET")
	api.HandleFunc("/recebimentos/{id}", recebimentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/recebimentos/{id}/receber", recebimentoHandler.Receber).Methods("POST")
	api.HandleFunc("/recebimentos/{id}/desfazer", recebimentoHandler.DesfazerRecebimento).Methods("POST")
	api.HandleFunc("/recebimentos/{id}", recebimentoHandler.Excluir).Methods("DELETE")

	// Rotas de serviços extras
	api.HandleFunc("/servicos-extras/calcular", servicoExtraHandler.Calcular).Methods("POST")
	api.HandleFunc("/servicos-extras", servicoExtraHandler.Criar).Methods("POST")
	api.HandleFunc("/empresas/{id}/servicos-extras", servicoExtraHandler.ListarPorEmpresa).Methods("GET")
	api.HandleFunc("/servicos-extras/{id}", servicoExtraHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/servicos-extras/{id}", servicoExtraHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/servicos-extras/{id}", servicoExtraHandler.Deletar).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigens,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
