package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"gocart/config"
	"gocart/internal/pkg/cache"
	"gocart/internal/pkg/logger"
	"gocart/internal/pkg/memstore"
	"gocart/internal/pkg/middleware"
	"gocart/internal/seed"

	// Camadas para Injeção de Dependências
	"gocart/internal/api/cart"
	"gocart/internal/api/catalog"
	"gocart/internal/api/promo"
	"gocart/internal/api/router"
	"gocart/internal/api/transaction"
	"gocart/internal/repository/cartrepo"
	"gocart/internal/repository/catalogrepo"
	"gocart/internal/repository/promorepo"
	"gocart/internal/repository/txrepo"
	"gocart/internal/service/cartservice"
	"gocart/internal/service/catalogservice"
	"gocart/internal/service/checkoutservice"
	"gocart/internal/service/promoservice"
	"gocart/internal/service/txservice"
)

func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço GoCart...")

	// O godotenv.Load() procura por um arquivo chamado .env na raiz.
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Infraestrutura

	// A. Cache (Redis) - usado apenas pelo rate limiter
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	appLog.Info("Cliente Redis inicializado.", map[string]interface{}{"addr": cfg.RedisAddr})

	// B. Guard dos stores em memória (o limite transacional compartilhado)
	guard := memstore.NewGuard()

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	// A. Repositórios (stores em memória)
	catalogRepo := catalogrepo.NewRepository()
	promoRepo := promorepo.NewRepository()
	cartRepo := cartrepo.NewRepository()
	txRepo := txrepo.NewRepository()
	appLog.Debug("Stores em memória inicializados.", nil)

	// B. Serviços (Lógica de Negócio)
	catalogSvc := catalogservice.NewService(guard, catalogRepo, cartRepo, appLog)
	promoSvc := promoservice.NewService(guard, promoRepo, appLog)
	cartSvc := cartservice.NewService(guard, cartRepo, catalogRepo, appLog)
	checkoutSvc := checkoutservice.NewService(guard, cartRepo, catalogRepo, promoRepo, txRepo, appLog)
	txSvc := txservice.NewService(guard, txRepo, appLog)
	appLog.Debug("Serviços inicializados.", nil)

	// C. Handlers (Camada de Apresentação)
	catalogHandler := catalog.NewHandler(catalogSvc, appLog)
	promoHandler := promo.NewHandler(promoSvc, appLog)
	cartHandler := cart.NewHandler(cartSvc, checkoutSvc, appLog)
	txHandler := transaction.NewHandler(txSvc, appLog)
	appLog.Debug("Handlers inicializados.", nil)

	// 4. Fixture de demonstração (catálogo vazio no startup)
	if cfg.SeedDemoData {
		if err := seed.Demo(context.Background(), catalogSvc, appLog); err != nil {
			appLog.Error("Falha ao semear o catálogo de demonstração.", err)
		}
	}

	// 5. Roteador + Middlewares globais
	r := router.NewRouter(catalogHandler, promoHandler, cartHandler, txHandler)
	rateLimited := middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)
	handler := middleware.RequestID(rateLimited(r))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoCart ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
