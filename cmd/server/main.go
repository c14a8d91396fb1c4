package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/config"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/api/handler"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/api/router"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository/gormstore"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository/localstore"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository/reststore"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/database"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/jwt"
	applogger "github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/logger"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/redis"
)

func main() {
	// 1. Configuração
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "falha ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("aplicação iniciando",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Redis (opcional: sem ele o cache e a blacklist degradam)
	var cache *redis.Client
	cache, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis indisponível, cache do dashboard e revogação de tokens desativados", zap.Error(err))
		cache = nil
	}

	// 4. Backend de dados conforme storage.driver
	var (
		repo *repository.Repository
		db   *gorm.DB
	)
	switch cfg.Storage.Driver {
	case "postgres":
		db, err = database.NewDB(&cfg.Database, logger)
		if err != nil {
			logger.Fatal("falha ao conectar ao PostgreSQL", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("falha ao obter o sql.DB subjacente", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("falha na migração do banco", zap.Error(err))
		}
		repo = gormstore.New(db)

	case "rest":
		client := reststore.NewClient(&cfg.Storage.REST, logger)
		repo = reststore.New(client)
		// o backend externo não gerencia usuários do backoffice;
		// eles ficam em um blob local ao lado do processo
		repo.User = localstore.NewUserRepository(store.NewFileBackend(usersPath(cfg.Storage.Local.Path)))

	default: // "local"
		st := store.New(
			store.NewFileBackend(cfg.Storage.Local.Path),
			cfg.Storage.Local.RecomputeGrades,
			logger,
		)
		repo = localstore.New(st, store.NewFileBackend(usersPath(cfg.Storage.Local.Path)))
	}

	// 5. JWT, serviços e handlers
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(cfg, repo, jwtMgr, cache, logger)
	h := handler.NewHandler(svc)

	if err := svc.Auth.SeedDefaultUsers(context.Background()); err != nil {
		logger.Fatal("falha ao semear usuários padrão", zap.Error(err))
	}

	// 6. Rotas e servidor HTTP com shutdown gracioso
	engine := router.Setup(cfg, h, jwtMgr, cache, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP no ar", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("falha no servidor HTTP", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinal de encerramento recebido", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha no encerramento do servidor", zap.Error(err))
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if cache != nil {
		cache.Close()
	}

	logger.Info("servidor encerrado")
}

// usersPath deriva o arquivo de usuários a partir do blob principal
// (school-db-v2.json → school-db-v2.users.json)
func usersPath(dataPath string) string {
	if strings.HasSuffix(dataPath, ".json") {
		return strings.TrimSuffix(dataPath, ".json") + ".users.json"
	}
	return dataPath + ".users.json"
}
