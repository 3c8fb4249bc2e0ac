package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/changhyeonkim/cardmask/internal/bootstrap"
	"github.com/changhyeonkim/cardmask/internal/config"
	"github.com/changhyeonkim/cardmask/internal/router"
	"github.com/changhyeonkim/cardmask/internal/shared/database"
	"github.com/changhyeonkim/cardmask/internal/shared/logger"
	"github.com/changhyeonkim/cardmask/internal/shared/validator"
)

func main() {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	flag.Parse()

	logger.Setup(*env)
	slog.Info("서버 초기화 시작", "env", *env)

	// SIGINT/SIGTERM cancel ctx and start the graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *env); err != nil {
		slog.Error("서버 실행 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", *env)
}

func run(ctx context.Context, env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	slog.Info("환경 변수 로드 성공",
		"db_driver", cfg.Database.Driver,
		"mask_char", cfg.Mask.MaskChar,
		"mask_max_batch", cfg.Mask.MaxBatch,
	)

	if err := validator.RegisterAll(); err != nil {
		return fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	engine := bootstrap.NewBootstrap(cfg).SetupEngine()
	router.Setup(engine, cfg, db)
	srv := bootstrap.New(cfg, engine)

	slog.Info("서버 설정 완료", "env", cfg.App.Env, "port", srv.Port())

	return serve(ctx, srv, cfg.Server.GracefulTimeout)
}

// serve runs srv until it fails or ctx is cancelled, then shuts it down
// within gracefulTimeout.
func serve(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case <-ctx.Done():
		slog.Info("종료 신호 수신됨")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
		defer cancel()

		slog.Info("서버 종료 중...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return nil
	}
}
