package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vet-clinic-console/internal/adapters/auth/token"
	"vet-clinic-console/internal/adapters/blobstore"
	pg "vet-clinic-console/internal/adapters/storage/postgres"
	"vet-clinic-console/internal/config"
	"vet-clinic-console/internal/platform/logger"
	"vet-clinic-console/internal/ports/blob"
	"vet-clinic-console/internal/router"
)

// @title Vet Clinic Console API
// @version 1.0
// @description API administrativa de la clínica veterinaria: pacientes, propietarios, personal, agenda, internaciones y expedientes.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "vet-clinic-console",
		Short: "API administrativa de la clínica veterinaria",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea el esquema y aplica migraciones aditivas",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewFromEnv()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.RequireDatabase(); err != nil {
				return err
			}

			db, err := pg.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info().Msg("migración completada")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga el fixture JSON de datos de prueba",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewFromEnv()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.RequireDatabase(); err != nil {
				return err
			}

			file, _ := cmd.Flags().GetString("file")
			if file == "" {
				file = cfg.SeedFile
			}

			db, err := pg.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.Seed(cmd.Context(), db, file, log); err != nil {
				return err
			}
			log.Info().Str("file", file).Msg("carga de datos completada")
			return nil
		},
	}
	cmd.Flags().String("file", "", "Ruta al fixture JSON (default: SEED_FILE)")
	return cmd
}

func runServer() error {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cargando configuración")
	}

	opts := router.Options{Logger: log}

	// Sin AUTH_SECRET queda en modo dev: headers X-Debug-* y /auth/* apagado.
	if cfg.AuthSecret != "" {
		mgr := token.NewManager(token.Options{
			Secret:   cfg.AuthSecret,
			TokenTTL: time.Duration(cfg.TokenTTLMin) * time.Minute,
			ResetTTL: time.Duration(cfg.ResetTTLMin) * time.Minute,
		})
		opts.AuthVerifier = mgr
		opts.Tokens = mgr
	} else if !cfg.IsDev() {
		log.Fatal().Msg("AUTH_SECRET es obligatorio fuera de development")
	} else {
		log.Warn().Msg("sin AUTH_SECRET: autenticación en modo dev")
	}

	if cfg.DatabaseURL != "" {
		db, err := pg.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conectando a la base de datos")
		}
		defer db.Close()
		opts.DB = db
		log.Info().Msg("conectado a la base de datos")
	} else {
		log.Warn().Msg("sin DATABASE_URL: repos in-memory")
	}

	var uploader blob.Uploader
	if cfg.StorageBucket != "" {
		s3Store, err := blobstore.NewS3Store(context.Background(), cfg.StorageBucket, cfg.StorageRegion)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializando almacenamiento de adjuntos")
		}
		uploader = s3Store
	} else if cfg.IsDev() {
		uploader = blobstore.NewMemoryStore()
		log.Warn().Msg("sin STORAGE_BUCKET: adjuntos en memoria")
	}
	opts.Uploader = uploader

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("apagando servidor")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
