package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "vet-clinic-console/docs"
	mem "vet-clinic-console/internal/adapters/storage/memory"
	pg "vet-clinic-console/internal/adapters/storage/postgres"
	"vet-clinic-console/internal/domain/appointments"
	"vet-clinic-console/internal/domain/authn"
	"vet-clinic-console/internal/domain/hospitalizations"
	"vet-clinic-console/internal/domain/owners"
	"vet-clinic-console/internal/domain/patients"
	"vet-clinic-console/internal/domain/records"
	"vet-clinic-console/internal/domain/schedule"
	"vet-clinic-console/internal/domain/users"
	"vet-clinic-console/internal/middleware"
	"vet-clinic-console/internal/ports/auth"
	"vet-clinic-console/internal/ports/blob"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	Tokens       authn.TokenIssuer // puede ser nil: deshabilita /auth/*

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: destino de adjuntos del expediente. Nil devuelve 503 en upload.
	Uploader blob.Uploader

	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Logger))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		ownerRepo    owners.Repository
		patientRepo  patients.Repository
		userRepo     users.Repository
		apptRepo     appointments.Repository
		hospRepo     hospitalizations.Repository
		recordRepo   records.Repository
		settingsRepo schedule.SettingsRepository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		ownerRepo = pg.NewOwnersRepo(db)
		patientRepo = pg.NewPatientsRepo(db)
		userRepo = pg.NewUsersRepo(db)
		apptRepo = pg.NewAppointmentsRepo(db)
		hospRepo = pg.NewHospitalizationsRepo(db)
		recordRepo = pg.NewRecordsRepo(db)
		settingsRepo = pg.NewSettingsRepo(db)
	} else {
		memOwners := mem.NewOwnersRepo()
		memPatients := mem.NewPatientsRepo(memOwners)
		memUsers := mem.NewUsersRepo()

		ownerRepo = memOwners
		patientRepo = memPatients
		userRepo = memUsers
		apptRepo = mem.NewAppointmentsRepo(memPatients, memOwners, memUsers)
		hospRepo = mem.NewHospitalizationsRepo(memPatients, memUsers)
		recordRepo = mem.NewRecordsRepo(memPatients, memUsers)
		settingsRepo = mem.NewSettingsRepo()
	}

	// Services por módulo
	ownersSvc := owners.NewService(ownerRepo)
	patientsSvc := patients.NewService(patientRepo)
	usersSvc := users.NewService(userRepo)
	scheduleSvc := schedule.NewConfigService(settingsRepo)
	apptSvc := appointments.NewService(apptRepo, scheduleSvc)
	hospSvc := hospitalizations.NewService(hospRepo)
	recordsSvc := records.NewService(recordRepo)

	// Rutas públicas de autenticación
	if opts.Tokens != nil {
		authn.RegisterRoutes(r, authn.NewService(usersSvc, opts.Tokens), opts.Logger)
	}

	// Rutas por módulo, detrás de sesión
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		owners.RegisterRoutes(r, ownersSvc)
		patients.RegisterRoutes(r, patientsSvc)
		users.RegisterRoutes(r, usersSvc)
		appointments.RegisterRoutes(r, apptSvc)
		schedule.RegisterRoutes(r, scheduleSvc, apptSvc)
		hospitalizations.RegisterRoutes(r, hospSvc)
		records.RegisterRoutes(r, recordsSvc, opts.Uploader)
	})

	return r
}
