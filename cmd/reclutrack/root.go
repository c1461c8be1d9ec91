package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/recluta-track/internal/application/auth"
	"github.com/jhoicas/recluta-track/internal/application/usecase"
	"github.com/jhoicas/recluta-track/internal/domain/entity"
	"github.com/jhoicas/recluta-track/internal/infrastructure/localstore"
	"github.com/jhoicas/recluta-track/internal/interfaces/guard"
	"github.com/jhoicas/recluta-track/pkg/config"
	"github.com/jhoicas/recluta-track/pkg/logger"
)

// app agrupa el estado de la aplicación: store, casos de uso y sesión.
// Se construye al inicio de cada invocación y se destruye al final; no
// hay singletons ambientales.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	store *localstore.Store

	sessions    *auth.SessionManager
	bootstrap   *usecase.BootstrapUseCase
	candidates  *usecase.CandidateUseCase
	users       *usecase.UserUseCase
	companies   *usecase.CompanyUseCase
	assignments *usecase.AssignmentUseCase
	dashboard   *usecase.DashboardUseCase
}

// newApp carga configuración, abre el store, siembra las colecciones en
// la primera ejecución y restaura la sesión persistida.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("abrir store local: %w", err)
	}

	userRepo := localstore.NewUserRepository(store)
	companyRepo := localstore.NewCompanyRepository(store)
	candidateRepo := localstore.NewCandidateRepository(store)
	assignmentRepo := localstore.NewAssignmentRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)

	a := &app{
		cfg:   cfg,
		log:   log,
		store: store,
		sessions: auth.NewSessionManager(userRepo, sessionRepo, auth.Config{
			Secret:     cfg.Session.Secret,
			ExpMinutes: cfg.Session.ExpMinutes,
			Issuer:     cfg.Session.Issuer,
		}),
		bootstrap:   usecase.NewBootstrapUseCase(userRepo, companyRepo, candidateRepo, assignmentRepo, cfg.Session.BcryptCost),
		candidates:  usecase.NewCandidateUseCase(candidateRepo, userRepo),
		users:       usecase.NewUserUseCase(userRepo, cfg.Session.BcryptCost),
		companies:   usecase.NewCompanyUseCase(companyRepo),
		assignments: usecase.NewAssignmentUseCase(assignmentRepo, companyRepo, userRepo),
		dashboard:   usecase.NewDashboardUseCase(candidateRepo, companyRepo, userRepo, assignmentRepo),
	}

	if err := a.bootstrap.Initialize(); err != nil {
		store.Close()
		return nil, err
	}
	if err := a.sessions.Restore(); err != nil {
		store.Close()
		return nil, fmt.Errorf("restaurar sesión: %w", err)
	}
	return a, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Error().Err(err).Msg("cerrar store")
	}
}

// require aplica el guard de rutas antes de un comando protegido. Una
// lista vacía de roles solo exige sesión activa.
func (a *app) require(roles ...entity.Role) error {
	d := guard.Evaluate(a.sessions.Restored(), a.sessions.Current(), roles...)
	switch d {
	case guard.Allow:
		return nil
	case guard.RedirectLogin:
		return fmt.Errorf("no has iniciado sesión (ir a %s): usa `reclutrack login`", d.RedirectPath())
	case guard.RedirectForbidden:
		return fmt.Errorf("tu rol %q no tiene acceso a esta sección (ir a %s)", a.sessions.Current().Role, d.RedirectPath())
	default:
		return fmt.Errorf("sesión en restauración, intenta de nuevo")
	}
}

// Execute arma el árbol de comandos y lo ejecuta.
func Execute() error {
	var a *app

	rootCmd := &cobra.Command{
		Use:           "reclutrack",
		Short:         "Tracker local de reclutamiento con tableros por rol",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				a.close()
			}
		},
	}

	rootCmd.AddCommand(
		newLoginCmd(&a),
		newLogoutCmd(&a),
		newWhoamiCmd(&a),
		newPanelCmd(&a),
		newCandidatosCmd(&a),
		newUsuariosCmd(&a),
		newEmpresasCmd(&a),
		newAsignacionesCmd(&a),
		newExportarCmd(&a),
	)

	return rootCmd.Execute()
}
