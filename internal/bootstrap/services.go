package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/campushire/campushire-web/config"
	"github.com/campushire/campushire-web/internal/adapters/backend"
	"github.com/campushire/campushire-web/internal/adapters/token"
	"github.com/campushire/campushire-web/internal/service"
)

// ServiceContainer holds the constructed service layer.
type ServiceContainer struct {
	Sessions     *service.SessionService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Users        *service.UserService
	Notes        *service.NoteService
	Files        *service.FileService

	// Backend is the shared API client, exposed for CLI tooling.
	Backend *backend.Client
}

// ServiceDeps groups the inputs to NewServices.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// NewServices builds the backend client, token decoder, and every
// application service on top of them.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client, err := backend.NewClient(backend.Config{
		BaseURL:        deps.Config.Backend.URL,
		Timeout:        deps.Config.Backend.RequestTimeout,
		RefreshTimeout: deps.Config.Backend.RefreshTimeout,
		Logger:         logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build backend client: %w", err)
	}

	decoder := token.NewDecoder()

	return ServiceContainer{
		Sessions: service.NewSessionService(service.SessionServiceOptions{
			Decoder:   decoder,
			Refresher: client,
			Logger:    logger,
		}),
		Jobs:         service.NewJobService(backend.NewJobsClient(client)),
		Applications: service.NewApplicationService(backend.NewApplicationsClient(client)),
		Users:        service.NewUserService(backend.NewUsersClient(client)),
		Notes:        service.NewNoteService(backend.NewNotesClient(client)),
		Files:        service.NewFileService(backend.NewFilesClient(client)),
		Backend:      client,
	}, nil
}
