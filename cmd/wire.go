package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	apiadapter "github.com/gwagwa/travelgo-cli/internal/adapters/api"
	packagesrender "github.com/gwagwa/travelgo-cli/internal/adapters/render/packages"
	tomlstore "github.com/gwagwa/travelgo-cli/internal/adapters/store/toml"
	"github.com/gwagwa/travelgo-cli/internal/application"
	"github.com/gwagwa/travelgo-cli/internal/domain"
	"github.com/gwagwa/travelgo-cli/internal/ports"
)

const (
	defaultBaseURL = "https://travelgo-api-hyjz.onrender.com/api"
	requestTimeout = 30 * time.Second
)

type app struct {
	store           ports.CredentialStore
	auth            *application.AuthService
	profile         *application.ProfileService
	packages        *application.PackageService
	packageList     *application.PackageList
	userList        *application.UserList
	packageRenderer func([]domain.TravelPackage, packagesrender.RenderOptions) (string, error)
	logger          *zap.Logger
	now             func() time.Time
}

func wireApp() (*app, error) {
	logger := newLogger()

	store, err := tomlstore.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	// Bearer injection runs first so the logging layer sees the request as
	// transmitted, matching the original interceptor ordering.
	httpClient := &http.Client{
		Timeout: requestTimeout,
		Transport: &apiadapter.LoggingTransport{
			Logger: logger,
			Base:   &apiadapter.BearerTransport{Store: store},
		},
	}

	client := apiadapter.NewClient(envOrDefault("TG_API_BASE_URL", defaultBaseURL), httpClient)

	return &app{
		store:           store,
		auth:            application.NewAuthService(client, store),
		profile:         application.NewProfileService(client, store),
		packages:        application.NewPackageService(client),
		packageList:     application.NewPackageList(client),
		userList:        application.NewUserList(client),
		packageRenderer: packagesrender.Render,
		logger:          logger,
		now:             time.Now,
	}, nil
}

func (a *app) close() {
	a.auth.Close()
	_ = a.logger.Sync()
}

func newLogger() *zap.Logger {
	if os.Getenv("TG_DEBUG") == "" {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
