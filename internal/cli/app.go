package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/azim218/RentMyWaifu/internal/config"
	"github.com/azim218/RentMyWaifu/internal/filex"
	"github.com/azim218/RentMyWaifu/internal/logging"
	"github.com/azim218/RentMyWaifu/internal/models"
	"github.com/azim218/RentMyWaifu/internal/repositories/accounts"
	"github.com/azim218/RentMyWaifu/internal/repositories/support"
	"github.com/azim218/RentMyWaifu/internal/repositories/users"
	"github.com/azim218/RentMyWaifu/internal/services"
	"github.com/azim218/RentMyWaifu/internal/store"
)

type App struct {
	config  *config.Config
	auth    *services.AuthService
	catalog *services.CatalogService
	support *services.SupportService
	admin   *services.AdminService
	session *models.Session
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	st := store.New(dir)

	usersRepo, err := users.NewJSONRepository(st)
	if err != nil {
		return nil, err
	}
	accountsRepo, err := accounts.NewJSONRepository(st)
	if err != nil {
		return nil, err
	}
	supportRepo := support.NewJSONRepository(st)

	log.Info(ctx, "store ready", "dir", dir)

	return &App{
		config:  cfg,
		auth:    services.NewAuthService(usersRepo, cfg, log),
		catalog: services.NewCatalogService(accountsRepo),
		support: services.NewSupportService(supportRepo),
		admin:   services.NewAdminService(usersRepo, accountsRepo, supportRepo),
		session: models.Anonymous(),
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) isAdmin() bool {
	return a.session != nil && a.session.IsAdmin
}
