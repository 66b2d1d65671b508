package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appaddress "github.com/mohammadpnp/contact-book/internal/application/address"
	appcontact "github.com/mohammadpnp/contact-book/internal/application/contact"
	appuser "github.com/mohammadpnp/contact-book/internal/application/user"
	"github.com/mohammadpnp/contact-book/internal/config"
	"github.com/mohammadpnp/contact-book/internal/infrastructure/repository"
	httpecho "github.com/mohammadpnp/contact-book/internal/interfaces/http/echo"
)

func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, cfg config.Config, logger *zap.Logger) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(cfg.BodyLimit))

	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	searchRepo := repository.NewContactSearchRepository(pool)

	userHandler := httpecho.NewUserHandler(
		appuser.NewRegister(userRepo, cfg.BcryptCost, logger),
		appuser.NewLogin(userRepo, logger),
		appuser.NewCurrent(logger),
		appuser.NewUpdateCurrent(userRepo, cfg.BcryptCost, logger),
		appuser.NewLogout(userRepo, logger),
	)
	contactHandler := httpecho.NewContactHandler(
		appcontact.NewCreate(contactRepo, logger),
		appcontact.NewGet(contactRepo, logger),
		appcontact.NewUpdate(contactRepo, logger),
		appcontact.NewDelete(contactRepo, logger),
		appcontact.NewSearch(searchRepo, logger),
	)
	addressHandler := httpecho.NewAddressHandler(
		appaddress.NewCreate(contactRepo, addressRepo, logger),
		appaddress.NewGet(contactRepo, addressRepo, logger),
		appaddress.NewUpdate(contactRepo, addressRepo, logger),
		appaddress.NewDelete(contactRepo, addressRepo, logger),
		appaddress.NewList(contactRepo, addressRepo, logger),
	)

	httpecho.RegisterRoutes(server, userRepo, userHandler, contactHandler, addressHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
