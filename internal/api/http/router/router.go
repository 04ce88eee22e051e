package router

import (
	"log/slog"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nrednav/cuid2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dtroode/yokai-server/internal/api/http/handler"
	"github.com/dtroode/yokai-server/internal/api/http/middleware"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

const (
	metricsSubsystem = "yokai"
	defaultBodyLimit = "30M"
)

// TokenService is used both by the session endpoints and by the
// authenticate middleware.
type TokenService interface {
	handler.TokenService
	middleware.TokenResolver
}

// Services are the dependencies of the HTTP handlers.
type Services struct {
	Identity handler.IdentityService
	Token    TokenService
	Chat     handler.ChatService
	Message  handler.MessageService
	File     handler.FileService
	Profile  handler.ProfileService
	Account  handler.AccountService
	Host     handler.HostService
	Feed     handler.MessageFeed
}

// Options tune the echo instance.
type Options struct {
	BodyLimit    string
	AllowOrigins []string
	LogLevel     int
}

// Router builds the HTTP API and the metrics endpoint that observes it.
type Router struct {
	services       Services
	options        Options
	contextManager model.ContextManager
	registry       *prometheus.Registry
	logger         *logger.Logger
}

// New creates a new HTTP Router instance. Every router has its own prometheus
// registry.
func New(services Services, options Options, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		options:        options,
		contextManager: contextManager,
		registry:       prometheus.NewRegistry(),
		logger:         logger,
	}
}

// Register builds the API echo instance with middleware and routes.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(r.options.LogLevel))
	e.HTTPErrorHandler = handler.ErrorHandler(r.logger)

	logging := middleware.NewLogging(r.logger)

	bodyLimit := r.options.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string {
			return cuid2.Generate()
		},
	}))
	e.Use(logging.Handle)
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(bodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: r.options.AllowOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: r.registry,
	}))

	r.registerRoutes(e)

	return e
}

// Metrics builds the echo instance serving /metrics for the API's registry.
func (r *Router) Metrics() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: r.registry,
	}))
	return e
}

func (r *Router) registerRoutes(e *echo.Echo) {
	s := r.services
	cm := r.contextManager

	auth := handler.NewAuth(s.Identity, s.Token, cm, r.logger)
	chat := handler.NewChat(s.Chat, s.Message, cm, r.logger)
	message := handler.NewMessage(s.Message, cm, r.logger)
	file := handler.NewFile(s.File, cm, r.logger)
	user := handler.NewUser(s.Profile, s.Account, cm, r.logger)
	host := handler.NewHost(s.Host, cm, r.logger)
	admin := handler.NewAdmin(s.Account, cm, r.logger)
	ws := handler.NewWS(s.Feed, cm, r.logger)

	e.POST("/user/create", auth.Register)
	e.POST("/login", auth.Login)
	e.GET("/host", host.Get)
	e.GET("/user/:username/key", user.PublicKey)
	e.GET("/user/:username/profile", user.Profile)

	authenticate := middleware.NewAuthenticate(s.Token, cm, r.logger)
	authed := authenticate.Handle

	e.POST("/logout", auth.Logout, authed)
	e.POST("/user/tokens", auth.Tokens, authed)
	e.POST("/invite/create", admin.CreateInvite, authed)
	e.POST("/user/kick", admin.Kick, authed)

	e.POST("/user/edit/password", user.EditPassword, authed)
	e.POST("/user/edit/name", user.EditName, authed)
	e.POST("/user/edit/bio", user.EditBio, authed)
	e.POST("/user/edit/primary", user.EditPrimaryColor, authed)
	e.POST("/user/edit/secondary", user.EditSecondaryColor, authed)
	e.POST("/user/edit/tertiary", user.EditTertiaryColor, authed)
	e.POST("/user/edit/pfp", user.EditPicture, authed)
	e.POST("/user/delete", user.Delete, authed)
	e.POST("/user/contacts", chat.Contacts, authed)

	e.POST("/host/edit/primary", host.EditPrimaryColor, authed)
	e.POST("/host/edit/secondary", host.EditSecondaryColor, authed)
	e.POST("/host/edit/tertiary", host.EditTertiaryColor, authed)

	e.POST("/chat/create", chat.Create, authed)
	e.POST("/chat/list", chat.List, authed)
	e.POST("/chat/delete", chat.Delete, authed)
	e.POST("/chat/messages", chat.Messages, authed)

	e.POST("/message/send", message.Send, authed)
	e.POST("/message/decrypt", message.Decrypt, authed)

	e.POST("/files/upload", file.Upload, authed)
	e.POST("/file/serve", file.Serve, authed)
	e.POST("/files/list", file.List, authed)
	e.POST("/files/delete", file.Delete, authed)

	e.GET("/ws", ws.Serve, authed)
}

// echoLogLevel maps an slog level onto echo's own logger.
func echoLogLevel(level int) log.Lvl {
	switch {
	case level <= int(slog.LevelDebug):
		return log.DEBUG
	case level <= int(slog.LevelInfo):
		return log.INFO
	case level <= int(slog.LevelWarn):
		return log.WARN
	default:
		return log.ERROR
	}
}
