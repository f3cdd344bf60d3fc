package app

import (
	"go-leave/internal/access"
	"go-leave/internal/audit"
	"go-leave/internal/config"
	"go-leave/internal/leave"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/notification"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/userrole"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	a *App,
	cfg *config.Config,
	logger *zap.Logger,
) error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	auditRepo := audit.NewRepository(a.DB)
	userRoleRepo := userrole.NewRepository(a.DB)
	leaveTypeRepo := leavetype.NewRepository(a.DB)
	leaveRepo := leave.NewRepository(a.DB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	auditService := audit.NewService(auditRepo, logger)
	a.Audit = auditService

	userRoleService := userrole.NewService(userRoleRepo, auditService, logger)
	leaveTypeService := leavetype.NewService(leaveTypeRepo, auditService, a.Redis, logger)
	resolver := access.NewResolver(userRoleRepo, leaveTypeService, rbacService, auditService, logger)
	notifier := newNotifier(cfg, outboxRepo, logger)
	leaveService := leave.NewService(leaveRepo, resolver, auditService, notifier, cfg.Leave.Location, nil, logger)

	// --- Handlers ---
	accessHandler := access.NewHandler(resolver, logger)
	auditHandler := audit.NewHandler(auditService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	userRoleHandler := userrole.NewHandler(userRoleService, logger)

	// --- Middleware ---
	authn := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.Auth.JWTSecret), middleware.ExtractIdentity()}
	router.Use(middleware.RequestID(), middleware.ContextLogger(logger), middleware.RateLimitByIP(20, 40))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		access.RegisterRoutes(api, accessHandler, authn...)
		leave.RegisterRoutes(api, leaveHandler, a.Redis, authn...)
		userrole.RegisterRoutes(api, userRoleHandler, resolver, authn...)
		leavetype.RegisterRoutes(api, leaveTypeHandler, resolver, authn...)
		audit.RegisterRoutes(api, auditHandler, resolver, authn...)
		rbac.RegisterRoutes(api, rbacHandler, resolver, authn...)
	}

	return nil
}

// newNotifier routes mail through the outbox when a broker is configured,
// otherwise it only logs what would have been sent.
func newNotifier(cfg *config.Config, outbox kafka.OutboxRepository, logger *zap.Logger) notification.Notifier {
	if cfg.Kafka.Broker == "" {
		logger.Named("app").Warn("KAFKA_BROKER not set, notifications are logged only")
		return notification.NewLogNotifier(logger)
	}
	return notification.NewOutboxNotifier(outbox, logger)
}
