package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GustavoLarcoDev/gimnasio/internal/audit"
	"github.com/GustavoLarcoDev/gimnasio/internal/config"
	"github.com/GustavoLarcoDev/gimnasio/internal/export"
	"github.com/GustavoLarcoDev/gimnasio/internal/handlers"
	infraRepo "github.com/GustavoLarcoDev/gimnasio/internal/infra/repository"
	"github.com/GustavoLarcoDev/gimnasio/internal/middleware"
	"github.com/GustavoLarcoDev/gimnasio/internal/session"
	ucAuth "github.com/GustavoLarcoDev/gimnasio/internal/usecase/auth"
	ucCliente "github.com/GustavoLarcoDev/gimnasio/internal/usecase/cliente"
	ucGimnasio "github.com/GustavoLarcoDev/gimnasio/internal/usecase/gimnasio"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewGimnasioGormRepository(db)

	sessions := session.NewManager(cfg.JWTSecret, session.NewRedisStore(rdb))

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createGimnasioUC := ucGimnasio.NewCreate(repo, auditDispatcher)
	editGimnasioUC := ucGimnasio.NewEdit(repo, auditDispatcher)
	deleteGimnasioUC := ucGimnasio.NewDelete(repo, auditDispatcher)
	toggleGimnasioUC := ucGimnasio.NewToggleStatus(repo, auditDispatcher)

	createClienteUC := ucCliente.NewCreate(repo, auditDispatcher)

	loginUC := ucAuth.NewLogin(repo, sessions, auditDispatcher)

	exporter := export.NewExcelExporter(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	gimnasioHandler := handlers.NewGimnasioHandler(
		repo,
		createGimnasioUC,
		editGimnasioUC,
		deleteGimnasioUC,
		toggleGimnasioUC,
		log,
	)
	authHandler := handlers.NewAuthHandler(loginUC, sessions, cfg, log)
	dashboardHandler := handlers.NewDashboardHandler(repo, log)
	clienteHandler := handlers.NewClienteHandler(createClienteUC, log)
	exportHandler := handlers.NewExportHandler(exporter, log)

	// ======================================================
	// RUTAS
	// ======================================================
	gimnasios := r.Group("/Gimnasios")
	{
		gimnasios.GET("", gimnasioHandler.Index)
		gimnasios.GET("/GetGimnasios", gimnasioHandler.GetGimnasios)
		gimnasios.GET("/GetGimnasio/:id", gimnasioHandler.GetGimnasio)

		gimnasios.GET("/Crear", gimnasioHandler.Crear)
		gimnasios.POST("/Create", gimnasioHandler.Create)
		gimnasios.POST("/Editar", gimnasioHandler.Editar)
		gimnasios.POST("/Eliminar", gimnasioHandler.Eliminar)
		gimnasios.POST("/CambiarEstado", gimnasioHandler.CambiarEstado)

		gimnasios.GET("/Login", authHandler.LoginPage)
		gimnasios.POST("/Login", authHandler.Login)
		gimnasios.GET("/Logout", authHandler.Logout)

		gimnasios.GET("/ExportExcel", exportHandler.ExportExcel)

		// ------------------------------
		// RUTAS CON SESIÓN
		// ------------------------------
		secured := gimnasios.Group("/")
		secured.Use(middleware.AuthMiddleware(sessions))
		{
			secured.GET("/:id/Dashboard", dashboardHandler.Dashboard)
			secured.POST("/CreateClient", clienteHandler.CreateClient)
		}
	}
}
