package router

import (
	"time"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/config"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/handler"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/middleware"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	hubRepo := repository.NewHubRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	asistenciaRepo := repository.NewAsistenciaRepository(db)
	rutaRepo := repository.NewRutaRepository(db)
	liquidacionRepo := repository.NewLiquidacionRepository(db)
	kilosRepo := repository.NewKilosLitrosRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	incidenciaRepo := repository.NewIncidenciaRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	contactoRepo := repository.NewContactoRepository(db)
	festivoRepo := repository.NewFestivoRepository(db)
	restriccionRepo := repository.NewRestriccionRepository(db)
	registroRepo := repository.NewRegistroRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs.
	// Without redis the dispatcher stays nil and notifications are skipped.
	var dispatcher service.EmailDispatcher
	if rdb != nil {
		dispatcher = worker.NewDispatcher(rdb)
	}

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg, dispatcher)
	hubSvc := service.NewHubService(hubRepo)
	asistenciaSvc := service.NewAsistenciaService(empleadoRepo, asistenciaRepo, hubRepo)
	liquidacionSvc := service.NewLiquidacionService(rutaRepo, liquidacionRepo, hubRepo)
	kilosSvc := service.NewKilosLitrosService(kilosRepo, rutaRepo)
	flotaSvc := service.NewFlotaService(vehiculoRepo, incidenciaRepo, hubRepo)
	compraSvc := service.NewCompraService(compraRepo, hubRepo)
	contactoSvc := service.NewContactoService(contactoRepo, hubRepo)
	festivoSvc := service.NewFestivoService(festivoRepo, hubRepo)
	restriccionSvc := service.NewRestriccionService(restriccionRepo, hubRepo)
	registroSvc := service.NewRegistroService(registroRepo, hubRepo, userRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	adminH := handler.NewAdminHandler(authSvc)
	hubsH := handler.NewHubsHandler(hubSvc)
	asistenciasH := handler.NewAsistenciasHandler(asistenciaSvc)
	liquidacionesH := handler.NewLiquidacionesHandler(liquidacionSvc, hubSvc)
	kilosH := handler.NewKilosLitrosHandler(kilosSvc, liquidacionSvc)
	flotaH := handler.NewFlotaHandler(flotaSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	contactosH := handler.NewContactosHandler(contactoSvc)
	festivosH := handler.NewFestivosHandler(festivoSvc)
	restriccionesH := handler.NewRestriccionesHandler(restriccionSvc)
	registrosH := handler.NewRegistrosHandler(registroSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		api.GET("/auth/me", authH.Me)

		// User management — admin only
		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/users", adminH.ListUsers)
			admin.GET("/users/pending", adminH.ListPending)
			admin.POST("/users/:id/approve", adminH.Approve)
			admin.POST("/users/:id/reject", adminH.Reject)
			admin.DELETE("/users/:id", adminH.Delete)
		}

		// Hubs — structural changes are admin only, reads for everyone
		api.GET("/hubs", hubsH.Listar)
		api.POST("/hubs", middleware.RequireAdmin(), hubsH.Crear)
		hub := api.Group("/hubs/:hubId")
		{
			hub.GET("", hubsH.Obtener)
			hub.PUT("", middleware.RequireAdmin(), hubsH.Actualizar)
			hub.DELETE("", middleware.RequireAdmin(), hubsH.Eliminar)

			hub.GET("/empleados", asistenciasH.ListarEmpleados)
			hub.POST("/empleados", asistenciasH.CrearEmpleado)
			hub.DELETE("/empleados/:empleadoId", asistenciasH.EliminarEmpleado)

			hub.GET("/asistencias", asistenciasH.Grid)
			hub.POST("/asistencias", asistenciasH.Guardar)
			hub.GET("/asistencias/resumen", asistenciasH.Resumen)
			hub.GET("/asistencias/export", asistenciasH.ExportarXLSX)

			hub.GET("/rutas", liquidacionesH.ListarRutas)
			hub.POST("/rutas", liquidacionesH.CrearRuta)
			hub.DELETE("/rutas/:rutaId", liquidacionesH.EliminarRuta)
			hub.GET("/rutas/:rutaId/liquidaciones", liquidacionesH.ListarPorRuta)

			hub.POST("/liquidaciones", liquidacionesH.Guardar)
			hub.GET("/liquidaciones/resumen", liquidacionesH.Resumen)
			hub.GET("/liquidaciones/export", liquidacionesH.ExportarPDF)

			hub.GET("/kilos-litros", kilosH.Listar)
			hub.POST("/kilos-litros", kilosH.Crear)
			hub.DELETE("/kilos-litros:id", kilosH.Eliminar)
			hub.GET("/kilos-litros/resumen", kilosH.Resumen)
			hub.GET("/kilos-litros/export", kilosH.ExportarCSV)

			hub.GET("/vehiculos", flotaH.ListarVehiculos)
			hub.POST("/vehiculos", flotaH.CrearVehiculo)
			hub.PUT("/vehiculos/:vehiculoId", flotaH.ActualizarVehiculo)
			hub.DELETE("/vehiculos/:vehiculoId", flotaH.EliminarVehiculo)

			hub.GET("/incidencias", flotaH.ListarIncidencias)
			hub.POST("/incidencias", flotaH.CrearIncidencia)
			hub.PUT("/incidencias/:incidenciaId", flotaH.ActualizarIncidencia)
			hub.DELETE("/incidencias/:incidenciaId", flotaH.EliminarIncidencia)

			hub.GET("/compras", comprasH.Listar)
			hub.POST("/compras", comprasH.Crear)
			hub.PUT("/compras/:compraId", comprasH.Actualizar)
			hub.DELETE("/compras/:compraId", comprasH.Eliminar)

			hub.GET("/contactos", contactosH.Listar)
			hub.POST("/contactos", contactosH.Crear)
			hub.PUT("/contactos/:contactoId", contactosH.Actualizar)
			hub.DELETE("/contactos/:contactoId", contactosH.Eliminar)

			hub.GET("/festivos", festivosH.Listar)
			hub.POST("/festivos", festivosH.Crear)
			hub.DELETE("/festivos/:festivoId", festivosH.Eliminar)

			hub.GET("/restricciones", restriccionesH.Listar)
			hub.POST("/restricciones", restriccionesH.Crear)
			hub.PUT("/restricciones/:restriccionId", restriccionesH.Actualizar)
			hub.DELETE("/restricciones/:restriccionId", restriccionesH.Eliminar)
		}

		api.GET("/flota/tipos", flotaH.TiposVehiculo)

		api.GET("/registros", registrosH.Listar)
		api.POST("/registros", registrosH.Crear)
		api.GET("/registros/:id", registrosH.Obtener)
		api.PUT("/registros/:id", registrosH.Actualizar)
		api.DELETE("/registros/:id", registrosH.Eliminar)
		api.POST("/registros/:id/file", registrosH.SubirArchivo)

		api.GET("/categorias", registrosH.Categorias)
		api.GET("/stats", registrosH.Stats)
	}

	return r
}
