package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"beach-reserve/internal/handler/api"
	"beach-reserve/internal/handler/middleware"
	"beach-reserve/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Catalog     *api.CatalogHandler
	Reservation *api.ReservationHandler
	Vendor      *api.VendorHandler
	Profile     *api.ProfileHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Uploaded photos and avatars are served straight off disk.
	engine.Static("/media", cfg.Media.RootDir)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// The browse tree is public; placing a reservation is not.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/regions", Handler: h.Catalog.ListRegions},
			{Method: http.MethodGet, Path: "/regions/:id/beaches", Handler: h.Catalog.ListBeaches},
			{Method: http.MethodGet, Path: "/beaches/:id/vendors", Handler: h.Catalog.ListVendors},
			{Method: http.MethodGet, Path: "/vendors/:id", Handler: h.Catalog.GetVendor},
			{Method: http.MethodGet, Path: "/vendors/:id/items", Handler: h.Catalog.ListItems},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "/current", Handler: h.Reservation.ListCurrent},
				{Method: http.MethodGet, Path: "/history", Handler: h.Reservation.ListHistory},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.CancelReservation},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Reservation.CheckIn},
			})
		}

		vendorGroup := apiGroup.Group("/vendor")
		vendorGroup.Use(authMiddleware.RequireAuth(), authMiddleware.RequireVendorActor())
		{
			addRoutes(vendorGroup, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Vendor.ListDayReservations},
				{Method: http.MethodGet, Path: "/reservations/current", Handler: h.Vendor.ListCurrentReservations},
				{Method: http.MethodGet, Path: "/reservations/past", Handler: h.Vendor.ListPastReservations},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Vendor.Summary},
				{Method: http.MethodPost, Path: "/reservations/:id/approve", Handler: h.Vendor.ApproveReservation},
				{Method: http.MethodPost, Path: "/reservations/:id/reject", Handler: h.Vendor.RejectReservation},
				{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Vendor.CancelReservation},
				{Method: http.MethodPost, Path: "/reservations/:id/no-show", Handler: h.Vendor.MarkNoShow},
				{Method: http.MethodGet, Path: "/items", Handler: h.Vendor.ListItems},
				{Method: http.MethodPost, Path: "/items", Handler: h.Vendor.CreateItem},
				{Method: http.MethodPatch, Path: "/items/:id", Handler: h.Vendor.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Vendor.DeleteItem},
				{Method: http.MethodPost, Path: "/photo", Handler: h.Vendor.UploadPhoto},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Profile.GetProfile},
				{Method: http.MethodPatch, Path: "", Handler: h.Profile.UpdateProfile},
				{Method: http.MethodPost, Path: "/avatar", Handler: h.Profile.UploadAvatar},
				{Method: http.MethodPost, Path: "/push-tokens", Handler: h.Profile.RegisterPushToken},
				{Method: http.MethodDelete, Path: "/push-tokens", Handler: h.Profile.RemovePushToken},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
