package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"np-reserve/internal/handler/api"
	"np-reserve/internal/handler/middleware"
	"np-reserve/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Boutique    *api.BoutiqueHandler
	Produit     *api.ProduitHandler
	Reservation *api.ReservationHandler
	Kiosk       *api.KioskHandler
	Gerant      *api.GerantHandler
	Upload      *api.UploadHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
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
	engine.Static("/uploads", cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		boutiques := apiGroup.Group("/boutiques")
		{
			addRoutes(boutiques, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Boutique.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Boutique.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Boutique.Create, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Boutique.Update, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Boutique.Delete, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}

		produits := apiGroup.Group("/produits")
		{
			addRoutes(produits, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Produit.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Produit.Get},
				{Method: http.MethodPost, Path: "/:id/reservations", Handler: h.Produit.Reserve},
				{Method: http.MethodPost, Path: "", Handler: h.Produit.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Produit.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Produit.Delete, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/walk-in", Handler: h.Reservation.CreateWalkIn, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/groups", Handler: h.Reservation.Groups, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/validate", Handler: h.Reservation.Validate},
				{Method: http.MethodPost, Path: "/:id/refuse", Handler: h.Reservation.Refuse},
				{Method: http.MethodPost, Path: "/:id/deliver", Handler: h.Reservation.Deliver},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/shipments", Handler: h.Reservation.SendShipment, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			{Method: http.MethodGet, Path: "/kiosk/:boutiqueId/slide", Handler: h.Kiosk.Slide},
			{Method: http.MethodPost, Path: "/blob", Handler: h.Upload.Upload, Mw: []gin.HandlerFunc{requireAuth}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/gerants", Handler: h.Gerant.List},
				{Method: http.MethodPost, Path: "/gerants", Handler: h.Gerant.Provision},
				{Method: http.MethodDelete, Path: "/gerants/:id", Handler: h.Gerant.Revoke},
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
