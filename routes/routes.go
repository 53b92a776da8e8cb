package routes

import (
	"log/slog"

	"food-order-api/handlers"
	"food-order-api/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the ambient middleware and the session
// pipeline installed ahead of every route.
func NewRouter(h *handlers.Handler, session *middleware.Session, log *slog.Logger, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		gin.Recovery(),
		middleware.CORS(corsOrigins),
		session.AttachUser(),
	)
	SetupRoutes(r, h, session)
	return r
}

// SetupRoutes registers the route table. session.AttachUser must already
// be installed on r.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, session *middleware.Session) {
	// ── Public ─────────────────────────────────────────────────────
	r.GET("/", h.Index)
	r.GET("/health", h.Health)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/get-menu", h.GetMenu)

	// ── Signed-in users ────────────────────────────────────────────
	user := r.Group("/", session.Authenticated()...)
	{
		user.GET("/me", h.Me)
		user.POST("/make-order", h.MakeOrder)
		user.GET("/get-orders", h.GetOrders)
		user.PATCH("/edit-order", h.EditOrder)
		user.DELETE("/delete-order", h.DeleteOrder)
	}

	// ── Admin ──────────────────────────────────────────────────────
	admin := r.Group("/", session.AdminOnly()...)
	{
		admin.POST("/create-menu", h.CreateMenu)
		admin.PATCH("/edit-menu", h.EditMenu)
		admin.DELETE("/delete-menu", h.DeleteMenu)
		admin.GET("/get-all-orders", h.GetAllOrders)
		admin.GET("/export", h.ExportOrders)
	}
}
