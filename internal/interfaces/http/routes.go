package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint. The client-facing surface (ticket
// submission, tracking, photo upload) carries no auth; everything else sits
// behind the bearer token, with the back office additionally restricted to
// dispatcher accounts.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if strings.HasPrefix(r.cfg.Upload.PublicBaseURL, "/") {
		r.engine.Static(r.cfg.Upload.PublicBaseURL, r.cfg.Upload.Dir)
	}

	// Public client surface. Uploads stay open because the intake form needs
	// them before any login exists; batch and size limits bound abuse.
	r.engine.POST("/tickets", r.ticketHandler.SubmitTicket)
	r.engine.GET("/track", r.ticketHandler.TrackTickets)
	r.engine.POST("/uploads", r.uploadHandler.UploadPhotos)

	r.engine.POST("/auth/login", r.authHandler.Login)

	// The websocket dial authenticates via query parameter inside the handler.
	r.engine.GET("/ws/feed", r.wsHandler.Feed)

	requireAuth := r.authMiddleware.RequireAuth()
	requireDispatcher := r.authMiddleware.RequireDispatcher()

	// Orders are shared between dispatchers and field technicians.
	orders := r.engine.Group("/orders")
	orders.Use(requireAuth)
	{
		orders.POST("", requireDispatcher, r.orderHandler.CreateOrder)
		orders.GET("", r.orderHandler.ListOrders)

		orders.PATCH("/:id/status", r.orderHandler.TransitionOrder)
		orders.POST("/:id/decline-quote", requireDispatcher, r.orderHandler.DeclineQuote)
		orders.GET("/:id/report", r.orderHandler.RenderReport)

		orders.GET("/:id", r.orderHandler.GetOrder)
		orders.PUT("/:id", r.orderHandler.SaveOrder)
		orders.DELETE("/:id", requireDispatcher, r.orderHandler.DeleteOrder)
	}

	tickets := r.engine.Group("/tickets")
	tickets.Use(requireAuth, requireDispatcher)
	{
		tickets.GET("", r.ticketHandler.ListTickets)

		tickets.POST("/:id/accept", r.ticketHandler.AcceptTicket)
		tickets.POST("/:id/reject", r.ticketHandler.RejectTicket)
		tickets.PATCH("/:id/status", r.ticketHandler.ChangeTicketStatus)

		tickets.GET("/:id", r.ticketHandler.GetTicket)
	}

	technicians := r.engine.Group("/technicians")
	technicians.Use(requireAuth, requireDispatcher)
	{
		technicians.POST("", r.technicianHandler.CreateTechnician)
		technicians.GET("", r.technicianHandler.ListTechnicians)
		technicians.PUT("/:id", r.technicianHandler.UpdateTechnician)
		technicians.DELETE("/:id", r.technicianHandler.DeleteTechnician)
	}

	expenses := r.engine.Group("/expenses")
	expenses.Use(requireAuth, requireDispatcher)
	{
		expenses.POST("", r.expenseHandler.CreateExpense)
		expenses.GET("", r.expenseHandler.ListExpenses)
		expenses.DELETE("/:id", r.expenseHandler.DeleteExpense)
	}

	reports := r.engine.Group("/reports")
	reports.Use(requireAuth, requireDispatcher)
	{
		reports.GET("/summary", r.reportHandler.Summary)
	}

	mapGroup := r.engine.Group("/map")
	mapGroup.Use(requireAuth, requireDispatcher)
	{
		mapGroup.GET("/markers", r.dispatchHandler.MapMarkers)
		mapGroup.GET("/route", r.dispatchHandler.RouteOrder)
	}

	alerts := r.engine.Group("/alerts")
	alerts.Use(requireAuth, requireDispatcher)
	{
		alerts.GET("/badge", r.alertHandler.Badge)
		alerts.POST("/read", r.alertHandler.MarkRead)
	}
}
