package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "fieldops/internal/application/auth/usecases"
	dispatchUsecases "fieldops/internal/application/dispatch/usecases"
	expenseUsecases "fieldops/internal/application/expense/usecases"
	orderUsecases "fieldops/internal/application/order/usecases"
	reportUsecases "fieldops/internal/application/reports/usecases"
	technicianUsecases "fieldops/internal/application/technician/usecases"
	ticketUsecases "fieldops/internal/application/ticket/usecases"
	"fieldops/internal/domain/order"
	"fieldops/internal/domain/ticket"
	"fieldops/internal/infrastructure/auth"
	"fieldops/internal/infrastructure/blobstore"
	"fieldops/internal/infrastructure/config"
	"fieldops/internal/infrastructure/email"
	"fieldops/internal/infrastructure/geo"
	"fieldops/internal/infrastructure/messaging"
	"fieldops/internal/infrastructure/pubsub"
	"fieldops/internal/infrastructure/realtime"
	"fieldops/internal/infrastructure/report"
	"fieldops/internal/infrastructure/repository"
	"fieldops/internal/interfaces/http/handlers"
	"fieldops/internal/interfaces/http/middleware"
	shareddb "fieldops/internal/shared/db"
	"fieldops/internal/shared/goroutine"
	"fieldops/internal/shared/logger"
)

// Table names the realtime layer watches. They match the GORM models.
const (
	ticketTable = "client_tickets"
	orderTable  = "service_orders"
)

// Router wires repositories, use cases, handlers and the realtime plumbing
// into one HTTP surface.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	authMiddleware *middleware.AuthMiddleware

	authHandler       *handlers.AuthHandler
	ticketHandler     *handlers.TicketHandler
	orderHandler      *handlers.OrderHandler
	technicianHandler *handlers.TechnicianHandler
	expenseHandler    *handlers.ExpenseHandler
	reportHandler     *handlers.ReportHandler
	dispatchHandler   *handlers.DispatchHandler
	uploadHandler     *handlers.UploadHandler
	alertHandler      *handlers.AlertHandler
	wsHandler         *handlers.WSHandler

	feed        *realtime.Feed
	hub         *handlers.WSHub
	alerter     *realtime.TicketAlerter
	ticketCache *realtime.TableCache[*ticket.Ticket]
	orderCache  *realtime.TableCache[*order.ServiceOrder]
	relaySub    *realtime.Subscription
	cancel      context.CancelFunc
}

// NewRouter builds the full dependency graph. The redis change feed starts
// streaming immediately so the caches are warm before the first request.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	changeFeed := pubsub.NewRedisChangeFeed(redisClient, log.Named("changefeed"))

	userRepo := repository.NewAppUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db, changeFeed, log)
	orderRepo := repository.NewOrderRepository(db, changeFeed, log)
	techRepo := repository.NewTechnicianRepository(db, changeFeed, log)
	expenseRepo := repository.NewExpenseRepository(db, changeFeed, log)

	ctx, cancel := context.WithCancel(context.Background())

	feed := realtime.NewFeed()
	goroutine.SafeGo(log, "changefeed-subscriber", func() {
		err := changeFeed.Subscribe(ctx, func(_ context.Context, event pubsub.ChangeEvent) {
			feed.Dispatch(event)
		})
		if err != nil && ctx.Err() == nil {
			log.Error("change feed subscription ended", "error", err)
		}
	})

	ticketCache, err := realtime.NewTableCache(ctx, ticketTable, feed, func(ctx context.Context) ([]*ticket.Ticket, error) {
		return ticketRepo.List(ctx, ticket.TicketFilter{})
	}, log)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start ticket cache: %w", err)
	}

	orderCache, err := realtime.NewTableCache(ctx, orderTable, feed, func(ctx context.Context) ([]*order.ServiceOrder, error) {
		return orderRepo.List(ctx, order.OrderFilter{})
	}, log)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start order cache: %w", err)
	}

	alerter := realtime.NewTicketAlerter()
	alerter.Update(ticketCache.Snapshot(), orderCache.Snapshot())

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	txManager := shareddb.NewTransactionManager(db)
	linker := messaging.NewWhatsAppLinker(cfg.Messaging.CountryCode, cfg.Messaging.BusinessTag)

	store, err := blobstore.NewFilesystemStore(cfg.Upload.Dir, cfg.Upload.PublicBaseURL, log)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize upload store: %w", err)
	}

	renderer, err := report.NewRenderer(store, log)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize report renderer: %w", err)
	}

	mailer := email.NewSMTPMailer(&cfg.Email, log)
	geocoder := geo.NewNominatimGeocoder(cfg.Geo.GeocodeURL, cfg.Geo.UserAgent, log)
	osrmRouter := geo.NewOSRMRouter(cfg.Geo.RouteURL, log)
	resolver := dispatchUsecases.NewResolver(geocoder)
	depot := geo.Coordinates{Latitude: cfg.Geo.OriginLat, Longitude: cfg.Geo.OriginLon}
	countryCode := cfg.Messaging.CountryCode

	loginUC := authUsecases.NewLoginUseCase(userRepo, techRepo, hasher, jwtSvc, log)

	submitTicketUC := ticketUsecases.NewSubmitTicketUseCase(ticketRepo, countryCode, log)
	acceptTicketUC := ticketUsecases.NewAcceptTicketUseCase(ticketRepo, orderRepo, txManager, linker, log)
	rejectTicketUC := ticketUsecases.NewRejectTicketUseCase(ticketRepo, linker, log)
	changeTicketStatusUC := ticketUsecases.NewChangeTicketStatusUseCase(ticketRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, log)
	trackTicketsUC := ticketUsecases.NewTrackTicketsUseCase(ticketRepo, orderRepo, countryCode, log)

	createOrderUC := orderUsecases.NewCreateOrderUseCase(orderRepo, countryCode, log)
	saveOrderUC := orderUsecases.NewSaveOrderUseCase(orderRepo, log)
	transitionOrderUC := orderUsecases.NewTransitionOrderUseCase(orderRepo, renderer, mailer, log)
	declineQuoteUC := orderUsecases.NewDeclineQuoteUseCase(orderRepo, renderer, mailer, log)
	listOrdersUC := orderUsecases.NewListOrdersUseCase(orderRepo, log)
	getOrderUC := orderUsecases.NewGetOrderUseCase(orderRepo, log)
	deleteOrderUC := orderUsecases.NewDeleteOrderUseCase(orderRepo, log)
	renderReportUC := orderUsecases.NewRenderReportUseCase(orderRepo, renderer, log)

	createTechnicianUC := technicianUsecases.NewCreateTechnicianUseCase(techRepo, hasher, countryCode, log)
	updateTechnicianUC := technicianUsecases.NewUpdateTechnicianUseCase(techRepo, hasher, countryCode, log)
	listTechniciansUC := technicianUsecases.NewListTechniciansUseCase(techRepo, log)
	deleteTechnicianUC := technicianUsecases.NewDeleteTechnicianUseCase(techRepo, log)

	createExpenseUC := expenseUsecases.NewCreateExpenseUseCase(expenseRepo, log)
	deleteExpenseUC := expenseUsecases.NewDeleteExpenseUseCase(expenseRepo, log)
	listExpensesUC := expenseUsecases.NewListExpensesUseCase(expenseRepo, log)

	summaryUC := reportUsecases.NewSummaryUseCase(orderRepo, expenseRepo, log)
	mapMarkersUC := dispatchUsecases.NewMapMarkersUseCase(orderRepo, resolver, log)
	routeOrderUC := dispatchUsecases.NewRouteOrderUseCase(orderRepo, resolver, osrmRouter, depot, log)

	hub := handlers.NewWSHub(log.Named("wshub"))

	r := &Router{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,

		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),

		authHandler: handlers.NewAuthHandler(loginUC, log),
		ticketHandler: handlers.NewTicketHandler(
			submitTicketUC, acceptTicketUC, rejectTicketUC, changeTicketStatusUC,
			listTicketsUC, getTicketUC, trackTicketsUC, log),
		orderHandler: handlers.NewOrderHandler(
			createOrderUC, saveOrderUC, transitionOrderUC, declineQuoteUC,
			listOrdersUC, getOrderUC, deleteOrderUC, renderReportUC, log),
		technicianHandler: handlers.NewTechnicianHandler(
			createTechnicianUC, updateTechnicianUC, listTechniciansUC, deleteTechnicianUC, log),
		expenseHandler:  handlers.NewExpenseHandler(createExpenseUC, deleteExpenseUC, listExpensesUC, log),
		reportHandler:   handlers.NewReportHandler(summaryUC, log),
		dispatchHandler: handlers.NewDispatchHandler(mapMarkersUC, routeOrderUC, log),
		uploadHandler:   handlers.NewUploadHandler(store, log),
		alertHandler:    handlers.NewAlertHandler(alerter, log),
		wsHandler:       handlers.NewWSHandler(hub, jwtSvc, log),

		feed:        feed,
		hub:         hub,
		alerter:     alerter,
		ticketCache: ticketCache,
		orderCache:  orderCache,
		cancel:      cancel,
	}

	r.engine.Use(
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	r.relaySub = feed.SubscribeAll()
	goroutine.SafeGo(log, "ws-relay", r.relay)

	return r, nil
}

// relay forwards change events to the websocket clients and keeps the
// attention badge current. The cache refresh runs concurrently, so the badge
// may trail by one event; the refresh that follows converges it.
func (r *Router) relay() {
	for event := range r.relaySub.C {
		r.hub.Broadcast("change", event)

		if event.Table != ticketTable && event.Table != orderTable {
			continue
		}

		fresh := r.alerter.Update(r.ticketCache.Snapshot(), r.orderCache.Snapshot())
		count, read := r.alerter.Badge()
		r.hub.Broadcast("badge", gin.H{"count": count, "read": read})
		for _, ticketID := range fresh {
			r.hub.Broadcast("ticket_alert", gin.H{"ticket_id": ticketID})
		}
	}
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Close stops the realtime plumbing.
func (r *Router) Close() {
	r.cancel()
	r.relaySub.Close()
	r.ticketCache.Close()
	r.orderCache.Close()
	r.hub.Close()
	r.feed.Close()
}
