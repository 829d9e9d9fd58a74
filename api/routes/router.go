package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imakhan79/Grocery-Mart/api/controllers"
	"github.com/imakhan79/Grocery-Mart/api/middleware"
	"github.com/imakhan79/Grocery-Mart/internal/assistant"
	"github.com/imakhan79/Grocery-Mart/internal/audit"
	"github.com/imakhan79/Grocery-Mart/internal/cart"
	"github.com/imakhan79/Grocery-Mart/internal/catalog"
	"github.com/imakhan79/Grocery-Mart/internal/coupons"
	"github.com/imakhan79/Grocery-Mart/internal/notifications"
	"github.com/imakhan79/Grocery-Mart/internal/orders"
	"github.com/imakhan79/Grocery-Mart/internal/session"
	"github.com/imakhan79/Grocery-Mart/internal/tickets"
	"github.com/imakhan79/Grocery-Mart/internal/wishlist"
	"github.com/imakhan79/Grocery-Mart/pkg/config"
	"github.com/imakhan79/Grocery-Mart/pkg/db"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
	"github.com/imakhan79/Grocery-Mart/pkg/logger"
	"github.com/imakhan79/Grocery-Mart/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	registry *prometheus.Registry,
	apiMetrics *metrics.APIMetrics,
	sessionService session.Service,
	catalogService catalog.Service,
	cartService cart.Service,
	couponsService coupons.Service,
	ordersService orders.Service,
	notificationsService notifications.Service,
	ticketsService tickets.Service,
	wishlistService wishlist.Service,
	auditService audit.Service,
	assistantService assistant.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(apiMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.AuthLogin(sessionService, logg))

		// Storefront browse is open; everything stateful needs a token.
		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Get("/products/{productID}", controllers.GetProduct(catalogService, logg))
		r.Get("/categories", controllers.ListCategories(catalogService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Post("/auth/logout", controllers.AuthLogout(sessionService, logg))
			r.Get("/auth/me", controllers.AuthMe(sessionService, logg))

			r.Get("/cart", controllers.GetCart(cartService, logg))
			r.Post("/cart/items", controllers.AddCartItem(cartService, logg))
			r.Patch("/cart/items/{itemID}", controllers.UpdateCartItem(cartService, logg))
			r.Delete("/cart/items/{itemID}", controllers.RemoveCartItem(cartService, logg))
			r.Post("/cart/coupon", controllers.ApplyCoupon(couponsService, logg))
			r.Delete("/cart/coupon", controllers.RemoveCoupon(couponsService, logg))

			r.Post("/orders", controllers.PlaceOrder(ordersService, logg))
			r.Get("/orders", controllers.ListMyOrders(ordersService, logg))
			r.Get("/orders/{orderID}", controllers.GetOrder(ordersService, logg))

			r.Get("/notifications", controllers.ListNotifications(notificationsService, logg))
			r.Get("/notifications/unread-count", controllers.UnreadNotificationCount(notificationsService, logg))
			r.Post("/notifications/{notificationID}/read", controllers.MarkNotificationRead(notificationsService, logg))

			r.Post("/tickets", controllers.OpenTicket(ticketsService, logg))
			r.Get("/tickets", controllers.ListMyTickets(ticketsService, logg))
			r.Get("/tickets/{ticketID}", controllers.GetTicket(ticketsService, logg))
			r.Post("/tickets/{ticketID}/messages", controllers.ReplyTicket(ticketsService, logg))

			r.Get("/wishlist", controllers.ListWishlist(wishlistService, logg))
			r.Post("/wishlist/{productID}/toggle", controllers.ToggleWishlist(wishlistService, logg))

			r.Post("/assistant", controllers.AskAssistant(assistantService, logg))
		})

		r.Route("/partner", func(r chi.Router) {
			r.Use(
				middleware.Auth(cfg.JWT, logg),
				middleware.RequireRole(logg, string(enums.UserRoleDeliveryPartner)),
			)

			r.Get("/queue", controllers.PartnerQueue(ordersService, logg))
			r.Get("/orders", controllers.PartnerOrders(ordersService, logg))
			r.Post("/orders/{orderID}/accept", controllers.PartnerAccept(ordersService, logg))
			r.Post("/orders/{orderID}/deliver", controllers.PartnerDeliver(ordersService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(logg,
				string(enums.UserRoleAdmin),
				string(enums.UserRoleStoreManager),
			))

			r.Post("/products", controllers.CreateProduct(catalogService, logg))
			r.Patch("/products/{productID}", controllers.UpdateProduct(catalogService, logg))
			r.Delete("/products/{productID}", controllers.DeleteProduct(catalogService, logg))

			r.Get("/orders", controllers.AdminListOrders(ordersService, logg))
			r.Patch("/orders/{orderID}/status", controllers.AdminUpdateOrderStatus(ordersService, logg))

			r.Get("/coupons", controllers.ListCoupons(couponsService, logg))
			r.Post("/coupons", controllers.CreateCoupon(couponsService, logg))
			r.Delete("/coupons/{code}", controllers.DeleteCoupon(couponsService, logg))

			r.Get("/audit-logs", controllers.ListAuditLog(auditService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(logg,
				string(enums.UserRoleAdmin),
				string(enums.UserRoleStoreManager),
				string(enums.UserRoleSupportAgent),
			))

			r.Get("/tickets", controllers.ListAllTickets(ticketsService, logg))
			r.Post("/tickets/{ticketID}/reply", controllers.AgentReplyTicket(ticketsService, logg))
		})
	})

	return r
}
