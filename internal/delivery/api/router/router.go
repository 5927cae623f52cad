// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"creaglass/config"
	"creaglass/internal/delivery/api/middleware"
	"creaglass/internal/delivery/api/router/handler"
	"creaglass/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// documentsPath is both the listing and the upload route.
const documentsPath = "/documents"

// IsDocumentUpload reports whether c is routed to the document upload, which carries its own body limit.
func IsDocumentUpload(c echo.Context) bool {
	return c.Request().Method == http.MethodPost && c.Path() == documentsPath
}

type RouterParams struct {
	fx.In

	Config *config.Config

	AuthHandler          *handler.AuthHandler
	RealtimeHandler      *handler.RealtimeHandler
	NotificationHandler  *handler.NotificationHandler
	BloodPriorityHandler *handler.BloodPriorityHandler
	InventoryHandler     *handler.InventoryHandler
	PushHandler          *handler.PushHandler
	EventHandler         *handler.EventHandler
	DocumentHandler      *handler.DocumentHandler
	UserHandler          *handler.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	realtimeHandler      *handler.RealtimeHandler
	notificationHandler  *handler.NotificationHandler
	bloodPriorityHandler *handler.BloodPriorityHandler
	inventoryHandler     *handler.InventoryHandler
	pushHandler          *handler.PushHandler
	eventHandler         *handler.EventHandler
	documentHandler      *handler.DocumentHandler
	userHandler          *handler.UserHandler
	authMiddleware       *middleware.AuthMiddleware
	uploadLimit          string
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		realtimeHandler:      params.RealtimeHandler,
		notificationHandler:  params.NotificationHandler,
		bloodPriorityHandler: params.BloodPriorityHandler,
		inventoryHandler:     params.InventoryHandler,
		pushHandler:          params.PushHandler,
		eventHandler:         params.EventHandler,
		documentHandler:      params.DocumentHandler,
		userHandler:          params.UserHandler,
		authMiddleware:       params.AuthMiddleware,
		uploadLimit:          params.Config.Documents.MaxUploadSize,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Change events pushed by the publisher
	e.POST("/push", r.pushHandler.HandlePush)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	realtimeGroup := e.Group("/realtime", r.authMiddleware.Authenticate)
	{
		realtimeGroup.POST("/sessions", r.realtimeHandler.StartRealtime)
		realtimeGroup.POST("/sessions/:id/restart", r.realtimeHandler.RestartRealtime)
		realtimeGroup.DELETE("/sessions/:id", r.realtimeHandler.StopRealtime)
		realtimeGroup.POST("/route", r.realtimeHandler.RouteChange)
	}

	notificationsGroup := e.Group("/notifications", r.authMiddleware.Authenticate)
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.GetUnreadCount)
		notificationsGroup.POST("", r.notificationHandler.CreateNotification)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkAsRead)
		notificationsGroup.DELETE("", r.notificationHandler.ClearNotifications)
	}

	bloodPriorityGroup := e.Group("/blood-priority", r.authMiddleware.Authenticate)
	{
		bloodPriorityGroup.GET("/messages", r.bloodPriorityHandler.ListMessages)
		bloodPriorityGroup.POST("/messages", r.bloodPriorityHandler.CreateMessage,
			r.authMiddleware.RequireRole(entity.UserTypeMaster.String()))
		bloodPriorityGroup.GET("/messages/unread", r.bloodPriorityHandler.GetUnreadMessages)
		bloodPriorityGroup.GET("/messages/:id", r.bloodPriorityHandler.GetMessage)
		bloodPriorityGroup.GET("/reads", r.bloodPriorityHandler.GetUserReads)
		bloodPriorityGroup.POST("/messages/:id/open", r.bloodPriorityHandler.OpenMessage)
		bloodPriorityGroup.POST("/messages/:id/confirm", r.bloodPriorityHandler.ConfirmRead)
	}

	inventoryGroup := e.Group("/inventory", r.authMiddleware.Authenticate)
	{
		inventoryGroup.GET("/groups", r.inventoryHandler.ListGroups)
		inventoryGroup.POST("/groups", r.inventoryHandler.CreateGroup)
		inventoryGroup.GET("/items", r.inventoryHandler.ListItems)
		inventoryGroup.POST("/items", r.inventoryHandler.CreateItem)
		inventoryGroup.POST("/items/scan", r.inventoryHandler.ScanItemLabel)
		inventoryGroup.GET("/items/:id", r.inventoryHandler.GetItem)
		inventoryGroup.PATCH("/items/:id", r.inventoryHandler.UpdateItem)
		inventoryGroup.DELETE("/items/:id", r.inventoryHandler.DeleteItem)
		inventoryGroup.POST("/items/:id/adjust", r.inventoryHandler.AdjustStock)
		inventoryGroup.GET("/items/:id/history", r.inventoryHandler.GetItemHistory)
		inventoryGroup.GET("/items/:id/qrcode", r.inventoryHandler.GetItemLabel)
	}

	eventsGroup := e.Group("/events", r.authMiddleware.Authenticate)
	{
		eventsGroup.GET("", r.eventHandler.ListEvents)
		eventsGroup.POST("", r.eventHandler.CreateEvent)
		eventsGroup.GET("/:id", r.eventHandler.GetEvent)
	}

	documentsGroup := e.Group(documentsPath, r.authMiddleware.Authenticate)
	{
		documentsGroup.GET("", r.documentHandler.ListDocuments)
		documentsGroup.POST("", r.documentHandler.UploadDocument, echomiddleware.BodyLimit(r.uploadLimit))
		documentsGroup.GET("/:id", r.documentHandler.GetDocument)
		documentsGroup.GET("/:id/url", r.documentHandler.GetDocumentURL)
		documentsGroup.GET("/:id/content", r.documentHandler.DownloadDocument)
		documentsGroup.DELETE("/:id", r.documentHandler.DeleteDocument)
	}

	masterOnly := r.authMiddleware.RequireRole(entity.UserTypeMaster.String())
	usersGroup := e.Group("/users", r.authMiddleware.Authenticate)
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PATCH("/:id", r.userHandler.UpdateUser, masterOnly)
		usersGroup.POST("/:id/activate", r.userHandler.ActivateUser, masterOnly)
		usersGroup.POST("/:id/deactivate", r.userHandler.DeactivateUser, masterOnly)
	}
}
