package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/zidepeople/runevents-api/docs"
	v1 "github.com/zidepeople/runevents-api/internal/api/handler/v1"
	"github.com/zidepeople/runevents-api/internal/api/middleware"
	"github.com/zidepeople/runevents-api/internal/config"
	"github.com/zidepeople/runevents-api/internal/mailer"
	"github.com/zidepeople/runevents-api/internal/paystack"
	"github.com/zidepeople/runevents-api/internal/pkg/jwthelper"
	"github.com/zidepeople/runevents-api/internal/qr"
	"github.com/zidepeople/runevents-api/internal/repository"
	"github.com/zidepeople/runevents-api/internal/repository/dao"
	"github.com/zidepeople/runevents-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	vendorRepo := repository.NewVendorRepository(dao.NewVendorDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	participationRepo := repository.NewParticipationRepository(dao.NewParticipationDAO(db))
	invitationRepo := repository.NewInvitationRepository(dao.NewInvitationDAO(db))
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	paymentRepo := repository.NewPaymentRepository(dao.NewPaymentDAO(db))

	gateway := paystack.NewClient(conf.Paystack.BaseURL, conf.Paystack.SecretKey)
	notifier := mailer.New(conf.SendGrid)
	renderer := qr.NewRenderer()

	authSvc := service.NewAuthService(userRepo, vendorRepo, gateway)
	userSvc := service.NewUserService(userRepo, vendorRepo)
	eventSvc := service.NewEventService(eventRepo, invitationRepo, vendorRepo, participationRepo)
	participationSvc := service.NewParticipationService(participationRepo, eventRepo, vendorRepo)
	invitationSvc := service.NewInvitationService(invitationRepo, eventRepo, userRepo, notifier)
	ticketSvc := service.NewTicketService(ticketRepo, eventRepo, renderer)
	paymentSvc := service.NewPaymentService(paymentRepo, userRepo, vendorRepo, eventRepo, gateway)

	s.MountHandlers(
		v1.NewAuthHandler(conf.API, authSvc),
		v1.NewUserHandler(userSvc, authSvc),
		v1.NewEventHandler(eventSvc),
		v1.NewParticipationHandler(participationSvc),
		v1.NewInvitationHandler(invitationSvc),
		v1.NewTicketHandler(ticketSvc),
		v1.NewPaymentHandler(paymentSvc),
	)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	eventHandler *v1.EventHandler,
	participationHandler *v1.ParticipationHandler,
	invitationHandler *v1.InvitationHandler,
	ticketHandler *v1.TicketHandler,
	paymentHandler *v1.PaymentHandler,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.POST("/auth/vendors/signup", authHandler.HandleVendorSignup)
		public.POST("/auth/vendors/login", authHandler.HandleVendorLogin)

		public.GET("/events", eventHandler.HandleListPublicEvents)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)

		// Guests respond from emailed links without an account.
		public.GET("/invites/accept", invitationHandler.HandleAcceptInvite)
		public.GET("/invites/reject", invitationHandler.HandleRejectInvite)

		public.POST("/tickets", ticketHandler.HandleIssueTicket)
	}

	organizers := s.Router.Group(basePath, verifyJWT, middleware.RequireRole(jwthelper.RoleOrganizer))
	{
		organizers.GET("/users/me", userHandler.HandleGetProfile)
		organizers.PATCH("/users/me", userHandler.HandleUpdateProfile)

		organizers.POST("/events", eventHandler.HandleCreateEvent)
		organizers.GET("/events/mine", eventHandler.HandleListMyEvents)
		organizers.PATCH("/events/:eventID", eventHandler.HandleUpdateEvent)
		organizers.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		organizers.POST("/events/recommend-vendors", eventHandler.HandleRecommendVendors)

		organizers.POST("/events/:eventID/vendors", participationHandler.HandleRequestVendor)
		organizers.GET("/events/:eventID/vendors", participationHandler.HandleListEventRequests)

		organizers.POST("/events/:eventID/invites", invitationHandler.HandleInviteGuests)
		organizers.GET("/events/:eventID/invites", invitationHandler.HandleListInvitees)
		organizers.POST("/events/:eventID/collaborators", invitationHandler.HandleInviteCollaborator)
		organizers.POST("/collaborations/:eventID/respond", invitationHandler.HandleRespondToCollaboration)

		organizers.POST("/tickets/scan", ticketHandler.HandleScanTicket)
		organizers.GET("/events/:eventID/ticket-logs", ticketHandler.HandleGetTicketLogs)

		organizers.POST("/payments/initialize", paymentHandler.HandleInitializePayment)
		organizers.GET("/payments/verify/:reference", paymentHandler.HandleVerifyPayment)
		organizers.GET("/payments/history", paymentHandler.HandleGetHistory)
	}

	vendors := s.Router.Group(basePath, verifyJWT, middleware.RequireRole(jwthelper.RoleVendor))
	{
		vendors.GET("/vendors/me", userHandler.HandleGetVendorProfile)
		vendors.PATCH("/vendors/me", userHandler.HandleUpdateVendorProfile)

		vendors.GET("/vendors/requests", participationHandler.HandleListPendingRequests)
		vendors.POST("/vendors/requests/respond", participationHandler.HandleRespondToRequest)

		vendors.GET("/vendors/payments", paymentHandler.HandleGetVendorHistory)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "RunEvents API"
	docs.SwaggerInfo.Description = "Backend API for the event management platform."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
