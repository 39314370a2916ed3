package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Liku-id/wukong-admin-api/docs"
	v1 "github.com/Liku-id/wukong-admin-api/internal/api/handler/v1"
	"github.com/Liku-id/wukong-admin-api/internal/api/middleware"
	"github.com/Liku-id/wukong-admin-api/internal/config"
	"github.com/Liku-id/wukong-admin-api/internal/repository"
	"github.com/Liku-id/wukong-admin-api/internal/repository/dao"
	"github.com/Liku-id/wukong-admin-api/internal/service"
	"github.com/Liku-id/wukong-admin-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, store *storage.MinioStore) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	organizerHandler := s.initOrganizerHandler(db)
	eventHandler := s.initEventHandler(db)
	categoryHandler := s.initTicketCategoryHandler(db)
	checkinHandler := s.initCheckinHandler(db)
	attendeeHandler := s.initAttendeeHandler(db, checkinHandler)
	assetHandler := s.initAssetHandler(db, store)
	cityHandler := s.initCityHandler()

	go checkinHandler.Run()

	s.MountHandlers(authHandler, userHandler, organizerHandler, eventHandler, categoryHandler, attendeeHandler, assetHandler, cityHandler, checkinHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initOrganizerHandler(db *gorm.DB) *v1.OrganizerHandler {
	organizerDAO := dao.NewOrganizerDAO(db)
	repo := repository.NewOrganizerRepository(organizerDAO)
	svc := service.NewOrganizerService(repo)
	handler := v1.NewOrganizerHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	categoryDAO := dao.NewTicketCategoryDAO(db)
	repo := repository.NewEventRepository(dao.NewEventDAO(db), categoryDAO)
	categoryRepo := repository.NewTicketCategoryRepository(categoryDAO)
	svc := service.NewEventService(repo, categoryRepo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initTicketCategoryHandler(db *gorm.DB) *v1.TicketCategoryHandler {
	categoryDAO := dao.NewTicketCategoryDAO(db)
	repo := repository.NewTicketCategoryRepository(categoryDAO)
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db), categoryDAO)
	svc := service.NewTicketCategoryService(repo, eventRepo)
	handler := v1.NewTicketCategoryHandler(svc)

	return handler
}

func (s *Server) initCheckinHandler(db *gorm.DB) *v1.CheckinHandler {
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewCheckinHandler(uSvc)

	return handler
}

func (s *Server) initAttendeeHandler(db *gorm.DB, feed *v1.CheckinHandler) *v1.AttendeeHandler {
	repo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db), dao.NewTicketCategoryDAO(db))
	svc := service.NewAttendeeService(repo, eventRepo)
	handler := v1.NewAttendeeHandler(svc, feed)

	return handler
}

func (s *Server) initAssetHandler(db *gorm.DB, store *storage.MinioStore) *v1.AssetHandler {
	repo := repository.NewAssetRepository(dao.NewAssetDAO(db))
	svc := service.NewAssetService(repo, store)
	handler := v1.NewAssetHandler(svc)

	return handler
}

func (s *Server) initCityHandler() *v1.CityHandler {
	var cache *redis.Client
	if s.Config.Redis != nil && s.Config.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{Addr: s.Config.Redis.Addr})
	}

	ttl := time.Duration(s.Config.Redis.CityCacheTTLSeconds) * time.Second
	svc := service.NewCityService(s.Config.Upstream.BackendURL, cache, ttl)
	handler := v1.NewCityHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Metrics())
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	organizerHandler *v1.OrganizerHandler,
	eventHandler *v1.EventHandler,
	categoryHandler *v1.TicketCategoryHandler,
	attendeeHandler *v1.AttendeeHandler,
	assetHandler *v1.AssetHandler,
	cityHandler *v1.CityHandler,
	checkinHandler *v1.CheckinHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	organizers := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		organizers.GET("/organizers", organizerHandler.HandleListOrganizers)
		organizers.GET("/organizers/:organizerID", organizerHandler.HandleGetOrganizer)
		organizers.POST("/organizers", organizerHandler.HandleCreateOrganizer)
		organizers.PUT("/organizers/:organizerID", organizerHandler.HandleUpdateOrganizer)
		organizers.DELETE("/organizers/:organizerID", organizerHandler.HandleDeleteOrganizer)
	}

	events := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		events.GET("/events", eventHandler.HandleListEvents)
		events.GET("/events/:eventID", eventHandler.HandleGetEvent)
		events.POST("/events", eventHandler.HandleCreateEvent)
		events.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		events.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		events.POST("/events/:eventID/duplicate", eventHandler.HandleDuplicateEvent)

		events.GET("/events/:eventID/ticket-categories", categoryHandler.HandleListTicketCategories)
		events.POST("/events/:eventID/ticket-categories", categoryHandler.HandleCreateTicketCategory)
		events.PUT("/ticket-categories/:categoryID", categoryHandler.HandleUpdateTicketCategory)
		events.DELETE("/ticket-categories/:categoryID", categoryHandler.HandleDeleteTicketCategory)

		events.GET("/events/:eventID/attendees", attendeeHandler.HandleListAttendees)
		events.PATCH("/tickets/:ticketID/redeem", attendeeHandler.HandleRedeemTicket)
		events.GET("/checkin/feed", checkinHandler.HandleFeed)

		events.POST("/assets", assetHandler.HandleUploadAsset)
		events.GET("/assets/:assetID", assetHandler.HandleGetAsset)
	}

	// The city list stays public; the dashboard fetches it before login.
	s.Router.GET("/list/cities", cityHandler.HandleListCities)

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Wukong Admin API"
	docs.SwaggerInfo.Description = "Admin dashboard API for the Wukong ticketing platform."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
