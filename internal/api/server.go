package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/pokeolivos/pokeolivos-api/docs"
	v1 "github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1"
	"github.com/pokeolivos/pokeolivos-api/internal/api/middleware"
	"github.com/pokeolivos/pokeolivos-api/internal/config"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
	"github.com/pokeolivos/pokeolivos-api/internal/repository/dao"
	"github.com/pokeolivos/pokeolivos-api/internal/service"
	"github.com/pokeolivos/pokeolivos-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, bucket *storage.Bucket) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	guard := middleware.NewGuard(s.initProfileService(db))

	authHandler := s.initAuthHandler(db)
	profileHandler := s.initProfileHandler(db)
	albumHandler := s.initAlbumHandler(db)
	catalogHandler := s.initCatalogHandler(db)
	awardHandler := s.initAwardHandler(db)
	userHandler := s.initUserHandler(db)
	auditLogHandler := s.initAuditLogHandler(db)
	galleryHandler := s.initGalleryHandler(bucket)

	s.MountHandlers(guard, authHandler, profileHandler, albumHandler, catalogHandler, awardHandler, userHandler, auditLogHandler, galleryHandler)

	return s
}

func (s *Server) initProfileService(db *gorm.DB) *service.ProfileService {
	profileDAO := dao.NewProfileDAO(db)
	repo := repository.NewProfileRepository(profileDAO)

	return service.NewProfileService(repo)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	profileDAO := dao.NewProfileDAO(db)
	repo := repository.NewProfileRepository(profileDAO)
	svc := service.NewAuthService(repo, []byte(s.Config.API.JWTSigningKey))
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initProfileHandler(db *gorm.DB) *v1.ProfileHandler {
	handler := v1.NewProfileHandler(s.initProfileService(db))

	return handler
}

func (s *Server) initAlbumHandler(db *gorm.DB) *v1.AlbumHandler {
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	awardRepo := repository.NewAwardRepository(dao.NewAwardDAO(db))
	svc := service.NewAlbumService(catalogRepo, awardRepo)
	handler := v1.NewAlbumHandler(svc)

	return handler
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	repo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	svc := service.NewCatalogService(repo)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) initAwardHandler(db *gorm.DB) *v1.AwardHandler {
	repo := repository.NewAwardRepository(dao.NewAwardDAO(db))
	profileRepo := repository.NewProfileRepository(dao.NewProfileDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	svc := service.NewAwardService(repo, profileRepo, catalogRepo)
	handler := v1.NewAwardHandler(svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	handler := v1.NewUserHandler(s.initProfileService(db))

	return handler
}

func (s *Server) initAuditLogHandler(db *gorm.DB) *v1.AuditLogHandler {
	awardRepo := repository.NewAwardRepository(dao.NewAwardDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	profileRepo := repository.NewProfileRepository(dao.NewProfileDAO(db))
	svc := service.NewAuditLogService(awardRepo, catalogRepo, profileRepo)
	handler := v1.NewAuditLogHandler(svc)

	return handler
}

func (s *Server) initGalleryHandler(bucket *storage.Bucket) *v1.GalleryHandler {
	svc := service.NewGalleryService(bucket)
	handler := v1.NewGalleryHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	guard *middleware.Guard,
	authHandler *v1.AuthHandler,
	profileHandler *v1.ProfileHandler,
	albumHandler *v1.AlbumHandler,
	catalogHandler *v1.CatalogHandler,
	awardHandler *v1.AwardHandler,
	userHandler *v1.UserHandler,
	auditLogHandler *v1.AuditLogHandler,
	galleryHandler *v1.GalleryHandler,
) {
	const basePath = "/api/v1"

	jwt := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
		auth.POST("/auth/forgot-password", authHandler.HandleForgotPassword)
		auth.POST("/auth/reset-password", authHandler.HandleResetPassword)
	}

	me := s.Router.Group(basePath, jwt, guard.RequireProfile())
	{
		me.GET("/me/profile", profileHandler.HandleGetProfile)
		me.PUT("/me/profile", profileHandler.HandleUpdateProfile)
		me.PUT("/me/password", authHandler.HandleUpdatePassword)
		me.GET("/me/navigation", profileHandler.HandleGetNavigation)
		me.GET("/me/album", albumHandler.HandleGetPersonalAlbum)
		me.GET("/me/claims/:claimCode/qr", awardHandler.HandleGetClaimQR)
	}

	staff := s.Router.Group(basePath, jwt, guard.RequireProfile(), guard.RequireRoles("admin", "mod"))
	{
		staff.GET("/admin/album", albumHandler.HandleGetAdminAlbum)

		staff.GET("/admin/events", catalogHandler.HandleListEvents)
		staff.POST("/admin/events", catalogHandler.HandleSaveEvent)
		staff.PUT("/admin/events/:eventID", catalogHandler.HandleSaveEvent)
		staff.DELETE("/admin/events/:eventID", catalogHandler.HandleDeleteEvent)

		staff.GET("/admin/collections", catalogHandler.HandleListCollections)
		staff.POST("/admin/collections", catalogHandler.HandleSaveCollection)
		staff.PUT("/admin/collections/:collectionID", catalogHandler.HandleSaveCollection)
		staff.DELETE("/admin/collections/:collectionID", catalogHandler.HandleDeleteCollection)

		staff.GET("/admin/stamps", catalogHandler.HandleListStamps)
		staff.POST("/admin/stamps", catalogHandler.HandleSaveStamp)
		staff.PUT("/admin/stamps/:stampID", catalogHandler.HandleSaveStamp)
		staff.DELETE("/admin/stamps/:stampID", catalogHandler.HandleDeleteStamp)

		staff.POST("/admin/awards/resolve", awardHandler.HandleResolveTrainer)
		staff.POST("/admin/awards", awardHandler.HandleAward)
		staff.GET("/admin/claims/:claimCode/qr", awardHandler.HandleGetClaimQRAsStaff)

		staff.GET("/admin/users", userHandler.HandleListUsers)
		staff.PUT("/admin/users/:userID", userHandler.HandleUpdateUser)
		staff.POST("/admin/users/:userID/approve", userHandler.HandleApproveUser)

		staff.GET("/admin/logs", auditLogHandler.HandleListAwardLog)

		staff.GET("/admin/gallery", galleryHandler.HandleListImages)
		staff.POST("/admin/gallery", galleryHandler.HandleUploadImage)
		staff.DELETE("/admin/gallery", galleryHandler.HandleDeleteImage)
	}

	admin := s.Router.Group(basePath, jwt, guard.RequireProfile(), guard.RequireRoles("admin"))
	{
		admin.DELETE("/admin/users/:userID", userHandler.HandleDeleteUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "PokeOlivos API"
	docs.SwaggerInfo.Description = "Loyalty stamp album for the PokeOlivos community."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
