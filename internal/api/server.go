package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MuchYouth/otgil-Re-Thread/docs"
	v1 "github.com/MuchYouth/otgil-Re-Thread/internal/api/handler/v1"
	"github.com/MuchYouth/otgil-Re-Thread/internal/api/middleware"
	"github.com/MuchYouth/otgil-Re-Thread/internal/config"
	"github.com/MuchYouth/otgil-Re-Thread/internal/pkg/classifier"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, st *store.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(st)
	userHandler := s.initUserHandler(st)
	itemHandler := s.initItemHandler(st)
	partyHandler := s.initPartyHandler(st)
	creditHandler := s.initCreditHandler(st)
	makerHandler := s.initMakerHandler(st)
	communityHandler := s.initCommunityHandler(st)
	adminHandler := s.initAdminHandler(st)
	s.MountHandlers(authHandler, userHandler, itemHandler, partyHandler, creditHandler, makerHandler, communityHandler, adminHandler)

	return s
}

func (s *Server) initAuthHandler(st *store.Store) *v1.AuthHandler {
	repo := repository.NewUserRepository(st)
	svc := service.NewAuthService(repo, s.Config.API.AdminSignupCode)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(st *store.Store) *v1.UserHandler {
	repo := repository.NewUserRepository(st)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initItemHandler(st *store.Store) *v1.ItemHandler {
	repo := repository.NewItemRepository(st)
	partyRepo := repository.NewPartyRepository(st)
	creditSvc := service.NewCreditService(repository.NewCreditRepository(st))
	svc := service.NewItemService(repo, partyRepo, creditSvc)
	uSvc := service.NewUserService(repository.NewUserRepository(st))
	analyzer := classifier.New(s.Config.Classifier.Endpoint, time.Duration(s.Config.Classifier.TimeoutSeconds)*time.Second)
	handler := v1.NewItemHandler(svc, uSvc, analyzer)

	return handler
}

func (s *Server) initPartyHandler(st *store.Store) *v1.PartyHandler {
	repo := repository.NewPartyRepository(st)
	creditSvc := service.NewCreditService(repository.NewCreditRepository(st))
	svc := service.NewPartyService(repo, creditSvc)
	uSvc := service.NewUserService(repository.NewUserRepository(st))
	handler := v1.NewPartyHandler(svc, uSvc)

	return handler
}

func (s *Server) initCreditHandler(st *store.Store) *v1.CreditHandler {
	creditSvc := service.NewCreditService(repository.NewCreditRepository(st))
	catalogSvc := service.NewCatalogService(repository.NewCatalogRepository(st), creditSvc)
	uSvc := service.NewUserService(repository.NewUserRepository(st))
	handler := v1.NewCreditHandler(creditSvc, catalogSvc, uSvc)

	return handler
}

func (s *Server) initMakerHandler(st *store.Store) *v1.MakerHandler {
	creditSvc := service.NewCreditService(repository.NewCreditRepository(st))
	svc := service.NewCatalogService(repository.NewCatalogRepository(st), creditSvc)
	uSvc := service.NewUserService(repository.NewUserRepository(st))
	handler := v1.NewMakerHandler(svc, uSvc)

	return handler
}

func (s *Server) initCommunityHandler(st *store.Store) *v1.CommunityHandler {
	svc := service.NewCommunityService(repository.NewCommunityRepository(st))
	uSvc := service.NewUserService(repository.NewUserRepository(st))
	handler := v1.NewCommunityHandler(svc, uSvc)

	return handler
}

func (s *Server) initAdminHandler(st *store.Store) *v1.AdminHandler {
	userRepo := repository.NewUserRepository(st)
	itemRepo := repository.NewItemRepository(st)
	partyRepo := repository.NewPartyRepository(st)
	creditRepo := repository.NewCreditRepository(st)

	svc := service.NewAdminService(userRepo, itemRepo, partyRepo, creditRepo)
	partySvc := service.NewPartyService(partyRepo, service.NewCreditService(creditRepo))
	itemSvc := service.NewItemService(itemRepo, partyRepo, service.NewCreditService(creditRepo))
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewAdminHandler(svc, partySvc, itemSvc, uSvc)

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
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	itemHandler *v1.ItemHandler,
	partyHandler *v1.PartyHandler,
	creditHandler *v1.CreditHandler,
	makerHandler *v1.MakerHandler,
	communityHandler *v1.CommunityHandler,
	adminHandler *v1.AdminHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/users/me", userHandler.HandleGetMe)
		authed.PATCH("/users/me", userHandler.HandleUpdateMe)
		authed.GET("/users/me/impact", itemHandler.HandlePersonalImpact)
		authed.PUT("/users/me/neighbors", userHandler.HandleSetNeighbors)
		authed.POST("/users/me/neighbors/:neighborID", userHandler.HandleToggleNeighbor)
		authed.GET("/users/:userID", userHandler.HandleGetUser)
		authed.GET("/users/:userID/impact", itemHandler.HandleUserImpact)
		authed.GET("/users", userHandler.HandleListUsers)

		authed.GET("/items", itemHandler.HandleBrowseItems)
		authed.POST("/items", itemHandler.HandleCreateItem)
		authed.GET("/items/my", itemHandler.HandleListMyItems)
		authed.POST("/items/analysis", itemHandler.HandleAnalyzeImage)
		authed.GET("/items/:itemID", itemHandler.HandleGetItem)
		authed.PATCH("/items/:itemID", itemHandler.HandleUpdateItem)
		authed.POST("/items/:itemID/listing", itemHandler.HandleToggleListing)
		authed.POST("/items/:itemID/submission", itemHandler.HandleSubmitItem)
		authed.DELETE("/items/:itemID/submission", itemHandler.HandleCancelSubmission)

		authed.GET("/parties", partyHandler.HandleListParties)
		authed.POST("/parties", partyHandler.HandleHostParty)
		authed.GET("/parties/my", partyHandler.HandleListMyParties)
		authed.GET("/parties/kit-estimate", partyHandler.HandleKitEstimate)
		authed.POST("/parties/join", partyHandler.HandleJoinByCode)
		authed.GET("/parties/:partyID", partyHandler.HandleGetParty)
		authed.POST("/parties/:partyID/join", partyHandler.HandleJoinParty)
		authed.GET("/parties/:partyID/participants", partyHandler.HandleListParticipants)
		authed.PATCH("/parties/:partyID/participants/:userID", partyHandler.HandleUpdateParticipantStatus)
		authed.DELETE("/parties/:partyID/participants/:userID", partyHandler.HandleRemoveParticipant)
		authed.POST("/parties/:partyID/checkin", partyHandler.HandleCheckIn)
		authed.POST("/parties/:partyID/completion", partyHandler.HandleCompleteParty)

		authed.GET("/credits/balance", creditHandler.HandleGetBalance)
		authed.GET("/credits/history", creditHandler.HandleGetHistory)
		authed.POST("/credits/offset", creditHandler.HandleOffsetCredits)
		authed.GET("/rewards", creditHandler.HandleListRewards)
		authed.POST("/rewards/:rewardID/redemption", creditHandler.HandleRedeemReward)

		authed.GET("/makers", makerHandler.HandleListMakers)
		authed.GET("/makers/:makerID", makerHandler.HandleGetMaker)
		authed.GET("/makers/:makerID/products", makerHandler.HandleListMakerProducts)
		authed.GET("/maker-products", makerHandler.HandleListProducts)
		authed.POST("/maker-products/:productID/purchase", makerHandler.HandlePurchaseProduct)

		authed.GET("/stories", communityHandler.HandleListStories)
		authed.POST("/stories", communityHandler.HandleCreateStory)
		authed.GET("/stories/:storyID", communityHandler.HandleGetStory)
		authed.PUT("/stories/:storyID", communityHandler.HandleUpdateStory)
		authed.DELETE("/stories/:storyID", communityHandler.HandleDeleteStory)
		authed.POST("/stories/:storyID/like", communityHandler.HandleToggleLike)
		authed.GET("/stories/:storyID/comments", communityHandler.HandleListComments)
		authed.POST("/stories/:storyID/comments", communityHandler.HandleAddComment)
		authed.GET("/reports", communityHandler.HandleListReports)
		authed.POST("/reports", communityHandler.HandlePublishReport)

		authed.GET("/admin/stats", adminHandler.HandleGetStats)
		authed.GET("/admin/items", adminHandler.HandleListAllItems)
		authed.POST("/admin/items/:itemID/review", itemHandler.HandleReviewSubmission)
		authed.POST("/admin/parties", adminHandler.HandleAddParty)
		authed.POST("/admin/parties/:partyID/approval", adminHandler.HandlePartyApproval)
		authed.PUT("/admin/parties/:partyID", adminHandler.HandleUpdateParty)
		authed.DELETE("/admin/parties/:partyID", adminHandler.HandleDeleteParty)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Ot-gil API"
	docs.SwaggerInfo.Description = "Clothing exchange community API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
