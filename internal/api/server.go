package api

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/kylespence97/stock-api-back-end/docs"
	v1 "github.com/kylespence97/stock-api-back-end/internal/api/handler/v1"
	"github.com/kylespence97/stock-api-back-end/internal/api/middleware"
	"github.com/kylespence97/stock-api-back-end/internal/config"
	"github.com/kylespence97/stock-api-back-end/internal/pkg/retry"
	"github.com/kylespence97/stock-api-back-end/internal/repository"
	"github.com/kylespence97/stock-api-back-end/internal/repository/customerstore"
	"github.com/kylespence97/stock-api-back-end/internal/repository/dao"
	"github.com/kylespence97/stock-api-back-end/internal/service"
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

	stockHandler := s.initStockHandler(db)
	customerHandler := s.initCustomerHandler()
	s.MountHandlers(stockHandler, customerHandler)

	return s
}

func (s *Server) retryPolicy() retry.Policy {
	policy := retry.DefaultPolicy(repository.IsTransient)
	if s.Config.Retry != nil && s.Config.Retry.MaxRetries > 0 {
		policy.MaxRetries = s.Config.Retry.MaxRetries
	}

	return policy
}

func (s *Server) initStockHandler(db *gorm.DB) *v1.StockHandler {
	stockDAO := dao.NewStockDAO(db)
	repo := repository.NewStockRepository(stockDAO)
	svc := service.NewStockService(repo)
	handler := v1.NewStockHandler(svc, s.retryPolicy())

	return handler
}

// initCustomerHandler picks the customer-account backend at composition time:
// the owned local store, or the remote accounts API when configured external.
func (s *Server) initCustomerHandler() *v1.CustomerHandler {
	var repo service.CustomerRepository
	if s.Config.API.CustomersMode == "external" {
		repo = repository.NewRemoteCustomerRepository(http.DefaultClient, s.Config.API.CustomersBaseURL)
	} else {
		repo = repository.NewLocalCustomerRepository(customerstore.New(customerstore.DefaultCustomers()))
	}

	svc := service.NewCustomerService(repo)
	handler := v1.NewCustomerHandler(svc, s.retryPolicy())

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(stockHandler *v1.StockHandler, customerHandler *v1.CustomerHandler) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)
	staffOnly := middleware.RequireRoles("staff", "admin")

	stock := s.Router.Group(basePath, authenticator.VerifyJWT(), staffOnly)
	{
		stock.GET("/stock", stockHandler.HandleGetAllStock)
		stock.GET("/stock/level/:stockLevel", stockHandler.HandleGetStockByStockLevel)
		stock.GET("/stock/:productID", stockHandler.HandleGetStockByProductID)
		stock.GET("/stock/:productID/resell-price", stockHandler.HandleGetResellPrice)
		stock.GET("/stock/:productID/resell-history", stockHandler.HandleGetResellHistory)
		stock.PUT("/stock/:productID/resell-price", stockHandler.HandleSetResellPrice)
		stock.PUT("/stock/:productID/stock-level", stockHandler.HandleSetStockLevel)
	}

	customers := s.Router.Group(basePath, authenticator.VerifyJWT(), staffOnly)
	{
		customers.GET("/customers", customerHandler.HandleGetAllCustomers)
		customers.GET("/customers/:customerID", customerHandler.HandleGetCustomerByID)
		customers.PUT("/customers/:customerID/purchase-ability", customerHandler.HandleSetPurchaseAbility)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Product Management API"
	docs.SwaggerInfo.Description = "Stock inventory and resale-price API for staff clients."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
