package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	claimrepo "github.com/keerthi6166/insurance-backend/claim/repository"
	claimsvc "github.com/keerthi6166/insurance-backend/claim/service"
	customerrepo "github.com/keerthi6166/insurance-backend/customer/repository"
	customersvc "github.com/keerthi6166/insurance-backend/customer/service"
	api "github.com/keerthi6166/insurance-backend/handler"
	"github.com/keerthi6166/insurance-backend/mapper"
	"github.com/keerthi6166/insurance-backend/middleware"
	paymentrepo "github.com/keerthi6166/insurance-backend/payment/repository"
	paymentsvc "github.com/keerthi6166/insurance-backend/payment/service"
	policyrepo "github.com/keerthi6166/insurance-backend/policy/repository"
	policysvc "github.com/keerthi6166/insurance-backend/policy/service"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db := setupDatabase(logger)

	// Mapper and validator are built once and handed to every service.
	m := mapper.New()
	validate := validator.New()

	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo, m, validate, logger)
	customerHandler := api.NewCustomerHandler(customerService)

	policyRepo := policyrepo.NewGormPolicyRepo(db)
	policyService := policysvc.NewPolicyService(policyRepo, m, validate, logger)
	policyHandler := api.NewPolicyHandler(policyService)

	claimRepo := claimrepo.NewGormClaimRepo(db)
	claimService := claimsvc.NewClaimService(claimRepo, m, validate, logger)
	claimHandler := api.NewClaimHandler(claimService)

	paymentRepo := paymentrepo.NewGormPaymentRepo(db)
	paymentService := paymentsvc.NewPaymentService(paymentRepo, m, validate, logger)
	paymentHandler := api.NewPaymentHandler(paymentService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.ErrorTranslator(logger))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiRoutes := r.Group("/api")
	{
		customerRoutes := apiRoutes.Group("/customer")
		{
			customerRoutes.GET("", customerHandler.GetAllCustomers())
			customerRoutes.GET("/:email", customerHandler.GetCustomerByEmail())
			customerRoutes.POST("", customerHandler.AddNewCustomer())
			customerRoutes.PUT("", customerHandler.UpdateCustomer())
			customerRoutes.DELETE("/:email", customerHandler.DeleteCustomer())
		}

		policyRoutes := apiRoutes.Group("/policy")
		{
			policyRoutes.GET("", policyHandler.GetAllPolicies())
			policyRoutes.GET("/:policyNumber", policyHandler.GetPolicyByPolicyNumber())
			policyRoutes.GET("/customer/:email", policyHandler.GetPoliciesByCustomerEmail())
			policyRoutes.POST("", policyHandler.AddNewPolicy())
			policyRoutes.PUT("", policyHandler.UpdatePolicy())
			policyRoutes.DELETE("/:policyNumber", policyHandler.DeletePolicy())
		}

		claimRoutes := apiRoutes.Group("/claim")
		{
			claimRoutes.GET("", claimHandler.GetAllClaims())
			claimRoutes.GET("/:claimNumber", claimHandler.GetClaimByClaimNumber())
			claimRoutes.GET("/policy/:policyNumber", claimHandler.GetClaimsByPolicyNumber())
			claimRoutes.POST("", claimHandler.AddNewClaim())
			claimRoutes.PUT("/:claimNumber", claimHandler.UpdateClaim())
			claimRoutes.DELETE("/:claimNumber", claimHandler.DeleteClaim())
		}

		paymentRoutes := apiRoutes.Group("/payment")
		{
			paymentRoutes.GET("", paymentHandler.GetAllPayments())
			paymentRoutes.GET("/:transactionId", paymentHandler.GetPaymentByTransactionID())
			paymentRoutes.GET("/policy/:policyNumber", paymentHandler.GetPaymentsByPolicyNumber())
			paymentRoutes.POST("", paymentHandler.AddNewPayment())
			paymentRoutes.PUT("", paymentHandler.UpdatePayment())
			paymentRoutes.DELETE("/:transactionId", paymentHandler.DeletePayment())
		}
	}

	addr := ":" + getenv("PORT", "8080")
	logger.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
