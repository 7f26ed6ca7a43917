package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"garage_manager/internal/adapter/http/handlers"
	"garage_manager/internal/adapter/http/middleware"
	"garage_manager/internal/adapter/persistence/repository"
	"garage_manager/internal/infrastructure/auth"
	"garage_manager/internal/infrastructure/cache"
	"garage_manager/internal/infrastructure/database"
	"garage_manager/internal/infrastructure/email"
	"garage_manager/internal/infrastructure/payments"
	"garage_manager/internal/infrastructure/reports"
	"garage_manager/internal/infrastructure/scheduler"
	"garage_manager/internal/usecase"
	"garage_manager/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	jobs := getRoutes()
	if jobs != nil {
		jobs.Start()
		defer func() {
			if err := jobs.Stop(); err != nil {
				log.Printf("[scheduler] shutdown failed err=%v", err)
			}
		}()
	}

	port := getenvInt("PORT", defaultPort)
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() *scheduler.Scheduler {
	ctx := context.Background()
	ddb, err := database.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}
	if database.CreateTablesEnabled() {
		if err := database.EnsureTables(ctx, ddb); err != nil {
			log.Fatalf("Failed to create DynamoDB tables: %v", err)
		}
	}

	garageRepo := repository.NewGarageDynamoRepository(ddb)
	engineerRepo := repository.NewEngineerDynamoRepository(ddb)
	jobCardRepo := repository.NewJobCardDynamoRepository(ddb)
	billRepo := repository.NewBillDynamoRepository(ddb)
	inventoryRepo := repository.NewInventoryDynamoRepository(ddb)
	sequenceRepo := repository.NewSequenceDynamoRepository(ddb)
	planRepo := repository.NewPlanDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	tokens, err := auth.NewJWTManager(os.Getenv("JWT_SECRET"), getenvDuration("JWT_TTL", auth.DefaultTokenTTL))
	if err != nil {
		log.Fatalf("Failed to configure JWT: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	reportCache := newReportCache()
	sequences := usecase.NewSequenceAllocator(sequenceRepo, jobCardRepo, billRepo)

	garageUseCase := usecase.NewGarageUseCase(garageRepo, paymentGateway, tokens)
	planUseCase := usecase.NewPlanUseCase(planRepo, garageRepo, paymentGateway)
	userUseCase := usecase.NewUserUseCase(userRepo, garageRepo, tokens)
	engineerUseCase := usecase.NewEngineerUseCase(engineerRepo, garageRepo)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo, garageRepo)
	jobCardUseCase := usecase.NewJobCardUseCase(jobCardRepo, garageRepo, engineerRepo, sequences)
	billingUseCase := usecase.NewBillingUseCase(billRepo, jobCardRepo, garageRepo, sequences, newEmailSender(), reportCache)
	reportUseCase := usecase.NewFinancialReportUseCase(billRepo, jobCardRepo, reportCache, reports.XLSXExporter{}, getenvDuration("REPORT_CACHE_TTL", usecase.DefaultReportCacheTTL))

	garageHandler := handlers.NewGarageHandler(garageUseCase)
	planHandler := handlers.NewPlanHandler(planUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	engineerHandler := handlers.NewEngineerHandler(engineerUseCase)
	jobCardHandler := handlers.NewJobCardHandler(jobCardUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase, reportUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicGarageRoutes(v1, garageHandler)
	addPublicPlanRoutes(v1, planHandler)
	addPublicUserRoutes(v1, userHandler)

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(middleware.RequireAuth(tokens))
	addGarageRoutes(private, garageHandler)
	addAdminRoutes(private, garageHandler)
	addPlanRoutes(private, planHandler)
	addUserRoutes(private, userHandler)
	addEngineerRoutes(private, engineerHandler)
	addJobCardRoutes(private, jobCardHandler)
	addBillingRoutes(private, billingHandler)
	addInventoryRoutes(private, inventoryHandler)

	return newRegistrationSweep(garageUseCase)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.ExposeHeaders = []string{"Content-Disposition"}

	origins := splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// newReportCache returns nil when REDIS_ADDR is unset so reports are always
// computed.
func newReportCache() interfaces.IReportCache {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Printf("[report][cache] REDIS_ADDR not set; report cache disabled")
		return nil
	}
	return cache.NewRedisReportCache(addr, os.Getenv("REDIS_PASSWORD"), getenvInt("REDIS_DB", 0))
}

func newEmailSender() interfaces.IEmailSender {
	host := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if host == "" {
		log.Printf("[billing][email] SMTP_HOST not set; bills are logged instead of sent")
		return email.LogSender{}
	}
	return email.NewSMTPSender(email.SMTPConfig{
		Host:        host,
		Port:        getenvInt("SMTP_PORT", 587),
		Username:    os.Getenv("SMTP_USERNAME"),
		Password:    os.Getenv("SMTP_PASSWORD"),
		From:        os.Getenv("SMTP_FROM"),
		FromName:    os.Getenv("SMTP_FROM_NAME"),
		ImplicitTLS: getenvBool("SMTP_IMPLICIT_TLS"),
	})
}

func newRegistrationSweep(garages scheduler.RegistrationSweeper) *scheduler.Scheduler {
	s, err := scheduler.New()
	if err != nil {
		log.Printf("[scheduler] init failed err=%v", err)
		return nil
	}
	interval := getenvDuration("REGISTRATION_SWEEP_INTERVAL", time.Hour)
	ttl := getenvDuration("REGISTRATION_TTL", 24*time.Hour)
	if err := s.RegisterRegistrationSweep(garages, interval, ttl); err != nil {
		log.Printf("[scheduler] registration sweep not scheduled err=%v", err)
		return nil
	}
	return s
}
