package routes

import (
	"log"
	"strconv"

	_ "fundtracker/docs" // generated swagger spec
	"fundtracker/internal/adapter/http/handlers"
	"fundtracker/internal/adapter/persistence/repository"
	"fundtracker/internal/infrastructure/clock"
	"fundtracker/internal/infrastructure/database"
	"fundtracker/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	sysClock := clock.NewSystem()

	contractorRepo := repository.NewContractorDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	issueRepo := repository.NewIssueDynamoRepository(ddb)
	ratingRepo := repository.NewRatingDynamoRepository(ddb)
	progressRepo := repository.NewProgressDynamoRepository(ddb)
	materialRepo := repository.NewMaterialDynamoRepository(ddb)
	paymentRepo := repository.NewMaterialPaymentDynamoRepository(ddb)
	certificateRepo := repository.NewCertificateDynamoRepository(ddb)
	skillRepo := repository.NewSkillDynamoRepository(ddb)
	auditRepo := repository.NewAuditLogDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	// The user repository doubles as the identity resolver.
	identity := userRepo

	ledger := usecase.NewRatingLedger(contractorRepo, auditRepo, sysClock)
	eligibilityUseCase := usecase.NewEligibilityUseCase(contractorRepo)
	contractorUseCase := usecase.NewContractorUseCase(contractorRepo, identity, auditRepo, sysClock)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, eligibilityUseCase, identity, auditRepo, sysClock)
	issueUseCase := usecase.NewIssueUseCase(issueRepo, projectRepo, ledger, identity, auditRepo, sysClock)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, contractorRepo, ledger, identity, auditRepo, sysClock)
	progressUseCase := usecase.NewProgressUseCase(progressRepo, projectRepo, contractorRepo, identity, auditRepo, sysClock)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo, paymentRepo, projectRepo, identity, auditRepo, sysClock)
	qualificationUseCase := usecase.NewQualificationUseCase(certificateRepo, skillRepo, contractorRepo, identity, auditRepo, sysClock)
	auditUseCase := usecase.NewAuditLogUseCase(auditRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	contractorHandler := handlers.NewContractorHandler(contractorUseCase, eligibilityUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	issueHandler := handlers.NewIssueHandler(issueUseCase)
	ratingHandler := handlers.NewRatingHandler(ratingUseCase)
	progressHandler := handlers.NewProgressHandler(progressUseCase)
	materialHandler := handlers.NewMaterialHandler(materialUseCase)
	qualificationHandler := handlers.NewQualificationHandler(qualificationUseCase)
	auditHandler := handlers.NewAuditHandler(auditUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFundTrackerRoutes(v1,
		contractorHandler,
		projectHandler,
		issueHandler,
		ratingHandler,
		progressHandler,
		materialHandler,
		qualificationHandler,
		auditHandler,
		userHandler,
	)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
