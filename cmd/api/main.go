package main

import (
	_ "fundtracker/docs"
	"fundtracker/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           FundTracker Accountability API
// @version         1.0
// @description     Contractor accountability engine: rating ledger, eligibility policy, issue adjudication and proof-gated reviews for public infrastructure projects. Backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-ID
// @description Opaque actor id resolved to a role by the identity layer.

func main() {
	routes.Run()
}
