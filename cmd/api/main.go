package main

import (
	_ "cotizaciones_zafir/docs"
	"cotizaciones_zafir/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cotizaciones Zafir API
// @version         1.0
// @description     Surgical quote service (cotizaciones quirúrgicas) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
