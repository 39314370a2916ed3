package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/Liku-id/wukong-admin-api/cmd/app"
)

// @termsOfService  http://swagger.io/terms/
// @contact.name   Wukong Platform Team
// @contact.url    https://wukong.co.id
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
