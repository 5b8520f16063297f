package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/kylespence97/stock-api-back-end/cmd/app"
)

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the staff identity service
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
