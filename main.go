package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/MuchYouth/otgil-Re-Thread/cmd/app"
)

// @contact.name   Ot-gil Team
// @contact.email  hello@ot-gil.com
//
// @license.name  MIT
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
