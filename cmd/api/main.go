package main

import (
	_ "controle_faturas/docs"
	"controle_faturas/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Controle de Faturas API
// @version         1.0
// @description     Administração de faturas de telefonia: vencimentos, envio de comprovantes e notificações.

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
