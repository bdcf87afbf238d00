package routes

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "controle_faturas/docs" // Swagger registration
	"controle_faturas/internal/adapter/http/handlers"
	repository2 "controle_faturas/internal/adapter/persistence/repository"
	"controle_faturas/internal/infrastructure/database"
	"controle_faturas/internal/infrastructure/storage"
	"controle_faturas/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const (
	defaultPort       = "8080"
	defaultUploadsDir = "./uploads"
	defaultWebDir     = "./web/static"
)

// Run wires the whole application together and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", defaultPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.Connect()

	store, err := storage.NewLocalComprovanteStore(getenvDefault("UPLOADS_DIR", defaultUploadsDir))
	if err != nil {
		log.Fatalf("Failed to prepare uploads dir: %v", err)
	}

	faturaRepo := repository2.NewFaturaSQLiteRepository(db)
	operadoraRepo := repository2.NewOperadoraSQLiteRepository(db)
	usuarioRepo := repository2.NewUsuarioSQLiteRepository(db)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("WARN: JWT_SECRET not set, using an insecure development secret")
		secret = "controle-faturas-dev-secret"
	}

	authUseCase := usecase.NewAuthUseCase(usuarioRepo, secret, usecase.TokenTTLPadrao)
	faturaUseCase := usecase.NewFaturaUseCase(faturaRepo, operadoraRepo, store)
	usuarioUseCase := usecase.NewUsuarioUseCase(usuarioRepo)
	operadoraUseCase := usecase.NewOperadoraUseCase(operadoraRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	faturaHandler := handlers.NewFaturaHandler(faturaUseCase)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioUseCase)
	operadoraHandler := handlers.NewOperadoraHandler(operadoraUseCase)

	addPingRoutes(router.Group(""))
	addAPIRoutes(router.Group("/api"), authUseCase, authHandler, faturaHandler, usuarioHandler, operadoraHandler)

	// Stored proof files and the HTML/JS client.
	router.Static(storage.PublicPrefix, store.Dir())
	serveFrontend(getenvDefault("WEB_DIR", defaultWebDir))
}

func serveFrontend(webDir string) {
	router.StaticFile("/", webDir+"/index.html")
	router.StaticFile("/index.html", webDir+"/index.html")
	router.StaticFile("/login.html", webDir+"/login.html")
	router.Static("/css", webDir+"/css")
	router.Static("/js", webDir+"/js")

	// Unknown non-API paths fall back to the app shell.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada"})
			return
		}
		c.File(webDir + "/index.html")
	})
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
	cfg.AllowOrigins = allowedOrigins()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.AllowCredentials = true
	return cfg
}

func allowedOrigins() []string {
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		return origins
	}
	return []string{
		"http://localhost:8080",
		"http://127.0.0.1:5500",
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
