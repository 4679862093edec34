package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"user_backend/internal/app/router"
	usersadapters "user_backend/internal/feature/users/adapters"
	usershandler "user_backend/internal/feature/users/transport/handler"
	usersusecase "user_backend/internal/feature/users/usecase"
	infradb "user_backend/internal/platform/db"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Repository
	userRepo := usersadapters.NewUserPostgres(db)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo)

	// Handler
	userH := usershandler.NewUserHandler(userUC)

	// Router
	r := router.NewRouter(userH)
	r.Use(cors.Default())

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
