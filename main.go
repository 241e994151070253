// @title Gestor UNAD 740508 API
// @version 1.0
// @description Backend administrativo de tareas, estudiantes y entregas del curso 740508.

// @host localhost:3001
// @BasePath /
// @securityDefinitions.apikey ApiSecretAuth
// @in header
// @name x-api-secret

package main

import (
	"flag"
	"log"

	"gestor_unad_backend/internal/app"
	"gestor_unad_backend/internal/config"
	"gestor_unad_backend/internal/seed"
	"gestor_unad_backend/pkg/database"
	"gestor_unad_backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Sembrar borra Courses y Tasks y los repuebla. Destructivo:
	// ejecutar una sola vez, a propósito.
	runSeed := flag.Bool("seed", false, "vaciar Courses/Tasks y cargar el dataset inicial, luego salir")
	flag.Parse()

	// .env local, si existe; las variables ya exportadas tienen prioridad.
	godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if *runSeed {
		if err := seed.Run(db); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		log.Println("Seed completado")
		return
	}

	application := app.New(cfg, db)
	application.Run()
}
