package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neuroclinic/lead-intake/internal/infra/auth"
	"github.com/neuroclinic/lead-intake/internal/infra/database"
	"github.com/neuroclinic/lead-intake/internal/infra/http/handlers"
	appmiddleware "github.com/neuroclinic/lead-intake/internal/infra/http/middleware"
	"github.com/neuroclinic/lead-intake/internal/infra/mail"
	"github.com/neuroclinic/lead-intake/internal/infra/queue"
	"github.com/neuroclinic/lead-intake/internal/infra/storage/supabase"
	"github.com/neuroclinic/lead-intake/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)

	// 2. Adapters
	storageClient := supabase.NewClient(
		os.Getenv("SUPABASE_SERVICE_KEY"),
		os.Getenv("SUPABASE_URL"),
		os.Getenv("SUPABASE_BUCKET"),
	)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	jwtService := auth.NewJWTService(os.Getenv("JWT_SECRET"))

	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("INTAKE_INBOX"),
	)

	// 3. Worker (consumes lead events and notifies the intake team)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, producer)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, producer)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo, storageClient)
	fileUC := usecase.NewLeadFileUseCase(leadRepo, storageClient)
	queryUC := usecase.NewLeadQueryUseCase(leadRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateLeadUC, deleteLeadUC, queryUC)
	fileHandler := handlers.NewFileHandler(fileUC)
	statsHandler := handlers.NewStatsHandler(queryUC)
	metadataHandler := handlers.NewMetadataHandler()
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth(jwtService))

		r.Get("/leads", leadHandler.List)
		r.Post("/leads", leadHandler.Create)
		r.Get("/leads/{id}", leadHandler.GetByID)
		r.Patch("/leads/{id}", leadHandler.Update)
		r.Delete("/leads/{id}", leadHandler.Delete)

		r.Post("/leads/{id}/files", fileHandler.AddFile)
		r.Delete("/leads/{id}/files/{fileID}", fileHandler.RemoveFile)
		r.Post("/files/upload-url", fileHandler.GenerateUploadURL)
		r.Get("/files/{fileID}/url", fileHandler.GetFileURL)

		r.Get("/stats", statsHandler.GetStats)
		r.Get("/metadata", metadataHandler.Handle)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("lead-intake API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
