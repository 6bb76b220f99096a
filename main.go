package main

import (
	"context"
	"log"
	"net/http"

	"amoria_server/config"
	"amoria_server/routes"
	"amoria_server/services"
	"amoria_server/socket"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Initializing AWS clients...")
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	dynamoService := &services.DynamoService{Client: dynamodb.NewFromConfig(awsCfg)}
	log.Println("AWS clients initialized.")

	// Initialize services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	candidateService := &services.CandidateService{Dynamo: dynamoService}
	swipeService := &services.SwipeService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService}
	chatService := &services.ChatService{Dynamo: dynamoService, Matches: matchService}
	s3Service := services.NewS3Service(s3.NewFromConfig(awsCfg), cfg.S3Bucket)

	// Initialize the router
	r := mux.NewRouter()

	// Realtime layer
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterCandidateRoutes(r, candidateService)
	routes.RegisterSwipeRoutes(r, swipeService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	log.Printf("Starting server on port %s...", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
