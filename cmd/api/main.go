package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"roomatch/internal/adapter/api"
	"roomatch/internal/adapter/api/handler"
	apimiddleware "roomatch/internal/adapter/api/middleware"
	"roomatch/internal/adapter/api/router"
	"roomatch/internal/adapter/repository"
	domainrepo "roomatch/internal/domain/repository"
	"roomatch/internal/infrastructure/auth"
	"roomatch/internal/infrastructure/websocket"
	"roomatch/internal/usecase"
	"roomatch/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var (
		userRepo    domainrepo.UserRepository
		listingRepo domainrepo.ListingRepository
		likeRepo    domainrepo.LikeRepository
		matchRepo   domainrepo.MatchRepository
		messageRepo domainrepo.MessageRepository
	)

	switch cfg.StoreBackend {
	case "memory":
		log.Printf("Using in-memory store (data is lost on restart)")
		store := repository.NewMemoryStore()
		userRepo = repository.NewMemoryUserRepository(store)
		listingRepo = repository.NewMemoryListingRepository(store)
		likeRepo = repository.NewMemoryLikeRepository(store)
		matchRepo = repository.NewMemoryMatchRepository(store)
		messageRepo = repository.NewMemoryMessageRepository(store)

	default:
		var opts []option.ClientOption
		if credsJSON := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); credsJSON != "" {
			opts = append(opts, option.WithCredentialsJSON([]byte(credsJSON)))
		} else if credsPath := os.Getenv("GOOGLE_SERVICE_ACCOUNT_PATH"); credsPath != "" {
			opts = append(opts, option.WithCredentialsFile(credsPath))
		}

		firestoreClient, err := firestore.NewClient(ctx, cfg.GoogleProject, opts...)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		userRepo = repository.NewFirestoreUserRepository(firestoreClient)
		listingRepo = repository.NewFirestoreListingRepository(firestoreClient)
		likeRepo = repository.NewFirestoreLikeRepository(firestoreClient)
		matchRepo = repository.NewFirestoreMatchRepository(firestoreClient)
		messageRepo = repository.NewFirestoreMessageRepository(firestoreClient)
	}

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	notifier := websocket.NewNotifier(wsManager)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)
	listingUseCase := usecase.NewListingUseCase(listingRepo, likeRepo, userRepo)
	matchUseCase := usecase.NewMatchUseCase(
		likeRepo,
		matchRepo,
		listingRepo,
		userRepo,
		notifier,
		usecase.MatchPolicy(cfg.MatchPolicy),
	)
	messageUseCase := usecase.NewMessageUseCase(matchRepo, messageRepo, userRepo, notifier)

	handler.Setup(authUseCase, listingUseCase, matchUseCase, messageUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokens)
	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware)

	router.Setup(e, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
