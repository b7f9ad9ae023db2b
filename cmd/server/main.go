package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"huddle/internal/auth"
	"huddle/internal/cache"
	"huddle/internal/client"
	"huddle/internal/config"
	"huddle/internal/domain/models"
	"huddle/internal/handler"
	"huddle/internal/middleware"
	"huddle/internal/session"
	"huddle/internal/state"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logger := config.NewLogger(os.Stdout, cfg.Debug)
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"acting_user", cfg.ActingUserEmail,
	)

	// Create JWT verifier for the Keycloak realm
	jwtVerifier, err := auth.NewJWTVerifier(cfg.KeycloakJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	ctx := context.Background()

	// Snapshot cache: Redis when configured, in-process otherwise
	var snapshots cache.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		snapshots = redisCache
		logger.Info("snapshot cache connected", "addr", cfg.RedisAddr)
	} else {
		snapshots = cache.NewMemoryCache()
		logger.Info("snapshot cache in-process")
	}
	defer snapshots.Close()

	// Optional workspace seed fixture
	var seed *state.Seed
	if cfg.SeedFile != "" {
		seed, err = state.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		logger.Info("seed loaded",
			"file", cfg.SeedFile,
			"teams", len(seed.Teams),
			"members", len(seed.Members),
		)
	}

	// Session state container
	store := state.New(state.Options{
		ActingUser: actingUser(cfg),
		Seed:       seed,
		Logger:     logger,
	})

	// Upstream media-service client and session bootstrap
	mediaClient := client.New(cfg.MediaServiceURL, func() string { return cfg.MediaServiceToken }, logger)
	session.New(store, snapshots, mediaClient, logger).Run(ctx)

	// Create handlers
	teamHandler := handler.NewTeamHandler(store, logger)
	memberHandler := handler.NewMemberHandler(store, logger)
	channelHandler := handler.NewChannelHandler(store, logger)
	conversationHandler := handler.NewConversationHandler(store, logger)
	postHandler := handler.NewPostHandler(store, logger)
	fileHandler := handler.NewFileHandler(store, logger)
	callHandler := handler.NewCallHandler(store, logger)
	viewHandler := handler.NewViewHandler(store, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Team routes
	mux.HandleFunc("GET /api/teams", teamHandler.ListTeams)
	mux.HandleFunc("POST /api/teams", teamHandler.CreateTeam)
	mux.HandleFunc("PUT /api/teams/current", teamHandler.SetCurrentTeam)

	// Member routes
	mux.HandleFunc("GET /api/members", memberHandler.ListMembers)
	mux.HandleFunc("POST /api/members", memberHandler.AddMember)
	mux.HandleFunc("DELETE /api/members/{id}", memberHandler.RemoveMember)
	mux.HandleFunc("PATCH /api/members/{id}/role", memberHandler.UpdateMemberRole)
	mux.HandleFunc("PATCH /api/members/{id}/status", memberHandler.UpdateMemberStatus)

	// Channel routes
	mux.HandleFunc("GET /api/channels", channelHandler.ListChannels)
	mux.HandleFunc("POST /api/channels", channelHandler.CreateChannel)

	// Conversation routes
	mux.HandleFunc("GET /api/conversations", conversationHandler.ListConversations)
	mux.HandleFunc("POST /api/conversations", conversationHandler.CreateConversation)
	mux.HandleFunc("PUT /api/conversations/current", conversationHandler.SetCurrentConversation)
	mux.HandleFunc("GET /api/conversations/{id}/messages", conversationHandler.GetMessages)
	mux.HandleFunc("POST /api/conversations/{id}/messages", conversationHandler.SendMessage)

	// Post routes
	mux.HandleFunc("GET /api/posts", postHandler.ListPosts)
	mux.HandleFunc("POST /api/posts", postHandler.CreatePost)
	mux.HandleFunc("POST /api/posts/{id}/like", postHandler.LikePost)
	mux.HandleFunc("POST /api/posts/{id}/comments", postHandler.AddComment)

	// File routes
	mux.HandleFunc("GET /api/files", fileHandler.ListFiles)
	mux.HandleFunc("POST /api/files", fileHandler.AddFile)
	mux.HandleFunc("DELETE /api/files/{id}", fileHandler.DeleteFile)
	mux.HandleFunc("PATCH /api/files/{id}", fileHandler.RenameFile)

	// Call routes
	mux.HandleFunc("GET /api/calls", callHandler.GetCalls)
	mux.HandleFunc("POST /api/calls", callHandler.StartCall)
	mux.HandleFunc("DELETE /api/calls/current", callHandler.EndCall)
	mux.HandleFunc("POST /api/calls/answer", callHandler.AnswerCall)
	mux.HandleFunc("POST /api/calls/decline", callHandler.DeclineCall)
	mux.HandleFunc("POST /api/calls/mute", callHandler.ToggleMute)
	mux.HandleFunc("POST /api/calls/video", callHandler.ToggleVideo)

	// Navigation route
	mux.HandleFunc("PUT /api/view", viewHandler.SetView)

	// Debug routes (only in dev environment)
	if cfg.Environment == "dev" {
		mux.HandleFunc("POST /debug/api/calls/ring", callHandler.RingIncoming)
		logger.Warn("Debug route registered: POST /debug/api/calls/ring (incoming call simulation)")
	}

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.AuthMiddleware(jwtVerifier, logger)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// actingUser builds the session identity from configuration. The name
// splits on the first space; a single token becomes the first name.
func actingUser(cfg *config.Config) models.Member {
	first, last, _ := strings.Cut(cfg.ActingUserName, " ")
	return models.Member{
		ID:        cfg.ActingUserID,
		Email:     cfg.ActingUserEmail,
		FirstName: first,
		LastName:  last,
		Role:      models.RoleOwner,
		Status:    models.StatusOnline,
	}
}
