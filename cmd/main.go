// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_micro_learn/internal/config"
	"go_micro_learn/internal/handlers"
	"go_micro_learn/internal/middleware"
	"go_micro_learn/internal/model"
	"go_micro_learn/internal/repository"
	"go_micro_learn/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// 開発環境ではtintの色付きログを使う
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if config.Cfg.Database.AutoMigrate {
		slog.Info("Running auto-migration...")
		err := db.AutoMigrate(
			&model.User{},
			&model.Course{},
			&model.Topic{},
			&model.Note{},
			&model.LearningSession{},
			&model.MediaConversion{},
		)
		if err != nil {
			slog.Error("Auto-migration failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// 3. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	courseRepo := repository.NewGormCourseRepository()
	topicRepo := repository.NewGormTopicRepository()
	noteRepo := repository.NewGormNoteRepository()
	sessionRepo := repository.NewGormSessionRepository()
	conversionRepo := repository.NewGormConversionRepository()

	mailer := service.NewMailer(&config.Cfg)
	generator := service.NewOpenAIGenerator(&config.Cfg)

	authService := service.NewAuthService(db, userRepo, mailer, &config.Cfg)
	courseService := service.NewCourseService(db, courseRepo, topicRepo, generator, config.Cfg.Generation.NumberOfDays)
	topicService := service.NewTopicService(db, courseRepo, topicRepo)
	learningService := service.NewLearningService(db, topicRepo, conversionRepo, sessionRepo, generator)
	noteService := service.NewNoteService(db, noteRepo, topicRepo)

	authHandler := handlers.NewAuthHandler(authService)
	courseHandler := handlers.NewCourseHandler(courseService)
	topicHandler := handlers.NewTopicHandler(topicService)
	learningHandler := handlers.NewLearningHandler(learningService)
	noteHandler := handlers.NewNoteHandler(noteService)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes (require JWT) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/auth/me", authHandler.GetMe)

			r.Route("/courses", func(r chi.Router) {
				r.Post("/", courseHandler.CreateCourse)
				r.Get("/", courseHandler.ListCourses)
				r.Get("/active", courseHandler.GetActiveCourse)
				r.Get("/{courseID}", courseHandler.GetCourse)
			})

			r.Route("/topics", func(r chi.Router) {
				r.Get("/date/{date}", topicHandler.GetTopicsByDate)
				r.Get("/course/{courseID}", topicHandler.GetCourseTopics)
				r.Get("/{topicID}", topicHandler.GetTopic)
				r.Patch("/{topicID}/complete", topicHandler.CompleteTopic)
			})

			r.Route("/learning", func(r chi.Router) {
				r.Post("/chat/{topicID}", learningHandler.Chat)
				r.Post("/game/{topicID}", learningHandler.GetGame)
				r.Post("/audio/{topicID}", learningHandler.GetAudio)
				r.Post("/podcast/{topicID}", learningHandler.GetPodcast)
				r.Post("/video/{topicID}", learningHandler.GetVideo)
				r.Post("/comic/{topicID}", learningHandler.GetComic)
				r.Post("/custom/{topicID}", learningHandler.BuildCustom)
			})

			r.Route("/notes", func(r chi.Router) {
				r.Get("/topic/{topicID}", noteHandler.GetNoteByTopic)
				r.Post("/", noteHandler.CreateNote)
				r.Patch("/{noteID}", noteHandler.UpdateNote)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second, // コース作成はLLM呼び出しを含むため長め
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening",
			slog.String("app", config.AppName),
			slog.String("version", config.AppVersion),
			slog.String("port", config.Cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
