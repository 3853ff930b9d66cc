package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"momslove/config"
	"momslove/handlers"
	"momslove/logger"
	"momslove/mailer"
	"momslove/middleware"
	"momslove/repositories"
	"momslove/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	errEnv := godotenv.Load()

	log := logger.New()
	if errEnv != nil {
		log.Debug().Msg("no .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	storyRepo := repositories.NewStoryRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)
	preferenceRepo := repositories.NewPreferenceRepository(db)

	// Mail delivery
	templates := mailer.NewTemplateStore()
	var sender mailer.Sender
	if endpoint := os.Getenv("MAIL_API_URL"); endpoint != "" {
		sender = mailer.NewHTTPSender(endpoint, os.Getenv("MAIL_API_KEY"), os.Getenv("MAIL_FROM"))
	} else {
		log.Warn().Msg("MAIL_API_URL not set, newsletter deliveries stay in memory")
		sender = mailer.NewMemorySender()
	}

	// Initialize services
	authService := services.NewAuthService(userRepo)
	storyService := services.NewStoryService(storyRepo, articleRepo, nil)
	articleService := services.NewArticleService(articleRepo, categoryRepo, tagRepo, nil)
	taxonomyService := services.NewTaxonomyService(categoryRepo, tagRepo, articleRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo)
	newsletterService := services.NewNewsletterService(subscriberRepo, templates, sender, nil, log)
	preferenceService := services.NewPreferenceService(preferenceRepo, categoryRepo, articleRepo)
	seedService := services.NewSeedService(articleRepo, categoryRepo, tagRepo, nil, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	storyHandler := handlers.NewStoryHandler(storyService, log)
	articleHandler := handlers.NewArticleHandler(articleService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)
	commentHandler := handlers.NewCommentHandler(commentService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	seedHandler := handlers.NewSeedHandler(seedService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	limiter := middleware.NewRateLimiter(100, time.Minute)
	router.Use(limiter.Middleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/google", authHandler.GoogleLogin)
			auth.GET("/google/callback", authHandler.GoogleCallback)
		}

		// Public content
		api.GET("/home", preferenceHandler.HomeFeed)
		api.GET("/articles", articleHandler.GetPublicArticles)
		api.GET("/articles/recent", articleHandler.GetRecentArticles)
		api.GET("/articles/:slug", articleHandler.GetArticleBySlug)
		api.GET("/categories", taxonomyHandler.GetCategories)
		api.GET("/categories/:id", taxonomyHandler.GetCategory)
		api.GET("/categories/:id/articles", articleHandler.GetArticlesByCategory)
		api.GET("/tags", taxonomyHandler.GetTags)
		api.GET("/tags/:id", taxonomyHandler.GetTag)
		api.GET("/tags/:id/articles", articleHandler.GetArticlesByTag)
		api.GET("/comments/article/:id", commentHandler.ListComments)

		// Newsletter (public)
		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
		api.GET("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)

			// Stories
			stories := protected.Group("/stories")
			{
				stories.GET("", storyHandler.ListStories)
				stories.POST("", storyHandler.SubmitStory)
				stories.GET("/:id", storyHandler.GetStory)
				stories.POST("/:id/approve", storyHandler.ApproveStory)
				stories.POST("/:id/reject", storyHandler.RejectStory)
				stories.PATCH("/:id", storyHandler.ModerateStory)
				stories.POST("/:id/convert", storyHandler.ConvertStory)
			}

			// Comments
			protected.POST("/comments/article/:id", commentHandler.CreateComment)
			protected.PATCH("/comments/:id", commentHandler.UpdateComment)
			protected.DELETE("/comments/:id", commentHandler.DeleteComment)

			// Preferences
			protected.GET("/preferences", preferenceHandler.GetPreferences)
			protected.PUT("/preferences", preferenceHandler.UpdatePreferences)

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/articles", articleHandler.GetAdminArticles)
				admin.POST("/articles", articleHandler.CreateArticle)
				admin.PATCH("/articles/:id", articleHandler.UpdateArticle)
				admin.DELETE("/articles/:id", articleHandler.DeleteArticle)

				admin.POST("/categories", taxonomyHandler.CreateCategory)
				admin.PATCH("/categories/:id", taxonomyHandler.UpdateCategory)
				admin.DELETE("/categories/:id", taxonomyHandler.DeleteCategory)
				admin.POST("/tags", taxonomyHandler.CreateTag)

				admin.GET("/comments/article/:id", commentHandler.ListComments)
				admin.POST("/comments/:id/hide", commentHandler.HideComment)

				admin.GET("/newsletter/subscribers", newsletterHandler.ListSubscribers)
				admin.POST("/newsletter/send", newsletterHandler.Send)

				admin.POST("/migrate", seedHandler.Migrate)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
