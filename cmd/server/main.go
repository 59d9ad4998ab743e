package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/adamn1225/nextnoetics-gorm-sub000/configs"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/api/handlers"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/api/middleware"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/cache"
	job "github.com/adamn1225/nextnoetics-gorm-sub000/internal/jobs"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/publisher"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/queue"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.OrganizationMember{},
		&models.SMMCalendarEvent{},
		&models.UserToken{},
		&models.DispatchAttempt{},
		&models.Task{},
		&models.FileAsset{},
		&models.BlogPost{},
		&models.ProjectIntake{},
		&models.Notification{},
		&models.AnalyticsSetting{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	redisCache := cache.New(cfg.RedisURI)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	tokenRepo := repository.NewUserTokenRepository(db)
	attemptRepo := repository.NewDispatchAttemptRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	fileRepo := repository.NewFileRepository(db)
	blogRepo := repository.NewBlogPostRepository(db)
	intakeRepo := repository.NewIntakeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo)
	calendarService := service.NewCalendarService(calendarRepo)
	tokenService := service.NewTokenService(*cfg, tokenRepo)
	r2Service := service.NewR2Service(*cfg)
	fileService := service.NewFileService(fileRepo, r2Service)
	taskService := service.NewTaskService(taskRepo, orgRepo, notificationRepo)
	orgService := service.NewOrganizationService(orgRepo)
	blogService := service.NewBlogService(blogRepo, orgRepo)
	intakeService := service.NewIntakeService(intakeRepo, userRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	analyticsService := service.NewAnalyticsService(*cfg, analyticsRepo, orgRepo, redisCache)

	registry := publisher.NewRegistry(
		publisher.NewTwitterPublisher(nil),
		publisher.NewFacebookPublisher(nil),
		publisher.NewLinkedinPublisher(nil),
	)
	dispatchJob := job.NewDispatchJob(calendarRepo, tokenRepo, attemptRepo, registry, cfg.SecretKey)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)
	adminMiddleware := middleware.NewAdminMiddleware(userService)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Post("/signup", auth.Signup)
	app.Post("/login", auth.Login)
	app.Get("/login/google", auth.GoogleLogin)
	app.Get("/login/google/callback", auth.GoogleCallback)

	intake := handlers.NewIntakeHandler(intakeService)
	app.Post("/intake", intake.SubmitIntake)

	blog := handlers.NewBlogHandler(blogService)
	app.Get("/blog/:slug", blog.GetPublishedPost)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	api.Post("/logout", auth.Logout)

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)
	api.Post("/user/remove", user.DeleteAccount)

	calendar := handlers.NewCalendarHandler(calendarService, client)
	api.Post("/calendar/create", calendar.CreateEvent)
	api.Post("/calendar/update", calendar.UpdateEvent)
	api.Get("/calendar", calendar.ListEvents)
	api.Post("/calendar/remove", calendar.RemoveEvent)

	token := handlers.NewTokenHandler(tokenService)
	api.Post("/tokens/save", token.SaveToken)
	api.Get("/tokens", token.ListTokens)
	api.Post("/tokens/remove", token.RemoveToken)

	task := handlers.NewTaskHandler(taskService)
	api.Post("/tasks/create", task.CreateTask)
	api.Get("/tasks", task.ListTasks)
	api.Post("/tasks/status", task.UpdateTaskStatus)
	api.Post("/tasks/remove", task.RemoveTask)

	file := handlers.NewFileHandler(fileService)
	api.Post("/files/upload", file.UploadFile)
	api.Get("/files", file.ListFiles)
	api.Post("/files/remove", file.RemoveFile)

	org := handlers.NewOrganizationHandler(orgService)
	api.Post("/orgs/create", org.CreateOrganization)
	api.Get("/orgs", org.ListOrganizations)
	api.Post("/orgs/members/add", org.AddMember)
	api.Post("/orgs/members/remove", org.RemoveMember)
	api.Get("/orgs/members", org.ListMembers)

	api.Post("/blog/create", blog.CreatePost)
	api.Post("/blog/update", blog.UpdatePost)
	api.Get("/blog", blog.ListPosts)
	api.Post("/blog/remove", blog.RemovePost)

	notification := handlers.NewNotificationHandler(notificationService)
	api.Get("/notifications", notification.ListNotifications)
	api.Post("/notifications/read", notification.MarkRead)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics", analytics.GetSettings)
	api.Post("/analytics/update", analytics.UpdateSettings)

	admin := api.Group("/admin")
	admin.Use(adminMiddleware.AdminMiddleware())

	adminH := handlers.NewAdminHandler(userService, orgService, intakeService, calendarService, dispatchJob)
	admin.Get("/clients", adminH.ListClients)
	admin.Get("/orgs", adminH.ListOrganizations)
	admin.Get("/intakes", adminH.ListIntakes)
	admin.Get("/calendar", adminH.ListOrgCalendar)
	admin.Post("/dispatch", adminH.DispatchDuePosts)

	//queue
	queueW := queue.NewQueue(dispatchJob)

	c := cron.New()
	c.AddFunc("@every 01h00m00s", dispatchJob.Run)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeDispatchEvent, queueW.HandleDispatchEventTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func closeDB(db *gorm.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	sqlDB, err := db.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get database handle: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *gorm.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
