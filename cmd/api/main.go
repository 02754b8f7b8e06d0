package main

import (
	"log"

	"castboard/internal/config"
	"castboard/internal/database"
	"castboard/internal/middleware"
	"castboard/internal/modules/auth"
	"castboard/internal/modules/catalog"
	"castboard/internal/modules/notification"
	"castboard/internal/modules/roster"
	"castboard/internal/modules/schedule"
	jwtsvc "castboard/internal/pkg/jwt"
	"castboard/internal/pkg/mailer"
	"castboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	studioRepo := repository.NewStudioRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	actorRepo := repository.NewVoiceActorRepository(db)
	directorRepo := repository.NewDirectorRepository(db)
	availabilityRepo := repository.NewDirectorAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	savedRepo := repository.NewSavedScheduleRepository(db)
	emailLogRepo := repository.NewEmailLogRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	smtp := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)

	hub := schedule.NewHub()
	defer hub.Close()

	authHandler := auth.NewHandler(auth.NewService(staffRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(studioRepo, roomRepo))
	rosterHandler := roster.NewHandler(roster.NewService(actorRepo, directorRepo, availabilityRepo))
	scheduleHandler := schedule.NewHandler(schedule.NewService(
		bookingRepo, studioRepo, roomRepo, actorRepo, directorRepo, savedRepo, hub,
	), hub)
	notificationHandler := notification.NewHandler(notification.NewService(
		smtp, bookingRepo, actorRepo, directorRepo, roomRepo, studioRepo, emailLogRepo,
	))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Authenticate(j))
		{
			catalogHandler.RegisterRoutes(protected)
			rosterHandler.RegisterRoutes(protected)
			scheduleHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
