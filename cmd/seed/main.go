package main

import (
	"log"
	"os"
	"strings"

	"castboard/internal/database"
	"castboard/internal/domain"
	"castboard/internal/modules/auth"
	"castboard/internal/pkg/timezone"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "castboard.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children before parents)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM email_logs")
	db.Exec("DELETE FROM saved_schedules")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM director_date_overrides")
	db.Exec("DELETE FROM director_weekly_availabilities")
	db.Exec("DELETE FROM directors")
	db.Exec("DELETE FROM voice_actors")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM studios")
	db.Exec("DELETE FROM staff")

	// ================== STAFF ==================
	log.Println("Creating staff...")
	hash, err := auth.HashPassword("coordinator123")
	if err != nil {
		log.Fatal(err)
	}
	staff := domain.Staff{
		Email:        "coordinator@castboard.io",
		Name:         "Session Coordinator",
		PasswordHash: hash,
	}
	db.Create(&staff)
	log.Println("Staff created: coordinator@castboard.io / coordinator123")

	// ================== STUDIOS & ROOMS ==================
	log.Println("Creating studios and rooms...")
	northside := domain.Studio{
		Name:        "Northside Recording",
		Address:     str("1244 Clark Dr, Vancouver"),
		AMStartTime: timezone.ToUTC(str("09:00")),
		AMEndTime:   timezone.ToUTC(str("17:30")),
		PMStartTime: timezone.ToUTC(str("17:30")),
		PMEndTime:   timezone.ToUTC(str("02:00")),
	}
	db.Create(&northside)

	harbor := domain.Studio{
		Name:    "Harbor Sound",
		Address: str("88 Water St, Vancouver"),
	}
	db.Create(&harbor)

	rooms := []domain.Room{
		{StudioID: northside.ID, Name: str("Booth A")},
		{StudioID: northside.ID, RoomNumber: str("2")},
		{StudioID: harbor.ID, Name: str("Live Room")},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== VOICE ACTORS ==================
	log.Println("Creating voice actors...")
	actors := []domain.VoiceActor{
		{Name: "Ana Reyes", Email: "ana@cast.example", Phone: str("604-555-0111"), Code: str("AR")},
		{Name: "Ben Okafor", Email: "ben@cast.example", Phone: str("604-555-0122"), Code: str("BO")},
		{Name: "Carla Duan", Email: "carla@cast.example", DietaryNotes: str("vegetarian")},
		{Name: "Dev Singh", Email: "dev@cast.example"},
	}
	for i := range actors {
		db.Create(&actors[i])
	}

	// ================== DIRECTORS ==================
	log.Println("Creating directors...")
	director := domain.Director{
		Name:  "Dana Ives",
		Email: str("dana@castboard.io"),
		Phone: str("604-555-0199"),
	}
	db.Create(&director)

	// Weekdays only, local 09:00-17:30 converted to UTC
	for weekday := 1; weekday <= 5; weekday++ {
		db.Create(&domain.DirectorWeeklyAvailability{
			DirectorID:  director.ID,
			DayOfWeek:   weekday,
			AMStartTime: timezone.ToUTC(str("09:00")),
			AMEndTime:   timezone.ToUTC(str("17:30")),
		})
	}

	// ================== BOOKINGS ==================
	log.Println("Creating a booking for today...")
	today := timezone.Today()
	booking := domain.Booking{
		RoomID:        rooms[0].ID,
		Date:          today,
		VoiceActorID:  actors[0].ID,
		VoiceActorID2: actors[1].ID,
		DirectorID:    director.ID,
		AMStartTime:   timezone.ToUTC(str("09:00")),
		AMEndTime:     timezone.ToUTC(str("17:30")),
	}
	db.Create(&booking)

	db.Create(&domain.SavedSchedule{
		Name:      "Kickoff day",
		Date:      today,
		CreatedBy: str(staff.Email),
	})

	// Optional hard guarantee against double-booking; Postgres only.
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Creating partial unique indexes on bookings...")
		db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_bookings_room_date_am
			ON bookings (room_id, date) WHERE am_start_time IS NOT NULL`)
		db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_bookings_room_date_pm
			ON bookings (room_id, date) WHERE pm_start_time IS NOT NULL`)
	}

	log.Println("Seed complete.")
}

func str(s string) *string { return &s }
