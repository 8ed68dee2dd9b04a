package config

import (
	"fmt"
	stdlog "log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// resolveDialector picks the database backend from DATABASE_URL: a mysql://
// URL selects MySQL, anything else is treated as a sqlite file path. The
// default is a single hotel.db file next to the binary.
func resolveDialector() (gorm.Dialector, error) {
	raw := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if strings.HasPrefix(raw, "mysql://") {
		dsn, err := mysqlDSNFromURL(raw)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	}
	if raw == "" {
		raw = envOrDefault("DB_PATH", "hotel.db")
	}
	return sqlite.Open(raw), nil
}

// migrateLegacyBookings renames an old-layout bookings table (id/check_in
// columns) out of the way and copies its rows into the current layout.
// Best-effort: a failure is logged and startup continues.
func migrateLegacyBookings(db *gorm.DB) {
	m := db.Migrator()
	if !m.HasTable("bookings") {
		return
	}
	if m.HasColumn(&models.Booking{}, "booking_id") {
		return
	}
	legacy := m.HasColumn(&models.Booking{}, "id") ||
		m.HasColumn(&models.Booking{}, "check_in")
	if !legacy {
		return
	}

	if err := db.Exec("ALTER TABLE bookings RENAME TO bookings_old").Error; err != nil {
		log.Warn().Err(err).Msg("legacy bookings rename failed, skipping migration")
		return
	}
	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		log.Warn().Err(err).Msg("legacy bookings recreate failed")
		return
	}
	copyStmt := `INSERT INTO bookings (booking_id, checkin_date, checkout_date, room_id, created_at)
		SELECT id, check_in, check_out, room_id, created_at FROM bookings_old`
	if err := db.Exec(copyStmt).Error; err != nil {
		log.Warn().Err(err).Msg("legacy bookings copy failed")
	}
	if err := db.Exec("DROP TABLE IF EXISTS bookings_old").Error; err != nil {
		log.Warn().Err(err).Msg("legacy bookings cleanup failed")
	}
	log.Info().Msg("migrated legacy bookings table")
}

// AutoMigrateAll creates or updates every table. Foreign keys are declared on
// the models but never created as constraints, so deletes leave dangling
// references instead of cascading or failing.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserPhone{},
		&models.RoomType{},
		&models.RoomUnit{},
		&models.Booking{},
		&models.BelongTo{},
		&models.Employee{},
		&models.HiredAs{},
		&models.Service{},
		&models.Invoice{},
		&models.Guest{},
	)
}

func SeedDatabase(db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			log.Warn().Err(err).Msg("failed to hash default admin password")
		} else {
			admin := models.User{
				Username:  "admin",
				Password:  string(hash),
				UserName:  "Administrator",
				Email:     "admin@example.com",
				IsAdmin:   true,
				AdminType: "super",
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Warn().Err(err).Msg("failed to create default admin")
			} else {
				log.Info().Msg("default admin seeded")
			}
		}
	}

	var roomCount int64
	db.Model(&models.RoomType{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.RoomType{
			{Name: "Super wiz Room", Description: "Spacious room with a king-size bed and city view.", Price: 150, Image: "/static/images/abc.jpg"},
			{Name: "Executive Suite", Description: "Luxury suite with separate living area and panoramic views.", Price: 250, Image: "https://cdn.pixabay.com/photo/2020/10/18/09/16/bedroom-5664221_1280.jpg"},
			{Name: "Family Room", Description: "Perfect for families with two queen beds and extra space.", Price: 200, Image: "https://cdn.pixabay.com/photo/2018/02/24/17/17/window-3178666_1280.jpg"},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Warn().Err(err).Msg("failed to seed room catalog")
		} else {
			log.Info().Msg("room catalog seeded")
		}
	}
}

func ConnectDatabase() error {
	dialector, err := resolveDialector()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		// No FK constraints at the engine level: hard deletes must succeed
		// even when references would dangle.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return err
	}

	migrateLegacyBookings(db)

	DB = db
	if err := AutoMigrateAll(db); err != nil {
		return err
	}

	SeedDatabase(db)
	return nil
}
