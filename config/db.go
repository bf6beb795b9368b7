package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	gormigrate "github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salas-backend/models"
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

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
}

// resolveDialector picks the backend: MySQL when a server URL is
// configured, otherwise the local SQLite file (default rooms.db).
func resolveDialector() (gorm.Dialector, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			dsn, err := mysqlDSNFromURL(raw)
			if err != nil {
				return nil, err
			}
			return mysql.Open(dsn), nil
		}
		return mysql.Open(raw), nil
	}

	if host := strings.TrimSpace(os.Getenv("DB_HOST")); host != "" {
		user := envOrDefault("DB_USER", "root")
		pass := envOrDefault("DB_PASS", "")
		port := envOrDefault("DB_PORT", "3306")
		dbName := envOrDefault("DB_NAME", "salas_db")

		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, dbName,
		)
		return mysql.Open(dsn), nil
	}

	return sqlite.Open(envOrDefault("SQLITE_PATH", "rooms.db")), nil
}

// Schema snapshots used by the migration steps. These are frozen copies
// of what each migration created, so later model changes don't rewrite
// history.
type roomNameV1 struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null;type:varchar(255)"`
}

func (roomNameV1) TableName() string { return "room_names" }

type roomV1 struct {
	ID         uint       `gorm:"primaryKey"`
	RoomNameID uint       `gorm:"column:room_name_id;not null"`
	Days       string     `gorm:"not null;type:varchar(100)"`
	Shift      string     `gorm:"not null;type:varchar(20)"`
	Status     string     `gorm:"not null;default:closed;type:varchar(10)"`
	RoomName   roomNameV1 `gorm:"foreignKey:RoomNameID"`
}

func (roomV1) TableName() string { return "rooms" }

type roomV2 struct {
	roomV1
	Unidade    *string `gorm:"type:varchar(255)"`
	Curso      *string `gorm:"type:varchar(255)"`
	Periodo    *string `gorm:"type:varchar(255)"`
	Disciplina *string `gorm:"type:varchar(255)"`
	Docente    *string `gorm:"type:varchar(255)"`
}

func (roomV2) TableName() string { return "rooms" }

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202411150001_create_room_names",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&roomNameV1{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("room_names")
			},
		},
		{
			ID: "202411150002_create_rooms",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&roomV1{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("rooms")
			},
		},
		{
			// The schedule metadata columns arrived later; AutoMigrate
			// against the V2 snapshot adds them to pre-existing files.
			ID: "202412010003_add_room_metadata",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&roomV2{})
			},
			Rollback: func(tx *gorm.DB) error {
				for _, col := range []string{"unidade", "curso", "periodo", "disciplina", "docente"} {
					if err := tx.Migrator().DropColumn(&roomV2{}, col); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

// Migrate runs the ordered, recorded migration steps. Safe to run on
// every start and on a populated file created under an older schema.
func Migrate(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).Migrate()
}

// SeedDemoData inserts a small demo schedule when the tables are empty.
// Only used when SEED_DEMO_DATA is set; production data comes in through
// the API.
func SeedDemoData(db *gorm.DB) {
	var nameCount int64
	db.Model(&models.RoomName{}).Count(&nameCount)
	if nameCount > 0 {
		log.Println("Room names already present, skipping seed")
		return
	}

	names := []models.RoomName{
		{Name: "Laboratório 1"},
		{Name: "Laboratório 2"},
		{Name: "Auditório"},
	}
	if err := db.Create(&names).Error; err != nil {
		log.Printf("warning: failed to seed room names: %v", err)
		return
	}

	rooms := []models.Room{
		{RoomNameID: names[0].ID, Days: "Segunda", Shift: models.ShiftMatutino, Status: models.StatusClosed},
		{RoomNameID: names[1].ID, Days: "Terça", Shift: models.ShiftVespertino, Status: models.StatusClosed},
		{RoomNameID: names[2].ID, Days: "Sexta", Shift: models.ShiftNoturno, Status: models.StatusClosed},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Demo schedule seeded")
}

func ConnectDatabase() error {
	dialector, err := resolveDialector()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	if os.Getenv("SEED_DEMO_DATA") != "" {
		SeedDemoData(DB)
	}
	return nil
}
