package circuittype

import (
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/team-telnyx/netbox/netboxd/config"
)

type Singleton struct {
	CircuitTypeDB *gorm.DB
}

var Instance *Singleton

var once sync.Once

func GetCircuitTypeDB() *gorm.DB {
	noColorLogger := logger.New(
		log.New(os.Stdout, "CircuitTypeDb: ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  false,
		},
	)

	once.Do(func() {
		// allow override for testing
		if Instance != nil {
			return
		}

		Instance = &Singleton{}

		circuitTypeDB, err := gorm.Open(
			sqlite.Open(config.Config.DB.Path),
			&gorm.Config{
				Logger:      noColorLogger,
				PrepareStmt: true,
			},
		)
		if err != nil {
			slog.Error("failed to connect to database", "err", err)
			panic("failed to connect database, err: " + err.Error())
		}

		sqlDB, err := circuitTypeDB.DB()
		if err != nil {
			slog.Error("failed to create sqlDB database", "err", err)
			panic("failed to create sqlDB database, err: " + err.Error())
		}

		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)

		Instance.CircuitTypeDB = circuitTypeDB
	})

	return Instance.CircuitTypeDB
}

func (c *CircuitType) BeforeCreate(_ *gorm.DB) error {
	if c == nil || c.Name == "" {
		return ErrTypeInvalidName
	}

	err := uuid.Validate(c.ID)
	if err != nil || len(c.ID) != 36 {
		c.ID = uuid.NewString()
	}

	return nil
}

func DBAutoMigrate() {
	db := GetCircuitTypeDB()

	err := db.AutoMigrate(&CircuitType{})
	if err != nil {
		slog.Error("failed to auto-migrate circuit types", "err", err)
		panic("failed to auto-migrate circuit types, err: " + err.Error())
	}
}
