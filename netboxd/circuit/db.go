package circuit

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
	CircuitDB *gorm.DB
}

var Instance *Singleton

var once sync.Once

func GetCircuitDB() *gorm.DB {
	noColorLogger := logger.New(
		log.New(os.Stdout, "CircuitDb: ", log.LstdFlags),
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

		circuitDB, err := gorm.Open(
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

		sqlDB, err := circuitDB.DB()
		if err != nil {
			slog.Error("failed to create sqlDB database", "err", err)
			panic("failed to create sqlDB database, err: " + err.Error())
		}

		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)

		Instance.CircuitDB = circuitDB
	})

	return Instance.CircuitDB
}

func (c *Circuit) BeforeCreate(_ *gorm.DB) error {
	if c == nil || c.CID == "" {
		return ErrCircuitInvalidCID
	}

	err := uuid.Validate(c.ID)
	if err != nil || len(c.ID) != 36 {
		c.ID = uuid.NewString()
	}

	return nil
}

func (t *Termination) BeforeCreate(_ *gorm.DB) error {
	if t == nil || t.CircuitID == "" {
		return ErrCircuitIDEmpty
	}

	err := uuid.Validate(t.ID)
	if err != nil || len(t.ID) != 36 {
		t.ID = uuid.NewString()
	}

	return nil
}

func DBAutoMigrate() {
	db := GetCircuitDB()

	err := db.AutoMigrate(&Circuit{})
	if err != nil {
		slog.Error("failed to auto-migrate circuits", "err", err)
		panic("failed to auto-migrate circuits, err: " + err.Error())
	}

	err = db.AutoMigrate(&Termination{})
	if err != nil {
		slog.Error("failed to auto-migrate terminations", "err", err)
		panic("failed to auto-migrate terminations, err: " + err.Error())
	}
}
