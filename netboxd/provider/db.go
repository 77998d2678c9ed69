package provider

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
	ProviderDB *gorm.DB
}

var Instance *Singleton

var once sync.Once

func GetProviderDB() *gorm.DB {
	noColorLogger := logger.New(
		log.New(os.Stdout, "ProviderDb: ", log.LstdFlags),
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

		providerDB, err := gorm.Open(
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

		sqlDB, err := providerDB.DB()
		if err != nil {
			slog.Error("failed to create sqlDB database", "err", err)
			panic("failed to create sqlDB database, err: " + err.Error())
		}

		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)

		Instance.ProviderDB = providerDB
	})

	return Instance.ProviderDB
}

func (p *Provider) BeforeCreate(_ *gorm.DB) error {
	if p == nil || p.Name == "" {
		return ErrProviderInvalidName
	}

	err := uuid.Validate(p.ID)
	if err != nil || len(p.ID) != 36 {
		p.ID = uuid.NewString()
	}

	return nil
}

func DBAutoMigrate() {
	db := GetProviderDB()

	err := db.AutoMigrate(&Provider{})
	if err != nil {
		slog.Error("failed to auto-migrate providers", "err", err)
		panic("failed to auto-migrate providers, err: " + err.Error())
	}
}
