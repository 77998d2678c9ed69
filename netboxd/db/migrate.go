package db

import (
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/team-telnyx/netbox/netboxd/circuit"
	"github.com/team-telnyx/netbox/netboxd/circuittype"
	"github.com/team-telnyx/netbox/netboxd/config"
	"github.com/team-telnyx/netbox/netboxd/provider"
	"github.com/team-telnyx/netbox/netboxd/util"
)

type meta struct {
	ID            uint   `gorm:"primarykey"`
	SchemaVersion uint32 `gorm:"not null"`
}

type singleton struct {
	metaDB *gorm.DB
}

var instance *singleton

var once sync.Once

func getMetaDB() *gorm.DB {
	noColorLogger := logger.New(
		log.New(os.Stdout, "MetaDb: ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  false,
		},
	)

	once.Do(func() {
		instance = &singleton{}

		metaDB, err := gorm.Open(
			sqlite.Open(config.Config.DB.Path),
			&gorm.Config{
				Logger:      noColorLogger,
				PrepareStmt: true,
			},
		)
		if err != nil {
			slog.Error("failed to connect database", "err", err)
			panic("failed to connect database, err: " + err.Error())
		}

		sqlDB, err := metaDB.DB()
		if err != nil {
			slog.Error("failed to create sqlDB database", "err", err)
			panic("failed to create sqlDB database, err: " + err.Error())
		}

		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)

		instance.metaDB = metaDB
	})

	return instance.metaDB
}

func AutoMigrate() {
	db := getMetaDB()

	err := db.AutoMigrate(&meta{})
	if err != nil {
		slog.Error("failed to auto-migrate meta", "err", err)
		panic("failed to auto-migrate meta, err: " + err.Error())
	}

	provider.DBAutoMigrate()
	circuittype.DBAutoMigrate()
	circuit.DBAutoMigrate()
}

func getSchemaVersion() uint32 {
	metaDB := getMetaDB()

	var m meta

	metaDB.Find(&m)

	return m.SchemaVersion
}

func setSchemaVersion(schemaVersion uint32) {
	metaDB := getMetaDB()

	var metaData meta
	metaData.ID = 1 // always!

	var res *gorm.DB

	res = metaDB.Delete(&metaData)
	if res.Error != nil {
		slog.Error("error saving schema_version", "err", res.Error)
		panic(res.Error)
	}

	metaData.SchemaVersion = schemaVersion

	res = metaDB.Create(&metaData)
	if res.Error != nil {
		slog.Error("error saving schema_version", "err", res.Error)
		panic(res.Error)
	}
}

func CustomMigrate() {
	slog.Debug("starting custom migration")

	providerDB := provider.GetProviderDB()
	circuitDB := circuit.GetCircuitDB()

	schemaVersion := getSchemaVersion()

	// 2025071501 - backfill provider slugs for rows created before slugs were required
	migration2025071501(schemaVersion, providerDB)

	// 2025081201 - uppercase term_side values written by the old importer
	migration2025081201(schemaVersion, circuitDB)

	slog.Debug("finished custom migration")
}

func migration2025071501(schemaVersion uint32, providerDB *gorm.DB) {
	if schemaVersion < 2025071501 {
		if providerDB.Migrator().HasColumn(&provider.Provider{}, "slug") {
			type Result struct {
				ID   string
				Name string
			}

			var result []Result

			res := providerDB.Raw("SELECT id, name FROM providers WHERE deleted_at IS NULL AND slug = \"\"").Scan(&result)
			if res.Error != nil {
				slog.Error("migration failed", "error", res.Error)
				panic(res.Error)
			}

			for _, val := range result {
				slog.Debug("backfilling provider slug", "provider", val.ID)

				res = providerDB.Exec("UPDATE providers SET slug = ? WHERE id = ?", util.Slugify(val.Name), val.ID)
				if res.Error != nil {
					slog.Error("migration failed", "error", res.Error)
					panic(res.Error)
				}
			}
		}

		setSchemaVersion(2025071501)
	}
}

func migration2025081201(schemaVersion uint32, circuitDB *gorm.DB) {
	if schemaVersion < 2025081201 {
		if circuitDB.Migrator().HasTable("terminations") {
			res := circuitDB.Exec("UPDATE terminations SET term_side = upper(term_side) WHERE term_side IN (\"a\", \"z\")")
			if res.Error != nil {
				slog.Error("migration failed", "error", res.Error)
				panic(res.Error)
			}
		}

		setSchemaVersion(2025081201)
	}
}
