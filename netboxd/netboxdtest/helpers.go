package netboxdtest

import (
	"log"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// mockSQLiteVersion is what the stub connection reports when GORM probes
// the dialect. Bump it alongside the real sqlite dependency.
const mockSQLiteVersion = "3.45.1"

// NewMockDB returns a gorm.DB backed by a sqlmock connection, for use in
// entity package tests. The DSN only labels the connection in errors.
func NewMockDB(testDSN string) (*gorm.DB, sqlmock.Sqlmock) {
	testDB, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("error opening stub database connection: %s", err)
	}

	mock.ExpectQuery("select sqlite_version()").
		WillReturnRows(sqlmock.NewRows([]string{"sqlite_version()"}).AddRow(mockSQLiteVersion))

	gormDB, err := gorm.Open(
		&sqlite.Dialector{
			DSN:  testDSN,
			Conn: testDB,
		},
		&gorm.Config{
			DisableAutomaticPing: true,
		},
	)
	if err != nil {
		log.Fatalf("error opening gorm database: %s", err)
	}

	return gormDB, mock
}
