package provider

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/gorm"

	"github.com/team-telnyx/netbox/netboxd/netboxdtest"
)

func TestGetBySlug(t *testing.T) {
	createUpdateTime := time.Now()

	type args struct {
		slug string
	}

	tests := []struct {
		name        string
		args        args
		mockClosure func(testDB *gorm.DB, mock sqlmock.Sqlmock)
		want        *Provider
		wantErr     bool
	}{
		{
			name: "Success",
			mockClosure: func(testDB *gorm.DB, mock sqlmock.Sqlmock) {
				Instance = &Singleton{ // prevents parallel testing
					ProviderDB: testDB,
				}
				mock.ExpectQuery(
					regexp.QuoteMeta(
						"SELECT * FROM `providers` WHERE slug = ? AND `providers`.`deleted_at` IS NULL LIMIT 1",
					),
				).
					WithArgs("ntt").
					WillReturnRows(sqlmock.NewRows([]string{
						"id",
						"created_at",
						"updated_at",
						"deleted_at",
						"name",
						"slug",
						"asn",
						"account",
						"portal_url",
						"noc_contact",
						"admin_contact",
						"comments",
					}).AddRow(
						"07c7eba8-6e2a-4eeb-9e1a-059e8b8f8466",
						createUpdateTime,
						createUpdateTime,
						nil,
						"NTT Communications",
						"ntt",
						2914,
						"ACCT-1001",
						"https://portal.ntt.net",
						"noc@ntt.net",
						"admin@ntt.net",
						"",
					))
			},
			args: args{slug: "ntt"},
			want: &Provider{
				Model: gorm.Model{
					ID:        0,
					CreatedAt: createUpdateTime,
					UpdatedAt: createUpdateTime,
					DeletedAt: gorm.DeletedAt{},
				},
				ID:           "07c7eba8-6e2a-4eeb-9e1a-059e8b8f8466",
				Name:         "NTT Communications",
				Slug:         "ntt",
				ASN:          2914,
				Account:      "ACCT-1001",
				PortalURL:    "https://portal.ntt.net",
				NocContact:   "noc@ntt.net",
				AdminContact: "admin@ntt.net",
				Comments:     "",
			},
			wantErr: false,
		},
		{
			name: "NotFound",
			mockClosure: func(testDB *gorm.DB, mock sqlmock.Sqlmock) {
				Instance = &Singleton{ // prevents parallel testing
					ProviderDB: testDB,
				}
				mock.ExpectQuery(
					regexp.QuoteMeta(
						"SELECT * FROM `providers` WHERE slug = ? AND `providers`.`deleted_at` IS NULL LIMIT 1",
					),
				).
					WithArgs("nosuch").
					WillReturnRows(sqlmock.NewRows([]string{
						"id",
						"created_at",
						"updated_at",
						"deleted_at",
						"name",
						"slug",
						"asn",
						"account",
						"portal_url",
						"noc_contact",
						"admin_contact",
						"comments",
					}))
			},
			args:    args{slug: "nosuch"},
			want:    nil,
			wantErr: true,
		},
		{
			name: "Error",
			mockClosure: func(testDB *gorm.DB, mock sqlmock.Sqlmock) {
				Instance = &Singleton{ // prevents parallel testing
					ProviderDB: testDB,
				}
				mock.ExpectQuery(
					regexp.QuoteMeta(
						"SELECT * FROM `providers` WHERE slug = ? AND `providers`.`deleted_at` IS NULL LIMIT 1",
					),
				).
					WithArgs("ntt").
					WillReturnError(gorm.ErrInvalidField) // does not matter what error is returned
			},
			args:    args{slug: "ntt"},
			want:    nil,
			wantErr: true,
		},
		{
			name: "EmptySlug",
			mockClosure: func(testDB *gorm.DB, _ sqlmock.Sqlmock) {
				Instance = &Singleton{ // prevents parallel testing
					ProviderDB: testDB,
				}
			},
			args:    args{slug: ""},
			want:    nil,
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase // shadow to avoid loop variable capture
		t.Run(testCase.name, func(t *testing.T) {
			testDB, mock := netboxdtest.NewMockDB("providerTest")
			testCase.mockClosure(testDB, mock)

			got, err := GetBySlug(testCase.args.slug)
			if (err != nil) != testCase.wantErr {
				t.Errorf("GetBySlug() error = %v, wantErr %v", err, testCase.wantErr)

				return
			}

			mock.ExpectClose()

			db, err := testDB.DB()
			if err != nil {
				t.Error(err)
			}

			if err = db.Close(); err != nil {
				t.Error(err)
			}

			if err = mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}

			if !reflect.DeepEqual(got, testCase.want) {
				t.Errorf("GetBySlug() got = %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestProvider_Save(t *testing.T) {
	type providerFields struct {
		ID           string
		Name         string
		Slug         string
		ASN          uint32
		Account      string
		PortalURL    string
		NocContact   string
		AdminContact string
		Comments     string
	}

	tests := []struct {
		name         string
		mockClosure  func(testDB *gorm.DB, mock sqlmock.Sqlmock)
		testProvider providerFields
		wantErr      bool
	}{
		{
			name: "Success",
			mockClosure: func(testDB *gorm.DB, mock sqlmock.Sqlmock) {
				Instance = &Singleton{ // prevents parallel testing
					ProviderDB: testDB,
				}
				mock.ExpectBegin()
				mock.ExpectExec(
					regexp.QuoteMeta(
						"UPDATE `providers` SET `account`=?,`admin_contact`=?,`asn`=?,`comments`=?,`name`=?,`noc_contact`=?,`portal_url`=?,`slug`=?,`updated_at`=? WHERE `providers`.`deleted_at` IS NULL AND `id` = ?", //nolint:lll
					),
				).
					WithArgs(
						"ACCT-1001",
						"admin@ntt.net",
						2914,
						"",
						"NTT Communications",
						"noc@ntt.net",
						"https://portal.ntt.net",
						"ntt",
						sqlmock.AnyArg(),
						sqlmock.AnyArg(),
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			testProvider: providerFields{
				ID:           "07c7eba8-6e2a-4eeb-9e1a-059e8b8f8466",
				Name:         "NTT Communications",
				Slug:         "ntt",
				ASN:          2914,
				Account:      "ACCT-1001",
				PortalURL:    "https://portal.ntt.net",
				NocContact:   "noc@ntt.net",
				AdminContact: "admin@ntt.net",
			},
			wantErr: false,
		},
		{
			name: "Error",
			mockClosure: func(testDB *gorm.DB, mock sqlmock.Sqlmock) {
				Instance = &Singleton{ // prevents parallel testing
					ProviderDB: testDB,
				}
				mock.ExpectBegin()
				mock.ExpectExec(
					regexp.QuoteMeta(
						"UPDATE `providers` SET `account`=?,`admin_contact`=?,`asn`=?,`comments`=?,`name`=?,`noc_contact`=?,`portal_url`=?,`slug`=?,`updated_at`=? WHERE `providers`.`deleted_at` IS NULL AND `id` = ?", //nolint:lll
					),
				).
					WillReturnError(gorm.ErrInvalidField) // does not matter what error is returned
				mock.ExpectRollback()
			},
			testProvider: providerFields{
				ID:   "07c7eba8-6e2a-4eeb-9e1a-059e8b8f8466",
				Name: "NTT Communications",
				Slug: "ntt",
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			testDB, mock := netboxdtest.NewMockDB("providerTest")
			testCase.mockClosure(testDB, mock)

			testProvider := &Provider{
				ID:           testCase.testProvider.ID,
				Name:         testCase.testProvider.Name,
				Slug:         testCase.testProvider.Slug,
				ASN:          testCase.testProvider.ASN,
				Account:      testCase.testProvider.Account,
				PortalURL:    testCase.testProvider.PortalURL,
				NocContact:   testCase.testProvider.NocContact,
				AdminContact: testCase.testProvider.AdminContact,
				Comments:     testCase.testProvider.Comments,
			}

			err := testProvider.Save()
			if (err != nil) != testCase.wantErr {
				t.Errorf("Save() error = %v, wantErr %v", err, testCase.wantErr)
			}

			mock.ExpectClose()

			db, err := testDB.DB()
			if err != nil {
				t.Error(err)
			}

			err = db.Close()
			if err != nil {
				t.Error(err)
			}

			err = mock.ExpectationsWereMet()
			if err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	createUpdateTime := time.Now()

	type args struct {
		providerID   string
		circuitCount int64
	}

	tests := []struct {
		name        string
		args        args
		mockClosure func(testDB *gorm.DB, mock sqlmock.Sqlmock)
		wantErr     bool
	}{
		{
			name: "Success",
			mockClosure: func(testDB *gorm.DB, mock sqlmock.Sqlmock) {
				Instance = &Singleton{ // prevents parallel testing
					ProviderDB: testDB,
				}
				mock.ExpectQuery(
					regexp.QuoteMeta(
						"SELECT * FROM `providers` WHERE id = ? AND `providers`.`deleted_at` IS NULL LIMIT 1",
					),
				).
					WithArgs("07c7eba8-6e2a-4eeb-9e1a-059e8b8f8466").
					WillReturnRows(sqlmock.NewRows([]string{
						"id",
						"created_at",
						"updated_at",
						"deleted_at",
						"name",
						"slug",
						"asn",
						"account",
						"portal_url",
						"noc_contact",
						"admin_contact",
						"comments",
					}).AddRow(
						"07c7eba8-6e2a-4eeb-9e1a-059e8b8f8466",
						createUpdateTime,
						createUpdateTime,
						nil,
						"NTT Communications",
						"ntt",
						2914,
						"",
						"",
						"",
						"",
						"",
					))
				mock.ExpectBegin()
				mock.ExpectExec(
					regexp.QuoteMeta(
						"DELETE FROM `providers` WHERE `providers`.`id` = ?",
					),
				).
					WithArgs("07c7eba8-6e2a-4eeb-9e1a-059e8b8f8466").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			args: args{
				providerID:   "07c7eba8-6e2a-4eeb-9e1a-059e8b8f8466",
				circuitCount: 0,
			},
			wantErr: false,
		},
		{
			name: "InUse",
			mockClosure: func(testDB *gorm.DB, _ sqlmock.Sqlmock) {
				Instance = &Singleton{ // prevents parallel testing
					ProviderDB: testDB,
				}
			},
			args: args{
				providerID:   "07c7eba8-6e2a-4eeb-9e1a-059e8b8f8466",
				circuitCount: 3,
			},
			wantErr: true,
		},
		{
			name: "EmptyID",
			mockClosure: func(testDB *gorm.DB, _ sqlmock.Sqlmock) {
				Instance = &Singleton{ // prevents parallel testing
					ProviderDB: testDB,
				}
			},
			args: args{
				providerID:   "",
				circuitCount: 0,
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			testDB, mock := netboxdtest.NewMockDB("providerTest")
			testCase.mockClosure(testDB, mock)

			err := Delete(testCase.args.providerID, testCase.args.circuitCount)
			if (err != nil) != testCase.wantErr {
				t.Errorf("Delete() error = %v, wantErr %v", err, testCase.wantErr)
			}

			mock.ExpectClose()

			db, err := testDB.DB()
			if err != nil {
				t.Error(err)
			}

			if err = db.Close(); err != nil {
				t.Error(err)
			}

			if err = mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}
