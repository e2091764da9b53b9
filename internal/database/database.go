package database

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"dealershub/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{TranslateError: true},
	)
}

// Migrate creates/updates the schema for every aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Lead{},
		&domain.Quotation{},
		&domain.Booking{},
		&domain.Delivery{},
		&domain.Appointment{},
		&domain.JobCard{},
		&domain.SparePart{},
		&domain.ServiceHistory{},
		&domain.Employee{},
		&domain.Payroll{},
		&domain.LeaveRequest{},
		&domain.Attendance{},
		&domain.Notification{},
		&domain.ActivityLog{},
		&domain.Invitation{},
	)
}
