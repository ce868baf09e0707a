package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds a PostgreSQL connection string for the central server registry
// database. Timestamps are always handled in UTC.
func DSN(host, port string, creds Credentials) string {
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=disable TimeZone=UTC",
		host,
		port,
		creds.Database,
		creds.Username,
		creds.Password,
	)
}

func Dialect(host, port string, creds Credentials) gorm.Dialector {
	return postgres.Open(DSN(host, port, creds))
}
