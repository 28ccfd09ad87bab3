// internal/config/database.go
package config

import (
	"fmt"
)

func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// S3Enabled reports whether uploads should go to S3 instead of the local fallback.
func (a *AWSConfig) S3Enabled() bool {
	return a.AccessKeyID != "" && a.SecretAccessKey != ""
}
