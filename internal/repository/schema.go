package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

var schema = []struct {
	table string
	ddl   string
}{
	{
		table: "users",
		ddl: `CREATE TABLE IF NOT EXISTS users (
			id            BIGINT       NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name          VARCHAR(255) NOT NULL,
			lastname      VARCHAR(255) NOT NULL DEFAULT '',
			email         VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			location      VARCHAR(255) NOT NULL DEFAULT 'India',
			created_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		table: "jobs",
		ddl: `CREATE TABLE IF NOT EXISTS jobs (
			id            BIGINT       NOT NULL AUTO_INCREMENT PRIMARY KEY,
			company       VARCHAR(255) NOT NULL,
			position      VARCHAR(100) NOT NULL,
			status        VARCHAR(32)  NOT NULL DEFAULT 'Pending',
			work_type     VARCHAR(32)  NOT NULL DEFAULT 'Full-Time',
			work_location VARCHAR(255) NOT NULL DEFAULT 'Mumbai',
			created_by    BIGINT       NOT NULL,
			created_at    TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
			updated_at    TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
			KEY idx_jobs_owner_status (created_by, status),
			KEY idx_jobs_owner_created (created_by, created_at),
			CONSTRAINT fk_jobs_owner FOREIGN KEY (created_by) REFERENCES users (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
}

// EnsureSchema creates the tables the service needs if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("creating %s table: %w", s.table, err)
		}
		slog.Debug("table ready", "table", s.table)
	}
	return nil
}
