package mysql

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
        id          BIGINT AUTO_INCREMENT PRIMARY KEY,
        name        VARCHAR(255) NOT NULL,
        description TEXT NOT NULL,
        price       DOUBLE NOT NULL DEFAULT 0,
        category    VARCHAR(100) NOT NULL DEFAULT '',
        image_path  VARCHAR(500) NOT NULL DEFAULT '',
        featured    BOOLEAN NOT NULL DEFAULT FALSE,
        created_at  DATETIME NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS about (
        id           BIGINT AUTO_INCREMENT PRIMARY KEY,
        title        VARCHAR(255) NOT NULL DEFAULT '',
        content      MEDIUMTEXT NOT NULL,
        last_updated DATETIME NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS contact (
        id            BIGINT AUTO_INCREMENT PRIMARY KEY,
        email         VARCHAR(255) NOT NULL DEFAULT '',
        phone         VARCHAR(50) NOT NULL DEFAULT '',
        address       TEXT NOT NULL,
        whatsapp_link VARCHAR(255) NOT NULL DEFAULT '',
        last_updated  DATETIME NOT NULL
    )`,
}

// Migrate creates the tables on startup when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
