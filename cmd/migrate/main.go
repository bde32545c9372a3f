package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"notekeeper-be/internal/config"
	"notekeeper-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

// Applies the paired up/down SQL scripts under scripts/migrations, tracking
// progress in a schema_migrations table. Every script must have a
// counterpart in the other direction.

type migration struct {
	version string
	upPath  string
	dnPath  string
}

func main() {
	direction := flag.String("direction", "up", "up or down")
	steps := flag.Int("steps", 0, "number of down migrations to revert (0 = 1)")
	dir := flag.String("dir", "scripts/migrations", "migrations directory")
	flag.Parse()

	cfg := config.Load()

	var (
		db  *gorm.DB
		err error
	)
	if cfg.Database.Connection != "" {
		db, err = database.NewGormDBFromDSN(cfg.Database.Connection)
	} else {
		db, err = database.NewGormDB(database.GormConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
	}
	if err != nil {
		log.Fatalf("Error: failed to connect to database: %v", err)
	}

	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`).Error; err != nil {
		log.Fatalf("Error: failed to ensure schema_migrations: %v", err)
	}

	migrations, err := loadMigrations(*dir)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		log.Fatalf("Error: failed to read applied versions: %v", err)
	}

	switch *direction {
	case "up":
		runUp(db, migrations, applied)
	case "down":
		n := *steps
		if n <= 0 {
			n = 1
		}
		runDown(db, migrations, applied, n)
	default:
		log.Fatalf("Error: unknown direction %q", *direction)
	}
}

func loadMigrations(dir string) ([]migration, error) {
	ups, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(ups)

	migrations := make([]migration, 0, len(ups))
	for _, up := range ups {
		version := strings.TrimSuffix(filepath.Base(up), ".up.sql")
		dn := filepath.Join(dir, version+".down.sql")
		if _, err := os.Stat(dn); err != nil {
			return nil, fmt.Errorf("migration %s has no down script", version)
		}
		migrations = append(migrations, migration{version: version, upPath: up, dnPath: dn})
	}
	return migrations, nil
}

func appliedVersions(db *gorm.DB) (map[string]bool, error) {
	var versions []string
	if err := db.Table("schema_migrations").Order("version").Pluck("version", &versions).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

func runUp(db *gorm.DB, migrations []migration, applied map[string]bool) {
	ran := 0
	for _, m := range migrations {
		if applied[m.version] {
			continue
		}
		if err := apply(db, m.upPath, func(tx *gorm.DB) error {
			return tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.version).Error
		}); err != nil {
			color.Red("FAIL %s: %v", m.version, err)
			os.Exit(1)
		}
		color.Green("OK   %s", m.version)
		ran++
	}
	if ran == 0 {
		color.Yellow("Nothing to migrate")
	}
}

func runDown(db *gorm.DB, migrations []migration, applied map[string]bool, steps int) {
	for i := len(migrations) - 1; i >= 0 && steps > 0; i-- {
		m := migrations[i]
		if !applied[m.version] {
			continue
		}
		if err := apply(db, m.dnPath, func(tx *gorm.DB) error {
			return tx.Exec("DELETE FROM schema_migrations WHERE version = ?", m.version).Error
		}); err != nil {
			color.Red("FAIL %s: %v", m.version, err)
			os.Exit(1)
		}
		color.Green("OK   %s (reverted)", m.version)
		steps--
	}
}

func apply(db *gorm.DB, path string, record func(tx *gorm.DB) error) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range strings.Split(string(raw), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return record(tx)
	})
}
