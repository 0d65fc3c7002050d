package migrationpg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
	"github.com/muhammadchandra19/auctionhouse/pkg/postgresql"
)

// migration is one up/down SQL pair, identified by its file base name.
// Files sort lexically, so the YYYYMMDDHHMMSS_name convention orders them.
type migration struct {
	id      string
	upSQL   string
	downSQL string
}

// Runner applies and reverts SQL migrations against PostgreSQL, tracking
// applied ids in a schema table.
type Runner struct {
	client       postgresql.PostgreSQLClient
	logger       logger.Interface
	ctx          context.Context
	migrationDir string
	schema       string
	tableName    string
}

// Config for the migration runner.
type Config struct {
	MigrationDir string
	Schema       string // defaults to "public"
	TableName    string // defaults to "schema_migrations"
}

// NewRunner creates a migration runner.
func NewRunner(ctx context.Context, client postgresql.PostgreSQLClient, log logger.Interface, config Config) *Runner {
	if config.Schema == "" {
		config.Schema = "public"
	}
	if config.TableName == "" {
		config.TableName = "schema_migrations"
	}

	return &Runner{
		client:       client,
		logger:       log,
		ctx:          ctx,
		migrationDir: config.MigrationDir,
		schema:       config.Schema,
		tableName:    config.TableName,
	}
}

// EnsureMigrationTable creates the tracking table if it doesn't exist.
func (r *Runner) EnsureMigrationTable() error {
	createTableSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.%s (
			id VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
	`, r.schema, r.tableName)

	_, err := r.client.Exec(r.ctx, createTableSQL)
	return err
}

// MigrateUp applies pending migrations in order. steps <= 0 applies all.
func (r *Runner) MigrateUp(steps int) error {
	migrations, err := r.loadMigrations()
	if err != nil {
		return err
	}
	applied, err := r.appliedMigrations()
	if err != nil {
		return err
	}

	var pending []migration
	for _, m := range migrations {
		if !applied[m.id] {
			pending = append(pending, m)
		}
	}
	if steps > 0 && len(pending) > steps {
		pending = pending[:steps]
	}

	for _, m := range pending {
		if m.upSQL == "" {
			r.logger.WarnContext(r.ctx, "migration has no up SQL, skipping", logger.Field{
				Key:   "migration_id",
				Value: m.id,
			})
			continue
		}
		if err := r.apply(m); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.id, err)
		}
		r.logger.InfoContext(r.ctx, "applied migration", logger.Field{
			Key:   "migration_id",
			Value: m.id,
		})
	}
	return nil
}

// MigrateDown reverts the most recently applied migrations. steps must be
// positive; reverting everything has to be asked for explicitly.
func (r *Runner) MigrateDown(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be greater than 0 for down migrations")
	}

	migrations, err := r.loadMigrations()
	if err != nil {
		return err
	}
	applied, err := r.appliedMigrations()
	if err != nil {
		return err
	}

	var toRevert []migration
	for i := len(migrations) - 1; i >= 0 && len(toRevert) < steps; i-- {
		if applied[migrations[i].id] {
			toRevert = append(toRevert, migrations[i])
		}
	}

	for _, m := range toRevert {
		if m.downSQL == "" {
			return fmt.Errorf("no down SQL for migration %s, cannot revert", m.id)
		}
		if err := r.revert(m); err != nil {
			return fmt.Errorf("failed to revert migration %s: %w", m.id, err)
		}
		r.logger.InfoContext(r.ctx, "reverted migration", logger.Field{
			Key:   "migration_id",
			Value: m.id,
		})
	}
	return nil
}

// apply runs one migration and records it, atomically.
func (r *Runner) apply(m migration) error {
	return postgresql.WithTx(r.ctx, r.client, func(txCtx context.Context) error {
		if _, err := r.client.Exec(txCtx, m.upSQL); err != nil {
			return err
		}
		recordSQL := fmt.Sprintf("INSERT INTO %s.%s (id, applied_at) VALUES ($1, NOW())", r.schema, r.tableName)
		_, err := r.client.Exec(txCtx, recordSQL, m.id)
		return err
	})
}

// revert runs one down migration and drops its record, atomically.
func (r *Runner) revert(m migration) error {
	return postgresql.WithTx(r.ctx, r.client, func(txCtx context.Context) error {
		if _, err := r.client.Exec(txCtx, m.downSQL); err != nil {
			return err
		}
		removeSQL := fmt.Sprintf("DELETE FROM %s.%s WHERE id = $1", r.schema, r.tableName)
		_, err := r.client.Exec(txCtx, removeSQL, m.id)
		return err
	})
}

// appliedMigrations returns the set of recorded migration ids.
func (r *Runner) appliedMigrations() (map[string]bool, error) {
	applied := make(map[string]bool)

	query := fmt.Sprintf("SELECT id FROM %s.%s ORDER BY applied_at", r.schema, r.tableName)
	rows, err := r.client.Query(r.ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		applied[id] = true
	}
	return applied, nil
}

// loadMigrations reads every *.up.sql in the migration directory, pairing
// each with its *.down.sql when present.
func (r *Runner) loadMigrations() ([]migration, error) {
	upFiles, err := filepath.Glob(filepath.Join(r.migrationDir, "*.up.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(upFiles)

	migrations := make([]migration, 0, len(upFiles))
	for _, upFile := range upFiles {
		upContent, err := os.ReadFile(upFile)
		if err != nil {
			return nil, err
		}

		m := migration{
			id:    strings.TrimSuffix(filepath.Base(upFile), ".up.sql"),
			upSQL: strings.TrimSpace(string(upContent)),
		}

		downFile := strings.TrimSuffix(upFile, ".up.sql") + ".down.sql"
		if downContent, err := os.ReadFile(downFile); err == nil {
			m.downSQL = strings.TrimSpace(string(downContent))
		}

		migrations = append(migrations, m)
	}
	return migrations, nil
}
