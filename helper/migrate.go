package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"rideflow/config"
	"rideflow/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// DefaultSource is relative to the working directory of cmd/app and cmd/migrate.
const DefaultSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var actions = map[string]struct {
	run  func(*migrate.Migrate) error
	done string
}{
	ActionUp:     {run: (*migrate.Migrate).Up, done: "Database migrations completed successfully"},
	ActionDown:   {run: func(m *migrate.Migrate) error { return m.Steps(-1) }, done: "Latest database migration rolled back"},
	ActionStepUp: {run: func(m *migrate.Migrate) error { return m.Steps(1) }, done: "Next database migration applied"},
	ActionDrop:   {run: (*migrate.Migrate).Down, done: "Database migrations rolled back successfully"},
}

// migrationURL targets the primary with the configured bookkeeping table.
func migrationURL(cfg *config.Config) (string, error) {
	parsed, err := url.Parse(postgres.DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix))
	if err != nil {
		return "", fmt.Errorf("parsing database url: %w", err)
	}

	query := parsed.Query()
	query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func Runner(cfg *config.Config, action string) error {
	return RunFrom(cfg, DefaultSource, action)
}

// RunFrom applies action using the migration files found at source.
func RunFrom(cfg *config.Config, source, action string) error {
	step, ok := actions[action]
	if !ok {
		return fmt.Errorf("unknown migration action %q", action)
	}

	dsn, err := migrationURL(cfg)
	if err != nil {
		return err
	}

	mig, err := migrate.New(source, dsn)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := step.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg(step.done)

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
