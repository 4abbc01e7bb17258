package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"rideflow/config"
	"rideflow/shared/constant"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName         = "postgres"
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection splits traffic between a read replica and the primary.
// Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", DSN(pg.Read, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", DSN(pg.Write, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
	}
}

// DSN builds a lib/pq connection URL. prefix is prepended to the database name.
func DSN(db config.Postgres, prefix string) string {
	query := url.Values{}
	query.Set("sslmode", db.SSLMode)

	if db.Timezone != constant.Empty {
		query.Set("timezone", db.Timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(db.Username, db.Password),
		Host:     net.JoinHostPort(db.Host, db.Port),
		Path:     "/" + prefix + db.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(name, dsn string, maxRetry, waitSeconds int) *sqlx.DB {
	for attempt := 1; attempt <= max(maxRetry, 1); attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().Str("name", name).Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	log.Error().Str("name", name).Int("attempts", max(maxRetry, 1)).Msg("Giving up on database")

	return nil
}
