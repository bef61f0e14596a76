package credentials

import (
	"context"
	"errors"

	"github.com/2beens/weblogin/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const PostgresSchema = `
CREATE TABLE IF NOT EXISTS public.credentials
(
    username VARCHAR PRIMARY KEY,
    password VARCHAR NOT NULL
);
`

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

func (s *PostgresStore) Verify(ctx context.Context, username, password string) bool {
	ctx, span := tracing.GlobalTracer.Start(ctx, "credentials.postgresStore.verify")
	defer span.End()

	var stored string
	err := s.db.QueryRow(
		ctx,
		`SELECT password FROM credentials WHERE username = $1`,
		username,
	).Scan(&stored)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Errorf("query credentials: %s", err)
			span.SetStatus(codes.Error, "query-failed")
			span.RecordError(err)
		}
		return false
	}

	return Table{username: stored}.Verify(ctx, username, password)
}
