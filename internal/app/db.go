package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/football-stats/internal/config"
)

const (
	dbPingTimeout = 5 * time.Second
	// spanQueryLimit bounds the statement text attached to db spans. Bulk
	// inserts of fixtures otherwise produce multi-kilobyte attributes.
	spanQueryLimit = 512
)

// OpenDB opens an instrumented postgres pool and verifies it answers.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(compactQuery),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", cfg.DBURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}

// compactQuery folds whitespace so multi-line statements read on one line
// in traces, then cuts it at spanQueryLimit bytes.
func compactQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) > spanQueryLimit {
		return query[:spanQueryLimit] + "..."
	}
	return query
}
