package pgstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/store/mockstore"
)

// PG is the remote relational backend. Every collection maps to a table;
// course views stay catalog-backed because enrollment has no table yet.
type PG struct {
	db      *sqlx.DB
	catalog *mockstore.CourseCatalog
	logger  *zap.Logger
}

// New constructs the backend over an open connection pool.
func New(db *sqlx.DB, catalog *mockstore.CourseCatalog, logger *zap.Logger) *PG {
	return &PG{db: db, catalog: catalog, logger: logger}
}

// Initialize verifies the connection. Schema management is handled by
// migrations, not at startup.
func (p *PG) Initialize(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping remote database: %w", err)
	}
	p.logger.Info("remote backend ready")
	return nil
}
