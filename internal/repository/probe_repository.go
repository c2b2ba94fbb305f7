package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kgrc4si/ikgrcscore/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProbeRepository runs the dormant query against the local database. Its result never reaches a response.
type ProbeRepository interface {
	Run(ctx context.Context) (int, error)
	Migrate() error
}

type probeRepository struct {
	db    *gorm.DB
	query string
}

func NewProbeRepository(db *gorm.DB, query string) ProbeRepository {
	return &probeRepository{db: db, query: query}
}

func (r *probeRepository) Migrate() error {
	return r.db.AutoMigrate(&model.ProbeRecord{})
}

// Run executes the probe query, logs the first two columns of every row and returns the row count.
func (r *probeRepository) Run(ctx context.Context) (int, error) {
	rows, err := r.db.WithContext(ctx).Raw(r.query).Rows()
	if err != nil {
		return 0, fmt.Errorf("probe query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return 0, fmt.Errorf("probe columns: %w", err)
	}

	count := 0
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return count, fmt.Errorf("probe scan: %w", err)
		}
		first, second := "", ""
		if len(values) > 0 {
			first = values[0].String
		}
		if len(values) > 1 {
			second = values[1].String
		}
		log.Debug().Msgf("%s | %s", first, second)
		count++
	}
	return count, rows.Err()
}
