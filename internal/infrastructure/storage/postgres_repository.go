package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"CopyForge/internal/domain"
	"CopyForge/internal/ports"
)

// PostgresRepository persists generation records into Postgres.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.RecordRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveRecord inserts one generation snapshot. An empty ID gets a fresh
// UUID.
func (r *PostgresRepository) SaveRecord(ctx context.Context, record domain.GenerationRecord) error {
	if r.db == nil {
		return nil
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.builder.
		Insert("generation_records").
		Columns("id", "domain_id", "platform_id", "prompt", "output", "hashtags", "warnings", "created_at").
		Values(
			record.ID,
			record.DomainID,
			record.PlatformID,
			record.Prompt,
			record.Output,
			pq.Array(record.Hashtags),
			pq.Array(record.Warnings),
			record.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

// RecentRecords returns the newest records for one domain, newest first.
func (r *PostgresRepository) RecentRecords(ctx context.Context, domainID string, limit int) ([]domain.GenerationRecord, error) {
	if r.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query, args, err := r.builder.
		Select("id", "domain_id", "platform_id", "prompt", "output", "hashtags", "warnings", "created_at").
		From("generation_records").
		Where(sq.Eq{"domain_id": domainID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []domain.GenerationRecord
	for rows.Next() {
		var record domain.GenerationRecord
		if err := rows.Scan(
			&record.ID,
			&record.DomainID,
			&record.PlatformID,
			&record.Prompt,
			&record.Output,
			pq.Array(&record.Hashtags),
			pq.Array(&record.Warnings),
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return records, nil
}
