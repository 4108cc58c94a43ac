package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type preferenceRepo struct {
	drv *entsql.Driver
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(preferencesTable)).
		Where(entsql.EQ("key", key)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return "", fmt.Errorf("query preference %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("preference %q: %w", key, ErrNotFound)
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", fmt.Errorf("scan preference %q: %w", key, err)
	}
	return value, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}
