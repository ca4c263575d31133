package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// All executes the query and returns all matching records with automatic retry
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	var data []T

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		data = nil // Reset on retry
		return q.buildSelect(&data).Scan(ctx)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// First executes the query and returns the first matching record with
// automatic retry. A missing row returns (nil, nil), not an error.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	start := time.Now()
	var data T

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		return q.buildSelect(&data).Limit(1).Scan(ctx)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// Count executes the query and returns the count of matching records with automatic retry
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	var count int

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewSelect().Model(&model)
		query = applyWheres(query, q.wheres)

		var err error
		count, err = query.Count(ctx)
		return err
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w (took %v)", err, time.Since(start))
	}

	return count, nil
}

// Exists checks if any records match the query
func (q *QueryBuilder[T]) Exists(ctx context.Context) (bool, error) {
	count, err := q.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert inserts a new record and returns it with automatic retry
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	start := time.Now()

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		_, err := q.db.NewInsert().Model(data).Returning("*").Exec(ctx)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// InsertMany inserts multiple records with automatic retry
func (q *QueryBuilder[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	start := time.Now()

	if len(data) == 0 {
		return data, nil
	}

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		_, err := q.db.NewInsert().Model(&data).Returning("*").Exec(ctx)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute bulk insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Update updates records matching the query with automatic retry. Data is a
// column->value map; updated_at is not touched implicitly.
func (q *QueryBuilder[T]) Update(ctx context.Context, data map[string]any) (int, error) {
	start := time.Now()
	var rowsAffected int64

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewUpdate().Model(&model)
		query = applyWheres(query, q.wheres)

		for key, value := range data {
			query = query.Set("? = ?", bun.Ident(key), value)
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

// UpdateReturning updates records and returns them with automatic retry
func (q *QueryBuilder[T]) UpdateReturning(ctx context.Context, data map[string]any) ([]T, error) {
	start := time.Now()
	var results []T

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		results = nil // Reset on retry
		var model T
		query := q.db.NewUpdate().Model(&model)
		query = applyWheres(query, q.wheres)

		for key, value := range data {
			query = query.Set("? = ?", bun.Ident(key), value)
		}

		_, err := query.Returning("*").Exec(ctx, &results)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return results, nil
}

// DeleteReturning deletes records and returns them with automatic retry
func (q *QueryBuilder[T]) DeleteReturning(ctx context.Context) ([]T, error) {
	start := time.Now()
	var results []T

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		results = nil // Reset on retry
		var model T
		query := q.db.NewDelete().Model(&model)
		query = applyWheres(query, q.wheres)

		_, err := query.Returning("*").Exec(ctx, &results)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute delete query: %w (took %v)", err, time.Since(start))
	}

	return results, nil
}

// Delete deletes records matching the query with automatic retry
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int, error) {
	start := time.Now()
	var rowsAffected int64

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewDelete().Model(&model)
		query = applyWheres(query, q.wheres)

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute delete query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}
