package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
)

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// PaginationResult wraps one page of rows with its pagination metadata.
type PaginationResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Paginate runs the query twice: once for the total count and once for the
// requested page.
func Paginate[T any](q *QueryBuilder[T], ctx context.Context, page, pageSize int) (*PaginationResult[T], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count rows for pagination: %w", err)
	}

	offset := (page - 1) * pageSize
	data, err := q.Limit(pageSize).Offset(offset).All(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (total + pageSize - 1) / pageSize

	return &PaginationResult[T]{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// RunInTx executes fn inside a transaction, rolling back on error or panic.
func RunInTx(ctx context.Context, db *DB, fn func(ctx context.Context, tx bun.Tx) error) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, fn)
}

// RawQuery executes a raw SQL query and scans all rows into T
func RawQuery[T any](db *DB, ctx context.Context, query string, args ...any) ([]T, error) {
	var data []T
	err := WithRetry(ctx, func() error {
		data = nil
		return db.NewRaw(query, args...).Scan(ctx, &data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute raw query: %w", err)
	}
	return data, nil
}
