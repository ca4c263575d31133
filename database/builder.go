package database

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// QueryBuilder provides a fluent, type-safe API for building database queries
type QueryBuilder[T any] struct {
	db        *DB
	tableName string

	// Query clauses
	wheres    []*WhereClause
	orders    []*OrderClause
	limitVal  *int
	offsetVal *int

	// Relations to preload (nested via dot notation, e.g. "Items.Product")
	relations []string

	// Timeout
	timeout time.Duration
}

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction string // "ASC" or "DESC"
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:        db,
		wheres:    []*WhereClause{},
		orders:    []*OrderClause{},
		relations: []string{},
	}
}

// Table sets the table name explicitly
func (q *QueryBuilder[T]) Table(name string) *QueryBuilder[T] {
	q.tableName = name
	return q
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "=",
		Value:    value,
	})
	return q
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: operator,
		Value:    value,
	})
	return q
}

// WhereIn adds a WHERE column IN (...) condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		IsRaw:   true,
		RawSQL:  fmt.Sprintf("%s IN (?)", column),
		RawArgs: []any{bun.In(values)},
	})
	return q
}

// WhereNull adds a WHERE column IS NULL condition
func (q *QueryBuilder[T]) WhereNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IS NULL",
	})
	return q
}

// WhereNotNull adds a WHERE column IS NOT NULL condition
func (q *QueryBuilder[T]) WhereNotNull(column string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IS NOT NULL",
	})
	return q
}

// WhereLike adds a case-insensitive pattern match
func (q *QueryBuilder[T]) WhereLike(column, pattern string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "ILIKE",
		Value:    pattern,
	})
	return q
}

// WhereRaw adds a raw SQL WHERE condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		IsRaw:   true,
		RawSQL:  sql,
		RawArgs: args,
	})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{
		Column:    column,
		Direction: string(direction),
	})
	return q
}

// Limit sets the maximum number of rows returned
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the number of rows skipped
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Relation preloads a bun relation on the result set
func (q *QueryBuilder[T]) Relation(relation string) *QueryBuilder[T] {
	q.relations = append(q.relations, relation)
	return q
}

// Timeout bounds query execution time
func (q *QueryBuilder[T]) Timeout(duration time.Duration) *QueryBuilder[T] {
	q.timeout = duration
	return q
}

// buildSelect assembles the bun SelectQuery for the given model target.
func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	query := q.db.NewSelect().Model(model)

	if q.tableName != "" {
		query = query.ModelTableExpr(q.tableName)
	}

	query = applyWheres(query, q.wheres)

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}

	for _, order := range q.orders {
		query = query.OrderExpr("? ?", bun.Ident(order.Column), bun.Safe(order.Direction))
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

// whereApplier is satisfied by bun's select, update and delete queries.
type whereApplier[Q any] interface {
	Where(query string, args ...any) Q
}

func applyWheres[Q whereApplier[Q]](query Q, wheres []*WhereClause) Q {
	for _, where := range wheres {
		if where.IsRaw {
			query = query.Where(where.RawSQL, where.RawArgs...)
			continue
		}

		if where.Operator == "IS NULL" || where.Operator == "IS NOT NULL" {
			query = query.Where(fmt.Sprintf("? %s", where.Operator), bun.Ident(where.Column))
			continue
		}

		query = query.Where(fmt.Sprintf("? %s ?", where.Operator), bun.Ident(where.Column), where.Value)
	}
	return query
}
