package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"libraryapi/internal/repository"
	"libraryapi/internal/specification"
)

const uniqueViolation = "23505"

// table describes how an entity maps onto its PostgreSQL table.
// columns lists the writable columns in the order values returns them; the id
// column is always "id" and is assigned by the database.
type table[T any] struct {
	name    string
	columns []string
	fields  specification.Fields
	id      func(*T) int64
	values  func(*T) []any
}

// crudRepository implements repository.Repository[T] for any table descriptor.
// It uses parameterized queries only and contains no business logic.
type crudRepository[T any] struct {
	db *sqlx.DB
	t  table[T]

	selectSQL string
	insertSQL string
	updateSQL string
}

func newCrudRepository[T any](db *sql.DB, t table[T]) *crudRepository[T] {
	cols := "id, " + strings.Join(t.columns, ", ")

	placeholders := make([]string, len(t.columns))
	assignments := make([]string, len(t.columns))
	for i, c := range t.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}

	return &crudRepository[T]{
		db:        sqlx.NewDb(db, "pgx"),
		t:         t,
		selectSQL: fmt.Sprintf("SELECT %s FROM %s", cols, t.name),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "), cols),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
			t.name, strings.Join(assignments, ", "), len(t.columns)+1, cols),
	}
}

var _ repository.Repository[struct{}] = (*crudRepository[struct{}])(nil)

// Save inserts or updates depending on whether the entity already has an id.
func (r *crudRepository[T]) Save(ctx context.Context, entity *T) (*T, error) {
	return r.save(ctx, r.db, entity)
}

func (r *crudRepository[T]) save(ctx context.Context, q sqlx.QueryerContext, entity *T) (*T, error) {
	var out T
	id := r.t.id(entity)
	if id == 0 {
		if err := sqlx.GetContext(ctx, q, &out, r.insertSQL, r.t.values(entity)...); err != nil {
			return nil, r.translate("insert", err)
		}
		return &out, nil
	}

	args := append(r.t.values(entity), id)
	if err := sqlx.GetContext(ctx, q, &out, r.updateSQL, args...); err != nil {
		return nil, r.translate("update", err)
	}
	return &out, nil
}

// SaveAll saves the entities inside one transaction and rolls back on the first failure.
func (r *crudRepository[T]) SaveAll(ctx context.Context, entities []T) ([]T, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin %s transaction: %w", r.t.name, err)
	}
	defer tx.Rollback()

	out := make([]T, 0, len(entities))
	for i := range entities {
		stored, err := r.save(ctx, tx, &entities[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit %s transaction: %w", r.t.name, err)
	}
	return out, nil
}

// FindByID fetches a single row by its id.
func (r *crudRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.db.GetContext(ctx, &out, r.selectSQL+" WHERE id = $1", id); err != nil {
		return nil, r.translate("find", err)
	}
	return &out, nil
}

func (r *crudRepository[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.ExistsBy(ctx, specification.Equal("id", id))
}

func (r *crudRepository[T]) FindAll(ctx context.Context, sort repository.Sort) ([]T, error) {
	return r.FindAllBy(ctx, nil, sort)
}

func (r *crudRepository[T]) FindAllByID(ctx context.Context, ids []int64) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return r.FindAllBy(ctx, specification.In("id", int64sToAny(ids)...), nil)
}

func (r *crudRepository[T]) FindPage(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[T], error) {
	return r.FindPageBy(ctx, nil, pq)
}

func (r *crudRepository[T]) Count(ctx context.Context) (int64, error) {
	return r.CountBy(ctx, nil)
}

// DeleteByID does not return an error if the row does not exist.
func (r *crudRepository[T]) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.DeleteBy(ctx, specification.Equal("id", id))
	return err
}

func (r *crudRepository[T]) DeleteAllByID(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.DeleteBy(ctx, specification.In("id", int64sToAny(ids)...))
	return err
}

func (r *crudRepository[T]) DeleteAll(ctx context.Context) error {
	_, err := r.DeleteBy(ctx, nil)
	return err
}

// FindOne fetches at most two matching rows so it can tell "one" from "several".
func (r *crudRepository[T]) FindOne(ctx context.Context, spec specification.Specification) (*T, error) {
	where, args, err := r.where(spec)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, 2)
	if err := r.db.SelectContext(ctx, &items, r.selectSQL+where+" LIMIT 2", args...); err != nil {
		return nil, r.translate("find", err)
	}
	switch len(items) {
	case 0:
		return nil, repository.ErrNotFound
	case 1:
		return &items[0], nil
	default:
		return nil, repository.ErrNotUnique
	}
}

func (r *crudRepository[T]) FindAllBy(ctx context.Context, spec specification.Specification, sort repository.Sort) ([]T, error) {
	where, args, err := r.where(spec)
	if err != nil {
		return nil, err
	}
	orderBy, err := r.orderBy(sort)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0)
	if err := r.db.SelectContext(ctx, &items, r.selectSQL+where+orderBy, args...); err != nil {
		return nil, r.translate("list", err)
	}
	return items, nil
}

// FindPageBy returns rows using LIMIT/OFFSET pagination and a total count.
func (r *crudRepository[T]) FindPageBy(ctx context.Context, spec specification.Specification, pq repository.PageQuery) (*repository.PageResult[T], error) {
	total, err := r.CountBy(ctx, spec)
	if err != nil {
		return nil, err
	}

	where, args, err := r.where(spec)
	if err != nil {
		return nil, err
	}
	orderBy, err := r.orderBy(pq.Sort)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("%s%s%s LIMIT $%d OFFSET $%d", r.selectSQL, where, orderBy, len(args)+1, len(args)+2)
	args = append(args, pq.Size, pq.Offset())

	items := make([]T, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, r.translate("list", err)
	}

	return &repository.PageResult[T]{
		Items: items,
		Total: total,
		Page:  pq.Page,
		Size:  pq.Size,
	}, nil
}

func (r *crudRepository[T]) CountBy(ctx context.Context, spec specification.Specification) (int64, error) {
	where, args, err := r.where(spec)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM "+r.t.name+where, args...); err != nil {
		return 0, r.translate("count", err)
	}
	return total, nil
}

func (r *crudRepository[T]) ExistsBy(ctx context.Context, spec specification.Specification) (bool, error) {
	where, args, err := r.where(spec)
	if err != nil {
		return false, err
	}

	var exists bool
	q := "SELECT EXISTS (SELECT 1 FROM " + r.t.name + where + ")"
	if err := r.db.GetContext(ctx, &exists, q, args...); err != nil {
		return false, r.translate("exists", err)
	}
	return exists, nil
}

func (r *crudRepository[T]) DeleteBy(ctx context.Context, spec specification.Specification) (int64, error) {
	where, args, err := r.where(spec)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM "+r.t.name+where, args...)
	if err != nil {
		return 0, r.translate("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", r.t.name, err)
	}
	return n, nil
}

func (r *crudRepository[T]) where(spec specification.Specification) (string, []any, error) {
	expr, args, err := specification.Render(spec, r.t.fields)
	if err != nil {
		return "", nil, err
	}
	if expr == "" {
		return "", args, nil
	}
	return " WHERE " + expr, args, nil
}

// orderBy renders sort against the table's fields and appends "id ASC" as a
// tie-breaker so pages are stable.
func (r *crudRepository[T]) orderBy(sort repository.Sort) (string, error) {
	parts := make([]string, 0, len(sort)+1)
	for _, o := range sort {
		col, err := r.t.fields.Column(o.Field)
		if err != nil {
			return "", err
		}
		dir := repository.Asc
		if o.Direction == repository.Desc {
			dir = repository.Desc
		}
		parts = append(parts, col+" "+string(dir))
	}
	if !sort.Has("id") {
		parts = append(parts, "id ASC")
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

func (r *crudRepository[T]) translate(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s %s: %w: %s", op, r.t.name, repository.ErrConflict, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s %s: %w", op, r.t.name, err)
}

func int64sToAny(ids []int64) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
