package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"rideflow/infras/otel"
	"rideflow/infras/postgres"
	"rideflow/shared/constant"
	"rideflow/shared/dto"
	"rideflow/shared/logger"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

// Joiner is implemented by models whose projection pulls columns from other tables.
type Joiner interface {
	GetJoinQuery() string
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) selectExpr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

// Repository is a sqlx table gateway driven by the db/table/column tags of T.
// Reads go to the replica and writes to the primary.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	insertColumns []string
	join          string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := constant.Empty
	if joiner, ok := any(zero).(Joiner); ok {
		join = joiner.GetJoinQuery()
	}

	return Repository[T]{
		db:            db,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		insertColumns: insertColumns,
		join:          join,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// query prepares a named statement on the read pool and hands it to run.
func (repo *Repository[T]) query(ctx context.Context, scope otel.Scope, query string, run func(*sqlx.NamedStmt) error) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	return run(stmt)
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	placeholders := make([]string, len(repo.insertColumns))
	for idx, col := range repo.insertColumns {
		placeholders[idx] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == constant.Empty {
		return false, errRequiredFilter
	}

	exist := false

	err := repo.query(ctx, scope, fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where), func(stmt *sqlx.NamedStmt) error {
		if err := stmt.GetContext(ctx, &exist, args); err != nil {
			return repo.fail(scope, "check exist data", err)
		}

		return nil
	})

	return exist, err
}

// Get returns the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	var model T

	err := repo.query(ctx, scope, repo.selectFrom(columns)+where, func(stmt *sqlx.NamedStmt) error {
		err := stmt.GetContext(ctx, &model, args)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return repo.fail(scope, "get data", err)
		}

		return nil
	})

	return model, err
}

// GetAll pages with LIMIT/OFFSET when both Page and Limit are set; SortBy must name a mapped column.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	query := repo.selectFrom(columns) + where + repo.orderBy(params)

	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = params.Offset()
		query += " LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit
		query += " LIMIT :limit"
	}

	models := []T{}

	err := repo.query(ctx, scope, query, func(stmt *sqlx.NamedStmt) error {
		if err := stmt.SelectContext(ctx, &models, args); err != nil {
			return repo.fail(scope, "get all data", err)
		}

		return nil
	})

	return models, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s%s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	count := 0

	err := repo.query(ctx, scope, query, func(stmt *sqlx.NamedStmt) error {
		if err := stmt.GetContext(ctx, &count, args); err != nil {
			return repo.fail(scope, "count data", err)
		}

		return nil
	})

	return count, err
}

func (repo *Repository[T]) Update(ctx context.Context, changes map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	_, err := repo.update(ctx, scope, changes, filter)

	return err
}

// UpdateAffected reports how many rows matched, so a zero signals a lost compare-and-set.
func (repo *Repository[T]) UpdateAffected(ctx context.Context, changes map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.scope(ctx, "UpdateAffected")
	defer scope.End()

	return repo.update(ctx, scope, changes, filter)
}

func (repo *Repository[T]) update(ctx context.Context, scope otel.Scope, changes map[string]any, filter dto.FilterGroup) (int64, error) {
	where, args := repo.BuildWhereClause(filter)
	if where == constant.Empty {
		return 0, errRequiredFilter
	}

	assignments := make([]string, 0, len(changes))
	for _, col := range slices.Sorted(maps.Keys(changes)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, changes)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, "update data", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, "read affected rows", err)
	}

	return affected, nil
}

// selectFrom renders SELECT ... FROM table JOIN ..., limited to columns when any are given.
func (repo *Repository[T]) selectFrom(columns []string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(columns) > 0 && !slices.Contains(columns, col.name) {
			continue
		}

		exprs = append(exprs, col.selectExpr())
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(exprs, ", "), repo.table)
	if repo.join != constant.Empty {
		query += " " + repo.join
	}

	return query
}

func (repo *Repository[T]) orderBy(params dto.QueryParams) string {
	if params.SortBy == constant.Empty || params.SortDir == constant.Empty {
		return constant.Empty
	}

	known := slices.ContainsFunc(repo.columns, func(col column) bool {
		return params.SortBy == col.name || params.SortBy == col.table+"."+col.name
	})
	if !known {
		return constant.Empty
	}

	return fmt.Sprintf(" ORDER BY %s %s", params.SortBy, params.SortDir)
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == constant.Empty {
		return constant.Empty, map[string]any{}
	}

	return " WHERE " + where, args
}

// getColumns walks db tags, descending into embedded structs. Fields tagged with another
// table are selectable but never inserted.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for idx := range reflectType.NumField() {
		field := reflectType.Field(idx)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			nested, nestedInsert := getColumns(table, field.Type)
			columns = append(columns, nested...)
			insertColumns = append(insertColumns, nestedInsert...)

			continue
		}

		name := field.Tag.Get("db")
		if name == constant.Empty || name == "-" {
			continue
		}

		source := field.Tag.Get("table")
		if source == constant.Empty || source == table {
			insertColumns = append(insertColumns, name)
			columns = append(columns, column{name: name, table: table})

			continue
		}

		columns = append(columns, column{name: field.Tag.Get("column"), table: source, alias: name})
	}

	return columns, insertColumns
}
