package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Record is a column-keyed row as stored in the database.
type Record map[string]any

// Generic provides table-bound CRUD primitives shared by every entity
// repository. Exact filters (Update, Delete, First, Get) combine conditions
// with AND and match equality; List with a search combines conditions with
// OR and matches case-insensitive substrings. That asymmetry is part of the
// contract.
//
// Table and column names are always taken from schemas declared in this
// package, never from request input.
type Generic struct {
	ext   sqlx.ExtContext
	table string
	log   *zap.Logger
}

// NewGeneric constructs a Generic bound to a table.
func NewGeneric(db *sqlx.DB, table string, log *zap.Logger) *Generic {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generic{ext: db, table: table, log: log}
}

// WithTx rebinds the repository to a transaction so a multi-statement
// sequence commits or rolls back as one unit.
func (g *Generic) WithTx(tx *sqlx.Tx) *Generic {
	return &Generic{ext: tx, table: g.table, log: g.log}
}

// Table returns the bound table name.
func (g *Generic) Table() string { return g.table }

// CreateTable issues an idempotent CREATE TABLE IF NOT EXISTS with the
// given column definitions.
func (g *Generic) CreateTable(ctx context.Context, columns string) error {
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", g.table, columns)
	if _, err := g.ext.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", g.table, err)
	}
	g.log.Debug("table ensured", zap.String("table", g.table))
	return nil
}

// Insert stores one record and returns the store-assigned row id.
func (g *Generic) Insert(ctx context.Context, rec Record) (int64, error) {
	if len(rec) == 0 {
		return 0, fmt.Errorf("insert into %s: empty record", g.table)
	}

	cols := sortedKeys(rec)
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		args = append(args, rec[col])
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		g.table, strings.Join(cols, ", "), placeholders(len(cols)))
	res, err := g.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", g.table, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert into %s: last insert id: %w", g.table, err)
	}
	return id, nil
}

// InsertMany stores a batch of records. Every record must carry the same
// key set as the first one.
func (g *Generic) InsertMany(ctx context.Context, recs []Record) error {
	if len(recs) == 0 {
		return nil
	}

	cols := sortedKeys(recs[0])
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		g.table, strings.Join(cols, ", "), placeholders(len(cols)))

	for i, rec := range recs {
		if len(rec) != len(cols) {
			return fmt.Errorf("insert into %s: record %d does not match the first record's columns", g.table, i)
		}
		args := make([]any, 0, len(cols))
		for _, col := range cols {
			v, ok := rec[col]
			if !ok {
				return fmt.Errorf("insert into %s: record %d is missing column %s", g.table, i, col)
			}
			args = append(args, v)
		}
		if _, err := g.ext.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert into %s: record %d: %w", g.table, i, err)
		}
	}
	return nil
}

// Update applies new values to every row matching the exact filter and
// returns the affected row count.
func (g *Generic) Update(ctx context.Context, values, filter Record) (int64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("update %s: no values", g.table)
	}
	if len(filter) == 0 {
		return 0, fmt.Errorf("update %s: no filter", g.table)
	}

	setClause, setArgs := assignments(values, ", ")
	whereClause, whereArgs := assignments(filter, " AND ")

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", g.table, setClause, whereClause)
	res, err := g.ext.ExecContext(ctx, query, append(setArgs, whereArgs...)...)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", g.table, err)
	}
	return res.RowsAffected()
}

// Delete removes every row matching the exact filter and returns the
// affected row count.
func (g *Generic) Delete(ctx context.Context, filter Record) (int64, error) {
	if len(filter) == 0 {
		return 0, fmt.Errorf("delete from %s: no filter, use DeleteAll", g.table)
	}

	whereClause, args := assignments(filter, " AND ")
	query := fmt.Sprintf("DELETE FROM %s WHERE %s", g.table, whereClause)
	res, err := g.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", g.table, err)
	}
	return res.RowsAffected()
}

// DeleteAll removes every row in the table.
func (g *Generic) DeleteAll(ctx context.Context) (int64, error) {
	res, err := g.ext.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", g.table))
	if err != nil {
		return 0, fmt.Errorf("delete all from %s: %w", g.table, err)
	}
	return res.RowsAffected()
}

// Get returns the row with the given primary key, or nil when absent.
func (g *Generic) Get(ctx context.Context, id int64) (Record, error) {
	return g.First(ctx, Record{"id": id})
}

// First returns the first row matching the exact filter, or nil when no
// row matches.
func (g *Generic) First(ctx context.Context, filter Record) (Record, error) {
	if len(filter) == 0 {
		return nil, fmt.Errorf("get from %s: no filter", g.table)
	}

	whereClause, args := assignments(filter, " AND ")
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s LIMIT 1", g.table, whereClause)

	rows, err := g.ext.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get from %s: %w", g.table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get from %s: %w", g.table, err)
		}
		return nil, nil
	}

	rec := Record{}
	if err := rows.MapScan(rec); err != nil {
		return nil, fmt.Errorf("get from %s: scan: %w", g.table, err)
	}
	return normalize(rec), nil
}

// List returns every row when search is empty. A non-empty search is a
// fuzzy lookup: each column matches as a case-insensitive substring and
// the conditions combine with OR.
func (g *Generic) List(ctx context.Context, search Record) ([]Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s", g.table)
	var args []any

	if len(search) > 0 {
		cols := sortedKeys(search)
		conds := make([]string, 0, len(cols))
		for _, col := range cols {
			conds = append(conds, fmt.Sprintf("%s LIKE ? COLLATE NOCASE", col))
			args = append(args, "%"+fmt.Sprintf("%v", search[col])+"%")
		}
		query += " WHERE " + strings.Join(conds, " OR ")
	}

	rows, err := g.ext.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", g.table, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec := Record{}
		if err := rows.MapScan(rec); err != nil {
			return nil, fmt.Errorf("list %s: scan: %w", g.table, err)
		}
		out = append(out, normalize(rec))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", g.table, err)
	}
	return out, nil
}

func sortedKeys(rec Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func assignments(rec Record, sep string) (string, []any) {
	cols := sortedKeys(rec)
	clauses := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		clauses = append(clauses, fmt.Sprintf("%s = ?", col))
		args = append(args, rec[col])
	}
	return strings.Join(clauses, sep), args
}

// normalize converts driver-specific scan values into plain record values:
// byte slices become strings and date-typed columns become the stored text
// representation again.
func normalize(rec Record) Record {
	for k, v := range rec {
		switch t := v.(type) {
		case []byte:
			rec[k] = string(t)
		case time.Time:
			if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
				rec[k] = t.Format("2006-01-02")
			} else {
				rec[k] = t.Format("2006-01-02 15:04:05")
			}
		}
	}
	return rec
}
