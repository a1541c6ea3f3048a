package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// dependent declares one level of a deletion hierarchy: the child table's
// repository, the foreign-key column referencing the parent id, and the
// child's own dependents. Parent repositories describe their hierarchy
// declaratively and share the single walker below.
type dependent struct {
	repo     *Generic
	fk       string
	children []dependent
}

func (d dependent) withTx(tx *sqlx.Tx) dependent {
	bound := dependent{repo: d.repo.WithTx(tx), fk: d.fk}
	for _, child := range d.children {
		bound.children = append(bound.children, child.withTx(tx))
	}
	return bound
}

// deleteDependents removes every row of d's table referencing parentID,
// bottom-up. Rows are discovered with a full table scan filtered in memory
// on the foreign key; the scan only serves to find ids to recurse into,
// the level itself is removed with a single filtered delete.
func deleteDependents(ctx context.Context, d dependent, parentID int64) error {
	if len(d.children) > 0 {
		rows, err := d.repo.List(ctx, nil)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if asID(row[d.fk]) != parentID {
				continue
			}
			id := asID(row["id"])
			if id == 0 {
				continue
			}
			for _, child := range d.children {
				if err := deleteDependents(ctx, child, id); err != nil {
					return err
				}
			}
		}
	}

	_, err := d.repo.Delete(ctx, Record{d.fk: parentID})
	return err
}

// deleteCascade removes every row transitively dependent on the parent id,
// strictly bottom-up, then the parent row itself. The whole cascade runs
// in one transaction. The boolean is true iff the parent row existed; a
// missing parent yields (false, nil) without touching anything.
func deleteCascade(ctx context.Context, db *sqlx.DB, parent *Generic, deps []dependent, id int64) (bool, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("delete %s cascade: begin: %w", parent.Table(), err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, d := range deps {
		if err := deleteDependents(ctx, d.withTx(tx), id); err != nil {
			return false, fmt.Errorf("delete %s cascade: %w", parent.Table(), err)
		}
	}

	n, err := parent.WithTx(tx).Delete(ctx, Record{"id": id})
	if err != nil {
		return false, fmt.Errorf("delete %s cascade: %w", parent.Table(), err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("delete %s cascade: commit: %w", parent.Table(), err)
	}
	committed = true
	return n > 0, nil
}

// asID coerces a scanned column value to an int64 id, returning 0 for
// anything that is not a number.
func asID(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	default:
		return 0
	}
}
