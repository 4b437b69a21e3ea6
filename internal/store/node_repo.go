package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dayward/organizer/internal/domain/model"
)

// NodeRepo owns the SQL for the per-user node tree.
type NodeRepo struct {
	gw *Gateway
}

func NewNodeRepo(gw *Gateway) *NodeRepo {
	return &NodeRepo{gw: gw}
}

const nodeColumns = "id, user, name, kind, descr, active, parent, version"

// Insert persists a new node. Version starts at the column default (0).
func (r *NodeRepo) Insert(ctx context.Context, n model.Node) error {
	_, err := r.gw.Exec(ctx,
		"INSERT INTO node (id, user, name, kind, descr, active, parent) VALUES (?, ?, ?, ?, ?, ?, ?)",
		n.ID.String(), n.User.String(), n.Name, int32(n.Kind), nullIfEmpty(n.Descr), n.Active, nullUUID(n.Parent),
	)
	return err
}

// Fetch returns the node identified by (id, user), or model.ErrNotFound.
func (r *NodeRepo) Fetch(ctx context.Context, id, user uuid.UUID) (model.Node, error) {
	row := r.gw.QueryRow(ctx,
		"SELECT "+nodeColumns+" FROM node WHERE id=? AND user=?",
		id.String(), user.String(),
	)
	n, err := scanNode(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Node{}, fmt.Errorf("node %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return model.Node{}, fmt.Errorf("%w: %v", model.ErrDatabase, err)
	}
	return n, nil
}

// ParentOwned reports whether the parent node exists and belongs to user.
func (r *NodeRepo) ParentOwned(ctx context.Context, parent, user uuid.UUID) (bool, error) {
	row := r.gw.QueryRow(ctx,
		"SELECT COUNT(*) FROM node WHERE id=? AND user=?",
		parent.String(), user.String(),
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %v", model.ErrDatabase, err)
	}
	return count > 0, nil
}

// UpdateData writes the mutable data fields, conditioned on the previously
// read version. Reports whether a row was updated (false = version conflict).
func (r *NodeRepo) UpdateData(ctx context.Context, n model.Node, expectVersion int64) (bool, error) {
	affected, err := r.gw.Exec(ctx,
		"UPDATE node SET name=?, kind=?, descr=?, active=?, version=version+1 WHERE id=? AND user=? AND version=?",
		n.Name, int32(n.Kind), nullIfEmpty(n.Descr), n.Active,
		n.ID.String(), n.User.String(), expectVersion,
	)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// UpdateParent re-parents the node under the same optimistic envelope.
func (r *NodeRepo) UpdateParent(ctx context.Context, id, user uuid.UUID, parent *uuid.UUID, expectVersion int64) (bool, error) {
	affected, err := r.gw.Exec(ctx,
		"UPDATE node SET parent=?, version=version+1 WHERE id=? AND user=? AND version=?",
		nullUUID(parent), id.String(), user.String(), expectVersion,
	)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// Delete removes the node by (id, user). Reports whether a row was deleted.
func (r *NodeRepo) Delete(ctx context.Context, id, user uuid.UUID) (bool, error) {
	affected, err := r.gw.Exec(ctx,
		"DELETE FROM node WHERE id=? AND user=?",
		id.String(), user.String(),
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// TreeRows returns every node reachable from the user's roots, ordered by
// (parent, name). The ordering does not guarantee parent-before-child; the
// tree assembly in the service buffers out-of-order rows.
func (r *NodeRepo) TreeRows(ctx context.Context, user uuid.UUID) ([]model.Node, error) {
	rows, err := r.gw.Query(ctx, `
		WITH RECURSIVE tree(id, user, name, kind, descr, active, parent, version) AS (
			SELECT `+nodeColumns+` FROM node WHERE user=? AND parent IS NULL
			UNION ALL
			SELECT n.id, n.user, n.name, n.kind, n.descr, n.active, n.parent, n.version
			FROM node n JOIN tree t ON n.parent = t.id
		)
		SELECT `+nodeColumns+` FROM tree ORDER BY COALESCE(parent, ''), name`,
		user.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Node
	for rows.Next() {
		n, err := scanNode(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabase, err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabase, err)
	}
	return result, nil
}

func scanNode(scan func(...any) error) (model.Node, error) {
	var (
		n      model.Node
		id     string
		user   string
		kind   int32
		descr  sql.NullString
		parent sql.NullString
	)
	if err := scan(&id, &user, &n.Name, &kind, &descr, &n.Active, &parent, &n.Version); err != nil {
		return model.Node{}, err
	}
	var err error
	if n.ID, err = uuid.Parse(id); err != nil {
		return model.Node{}, fmt.Errorf("bad node id %q: %w", id, err)
	}
	if n.User, err = uuid.Parse(user); err != nil {
		return model.Node{}, fmt.Errorf("bad node user %q: %w", user, err)
	}
	n.Kind = model.NodeKind(kind)
	n.Descr = descr.String
	if parent.Valid {
		p, err := uuid.Parse(parent.String)
		if err != nil {
			return model.Node{}, fmt.Errorf("bad node parent %q: %w", parent.String, err)
		}
		n.Parent = &p
	}
	return n, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
