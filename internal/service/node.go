package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
	"github.com/dayward/organizer/internal/domain/model"
	grpcmarshaller "github.com/dayward/organizer/internal/handler/marshaller/grpc"
	"github.com/dayward/organizer/internal/store"
)

const (
	// Optimistic-concurrency envelope: a conflicting writer triggers a
	// re-read and retry, up to updateRetries attempts with updateBackoff
	// between them.
	updateRetries = 5
	updateBackoff = 100 * time.Millisecond
)

// Noder is the node-tree service used by the transport handlers.
type Noder interface {
	Create(ctx context.Context, user uuid.UUID, n model.Node) (model.Node, error)
	Update(ctx context.Context, user uuid.UUID, n model.Node) (model.Node, error)
	Move(ctx context.Context, user, id uuid.UUID, parent *uuid.UUID) (model.Node, error)
	Delete(ctx context.Context, user, id uuid.UUID) (model.Node, error)
	Tree(ctx context.Context, user uuid.UUID) (*model.TreeItem, error)
}

type NodeService struct {
	repo    *store.NodeRepo
	updates UpdateDispatcher
	logger  *slog.Logger
}

func NewNodeService(s *store.Store, updates UpdateDispatcher, logger *slog.Logger) *NodeService {
	return &NodeService{
		repo:    s.Nodes,
		updates: updates,
		logger:  logger.With(slog.String("service", "node")),
	}
}

// Create inserts a new node owned by user. A missing id is generated; a
// non-empty parent must reference a node owned by the same user.
func (s *NodeService) Create(ctx context.Context, user uuid.UUID, n model.Node) (model.Node, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.User = user

	if err := s.validateParent(ctx, n.Parent, user); err != nil {
		return model.Node{}, err
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		return model.Node{}, err
	}

	persisted, err := s.repo.Fetch(ctx, n.ID, user)
	if err != nil {
		return model.Node{}, err
	}

	s.publish(ctx, grpcmarshaller.NodeUpdate(orgpb.Update_ADDED, persisted))
	return persisted, nil
}

// Update writes the mutable data fields (name, kind, descr, active) under
// the optimistic envelope. The submitted parent must equal the stored
// parent; re-parenting goes through Move.
func (s *NodeService) Update(ctx context.Context, user uuid.UUID, n model.Node) (model.Node, error) {
	n.User = user

	for attempt := 0; attempt < updateRetries; attempt++ {
		current, err := s.repo.Fetch(ctx, n.ID, user)
		if err != nil {
			return model.Node{}, err
		}
		if !current.SameParent(n.Parent) {
			return model.Node{}, fmt.Errorf("node %s: %w", n.ID, model.ErrDifferentParent)
		}

		// The diff feeds logging only; the UPDATE runs and publishes even
		// when all data fields equal the stored values (version still
		// advances).
		if current.Name == n.Name && current.Kind == n.Kind && current.Descr == n.Descr && current.Active == n.Active {
			s.logger.Debug("update with unchanged data", slog.String("node", n.ID.String()))
		}

		ok, err := s.repo.UpdateData(ctx, n, current.Version)
		if err != nil {
			return model.Node{}, err
		}
		if ok {
			persisted, err := s.repo.Fetch(ctx, n.ID, user)
			if err != nil {
				return model.Node{}, err
			}
			s.publish(ctx, grpcmarshaller.NodeUpdate(orgpb.Update_UPDATED, persisted))
			return persisted, nil
		}

		if err := s.backoff(ctx); err != nil {
			return model.Node{}, err
		}
	}
	return model.Node{}, fmt.Errorf("node %s: %w", n.ID, model.ErrUpdateFailed)
}

// Move re-parents a node. An unchanged parent yields ErrNoChanges (and no
// publish); a self-parent or a parent inside the node's own subtree yields
// ErrConstraint.
func (s *NodeService) Move(ctx context.Context, user, id uuid.UUID, parent *uuid.UUID) (model.Node, error) {
	for attempt := 0; attempt < updateRetries; attempt++ {
		current, err := s.repo.Fetch(ctx, id, user)
		if err != nil {
			return model.Node{}, err
		}
		if current.SameParent(parent) {
			return model.Node{}, fmt.Errorf("node %s: %w", id, model.ErrNoChanges)
		}
		if parent != nil {
			if *parent == id {
				return model.Node{}, fmt.Errorf("node cannot be its own parent: %w", model.ErrConstraint)
			}
			if err := s.validateParent(ctx, parent, user); err != nil {
				return model.Node{}, err
			}
			if err := s.checkCycle(ctx, user, id, *parent); err != nil {
				return model.Node{}, err
			}
		}

		ok, err := s.repo.UpdateParent(ctx, id, user, parent, current.Version)
		if err != nil {
			return model.Node{}, err
		}
		if ok {
			persisted, err := s.repo.Fetch(ctx, id, user)
			if err != nil {
				return model.Node{}, err
			}
			s.publish(ctx, grpcmarshaller.NodeUpdate(orgpb.Update_MOVED, persisted))
			return persisted, nil
		}

		if err := s.backoff(ctx); err != nil {
			return model.Node{}, err
		}
	}
	return model.Node{}, fmt.Errorf("node %s: %w", id, model.ErrUpdateFailed)
}

// Delete removes the node and publishes its pre-delete snapshot.
func (s *NodeService) Delete(ctx context.Context, user, id uuid.UUID) (model.Node, error) {
	snapshot, err := s.repo.Fetch(ctx, id, user)
	if err != nil {
		return model.Node{}, err
	}
	deleted, err := s.repo.Delete(ctx, id, user)
	if err != nil {
		return model.Node{}, err
	}
	if !deleted {
		return model.Node{}, fmt.Errorf("node %s: %w", id, model.ErrNotFound)
	}
	s.publish(ctx, grpcmarshaller.NodeUpdate(orgpb.Update_DELETED, snapshot))
	return snapshot, nil
}

// Tree returns the full per-user tree under a synthetic root item.
//
// The recursive query orders rows by (parent, name), which does not
// guarantee parent-before-child. The first pass attaches every row whose
// parent is already known and buffers the rest; the second pass attaches the
// buffered rows, whose parents must have been registered by then.
func (s *NodeService) Tree(ctx context.Context, user uuid.UUID) (*model.TreeItem, error) {
	rows, err := s.repo.TreeRows(ctx, user)
	if err != nil {
		return nil, err
	}

	root := &model.TreeItem{}
	known := map[uuid.UUID]*model.TreeItem{uuid.Nil: root}

	attach := func(n model.Node) bool {
		parentKey := uuid.Nil
		if n.Parent != nil {
			parentKey = *n.Parent
		}
		parent, ok := known[parentKey]
		if !ok {
			return false
		}
		node := n
		item := &model.TreeItem{Node: &node}
		parent.Children = append(parent.Children, item)
		known[n.ID] = item
		return true
	}

	var pending []model.Node
	for _, n := range rows {
		if !attach(n) {
			pending = append(pending, n)
		}
	}
	for _, n := range pending {
		if !attach(n) {
			// Orphaned row; its parent is gone. Leave it out of the reply.
			s.logger.Warn("tree row without a reachable parent",
				slog.String("node", n.ID.String()),
			)
		}
	}
	return root, nil
}

func (s *NodeService) validateParent(ctx context.Context, parent *uuid.UUID, user uuid.UUID) error {
	if parent == nil {
		return nil
	}
	owned, err := s.repo.ParentOwned(ctx, *parent, user)
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("parent %s: %w", parent, model.ErrInvalidParent)
	}
	return nil
}

// checkCycle walks the ancestor chain of the new parent and rejects the move
// if the chain contains the node being moved.
func (s *NodeService) checkCycle(ctx context.Context, user, id, parent uuid.UUID) error {
	for cursor := parent; ; {
		node, err := s.repo.Fetch(ctx, cursor, user)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil
			}
			return err
		}
		if node.Parent == nil {
			return nil
		}
		if *node.Parent == id {
			return fmt.Errorf("move would create a cycle: %w", model.ErrConstraint)
		}
		cursor = *node.Parent
	}
}

func (s *NodeService) backoff(ctx context.Context) error {
	timer := time.NewTimer(updateBackoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *NodeService) publish(ctx context.Context, u *orgpb.Update) {
	if err := s.updates.Publish(ctx, u); err != nil {
		// Fan-out is best effort; the mutation already committed.
		s.logger.Error("failed to publish update", slog.Any("err", err))
	}
}
