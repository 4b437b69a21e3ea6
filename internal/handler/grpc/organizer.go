package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dayward/organizer/config"
	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
	server "github.com/dayward/organizer/infra/server/grpc/interceptors"
	"github.com/dayward/organizer/internal/domain/model"
	"github.com/dayward/organizer/internal/domain/registry"
	grpcmarshaller "github.com/dayward/organizer/internal/handler/marshaller/grpc"
	"github.com/dayward/organizer/internal/service"
)

var _ orgpb.OrganizerServer = (*OrganizerService)(nil)

// OrganizerService is the transport surface. Mutations answer with a Status
// message: domain failures ride inside it with an OK transport status, so the
// client always gets the machine-readable error taxonomy. Plain queries
// translate failures to gRPC status codes instead.
type OrganizerService struct {
	logger  *slog.Logger
	nodes   service.Noder
	days    service.Dayer
	tenants service.Tenanter
	hub     registry.Hubber

	queueWarnDepth int

	orgpb.UnimplementedOrganizerServer
}

func NewOrganizerService(
	cfg *config.Config,
	logger *slog.Logger,
	nodes service.Noder,
	days service.Dayer,
	tenants service.Tenanter,
	hub registry.Hubber,
) *OrganizerService {
	return &OrganizerService{
		logger:         logger.With(slog.String("handler", "organizer")),
		nodes:          nodes,
		days:           days,
		tenants:        tenants,
		hub:            hub,
		queueWarnDepth: cfg.Stream.QueueWarnDepth,
	}
}

func (o *OrganizerService) GetServerInfo(ctx context.Context, _ *orgpb.Empty) (*orgpb.ServerInfo, error) {
	info := &orgpb.ServerInfo{
		Properties: []*orgpb.KeyValue{
			{Key: "version", Value: model.ServerVersion},
		},
	}
	if model.ServerCommit != "" {
		info.Properties = append(info.Properties, &orgpb.KeyValue{Key: "commit", Value: model.ServerCommit})
	}
	return info, nil
}

func (o *OrganizerService) GetDayColorDefinitions(ctx context.Context, _ *orgpb.Empty) (*orgpb.DayColorDefinitions, error) {
	defs, err := o.days.ColorDefinitions(ctx)
	if err != nil {
		return nil, queryError(err)
	}
	reply := &orgpb.DayColorDefinitions{}
	for _, d := range defs {
		reply.DayColors = append(reply.DayColors, grpcmarshaller.DayColorToPB(d))
	}
	return reply, nil
}

func (o *OrganizerService) GetDay(ctx context.Context, req *orgpb.Date) (*orgpb.CompleteDay, error) {
	identity, ok := server.GetIdentity(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	date, err := grpcmarshaller.DateFromPB(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	day, err := o.days.Day(ctx, identity.User, date)
	if err != nil {
		return nil, queryError(err)
	}
	return grpcmarshaller.CompleteDayToPB(day), nil
}

func (o *OrganizerService) GetMonth(ctx context.Context, req *orgpb.MonthReq) (*orgpb.Month, error) {
	identity, ok := server.GetIdentity(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	if req.GetMonth() < 0 || req.GetMonth() > 11 {
		return nil, status.Errorf(codes.InvalidArgument, "month %d out of range", req.GetMonth())
	}
	days, err := o.days.Month(ctx, identity.User, int(req.GetYear()), int(req.GetMonth())+1)
	if err != nil {
		return nil, queryError(err)
	}
	reply := &orgpb.Month{
		Year:  req.GetYear(),
		Month: req.GetMonth(),
	}
	for _, d := range days {
		reply.Days = append(reply.Days, grpcmarshaller.DaySummaryToPB(d))
	}
	return reply, nil
}

func (o *OrganizerService) SetColorOnDay(ctx context.Context, req *orgpb.SetColorReq) (*orgpb.Status, error) {
	identity, ok := server.GetIdentity(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	date, err := grpcmarshaller.DateFromPB(req.GetDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := o.days.SetColor(ctx, identity.User, date, req.GetColor()); err != nil {
		return statusFromError(err), nil
	}
	return okStatus(), nil
}

func (o *OrganizerService) SetDay(ctx context.Context, req *orgpb.CompleteDay) (*orgpb.Status, error) {
	identity, ok := server.GetIdentity(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	day, err := grpcmarshaller.CompleteDayFromPB(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := o.days.SetDay(ctx, identity.User, day); err != nil {
		return statusFromError(err), nil
	}
	return okStatus(), nil
}

func (o *OrganizerService) CreateTenant(ctx context.Context, req *orgpb.CreateTenantReq) (*orgpb.Status, error) {
	tenant, err := grpcmarshaller.TenantFromPB(req.GetTenant())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	users := make([]model.User, 0, len(req.GetUsers()))
	for _, pb := range req.GetUsers() {
		u, err := grpcmarshaller.UserFromPB(pb)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		users = append(users, u)
	}

	created, _, err := o.tenants.Create(ctx, tenant, users)
	if err != nil {
		return statusFromError(err), nil
	}
	reply := okStatus()
	reply.Tenant = grpcmarshaller.TenantToPB(created)
	return reply, nil
}

func (o *OrganizerService) CreateNode(ctx context.Context, req *orgpb.CreateNodeReq) (*orgpb.Status, error) {
	identity, ok := server.GetIdentity(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	node, err := grpcmarshaller.NodeFromPB(req.GetNode())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	created, err := o.nodes.Create(ctx, identity.User, node)
	if err != nil {
		return statusFromError(err), nil
	}
	reply := okStatus()
	reply.Node = grpcmarshaller.NodeToPB(created)
	return reply, nil
}

func (o *OrganizerService) UpdateNode(ctx context.Context, req *orgpb.Node) (*orgpb.Status, error) {
	identity, ok := server.GetIdentity(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	node, err := grpcmarshaller.NodeFromPB(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	updated, err := o.nodes.Update(ctx, identity.User, node)
	if err != nil {
		return statusFromError(err), nil
	}
	reply := okStatus()
	reply.Node = grpcmarshaller.NodeToPB(updated)
	return reply, nil
}

func (o *OrganizerService) MoveNode(ctx context.Context, req *orgpb.MoveNodeReq) (*orgpb.Status, error) {
	identity, ok := server.GetIdentity(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	id, err := parseUUID(req.GetUuid(), "uuid")
	if err != nil {
		return nil, err
	}
	var parent *uuid.UUID
	if req.GetParentUuid() != "" {
		p, err := parseUUID(req.GetParentUuid(), "parent_uuid")
		if err != nil {
			return nil, err
		}
		parent = &p
	}
	moved, err := o.nodes.Move(ctx, identity.User, id, parent)
	if err != nil {
		return statusFromError(err), nil
	}
	reply := okStatus()
	reply.Node = grpcmarshaller.NodeToPB(moved)
	return reply, nil
}

func (o *OrganizerService) DeleteNode(ctx context.Context, req *orgpb.DeleteNodeReq) (*orgpb.Status, error) {
	identity, ok := server.GetIdentity(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	id, err := parseUUID(req.GetUuid(), "uuid")
	if err != nil {
		return nil, err
	}
	deleted, err := o.nodes.Delete(ctx, identity.User, id)
	if err != nil {
		return statusFromError(err), nil
	}
	reply := okStatus()
	reply.Node = grpcmarshaller.NodeToPB(deleted)
	return reply, nil
}

func (o *OrganizerService) GetNodes(ctx context.Context, _ *orgpb.GetNodesReq) (*orgpb.NodeTree, error) {
	identity, ok := server.GetIdentity(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	root, err := o.nodes.Tree(ctx, identity.User)
	if err != nil {
		return nil, queryError(err)
	}
	return &orgpb.NodeTree{Root: treeItemToPB(root)}, nil
}

// SubscribeToUpdates attaches the stream to the hub for the life of the
// connection. Every committed mutation published after this point is queued
// on the subscription and written in order, one write in flight at a time.
func (o *OrganizerService) SubscribeToUpdates(_ *orgpb.UpdatesReq, stream orgpb.Organizer_SubscribeToUpdatesServer) error {
	identity, ok := server.GetIdentity(stream.Context())
	if !ok {
		return errMissingIdentity
	}

	sub := registry.NewSubscriber(o.logger, stream.Send,
		registry.WithQueueWarnDepth(o.queueWarnDepth),
	)
	o.hub.Add(sub)

	l := o.logger.With(
		slog.String("user", identity.User.String()),
		slog.String("subscription", sub.ID().String()),
	)
	l.Info("update stream opened")

	defer func() {
		o.hub.Remove(sub.ID())
		sub.Finish(nil)
		l.Info("update stream closed")
	}()

	select {
	case <-stream.Context().Done():
		// Client went away; the deferred cleanup detaches the subscription.
		return nil
	case <-sub.Done():
		if err := sub.Err(); err != nil {
			// Includes the drain on shutdown: the client sees Unavailable and
			// knows to reconnect elsewhere.
			return status.Error(codes.Unavailable, err.Error())
		}
		return nil
	}
}

func treeItemToPB(item *model.TreeItem) *orgpb.NodeTreeItem {
	if item == nil {
		return nil
	}
	pb := &orgpb.NodeTreeItem{}
	if item.Node != nil {
		pb.Node = grpcmarshaller.NodeToPB(*item.Node)
	}
	for _, child := range item.Children {
		pb.Children = append(pb.Children, treeItemToPB(child))
	}
	return pb
}

var errMissingIdentity = status.Error(codes.Unauthenticated, "identity context missing")

func okStatus() *orgpb.Status {
	return &orgpb.Status{Error: orgpb.Error_OK}
}

// statusFromError folds a domain failure into the reply Status. The transport
// status stays OK; the taxonomy rides in the message.
func statusFromError(err error) *orgpb.Status {
	return &orgpb.Status{
		Error:   errorCode(err),
		Message: err.Error(),
	}
}

// queryError translates a domain failure on a plain query into a gRPC status.
func queryError(err error) error {
	switch errorCode(err) {
	case orgpb.Error_NOT_FOUND:
		return status.Error(codes.NotFound, err.Error())
	case orgpb.Error_DATABASE_ERROR, orgpb.Error_DATABASE_UPDATE_FAILED:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func errorCode(err error) orgpb.Error {
	switch {
	case err == nil:
		return orgpb.Error_OK
	case errors.Is(err, model.ErrMissingTenantName):
		return orgpb.Error_MISSING_TENANT_NAME
	case errors.Is(err, model.ErrMissingUserEmail):
		return orgpb.Error_MISSING_USER_EMAIL
	case errors.Is(err, model.ErrMissingUserName):
		return orgpb.Error_MISSING_USER_NAME
	case errors.Is(err, model.ErrInvalidParent):
		return orgpb.Error_INVALID_PARENT
	case errors.Is(err, model.ErrDifferentParent):
		return orgpb.Error_DIFFERENT_PARENT
	case errors.Is(err, model.ErrNotFound):
		return orgpb.Error_NOT_FOUND
	case errors.Is(err, model.ErrNoChanges):
		return orgpb.Error_NO_CHANGES
	case errors.Is(err, model.ErrConstraint):
		return orgpb.Error_CONSTRAINT_FAILED
	case errors.Is(err, model.ErrUpdateFailed):
		return orgpb.Error_DATABASE_UPDATE_FAILED
	case errors.Is(err, model.ErrDatabase):
		return orgpb.Error_DATABASE_ERROR
	default:
		return orgpb.Error_GENERIC_ERROR
	}
}

func parseUUID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "bad %s %q", field, s)
	}
	return id, nil
}
