package interceptors

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dayward/organizer/internal/domain/model"
)

type contextKey string

// IdentityContextKey is the key used to store/retrieve the caller identity
// from context.
const IdentityContextKey contextKey = "org_identity"

const (
	userHeader   = "x-org-user"
	tenantHeader = "x-org-tenant"
)

// NewUnaryIdentityInterceptor resolves the caller identity from request
// metadata before the handler runs. Requests without a user header are
// rejected; the tenant header is optional.
func NewUnaryIdentityInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		identity, err := identityFromMetadata(ctx)
		if err != nil {
			return nil, err
		}
		return handler(context.WithValue(ctx, IdentityContextKey, identity), req)
	}
}

// NewStreamIdentityInterceptor is the streaming counterpart. The identity is
// validated before the stream opens and injected for the whole stream life.
func NewStreamIdentityInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		identity, err := identityFromMetadata(ss.Context())
		if err != nil {
			return err
		}

		wrapped := &wrappedStream{
			ServerStream: ss,
			ctx:          context.WithValue(ss.Context(), IdentityContextKey, identity),
		}
		return handler(srv, wrapped)
	}
}

// wrappedStream is a thin wrapper to inject a new context into a gRPC stream.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}

// GetIdentity is a helper to extract the caller identity from context safely.
func GetIdentity(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(model.Identity)
	return identity, ok
}

func identityFromMetadata(ctx context.Context) (model.Identity, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return model.Identity{}, status.Error(codes.Unauthenticated, "missing request metadata")
	}

	user := firstValue(md, userHeader)
	if user == "" {
		return model.Identity{}, status.Errorf(codes.Unauthenticated, "missing %s header", userHeader)
	}
	userID, err := uuid.Parse(user)
	if err != nil {
		return model.Identity{}, status.Errorf(codes.Unauthenticated, "invalid %s header", userHeader)
	}

	identity := model.Identity{User: userID}
	if tenant := firstValue(md, tenantHeader); tenant != "" {
		tenantID, err := uuid.Parse(tenant)
		if err != nil {
			return model.Identity{}, status.Errorf(codes.Unauthenticated, "invalid %s header", tenantHeader)
		}
		identity.Tenant = tenantID
	}
	return identity, nil
}

func firstValue(md metadata.MD, key string) string {
	if vals := md.Get(key); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
