// gRPC client and server scaffolding for the organizer.v1.Organizer service.
// Hand-maintained alongside organizer.pb.go; keep method names in sync with
// the .proto file.
package organizerv1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const Organizer_ServiceName = "organizer.v1.Organizer"

type OrganizerClient interface {
	GetServerInfo(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ServerInfo, error)
	GetDayColorDefinitions(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DayColorDefinitions, error)
	GetDay(ctx context.Context, in *Date, opts ...grpc.CallOption) (*CompleteDay, error)
	GetMonth(ctx context.Context, in *MonthReq, opts ...grpc.CallOption) (*Month, error)
	SetColorOnDay(ctx context.Context, in *SetColorReq, opts ...grpc.CallOption) (*Status, error)
	SetDay(ctx context.Context, in *CompleteDay, opts ...grpc.CallOption) (*Status, error)
	CreateTenant(ctx context.Context, in *CreateTenantReq, opts ...grpc.CallOption) (*Status, error)
	CreateNode(ctx context.Context, in *CreateNodeReq, opts ...grpc.CallOption) (*Status, error)
	UpdateNode(ctx context.Context, in *Node, opts ...grpc.CallOption) (*Status, error)
	MoveNode(ctx context.Context, in *MoveNodeReq, opts ...grpc.CallOption) (*Status, error)
	DeleteNode(ctx context.Context, in *DeleteNodeReq, opts ...grpc.CallOption) (*Status, error)
	GetNodes(ctx context.Context, in *GetNodesReq, opts ...grpc.CallOption) (*NodeTree, error)
	SubscribeToUpdates(ctx context.Context, in *UpdatesReq, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Update], error)
}

type organizerClient struct {
	cc grpc.ClientConnInterface
}

func NewOrganizerClient(cc grpc.ClientConnInterface) OrganizerClient {
	return &organizerClient{cc}
}

func (c *organizerClient) GetServerInfo(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ServerInfo, error) {
	out := new(ServerInfo)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/GetServerInfo", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) GetDayColorDefinitions(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DayColorDefinitions, error) {
	out := new(DayColorDefinitions)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/GetDayColorDefinitions", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) GetDay(ctx context.Context, in *Date, opts ...grpc.CallOption) (*CompleteDay, error) {
	out := new(CompleteDay)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/GetDay", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) GetMonth(ctx context.Context, in *MonthReq, opts ...grpc.CallOption) (*Month, error) {
	out := new(Month)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/GetMonth", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) SetColorOnDay(ctx context.Context, in *SetColorReq, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/SetColorOnDay", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) SetDay(ctx context.Context, in *CompleteDay, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/SetDay", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) CreateTenant(ctx context.Context, in *CreateTenantReq, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/CreateTenant", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) CreateNode(ctx context.Context, in *CreateNodeReq, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/CreateNode", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) UpdateNode(ctx context.Context, in *Node, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/UpdateNode", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) MoveNode(ctx context.Context, in *MoveNodeReq, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/MoveNode", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) DeleteNode(ctx context.Context, in *DeleteNodeReq, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/DeleteNode", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) GetNodes(ctx context.Context, in *GetNodesReq, opts ...grpc.CallOption) (*NodeTree, error) {
	out := new(NodeTree)
	if err := c.cc.Invoke(ctx, "/organizer.v1.Organizer/GetNodes", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *organizerClient) SubscribeToUpdates(ctx context.Context, in *UpdatesReq, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Update], error) {
	stream, err := c.cc.NewStream(ctx, &Organizer_ServiceDesc.Streams[0], "/organizer.v1.Organizer/SubscribeToUpdates", opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[UpdatesReq, Update]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Organizer_SubscribeToUpdatesClient = grpc.ServerStreamingClient[Update]

type OrganizerServer interface {
	GetServerInfo(context.Context, *Empty) (*ServerInfo, error)
	GetDayColorDefinitions(context.Context, *Empty) (*DayColorDefinitions, error)
	GetDay(context.Context, *Date) (*CompleteDay, error)
	GetMonth(context.Context, *MonthReq) (*Month, error)
	SetColorOnDay(context.Context, *SetColorReq) (*Status, error)
	SetDay(context.Context, *CompleteDay) (*Status, error)
	CreateTenant(context.Context, *CreateTenantReq) (*Status, error)
	CreateNode(context.Context, *CreateNodeReq) (*Status, error)
	UpdateNode(context.Context, *Node) (*Status, error)
	MoveNode(context.Context, *MoveNodeReq) (*Status, error)
	DeleteNode(context.Context, *DeleteNodeReq) (*Status, error)
	GetNodes(context.Context, *GetNodesReq) (*NodeTree, error)
	SubscribeToUpdates(*UpdatesReq, grpc.ServerStreamingServer[Update]) error
	mustEmbedUnimplementedOrganizerServer()
}

type Organizer_SubscribeToUpdatesServer = grpc.ServerStreamingServer[Update]

// UnimplementedOrganizerServer must be embedded to have forward compatible
// implementations.
type UnimplementedOrganizerServer struct{}

func (UnimplementedOrganizerServer) GetServerInfo(context.Context, *Empty) (*ServerInfo, error) {
	return nil, errUnimplemented("GetServerInfo")
}
func (UnimplementedOrganizerServer) GetDayColorDefinitions(context.Context, *Empty) (*DayColorDefinitions, error) {
	return nil, errUnimplemented("GetDayColorDefinitions")
}
func (UnimplementedOrganizerServer) GetDay(context.Context, *Date) (*CompleteDay, error) {
	return nil, errUnimplemented("GetDay")
}
func (UnimplementedOrganizerServer) GetMonth(context.Context, *MonthReq) (*Month, error) {
	return nil, errUnimplemented("GetMonth")
}
func (UnimplementedOrganizerServer) SetColorOnDay(context.Context, *SetColorReq) (*Status, error) {
	return nil, errUnimplemented("SetColorOnDay")
}
func (UnimplementedOrganizerServer) SetDay(context.Context, *CompleteDay) (*Status, error) {
	return nil, errUnimplemented("SetDay")
}
func (UnimplementedOrganizerServer) CreateTenant(context.Context, *CreateTenantReq) (*Status, error) {
	return nil, errUnimplemented("CreateTenant")
}
func (UnimplementedOrganizerServer) CreateNode(context.Context, *CreateNodeReq) (*Status, error) {
	return nil, errUnimplemented("CreateNode")
}
func (UnimplementedOrganizerServer) UpdateNode(context.Context, *Node) (*Status, error) {
	return nil, errUnimplemented("UpdateNode")
}
func (UnimplementedOrganizerServer) MoveNode(context.Context, *MoveNodeReq) (*Status, error) {
	return nil, errUnimplemented("MoveNode")
}
func (UnimplementedOrganizerServer) DeleteNode(context.Context, *DeleteNodeReq) (*Status, error) {
	return nil, errUnimplemented("DeleteNode")
}
func (UnimplementedOrganizerServer) GetNodes(context.Context, *GetNodesReq) (*NodeTree, error) {
	return nil, errUnimplemented("GetNodes")
}
func (UnimplementedOrganizerServer) SubscribeToUpdates(*UpdatesReq, grpc.ServerStreamingServer[Update]) error {
	return errUnimplemented("SubscribeToUpdates")
}
func (UnimplementedOrganizerServer) mustEmbedUnimplementedOrganizerServer() {}

func errUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func RegisterOrganizerServer(s grpc.ServiceRegistrar, srv OrganizerServer) {
	s.RegisterService(&Organizer_ServiceDesc, srv)
}

func _Organizer_GetServerInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).GetServerInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/GetServerInfo"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).GetServerInfo(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_GetDayColorDefinitions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).GetDayColorDefinitions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/GetDayColorDefinitions"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).GetDayColorDefinitions(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_GetDay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Date)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).GetDay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/GetDay"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).GetDay(ctx, req.(*Date))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_GetMonth_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MonthReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).GetMonth(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/GetMonth"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).GetMonth(ctx, req.(*MonthReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_SetColorOnDay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetColorReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).SetColorOnDay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/SetColorOnDay"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).SetColorOnDay(ctx, req.(*SetColorReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_SetDay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteDay)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).SetDay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/SetDay"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).SetDay(ctx, req.(*CompleteDay))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_CreateTenant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTenantReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).CreateTenant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/CreateTenant"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).CreateTenant(ctx, req.(*CreateTenantReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_CreateNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateNodeReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).CreateNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/CreateNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).CreateNode(ctx, req.(*CreateNodeReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_UpdateNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Node)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).UpdateNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/UpdateNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).UpdateNode(ctx, req.(*Node))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_MoveNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MoveNodeReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).MoveNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/MoveNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).MoveNode(ctx, req.(*MoveNodeReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_DeleteNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteNodeReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).DeleteNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/DeleteNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).DeleteNode(ctx, req.(*DeleteNodeReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_GetNodes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNodesReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizerServer).GetNodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/organizer.v1.Organizer/GetNodes"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrganizerServer).GetNodes(ctx, req.(*GetNodesReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _Organizer_SubscribeToUpdates_Handler(srv interface{}, stream grpc.ServerStream) error {
	in := new(UpdatesReq)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(OrganizerServer).SubscribeToUpdates(in, &grpc.GenericServerStream[UpdatesReq, Update]{ServerStream: stream})
}

var Organizer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "organizer.v1.Organizer",
	HandlerType: (*OrganizerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetServerInfo", Handler: _Organizer_GetServerInfo_Handler},
		{MethodName: "GetDayColorDefinitions", Handler: _Organizer_GetDayColorDefinitions_Handler},
		{MethodName: "GetDay", Handler: _Organizer_GetDay_Handler},
		{MethodName: "GetMonth", Handler: _Organizer_GetMonth_Handler},
		{MethodName: "SetColorOnDay", Handler: _Organizer_SetColorOnDay_Handler},
		{MethodName: "SetDay", Handler: _Organizer_SetDay_Handler},
		{MethodName: "CreateTenant", Handler: _Organizer_CreateTenant_Handler},
		{MethodName: "CreateNode", Handler: _Organizer_CreateNode_Handler},
		{MethodName: "UpdateNode", Handler: _Organizer_UpdateNode_Handler},
		{MethodName: "MoveNode", Handler: _Organizer_MoveNode_Handler},
		{MethodName: "DeleteNode", Handler: _Organizer_DeleteNode_Handler},
		{MethodName: "GetNodes", Handler: _Organizer_GetNodes_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeToUpdates",
			Handler:       _Organizer_SubscribeToUpdates_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "organizer/v1/organizer.proto",
}
