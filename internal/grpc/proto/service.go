package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Полные имена методов
const (
	ServiceName            = "fakebot.v1.PeopleService"
	GenerateFullMethodName = "/" + ServiceName + "/Generate"
	GetStatsFullMethodName = "/" + ServiceName + "/GetStats"
)

// PeopleServiceServer описывает серверную часть сервиса
type PeopleServiceServer interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
	GetStats(ctx context.Context, req *GetStatsRequest) (*GetStatsResponse, error)
}

// UnimplementedPeopleServiceServer отвечает Unimplemented на все методы
type UnimplementedPeopleServiceServer struct{}

// Generate не реализован
func (UnimplementedPeopleServiceServer) Generate(context.Context, *GenerateRequest) (*GenerateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Generate not implemented")
}

// GetStats не реализован
func (UnimplementedPeopleServiceServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}

func generateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GenerateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PeopleServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GenerateFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PeopleServiceServer).Generate(ctx, req.(*GenerateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getStatsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PeopleServiceServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetStatsFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PeopleServiceServer).GetStats(ctx, req.(*GetStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PeopleServiceDesc описывает сервис для grpc.Server
var PeopleServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PeopleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: generateHandler},
		{MethodName: "GetStats", Handler: getStatsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fakebot/v1/people.proto",
}

// RegisterPeopleServiceServer регистрирует реализацию сервиса
func RegisterPeopleServiceServer(s grpc.ServiceRegistrar, srv PeopleServiceServer) {
	s.RegisterService(&PeopleServiceDesc, srv)
}

// PeopleServiceClient описывает клиент сервиса
type PeopleServiceClient interface {
	Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
}

type peopleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPeopleServiceClient создаёт клиента, использующего JSON-кодек
func NewPeopleServiceClient(cc grpc.ClientConnInterface) PeopleServiceClient {
	return &peopleServiceClient{cc: cc}
}

func (c *peopleServiceClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error) {
	out := new(GenerateResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, GenerateFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *peopleServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	out := new(GetStatsResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, GetStatsFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
