package grpc

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/tempizhere/fakebot/internal/formatter"
	"github.com/tempizhere/fakebot/internal/generator"
	"github.com/tempizhere/fakebot/internal/grpc/proto"
	"github.com/tempizhere/fakebot/internal/middleware"
	"github.com/tempizhere/fakebot/internal/repository"
	"github.com/tempizhere/fakebot/internal/service"
)

type brokenSource struct{}

func (brokenSource) Intn(int) (int, error) { return 0, errors.New("no entropy") }

type panicServer struct {
	proto.UnimplementedPeopleServiceServer
}

func (panicServer) Generate(context.Context, *proto.GenerateRequest) (*proto.GenerateResponse, error) {
	panic("boom")
}

func startServer(t *testing.T, srv proto.PeopleServiceServer, subnet string) proto.PeopleServiceClient {
	t.Helper()

	ts, err := middleware.ParseTrustedSubnet(subnet)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	s := NewGRPCServer(srv, ts, zap.NewNop())
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return proto.NewPeopleServiceClient(conn)
}

func newServer(opts ...generator.Option) *Server {
	svc := service.NewService(generator.New(opts...), formatter.New(), repository.NewMemoryRepository(), zap.NewNop())
	return NewServer(svc, zap.NewNop())
}

func TestServer_Generate(t *testing.T) {
	client := startServer(t, newServer(), "")
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		resp, err := client.Generate(ctx, &proto.GenerateRequest{Count: 2})
		require.NoError(t, err)
		assert.Equal(t, int32(2), resp.Count)
		assert.Equal(t, "text", resp.Format)
		assert.Equal(t, "ar", resp.Locale)
		assert.NotEmpty(t, resp.Text)
		assert.Empty(t, resp.Data)
	})

	t.Run("Negative count", func(t *testing.T) {
		resp, err := client.Generate(ctx, &proto.GenerateRequest{Count: -1, Format: "json"})
		require.NoError(t, err)
		assert.Equal(t, int32(0), resp.Count)
		assert.False(t, resp.Clamped)
		assert.Equal(t, "fake_people_0_ar.json", resp.Filename)
	})

	t.Run("CSV English clamped", func(t *testing.T) {
		resp, err := client.Generate(ctx, &proto.GenerateRequest{Count: 250, Format: "csv", Locale: "EN"})
		require.NoError(t, err)
		assert.Equal(t, int32(100), resp.Count)
		assert.True(t, resp.Clamped)
		assert.Equal(t, "fake_people_100_en.csv", resp.Filename)

		rows, err := csv.NewReader(bytes.NewReader(resp.Data)).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 101)
	})

	invalid := []struct {
		name string
		req  *proto.GenerateRequest
	}{
		{"Unknown format", &proto.GenerateRequest{Count: 1, Format: "xml"}},
		{"Unknown locale", &proto.GenerateRequest{Count: 1, Locale: "fr"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Generate(ctx, tt.req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestServer_GenerateInternalError(t *testing.T) {
	client := startServer(t, newServer(generator.WithSource(brokenSource{})), "")

	_, err := client.Generate(context.Background(), &proto.GenerateRequest{Count: 1})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestServer_GetStats(t *testing.T) {
	client := startServer(t, newServer(), "10.0.0.0/8")

	_, err := client.Generate(context.Background(), &proto.GenerateRequest{Count: 3, Format: "json"})
	require.NoError(t, err)

	t.Run("Trusted", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), "x-real-ip", "10.2.3.4")
		resp, err := client.GetStats(ctx, &proto.GetStatsRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Requests)
		assert.Equal(t, int64(3), resp.People)
		assert.Equal(t, map[string]int64{"json": 1}, resp.ByFormat)
		assert.Equal(t, map[string]int64{"ar": 1}, resp.ByLocale)
	})

	t.Run("Untrusted", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), "x-real-ip", "192.168.0.1")
		_, err := client.GetStats(ctx, &proto.GetStatsRequest{})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("No address", func(t *testing.T) {
		_, err := client.GetStats(context.Background(), &proto.GetStatsRequest{})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestServer_Recovery(t *testing.T) {
	client := startServer(t, panicServer{}, "")

	_, err := client.Generate(context.Background(), &proto.GenerateRequest{Count: 1})
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = client.GetStats(metadata.AppendToOutgoingContext(context.Background(), "x-real-ip", "10.0.0.1"), &proto.GetStatsRequest{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestUnimplemented(t *testing.T) {
	var s proto.UnimplementedPeopleServiceServer
	_, err := s.Generate(context.Background(), &proto.GenerateRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
