package grpc

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/tempizhere/fakebot/internal/grpc/proto"
	"github.com/tempizhere/fakebot/internal/middleware"
)

// Ключи метаданных
const (
	realIPKey    = "x-real-ip"
	requestIDKey = "x-request-id"
)

// защищённые подсетью методы
var internalMethods = map[string]bool{
	proto.GetStatsFullMethodName: true,
}

// TrustedSubnetInterceptor пропускает внутренние методы только из доверенной подсети.
// Адрес берётся из метаданных x-real-ip, иначе из адреса соединения.
func TrustedSubnetInterceptor(subnet *middleware.TrustedSubnet, logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !internalMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		clientIP := clientAddr(ctx)
		if !subnet.Allows(clientIP) {
			logger.Warn("Access denied from untrusted IP",
				zap.String("method", info.FullMethod),
				zap.String("ip", clientIP),
				zap.String("trusted_subnet", subnet.String()))
			return nil, status.Error(codes.PermissionDenied, "access denied")
		}
		return handler(ctx, req)
	}
}

// LoggingInterceptor пишет в лог каждый вызов
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("client_ip", clientAddr(ctx)),
			zap.String("status_code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		}
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(requestIDKey); len(ids) > 0 {
				fields = append(fields, zap.String("request_id", ids[0]))
			}
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logger.Info("gRPC request", fields...)

		return resp, err
	}
}

// RecoveryInterceptor превращает панику обработчика в codes.Internal
func RecoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic in gRPC handler", zap.String("method", info.FullMethod), zap.Any("panic", r))
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

func clientAddr(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ips := md.Get(realIPKey); len(ips) > 0 && ips[0] != "" {
			return ips[0]
		}
	}
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	if tcpAddr, ok := p.Addr.(*net.TCPAddr); ok {
		return tcpAddr.IP.String()
	}
	return p.Addr.String()
}
