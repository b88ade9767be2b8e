// Package grpc содержит gRPC сервер генерации фиктивных людей
package grpc

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tempizhere/fakebot/internal/command"
	"github.com/tempizhere/fakebot/internal/grpc/proto"
	"github.com/tempizhere/fakebot/internal/middleware"
	"github.com/tempizhere/fakebot/internal/models"
	"github.com/tempizhere/fakebot/internal/service"
)

// Server реализует proto.PeopleServiceServer
type Server struct {
	proto.UnimplementedPeopleServiceServer
	svc    *service.Service
	logger *zap.Logger
}

// NewServer создаёт обработчик gRPC
func NewServer(svc *service.Service, logger *zap.Logger) *Server {
	return &Server{svc: svc, logger: logger}
}

// NewGRPCServer создаёт grpc.Server с интерцепторами и зарегистрированным сервисом
func NewGRPCServer(srv proto.PeopleServiceServer, subnet *middleware.TrustedSubnet, logger *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		RecoveryInterceptor(logger),
		LoggingInterceptor(logger),
		TrustedSubnetInterceptor(subnet, logger),
	))
	s := grpc.NewServer(opts...)
	proto.RegisterPeopleServiceServer(s, srv)
	return s
}

// Generate создаёт пакет по запросу
func (s *Server) Generate(ctx context.Context, req *proto.GenerateRequest) (*proto.GenerateResponse, error) {
	r, err := command.Parse([]string{strconv.Itoa(int(req.Count))})
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if req.Format != "" {
		if r.Format, err = models.ParseFormat(req.Format); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}
	if req.Locale != "" {
		if r.Locale, err = models.ParseLocale(req.Locale); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	res, err := s.svc.Generate(ctx, r, 0, service.SourceGRPC)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &proto.GenerateResponse{
		Count:       int32(res.Batch.Count()),
		Format:      res.Batch.Format.String(),
		Locale:      res.Batch.Locale.String(),
		Clamped:     r.Clamped,
		Text:        res.Payload.Text,
		Data:        res.Payload.Data,
		Filename:    res.Payload.Filename,
		ContentType: res.Payload.ContentType,
	}, nil
}

// GetStats возвращает статистику использования
func (s *Server) GetStats(ctx context.Context, _ *proto.GetStatsRequest) (*proto.GetStatsResponse, error) {
	stats, err := s.svc.Stats(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}

	resp := &proto.GetStatsResponse{
		Requests: int64(stats.Requests),
		People:   int64(stats.People),
		ByFormat: make(map[string]int64, len(stats.ByFormat)),
		ByLocale: make(map[string]int64, len(stats.ByLocale)),
	}
	for k, v := range stats.ByFormat {
		resp.ByFormat[k] = int64(v)
	}
	for k, v := range stats.ByLocale {
		resp.ByLocale[k] = int64(v)
	}
	return resp, nil
}

// mapError переводит доменные ошибки в gRPC статусы
func (s *Server) mapError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.Error("gRPC request failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}
