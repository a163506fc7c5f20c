package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/weiawesome/identifier/internal/service"
	pkglog "github.com/weiawesome/identifier/pkg/log"
	pb "github.com/weiawesome/identifier/proto/id"
)

type idServer struct {
	pb.UnimplementedIDServiceServer
	svc service.IDService
}

// toStatus converts service errors to gRPC statuses.
func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownKind):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCount), service.ErrorCode(err) != "":
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *idServer) GenerateID(ctx context.Context, req *pb.GenerateIDRequest) (*pb.GenerateIDResponse, error) {
	id, err := s.svc.Generate(ctx, req.GetKind())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GenerateIDResponse{Id: id}, nil
}

func (s *idServer) GenerateBatchIDs(ctx context.Context, req *pb.GenerateBatchIDsRequest) (*pb.GenerateBatchIDsResponse, error) {
	ids, err := s.svc.GenerateBatch(ctx, req.GetKind(), int(req.GetCount()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GenerateBatchIDsResponse{Ids: ids}, nil
}

func (s *idServer) ValidateID(ctx context.Context, req *pb.ValidateIDRequest) (*pb.ValidateIDResponse, error) {
	valid, reason, err := s.svc.Validate(ctx, req.GetKind(), req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ValidateIDResponse{
		Valid:  valid,
		Reason: reason,
	}, nil
}

func (s *idServer) ParseID(ctx context.Context, req *pb.ParseIDRequest) (*pb.ParseIDResponse, error) {
	result, err := s.svc.Parse(ctx, req.GetKind(), req.GetId())
	if errors.Is(err, service.ErrUnknownKind) {
		return nil, toStatus(err)
	}
	if err != nil {
		return &pb.ParseIDResponse{
			Valid:        false,
			ErrorCode:    service.ErrorCode(err),
			ErrorMessage: err.Error(),
		}, nil
	}

	resp := &pb.ParseIDResponse{
		Valid:     true,
		Canonical: result.Canonical,
		Width:     int32(result.Width),
		HexLength: int32(result.HexLength),
	}
	if f := result.Fields; f != nil {
		resp.TimestampMs = f.TimestampMs
		resp.MachineId = f.MachineID
		resp.Sequence = f.Sequence
		resp.UuidVersion = f.UUIDVersion
		resp.UuidVariant = f.UUIDVariant
		resp.Tag = f.Tag
		resp.RandomPayload = f.RandomPayload
	}
	return resp, nil
}

func (s *idServer) ListKinds(ctx context.Context, _ *pb.ListKindsRequest) (*pb.ListKindsResponse, error) {
	kinds := s.svc.Kinds(ctx)
	resp := &pb.ListKindsResponse{Kinds: make([]*pb.Kind, 0, len(kinds))}
	for _, k := range kinds {
		resp.Kinds = append(resp.Kinds, &pb.Kind{Name: k.Name, Strategy: k.Strategy, Width: int32(k.Width)})
	}
	return resp, nil
}

// NewServer creates a gRPC server with IDService registered.
func NewServer(svc service.IDService, logger zerolog.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
	)
	pb.RegisterIDServiceServer(s, &idServer{svc: svc})
	return s
}

// StartGRPCServer creates and starts the gRPC server in a background goroutine.
func StartGRPCServer(addr string, svc service.IDService, logger zerolog.Logger) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := NewServer(svc, logger)

	go func() {
		logger.Info().Str("addr", addr).Msg("grpc server listening")
		if err := s.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server error")
		}
	}()

	return s, nil
}
