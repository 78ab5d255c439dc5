package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	haulboardpb "github.com/haulboard/haulboard/gen/proto/haulboard/v1"
	"github.com/haulboard/haulboard/internal/repository"
	"github.com/haulboard/haulboard/internal/utils"
)

type DriverService struct {
	haulboardpb.UnimplementedDriversServiceServer
	driverRepo repository.DriverRepository
	logger     *slog.Logger
}

func NewDriverService(driverRepo repository.DriverRepository, logger *slog.Logger) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		logger:     logger,
	}
}

func (s *DriverService) CreateDriver(ctx context.Context, req *haulboardpb.CreateDriverRequest) (*haulboardpb.CreateDriverResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	if existing, err := s.driverRepo.GetByName(ctx, name); err == nil {
		s.logger.Info("driver already exists", "driver_id", existing.ID, "name", name)
		return &haulboardpb.CreateDriverResponse{Driver: utils.ToPBDriver(existing)}, nil
	}

	d, err := s.driverRepo.Create(ctx, name)
	if err != nil {
		s.logger.Error("failed to create driver", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create driver: %v", err)
	}
	s.logger.Info("driver created", "driver_id", d.ID, "name", name)
	return &haulboardpb.CreateDriverResponse{Driver: utils.ToPBDriver(d)}, nil
}

func (s *DriverService) ListDrivers(ctx context.Context, _ *haulboardpb.ListDriversRequest) (*haulboardpb.ListDriversResponse, error) {
	rows, err := s.driverRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list drivers", "error", err)
		return nil, status.Errorf(codes.Internal, "list drivers: %v", err)
	}
	out := make([]*haulboardpb.Driver, 0, len(rows))
	for _, d := range rows {
		out = append(out, utils.ToPBDriver(d))
	}
	return &haulboardpb.ListDriversResponse{Drivers: out}, nil
}
