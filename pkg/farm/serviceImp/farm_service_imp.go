package serviceImp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"agrisense/entities"
	"agrisense/pkg/apperr"
	"agrisense/pkg/farm/repository"
	"agrisense/pkg/farm/service"
	"agrisense/pkg/logger"
)

const (
	// GreenPointsPerView is awarded each time a farm dashboard is fetched.
	GreenPointsPerView = 5
	nextIrrigationIn   = 48 * time.Hour
	isoMillis          = "2006-01-02T15:04:05.000Z"
)

type FarmSvc struct {
	r   repository.FarmRepository
	log logger.Logger
	now func() time.Time
}

func NewFarmService(r repository.FarmRepository, log logger.Logger) *FarmSvc {
	return &FarmSvc{r: r, log: logger.Component(log, "farm_service"), now: time.Now}
}

// WithClock replaces the time source used for irrigation timestamps.
func (s *FarmSvc) WithClock(now func() time.Time) *FarmSvc {
	s.now = now
	return s
}

var _ service.FarmService = (*FarmSvc)(nil)

func (s *FarmSvc) Dashboard(ctx context.Context, uid, farmID string) (*entities.FarmDashboard, error) {
	if uid == "" {
		return nil, apperr.New(apperr.Unauthenticated, "The function must be called while authenticated.")
	}
	if strings.TrimSpace(farmID) == "" {
		return nil, apperr.New(apperr.InvalidArgument, "The function must be called with a 'farmId' argument.")
	}

	farm, err := s.r.FindByID(ctx, farmID)
	if err != nil {
		return nil, s.classify("load farm "+farmID, err)
	}
	points, err := s.r.AddGreenPoints(ctx, farm.FarmID, GreenPointsPerView)
	if err != nil {
		return nil, s.classify("award green points "+farmID, err)
	}

	next := s.now().Add(nextIrrigationIn).UTC().Format(isoMillis)
	zones := make([]entities.ScheduledZone, 0, len(farm.IrrigationZones))
	for _, z := range farm.IrrigationZones {
		zones = append(zones, entities.ScheduledZone{IrrigationZone: z, NextIrrigation: next})
	}

	return &entities.FarmDashboard{
		SoilHealth: entities.FarmSoilHealth{Fertility: "Good", Prediction: "Stable"},
		CropRecommendations: []entities.CropSuitability{
			{Crop: "Tomato", Suitability: "92%"},
			{Crop: "Potato", Suitability: "85%"},
			{Crop: "Corn", Suitability: "78%"},
		},
		IrrigationZones: zones,
		GrowthTracking:  entities.GrowthTracking{PredictedYield: "250kg", HealthScore: 88},
		SmartRecommendations: []string{
			"Consider applying organic fertilizer to Zone A.",
			"Scout for pests in the cornfield.",
		},
		GreenPoints: points,
		FarmData:    *farm,
	}, nil
}

func (s *FarmSvc) Create(ctx context.Context, uid string, in service.CreateFarmInput) (*entities.Farm, error) {
	if uid == "" {
		return nil, apperr.New(apperr.Unauthenticated, "authentication required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "name is required")
	}
	if in.SizeAcres < 0 {
		return nil, apperr.New(apperr.InvalidArgument, "size_acres must not be negative")
	}
	zones := make([]entities.IrrigationZone, 0, len(in.IrrigationZones))
	for _, z := range in.IrrigationZones {
		if z.ZoneID == "" {
			z.ZoneID = uuid.NewString()
		}
		zones = append(zones, z)
	}

	f := &entities.Farm{
		FarmID:          uuid.NewString(),
		OwnerID:         uid,
		Name:            name,
		Location:        strings.TrimSpace(in.Location),
		SizeAcres:       in.SizeAcres,
		IrrigationZones: zones,
	}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, s.classify("create farm", err)
	}
	return f, nil
}

// Get hides farms owned by someone else behind NotFound.
func (s *FarmSvc) Get(ctx context.Context, uid, farmID string) (*entities.Farm, error) {
	f, err := s.r.FindByID(ctx, farmID)
	if err != nil {
		return nil, s.classify("load farm "+farmID, err)
	}
	if f.OwnerID != uid {
		return nil, apperr.New(apperr.NotFound, "Farm not found.")
	}
	return f, nil
}

func (s *FarmSvc) ListMine(ctx context.Context, uid string) ([]entities.Farm, error) {
	out, err := s.r.ListByOwner(ctx, uid)
	if err != nil {
		return nil, s.classify("list farms", err)
	}
	if out == nil {
		out = []entities.Farm{}
	}
	return out, nil
}

func (s *FarmSvc) classify(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(apperr.NotFound, "Farm not found.")
	}
	s.log.Errorf("%s: %v", op, err)
	return apperr.Wrap(apperr.Internal, "An internal error occurred.", err)
}
