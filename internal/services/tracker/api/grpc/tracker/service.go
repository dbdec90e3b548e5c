// Package tracker implements the cyclingtracker.CyclingTracker gRPC API.
package tracker

import (
	"context"
	"errors"
	"io"
	"log"

	cyclingtrackerv1 "github.com/louisbranch/cyclingtracker/api/cyclingtracker/v1"
	apperrors "github.com/louisbranch/cyclingtracker/internal/platform/errors"
	grpcmeta "github.com/louisbranch/cyclingtracker/internal/platform/grpc/metadata"
	"github.com/louisbranch/cyclingtracker/internal/platform/requestctx"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/orchestrator"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/storage"
	"github.com/louisbranch/cyclingtracker/internal/services/tracker/workout"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service implements the CyclingTracker gRPC API.
type Service struct {
	cyclingtrackerv1.UnimplementedCyclingTrackerServer
	workouts     storage.WorkoutStore
	plans        storage.PlanStore
	distanceRule workout.DistanceRule
}

// NewService builds a tracker service over the given stores. rule decides
// how streamed measurements add distance.
func NewService(workouts storage.WorkoutStore, plans storage.PlanStore, rule workout.DistanceRule) *Service {
	return &Service{
		workouts:     workouts,
		plans:        plans,
		distanceRule: rule,
	}
}

// SaveWorkout summarizes and stores a finished ride.
func (s *Service) SaveWorkout(ctx context.Context, in *cyclingtrackerv1.Workout) (*cyclingtrackerv1.WorkoutSummary, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "workout is required")
	}
	summary := workout.Summarize(in.GetKmRidden(), measurementsFromProto(in.GetMeasurements()))
	saved, err := s.save(ctx, summary)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}
	return summaryToProto(saved), nil
}

// GetMeasurements streams a stored workout's measurements in recorded order.
func (s *Service) GetMeasurements(in *cyclingtrackerv1.WorkoutRequest, stream grpc.ServerStreamingServer[cyclingtrackerv1.Measurement]) error {
	if in.GetId() <= 0 {
		return apperrors.HandleError(apperrors.New(apperrors.CodeWorkoutIDInvalid, "workout id must be positive"))
	}
	measurements, err := s.workouts.GetMeasurements(stream.Context(), in.GetId())
	if err != nil {
		return apperrors.HandleError(err)
	}
	for _, m := range measurements {
		if err := stream.Send(measurementToProto(m)); err != nil {
			return err
		}
	}
	return nil
}

// RecordWorkout absorbs a client stream of measurements and stores the
// resulting summary once the client closes its side.
func (s *Service) RecordWorkout(stream grpc.ClientStreamingServer[cyclingtrackerv1.Measurement, cyclingtrackerv1.WorkoutSummary]) error {
	ctx := stream.Context()
	acc := workout.NewAccumulator(s.distanceRule)
	for {
		in, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		acc.Add(measurementFromProto(in))
	}

	saved, err := s.save(ctx, acc.Summary())
	if err != nil {
		return apperrors.HandleError(err)
	}
	log.Printf("workout recorded id=%d measurements=%d request_id=%s", saved.ID, acc.Len(), grpcmeta.RequestIDFromContext(ctx))
	return stream.SendAndClose(summaryToProto(saved))
}

// CreateWorkoutPlan validates and stores a plan for later guided sessions.
func (s *Service) CreateWorkoutPlan(ctx context.Context, in *cyclingtrackerv1.WorkoutPlan) (*cyclingtrackerv1.WorkoutPlanToken, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "workout plan is required")
	}
	plan := planFromProto(in)
	if err := plan.Validate(); err != nil {
		return nil, apperrors.HandleError(err)
	}
	planID, err := s.plans.SavePlan(ctx, plan)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}
	return &cyclingtrackerv1.WorkoutPlanToken{WorkoutToken: planID}, nil
}

// RunWorkout answers each step event of a guided session with one control
// step, in order.
func (s *Service) RunWorkout(stream grpc.BidiStreamingServer[cyclingtrackerv1.WorkoutStep, cyclingtrackerv1.ControlStep]) error {
	ctx := stream.Context()
	guided := orchestrator.NewGuidedSession(s.plans, s.workouts, s.distanceRule)
	log.Printf("guided session started username=%s request_id=%s", requestctx.UsernameFromContext(ctx), grpcmeta.RequestIDFromContext(ctx))

	err := orchestrator.Pump[*cyclingtrackerv1.WorkoutStep, *cyclingtrackerv1.ControlStep](stream,
		func(ctx context.Context, in *cyclingtrackerv1.WorkoutStep) (*cyclingtrackerv1.ControlStep, error) {
			event, err := stepEventFromProto(in)
			if err != nil {
				return nil, err
			}
			step, err := guided.Handle(ctx, event)
			if err != nil {
				return nil, err
			}
			return controlStepToProto(step), nil
		})
	return apperrors.HandleError(err)
}

// GetCurrentAverages answers each measurement with the summary of every
// measurement received so far on the call.
func (s *Service) GetCurrentAverages(stream grpc.BidiStreamingServer[cyclingtrackerv1.Measurement, cyclingtrackerv1.WorkoutSummary]) error {
	live := orchestrator.NewLiveAverages(s.distanceRule)
	err := orchestrator.Pump[*cyclingtrackerv1.Measurement, *cyclingtrackerv1.WorkoutSummary](stream,
		func(ctx context.Context, in *cyclingtrackerv1.Measurement) (*cyclingtrackerv1.WorkoutSummary, error) {
			summary, err := live.Handle(ctx, measurementFromProto(in))
			if err != nil {
				return nil, err
			}
			return summaryToProto(summary), nil
		})
	return apperrors.HandleError(err)
}

func (s *Service) save(ctx context.Context, summary workout.Summary) (workout.Summary, error) {
	if s.workouts == nil {
		return workout.Summary{}, errors.New("workout storage is not configured")
	}
	id, err := s.workouts.SaveWorkout(ctx, summary)
	if err != nil {
		return workout.Summary{}, apperrors.Wrap(apperrors.CodeStorageFailure, "save workout", err)
	}
	summary.ID = id
	return summary, nil
}
