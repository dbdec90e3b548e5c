package cyclingtrackerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CyclingTrackerServiceName is the fully-qualified CyclingTracker service name.
const CyclingTrackerServiceName = "cyclingtracker.CyclingTracker"

const (
	CyclingTracker_SaveWorkout_FullMethodName        = "/cyclingtracker.CyclingTracker/SaveWorkout"
	CyclingTracker_GetMeasurements_FullMethodName    = "/cyclingtracker.CyclingTracker/GetMeasurements"
	CyclingTracker_RecordWorkout_FullMethodName      = "/cyclingtracker.CyclingTracker/RecordWorkout"
	CyclingTracker_CreateWorkoutPlan_FullMethodName  = "/cyclingtracker.CyclingTracker/CreateWorkoutPlan"
	CyclingTracker_RunWorkout_FullMethodName         = "/cyclingtracker.CyclingTracker/RunWorkout"
	CyclingTracker_GetCurrentAverages_FullMethodName = "/cyclingtracker.CyclingTracker/GetCurrentAverages"
)

// CyclingTrackerClient is the client API for the CyclingTracker service.
type CyclingTrackerClient interface {
	SaveWorkout(ctx context.Context, in *Workout, opts ...grpc.CallOption) (*WorkoutSummary, error)
	GetMeasurements(ctx context.Context, in *WorkoutRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Measurement], error)
	RecordWorkout(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[Measurement, WorkoutSummary], error)
	CreateWorkoutPlan(ctx context.Context, in *WorkoutPlan, opts ...grpc.CallOption) (*WorkoutPlanToken, error)
	RunWorkout(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[WorkoutStep, ControlStep], error)
	GetCurrentAverages(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Measurement, WorkoutSummary], error)
}

type cyclingTrackerClient struct {
	cc grpc.ClientConnInterface
}

// NewCyclingTrackerClient returns a CyclingTracker client over cc.
func NewCyclingTrackerClient(cc grpc.ClientConnInterface) CyclingTrackerClient {
	return &cyclingTrackerClient{cc}
}

func (c *cyclingTrackerClient) SaveWorkout(ctx context.Context, in *Workout, opts ...grpc.CallOption) (*WorkoutSummary, error) {
	out := new(WorkoutSummary)
	if err := c.cc.Invoke(ctx, CyclingTracker_SaveWorkout_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cyclingTrackerClient) GetMeasurements(ctx context.Context, in *WorkoutRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Measurement], error) {
	stream, err := c.cc.NewStream(ctx, &CyclingTracker_ServiceDesc.Streams[0], CyclingTracker_GetMeasurements_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WorkoutRequest, Measurement]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *cyclingTrackerClient) RecordWorkout(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[Measurement, WorkoutSummary], error) {
	stream, err := c.cc.NewStream(ctx, &CyclingTracker_ServiceDesc.Streams[1], CyclingTracker_RecordWorkout_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[Measurement, WorkoutSummary]{ClientStream: stream}, nil
}

func (c *cyclingTrackerClient) CreateWorkoutPlan(ctx context.Context, in *WorkoutPlan, opts ...grpc.CallOption) (*WorkoutPlanToken, error) {
	out := new(WorkoutPlanToken)
	if err := c.cc.Invoke(ctx, CyclingTracker_CreateWorkoutPlan_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cyclingTrackerClient) RunWorkout(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[WorkoutStep, ControlStep], error) {
	stream, err := c.cc.NewStream(ctx, &CyclingTracker_ServiceDesc.Streams[2], CyclingTracker_RunWorkout_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[WorkoutStep, ControlStep]{ClientStream: stream}, nil
}

func (c *cyclingTrackerClient) GetCurrentAverages(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Measurement, WorkoutSummary], error) {
	stream, err := c.cc.NewStream(ctx, &CyclingTracker_ServiceDesc.Streams[3], CyclingTracker_GetCurrentAverages_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[Measurement, WorkoutSummary]{ClientStream: stream}, nil
}

// CyclingTrackerServer is the server API for the CyclingTracker service.
// Implementations must embed UnimplementedCyclingTrackerServer.
type CyclingTrackerServer interface {
	SaveWorkout(context.Context, *Workout) (*WorkoutSummary, error)
	GetMeasurements(*WorkoutRequest, grpc.ServerStreamingServer[Measurement]) error
	RecordWorkout(grpc.ClientStreamingServer[Measurement, WorkoutSummary]) error
	CreateWorkoutPlan(context.Context, *WorkoutPlan) (*WorkoutPlanToken, error)
	RunWorkout(grpc.BidiStreamingServer[WorkoutStep, ControlStep]) error
	GetCurrentAverages(grpc.BidiStreamingServer[Measurement, WorkoutSummary]) error
	mustEmbedUnimplementedCyclingTrackerServer()
}

// UnimplementedCyclingTrackerServer returns Unimplemented for every method.
type UnimplementedCyclingTrackerServer struct{}

func (UnimplementedCyclingTrackerServer) SaveWorkout(context.Context, *Workout) (*WorkoutSummary, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveWorkout not implemented")
}

func (UnimplementedCyclingTrackerServer) GetMeasurements(*WorkoutRequest, grpc.ServerStreamingServer[Measurement]) error {
	return status.Error(codes.Unimplemented, "method GetMeasurements not implemented")
}

func (UnimplementedCyclingTrackerServer) RecordWorkout(grpc.ClientStreamingServer[Measurement, WorkoutSummary]) error {
	return status.Error(codes.Unimplemented, "method RecordWorkout not implemented")
}

func (UnimplementedCyclingTrackerServer) CreateWorkoutPlan(context.Context, *WorkoutPlan) (*WorkoutPlanToken, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateWorkoutPlan not implemented")
}

func (UnimplementedCyclingTrackerServer) RunWorkout(grpc.BidiStreamingServer[WorkoutStep, ControlStep]) error {
	return status.Error(codes.Unimplemented, "method RunWorkout not implemented")
}

func (UnimplementedCyclingTrackerServer) GetCurrentAverages(grpc.BidiStreamingServer[Measurement, WorkoutSummary]) error {
	return status.Error(codes.Unimplemented, "method GetCurrentAverages not implemented")
}

func (UnimplementedCyclingTrackerServer) mustEmbedUnimplementedCyclingTrackerServer() {}

// RegisterCyclingTrackerServer registers srv on s.
func RegisterCyclingTrackerServer(s grpc.ServiceRegistrar, srv CyclingTrackerServer) {
	s.RegisterService(&CyclingTracker_ServiceDesc, srv)
}

func _CyclingTracker_SaveWorkout_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Workout)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CyclingTrackerServer).SaveWorkout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CyclingTracker_SaveWorkout_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CyclingTrackerServer).SaveWorkout(ctx, req.(*Workout))
	}
	return interceptor(ctx, in, info, handler)
}

func _CyclingTracker_GetMeasurements_Handler(srv any, stream grpc.ServerStream) error {
	m := new(WorkoutRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(CyclingTrackerServer).GetMeasurements(m, &grpc.GenericServerStream[WorkoutRequest, Measurement]{ServerStream: stream})
}

func _CyclingTracker_RecordWorkout_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(CyclingTrackerServer).RecordWorkout(&grpc.GenericServerStream[Measurement, WorkoutSummary]{ServerStream: stream})
}

func _CyclingTracker_CreateWorkoutPlan_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(WorkoutPlan)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CyclingTrackerServer).CreateWorkoutPlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CyclingTracker_CreateWorkoutPlan_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CyclingTrackerServer).CreateWorkoutPlan(ctx, req.(*WorkoutPlan))
	}
	return interceptor(ctx, in, info, handler)
}

func _CyclingTracker_RunWorkout_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(CyclingTrackerServer).RunWorkout(&grpc.GenericServerStream[WorkoutStep, ControlStep]{ServerStream: stream})
}

func _CyclingTracker_GetCurrentAverages_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(CyclingTrackerServer).GetCurrentAverages(&grpc.GenericServerStream[Measurement, WorkoutSummary]{ServerStream: stream})
}

// CyclingTracker_ServiceDesc is the grpc.ServiceDesc for the CyclingTracker service.
var CyclingTracker_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CyclingTrackerServiceName,
	HandlerType: (*CyclingTrackerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SaveWorkout",
			Handler:    _CyclingTracker_SaveWorkout_Handler,
		},
		{
			MethodName: "CreateWorkoutPlan",
			Handler:    _CyclingTracker_CreateWorkoutPlan_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetMeasurements",
			Handler:       _CyclingTracker_GetMeasurements_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "RecordWorkout",
			Handler:       _CyclingTracker_RecordWorkout_Handler,
			ClientStreams: true,
		},
		{
			StreamName:    "RunWorkout",
			Handler:       _CyclingTracker_RunWorkout_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
		{
			StreamName:    "GetCurrentAverages",
			Handler:       _CyclingTracker_GetCurrentAverages_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "cyclingtracker.proto",
}
