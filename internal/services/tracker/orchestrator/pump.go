// Package orchestrator runs the per-call state behind the streaming tracker
// protocols: guided sessions that walk a training plan and live averages
// that fold measurements into a running summary.
//
// Every protocol answers each inbound message with exactly one outbound
// message, in order, before reading the next one.
package orchestrator

import (
	"context"
	"errors"
	"io"
)

// Stream is the receive and send halves of a bidirectional call. A
// grpc.BidiStreamingServer[Req, Res] satisfies Stream[*Req, *Res].
type Stream[In, Out any] interface {
	Context() context.Context
	Recv() (In, error)
	Send(Out) error
}

// Handler turns one inbound message into its response.
type Handler[In, Out any] func(ctx context.Context, in In) (Out, error)

// Pump answers every inbound message on stream with handle, one at a time.
//
// A clean end of input (io.EOF) returns nil. Receive errors are returned as
// is so the caller's status propagates; handler and send errors stop the
// call without draining the rest of the input.
func Pump[In, Out any](stream Stream[In, Out], handle Handler[In, Out]) error {
	ctx := stream.Context()
	for {
		in, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		out, err := handle(ctx, in)
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := stream.Send(out); err != nil {
			return err
		}
	}
}
