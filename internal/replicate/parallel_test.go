package replicate

import (
	"context"
	"errors"
	"testing"

	"simlab/domain/core"
	"simlab/internal/rng"
	"simlab/internal/sample"
)

func meanTrial(s *rng.Stream) (Outcome, error) {
	xs, err := sample.Normal(s, 20, 5, 2)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return Scalar(sum / float64(len(xs))), nil
}

func TestReplicateStreamsOrderIndependentOfWorkers(t *testing.T) {
	ctx := context.Background()

	serial, err := ReplicateStreams(ctx, 16, 42, meanTrial, Simplify, 1)
	if err != nil {
		t.Fatalf("ReplicateStreams(workers=1): %v", err)
	}
	parallel, err := ReplicateStreams(ctx, 16, 42, meanTrial, Simplify, 8)
	if err != nil {
		t.Fatalf("ReplicateStreams(workers=8): %v", err)
	}

	if serial.Kind != KindFlat || parallel.Kind != KindFlat {
		t.Fatal("mean trials should simplify to a flat collection")
	}
	for i := range serial.Flat {
		if serial.Flat[i] != parallel.Flat[i] {
			t.Fatalf("trial %d differs between worker counts: %v vs %v",
				i, serial.Flat[i], parallel.Flat[i])
		}
	}
}

func TestReplicateStreamsTrialFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReplicateStreams(context.Background(), 8, 1, func(s *rng.Stream) (Outcome, error) {
		if s.Float64() >= 0 { // always fails
			return nil, boom
		}
		return Scalar(0), nil
	}, List, 4)
	if !errors.Is(err, boom) {
		t.Errorf("trial failure should propagate, got %v", err)
	}
}

func TestReplicateStreamsValidation(t *testing.T) {
	_, err := ReplicateStreams(context.Background(), 0, 1, meanTrial, List, 2)
	if !core.IsInvalidArgument(err) {
		t.Errorf("count=0 should be invalid-argument, got %v", err)
	}
	_, err = ReplicateStreams(context.Background(), 3, 1, nil, List, 2)
	if !core.IsInvalidArgument(err) {
		t.Errorf("nil trial should be invalid-argument, got %v", err)
	}
}

func TestReplicateStreamsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReplicateStreams(ctx, 64, 7, meanTrial, List, 2)
	if err == nil {
		t.Skip("all trials ran before cancellation was observed")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
