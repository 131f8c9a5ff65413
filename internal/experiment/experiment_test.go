package experiment

import (
	"context"
	"math"
	"testing"

	"simlab/domain/core"
)

func TestSamplingDistribution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trials = 500

	report, err := SamplingDistribution(context.Background(), cfg)
	if err != nil {
		t.Fatalf("SamplingDistribution: %v", err)
	}

	if report.RunID.IsEmpty() {
		t.Error("report should carry a run ID")
	}
	if report.Means.Count != 500 {
		t.Errorf("Means.Count = %d, want 500", report.Means.Count)
	}
	// Mean of sample means should sit near the population mean, and the
	// spread should shrink roughly to sd/sqrt(n).
	if math.Abs(report.Means.Mean-cfg.Mean) > 1 {
		t.Errorf("mean of means = %.3f, want ~%.1f", report.Means.Mean, cfg.Mean)
	}
	se := cfg.StdDev / math.Sqrt(float64(cfg.SampleSize))
	if report.Means.StdDev > 2*se || report.Means.StdDev < se/2 {
		t.Errorf("sd of means = %.3f, want near %.3f", report.Means.StdDev, se)
	}
}

func TestSamplingDistributionReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trials = 50

	a, err := SamplingDistribution(context.Background(), cfg)
	if err != nil {
		t.Fatalf("SamplingDistribution: %v", err)
	}
	b, err := SamplingDistribution(context.Background(), cfg)
	if err != nil {
		t.Fatalf("SamplingDistribution: %v", err)
	}

	if a.Means != b.Means {
		t.Error("identical seeds should produce identical summaries")
	}
	if a.RunID == b.RunID {
		t.Error("each run should get its own ID")
	}
}

func TestSamplingDistributionWorkersAgree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trials = 64

	serial, err := SamplingDistribution(context.Background(), cfg)
	if err != nil {
		t.Fatalf("workers=1: %v", err)
	}

	cfg.Workers = 8
	parallel, err := SamplingDistribution(context.Background(), cfg)
	if err != nil {
		t.Fatalf("workers=8: %v", err)
	}

	if serial.Means != parallel.Means {
		t.Error("worker count must not change the result")
	}
}

func TestSamplingDistributionValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trials = 0
	if _, err := SamplingDistribution(context.Background(), cfg); !core.IsInvalidArgument(err) {
		t.Errorf("trials=0 should be invalid-argument, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.SampleSize = 0
	if _, err := SamplingDistribution(context.Background(), cfg); !core.IsInvalidArgument(err) {
		t.Errorf("sample_size=0 should surface the sampler's error, got %v", err)
	}
}
