package simdata

import (
	"testing"

	"simlab/domain/core"
)

func TestGenerateGroupScoresShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PerGroup = 10

	f, err := GenerateGroupScores(cfg)
	if err != nil {
		t.Fatalf("GenerateGroupScores: %v", err)
	}

	if f.Rows() != 20 {
		t.Fatalf("Rows = %d, want 20", f.Rows())
	}
	want := []string{"subject", "group", "score", "age"}
	got := f.Names()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names = %v, want %v", got, want)
		}
	}

	groupCol, _ := f.Column("group")
	for i := 0; i < 10; i++ {
		if groupCol.Cell(i) != "control" {
			t.Fatalf("row %d group = %s, want control (contiguous blocks)", i, groupCol.Cell(i))
		}
	}
	for i := 10; i < 20; i++ {
		if groupCol.Cell(i) != "treatment" {
			t.Fatalf("row %d group = %s, want treatment", i, groupCol.Cell(i))
		}
	}
}

func TestGenerateGroupScoresDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PerGroup = 5

	a, err := GenerateGroupScores(cfg)
	if err != nil {
		t.Fatalf("GenerateGroupScores: %v", err)
	}
	b, err := GenerateGroupScores(cfg)
	if err != nil {
		t.Fatalf("GenerateGroupScores: %v", err)
	}

	sa, _ := a.Numeric("score")
	sb, _ := b.Numeric("score")
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("score %d differs across runs with the same seed", i)
		}
	}
}

func TestGenerateGroupScoresAgeRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PerGroup = 40

	f, err := GenerateGroupScores(cfg)
	if err != nil {
		t.Fatalf("GenerateGroupScores: %v", err)
	}
	ages, ok := f.Numeric("age")
	if !ok {
		t.Fatal("age column should be numeric")
	}
	for i, a := range ages {
		if a < cfg.AgeMin || a > cfg.AgeMax {
			t.Fatalf("age %d = %v outside [%v, %v]", i, a, cfg.AgeMin, cfg.AgeMax)
		}
		if a != float64(int(a)) {
			t.Fatalf("age %d = %v should be a whole year", i, a)
		}
	}
}

func TestGenerateGroupScoresValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroupMeans = []float64{100}
	if _, err := GenerateGroupScores(cfg); !core.IsInvalidArgument(err) {
		t.Errorf("mismatched means should be invalid-argument, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.PerGroup = 0
	if _, err := GenerateGroupScores(cfg); !core.IsInvalidArgument(err) {
		t.Errorf("per_group=0 should be invalid-argument, got %v", err)
	}
}
