package potential

import (
	"errors"
	"math"
	"testing"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid", Config{M1: 2, M2: 0.5, OrbitalRadius: 1}, nil},
		{"zero m1", Config{M1: 0, M2: 0.5, OrbitalRadius: 1}, ErrNonPositiveMass},
		{"negative m1", Config{M1: -1, M2: 0.5, OrbitalRadius: 1}, ErrNonPositiveMass},
		{"zero m2", Config{M1: 2, M2: 0, OrbitalRadius: 1}, ErrNonPositiveMass},
		{"negative m2", Config{M1: 2, M2: -1, OrbitalRadius: 1}, ErrNonPositiveMass},
		{"m2 exceeds m1", Config{M1: 1, M2: 2, OrbitalRadius: 1}, ErrMassRatioOutOfRange},
		{"zero radius", Config{M1: 2, M2: 0.5, OrbitalRadius: 0}, ErrNonPositiveRadius},
		{"negative radius", Config{M1: 2, M2: 0.5, OrbitalRadius: -3}, ErrNonPositiveRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateReportsOffendingValue(t *testing.T) {
	err := Config{M1: 1, M2: 2, OrbitalRadius: 1}.Validate()

	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cerr.Param != "m2/m1" {
		t.Errorf("expected param m2/m1, got %s", cerr.Param)
	}
	if cerr.Value != 2.0 {
		t.Errorf("expected reported ratio 2, got %g", cerr.Value)
	}
}

func TestBarycentric(t *testing.T) {
	cfg := Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
	x1, x2 := cfg.Barycentric()

	if math.Abs(x1-(-0.2)) > 1e-12 {
		t.Errorf("primary should sit at -0.2, got %g", x1)
	}
	if math.Abs(x2-0.8) > 1e-12 {
		t.Errorf("secondary should sit at 0.8, got %g", x2)
	}
}

func TestOmega(t *testing.T) {
	cfg := Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
	omega2 := cfg.Omega() * cfg.Omega()
	if math.Abs(omega2-2.5) > 1e-12 {
		t.Errorf("expected omega^2 = 2.5, got %g", omega2)
	}
}

func TestShapeMismatch(t *testing.T) {
	cfg := Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
	xg := mesh.NewMatrix(3, 4)
	yg := mesh.NewMatrix(4, 3)

	_, err := Evaluate(cfg, xg, yg)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected shape mismatch, got %v", err)
	}

	var serr *ShapeError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ShapeError, got %T", err)
	}
	if serr.XRows != 3 || serr.YRows != 4 {
		t.Errorf("error should carry both shapes, got %+v", serr)
	}
}

func TestEvaluateRejectsInvalidConfig(t *testing.T) {
	xg, yg := mesh.Meshgrid(mesh.Linspace(-1, 1, 4), mesh.Linspace(-1, 1, 4))
	_, err := Evaluate(Config{M1: -1, M2: 0.5, OrbitalRadius: 1}, xg, yg)
	if !errors.Is(err, ErrNonPositiveMass) {
		t.Fatalf("expected non-positive mass error, got %v", err)
	}
}

func BenchmarkEvaluate200(b *testing.B) {
	cfg := Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
	xg, yg := mesh.Meshgrid(mesh.Linspace(-1.5, 1.5, 200), mesh.Linspace(-1.5, 1.5, 200))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate(cfg, xg, yg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateSerial(b *testing.B) {
	cfg := Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
	xg, yg := mesh.Meshgrid(mesh.Linspace(-1.5, 1.5, 200), mesh.Linspace(-1.5, 1.5, 200))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := EvaluateWithStats(cfg, xg, yg, 1); err != nil {
			b.Fatal(err)
		}
	}
}
