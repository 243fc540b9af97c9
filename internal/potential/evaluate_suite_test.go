package potential_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/potential"
)

func TestEvaluateSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Field Evaluator Suite")
}

var _ = Describe("Evaluate", func() {
	var cfg potential.Config

	BeforeEach(func() {
		cfg = potential.Config{M1: 2, M2: 0.5, OrbitalRadius: 1}
	})

	It("returns a field with the grid's shape", func() {
		xg, yg := mesh.Meshgrid(mesh.Linspace(-1.5, 1.5, 17), mesh.Linspace(-1, 1, 9))

		field, err := potential.Evaluate(cfg, xg, yg)

		Expect(err).NotTo(HaveOccurred())
		Expect(field.Rows).To(Equal(9))
		Expect(field.Cols).To(Equal(17))
	})

	It("matches the closed form at the barycenter", func() {
		// x1 = -0.2, x2 = 0.8, omega^2 = 2.5: at the origin the
		// centrifugal term vanishes and Φ = -2/0.2 - 0.5/0.8.
		Expect(cfg.At(0, 0)).To(BeNumerically("~", -10.625, 1e-9))
	})

	It("is symmetric about the x-axis", func() {
		for _, x := range mesh.Linspace(-1.5, 1.5, 31) {
			for _, y := range mesh.Linspace(0.01, 1.5, 15) {
				Expect(cfg.At(x, y)).To(Equal(cfg.At(x, -y)))
			}
		}
	})

	It("is deterministic across calls and worker counts", func() {
		xg, yg := mesh.Meshgrid(mesh.Linspace(-1.5, 1.5, 120), mesh.Linspace(-1.5, 1.5, 120))

		a, _, err := potential.EvaluateWithStats(cfg, xg, yg, 1)
		Expect(err).NotTo(HaveOccurred())
		b, _, err := potential.EvaluateWithStats(cfg, xg, yg, 8)
		Expect(err).NotTo(HaveOccurred())
		c, err := potential.Evaluate(cfg, xg, yg)
		Expect(err).NotTo(HaveOccurred())

		Expect(b.Data).To(Equal(a.Data))
		Expect(c.Data).To(Equal(a.Data))
	})

	It("propagates -Inf at body positions instead of failing", func() {
		x1, x2 := cfg.Barycentric()
		xg, yg := mesh.Meshgrid([]float64{x1, x2, 0}, []float64{0})

		field, err := potential.Evaluate(cfg, xg, yg)

		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(field.At(0, 0), -1)).To(BeTrue())
		Expect(math.IsInf(field.At(0, 1), -1)).To(BeTrue())
		Expect(math.IsInf(field.At(0, 2), 0)).To(BeFalse())
	})

	It("agrees with pointwise evaluation", func() {
		xg, yg := mesh.Meshgrid(mesh.Linspace(-1.2, 1.2, 13), mesh.Linspace(-0.9, 0.9, 7))

		field, err := potential.Evaluate(cfg, xg, yg)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < field.Rows; i++ {
			for j := 0; j < field.Cols; j++ {
				Expect(field.At(i, j)).To(Equal(cfg.At(xg.At(i, j), yg.At(i, j))))
			}
		}
	})

	It("reports evaluation stats", func() {
		xg, yg := mesh.Meshgrid(mesh.Linspace(-1, 1, 100), mesh.Linspace(-1, 1, 100))

		_, stats, err := potential.EvaluateWithStats(cfg, xg, yg, 4)

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Points).To(Equal(10000))
		Expect(stats.Workers).To(Equal(4))
		Expect(stats.Elapsed).To(BeNumerically(">", 0))
	})
})
