package quantum_test

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rpmdlab/internal/quantum"
)

var _ = Describe("EigenEnergy", func() {
	It("is linear in the state index", func() {
		Expect(quantum.EigenEnergy(2, 2, 1, false)).To(Equal(4.0))
		Expect(quantum.EigenEnergy(0, 1, 1, false)).To(Equal(0.0))
	})

	It("adds the zero-point offset when requested", func() {
		Expect(quantum.EigenEnergy(2, 2, 1, true)).To(Equal(5.0))
		Expect(quantum.EigenEnergy(0, 1, 1, true)).To(Equal(0.5))
	})
})

var _ = Describe("MatrixElement", func() {
	It("obeys the selection rule |i-j| = 1", func() {
		Expect(quantum.MatrixElement(0, 0, 1, 1, 1)).To(BeZero())
		Expect(quantum.MatrixElement(3, 3, 1, 1, 1)).To(BeZero())
		Expect(quantum.MatrixElement(0, 2, 1, 1, 1)).To(BeZero())
		Expect(quantum.MatrixElement(5, 1, 1, 1, 1)).To(BeZero())
	})

	It("matches the ladder-operator value for neighbors", func() {
		// sqrt(1/2) * sqrt(2) = 1
		Expect(quantum.MatrixElement(1, 2, 1, 1, 1)).To(BeNumerically("~", 1.0, 1e-14))
		Expect(quantum.MatrixElement(0, 1, 1, 1, 1)).To(BeNumerically("~", math.Sqrt(0.5), 1e-14))
	})

	It("is symmetric", func() {
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				Expect(quantum.MatrixElement(i, j, 1.3, 1, 1)).To(
					Equal(quantum.MatrixElement(j, i, 1.3, 1, 1)))
			}
		}
	})
})

var _ = Describe("StandardTCF", func() {
	var t []float64

	BeforeEach(func() {
		t = quantum.TimeGrid(10, 64)
	})

	It("degenerates to the zero function at IMax = 0", func() {
		p := quantum.DefaultParams()
		p.IMax = 0
		c, err := quantum.StandardTCF(t, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(HaveLen(len(t)))
		for _, v := range c {
			Expect(v).To(Equal(complex(0, 0)))
		}
	})

	It("is real and non-negative at t = 0", func() {
		c, err := quantum.StandardTCF([]float64{0}, quantum.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(imag(c[0])).To(BeNumerically("~", 0, 1e-12))
		Expect(real(c[0])).To(BeNumerically(">=", 0))
	})

	It("reproduces the thermal <q^2> at t = 0 once converged", func() {
		p := quantum.DefaultParams()
		p.IMax = 40
		c, err := quantum.StandardTCF([]float64{0}, p)
		Expect(err).NotTo(HaveOccurred())

		// <q^2> = hbar/(2 m omega) * coth(beta hbar omega / 2)
		coth := math.Cosh(0.5) / math.Sinh(0.5)
		Expect(real(c[0])).To(BeNumerically("~", 0.5*coth, 1e-6))
	})

	It("is unchanged by the zero-point convention", func() {
		p := quantum.DefaultParams()
		plain, err := quantum.StandardTCF(t, p)
		Expect(err).NotTo(HaveOccurred())

		p.ZeroPoint = true
		shifted, err := quantum.StandardTCF(t, p)
		Expect(err).NotTo(HaveOccurred())

		for k := range plain {
			Expect(cmplx.Abs(plain[k]-shifted[k])).To(BeNumerically("<", 1e-12))
		}
	})

	It("rejects non-positive frequencies", func() {
		p := quantum.DefaultParams()
		p.Omega = 0
		_, err := quantum.StandardTCF(t, p)
		Expect(err).To(MatchError(quantum.ErrFrequency))

		p.Omega = -1
		_, err = quantum.StandardTCF(t, p)
		Expect(err).To(MatchError(quantum.ErrFrequency))
	})

	It("rejects negative truncation orders", func() {
		p := quantum.DefaultParams()
		p.IMax = -1
		_, err := quantum.StandardTCF(t, p)
		Expect(err).To(MatchError(quantum.ErrTruncation))
	})
})

var _ = Describe("KuboTCF", func() {
	var t []float64

	BeforeEach(func() {
		t = quantum.TimeGrid(10, 64)
	})

	It("degenerates to the zero function at IMax = 0", func() {
		p := quantum.DefaultParams()
		p.IMax = 0
		c, err := quantum.KuboTCF(t, p)
		Expect(err).NotTo(HaveOccurred())
		for _, v := range c {
			Expect(v).To(Equal(complex(0, 0)))
		}
	})

	It("rejects an empty imaginary-time grid", func() {
		p := quantum.DefaultParams()
		p.GridL = 0
		_, err := quantum.KuboTCF(t, p)
		Expect(err).To(MatchError(quantum.ErrGrid))
	})

	It("approaches the classical value at t = 0 for a fine grid", func() {
		p := quantum.DefaultParams()
		p.IMax = 40
		p.GridL = 4000
		c, err := quantum.KuboTCF([]float64{0}, p)
		Expect(err).NotTo(HaveOccurred())

		// Kubo TCF of the harmonic oscillator is classical:
		// K(0) = 1/(beta m omega^2)
		Expect(real(c[0])).To(BeNumerically("~", 1.0, 2e-3))
	})

	It("converges to the standard TCF at high temperature as the grid refines", func() {
		p := quantum.DefaultParams()
		p.Beta = 0.05
		p.IMax = 60

		std, err := quantum.StandardTCF(t, p)
		Expect(err).NotTo(HaveOccurred())

		maxDiff := func(gridL int) float64 {
			p.GridL = gridL
			kubo, err := quantum.KuboTCF(t, p)
			Expect(err).NotTo(HaveOccurred())
			d := 0.0
			for k := range kubo {
				d = math.Max(d, cmplx.Abs(kubo[k]-std[k]))
			}
			return d
		}

		coarse := maxDiff(4)
		fine := maxDiff(400)
		Expect(fine).To(BeNumerically("<", coarse))
		Expect(fine / real(std[0])).To(BeNumerically("<", 0.05))
	})
})

var _ = Describe("ConvergedIMax", func() {
	It("grows as the tolerance tightens", func() {
		p := quantum.DefaultParams()
		loose := quantum.ConvergedIMax(p, 1e-2)
		tight := quantum.ConvergedIMax(p, 1e-8)
		Expect(loose).To(BeNumerically(">=", 1))
		Expect(tight).To(BeNumerically(">", loose))
	})

	It("suffices for a converged t = 0 value", func() {
		p := quantum.DefaultParams()
		p.IMax = quantum.ConvergedIMax(p, 1e-12)
		c, err := quantum.StandardTCF([]float64{0}, p)
		Expect(err).NotTo(HaveOccurred())

		coth := math.Cosh(0.5) / math.Sinh(0.5)
		Expect(real(c[0])).To(BeNumerically("~", 0.5*coth, 1e-6))
	})
})
