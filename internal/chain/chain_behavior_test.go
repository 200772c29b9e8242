package chain_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/armchain/internal/chain"
)

var _ = Describe("Chain", func() {
	var (
		origin = chain.Vec2{X: 400, Y: 300}
		c      *chain.Chain
	)

	BeforeEach(func() {
		var err error
		c, err = chain.New(origin, chain.DefaultParams(), chain.NewSource(2024))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("the root", func() {
		It("stays fixed through appends, removals and updates", func() {
			for i := 0; i < 8; i++ {
				c.Append()
				c.Update(0.05)
				if i%3 == 0 {
					c.RemoveTail()
				}
				Expect(c.Root().Angle).To(BeZero())
				Expect(c.Root().Position).To(Equal(origin))
			}
		})

		It("is never removed", func() {
			Expect(c.RemoveTail()).To(BeFalse())
			Expect(c.Len()).To(Equal(1))
		})
	})

	Describe("Append", func() {
		It("grows the chain by exactly one, starting at the old tail", func() {
			for i := 0; i < 5; i++ {
				c.Update(0.1)
				before := c.Len()
				tail := c.Tail().Position
				s := c.Append()
				Expect(c.Len()).To(Equal(before + 1))
				Expect(s.Position).To(Equal(tail))
				Expect(s.Angle).To(BeZero())
			}
		})
	})

	Describe("RemoveTail", func() {
		It("returns to the root after matching removals and then no-ops", func() {
			c.Append()
			c.Append()
			c.Append()
			Expect(c.Len()).To(Equal(4))

			for i := 0; i < 3; i++ {
				Expect(c.RemoveTail()).To(BeTrue())
			}
			Expect(c.Len()).To(Equal(1))

			Expect(c.RemoveTail()).To(BeFalse())
			Expect(c.Len()).To(Equal(1))
			Expect(c.RenderData()).To(HaveLen(1))
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			for i := 0; i < 6; i++ {
				c.Append()
			}
		})

		It("keeps every segment at its length from the predecessor", func() {
			for frame := 0; frame < 120; frame++ {
				c.Update(1.0 / 60)
			}
			segs := c.Segments()
			for i := 1; i < len(segs); i++ {
				Expect(segs[i].Position.Dist(segs[i-1].Position)).
					To(BeNumerically("~", segs[i].Length, 1e-9))
			}
		})

		It("accumulates angle linearly in time", func() {
			const dt, n = 0.01, 500
			for i := 0; i < n; i++ {
				c.Update(dt)
			}
			for i := 1; i < c.Len(); i++ {
				s := c.At(i)
				Expect(s.Angle).To(BeNumerically("~", s.AngularSpeed*dt*n, 1e-9))
			}
		})

		It("places each joint on a circle around its parent", func() {
			c.Update(0.25)
			joints := c.RenderData()
			for i := 1; i < len(joints); i++ {
				s := c.At(i)
				Expect(joints[i].Position.X).To(BeNumerically("~", joints[i].Parent.X+s.Length*math.Cos(s.Angle), 1e-9))
				Expect(joints[i].Position.Y).To(BeNumerically("~", joints[i].Parent.Y+s.Length*math.Sin(s.Angle), 1e-9))
			}
		})
	})

	Describe("a single arm with unit speed", func() {
		It("lands at origin + 100*(cos 1, sin 1) after one second", func() {
			p := chain.DefaultParams()
			p.Length = chain.Range{Min: 100, Max: 100}
			p.AngularSpeed = chain.Range{Min: 1, Max: 1}
			arm, err := chain.New(origin, p, chain.NewSource(1))
			Expect(err).NotTo(HaveOccurred())

			arm.Append()
			Expect(arm.Len()).To(Equal(2))
			arm.Update(1.0)

			s := arm.At(1)
			Expect(s.Angle).To(BeNumerically("~", 1.0, 1e-12))
			Expect(s.Position.X).To(BeNumerically("~", 400+100*math.Cos(1), 1e-9))
			Expect(s.Position.Y).To(BeNumerically("~", 300+100*math.Sin(1), 1e-9))
		})
	})
})
