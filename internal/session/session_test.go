package session_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/hull"
	"github.com/hullscope/hullscope/internal/projection"
	"github.com/hullscope/hullscope/internal/session"
	"github.com/hullscope/hullscope/internal/trace"
	"github.com/hullscope/hullscope/internal/wire"
)

// validPayload builds a coherent comparison payload from real algorithm
// runs with fixed timings.
func validPayload() wire.ComparisonResult {
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}}
	jarvisHull, jarvisSteps := hull.JarvisSteps(points)
	grahamHull, grahamSteps := hull.GrahamSteps(points)

	return wire.ComparisonResult{
		Points: points,
		JarvisResult: wire.AlgorithmResult{
			Algorithm:     trace.Jarvis.DisplayName(),
			Points:        points,
			Hull:          jarvisHull,
			HullSize:      len(jarvisHull),
			ExecutionTime: 0.004,
			Steps:         jarvisSteps,
		},
		GrahamResult: wire.AlgorithmResult{
			Algorithm:     trace.Graham.DisplayName(),
			Points:        points,
			Hull:          grahamHull,
			HullSize:      len(grahamHull),
			ExecutionTime: 0.002,
			Steps:         grahamSteps,
		},
	}
}

var _ = Describe("Decode", func() {
	It("binds a coherent payload", func() {
		sess, err := session.Decode(validPayload())
		Expect(err).NotTo(HaveOccurred())

		Expect(sess.NumPoints()).To(Equal(5))
		Expect(sess.Jarvis().HullSize).To(Equal(4))
		Expect(sess.Graham().HullSize).To(Equal(4))
		Expect(sess.Trace(trace.Jarvis).Len()).To(Equal(sess.Summary().JarvisSteps))
		Expect(sess.MaxSteps()).To(Equal(sess.Summary().JarvisSteps),
			"gift wrapping records more steps than the scan on this input")
	})

	It("derives the summary from timings, ignoring any payload verdict", func() {
		payload := validPayload()
		sess, err := session.Decode(payload)
		Expect(err).NotTo(HaveOccurred())

		sum := sess.Summary()
		Expect(sum.Faster).To(Equal(trace.Graham))
		Expect(sum.TimeDifference).To(BeNumerically("~", 0.002, 1e-12))
		Expect(sum.SpeedRatio).To(BeNumerically("~", 2.0, 1e-12))
		Expect(sum.HullSizesMatch).To(BeTrue())
	})

	It("prefers gift wrapping on an exact tie", func() {
		payload := validPayload()
		payload.JarvisResult.ExecutionTime = 0.003
		payload.GrahamResult.ExecutionTime = 0.003

		sess, err := session.Decode(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(sess.Summary().Faster).To(Equal(trace.Jarvis))
		Expect(sess.Summary().SpeedRatio).To(Equal(1.0))
	})

	It("treats two zero timings as equal speed", func() {
		payload := validPayload()
		payload.JarvisResult.ExecutionTime = 0
		payload.GrahamResult.ExecutionTime = 0

		sess, err := session.Decode(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(sess.Summary().Faster).To(Equal(trace.Jarvis))
		Expect(sess.Summary().SpeedRatio).To(Equal(1.0))
		Expect(sess.Summary().TimeDifference).To(BeZero())
	})

	It("accepts empty step traces as an already-finished run", func() {
		payload := validPayload()
		payload.JarvisResult.Steps = nil
		payload.GrahamResult.Steps = nil

		sess, err := session.Decode(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(sess.MaxSteps()).To(BeZero())
		Expect(sess.Summary().JarvisSteps).To(BeZero())

		layers := sess.Project(trace.Jarvis, 0)
		Expect(layers).To(HaveKey(projection.LayerAllPoints))
		Expect(layers).To(HaveLen(1))
	})

	DescribeTable("rejects malformed payloads",
		func(mutate func(*wire.ComparisonResult)) {
			payload := validPayload()
			mutate(&payload)
			_, err := session.Decode(payload)
			Expect(err).To(MatchError(session.ErrMalformedSession))
		},
		Entry("fewer than 3 input points", func(p *wire.ComparisonResult) {
			p.Points = p.Points[:2]
		}),
		Entry("empty hull", func(p *wire.ComparisonResult) {
			p.GrahamResult.Hull = nil
		}),
		Entry("hull size disagrees with hull", func(p *wire.ComparisonResult) {
			p.JarvisResult.HullSize = 17
		}),
		Entry("negative execution time", func(p *wire.ComparisonResult) {
			p.JarvisResult.ExecutionTime = -0.001
		}),
		Entry("unknown step kind", func(p *wire.ComparisonResult) {
			p.GrahamResult.Steps = append(p.GrahamResult.Steps, trace.Step{Kind: "teleport"})
		}),
	)

	It("is not affected by later mutation of the payload", func() {
		payload := validPayload()
		sess, err := session.Decode(payload)
		Expect(err).NotTo(HaveOccurred())

		payload.Points[0] = geom.Point{X: -99, Y: -99}
		payload.JarvisResult.Hull[0] = geom.Point{X: -99, Y: -99}
		payload.JarvisResult.Steps[0].Description = "tampered"

		Expect(sess.Points()[0]).To(Equal(geom.Point{X: 0, Y: 0}))
		Expect(sess.Jarvis().Hull[0]).NotTo(Equal(geom.Point{X: -99, Y: -99}))
		Expect(sess.Trace(trace.Jarvis).At(0).Description).NotTo(Equal("tampered"))
	})
})

var _ = Describe("Project", func() {
	It("clamps past-the-end positions onto the final hull", func() {
		sess, err := session.Decode(validPayload())
		Expect(err).NotTo(HaveOccurred())

		layers := sess.Project(trace.Graham, sess.MaxSteps()+100)
		Expect(layers).To(HaveKey(projection.LayerFinalHull))

		ring := layers[projection.LayerFinalHull]
		Expect(ring[0]).To(Equal(ring[len(ring)-1]), "final hull layer is a closed ring")
	})

	It("projects each algorithm from its own trace", func() {
		sess, err := session.Decode(validPayload())
		Expect(err).NotTo(HaveOccurred())

		Expect(sess.Project(trace.Jarvis, 0)).To(HaveKey(projection.LayerCandidateEdge))
		Expect(sess.Project(trace.Graham, 0)).To(HaveKey(projection.LayerStackLower))
	})
})
