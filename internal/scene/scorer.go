// Package scene detects visual scene boundaries in meeting videos by
// scoring dissimilarity between consecutive frames.
package scene

import (
	"fmt"
	"math"

	"github.com/nguyentantai21042004/meeting-captioner/internal/video"
)

// Scorer weights. The three signals are independently clamped to [0,100]
// before combining; the weighted sum is therefore also in [0,100].
const (
	weightMSE       = 0.3
	weightHistogram = 0.4
	weightEdges     = 0.3

	// mseNorm divides raw mean-squared pixel error down to the 0-100
	// scale; a mean per-pixel difference of 100 saturates the channel.
	mseNorm = 100.0

	// edgeThreshold is the Sobel gradient magnitude above which a pixel
	// counts as an edge.
	edgeThreshold = 100.0
)

// Scorer scores dissimilarity between two grayscale frames. Pure and
// deterministic; identical frames score 0, unrelated frames approach 100.
type Scorer struct{}

// NewScorer creates a frame difference scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score combines mean-squared pixel difference, histogram correlation
// distance and edge-map disagreement into one [0,100] score. Frames must
// share dimensions; mismatched frames are a caller bug.
func (s *Scorer) Score(a, b video.Frame) float64 {
	if a.Width != b.Width || a.Height != b.Height {
		panic(fmt.Sprintf("scene: frame dimensions mismatch: %dx%d vs %dx%d",
			a.Width, a.Height, b.Width, b.Height))
	}

	mse := clamp(meanSquaredError(a.Pixels, b.Pixels) / mseNorm)
	hist := clamp((1 - histogramCorrelation(a.Pixels, b.Pixels)) * 100)
	edges := clamp(edgeDisagreement(a, b) * 100)

	return mse*weightMSE + hist*weightHistogram + edges*weightEdges
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func meanSquaredError(a, b []byte) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum / float64(len(a))
}

// histogramCorrelation computes the Pearson correlation between the
// 256-bin intensity histograms of the two frames. Returns 1 for identical
// distributions, values near 0 or below for unrelated ones.
func histogramCorrelation(a, b []byte) float64 {
	var ha, hb [256]float64
	for _, p := range a {
		ha[p]++
	}
	for _, p := range b {
		hb[p]++
	}

	var meanA, meanB float64
	for i := 0; i < 256; i++ {
		meanA += ha[i]
		meanB += hb[i]
	}
	meanA /= 256
	meanB /= 256

	var cov, varA, varB float64
	for i := 0; i < 256; i++ {
		da := ha[i] - meanA
		db := hb[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		// Flat histograms: identical distributions correlate perfectly
		if varA == varB {
			return 1
		}
		return 0
	}

	return cov / math.Sqrt(varA*varB)
}

// edgeDisagreement builds a Sobel edge map for each frame and returns the
// fraction of pixels whose edge classification differs.
func edgeDisagreement(a, b video.Frame) float64 {
	ea := edgeMap(a)
	eb := edgeMap(b)

	var differing int
	for i := range ea {
		if ea[i] != eb[i] {
			differing++
		}
	}
	return float64(differing) / float64(len(ea))
}

func edgeMap(f video.Frame) []bool {
	w, h := f.Width, f.Height
	edges := make([]bool, w*h)

	at := func(x, y int) float64 {
		return float64(f.Pixels[y*w+x])
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)

			if math.Sqrt(gx*gx+gy*gy) > edgeThreshold {
				edges[y*w+x] = true
			}
		}
	}
	return edges
}
