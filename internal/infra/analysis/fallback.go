package analysis

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"

	"iriscan/internal/domain/entity"
	"iriscan/internal/domain/service"
)

// Fixed content tables for the offline report. The generator seeds a PRNG from
// the packaged image digest, so the same image always yields the same result.
var fallbackPatterns = []struct {
	name        string
	description string
	sensitivity string
	tags        []string
}{
	{
		name:        "Radiant Halo",
		description: "Fibers radiate evenly from the pupil, forming a bright halo around the collarette.",
		sensitivity: "balanced",
		tags:        []string{"radial", "halo", "even-texture"},
	},
	{
		name:        "Stratified Crypts",
		description: "Layered crypt openings dominate the ciliary zone, giving the iris a woven depth.",
		sensitivity: "receptive",
		tags:        []string{"crypts", "layered", "open-weave"},
	},
	{
		name:        "Solar Flare",
		description: "Contraction furrows break into short rays near the outer rim, like a low sun.",
		sensitivity: "expressive",
		tags:        []string{"furrows", "rays", "outer-rim"},
	},
	{
		name:        "Still Water",
		description: "A smooth, low-contrast stroma with few landmarks, calm from pupil to limbus.",
		sensitivity: "reserved",
		tags:        []string{"smooth", "low-contrast", "uniform"},
	},
	{
		name:        "Woven Ring",
		description: "A dense fiber ring circles mid-iris, tightening the weave toward the center.",
		sensitivity: "focused",
		tags:        []string{"ring", "dense-weave", "mid-zone"},
	},
}

var fallbackInsights = []entity.AnalysisInsight{
	{Title: "Texture", Body: "Fiber density suggests a distinctive surface texture in the mid-zone."},
	{Title: "Color Play", Body: "Subtle pigment flecks add warmth around the collarette."},
	{Title: "Symmetry", Body: "Left and right sectors mirror each other more closely than average."},
	{Title: "Contrast", Body: "The rim-to-center contrast places this iris in the brighter half of scans."},
	{Title: "Detail", Body: "Fine radial striations are visible even at rest, a sign of crisp focus in the capture."},
	{Title: "Depth", Body: "Layering between stroma levels reads as unusually three-dimensional."},
}

type fallbackGenerator struct{}

// NewFallbackGenerator creates the deterministic offline generator.
func NewFallbackGenerator() service.FallbackGenerator {
	return &fallbackGenerator{}
}

// Generate synthesizes an analysis payload from the image digest. The output
// always satisfies the response schema.
func (g *fallbackGenerator) Generate(image *entity.EncodedImage) *entity.AnalysisPayload {
	sum := sha256.Sum256(image.Data)
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic content, not security

	pattern := fallbackPatterns[rng.Intn(len(fallbackPatterns))]
	rarity := rng.Intn(101)

	perm := rng.Perm(len(fallbackInsights))
	insights := make([]entity.AnalysisInsight, 0, 3)
	for _, idx := range perm[:3] {
		insights = append(insights, fallbackInsights[idx])
	}

	return &entity.AnalysisPayload{
		PatternName:        pattern.name,
		PatternDescription: pattern.description,
		Sensitivity:        pattern.sensitivity,
		PatternTags:        pattern.tags,
		RarityScore:        rarity,
		Insights:           insights,
		Summary: fmt.Sprintf("Your iris shows the %s pattern with a rarity score of %d out of 100.",
			pattern.name, rarity),
	}
}
