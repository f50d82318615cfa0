package style

// Quadrant is one of four regions of the 2D plane formed by the two
// composite axes, used for coarse style classification.
type Quadrant string

const (
	QuadrantIntimateClassical    Quadrant = "intimate_classical"
	QuadrantIntimateExperimental Quadrant = "intimate_experimental"
	QuadrantEpicClassical        Quadrant = "epic_classical"
	QuadrantEpicExperimental     Quadrant = "epic_experimental"
)

// String returns the string representation of the quadrant.
func (q Quadrant) String() string { return string(q) }

// Label returns the display label of the quadrant.
func (q Quadrant) Label() string {
	switch q {
	case QuadrantIntimateClassical:
		return "Intimate / Classical"
	case QuadrantIntimateExperimental:
		return "Intimate / Experimental"
	case QuadrantEpicClassical:
		return "Epic / Classical"
	case QuadrantEpicExperimental:
		return "Epic / Experimental"
	default:
		return "Unknown"
	}
}

// quadrantMidpoint splits each composite axis.  Values exactly on the
// midpoint classify to the Epic / Experimental side; the same rule is
// applied everywhere the composites are computed (matching, projection,
// any future consumer).
const quadrantMidpoint = 5.0

// CompositeX returns the horizontal composite axis (scale + spectacle) / 2.
func CompositeX(v Vector) float64 {
	return (v[AxisScale] + v[AxisSpectacle]) / 2
}

// CompositeY returns the vertical composite axis (structure + genreFluidity) / 2.
func CompositeY(v Vector) float64 {
	return (v[AxisStructure] + v[AxisGenreFluidity]) / 2
}

// QuadrantOf classifies v into exactly one quadrant.  Total for any vector
// carrying the comparison axes; missing axes read as zero, which lands in
// the Intimate/Classical corner rather than failing.
func QuadrantOf(v Vector) Quadrant {
	epic := CompositeX(v) >= quadrantMidpoint
	experimental := CompositeY(v) >= quadrantMidpoint
	switch {
	case epic && experimental:
		return QuadrantEpicExperimental
	case epic:
		return QuadrantEpicClassical
	case experimental:
		return QuadrantIntimateExperimental
	default:
		return QuadrantIntimateClassical
	}
}

// EmotionTier buckets the emotion axis into an ordered label set.
type EmotionTier string

const (
	TierRestrained EmotionTier = "restrained"
	TierBalanced   EmotionTier = "balanced"
	TierIntense    EmotionTier = "intense"
)

// String returns the string representation of the tier.
func (t EmotionTier) String() string { return string(t) }

// Emotion tier thresholds.  These labels are persisted by callers, so the
// boundaries are fixed: changing them would reclassify saved selections on
// recomputation.
const (
	TierBalancedMin = 4.0
	TierIntenseMin  = 7.0
)

// EmotionTierOf buckets the scalar emotion axis value of v.
func EmotionTierOf(v Vector) EmotionTier {
	return EmotionTierForValue(v[AxisEmotion])
}

// EmotionTierForValue buckets a raw emotion value:
// restrained < 4.0 <= balanced < 7.0 <= intense.
func EmotionTierForValue(value float64) EmotionTier {
	switch {
	case value >= TierIntenseMin:
		return TierIntense
	case value >= TierBalancedMin:
		return TierBalanced
	default:
		return TierRestrained
	}
}
