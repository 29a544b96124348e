package domain

import "fmt"

// Quality represents the tier of a material or crafted item, ordered E < D < C < B < A < S
type Quality string

const (
	QualityE Quality = "E"
	QualityD Quality = "D"
	QualityC Quality = "C"
	QualityB Quality = "B"
	QualityA Quality = "A"
	QualityS Quality = "S"
)

// Qualities lists every tier in ascending order
var Qualities = []Quality{QualityE, QualityD, QualityC, QualityB, QualityA, QualityS}

// qualityMultiplier scales crafted-item sell prices and effect values
var qualityMultiplier = map[Quality]float64{
	QualityE: 0.25,
	QualityD: 0.5,
	QualityC: 1.0,
	QualityB: 1.5,
	QualityA: 2.0,
	QualityS: 3.0,
}

// qualityValue is the comparison scale used for matching, selection ordering and reward averaging
var qualityValue = map[Quality]int{
	QualityE: 10,
	QualityD: 30,
	QualityC: 50,
	QualityB: 70,
	QualityA: 90,
	QualityS: 100,
}

// BaselineQualityValue is the value of C, the neutral point for rewards
const BaselineQualityValue = 50

// ParseQuality converts a raw string into a Quality, rejecting anything outside E..S
func ParseQuality(s string) (Quality, error) {
	q := Quality(s)
	if !q.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidQuality, s)
	}
	return q, nil
}

// IsValid reports whether q is one of the six defined tiers
func (q Quality) IsValid() bool {
	_, ok := qualityValue[q]
	return ok
}

// Value returns the comparison value of q. Invalid tiers report 0.
func (q Quality) Value() int {
	return qualityValue[q]
}

// Multiplier returns the price multiplier of q. Invalid tiers report 0.
func (q Quality) Multiplier() float64 {
	return qualityMultiplier[q]
}

// Rank returns the zero-based position of q in ascending order, or -1 if invalid
func (q Quality) Rank() int {
	for i, tier := range Qualities {
		if tier == q {
			return i
		}
	}
	return -1
}

// AtLeast reports whether q is the same tier as min or higher
func (q Quality) AtLeast(min Quality) bool {
	return q.Value() >= min.Value()
}

// QualityFromValue returns the highest tier whose value does not exceed v.
// Values below E's value clamp to E.
func QualityFromValue(v int) Quality {
	result := QualityE
	for _, tier := range Qualities {
		if qualityValue[tier] <= v {
			result = tier
		}
	}
	return result
}

func (q Quality) String() string {
	return string(q)
}
