package parser

import (
	"fmt"

	"github.com/chriserin/ftlint/internal/report"
)

// stepCounts holds the per-kind step counts of one scenario.
type stepCounts struct {
	given, when, then, and, but int
}

func (c *stepCounts) add(k StepKind) {
	switch k {
	case Given:
		c.given++
	case When:
		c.when++
	case Then:
		c.then++
	case And:
		c.and++
	case But:
		c.but++
	}
}

// policy is the step-composition rule set of one feature type.
type policy struct {
	// but is the error for a But step, empty when But is allowed.
	but string
	// boundary checks a finished scenario.
	boundary func(c stepCounts) []string
}

var policies = map[report.FeatureType]policy{
	report.Standard: {},
	report.DriveCycle: {
		but: "But not allowed in Drive Cycle format",
		boundary: func(c stepCounts) []string {
			var out []string
			if c.when > 0 {
				out = append(out, "When not allowed in Drive Cycle format")
			}
			if c.then > 0 {
				out = append(out, "Then not allowed in Drive Cycle format")
			}
			return out
		},
	},
	report.SuccessCriteria: {
		but: "But not allowed in Success Criteria format",
		boundary: func(c stepCounts) []string {
			var out []string
			if c.given != 1 {
				out = append(out, fmt.Sprintf("Success Criteria must have exactly 1 Given, found %d", c.given))
			}
			if c.when != 1 {
				out = append(out, fmt.Sprintf("Success Criteria must have exactly 1 When, found %d", c.when))
			}
			return out
		},
	},
}

func (p policy) checkBoundary(c stepCounts) []string {
	if p.boundary == nil {
		return nil
	}
	return p.boundary(c)
}
