package report

import (
	"fmt"
	"strings"
)

type Check string

const (
	CheckMisspelled          Check = "misspelled"
	CheckSyntax              Check = "syntax"
	CheckPlaceholderMismatch Check = "placeholder_mismatch"
	CheckPlaceholderOrder    Check = "placeholder_order"
	CheckInvalidPlaceholder  Check = "invalid_placeholder"
	CheckRepeatedWord        Check = "repeated_word"
	CheckDriveCycle          Check = "drive_cycle"
	CheckSuccessCriteria     Check = "success_criteria"
	CheckDuplicateScenario   Check = "duplicate_scenario"
)

// AllChecks returns every check in report section order.
func AllChecks() []Check {
	return []Check{
		CheckMisspelled,
		CheckSyntax,
		CheckPlaceholderMismatch,
		CheckPlaceholderOrder,
		CheckInvalidPlaceholder,
		CheckRepeatedWord,
		CheckDriveCycle,
		CheckSuccessCriteria,
		CheckDuplicateScenario,
	}
}

// Checks maps a check to whether it is enabled. A nil Checks enables
// everything; otherwise a missing entry is disabled.
type Checks map[Check]bool

func DefaultChecks() Checks {
	c := Checks{}
	for _, check := range AllChecks() {
		c[check] = true
	}
	return c
}

func (c Checks) Enabled(check Check) bool {
	if c == nil {
		return true
	}
	return c[check]
}

func (c Checks) clone() Checks {
	if c == nil {
		return DefaultChecks()
	}
	out := make(Checks, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func ParseCheck(s string) (Check, error) {
	name := normalizeName(s)
	for _, c := range AllChecks() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCheck, s)
}

// Select builds a Checks value from explicit enable and skip lists. An empty
// enable list starts from every check enabled.
func Select(enable, skip []string) (Checks, error) {
	checks := DefaultChecks()
	if len(enable) > 0 {
		checks = Checks{}
		for _, name := range AllChecks() {
			checks[name] = false
		}
		for _, s := range enable {
			c, err := ParseCheck(s)
			if err != nil {
				return nil, err
			}
			checks[c] = true
		}
	}
	for _, s := range skip {
		c, err := ParseCheck(s)
		if err != nil {
			return nil, err
		}
		checks[c] = false
	}
	return checks, nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
