package framework

import "sort"

const (
	// TagSlow marks tests that make many requests or otherwise take a long time.
	TagSlow = "slow"

	// SlowTestsSkipReason is reported for slow tests when they are not enabled.
	SlowTestsSkipReason = "Need --run-slow option to run"
)

// TagPolicy maps each disabled tag to the reason reported when a test carrying
// it is skipped. Tags that are not in the map are enabled.
type TagPolicy map[string]string

// SlowTestsPolicy returns a TagPolicy that disables TagSlow unless runSlow is true.
func SlowTestsPolicy(runSlow bool) TagPolicy {
	if runSlow {
		return TagPolicy{}
	}
	return TagPolicy{TagSlow: SlowTestsSkipReason}
}

// Disabled returns the skip reason for the first of the given tags that this
// policy disables.
func (p TagPolicy) Disabled(tags []string) (string, bool) {
	for _, tag := range tags {
		if reason, ok := p[tag]; ok {
			return reason, true
		}
	}
	return "", false
}

// DisabledTags returns the disabled tags in alphabetical order.
func (p TagPolicy) DisabledTags() []string {
	ret := make([]string, 0, len(p))
	for tag := range p {
		ret = append(ret, tag)
	}
	sort.Strings(ret)
	return ret
}
