package manifest

import (
	"regexp"
	"strings"

	"github.com/echo-launcher/echolauncher/pkg/platform"
)

// Rule actions.
const (
	ActionAllow    = "allow"
	ActionDisallow = "disallow"
)

// Rule is one conditional entry in a library's rule list. A rule without
// an OS clause matches every platform.
type Rule struct {
	Action string  `json:"action"`
	OS     *OSRule `json:"os,omitempty"`
}

// OSRule narrows a rule to an OS name and, optionally, an OS version
// regular expression.
type OSRule struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// verdict reports the outcome this rule sets when it matches. A missing
// action defaults to allow, matching the upstream manifest convention; an
// unrecognized action is a malformed entry and sets nothing.
func (r Rule) verdict() (allowed, ok bool) {
	switch r.Action {
	case "", ActionAllow:
		return true, true
	case ActionDisallow:
		return false, true
	default:
		return false, false
	}
}

// matches reports whether the rule applies to the given platform. Rules
// with a malformed version regex never match.
func (r Rule) matches(plat platform.Platform) bool {
	if r.OS == nil {
		return true
	}
	if r.OS.Name != "" && !strings.EqualFold(r.OS.Name, plat.OS) {
		return false
	}
	if r.OS.Version != "" {
		re, err := regexp.Compile(r.OS.Version)
		if err != nil || !re.MatchString(plat.Version) {
			return false
		}
	}
	return true
}

// Evaluate applies a library's rule list to a platform. An empty list
// includes the entry. Rules are processed in declaration order and the
// LAST matching rule decides: later rules override earlier ones. This is
// deliberately not first-match/short-circuit evaluation; manifests rely
// on a broad allow followed by targeted disallows (and vice versa).
func Evaluate(rules []Rule, plat platform.Platform) bool {
	if len(rules) == 0 {
		return true
	}
	allowed := false
	for _, rule := range rules {
		if !rule.matches(plat) {
			continue
		}
		if v, ok := rule.verdict(); ok {
			allowed = v
		}
	}
	return allowed
}
