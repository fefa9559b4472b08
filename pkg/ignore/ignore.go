package ignore

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultPatterns lists the exclusion rules applied when no other set is configured.
// Directory fragments and file extensions are matched the same way: anywhere in the path.
var DefaultPatterns = []string{
	"node_modules", ".git", "dist", "build", ".config",
	"attached_assets", "public/uploads", "public/tech_profiles",
	"public/images", "public/assets", "server/tests",
	".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".ico",
	".pdf", ".xlsx", ".docx", ".txt", ".mp4", ".mov",
	".tar.gz", ".zip", ".log",
}

// Rule is a single exclusion pattern and its position in the rule set.
type Rule struct {
	Pattern string // Substring searched for in candidate paths.
	LineNo  int    // Position in the rule set (1-based).
}

// RuleSet is an ordered collection of substring exclusion rules.
type RuleSet struct {
	Rules  []*Rule     // Compiled rules, in declaration order.
	logger *zap.Logger // Logger for debug information.
}

// NewRuleSet builds a RuleSet from the given patterns.
func NewRuleSet(logger *zap.Logger, patterns ...string) *RuleSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	rs := &RuleSet{
		Rules:  []*Rule{},
		logger: logger,
	}
	rs.CompileLines(patterns...)
	return rs
}

// Default returns a RuleSet holding DefaultPatterns.
func Default(logger *zap.Logger) *RuleSet {
	return NewRuleSet(logger, DefaultPatterns...)
}

// CompileLines appends patterns to the rule set.
// Empty lines and lines starting with '#' are skipped; surrounding whitespace is trimmed.
func (rs *RuleSet) CompileLines(lines ...string) {
	for _, line := range lines {
		pattern := strings.TrimSpace(line)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		r := &Rule{
			Pattern: filepath.ToSlash(pattern),
			LineNo:  len(rs.Rules) + 1,
		}
		rs.Rules = append(rs.Rules, r)
		rs.logger.Debug("Compiled exclusion rule",
			zap.Int("lineNo", r.LineNo),
			zap.String("pattern", r.Pattern))
	}
}

// Patterns returns the pattern text of every rule, in order.
func (rs *RuleSet) Patterns() []string {
	out := make([]string, 0, len(rs.Rules))
	for _, r := range rs.Rules {
		out = append(out, r.Pattern)
	}
	return out
}

// MatchesPath reports whether path must be excluded.
func (rs *RuleSet) MatchesPath(path string) bool {
	matches, _ := rs.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern reports whether any rule occurs as a substring of path
// and returns the first rule that did.
//
// Matching is deliberately not segment-aware: ".txt" excludes "my.txt.backup"
// and "dist" excludes "distance.ts".
func (rs *RuleSet) MatchesPathWithPattern(path string) (bool, *Rule) {
	normalizedPath := normalizePath(path)

	for _, r := range rs.Rules {
		if strings.Contains(normalizedPath, r.Pattern) {
			rs.logger.Debug("Path matches exclusion rule",
				zap.String("path", normalizedPath),
				zap.String("pattern", r.Pattern))
			return true, r
		}
	}
	return false, nil
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}
