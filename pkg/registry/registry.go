package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/arthur-debert/bundlr/pkg/errors"
	"github.com/arthur-debert/bundlr/pkg/logging"
	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
)

// matchTimeout bounds a single pattern evaluation; regexp2 backtracks
const matchTimeout = time.Second

// Rule pairs a pattern with the handler to use when it matches
type Rule[H any] struct {
	Pattern string
	Handler H

	re *regexp2.Regexp
}

// Matches reports whether the rule's pattern matches candidate
func (r Rule[H]) Matches(candidate string) bool {
	if r.re == nil {
		return false
	}
	ok, err := r.re.MatchString(candidate)
	return err == nil && ok
}

// Registry is a thread-safe ordered list of rules, newest first
type Registry[H any] struct {
	name   string
	mu     sync.RWMutex
	rules  []Rule[H]
	logger zerolog.Logger
}

// New creates an empty Registry. name is used in logs and errors.
func New[H any](name string) *Registry[H] {
	return &Registry[H]{
		name:   name,
		logger: logging.GetLogger("registry." + name),
	}
}

// Name returns the registry name
func (r *Registry[H]) Name() string {
	return r.name
}

// Register compiles pattern and inserts the rule at the front of match order
func (r *Registry[H]) Register(pattern string, handler H) error {
	if pattern == "" {
		return errors.New(errors.ErrInvalidInput, "pattern cannot be empty").
			WithDetail("registry", r.name)
	}

	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid pattern %q", pattern).
			WithDetail("registry", r.name)
	}
	re.MatchTimeout = matchTimeout

	r.mu.Lock()
	defer r.mu.Unlock()

	rule := Rule[H]{Pattern: pattern, Handler: handler, re: re}
	r.rules = append([]Rule[H]{rule}, r.rules...)

	r.logger.Trace().
		Str("pattern", pattern).
		Int("rules", len(r.rules)).
		Msg("Rule registered")
	return nil
}

// Unregister removes the first rule whose pattern text equals pattern.
// It reports whether a rule was removed.
func (r *Registry[H]) Unregister(pattern string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rule := range r.rules {
		if rule.Pattern == pattern {
			r.rules = append(r.rules[:i:i], r.rules[i+1:]...)
			r.logger.Trace().Str("pattern", pattern).Msg("Rule unregistered")
			return true
		}
	}
	return false
}

// Find returns the first rule, in match order, whose pattern matches candidate
func (r *Registry[H]) Find(candidate string) (Rule[H], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rule := range r.rules {
		if rule.Matches(candidate) {
			return rule, nil
		}
	}

	var zero Rule[H]
	return zero, errors.Newf(errors.ErrNoMatch, "no %s rule matches %q", r.name, candidate).
		WithDetail("registry", r.name).
		WithDetail("candidate", candidate)
}

// Patterns returns the registered patterns in match order
func (r *Registry[H]) Patterns() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patterns := make([]string, len(r.rules))
	for i, rule := range r.rules {
		patterns[i] = rule.Pattern
	}
	return patterns
}

// Count returns the number of registered rules
func (r *Registry[H]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rules)
}

// MustRegister registers a rule and panics if registration fails
// This is useful for built-in rules where a bad pattern is a programming error
func MustRegister[H any](reg *Registry[H], pattern string, handler H) {
	if err := reg.Register(pattern, handler); err != nil {
		panic(fmt.Sprintf("failed to register %s rule %q: %v", reg.name, pattern, err))
	}
}
