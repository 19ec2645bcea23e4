// Package identify enumerates rearrangements of a chromosome and finds
// groups of distinct rearrangements that look identical to an observation.
package identify

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/svtools/internal/chromstring"
	"github.com/inodb/svtools/internal/notation"
	"github.com/inodb/svtools/internal/simulate"
)

// DefaultMaxTokens bounds enumeration input. Rearrangements grows as
// n! * 2^n * 2^n in the token count, which is already ~2.9M candidate
// strings at 6 tokens.
const DefaultMaxTokens = 6

// ErrTooManyTokens is matched by *TooManyTokensError.
var ErrTooManyTokens = errors.New("too many tokens to enumerate")

// TooManyTokensError reports an enumeration input above the token bound.
type TooManyTokensError struct {
	Input  string
	Tokens int
	Max    int
}

func (e *TooManyTokensError) Error() string {
	return fmt.Sprintf("%q has %d tokens, enumeration is limited to %d", e.Input, e.Tokens, e.Max)
}

func (e *TooManyTokensError) Unwrap() error { return ErrTooManyTokens }

// Enumerator generates rearrangements and detects identifiability clashes.
type Enumerator struct {
	maxTokens int
	workers   int
	codec     simulate.Codec
	logger    *zap.Logger
}

// NewEnumerator creates an enumerator with DefaultMaxTokens, the default
// codec and one signature worker per CPU.
func NewEnumerator() *Enumerator {
	return &Enumerator{
		maxTokens: DefaultMaxTokens,
		codec:     simulate.DefaultCodec(),
		logger:    zap.NewNop(),
	}
}

// SetMaxTokens sets the largest token count accepted by the enumeration
// functions.
func (e *Enumerator) SetMaxTokens(n int) {
	e.maxTokens = n
}

// SetWorkers sets the number of signature workers. 0 means runtime.NumCPU().
func (e *Enumerator) SetWorkers(n int) {
	e.workers = n
}

// SetCodec sets the codec used by the default signature.
func (e *Enumerator) SetCodec(c simulate.Codec) {
	e.codec = c
}

// SetLogger sets the logger for progress messages.
func (e *Enumerator) SetLogger(l *zap.Logger) {
	e.logger = l
}

func (e *Enumerator) checkSize(cs chromstring.ChromString) error {
	if n := cs.Len(); n > e.maxTokens {
		e.logger.Warn("refusing to enumerate",
			zap.String("input", cs.String()),
			zap.Int("tokens", n),
			zap.Int("max_tokens", e.maxTokens))
		return &TooManyTokensError{Input: cs.String(), Tokens: n, Max: e.maxTokens}
	}
	return nil
}

func (e *Enumerator) checkSet(set chromstring.Set) error {
	if set.MaxLen() <= e.maxTokens {
		return nil
	}
	for _, cs := range set.Sorted() {
		if err := e.checkSize(cs); err != nil {
			return err
		}
	}
	return nil
}

// Permutations returns every ordering of the tokens of cs.
func (e *Enumerator) Permutations(cs chromstring.ChromString) (chromstring.Set, error) {
	if err := e.checkSize(cs); err != nil {
		return nil, err
	}

	out := chromstring.NewSet()
	tokens := cs.Tokens()
	permute(tokens, 0, func(p []notation.Token) {
		out.Add(chromstring.FromTokens(p))
	})

	e.logger.Debug("enumerated permutations",
		zap.String("input", cs.String()),
		zap.Int("count", len(out)))
	return out, nil
}

// Inversions returns, for every member and every subset of its token
// indices, the member with that subset inverted.
func (e *Enumerator) Inversions(set chromstring.Set) (chromstring.Set, error) {
	if err := e.checkSet(set); err != nil {
		return nil, err
	}

	out := chromstring.NewSet()
	for cs := range set {
		powerset(cs.Len(), func(indices []int) {
			out.Add(cs.FlippedIndices(indices...))
		})
	}

	e.logger.Debug("enumerated inversions",
		zap.Int("inputs", len(set)),
		zap.Int("count", len(out)))
	return out, nil
}

// Deletions returns, for every member and every subset of its token indices,
// the member with that subset removed. The empty rearrangement is included.
func (e *Enumerator) Deletions(set chromstring.Set) (chromstring.Set, error) {
	if err := e.checkSet(set); err != nil {
		return nil, err
	}

	out := chromstring.NewSet()
	for cs := range set {
		powerset(cs.Len(), func(indices []int) {
			out.Add(cs.DeletedIndices(indices...))
		})
	}

	e.logger.Debug("enumerated deletions",
		zap.Int("inputs", len(set)),
		zap.Int("count", len(out)))
	return out, nil
}

// Rearrangements returns every rearrangement reachable from cs by
// permutation, then deletion, then inversion. The closure is computed
// naively and visits many candidates more than once.
func (e *Enumerator) Rearrangements(cs chromstring.ChromString) (chromstring.Set, error) {
	perms, err := e.Permutations(cs)
	if err != nil {
		return nil, fmt.Errorf("permute: %w", err)
	}
	dels, err := e.Deletions(perms)
	if err != nil {
		return nil, fmt.Errorf("delete: %w", err)
	}
	all, err := e.Inversions(dels)
	if err != nil {
		return nil, fmt.Errorf("invert: %w", err)
	}

	e.logger.Info("enumerated rearrangements",
		zap.String("input", cs.String()),
		zap.Int("permutations", len(perms)),
		zap.Int("deletions", len(dels)),
		zap.Int("rearrangements", len(all)))
	return all, nil
}

// permute calls fn with every ordering of tokens[k:], permuting in place.
// fn must not retain its argument.
func permute(tokens []notation.Token, k int, fn func([]notation.Token)) {
	if k >= len(tokens)-1 {
		fn(tokens)
		return
	}
	for i := k; i < len(tokens); i++ {
		tokens[k], tokens[i] = tokens[i], tokens[k]
		permute(tokens, k+1, fn)
		tokens[k], tokens[i] = tokens[i], tokens[k]
	}
}

// powerset calls fn with every subset of {0..n-1}, including the empty set.
func powerset(n int, fn func([]int)) {
	indices := make([]int, 0, n)
	for mask := 0; mask < 1<<n; mask++ {
		indices = indices[:0]
		for i := range n {
			if mask&(1<<i) != 0 {
				indices = append(indices, i)
			}
		}
		fn(indices)
	}
}
