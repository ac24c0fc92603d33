package corrector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"autocorrect/internal/vocab"
	"autocorrect/pkg/options"
)

// CustomWordFrequency outranks any corpus frequency.
const CustomWordFrequency = 1_000_000_000

var ErrEmptyWord = errors.New("word is required")

// WordSource persists user-added words.
type WordSource interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

// Service owns the current SpellCorrector. Custom-word changes build a fresh
// store and swap it in; readers keep whatever corrector they already hold.
type Service struct {
	base   []vocab.Entry
	dict   WordSource
	opts   []options.Options
	logger *slog.Logger

	mu      sync.Mutex // serializes rebuilds
	custom  map[string]struct{}
	current atomic.Pointer[SpellCorrector]
}

// NewService builds the first corrector from base plus whatever dict holds.
// dict may be nil. A failing dict is logged and skipped.
func NewService(ctx context.Context, base []vocab.Entry, dict WordSource, logger *slog.Logger, opts ...options.Options) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		base:   base,
		dict:   dict,
		opts:   opts,
		logger: logger,
		custom: make(map[string]struct{}),
	}
	if dict != nil {
		words, err := dict.All(ctx)
		if err != nil {
			logger.Warn("custom words unavailable, starting without them", "error", err)
		}
		for _, w := range words {
			if lw := normalizeWord(w); lw != "" {
				s.custom[lw] = struct{}{}
			}
		}
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Corrector returns the current corrector snapshot.
func (s *Service) Corrector() *SpellCorrector { return s.current.Load() }

// CustomWords returns the user-added words currently in the vocabulary.
func (s *Service) CustomWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.custom))
	for w := range s.custom {
		out = append(out, w)
	}
	return out
}

// AddCustomWord persists word and rebuilds the vocabulary with it.
func (s *Service) AddCustomWord(ctx context.Context, word string) error {
	lw := normalizeWord(word)
	if lw == "" {
		return ErrEmptyWord
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dict != nil {
		if err := s.dict.Add(ctx, lw); err != nil {
			return err
		}
	}
	s.custom[lw] = struct{}{}
	return s.rebuildLocked()
}

// RemoveCustomWord drops word from storage and from the vocabulary. A word
// that also appears in the base dictionary keeps its corpus frequency.
func (s *Service) RemoveCustomWord(ctx context.Context, word string) error {
	lw := normalizeWord(word)
	if lw == "" {
		return ErrEmptyWord
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dict != nil {
		if err := s.dict.Remove(ctx, lw); err != nil {
			return err
		}
	}
	delete(s.custom, lw)
	return s.rebuildLocked()
}

func (s *Service) rebuild() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebuildLocked()
}

func (s *Service) rebuildLocked() error {
	entries := make([]vocab.Entry, 0, len(s.base)+len(s.custom))
	entries = append(entries, s.base...)
	for w := range s.custom {
		entries = append(entries, vocab.Entry{Word: w, Frequency: CustomWordFrequency})
	}
	store, err := vocab.New(entries)
	if err != nil {
		return fmt.Errorf("build vocabulary: %w", err)
	}
	s.current.Store(NewSpellCorrector(store, s.opts...))
	s.logger.Info("vocabulary loaded", "words", store.Len(), "custom", len(s.custom))
	return nil
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
