package ds

import (
	"fmt"
	"strings"

	"github.com/eric2788/ordset/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultCapacity replaces capacity hints below 1.
const DefaultCapacity = 16

type Strategy int

const (
	// ArrayBacked favours At and enumeration; Remove is O(N).
	ArrayBacked Strategy = iota
	// Linked favours Remove; At is O(N/2).
	Linked
)

func (s Strategy) String() string {
	switch s {
	case ArrayBacked:
		return "array"
	case Linked:
		return "linked"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "array", "array-backed", "arraybacked":
		return ArrayBacked, nil
	case "linked", "list":
		return Linked, nil
	default:
		return 0, errors.WithMessagef(ErrInvalidArgument, "unknown strategy %q", s)
	}
}

// Options groups every construction setting of a Set.
type Options[T comparable] struct {
	// Capacity is a sizing hint; values below 1 fall back to DefaultCapacity.
	Capacity int
	// Comparer defines equality; nil means natural equality.
	Comparer Comparer[T]
	// Linked selects the linked strategy instead of the array-backed one.
	Linked bool
	// Synced wraps the result in a SyncedSet.
	Synced bool
	// Logger replaces the package logger.
	Logger *logrus.Entry
}

type Option[T comparable] func(*Options[T])

func WithCapacity[T comparable](capacity int) Option[T] {
	return func(o *Options[T]) {
		o.Capacity = capacity
	}
}

func WithComparer[T comparable](cmp Comparer[T]) Option[T] {
	return func(o *Options[T]) {
		o.Comparer = cmp
	}
}

func WithStrategy[T comparable](strategy Strategy) Option[T] {
	return func(o *Options[T]) {
		o.Linked = strategy == Linked
	}
}

func WithLogger[T comparable](logger *logrus.Entry) Option[T] {
	return func(o *Options[T]) {
		o.Logger = logger
	}
}

// NewSet builds an array-backed set unless WithStrategy asks otherwise.
func NewSet[T comparable](options ...Option[T]) Set[T] {
	o := &Options[T]{}
	for _, option := range options {
		option(o)
	}
	return o.build()
}

func NewSyncedSet[T comparable](options ...Option[T]) *SyncedSet[T] {
	o := &Options[T]{}
	for _, option := range options {
		option(o)
	}
	o.Synced = true
	return o.build().(*SyncedSet[T])
}

// NewFromOptions builds the set described by o.
func NewFromOptions[T comparable](o *Options[T]) (Set[T], error) {
	if o == nil {
		return nil, errors.WithMessage(ErrInvalidArgument, "nil options")
	}
	return o.build(), nil
}

// Of returns an array-backed set holding items in first-seen order.
func Of[T comparable](items ...T) Set[T] {
	s := NewSet(WithCapacity[T](len(items)))
	AddAll(s, items...)
	return s
}

func (o *Options[T]) build() Set[T] {
	log := utils.ZeroOrElse(o.Logger, logger)
	capacity := normalizeCapacity(o.Capacity, log)

	var s Set[T]
	if o.Linked {
		s = newLinkedSet(capacity, o.Comparer, log)
	} else {
		s = newArraySet(capacity, o.Comparer, log)
	}
	if o.Synced {
		return newSyncedSet(s, log)
	}
	return s
}

func normalizeCapacity(capacity int, log *logrus.Entry) int {
	if capacity < 1 {
		log.Debugf("capacity %d below 1, using default %d", capacity, DefaultCapacity)
		return DefaultCapacity
	}
	return capacity
}
