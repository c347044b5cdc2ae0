package journal

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/repository.go -package=journalmock codeberg.org/mutker/errcode/internal/journal Repository

// Journal records observed error codes and reports how often each identity
// occurred.
type Journal interface {
	Record(ctx context.Context, backend string, code Code) error
	Report(ctx context.Context) ([]Summary, error)
	Close() error
}

// Code is the part of an error code the journal stores. errcode Codes of
// either backend satisfy it.
type Code interface {
	CategoryName() string
	Value() int
	What() string
	Hash() uint64
}

// Repository defines the interface for journal storage
type Repository interface {
	Record(entry *Entry) error
	// Summaries aggregates all entries, pending ones included, per identity
	// and orders them by backend, category name and value.
	Summaries(ctx context.Context) ([]Summary, error)
	Close() error
}

// Entry is one recorded occurrence of an error code.
type Entry struct {
	Timestamp time.Time
	Backend   string
	Category  string
	Value     int
	Hash      uint64
	Message   string
}

// Summary aggregates the entries of one identity.
type Summary struct {
	Backend   string
	Category  string
	Value     int
	Count     int
	FirstSeen time.Time
	LastSeen  time.Time
	// LastMessage is the most recent non-empty attached message.
	LastMessage string
}
