package journal

import (
	"context"
	"time"

	"codeberg.org/mutker/errcode/internal/errors"
	"codeberg.org/mutker/errcode/internal/logger"
)

type service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

// No-op implementation
type noopJournal struct{}

// New opens the journal described by cfg. A disabled journal records nothing
// and reports nothing.
func New(cfg Config, log logger.Logger) (Journal, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		log.Debug().Msg("Journal disabled, using no-op journal")
		return &noopJournal{}, nil
	}

	repo, err := NewRepository(cfg, log)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to create journal repository")
		return nil, err
	}

	return NewWithRepository(repo, log), nil
}

// NewWithRepository returns a Journal storing entries in repo.
func NewWithRepository(repo Repository, log logger.Logger) Journal {
	return &service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *service) Record(ctx context.Context, backend string, code Code) error {
	errFactory := errors.New()

	if code == nil || backend == "" {
		return errFactory.New(ErrInvalidEntry)
	}

	entry := &Entry{
		Timestamp: s.now(),
		Backend:   backend,
		Category:  code.CategoryName(),
		Value:     code.Value(),
		Hash:      code.Hash(),
		Message:   code.What(),
	}

	select {
	case <-ctx.Done():
		return errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
		if err := s.repo.Record(entry); err != nil {
			return errFactory.Wrap(ErrRecord, err)
		}
	}

	s.log.Debug().
		Str("backend", entry.Backend).
		Str("category", entry.Category).
		Int("value", entry.Value).
		Msg("Recorded error code")

	return nil
}

func (s *service) Report(ctx context.Context) ([]Summary, error) {
	errFactory := errors.New()

	select {
	case <-ctx.Done():
		return nil, errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
	}

	summaries, err := s.repo.Summaries(ctx)
	if err != nil {
		return nil, errFactory.Wrap(ErrReport, err)
	}
	return summaries, nil
}

func (s *service) Close() error {
	errFactory := errors.New()

	if err := s.repo.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}
	return nil
}

func (*noopJournal) Record(_ context.Context, _ string, _ Code) error {
	return nil
}

func (*noopJournal) Report(_ context.Context) ([]Summary, error) {
	return nil, nil
}

func (*noopJournal) Close() error {
	return nil
}
