package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JonMunkholm/csvview/internal/csvtext"
	"github.com/JonMunkholm/csvview/internal/logging"
	"github.com/JonMunkholm/csvview/internal/store"
)

// StorageKey is the fixed identifier the raw CSV text is stored under.
const StorageKey = "storedCSV"

// ContentType is the media type of downloaded CSV.
const ContentType = "text/csv;charset=utf-8"

// DefaultFileName is the attachment name used when none is configured.
const DefaultFileName = "donnees.csv"

var (
	// ErrNothingStored is returned by Restore when no CSV has been loaded.
	ErrNothingStored = errors.New("no csv stored")

	// ErrNothingToDownload is returned by Download when no CSV has been loaded.
	ErrNothingToDownload = errors.New("nothing to download: no csv stored")
)

// View is a parsed CSV ready for display.
type View struct {
	Delimiter csvtext.Delimiter `json:"delimiter"`
	Rows      csvtext.Table     `json:"rows"`
	Bytes     int               `json:"bytes"`
}

// Empty reports whether the view has no rows.
func (v *View) Empty() bool {
	return v == nil || len(v.Rows) == 0
}

// Download is the stored CSV packaged as a file.
type Download struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Options configures a Service.
type Options struct {
	// FileName is the name given to downloads (default: DefaultFileName).
	FileName string

	// MaxConcurrent bounds parallel loads (default: DefaultMaxConcurrentLoads).
	MaxConcurrent int

	// MaxWait is how long a load waits for a free slot (default: DefaultMaxWait).
	MaxWait time.Duration
}

// Service loads, persists and re-renders raw CSV text.
type Service struct {
	store    store.Store
	fileName string
	loads    *Limiter
}

// NewService creates a Service persisting to st.
func NewService(st store.Store, opts Options) *Service {
	if opts.FileName == "" {
		opts.FileName = DefaultFileName
	}
	return &Service{
		store:    st,
		fileName: opts.FileName,
		loads:    NewLimiter(opts.MaxConcurrent, opts.MaxWait),
	}
}

// Scope returns a Service that shares this one's store, options and load
// slots but keeps its data under keys prefixed with prefix.
func (s *Service) Scope(prefix string) *Service {
	return &Service{
		store:    store.WithPrefix(s.store, prefix),
		fileName: s.fileName,
		loads:    s.loads,
	}
}

// LoadStatus reports how many loads are running.
func (s *Service) LoadStatus() LimiterStatus {
	return s.loads.Status()
}

// Drain waits for running loads to finish, for graceful shutdown.
func (s *Service) Drain(ctx context.Context) error {
	return s.loads.Drain(ctx)
}

// Preview parses raw with delim (Auto detects it) without persisting.
func Preview(raw string, delim csvtext.Delimiter) *View {
	delim = delim.Resolve(raw)
	return &View{
		Delimiter: delim,
		Rows:      csvtext.Parse(raw, delim),
		Bytes:     len(raw),
	}
}

// Load parses raw for display and stores it, replacing anything stored before.
func (s *Service) Load(ctx context.Context, raw string) (*View, error) {
	if err := s.loads.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.loads.Release()

	view := Preview(raw, csvtext.Auto)

	if err := s.store.Set(ctx, StorageKey, raw); err != nil {
		return nil, fmt.Errorf("store csv: %w", err)
	}

	logging.WithFields(ctx,
		"delimiter", view.Delimiter.Name(),
		"rows", len(view.Rows),
		"bytes", view.Bytes,
	).Info("csv loaded")
	return view, nil
}

// Restore re-parses the stored text. It returns ErrNothingStored when the
// slot is empty.
func (s *Service) Restore(ctx context.Context) (*View, error) {
	raw, err := s.raw(ctx)
	if err != nil {
		return nil, err
	}
	return Preview(raw, csvtext.Auto), nil
}

// Clear removes the stored text. Clearing an empty slot is not an error.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("remove csv: %w", err)
	}
	logging.FromContext(ctx).Info("csv cleared")
	return nil
}

// Download returns the stored text byte for byte as a CSV file.
// It returns ErrNothingToDownload when the slot is empty.
func (s *Service) Download(ctx context.Context) (*Download, error) {
	raw, err := s.raw(ctx)
	if errors.Is(err, ErrNothingStored) {
		return nil, ErrNothingToDownload
	}
	if err != nil {
		return nil, err
	}

	return &Download{
		FileName:    s.fileName,
		ContentType: ContentType,
		Body:        []byte(raw),
	}, nil
}

// raw reads the stored text. An empty stored value counts as nothing stored.
func (s *Service) raw(ctx context.Context) (string, error) {
	raw, err := s.store.Get(ctx, StorageKey)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrNothingStored
	}
	if err != nil {
		return "", fmt.Errorf("read stored csv: %w", err)
	}
	if raw == "" {
		return "", ErrNothingStored
	}
	return raw, nil
}
