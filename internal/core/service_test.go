package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/JonMunkholm/csvview/internal/csvtext"
	"github.com/JonMunkholm/csvview/internal/logging"
	"github.com/JonMunkholm/csvview/internal/store"
)

// failingStore fails every operation with err.
type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingStore) Set(context.Context, string, string) error   { return f.err }
func (f failingStore) Remove(context.Context, string) error        { return f.err }

func TestService_LoadPersistsRawText(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	svc := NewService(st, Options{})

	raw := "name;age\r\n\r\nAlice;30\nBob;25\n"
	view, err := svc.Load(ctx, raw)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if view.Delimiter != csvtext.Semicolon {
		t.Errorf("Delimiter = %q, want ;", view.Delimiter)
	}
	want := csvtext.Table{{"name", "age"}, {"Alice", "30"}, {"Bob", "25"}}
	if !reflect.DeepEqual(view.Rows, want) {
		t.Errorf("Rows = %q, want %q", view.Rows, want)
	}
	if view.Bytes != len(raw) {
		t.Errorf("Bytes = %d, want %d", view.Bytes, len(raw))
	}

	stored, err := st.Get(ctx, StorageKey)
	if err != nil {
		t.Fatalf("store Get() error = %v", err)
	}
	if stored != raw {
		t.Errorf("stored = %q, want original raw text %q", stored, raw)
	}
}

func TestService_LoadOverwrites(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory(), Options{})

	if _, err := svc.Load(ctx, "a,b"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := svc.Load(ctx, "x;y"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	view, err := svc.Restore(ctx)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !reflect.DeepEqual(view.Rows, csvtext.Table{{"x", "y"}}) {
		t.Errorf("Rows = %q", view.Rows)
	}
}

func TestService_RestoreEmpty(t *testing.T) {
	svc := NewService(store.NewMemory(), Options{})

	if _, err := svc.Restore(context.Background()); !errors.Is(err, ErrNothingStored) {
		t.Fatalf("Restore() error = %v, want ErrNothingStored", err)
	}
}

func TestService_EmptyLoadCountsAsNothingStored(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory(), Options{})

	view, err := svc.Load(ctx, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !view.Empty() {
		t.Errorf("view of empty text should be empty, got %q", view.Rows)
	}
	if _, err := svc.Download(ctx); !errors.Is(err, ErrNothingToDownload) {
		t.Errorf("Download() error = %v, want ErrNothingToDownload", err)
	}
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory(), Options{})

	if _, err := svc.Load(ctx, "a,b"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := svc.Restore(ctx); !errors.Is(err, ErrNothingStored) {
		t.Errorf("Restore() after Clear error = %v, want ErrNothingStored", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestService_DownloadIsByteForByte(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory(), Options{FileName: "export.csv"})

	raw := "\"a,b\",c\r\n\r\n1,2\n"
	if _, err := svc.Load(ctx, raw); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dl, err := svc.Download(ctx)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if string(dl.Body) != raw {
		t.Errorf("Body = %q, want %q", dl.Body, raw)
	}
	if dl.FileName != "export.csv" {
		t.Errorf("FileName = %q, want export.csv", dl.FileName)
	}
	if dl.ContentType != ContentType {
		t.Errorf("ContentType = %q, want %q", dl.ContentType, ContentType)
	}
}

func TestService_DownloadDefaultsFileName(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory(), Options{})
	if _, err := svc.Load(ctx, "a"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dl, err := svc.Download(ctx)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if dl.FileName != DefaultFileName {
		t.Errorf("FileName = %q, want %q", dl.FileName, DefaultFileName)
	}
}

func TestService_ScopeIsolatesData(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory(), Options{})
	one := svc.Scope("session:one:")
	two := svc.Scope("session:two:")

	if _, err := one.Load(ctx, "a,b"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := two.Restore(ctx); !errors.Is(err, ErrNothingStored) {
		t.Errorf("two.Restore() error = %v, want ErrNothingStored", err)
	}
	if _, err := svc.Restore(ctx); !errors.Is(err, ErrNothingStored) {
		t.Errorf("unscoped Restore() error = %v, want ErrNothingStored", err)
	}
}

func TestService_StoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	svc := NewService(failingStore{err: boom}, Options{})

	if _, err := svc.Load(ctx, "a,b"); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want wrapped %v", err, boom)
	}
	if _, err := svc.Restore(ctx); !errors.Is(err, boom) {
		t.Errorf("Restore() error = %v, want wrapped %v", err, boom)
	}
	if _, err := svc.Download(ctx); !errors.Is(err, boom) || errors.Is(err, ErrNothingToDownload) {
		t.Errorf("Download() error = %v, want wrapped %v", err, boom)
	}
	if err := svc.Clear(ctx); !errors.Is(err, boom) {
		t.Errorf("Clear() error = %v, want wrapped %v", err, boom)
	}

	if got := MapError(fmt.Errorf("x: %w", boom)).Code; got != "STORE002" {
		t.Errorf("MapError code = %q, want STORE002", got)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		delim     csvtext.Delimiter
		wantDelim csvtext.Delimiter
		wantRows  csvtext.Table
	}{
		{name: "auto comma", raw: `"a,b",c`, delim: csvtext.Auto, wantDelim: csvtext.Comma, wantRows: csvtext.Table{{"a,b", "c"}}},
		{name: "forced semicolon", raw: "a,b;c", delim: csvtext.Semicolon, wantDelim: csvtext.Semicolon, wantRows: csvtext.Table{{"a,b", "c"}}},
		{name: "empty", raw: "", delim: csvtext.Auto, wantDelim: csvtext.Comma, wantRows: csvtext.Table{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Preview(tt.raw, tt.delim)
			if v.Delimiter != tt.wantDelim {
				t.Errorf("Delimiter = %q, want %q", v.Delimiter, tt.wantDelim)
			}
			if !reflect.DeepEqual(v.Rows, tt.wantRows) {
				t.Errorf("Rows = %q, want %q", v.Rows, tt.wantRows)
			}
		})
	}
}

func TestService_LoadLogsSummary(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logging.SetupWriter(&buf, "info", "json")

	ctx := logging.ContextWith(context.Background(), "file", "people.csv")
	if _, err := NewService(store.NewMemory(), Options{}).Load(ctx, "a;b\n1;2"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output %q is not one JSON entry: %v", buf.String(), err)
	}
	want := map[string]any{
		"msg":       "csv loaded",
		"file":      "people.csv",
		"delimiter": "semicolon",
		"rows":      float64(2),
		"bytes":     float64(7),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("log %s = %v, want %v", k, entry[k], v)
		}
	}
}

func TestService_LoadBusy(t *testing.T) {
	svc := NewService(store.NewMemory(), Options{MaxConcurrent: 1, MaxWait: 10 * time.Millisecond})
	scoped := svc.Scope("session:a:")

	if !svc.loads.tryAcquire() {
		t.Fatal("could not take the only load slot")
	}
	defer svc.loads.Release()

	_, err := scoped.Load(context.Background(), "a,b")
	if !errors.Is(err, ErrBusy) {
		t.Errorf("Load() error = %v, want ErrBusy (slots are shared across scopes)", err)
	}
	if got := MapError(err).Code; got != "UPL003" {
		t.Errorf("MapError(ErrBusy).Code = %q, want UPL003", got)
	}
	if got := svc.LoadStatus().Active; got != 1 {
		t.Errorf("LoadStatus().Active = %d, want 1", got)
	}
}
