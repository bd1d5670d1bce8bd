package store

import (
	"context"
	"errors"
	"testing"
)

// exerciseStore runs the behavior every Store implementation must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := s.Set(ctx, "storedCSV", "a;b\n1;2"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := s.Get(ctx, "storedCSV")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "a;b\n1;2" {
			t.Errorf("Get() = %q, want %q", got, "a;b\n1;2")
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := s.Set(ctx, "storedCSV", "first"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := s.Set(ctx, "storedCSV", "second"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := s.Get(ctx, "storedCSV")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "second" {
			t.Errorf("Get() = %q, want %q", got, "second")
		}
	})

	t.Run("empty, BOM-prefixed and NUL values round trip", func(t *testing.T) {
		for _, v := range []string{"", "\xef\xbb\xbfname\r\n", "café;crème", "a,\x00b\n\x00,c"} {
			if err := s.Set(ctx, "raw", v); err != nil {
				t.Fatalf("Set(%q) error = %v", v, err)
			}
			got, err := s.Get(ctx, "raw")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != v {
				t.Errorf("Get() = %q, want %q", got, v)
			}
		}
	})

	t.Run("remove", func(t *testing.T) {
		if err := s.Set(ctx, "gone", "x"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := s.Remove(ctx, "gone"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if _, err := s.Get(ctx, "gone"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get after Remove error = %v, want ErrNotFound", err)
		}
	})

	t.Run("remove missing key is not an error", func(t *testing.T) {
		if err := s.Remove(ctx, "never-set"); err != nil {
			t.Errorf("Remove(never-set) error = %v", err)
		}
	})

	t.Run("keys with separators", func(t *testing.T) {
		key := "session:8f0c/../x:storedCSV"
		if err := s.Set(ctx, key, "v"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := s.Get(ctx, key)
		if err != nil || got != "v" {
			t.Errorf("Get(%q) = %q, %v", key, got, err)
		}
	})
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemory()
	if err := m.Set(ctx, "k", "v"); !errors.Is(err, context.Canceled) {
		t.Errorf("Set() error = %v, want context.Canceled", err)
	}
	if _, err := m.Get(context.Background(), "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after cancelled Set error = %v, want ErrNotFound", err)
	}
}

func TestWithPrefix_IsolatesNamespaces(t *testing.T) {
	ctx := context.Background()
	base := NewMemory()
	alice := WithPrefix(base, "session:alice:")
	bob := WithPrefix(base, "session:bob:")

	if err := alice.Set(ctx, "storedCSV", "alice data"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, err := bob.Get(ctx, "storedCSV"); !errors.Is(err, ErrNotFound) {
		t.Errorf("bob.Get() error = %v, want ErrNotFound", err)
	}

	got, err := base.Get(ctx, "session:alice:storedCSV")
	if err != nil || got != "alice data" {
		t.Errorf("base.Get() = %q, %v", got, err)
	}

	if err := bob.Remove(ctx, "storedCSV"); err != nil {
		t.Fatalf("bob.Remove() error = %v", err)
	}
	if got, err := base.Get(ctx, "session:alice:storedCSV"); err != nil || got != "alice data" {
		t.Errorf("bob.Remove() touched alice: base.Get() = %q, %v", got, err)
	}
}

func TestWithPrefix_ConformsToStore(t *testing.T) {
	exerciseStore(t, WithPrefix(NewMemory(), "p:"))
}
