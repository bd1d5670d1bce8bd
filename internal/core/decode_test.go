package core

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "plain ASCII",
			input: []byte("a,b\n1,2"),
			want:  "a,b\n1,2",
		},
		{
			name:  "valid UTF-8 multibyte",
			input: []byte("prénom;âge"),
			want:  "prénom;âge",
		},
		{
			name:  "UTF-8 BOM stripped",
			input: append([]byte{0xEF, 0xBB, 0xBF}, "name;age"...),
			want:  "name;age",
		},
		{
			name:  "only BOM",
			input: []byte{0xEF, 0xBB, 0xBF},
			want:  "",
		},
		{
			name:  "UTF-16 LE with BOM",
			input: []byte{0xFF, 0xFE, 'a', 0, ';', 0, 'b', 0},
			want:  "a;b",
		},
		{
			name:  "UTF-16 BE with BOM",
			input: []byte{0xFE, 0xFF, 0, 'x', 0, ',', 0, 'y'},
			want:  "x,y",
		},
		{
			name:  "Windows-1252 fallback",
			input: []byte{'c', 'a', 'f', 0xE9, ';', 0x80},
			want:  "café;€",
		},
		{
			name:  "empty",
			input: []byte{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.input); got != tt.want {
				t.Errorf("Decode(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadText(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		got, err := ReadText(strings.NewReader("a;b"), 3)
		if err != nil {
			t.Fatalf("ReadText() error = %v", err)
		}
		if got != "a;b" {
			t.Errorf("ReadText() = %q, want %q", got, "a;b")
		}
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := ReadText(strings.NewReader("a;b;c"), 3)
		if !errors.Is(err, ErrFileTooLarge) {
			t.Fatalf("ReadText() error = %v, want ErrFileTooLarge", err)
		}
	})

	t.Run("no limit", func(t *testing.T) {
		big := strings.Repeat("x,", 10000)
		got, err := ReadText(strings.NewReader(big), 0)
		if err != nil || got != big {
			t.Fatalf("ReadText() = %d bytes, %v", len(got), err)
		}
	})
}
