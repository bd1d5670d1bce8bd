package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/JonMunkholm/csvview/internal/core"
	"github.com/JonMunkholm/csvview/internal/csvtext"
)

func TestTable(t *testing.T) {
	tests := []struct {
		name    string
		table   csvtext.Table
		want    []string
		notWant []string
	}{
		{
			name:  "empty table",
			table: csvtext.Table{},
			want:  []string{`<table class="` + TableClass + `"></table>`},
			notWant: []string{"<thead>", "<tbody>"},
		},
		{
			name:  "header only",
			table: csvtext.Table{{"name", "age"}},
			want:  []string{`<th scope="col">name</th><th scope="col">age</th>`, "<tbody></tbody>"},
		},
		{
			name:  "header and ragged body",
			table: csvtext.Table{{"a", "b"}, {"1"}, {"2", "3", "4"}},
			want:  []string{"<tr><td>1</td></tr>", "<tr><td>2</td><td>3</td><td>4</td></tr>"},
		},
		{
			name:    "markup in cells is escaped",
			table:   csvtext.Table{{"<b>h</b>"}, {`<script>alert("x")</script>`}, {"a & b"}},
			want:    []string{"&lt;b&gt;h&lt;/b&gt;", "&lt;script&gt;", "a &amp; b"},
			notWant: []string{"<script>", "<b>h</b>"},
		},
		{
			name:    "header cells are escaped",
			table:   csvtext.Table{{`<script>x</script>`, `say "hi"`}},
			want:    []string{`<th scope="col">&lt;script&gt;x&lt;/script&gt;</th><th scope="col">say &#34;hi&#34;</th>`},
			notWant: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Table(tt.table).Render(context.Background(), &buf); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("output %q should not contain %q", out, nw)
				}
			}
		})
	}
}

func TestPage(t *testing.T) {
	view := core.Preview("name;age\nAlice;30", csvtext.Auto)

	var buf bytes.Buffer
	err := Page(PageParams{View: view, Notice: "Data removed <now>", MaxFileSize: 10 << 20}).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!doctype html>",
		`id="csvFileInput"`,
		`id="clearStorage"`,
		`id="downloadCsv"`,
		`<div id="tableContainer">`,
		"2 rows, semicolon-separated",
		`<th scope="col">name</th>`,
		"<td>Alice</td>",
		"Data removed &lt;now&gt;",
		"max 10.0 MB",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPage_NoView(t *testing.T) {
	var buf bytes.Buffer
	if err := Page(PageParams{}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), "<table") {
		t.Error("page without a view should not render a table")
	}
}

func TestErrorPage(t *testing.T) {
	var buf bytes.Buffer
	msg := core.UserMessage{Message: "No saved CSV", Action: "Load a CSV file first", Code: "STORE001"}
	if err := ErrorPage(404, msg).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<title>Error 404</title>", "No saved CSV", "Load a CSV file first", "STORE001"} {
		if !strings.Contains(out, want) {
			t.Errorf("error page missing %q", want)
		}
	}
}

func TestErrorAlert_EscapesText(t *testing.T) {
	var buf bytes.Buffer
	err := ErrorAlert(`<img src=x onerror="1">`, "", "").Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "&lt;img src=x onerror=&#34;1&#34;&gt;") {
		t.Errorf("message not escaped: %q", out)
	}
	for _, nw := range []string{"<img", "<p>", `<small class="code">`} {
		if strings.Contains(out, nw) {
			t.Errorf("output %q should not contain %q", out, nw)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KB"},
		{10 << 20, "10.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
