package csvtext

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		delim Delimiter
		want  Table
	}{
		{
			name:  "empty input",
			text:  "",
			delim: Comma,
			want:  Table{},
		},
		{
			name:  "only blank lines",
			text:  "\n  \r\n\t\n",
			delim: Comma,
			want:  Table{},
		},
		{
			name:  "semicolon example",
			text:  "name;age\nAlice;30\nBob;25",
			delim: Semicolon,
			want:  Table{{"name", "age"}, {"Alice", "30"}, {"Bob", "25"}},
		},
		{
			name:  "quoted field keeps delimiter",
			text:  `"a,b",c`,
			delim: Comma,
			want:  Table{{"a,b", "c"}},
		},
		{
			name:  "escaped quote",
			text:  `"a""b",c`,
			delim: Comma,
			want:  Table{{`a"b`, "c"}},
		},
		{
			name:  "interior blank lines dropped",
			text:  "h1,h2\n\n1,2\n   \n3,4\n",
			delim: Comma,
			want:  Table{{"h1", "h2"}, {"1", "2"}, {"3", "4"}},
		},
		{
			name:  "ragged rows preserved",
			text:  "a,b,c\n1\n1,2,3,4",
			delim: Comma,
			want:  Table{{"a", "b", "c"}, {"1"}, {"1", "2", "3", "4"}},
		},
		{
			name:  "empty fields",
			text:  ",,\na,,b",
			delim: Comma,
			want:  Table{{"", "", ""}, {"a", "", "b"}},
		},
		{
			name:  "other delimiter is plain text",
			text:  "a;b,c",
			delim: Comma,
			want:  Table{{"a;b", "c"}},
		},
		{
			name:  "whitespace around fields kept",
			text:  " a , b ",
			delim: Comma,
			want:  Table{{" a ", " b "}},
		},
		{
			name:  "quotes in the middle of a field toggle",
			text:  `ab"c,d"e,f`,
			delim: Comma,
			want:  Table{{"abc,de", "f"}},
		},
		{
			name:  "unbalanced quote swallows rest of line only",
			text:  "\"a,b,c\nd,e",
			delim: Comma,
			want:  Table{{"a,b,c"}, {"d", "e"}},
		},
		{
			name:  "doubled quote outside quotes toggles twice",
			text:  `a""b,c`,
			delim: Comma,
			want:  Table{{"ab", "c"}},
		},
		{
			name:  "empty quoted field",
			text:  `"",x`,
			delim: Comma,
			want:  Table{{"", "x"}},
		},
		{
			name:  "CRLF and CR terminators",
			text:  "a;b\r\nc;d\re;f",
			delim: Semicolon,
			want:  Table{{"a", "b"}, {"c", "d"}, {"e", "f"}},
		},
		{
			name:  "multibyte content",
			text:  "prénom;ville\nZoë;\"Liège; BE\"",
			delim: Semicolon,
			want:  Table{{"prénom", "ville"}, {"Zoë", "Liège; BE"}},
		},
		{
			name:  "NEL line is not blank",
			text:  "a,b\n\u0085\nc,d",
			delim: Comma,
			want:  Table{{"a", "b"}, {"\u0085"}, {"c", "d"}},
		},
		{
			name:  "BOM and no-break space lines are blank",
			text:  "a,b\n\uFEFF\n\u00a0\u3000\nc,d",
			delim: Comma,
			want:  Table{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "auto detects semicolon",
			text:  "x;y\n1;2",
			delim: Auto,
			want:  Table{{"x", "y"}, {"1", "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, tt.delim)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q, %q) = %q, want %q", tt.text, tt.delim, got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{" \t\v\f", true},
		{"\uFEFF", true},
		{"\u00a0\u2028\u2029", true},
		{"\u0085", false},
		{" \u0085 ", false},
		{" x ", false},
	}
	for _, tt := range tests {
		if got := isBlank(tt.line); got != tt.want {
			t.Errorf("isBlank(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestParse_InvalidUTF8PassesThrough(t *testing.T) {
	text := "a,\xffb"
	got := Parse(text, Comma)
	want := Table{{"a", "\xffb"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse(%q) = %q, want %q", text, got, want)
	}
}

func TestParseAuto_RoundTripsSimpleData(t *testing.T) {
	inputs := []string{
		"name,age\nAlice,30\nBob,25",
		"name;age;city\nAlice;30;Paris\nBob;25;Lyon",
		"single",
		"a,b\nc",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			table, delim := ParseAuto(in)
			lines := make([]string, len(table))
			for i, row := range table {
				lines[i] = row.Join(delim)
			}
			if got := strings.Join(lines, "\n"); got != in {
				t.Errorf("round trip = %q, want %q", got, in)
			}
		})
	}
}

func TestTable_Accessors(t *testing.T) {
	table := Table{{"h1", "h2"}, {"a"}, {"b", "c", "d"}}

	if got := table.Header(); !reflect.DeepEqual(got, Row{"h1", "h2"}) {
		t.Errorf("Header() = %q", got)
	}
	if got := len(table.Body()); got != 2 {
		t.Errorf("len(Body()) = %d, want 2", got)
	}
	if got := table.Width(); got != 3 {
		t.Errorf("Width() = %d, want 3", got)
	}

	var empty Table
	if empty.Header() != nil || empty.Body() != nil || empty.Width() != 0 {
		t.Error("empty table accessors should return zero values")
	}
}

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("id;name;comment\n")
	for i := 0; i < 1000; i++ {
		sb.WriteString(`42;"Doe; Jane";"said ""hi"""` + "\n")
	}
	text := sb.String()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseAuto(text)
	}
}
