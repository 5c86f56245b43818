package lang

import (
	"errors"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Entry
		ok      bool
		wantErr bool
	}{
		{name: "empty", text: "", ok: false},
		{name: "blank", text: " \t \r\n", ok: false},
		{name: "comment", text: "# FOO=bar", ok: false},
		{name: "indented comment", text: "   # note", ok: false},
		{name: "simple", text: "FOO=bar", want: Entry{Key: "FOO", Raw: "bar"}, ok: true},
		{name: "empty value", text: "FOO=", want: Entry{Key: "FOO"}, ok: true},
		{name: "newline", text: "FOO=bar\n", want: Entry{Key: "FOO", Raw: "bar"}, ok: true},
		{name: "crlf", text: "FOO=bar\r\n", want: Entry{Key: "FOO", Raw: "bar"}, ok: true},
		{
			name: "export",
			text: "export FOO=bar",
			want: Entry{Key: "FOO", Raw: "bar"},
			ok:   true,
		},
		{
			name: "export tabs",
			text: "\texport\t\tFOO=bar",
			want: Entry{Key: "FOO", Raw: "bar"},
			ok:   true,
		},
		{
			name: "key named export",
			text: "export=1",
			want: Entry{Key: "export", Raw: "1"},
			ok:   true,
		},
		{
			name: "key with export prefix",
			text: "exporter=1",
			want: Entry{Key: "exporter", Raw: "1"},
			ok:   true,
		},
		{
			name: "spaces around equals",
			text: "  FOO  =  bar baz  ",
			want: Entry{Key: "FOO", Raw: "bar baz"},
			ok:   true,
		},
		{
			name: "quoted value keeps inner spaces",
			text: `FOO=" a b "  `,
			want: Entry{Key: "FOO", Raw: `" a b "`},
			ok:   true,
		},
		{
			name: "hash in value",
			text: "FOO=a#b # c",
			want: Entry{Key: "FOO", Raw: "a#b # c"},
			ok:   true,
		},
		{
			name: "equals in value",
			text: "FOO=a=b",
			want: Entry{Key: "FOO", Raw: "a=b"},
			ok:   true,
		},
		{
			name: "underscore key",
			text: "_A1_=x",
			want: Entry{Key: "_A1_", Raw: "x"},
			ok:   true,
		},
		{
			name: "escaped trailing space",
			text: "FOO=a\\ \n",
			want: Entry{Key: "FOO", Raw: `a\ `},
			ok:   true,
		},
		{
			name: "escaped trailing spaces",
			text: "FOO=x\\ \\   \r\n",
			want: Entry{Key: "FOO", Raw: `x\ \ `},
			ok:   true,
		},
		{
			name: "escaped trailing tab",
			text: "FOO=a\\\t\t",
			want: Entry{Key: "FOO", Raw: "a\\\t"},
			ok:   true,
		},
		{
			name: "escaped backslash before trailing space",
			text: "FOO=a\\\\ ",
			want: Entry{Key: "FOO", Raw: `a\\`},
			ok:   true,
		},
		{name: "no equals", text: "FOO", wantErr: true},
		{name: "digit key", text: "1FOO=bar", wantErr: true},
		{name: "missing key", text: "=bar", wantErr: true},
		{name: "dash in key", text: "FOO-BAR=baz", wantErr: true},
		{name: "export only", text: "export", wantErr: true},
		{name: "export without assignment", text: "export FOO", wantErr: true},
		{name: "space in key", text: "FOO BAR=baz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ClassifyLine(tt.text, 7)

			if tt.wantErr {
				if !errors.Is(err, ErrMalformedLine) {
					t.Fatalf("err = %v, want %v", err, ErrMalformedLine)
				}

				var e *Error
				if !errors.As(err, &e) || e.Line() != 7 {
					t.Errorf("error line = %v, want 7", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}

			if !ok {
				return
			}

			tt.want.Line = 7
			if got != tt.want {
				t.Errorf("ClassifyLine(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestScan_OrderAndLineNumbers(t *testing.T) {
	content := "\ufeff# header\nA=1\n\n  export B = two\n# C=3\nA=again"

	var got []Entry

	for e, err := range Scan(content) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got = append(got, e)
	}

	want := []Entry{
		{Key: "A", Raw: "1", Line: 2},
		{Key: "B", Raw: "two", Line: 4},
		{Key: "A", Raw: "again", Line: 6},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScan_StopsAtMalformedLine(t *testing.T) {
	content := "A=1\nnot an assignment\nB=2\n"

	var (
		keys []string
		errs []error
	)

	for e, err := range Scan(content) {
		if err != nil {
			errs = append(errs, err)

			if e.Line != 2 {
				t.Errorf("entry line = %d, want 2", e.Line)
			}

			continue
		}

		keys = append(keys, e.Key)
	}

	if len(keys) != 1 || keys[0] != "A" {
		t.Errorf("keys = %v, want [A]", keys)
	}

	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}

	var e *Error
	if !errors.As(errs[0], &e) || e.Line() != 2 {
		t.Errorf("error = %v, want line 2", errs[0])
	}
}

func TestScan_Restartable(t *testing.T) {
	seq := Scan("A=1\nB=2\n")

	count := func() int {
		n := 0
		for range seq {
			n++
		}

		return n
	}

	if a, b := count(), count(); a != 2 || b != 2 {
		t.Errorf("passes yielded %d and %d entries, want 2 and 2", a, b)
	}
}

func TestScan_EarlyBreak(t *testing.T) {
	n := 0
	for range Scan("A=1\nB=2\nC=3\n") {
		n++

		break
	}

	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := map[string]bool{
		"A":     true,
		"_":     true,
		"a_1":   true,
		"":      false,
		"1a":    false,
		"a-b":   false,
		"a b":   false,
		"ÄPFEL": false,
	}

	for in, want := range tests {
		if got := IsIdentifier(in); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", in, got, want)
		}
	}
}
