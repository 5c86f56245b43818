package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/denv/lang"
)

func testNamespace() *lang.Namespace {
	return lang.NewNamespace(
		lang.Pair{Key: "ZETA", Value: "last"},
		lang.Pair{Key: "ALPHA", Value: "it's"},
		lang.Pair{Key: "MULTI", Value: "a\nb"},
	)
}

func TestMarshalEnv(t *testing.T) {
	tests := []struct {
		name   string
		export bool
		want   string
	}{
		{
			name: "plain",
			want: "ZETA='last'\nALPHA='it'\\''s'\nMULTI='a\nb'\n",
		},
		{
			name:   "export",
			export: true,
			want:   "export ZETA='last'\nexport ALPHA='it'\\''s'\nexport MULTI='a\nb'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(marshalEnv(testNamespace(), tt.export)); got != tt.want {
				t.Errorf("marshalEnv() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalEnv_ReadsBack(t *testing.T) {
	ns := lang.NewNamespace(
		lang.Pair{Key: "QUOTE", Value: `it's "quoted"`},
		lang.Pair{Key: "DOLLAR", Value: "$HOME ${USER}"},
		lang.Pair{Key: "SLASH", Value: `C:\path\`},
		lang.Pair{Key: "SPACE", Value: "  padded  "},
	)

	out, err := lang.ParseString(context.Background(),
		string(marshalEnv(ns, true)),
		lang.WithEnvironment(lang.EmptyEnv))
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	for key, want := range ns.All() {
		if got, _ := out.Lookup(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{
			name:   "compact",
			indent: 0,
			want:   `{"ZETA":"last","ALPHA":"it's","MULTI":"a\nb"}` + "\n",
		},
		{
			name:   "indent",
			indent: 2,
			want:   "{\n  \"ZETA\": \"last\",\n  \"ALPHA\": \"it's\",\n  \"MULTI\": \"a\\nb\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := marshalJSON(testNamespace(), tt.indent)
			if err != nil {
				t.Fatalf("marshalJSON() error = %v", err)
			}

			if string(got) != tt.want {
				t.Errorf("marshalJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalJSON_Empty(t *testing.T) {
	got, err := marshalJSON(lang.NewNamespace(), 2)
	if err != nil {
		t.Fatalf("marshalJSON() error = %v", err)
	}

	if string(got) != "{}\n" {
		t.Errorf("marshalJSON() = %q, want %q", got, "{}\n")
	}
}

func TestMarshalYAML(t *testing.T) {
	for _, indent := range []int{0, 2, 4} {
		out, err := marshalYAML(context.Background(), testNamespace(), indent)
		if err != nil {
			t.Fatalf("marshalYAML(%d) error = %v", indent, err)
		}

		if flow := strings.HasPrefix(string(out), "{"); flow != (indent == 0) {
			t.Errorf("marshalYAML(%d) flow = %v:\n%s", indent, flow, out)
		}

		var got yaml.MapSlice
		if err := yaml.Unmarshal(out, &got); err != nil {
			t.Fatalf("yaml.Unmarshal() error = %v:\n%s", err, out)
		}

		want := []string{"ZETA", "ALPHA", "MULTI"}
		if len(got) != len(want) {
			t.Fatalf("marshalYAML(%d) = %v, want %d items", indent, got, len(want))
		}

		for i, item := range got {
			if item.Key != want[i] {
				t.Errorf("marshalYAML(%d)[%d] = %v, want %s", indent, i, item.Key, want[i])
			}
		}

		if got[1].Value != "it's" || got[2].Value != "a\nb" {
			t.Errorf("marshalYAML(%d) values = %v", indent, got)
		}
	}
}

func TestMarshalYAML_FlowMultiline(t *testing.T) {
	ns := lang.NewNamespace(
		lang.Pair{Key: "MULTI", Value: "a\nb"},
		lang.Pair{Key: "CRLF", Value: "x\r\ny\n"},
		lang.Pair{Key: "PLAIN", Value: "one line"},
	)

	out, err := marshalYAML(context.Background(), ns, 0)
	if err != nil {
		t.Fatalf("marshalYAML() error = %v", err)
	}

	if strings.Contains(string(out), "|") {
		t.Errorf("marshalYAML() wrote a block scalar in flow style:\n%s", out)
	}

	if !strings.Contains(string(out), `"a\nb"`) {
		t.Errorf("marshalYAML() = %s, want MULTI double-quoted", out)
	}

	var got yaml.MapSlice
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v:\n%s", err, out)
	}

	i := 0
	for key, want := range ns.All() {
		if i >= len(got) {
			t.Fatalf("marshalYAML() = %v, missing %s", got, key)
		}

		if got[i].Key != key || got[i].Value != want {
			t.Errorf("marshalYAML()[%d] = %v: %q, want %s: %q", i, got[i].Key, got[i].Value, key, want)
		}

		i++
	}
}

func TestPrintRun(t *testing.T) {
	dir := writeEnv(t, "DENV_HOST=localhost\nDENV_URL=http://${DENV_HOST}:8080\n")

	tests := []struct {
		name  string
		print Print
		want  string
	}{
		{
			name:  "env",
			print: Print{Format: "env"},
			want:  "DENV_HOST='localhost'\nDENV_URL='http://localhost:8080'\n",
		},
		{
			name:  "json",
			print: Print{Format: "json", Indent: 0},
			want:  `{"DENV_HOST":"localhost","DENV_URL":"http://localhost:8080"}` + "\n",
		},
		{
			name:  "negative_indent",
			print: Print{Format: "json", Indent: -1},
			want:  "{\n  \"DENV_HOST\": \"localhost\",\n  \"DENV_URL\": \"http://localhost:8080\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, &Source{File: ".env", Dir: dir})

			if err := tt.print.Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintRun_Error(t *testing.T) {
	ctx, out := testContext(t, &Source{File: "missing.env", Dir: t.TempDir()})

	err := (&Print{Format: "env"}).Run(ctx)
	if err == nil {
		t.Fatal("Run() error = nil")
	}

	if out.Len() != 0 {
		t.Errorf("Run() wrote %q on error", out.String())
	}

	if errors.Is(err, ErrMarshal) {
		t.Errorf("Run() error = %v, want a read error", err)
	}
}

func TestGetRun(t *testing.T) {
	dir := writeEnv(t, "DENV_HOST=localhost\nDENV_URL=http://${DENV_HOST}:8080\n")

	ctx, out := testContext(t, &Source{File: ".env", Dir: dir})

	if err := (&Get{Name: "DENV_URL"}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := out.String(); got != "http://localhost:8080\n" {
		t.Errorf("Run() output = %q", got)
	}

	err := (&Get{Name: "MISSING"}).Run(ctx)
	if !errors.Is(err, ErrUndefined) {
		t.Errorf("Run() error = %v, want %v", err, ErrUndefined)
	}
}
