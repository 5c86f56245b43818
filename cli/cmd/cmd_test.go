package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
)

// testContext returns a command context reading src whose standard output
// is captured in the returned buffer.
func testContext(t *testing.T, src *Source) (context.Context, *bytes.Buffer) {
	t.Helper()

	var (
		cli struct{}
		out bytes.Buffer
	)

	parser, err := kong.New(&cli, kong.Writers(&out, io.Discard))
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithContext(context.Background(), ktx)

	return WithSource(ctx, src), &out
}

// writeEnv writes content to a dotenv file in a new temporary directory and
// returns the directory.
func writeEnv(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, defaultFile), []byte(content), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	return dir
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	if kongContextFrom(ctx) != nil {
		t.Error("kongContextFrom(empty) != nil")
	}

	if got := stdout(ctx); got != os.Stdout {
		t.Error("stdout(empty) is not os.Stdout")
	}

	if got := stderr(ctx); got != os.Stderr {
		t.Error("stderr(empty) is not os.Stderr")
	}

	src := sourceFrom(ctx)
	if src.File != defaultFile || len(src.ListVars) != 1 {
		t.Errorf("sourceFrom(empty) = %+v, want defaults", src)
	}

	want := &Source{File: "custom.env"}
	if got := sourceFrom(WithSource(ctx, want)); got != want {
		t.Errorf("sourceFrom() = %p, want %p", got, want)
	}

	tctx, out := testContext(t, want)
	if got := stdout(tctx); got != out {
		t.Error("stdout() does not use the kong writer")
	}
}
