package profile

import (
	"path/filepath"
	"testing"

	"github.com/ardnew/denv/pkg"
)

func TestConfig_Dir(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default", Config{Mode: "cpu"}, filepath.Join(pkg.CacheDir(), Tag)},
		{"explicit", Config{Mode: "cpu", Dir: "/tmp/profiles"}, "/tmp/profiles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.dir(); got != tt.want {
				t.Errorf("dir() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := DefaultDir(); filepath.Base(got) != Tag {
		t.Errorf("DefaultDir() = %q, want a %q directory", got, Tag)
	}
}

func TestConfig_StartWithoutMode(t *testing.T) {
	p, err := Config{Dir: t.TempDir(), Quiet: true}.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, ok := p.(ignore); !ok {
		t.Errorf("Start() = %T, want no-op", p)
	}

	p.Stop()
}
