package main

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"haldenos/device/ata"
	"haldenos/kernel/cpu"
	"haldenos/shell"
)

const testProfile = `variant: minimal
cpu:
  vendor: AuthenticAMD
  brand: AMD Ryzen 7 5800X
  cores: 8
  virtualized: false
  features: [sse, sse2, svm]
memory_kb: 16778240
disks_mb: [512000, 1024]
`

func TestLoadProfile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/machines/ryzen.yaml", []byte(testProfile), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/machines/partial.yaml", []byte("cpu:\n  brand: Test CPU\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/machines/broken.yaml", []byte("cpu: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	virtualized, physical := true, false

	t.Run("full", func(t *testing.T) {
		got, err := LoadProfile(fs, "/machines/ryzen.yaml")
		if err != nil {
			t.Fatal(err)
		}

		exp := Profile{
			Variant: "minimal",
			CPU: CPUProfile{
				Vendor:      "AuthenticAMD",
				Brand:       "AMD Ryzen 7 5800X",
				Cores:       8,
				Virtualized: &physical,
				Features:    []string{"sse", "sse2", "svm"},
			},
			MemoryKB: 16778240,
			DisksMB:  []uint32{512000, 1024},
		}
		if diff := cmp.Diff(exp, got); diff != "" {
			t.Fatalf("profile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		got, err := LoadProfile(fs, "/machines/partial.yaml")
		if err != nil {
			t.Fatal(err)
		}

		exp := Profile{
			Variant: "extended",
			CPU: CPUProfile{
				Vendor:      defaultVendor,
				Brand:       "Test CPU",
				Cores:       defaultCores,
				Virtualized: &virtualized,
			},
			MemoryKB: defaultMemoryKB,
			DisksMB:  []uint32{ata.FallbackSizeMB},
		}
		if diff := cmp.Diff(exp, got); diff != "" {
			t.Fatalf("profile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no path", func(t *testing.T) {
		got, err := LoadProfile(fs, "")
		if err != nil {
			t.Fatal(err)
		}
		if got.Variant != "extended" || got.MemoryKB != defaultMemoryKB {
			t.Fatalf("expected the default profile; got %+v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadProfile(fs, "/machines/none.yaml"); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected a not-exist error; got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := LoadProfile(fs, "/machines/broken.yaml"); err == nil {
			t.Fatal("expected a parse error")
		}
	})
}

func TestProfileShellVariant(t *testing.T) {
	specs := []struct {
		variant string
		exp     *shell.Variant
		expErr  error
	}{
		{"extended", &shell.Extended, nil},
		{"minimal", &shell.Minimal, nil},
		{"full", nil, ErrUnknownVariant},
	}

	for specIndex, spec := range specs {
		got, err := Profile{Variant: spec.variant}.ShellVariant()
		if got != spec.exp || !errors.Is(err, spec.expErr) {
			t.Errorf("[spec %d] expected (%v, %v); got (%v, %v)", specIndex, spec.exp, spec.expErr, got, err)
		}
	}
}

func TestProfileSystemInfo(t *testing.T) {
	p := hydrateDefaults(Profile{
		CPU: CPUProfile{
			Brand:    "Test CPU",
			Cores:    4,
			Features: []string{"sse", "avx2"},
		},
		MemoryKB: 8192,
		DisksMB:  []uint32{100, 200},
	})

	info, err := p.SystemInfo()
	if err != nil {
		t.Fatal(err)
	}

	if got := string(info.Vendor()); got != defaultVendor {
		t.Errorf("expected vendor %q; got %q", defaultVendor, got)
	}
	if got := string(info.Brand()); got != "Test CPU" {
		t.Errorf("expected brand %q; got %q", "Test CPU", got)
	}
	if info.Cores != 4 || !info.Virtualized || info.MemoryKB != 8192 {
		t.Errorf("unexpected cpu/memory info: cores %d, virtualized %t, memory %d", info.Cores, info.Virtualized, info.MemoryKB)
	}
	if exp := cpu.FeatureSet(cpu.FeatureSSE | cpu.FeatureAVX2); info.Features != exp {
		t.Errorf("expected features 0x%x; got 0x%x", uint32(exp), uint32(info.Features))
	}
	if info.Disks.Len() != 2 || string(info.Disks.Disk(1).Name()) != "sdb" || info.Disks.Disk(1).SizeMB != 200 {
		t.Errorf("unexpected disk table")
	}

	t.Run("unknown feature", func(t *testing.T) {
		p := hydrateDefaults(Profile{CPU: CPUProfile{Features: []string{"mmx"}}})
		if _, err := p.SystemInfo(); !errors.Is(err, ErrUnknownFeature) {
			t.Fatalf("expected ErrUnknownFeature; got %v", err)
		}
	})

	t.Run("too many disks", func(t *testing.T) {
		p := hydrateDefaults(Profile{DisksMB: make([]uint32, ata.MaxDisks+1)})
		if _, err := p.SystemInfo(); !errors.Is(err, ErrTooManyDisks) {
			t.Fatalf("expected ErrTooManyDisks; got %v", err)
		}
	})
}
