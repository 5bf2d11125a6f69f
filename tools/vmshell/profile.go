package main

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"haldenos/device/ata"
	"haldenos/kernel/cpu"
	"haldenos/kernel/sysinfo"
	"haldenos/shell"
)

const (
	defaultVendor   = "GenuineIntel"
	defaultCores    = 1
	defaultMemoryKB = 131072
)

var (
	// ErrUnknownVariant is returned for a shell variant other than
	// "extended" or "minimal".
	ErrUnknownVariant = errors.New("unknown shell variant")

	// ErrUnknownFeature is returned for a CPU feature name lscpu cannot
	// report.
	ErrUnknownFeature = errors.New("unknown cpu feature")

	// ErrTooManyDisks is returned when a profile lists more drives than
	// the ATA probe can detect.
	ErrTooManyDisks = errors.New("too many disks")
)

// Profile describes the simulated machine: what the hardware probes report
// and which shell is started.
type Profile struct {
	Variant  string     `yaml:"variant"`
	CPU      CPUProfile `yaml:"cpu"`
	MemoryKB uint32     `yaml:"memory_kb"`
	DisksMB  []uint32   `yaml:"disks_mb"`
}

// CPUProfile holds the values returned by the CPUID probes.
type CPUProfile struct {
	Vendor      string   `yaml:"vendor"`
	Brand       string   `yaml:"brand"`
	Cores       uint32   `yaml:"cores"`
	Virtualized *bool    `yaml:"virtualized"`
	Features    []string `yaml:"features"`
}

// LoadProfile reads a YAML profile from fs. An empty path yields the default
// profile. Fields missing from the file are filled with defaults.
func LoadProfile(fs afero.Fs, path string) (Profile, error) {
	if path == "" {
		return hydrateDefaults(Profile{}), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}

	return hydrateDefaults(p), nil
}

func hydrateDefaults(p Profile) Profile {
	if p.Variant == "" {
		p.Variant = shell.Extended.Name
	}
	if p.CPU.Vendor == "" {
		p.CPU.Vendor = defaultVendor
	}
	if p.CPU.Cores == 0 {
		p.CPU.Cores = defaultCores
	}
	if p.CPU.Virtualized == nil {
		virtualized := true
		p.CPU.Virtualized = &virtualized
	}
	if p.MemoryKB == 0 {
		p.MemoryKB = defaultMemoryKB
	}
	if len(p.DisksMB) == 0 {
		p.DisksMB = []uint32{ata.FallbackSizeMB}
	}
	return p
}

// ShellVariant returns the shell configuration selected by the profile.
func (p Profile) ShellVariant() (*shell.Variant, error) {
	v, ok := shell.VariantByName([]byte(p.Variant))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, p.Variant)
	}
	return v, nil
}

// SystemInfo builds the probe results the shell reports for this machine.
func (p Profile) SystemInfo() (*sysinfo.Info, error) {
	if len(p.DisksMB) > ata.MaxDisks {
		return nil, fmt.Errorf("%w: %d listed, at most %d supported", ErrTooManyDisks, len(p.DisksMB), ata.MaxDisks)
	}

	info := new(sysinfo.Info)
	info.SetCPU(p.CPU.Vendor, p.CPU.Brand)
	info.Cores = p.CPU.Cores
	info.Virtualized = p.CPU.Virtualized != nil && *p.CPU.Virtualized
	info.MemoryKB = p.MemoryKB

	for _, name := range p.CPU.Features {
		f, ok := cpu.FeatureByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
		}
		info.Features |= cpu.FeatureSet(f)
	}

	for _, size := range p.DisksMB {
		info.Disks.Add(size)
	}

	return info, nil
}
