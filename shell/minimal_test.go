package shell

import "testing"

func TestMinimalCommands(t *testing.T) {
	specs := []struct {
		name string
		line string
		exp  string
	}{
		{
			"ls", "ls",
			"Directory listing:\n" +
				"  ./\n" +
				"  ../\n" +
				"  home/\n" +
				"  dev/\n" +
				"  etc/\n" +
				"  bin/\n" +
				"  readme.txt\n" +
				"  system.conf\n",
		},
		{"cat readme", "cat readme.txt", "Welcome to HaldenOS V1\nA minimal operating system\n"},
		{"cat system.conf", "cat system.conf", "version=1.0\narch=x86_64\n"},
		{"cat directory", "cat home", "cat: home: No such file\n"},
		{"mkdir", "mkdir projects", "mkdir: created directory 'projects'\n"},
		{"mkdir bare", "mkdir", "bash: mkdir: command not found\n"},
		{"ls with argument", "ls /dev", "bash: ls /dev: command not found\n"},
		{"extended only command", "fetch", "bash: fetch: command not found\n"},
		{
			"info", "info",
			"HaldenOS V1\n" +
				"Architecture: x86_64\n" +
				"Boot: UEFI\n" +
				"CPU features: sse sse2\n" +
				"Environment: Virtual Machine\n\n" +
				"Available disks:\n" +
				"  /dev/sda - 20480 MB\n" +
				"  /dev/sdb - 8192 MB\n",
		},
		{
			"install", "install",
			"HaldenOS Installer\n" +
				"===================\n\n" +
				"Available disks:\n" +
				"  [0] /dev/sda\n" +
				"  [1] /dev/sdb\n" +
				"\nWARNING: Selected disk will be formatted as ext4\n" +
				"All data will be lost!\n" +
				"Installation simulated - selecting disk 0\n" +
				"Formatting /dev/sda as ext4...\n" +
				"Creating directories:\n" +
				"  /dev\n  /etc\n  /home\n  /bin\n  /boot\n" +
				"Installing kernel...\n" +
				"Installing bootloader...\n" +
				"Installation complete!\n",
		},
	}

	for _, spec := range specs {
		t.Run(spec.name, func(t *testing.T) {
			s, term := newTestSession(t, &Minimal, nil)
			if got := run(s, term, spec.line); got != spec.exp {
				t.Fatalf("expected output:\n%q\ngot:\n%q", spec.exp, got)
			}
		})
	}
}

func TestMinimalInfoPhysicalHardware(t *testing.T) {
	s, term := newTestSession(t, &Minimal, nil)
	s.info.Virtualized = false
	s.info.Features = 0

	exp := "HaldenOS V1\n" +
		"Architecture: x86_64\n" +
		"Boot: UEFI\n" +
		"Environment: Physical Hardware\n\n" +
		"Available disks:\n" +
		"  /dev/sda - 20480 MB\n" +
		"  /dev/sdb - 8192 MB\n"
	if got := run(s, term, "info"); got != exp {
		t.Fatalf("expected output:\n%q\ngot:\n%q", exp, got)
	}
}

func TestMinimalPrompt(t *testing.T) {
	s, term := newTestSession(t, &Minimal, typeKeys(t, "mkdir x\n"))
	s.Step()

	exp := "bash# mkdir x\nmkdir: created directory 'x'\n"
	if got := term.String(); got != exp {
		t.Fatalf("expected output:\n%q\ngot:\n%q", exp, got)
	}
}
