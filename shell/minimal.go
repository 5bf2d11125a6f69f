package shell

// Minimal is the installer shell embedded in the boot image.
var Minimal = Variant{
	Name:    "minimal",
	Catalog: &InstallerCatalog,
	Commands: []Command{
		{Name: "ls", Arg: NoArg, Run: minimalLs},
		{Name: "info", Arg: NoArg, Run: minimalInfo},
		{Name: "install", Arg: NoArg, Run: minimalInstall},
		{Name: "clear", Arg: NoArg, Run: cmdClear},
		{Name: "mkdir", Arg: RequiredArg, Run: minimalMkdir},
		{Name: "cat", Arg: RequiredArg, Run: minimalCat},
	},
	Prompt:   minimalPrompt,
	Banner:   minimalBanner,
	NotFound: minimalNotFound,
}

func minimalPrompt(s *Session) {
	s.term.WriteString("bash# ")
}

func minimalBanner(s *Session) {
	s.term.WriteString("kernel is loading...\n")
	s.term.WriteString("Initializing HaldenBoot...\n")
	s.term.WriteString("Loading filesystem drivers...\n")
	s.term.WriteString("Mounting root filesystem...\n\n")
	s.term.WriteString("HaldenOS V1 - 64-bit\n")
	s.term.WriteString("Type 'info' for system information\n")
	s.term.WriteString("Type 'install' to install the OS\n\n")
}

func minimalNotFound(s *Session, line []byte) {
	s.printf("bash: %s: command not found\n", line)
}

func minimalLs(s *Session, _ []byte) {
	s.term.WriteString("Directory listing:\n")
	s.variant.Catalog.Visit(RootDir, func(e *CatalogEntry) {
		s.term.WriteString("  ")
		s.term.WriteString(e.Name)
		if e.IsDir {
			s.term.WriteByte('/')
		}
		s.term.WriteByte('\n')
	})
}

func minimalMkdir(s *Session, arg []byte) {
	s.printf("mkdir: created directory '%s'\n", arg)
}

func minimalCat(s *Session, arg []byte) {
	e := s.variant.Catalog.Lookup(arg)
	if e == nil {
		s.printf("cat: %s: No such file\n", arg)
		return
	}

	s.term.WriteString(e.Content)
	s.term.WriteByte('\n')
}

func minimalInfo(s *Session, _ []byte) {
	s.term.WriteString("HaldenOS V1\n")
	s.term.WriteString("Architecture: " + osArch + "\n")
	s.term.WriteString("Boot: UEFI\n")
	if s.info.Features != 0 {
		s.term.WriteString("CPU features:")
		s.info.Features.Visit(func(name string) {
			s.term.WriteByte(' ')
			s.term.WriteString(name)
		})
		s.term.WriteByte('\n')
	}

	if s.info.Virtualized {
		s.term.WriteString("Environment: Virtual Machine\n\n")
	} else {
		s.term.WriteString("Environment: Physical Hardware\n\n")
	}

	s.term.WriteString("Available disks:\n")
	for i := 0; i < s.info.Disks.Len(); i++ {
		if d := s.info.Disks.Disk(i); d.Exists {
			s.printf("  /dev/%s - %d MB\n", d.Name(), d.SizeMB)
		}
	}
}

func minimalInstall(s *Session, _ []byte) {
	s.term.WriteString("HaldenOS Installer\n")
	s.term.WriteString("===================\n\n")
	s.term.WriteString("Available disks:\n")
	for i := 0; i < s.info.Disks.Len(); i++ {
		if d := s.info.Disks.Disk(i); d.Exists {
			s.printf("  [%d] /dev/%s\n", i, d.Name())
		}
	}

	s.term.WriteString("\nWARNING: Selected disk will be formatted as ext4\n")
	s.term.WriteString("All data will be lost!\n")
	s.term.WriteString("Installation simulated - selecting disk 0\n")
	if d := s.info.Disks.Disk(0); d != nil {
		s.printf("Formatting /dev/%s as ext4...\n", d.Name())
	}
	s.term.WriteString("Creating directories:\n")
	s.term.WriteString("  /dev\n  /etc\n  /home\n  /bin\n  /boot\n")
	s.term.WriteString("Installing kernel...\n")
	s.term.WriteString("Installing bootloader...\n")
	s.term.WriteString("Installation complete!\n")
}

// VariantByName returns the shell configuration called name.
func VariantByName(name []byte) (*Variant, bool) {
	switch string(name) {
	case Extended.Name:
		return &Extended, true
	case Minimal.Name:
		return &Minimal, true
	}

	return nil, false
}
