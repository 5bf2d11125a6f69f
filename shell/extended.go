package shell

const (
	osName    = "HaldenOS"
	osRelease = "1.0.0"
	osArch    = "x86_64"
	hostName  = "halden-system"
	userName  = "root"

	// usedMemoryPercent is the share of memory reported as in use by free.
	usedMemoryPercent = 17

	// diskUsePercent is the usage reported by df for every disk.
	diskUsePercent = 15

	colorLightCyan = 11
	colorBlack     = 0
)

// Extended is the full shell with the fetch/ls/cd family of commands.
var Extended = Variant{
	Name:    "extended",
	Catalog: &SystemCatalog,
	Commands: []Command{
		{Name: "fetch", Arg: NoArg, Run: cmdFetch, Usage: "fetch", Help: "System info"},
		{Name: "ls", Arg: OptionalArg, Run: cmdLs, Usage: "ls [dir]", Help: "List directory"},
		{Name: "cd", Arg: OptionalArg, Run: cmdCd, Usage: "cd [dir]", Help: "Change directory"},
		{Name: "pwd", Arg: NoArg, Run: cmdPwd, Usage: "pwd", Help: "Working directory"},
		{Name: "cat", Arg: RequiredArg, Run: cmdCat, Usage: "cat", Help: "Display file"},
		{Name: "echo", Arg: RequiredArg, Run: cmdEcho, Usage: "echo", Help: "Print text"},
		{Name: "whoami", Arg: NoArg, Run: cmdWhoami},
		{Name: "hostname", Arg: NoArg, Run: cmdHostname},
		{Name: "uname", Arg: OptionalArg, Run: cmdUname, Usage: "uname", Help: "System info"},
		{Name: "df", Arg: NoArg, Run: cmdDf, Usage: "df", Help: "Disk usage"},
		{Name: "free", Arg: NoArg, Run: cmdFree, Usage: "free", Help: "Memory usage"},
		{Name: "lscpu", Arg: NoArg, Run: cmdLscpu, Usage: "lscpu", Help: "CPU info"},
		{Name: "lsblk", Arg: NoArg, Run: cmdLsblk, Usage: "lsblk", Help: "Block devices"},
		{Name: "ps", Arg: NoArg, Run: cmdPs, Usage: "ps", Help: "Processes"},
		{Name: "env", Arg: NoArg, Run: cmdEnv, Usage: "env", Help: "Environment"},
		{Name: "help", Arg: NoArg, Run: cmdHelp},
		{Name: "clear", Arg: NoArg, Run: cmdClear, Usage: "clear", Help: "Clear screen"},
	},
	Prompt:   extendedPrompt,
	Banner:   extendedBanner,
	NotFound: extendedNotFound,
}

func extendedPrompt(s *Session) {
	s.printf("%s@%s:%s# ", userName, hostName, s.cwd)
}

func extendedBanner(s *Session) {
	s.term.SetColor(colorLightCyan, colorBlack)
	s.term.WriteString(osName + " " + osRelease + " - 64-bit\n")
	s.term.ResetColor()
	s.term.WriteString("Type 'help' for a list of commands\n\n")
}

func extendedNotFound(s *Session, _ []byte) {
	s.term.WriteString("bash: command not found\n")
}

const fetchLogo = "\n" +
	"    ___           _     _\n" +
	"   / __\\___  __ _| | __| | ___ _ __\n" +
	"  / _\\/ _ \\/ _` | |/ _` |/ _ \\ '_ \\\n" +
	" / / |  __/ (_| | | (_| |  __/ | | |\n" +
	" \\/   \\___|\\__,_|_|\\__,_|\\___|_| |_|\n\n"

func cmdFetch(s *Session, _ []byte) {
	s.term.WriteString(fetchLogo)
	s.term.WriteString(" OS:        " + osName + " " + osRelease + "\n")
	s.term.WriteString(" Kernel:    " + osRelease + "-halden\n")
	s.term.WriteString(" Arch:      " + osArch + "\n")
	s.printf(" CPU:       %s\n", s.info.Brand())
	s.printf(" Cores:     %d\n", s.info.Cores)
	s.printf(" Memory:    %d MB\n", s.info.MemoryMB())
	s.printf(" Disks:     %d detected\n", s.info.Disks.Len())
	if s.info.Virtualized {
		s.term.WriteString(" VM:        Yes\n\n")
	} else {
		s.term.WriteString(" VM:        No\n\n")
	}
}

// cmdLs lists the subdirectories of / or the files of a subdirectory. An
// explicit argument must be an absolute path.
func cmdLs(s *Session, arg []byte) {
	dir := s.cwd
	if len(arg) != 0 {
		var ok bool
		if dir, ok = resolveAbsDir(s.variant.Catalog, arg); !ok {
			s.term.WriteString("ls: cannot access: No such directory\n")
			return
		}
	}

	if dir == RootDir {
		for _, d := range s.variant.Catalog.Dirs {
			s.term.WriteString(d)
			s.term.WriteByte('\n')
		}
		return
	}

	s.variant.Catalog.Visit(dir, func(e *CatalogEntry) {
		s.term.WriteString(e.Name)
		s.term.WriteByte('\n')
	})
}

func resolveAbsDir(c *Catalog, arg []byte) (string, bool) {
	switch {
	case string(arg) == RootDir:
		return RootDir, true
	case arg[0] == '/':
		return c.ResolveDir(arg)
	}

	return "", false
}

// cmdCd changes the current directory. The hierarchy is flat so ".." always
// leads back to /.
func cmdCd(s *Session, arg []byte) {
	switch string(arg) {
	case "", "~", RootDir, "..":
		s.cwd = RootDir
		return
	}

	dir, ok := s.variant.Catalog.ResolveDir(arg)
	if !ok {
		s.term.WriteString("cd: no such directory\n")
		return
	}

	s.cwd = dir
}

func cmdCat(s *Session, arg []byte) {
	e := s.variant.Catalog.Lookup(arg)
	if e == nil {
		s.term.WriteString("cat: no such file\n")
		return
	}

	s.term.WriteString(e.Content)
	s.term.WriteByte('\n')
}

func cmdPwd(s *Session, _ []byte) {
	s.term.WriteString(s.cwd)
	s.term.WriteByte('\n')
}

func cmdEcho(s *Session, arg []byte) {
	s.term.Write(arg)
	s.term.WriteByte('\n')
}

func cmdWhoami(s *Session, _ []byte) {
	s.term.WriteString(userName + "\n")
}

func cmdHostname(s *Session, _ []byte) {
	s.term.WriteString(hostName + "\n")
}

// cmdUname prints the system name. Unknown flags print nothing.
func cmdUname(s *Session, arg []byte) {
	switch string(arg) {
	case "":
		s.term.WriteString(osName + "\n")
	case "-a":
		s.term.WriteString(osName + " " + osRelease + " " + osArch + "\n")
	case "-r":
		s.term.WriteString(osRelease + "\n")
	case "-m":
		s.term.WriteString(osArch + "\n")
	}
}

func cmdDf(s *Session, _ []byte) {
	s.term.WriteString("Filesystem  Size  Used  Avail  Use%\n")
	for i := 0; i < s.info.Disks.Len(); i++ {
		if d := s.info.Disks.Disk(i); d.Exists {
			s.printf("/dev/%s   %dM  %d%%\n", d.Name(), d.SizeMB, diskUsePercent)
		}
	}
}

func cmdFree(s *Session, _ []byte) {
	total := s.info.MemoryKB
	used := total * usedMemoryPercent / 100

	s.term.WriteString("       total    used    free\n")
	s.printf("Mem:   %d   %d   %d\n", total, used, total-used)
}

func cmdLscpu(s *Session, _ []byte) {
	s.term.WriteString("Architecture:  " + osArch + "\n")
	s.printf("CPU(s):        %d\n", s.info.Cores)
	s.printf("Vendor:        %s\n", s.info.Vendor())
	s.printf("Model:         %s\n", s.info.Brand())
	if s.info.Features != 0 {
		s.term.WriteString("Flags:        ")
		s.info.Features.Visit(func(name string) {
			s.term.WriteByte(' ')
			s.term.WriteString(name)
		})
		s.term.WriteByte('\n')
	}
}

func cmdLsblk(s *Session, _ []byte) {
	s.term.WriteString("NAME  SIZE\n")
	for i := 0; i < s.info.Disks.Len(); i++ {
		if d := s.info.Disks.Disk(i); d.Exists {
			s.printf("%s  %dM\n", d.Name(), d.SizeMB)
		}
	}
}

func cmdPs(s *Session, _ []byte) {
	s.term.WriteString("PID  CMD\n  1  init\n  2  bash\n")
}

func cmdEnv(s *Session, _ []byte) {
	s.term.WriteString("PATH=/bin\nHOME=/root\nSHELL=/bin/bash\nUSER=" + userName + "\n")
}

func cmdHelp(s *Session, _ []byte) {
	s.term.WriteString("Commands:\n")
	for i := range s.variant.Commands {
		if cmd := &s.variant.Commands[i]; cmd.Help != "" {
			s.printf(" %-10s- %s\n", cmd.Usage, cmd.Help)
		}
	}
}

func cmdClear(s *Session, _ []byte) {
	s.term.Clear()
}
