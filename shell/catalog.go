package shell

// RootDir is the path of the top-level directory.
const RootDir = "/"

// CatalogEntry is a file or directory in a Catalog.
type CatalogEntry struct {
	Name    string
	Dir     string
	IsDir   bool
	Content string
}

// Catalog is a static, read-only directory tree. Dirs lists the
// subdirectories of RootDir that can be entered; Entries lists everything
// that can be listed or printed.
type Catalog struct {
	Dirs    []string
	Entries []CatalogEntry
}

// ResolveDir maps a cd/ls argument to the canonical path of a subdirectory.
// Both the absolute ("/dev") and the relative ("dev") forms are accepted.
func (c *Catalog) ResolveDir(arg []byte) (string, bool) {
	for _, dir := range c.Dirs {
		if string(arg) == dir || string(arg) == dir[1:] {
			return dir, true
		}
	}

	return "", false
}

// Lookup returns the file named name from any directory.
func (c *Catalog) Lookup(name []byte) *CatalogEntry {
	for i := range c.Entries {
		if e := &c.Entries[i]; !e.IsDir && e.Name == string(name) {
			return e
		}
	}

	return nil
}

// Visit invokes fn for each entry of dir in catalog order.
func (c *Catalog) Visit(dir string, fn func(*CatalogEntry)) {
	for i := range c.Entries {
		if c.Entries[i].Dir == dir {
			fn(&c.Entries[i])
		}
	}
}

// SystemCatalog is the tree browsed by the extended shell.
var SystemCatalog = Catalog{
	Dirs: []string{"/dev", "/etc"},
	Entries: []CatalogEntry{
		{Name: "sda", Dir: "/dev", Content: "block device 8:0"},
		{Name: "tty0", Dir: "/dev", Content: "character device 4:0"},
		{Name: "null", Dir: "/dev"},
		{Name: "zero", Dir: "/dev"},
		{Name: "hostname", Dir: "/etc", Content: hostName},
		{Name: "os-release", Dir: "/etc", Content: "NAME=" + osName + "\nVERSION=" + osRelease},
		{Name: "passwd", Dir: "/etc", Content: "root:x:0:0:root:/root:/bin/bash"},
	},
}

// InstallerCatalog is the root listing shown by the minimal shell.
var InstallerCatalog = Catalog{
	Entries: []CatalogEntry{
		{Name: ".", Dir: RootDir, IsDir: true},
		{Name: "..", Dir: RootDir, IsDir: true},
		{Name: "home", Dir: RootDir, IsDir: true},
		{Name: "dev", Dir: RootDir, IsDir: true},
		{Name: "etc", Dir: RootDir, IsDir: true},
		{Name: "bin", Dir: RootDir, IsDir: true},
		{Name: "readme.txt", Dir: RootDir, Content: "Welcome to HaldenOS V1\nA minimal operating system"},
		{Name: "system.conf", Dir: RootDir, Content: "version=1.0\narch=x86_64"},
	},
}
