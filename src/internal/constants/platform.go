// Package constants defines common constants used across uvm
package constants

// Operating systems (GOOS values)
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
	OSFreeBSD = "freebsd"
	OSAIX     = "aix"
)

// CPU architectures (GOARCH values)
const (
	ArchAMD64   = "amd64"
	ArchARM64   = "arm64"
	ArchARM     = "arm"
	Arch386     = "386"
	ArchPPC64   = "ppc64"
	ArchPPC64LE = "ppc64le"
	ArchS390X   = "s390x"
	ArchLoong64 = "loong64"
)

// Supported languages
const (
	LangGo   = "go"
	LangNode = "node"
	LangJava = "java"
)

// Shell types
const (
	ShellBash = "bash"
	ShellZsh  = "zsh"
	ShellFish = "fish"
)

// User responses
const (
	ResponseYes = "yes"
	ResponseY   = "y"
	ResponseNo  = "no"
	ResponseN   = "n"
)

// File extensions
const (
	ExtExe = ".exe"
)

// DefaultEnvDir is the directory name used by `venv` when none is given
const DefaultEnvDir = ".venv"
