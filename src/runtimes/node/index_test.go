package node

import (
	"testing"

	"github.com/jinyuli/uvm/src/internal/catalog"
	"github.com/jinyuli/uvm/src/internal/download"
	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexJSON = `[
  {"version":"v21.0.0","date":"2023-10-17","files":["linux-x64","osx-arm64-tar","win-x64-zip","src"],"npm":"10.2.0","lts":false},
  {"version":"v20.10.0","date":"2023-11-22","files":["linux-x64-tar","win-x64-zip"],"npm":"10.2.3","lts":"Iron"},
  {"version":"not-a-version","files":["linux-x64"],"lts":false}
]`

func TestParseIndex(t *testing.T) {
	records, err := parseIndex(indexJSON)
	require.NoError(t, err)
	require.Len(t, records, 2, "non-semver entries are dropped")

	latest := records[0]
	assert.Equal(t, "v21.0.0", latest.Raw)
	assert.Equal(t, "21.0.0", latest.Ordering.String())
	assert.False(t, latest.LTS)
	assert.Len(t, latest.Packages, 3, "src has no platform and is dropped")

	iron := records[1]
	assert.Equal(t, "v20.10.0", iron.Raw)
	assert.True(t, iron.LTS)
	require.Len(t, iron.Packages, 2)
	assert.Equal(t, runtime.Package{
		OS:       "linux",
		Arch:     "x64",
		Kind:     runtime.KindTarGz,
		URL:      "https://nodejs.org/dist/v20.10.0/node-v20.10.0-linux-x64.tar.gz",
		FileName: "node-v20.10.0-linux-x64.tar.gz",
		Checksum: runtime.ChecksumSumsFile{
			Method: download.MethodSHA256,
			URL:    "https://nodejs.org/dist/v20.10.0/SHASUMS256.txt",
			Entry:  "node-v20.10.0-linux-x64.tar.gz",
		},
	}, iron.Packages[0])
}

func TestParseIndex_InvalidJSON(t *testing.T) {
	_, err := parseIndex("<html>")
	assert.True(t, catalog.IsParseFailed(err))
}

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		descriptor string
		ok         bool
		os, arch   string
		kind       runtime.Kind
		fileName   string
	}{
		{descriptor: "linux-x64", ok: true, os: "linux", arch: "x64", kind: runtime.KindTarGz, fileName: "node-v20.10.0-linux-x64.tar.gz"},
		{descriptor: "aix-ppc64", ok: true, os: "aix", arch: "ppc64", kind: runtime.KindTarGz, fileName: "node-v20.10.0-aix-ppc64.tar.gz"},
		{descriptor: "osx-arm64-tar", ok: true, os: "osx", arch: "arm64", kind: runtime.KindTarGz, fileName: "node-v20.10.0-darwin-arm64.tar.gz"},
		{descriptor: "osx-x64-pkg", ok: true, os: "osx", arch: "x64", kind: runtime.KindPkg, fileName: "node-v20.10.0-darwin-x64.pkg"},
		{descriptor: "win-x64-zip", ok: true, os: "win", arch: "x64", kind: runtime.KindZip, fileName: "node-v20.10.0-win-x64.zip"},
		{descriptor: "win-x86-msi", ok: true, os: "win", arch: "x86", kind: runtime.KindMsi, fileName: "node-v20.10.0-win-x86.msi"},
		{descriptor: "win-x64-7z", ok: true, os: "win", arch: "x64", kind: runtime.Kind7z, fileName: "node-v20.10.0-win-x64.7z"},
		{descriptor: "win-x64-exe", ok: true, os: "win", arch: "x64", kind: runtime.KindExe, fileName: "node-v20.10.0-win-x64.exe"},
		{descriptor: "win-x64", ok: true, os: "win", arch: "x64", kind: runtime.KindNone, fileName: "node-v20.10.0-win-x64.tar.gz"},
		{descriptor: "linux-x64-musl", ok: true, os: "linux", arch: "x64", kind: runtime.KindNone, fileName: "node-v20.10.0-linux-x64.tar.gz"},
		{descriptor: "src", ok: false},
		{descriptor: "headers", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			pkg, ok := parseDescriptor("20.10.0", tt.descriptor)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.os, pkg.OS)
			assert.Equal(t, tt.arch, pkg.Arch)
			assert.Equal(t, tt.kind, pkg.Kind)
			assert.Equal(t, tt.fileName, pkg.FileName)
			assert.Equal(t, "https://nodejs.org/dist/v20.10.0/"+tt.fileName, pkg.URL)
		})
	}
}

func TestFileOS(t *testing.T) {
	assert.Equal(t, "darwin", fileOS("osx"))
	assert.Equal(t, "win", fileOS("win"))
	assert.Equal(t, "linux", fileOS("Linux"))
}
