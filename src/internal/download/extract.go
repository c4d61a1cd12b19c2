package download

import (
	"archive/tar"
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/klauspost/compress/gzip"
)

// ErrUnsupportedArchive is returned for file types Extract cannot unpack
var ErrUnsupportedArchive = errors.New("unsupported archive format")

// Extract unpacks an archive into destDir, choosing the format from the file
// extension: .zip, .7z, and everything else as tar.gz. It returns the name
// of the folder every entry sits under, or "" when there is no such folder.
func Extract(archivePath, destDir string) (string, error) {
	ui.Debug("Extracting %s to %s", archivePath, destDir)

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	lower := strings.ToLower(archivePath)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return extractZip(archivePath, destDir)
	case strings.HasSuffix(lower, ".7z"):
		return extract7z(archivePath, destDir)
	case filepath.Ext(lower) == "":
		return "", fmt.Errorf("%w: %s", ErrUnsupportedArchive, filepath.Base(archivePath))
	default:
		return extractTarGz(archivePath, destDir)
	}
}

// topFolder finds the single directory every entry of an archive sits under
type topFolder struct {
	name  string
	isDir bool
	mixed bool
}

func (t *topFolder) add(name string, dir bool) {
	parts := pathParts(name)
	if len(parts) == 0 || t.mixed {
		return
	}

	switch {
	case t.name == "":
		t.name = parts[0]
	case t.name != parts[0]:
		t.mixed = true
		return
	}
	if dir || len(parts) > 1 {
		t.isDir = true
	}
}

// result is "" when entries sit at several roots or the only root is a file
func (t *topFolder) result() string {
	if t.mixed || !t.isDir {
		return ""
	}
	return t.name
}

// pathParts splits an archive path into its meaningful elements
func pathParts(name string) []string {
	var parts []string
	for _, part := range strings.Split(strings.ReplaceAll(name, "\\", "/"), "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

func within(root, target string) bool {
	root = filepath.Clean(root)
	return target == root || strings.HasPrefix(target, root+string(os.PathSeparator))
}

// safeJoin resolves an archive entry under destDir, rejecting entries that
// would escape it
func safeJoin(destDir, name string) (string, error) {
	destPath := filepath.Join(destDir, name)
	if !within(destDir, destPath) {
		return "", fmt.Errorf("illegal file path: %s", name)
	}
	return destPath, nil
}

// checkLink rejects symlink targets that are absolute or resolve outside
// destDir
func checkLink(destDir, linkPath, target string) error {
	absolute := filepath.IsAbs(target) || strings.HasPrefix(target, "/") || strings.HasPrefix(target, "\\")
	if target == "" || absolute || !within(destDir, filepath.Join(filepath.Dir(linkPath), target)) {
		return fmt.Errorf("illegal link target: %s -> %s", filepath.Base(linkPath), target)
	}
	return nil
}

func writeFile(destPath string, mode os.FileMode, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}

	if mode&0200 == 0 {
		mode |= 0200
	}
	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func extractZip(zipPath, destDir string) (string, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = reader.Close() }()

	var top topFolder
	for _, file := range reader.File {
		top.add(file.Name, file.FileInfo().IsDir())
		if err := extractZipFile(file, destDir); err != nil {
			return "", fmt.Errorf("failed to extract %s: %w", file.Name, err)
		}
	}

	return top.result(), nil
}

func extractZipFile(file *zip.File, destDir string) error {
	destPath, err := safeJoin(destDir, file.Name)
	if err != nil {
		return err
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(destPath, 0755)
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	return writeFile(destPath, file.Mode(), src)
}

func extractTarGz(tarGzPath, destDir string) (string, error) {
	file, err := os.Open(tarGzPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer func() { _ = gzReader.Close() }()

	tarReader := tar.NewReader(gzReader)

	var top topFolder
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read tar header: %w", err)
		}

		if isPaxHeader(header) {
			continue
		}
		top.add(header.Name, header.Typeflag == tar.TypeDir)

		if err := extractTarEntry(header, tarReader, destDir); err != nil {
			return "", fmt.Errorf("failed to extract %s: %w", header.Name, err)
		}
	}

	return top.result(), nil
}

// isPaxHeader reports pax header entries, which carry metadata and no file
func isPaxHeader(header *tar.Header) bool {
	return header.Typeflag == tar.TypeXGlobalHeader || header.Typeflag == tar.TypeXHeader
}

func extractTarEntry(header *tar.Header, reader io.Reader, destDir string) error {
	destPath, err := safeJoin(destDir, header.Name)
	if err != nil {
		return err
	}

	switch header.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(destPath, 0755)

	case tar.TypeReg:
		return writeFile(destPath, os.FileMode(header.Mode), reader)

	case tar.TypeSymlink:
		if err := checkLink(destDir, destPath, header.Linkname); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}
		_ = os.Remove(destPath)
		return os.Symlink(header.Linkname, destPath)

	case tar.TypeLink:
		target, err := safeJoin(destDir, header.Linkname)
		if err != nil {
			return err
		}
		_ = os.Remove(destPath)
		return os.Link(target, destPath)

	default:
		return nil
	}
}

func extract7z(archivePath, destDir string) (string, error) {
	reader, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return "", err
	}
	defer func() { _ = reader.Close() }()

	var top topFolder
	for _, file := range reader.File {
		top.add(file.Name, file.FileInfo().IsDir())
		if err := extract7zFile(file, destDir); err != nil {
			return "", fmt.Errorf("failed to extract %s: %w", file.Name, err)
		}
	}

	return top.result(), nil
}

func extract7zFile(file *sevenzip.File, destDir string) error {
	destPath, err := safeJoin(destDir, file.Name)
	if err != nil {
		return err
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(destPath, 0755)
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	return writeFile(destPath, file.Mode(), src)
}
