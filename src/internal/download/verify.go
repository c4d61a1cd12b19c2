package download

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// Method names a digest algorithm
type Method string

// Supported digest algorithms
const (
	MethodMD5    Method = "md5"
	MethodSHA256 Method = "sha256"
)

// Digest is an expected checksum for a downloaded file
type Digest struct {
	Method Method
	Value  string
}

func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.Method, d.Value)
}

// ErrChecksumMismatch is returned when a file's digest differs from the
// expected one
type ErrChecksumMismatch struct {
	Method   Method
	Expected string
	Actual   string
}

func (e *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("%s checksum mismatch: expected %s, got %s", e.Method, e.Expected, e.Actual)
}

func newHasher(method Method) (hash.Hash, error) {
	switch method {
	case MethodMD5:
		return md5.New(), nil
	case MethodSHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum method %q", method)
	}
}

// Compute returns the lower-case hex digest of a file
func Compute(filePath string, method Method) (string, error) {
	hasher, err := newHasher(method)
	if err != nil {
		return "", err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// ComputeSHA256 computes the SHA256 checksum of a file
func ComputeSHA256(filePath string) (string, error) {
	return Compute(filePath, MethodSHA256)
}

// VerifyFile checks a file against an expected digest. The expected value is
// compared case-insensitively after trimming whitespace.
func VerifyFile(filePath string, expected Digest) error {
	actual, err := Compute(filePath, expected.Method)
	if err != nil {
		return err
	}

	if actual != strings.ToLower(strings.TrimSpace(expected.Value)) {
		return &ErrChecksumMismatch{
			Method:   expected.Method,
			Expected: expected.Value,
			Actual:   actual,
		}
	}

	return nil
}

// ParseSumsFile finds the digest of entry in a SHASUMS256.txt style listing,
// where each line is "<hex digest> <file name>". Returns false when the entry
// is missing.
func ParseSumsFile(content, entry string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimPrefix(fields[len(fields)-1], "*")
		if name == entry {
			return fields[0], true
		}
	}
	return "", false
}

// ParseDigestFile extracts the digest from a file holding a single digest,
// optionally followed by the file name
func ParseDigestFile(content string) (string, bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
