package runtime

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is returned when a version request cannot be parsed
type ErrInvalidExpression struct {
	Expression string
	Err        error
}

func (e *ErrInvalidExpression) Error() string {
	return fmt.Sprintf("invalid version expression %q: %v", e.Expression, e.Err)
}

func (e *ErrInvalidExpression) Unwrap() error {
	return e.Err
}

// ErrNoMatch is returned when no published release satisfies a request
type ErrNoMatch struct {
	Expression string
}

func (e *ErrNoMatch) Error() string {
	return fmt.Sprintf("no matching version for %q", e.Expression)
}

// ErrNoMatchingPackage is returned when a release has no archive for the host
type ErrNoMatchingPackage struct {
	Version string
	OS      string
	Arch    string
}

func (e *ErrNoMatchingPackage) Error() string {
	return fmt.Sprintf("version %s has no archive for os %q and arch %q", e.Version, e.OS, e.Arch)
}

// ErrVerificationFailed is returned when a downloaded archive fails its
// checksum
type ErrVerificationFailed struct {
	Version string
	File    string
	Err     error
}

func (e *ErrVerificationFailed) Error() string {
	return fmt.Sprintf("failed to verify %s for version %s: %v", e.File, e.Version, e.Err)
}

func (e *ErrVerificationFailed) Unwrap() error {
	return e.Err
}

// ErrVersionNotInstalled is returned when an operation needs an installed
// version that is absent
type ErrVersionNotInstalled struct {
	Version string
}

func (e *ErrVersionNotInstalled) Error() string {
	return fmt.Sprintf("version %s is not installed", e.Version)
}

// IsInvalidExpression checks if an error indicates an unparsable request
func IsInvalidExpression(err error) bool {
	var target *ErrInvalidExpression
	return errors.As(err, &target)
}

// IsNoMatch checks if an error indicates that no release matched
func IsNoMatch(err error) bool {
	var target *ErrNoMatch
	return errors.As(err, &target)
}

// IsNoMatchingPackage checks if an error indicates a missing host archive
func IsNoMatchingPackage(err error) bool {
	var target *ErrNoMatchingPackage
	return errors.As(err, &target)
}

// IsVerificationFailed checks if an error indicates a checksum failure
func IsVerificationFailed(err error) bool {
	var target *ErrVerificationFailed
	return errors.As(err, &target)
}

// IsVersionNotInstalled checks if an error indicates a missing installation
func IsVersionNotInstalled(err error) bool {
	var target *ErrVersionNotInstalled
	return errors.As(err, &target)
}
