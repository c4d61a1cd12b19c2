package java

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinyuli/uvm/src/internal/constants"
	"github.com/jinyuli/uvm/src/internal/runtime"
)

// Supported Java vendors
const (
	VendorOpenJDK  = "openjdk"
	VendorCorretto = "corretto"

	// DefaultVendor is used when neither --vendor nor default_vendor is set
	DefaultVendor = VendorOpenJDK
)

// vendor is a Java distribution with its own catalog and naming
type vendor struct {
	name string
	// fetch lists every release the vendor publishes
	fetch func(ctx context.Context, env runtime.FetchEnv) ([]*runtime.VersionRecord, error)
	// darwin is the vendor's name for macOS
	darwin string
	// rangeExpr turns a user version into a semver range expression
	rangeExpr func(version string) string
}

var vendors = map[string]*vendor{
	VendorOpenJDK: {
		name:      VendorOpenJDK,
		fetch:     fetchOpenJDK,
		darwin:    "macos",
		rangeExpr: func(version string) string { return version },
	},
	VendorCorretto: {
		name:      VendorCorretto,
		fetch:     fetchCorretto,
		darwin:    "macosx",
		rangeExpr: correttoVersion,
	},
}

// Vendors returns the names of the supported vendors
func Vendors() []string {
	return []string{VendorOpenJDK, VendorCorretto}
}

// lookupVendor returns the vendor selected by opts
func lookupVendor(opts runtime.Options) (*vendor, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Vendor))
	if name == "" {
		name = DefaultVendor
	}
	v, ok := vendors[name]
	if !ok {
		return nil, fmt.Errorf("unsupported java vendor '%s' (valid vendors: %s)", opts.Vendor, strings.Join(Vendors(), ", "))
	}
	return v, nil
}

// vendorOrDefault is lookupVendor for callers that cannot fail
func vendorOrDefault(opts runtime.Options) *vendor {
	if v, err := lookupVendor(opts); err == nil {
		return v
	}
	return vendors[DefaultVendor]
}

// trim strips a leading "<vendor>-" from a version expression
func (v *vendor) trim(expression string) string {
	return strings.TrimPrefix(expression, v.name+"-")
}

// osName maps GOOS onto the vendor's file naming
func (v *vendor) osName(goos string) string {
	switch goos {
	case constants.OSWindows:
		return "windows"
	case constants.OSDarwin:
		return v.darwin
	default:
		return "linux"
	}
}
