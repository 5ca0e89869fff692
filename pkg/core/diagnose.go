package core

import (
	"github.com/arthur-debert/showinfm/pkg/platform"
	"github.com/arthur-debert/showinfm/pkg/resolver"
)

// StockFileManager returns the stock file manager of the detected platform,
// or empty when the desktop environment has no known default.
func StockFileManager() string {
	return resolver.New().Stock(platform.Detect())
}

// UserFileManager returns the file manager the user configured as their
// default handler for directories.
func UserFileManager() (string, error) {
	return resolver.New().User(platform.Detect())
}

// ValidFileManager returns the file manager launches will actually use: the
// user preference when trusted and installed, else the stock manager, else
// empty.
func ValidFileManager() string {
	return resolver.New().Valid(platform.Detect(), false)
}

// Diagnostics is a snapshot of everything detection and resolution decide,
// for troubleshooting output.
type Diagnostics struct {
	Platform platform.Platform

	Stock string
	User  string
	Valid string

	// UserErr is set when the user-preference lookup failed; Valid still
	// carries the fallback result.
	UserErr error
}

// Diagnose probes the running system.
func Diagnose() Diagnostics {
	p := platform.Detect()
	r := resolver.New()

	d := Diagnostics{Platform: p}
	d.Stock = r.Stock(p)
	d.User, d.UserErr = r.User(p)
	d.Valid = r.Valid(p, false)
	return d
}
