package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener defines the interface for opening repository pages in the default browser
type Opener interface {
	Open(target string) error
}

// DefaultOpener starts the platform's URL handler
type DefaultOpener struct {
	goos  string
	start func(name string, args ...string) error
}

// NewOpener creates a new browser opener for the running platform
func NewOpener() *DefaultOpener {
	return &DefaultOpener{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open opens target in the default browser. Only http and https URLs are
// accepted so repository data never reaches a shell handler as anything else.
func (o *DefaultOpener) Open(target string) error {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open non-web URL %q", target)
	}

	name, args, err := command(o.goos, u.String())
	if err != nil {
		return err
	}

	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

// command returns the launcher for goos
func command(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
