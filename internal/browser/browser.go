package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Open launches the system browser on an article link. Only http and https
// links are accepted since article URLs come from a third-party API.
func Open(rawURL string) error {
	cmd, err := command(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func command(goos, rawURL string) (*exec.Cmd, error) {
	if err := validate(rawURL); err != nil {
		return nil, err
	}
	switch goos {
	case "darwin":
		return exec.Command("open", rawURL), nil
	case "windows":
		// rundll32 avoids cmd /c start and its shell parsing
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL), nil
	default:
		return exec.Command("xdg-open", rawURL), nil
	}
}

func validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("refusing to open URL without a host: %q", rawURL)
	}
	return nil
}
