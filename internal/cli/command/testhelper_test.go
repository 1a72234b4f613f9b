package command

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/urfave/cli/v2"
)

// runApp runs the full application with the given arguments and returns its
// stdout. The exit handler is disabled so exit-coded errors come back as
// values instead of terminating the test binary.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"wld"}, args...))
	return out.String(), err
}

// configPath returns a registry file path in a fresh temp directory.
func configPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "wld.toml")
}

// fakeDevice is a mock WLED controller that records state patches.
type fakeDevice struct {
	*httptest.Server

	mu      sync.Mutex
	patches []string
	state   string
}

// newFakeDevice starts a mock device answering /json/state. The state
// argument is the JSON body returned on GET.
func newFakeDevice(t *testing.T, state string) *fakeDevice {
	t.Helper()

	d := &fakeDevice{state: state}
	d.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/state" {
			http.NotFound(w, r)
			return
		}
		if r.Method == http.MethodPost {
			body, _ := io.ReadAll(r.Body)
			d.mu.Lock()
			d.patches = append(d.patches, string(body))
			d.mu.Unlock()
		}
		w.Header().Set("Content-Type", "application/json")
		d.mu.Lock()
		w.Write([]byte(d.state))
		d.mu.Unlock()
	}))
	t.Cleanup(d.Server.Close)
	return d
}

// addr returns the device address without the http:// scheme, the way a
// user would save it.
func (d *fakeDevice) addr() string {
	return strings.TrimPrefix(d.URL, "http://")
}

// lastPatch returns the most recent state patch the device received.
func (d *fakeDevice) lastPatch() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.patches) == 0 {
		return ""
	}
	return d.patches[len(d.patches)-1]
}

// unreachableAddr returns an address nothing listens on.
func unreachableAddr(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := strings.TrimPrefix(server.URL, "http://")
	server.Close()
	return addr
}
