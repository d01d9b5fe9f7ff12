// package canvas resolves track ids to locally hosted canvas videos
package canvas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/amaanali02072004/Spotify-API-Wallpaper/internal/shared"
	"github.com/charmbracelet/log"
)

// extensions lists the asset extensions probed for a track, in preference
// order.
var extensions = []string{".mp4", ".webm"}

// Library looks up canvas assets for tracks. A lookup probes the asset
// directory for <trackID><ext> first, then falls back to a JSON mapping file
// of track id to URL. Lookups are best-effort: every failure, including an
// unreadable or corrupt mapping file, is simply "not found".
type Library struct {
	dir     string
	mapPath string
	logger  *log.Logger
}

// NewLibrary creates a library over the given asset directory and mapping
// file path.
func NewLibrary(dir, mapPath string, logger *log.Logger) *Library {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Library{dir: dir, mapPath: mapPath, logger: logger}
}

// Lookup returns the asset URL for a track id. Local files win over mapping
// entries; a file match is returned as a path under /canvas/ for the server
// to serve.
func (l *Library) Lookup(trackID string) (string, bool) {
	if trackID == "" {
		return "", false
	}

	for _, ext := range extensions {
		name := trackID + ext
		info, err := os.Stat(filepath.Join(l.dir, name))
		if err == nil && !info.IsDir() {
			return "/canvas/" + name, true
		}
	}

	return l.fromMapping(trackID)
}

// fromMapping consults the mapping file. The file is read on every lookup so
// edits show up without a restart.
func (l *Library) fromMapping(trackID string) (string, bool) {
	data, err := shared.VerifyAndReadFile(l.mapPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("canvas mapping unreadable", "path", l.mapPath, "err", err)
		}
		return "", false
	}

	if err := shared.ValidateJSON(data); err != nil {
		l.logger.Warn("canvas mapping is not valid JSON", "path", l.mapPath, "err", err)
		return "", false
	}

	var mapping map[string]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		l.logger.Warn("canvas mapping has an unexpected shape", "path", l.mapPath, "err", err)
		return "", false
	}

	url, ok := mapping[trackID]
	if !ok || url == "" {
		return "", false
	}
	return url, true
}
