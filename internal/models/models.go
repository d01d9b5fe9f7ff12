package models

// Snapshot is one normalized read of "what is currently playing". Item is nil
// when no playback session is active, which marshals as JSON null.
type Snapshot struct {
	IsPlaying  bool   `json:"is_playing"`
	ProgressMs int    `json:"progress_ms"`
	Timestamp  int64  `json:"timestamp"`
	Item       *Track `json:"item"`
}

// Track carries the subset of provider track metadata the display client
// renders. CanvasURL is set only when a local canvas asset or mapping entry
// exists for the track id.
type Track struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	Album       string   `json:"album"`
	AlbumImages []Image  `json:"album_images"`
	DurationMs  int      `json:"duration_ms"`
	ExternalURL string   `json:"external_url"`
	CanvasURL   string   `json:"canvas_url,omitempty"`
}

// Image is a single album art rendition.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// AuthState reports whether OAuth is configured (client credentials present)
// and whether an access token is currently held. Both are derived on read.
type AuthState struct {
	Configured    bool `json:"configured"`
	Authenticated bool `json:"authenticated"`
}

// Status is the GET /health response body.
type Status struct {
	Status        string `json:"status"`
	Configured    bool   `json:"configured"`
	Authenticated bool   `json:"authenticated"`
}
