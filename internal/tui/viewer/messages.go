package viewer

import (
	"time"

	"github.com/msto63/chronos/internal/timeline"
)

// Message types for tea.Cmd async operations

// timelineLoadedMsg is sent when the document has been read and rendered
type timelineLoadedMsg struct {
	timeline *timeline.Timeline
	modTime  time.Time
	err      error
}

// fileCheckedMsg reports the document's modification time
type fileCheckedMsg struct {
	modTime time.Time
	err     error
}

// tickMsg is used for periodic file checks
type tickMsg time.Time
