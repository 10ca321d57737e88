package viewer

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// debounceDelay collapses the burst of events an editor save produces
const debounceDelay = 200 * time.Millisecond

// fileChangedMsg is sent when the watched document was written or replaced
type fileChangedMsg struct{}

// watchErrMsg carries a watcher failure
type watchErrMsg struct {
	err error
}

// fileWatcher reports changes to a single file. The parent directory is
// watched so that editors replacing the file by rename are noticed.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
}

func newFileWatcher(path string) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &fileWatcher{watcher: w, path: abs}, nil
}

// wait blocks until the file changes and settles, then reports it
func (fw *fileWatcher) wait() tea.Msg {
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if fw.matches(event) && settle == nil {
				settle = time.After(debounceDelay)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}

		case <-settle:
			return fileChangedMsg{}
		}
	}
}

func (fw *fileWatcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != fw.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (fw *fileWatcher) Close() error {
	return fw.watcher.Close()
}
