package service

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/session"
	"sdg-knowledge/test/testutil"
)

const testURL = "http://api.test/"

func newTestSessions(t *testing.T) *session.Manager {
	t.Helper()
	return session.NewManager(session.NewFileStore(filepath.Join(t.TempDir(), "session.json")), testURL)
}

// loggedIn starts a session valid for an hour.
func loggedIn(t *testing.T, user *models.UserDetails) *session.Manager {
	t.Helper()
	m := newTestSessions(t)
	_, err := m.Start(testutil.Context(t), "tok", time.Now().Add(time.Hour), user)
	require.NoError(t, err)
	return m
}

type trackedEvent struct {
	kind    string
	page    string
	query   string
	formID  int
	content string
}

type fakeTracker struct {
	mu     sync.Mutex
	events []trackedEvent
}

func (f *fakeTracker) record(e trackedEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
}

func (f *fakeTracker) TrackSearch(page, query string) {
	f.record(trackedEvent{kind: "search", page: page, query: query})
}

func (f *fakeTracker) TrackFormView(formID int) {
	f.record(trackedEvent{kind: "form_view", formID: formID})
}

func (f *fakeTracker) TrackFormEdit(formID int, content string) {
	f.record(trackedEvent{kind: "form_edit", formID: formID, content: content})
}
