package activity

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"sdg-knowledge/internal/activity/mocks"
	"sdg-knowledge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeAuth bool

func (f fakeAuth) Authenticated() bool { return bool(f) }

// fakeClock returns scripted instants, one per call.
type fakeClock struct {
	times []time.Time
	i     int
}

func (c *fakeClock) Now() time.Time {
	ts := c.times[c.i]
	if c.i < len(c.times)-1 {
		c.i++
	}
	return ts
}

func newTestTracker(t *testing.T, auth Authenticator, times ...time.Time) (*Tracker, *mocks.MockDispatcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctrl)
	tracker := NewTracker(dispatcher, auth)
	if len(times) > 0 {
		clock := &fakeClock{times: times}
		tracker.now = clock.Now
	}
	return tracker, dispatcher
}

var t0 = time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

func TestTracker_PageViewThenLeave(t *testing.T) {
	tracker, dispatcher := newTestTracker(t, fakeAuth(true), t0, t0.Add(2500*time.Millisecond))

	var events []models.ActivityEvent
	dispatcher.EXPECT().Dispatch(gomock.Any()).Do(func(e models.ActivityEvent) {
		events = append(events, e)
	}).Times(2)

	sess := NewPageSession()
	tracker.TrackPageView(sess, "Home")
	assert.True(t, sess.Active())
	assert.Equal(t, "Home", sess.Page())
	tracker.TrackPageLeave(sess, "Home")

	require.Len(t, events, 2)
	assert.Equal(t, models.ActivityPageView, events[0].ActivityType)
	assert.Equal(t, "2025-03-04T10:00:00.000Z", events[0].Timestamp)
	assert.Nil(t, events[0].Duration)

	assert.Equal(t, models.ActivityPageLeave, events[1].ActivityType)
	require.NotNil(t, events[1].Duration)
	assert.InDelta(t, 2.5, *events[1].Duration, 1e-9)
	assert.False(t, sess.Active())
}

func TestTracker_LeaveWithoutViewSendsNothing(t *testing.T) {
	tracker, dispatcher := newTestTracker(t, fakeAuth(true))
	dispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

	tracker.TrackPageLeave(NewPageSession(), "Home")
}

func TestTracker_SecondLeaveIsNoop(t *testing.T) {
	tracker, dispatcher := newTestTracker(t, fakeAuth(true))
	dispatcher.EXPECT().Dispatch(gomock.Any()).Times(2)

	sess := NewPageSession()
	tracker.TrackPageView(sess, "Home")
	tracker.TrackPageLeave(sess, "Home")
	tracker.TrackPageLeave(sess, "Home")
}

func TestTracker_DurationNeverNegative(t *testing.T) {
	tracker, dispatcher := newTestTracker(t, fakeAuth(true), t0, t0.Add(-time.Second))

	var leave models.ActivityEvent
	dispatcher.EXPECT().Dispatch(gomock.Any()).Do(func(e models.ActivityEvent) { leave = e }).Times(2)

	sess := NewPageSession()
	tracker.TrackPageView(sess, "Home")
	tracker.TrackPageLeave(sess, "Home")

	require.NotNil(t, leave.Duration)
	assert.Equal(t, 0.0, *leave.Duration)
}

func TestTracker_SessionsAreIndependent(t *testing.T) {
	tracker, dispatcher := newTestTracker(t, fakeAuth(true))

	var mu sync.Mutex
	leaves := map[string]int{}
	dispatcher.EXPECT().Dispatch(gomock.Any()).Do(func(e models.ActivityEvent) {
		if e.ActivityType == models.ActivityPageLeave {
			mu.Lock()
			leaves[e.Page]++
			mu.Unlock()
		}
	}).AnyTimes()

	a, b := NewPageSession(), NewPageSession()
	assert.NotEqual(t, a.ID(), b.ID())
	tracker.TrackPageView(a, "Teams")
	tracker.TrackPageView(b, "Forms")
	tracker.TrackPageLeave(a, "Teams")
	tracker.TrackPageLeave(b, "Forms")

	assert.Equal(t, map[string]int{"Teams": 1, "Forms": 1}, leaves)
}

func TestTracker_StatelessEvents(t *testing.T) {
	tracker, dispatcher := newTestTracker(t, fakeAuth(true), t0)

	var got []models.ActivityEvent
	dispatcher.EXPECT().Dispatch(gomock.Any()).Do(func(e models.ActivityEvent) { got = append(got, e) }).Times(3)

	tracker.TrackSearch("Keywords", "clean water")
	tracker.TrackFormEdit(12, "We plant trees")
	tracker.TrackFormView(12)

	require.Len(t, got, 3)

	assert.Equal(t, models.ActivitySearch, got[0].ActivityType)
	assert.Equal(t, "Keywords", got[0].Page)
	require.NotNil(t, got[0].SearchQuery)
	assert.Equal(t, "clean water", *got[0].SearchQuery)

	assert.Equal(t, models.ActivityFormEdit, got[1].ActivityType)
	assert.Equal(t, models.FormPage, got[1].Page)
	assert.Equal(t, 12, *got[1].FormID)
	assert.Equal(t, 3, *got[1].FormWordCount)

	assert.Equal(t, models.ActivityFormView, got[2].ActivityType)
	assert.Equal(t, models.FormPage, got[2].Page)
	assert.Nil(t, got[2].FormWordCount)

	payload, err := json.Marshal(got[2])
	require.NoError(t, err)
	assert.JSONEq(t, `{"activity_type":"form_view","page":"Form","form_id":12,"timestamp":"2025-03-04T10:00:00.000Z"}`, string(payload))
}

func TestTracker_UnauthenticatedSkipsSending(t *testing.T) {
	tracker, dispatcher := newTestTracker(t, fakeAuth(false))
	dispatcher.EXPECT().Dispatch(gomock.Any()).Times(0)

	sess := NewPageSession()
	tracker.TrackPageView(sess, "Home")
	tracker.TrackSearch("Home", "q")
	tracker.TrackFormView(1)

	// The entry time is still kept so a later leave pairs with it.
	assert.True(t, sess.Active())
	tracker.TrackPageLeave(sess, "Home")
	assert.False(t, sess.Active())
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"empty content counts as one", "", 1},
		{"single word", "water", 1},
		{"three words", "We plant trees", 3},
		{"whitespace runs collapse", "a \t\n b", 2},
		{"leading and trailing whitespace add pieces", "  hello world ", 4},
		{"only whitespace", " ", 2},
		{"non-breaking space separates", "clean\u00a0water", 2},
		{"ideographic space separates", "清洁\u3000水", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountWords(tt.content))
		})
	}
}
