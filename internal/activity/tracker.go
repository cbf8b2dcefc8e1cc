// Package activity emits user interaction events. Every send is fire and
// forget: callers never wait and never see delivery errors.
package activity

import (
	"regexp"
	"time"

	"sdg-knowledge/internal/models"
)

//go:generate mockgen -destination=mocks/mock_dispatcher.go -package=mocks sdg-knowledge/internal/activity Dispatcher

// timestampLayout matches the millisecond UTC ISO-8601 form the backend
// receives from browsers.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// whitespace approximates the JavaScript \s class, which also covers
// vertical tab, Unicode space separators and the BOM.
var whitespace = regexp.MustCompile(`[\s\x{000B}\p{Z}\x{FEFF}]+`)

// Dispatcher hands an event off for asynchronous delivery.
type Dispatcher interface {
	Dispatch(event models.ActivityEvent)
}

// Authenticator reports whether sends would be authenticated.
type Authenticator interface {
	Authenticated() bool
}

// Tracker builds activity events and hands them to a Dispatcher.
type Tracker struct {
	dispatcher Dispatcher
	auth       Authenticator
	now        func() time.Time
}

// NewTracker creates a Tracker. A nil auth treats every caller as
// authenticated.
func NewTracker(dispatcher Dispatcher, auth Authenticator) *Tracker {
	return &Tracker{dispatcher: dispatcher, auth: auth, now: time.Now}
}

// TrackPageView records the entry time in sess and sends page_view.
func (t *Tracker) TrackPageView(sess *PageSession, page string) {
	now := t.now()
	sess.enter(page, now)
	t.send(models.ActivityEvent{
		ActivityType: models.ActivityPageView,
		Page:         page,
		Timestamp:    formatTimestamp(now),
	})
}

// TrackPageLeave sends page_leave with the seconds elapsed since the
// matching view and clears the entry time. Without a recorded view it does
// nothing.
func (t *Tracker) TrackPageLeave(sess *PageSession, page string) {
	now := t.now()
	entered, ok := sess.leave()
	if !ok {
		return
	}

	duration := now.Sub(entered).Seconds()
	if duration < 0 {
		duration = 0
	}
	t.send(models.ActivityEvent{
		ActivityType: models.ActivityPageLeave,
		Page:         page,
		Duration:     &duration,
		Timestamp:    formatTimestamp(now),
	})
}

// TrackSearch sends a search event.
func (t *Tracker) TrackSearch(page, query string) {
	t.send(models.ActivityEvent{
		ActivityType: models.ActivitySearch,
		Page:         page,
		SearchQuery:  &query,
		Timestamp:    formatTimestamp(t.now()),
	})
}

// TrackFormEdit sends form_edit with the word count of content.
func (t *Tracker) TrackFormEdit(formID int, content string) {
	count := CountWords(content)
	t.send(models.ActivityEvent{
		ActivityType:  models.ActivityFormEdit,
		Page:          models.FormPage,
		FormID:        &formID,
		FormWordCount: &count,
		Timestamp:     formatTimestamp(t.now()),
	})
}

// TrackFormView sends form_view.
func (t *Tracker) TrackFormView(formID int) {
	t.send(models.ActivityEvent{
		ActivityType: models.ActivityFormView,
		Page:         models.FormPage,
		FormID:       &formID,
		Timestamp:    formatTimestamp(t.now()),
	})
}

// CountWords splits content on whitespace runs and counts the pieces,
// including empty leading and trailing pieces. Empty content counts as 1.
func CountWords(content string) int {
	return len(whitespace.Split(content, -1))
}

func (t *Tracker) send(event models.ActivityEvent) {
	if t.auth != nil && !t.auth.Authenticated() {
		return
	}
	t.dispatcher.Dispatch(event)
}

func formatTimestamp(ts time.Time) string {
	return ts.UTC().Format(timestampLayout)
}
