package command

import (
	"bytes"
	"testing"
	"time"

	"sdg-knowledge/internal/activity"
	"sdg-knowledge/internal/service/mocks"
	"sdg-knowledge/test/testutil"
)

// fakePrompter answers prompts in order and records the labels asked.
type fakePrompter struct {
	answers []string
	labels  []string
}

func (p *fakePrompter) Secret(label string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// fakePages records page views and leaves as "view:page" and "leave:page".
type fakePages struct {
	events []string
}

func (p *fakePages) TrackPageView(_ *activity.PageSession, page string) {
	p.events = append(p.events, "view:"+page)
}

func (p *fakePages) TrackPageLeave(_ *activity.PageSession, page string) {
	p.events = append(p.events, "leave:"+page)
}

type testApp struct {
	*App
	t         *testing.T
	auth      *mocks.MockAuthService
	profiles  *mocks.MockProfileService
	teams     *mocks.MockTeamService
	forms     *mocks.MockFormService
	search    *mocks.MockSearchService
	analytics *mocks.MockAnalyticsService
	prompt    *fakePrompter
	pages     *fakePages
	out       *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	help := helpOutput
	helpOutput = &bytes.Buffer{}
	t.Cleanup(func() { helpOutput = help })

	ta := &testApp{
		t:         t,
		auth:      &mocks.MockAuthService{},
		profiles:  &mocks.MockProfileService{},
		teams:     &mocks.MockTeamService{},
		forms:     &mocks.MockFormService{},
		search:    &mocks.MockSearchService{},
		analytics: &mocks.MockAnalyticsService{},
		prompt:    &fakePrompter{},
		pages:     &fakePages{},
		out:       &bytes.Buffer{},
	}
	ta.App = &App{
		Auth:      ta.auth,
		Profiles:  ta.profiles,
		Teams:     ta.teams,
		Forms:     ta.forms,
		Search:    ta.search,
		Analytics: ta.analytics,
		Pages:     ta.pages,
		Prompt:    ta.prompt,
		Out:       ta.out,
		Location:  time.UTC,
	}
	return ta
}

func (ta *testApp) run(args ...string) error {
	return Root(ta.App).Execute(testutil.Context(ta.t), args)
}
