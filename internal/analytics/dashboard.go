package analytics

import (
	"strconv"

	"sdg-knowledge/internal/models"
	"sdg-knowledge/internal/render"
)

// Tab selects a detail section of the dashboard.
type Tab int

// Dashboard tabs.
const (
	TabPages Tab = iota
	TabSearches
	TabForms
)

// ParseTab maps a tab name to a Tab.
func ParseTab(name string) (Tab, bool) {
	switch name {
	case "pages", "page":
		return TabPages, true
	case "searches", "search":
		return TabSearches, true
	case "forms", "form":
		return TabForms, true
	}
	return TabPages, false
}

// Render draws the overview cards followed by the selected tab.
func Render(d *models.AnalyticsData, timeRange string, tab Tab) string {
	header := render.Heading("User Activity Analytics") + "  " + render.Muted("Time Range: "+RangeLabel(timeRange))

	cards := render.Cards(
		render.Card("Page Visits", strconv.Itoa(d.PageActivities.TotalVisits), "Total Visits"),
		render.Card("Searches", strconv.Itoa(d.SearchActivities.TotalSearches), "Total Searches"),
		render.Card("Form Activities", strconv.Itoa(d.FormActivities.TotalFormActivities), "Total Form Activities"),
		render.Card("Active Time", FormatDuration(d.PageActivities.TotalActiveTime), "Total Active Time"),
	)

	var detail string
	switch tab {
	case TabSearches:
		detail = renderSearches(d.SearchActivities)
	case TabForms:
		detail = renderForms(d.FormActivities)
	default:
		detail = renderPages(d.PageActivities)
	}

	return render.Lines(header, cards, detail)
}

func renderPages(p models.PageActivities) string {
	rows := make([][]string, 0, len(p.MostVisitedPages))
	for _, page := range p.MostVisitedPages {
		rows = append(rows, []string{page.PageName, strconv.Itoa(page.VisitCount)})
	}
	return render.Lines(
		render.Heading("Page Visit Statistics"),
		render.Subheading("Most Visited Pages"),
		render.Table([]string{"Page Name", "Visit Count"}, rows, 1),
		render.Subheading("Session Time Statistics"),
		"Average Session Time: "+FormatDuration(p.AverageSessionTime)+"\n"+
			"Total Active Time: "+FormatDuration(p.TotalActiveTime),
	)
}

func renderSearches(s models.SearchActivities) string {
	types := make([][]string, 0, len(s.SearchTypes))
	for _, st := range s.SearchTypes {
		types = append(types, []string{st.SearchType, strconv.Itoa(st.SearchCount)})
	}
	terms := make([][]string, 0, len(s.MostSearchedTerms))
	for _, term := range s.MostSearchedTerms {
		terms = append(terms, []string{term.SearchQuery, strconv.Itoa(term.SearchCount)})
	}
	return render.Lines(
		render.Heading("Search Behavior Analysis"),
		render.Subheading("Search Type Distribution"),
		render.Table([]string{"Search Type", "Search Count"}, types, 1),
		render.Subheading("Most Searched Terms"),
		render.Table([]string{"Search Query", "Search Count"}, terms, 1),
	)
}

func renderForms(f models.FormActivities) string {
	rows := make([][]string, 0, len(f.MostActiveForms))
	for _, form := range f.MostActiveForms {
		name := form.ProjectName
		if name == "" {
			name = "Untitled Form"
		}
		rows = append(rows, []string{name, strconv.Itoa(form.ActivityCount)})
	}
	return render.Lines(
		render.Heading("Form Behavior Analysis"),
		render.Subheading("Most Active Forms"),
		render.Table([]string{"Form Name", "Activity Count"}, rows, 1),
		render.Subheading("Edit Statistics"),
		"Total Edit Time: "+FormatDuration(f.FormEditTime)+"\n"+
			"Total Words: "+strconv.Itoa(f.TotalWordsWritten)+" words\n"+
			"Total Form Activities: "+strconv.Itoa(f.TotalFormActivities)+" times",
	)
}
