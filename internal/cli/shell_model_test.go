package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/mindguard/internal/domain"
	"github.com/alexanderramin/mindguard/internal/repository"
	"github.com/alexanderramin/mindguard/internal/risk"
	"github.com/alexanderramin/mindguard/internal/service"
	"github.com/alexanderramin/mindguard/internal/teatest"
	"github.com/alexanderramin/mindguard/internal/testutil"
)

func newShellApp(t *testing.T, clf *testutil.FakeClassifier) *App {
	t.Helper()
	repo := repository.NewSQLiteJournalRepo(testutil.NewTestDB(t))
	scorer := risk.NewScorer(clf, risk.DefaultCrisisKeywords(), risk.NegativeEmotions())
	return &App{
		Analysis: service.NewAnalysisService(scorer, risk.DefaultAdviceTable(), repo),
		Journal:  service.NewJournalService(repo),
		Report:   service.NewReportService(repo),
	}
}

func newShellDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newShellModel(app), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func TestShell_InitialView(t *testing.T) {
	clf := testutil.NewFakeClassifier(domain.EmotionScore{Label: "joy", Score: 0.9})
	d := newShellDriver(t, newShellApp(t, clf))

	view := d.View()
	assert.Contains(t, view, "MINDGUARD - DAILY REFLECTION")
	assert.Contains(t, view, "ctrl+s analyze")
}

func TestShell_AnalyzeFlow(t *testing.T) {
	clf := testutil.NewFakeClassifier(
		domain.EmotionScore{Label: "sadness", Score: 0.82},
		domain.EmotionScore{Label: "joy", Score: 0.18},
	)
	app := newShellApp(t, clf)
	d := newShellDriver(t, app)

	d.Type("everything went wrong today")
	d.PressCtrlS()

	view := d.View()
	assert.Contains(t, view, "Sadness")
	assert.Contains(t, view, "8/10")
	assert.Contains(t, view, "HIGH DISTRESS")
	assert.Contains(t, view, "EMOTIONAL TREND")
	assert.Contains(t, view, "REFLECTION HISTORY")

	entries, err := app.Journal.All(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "everything went wrong today", entries[0].Text)
}

func TestShell_EmptyInputRejected(t *testing.T) {
	clf := testutil.NewFakeClassifier(domain.EmotionScore{Label: "joy", Score: 0.9})
	app := newShellApp(t, clf)
	d := newShellDriver(t, app)

	d.PressCtrlS()
	assert.Contains(t, d.View(), "Please enter how you're feeling.")

	empty, err := app.Journal.IsEmpty(context.Background())
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestShell_ExportEmptyJournal(t *testing.T) {
	clf := testutil.NewFakeClassifier(domain.EmotionScore{Label: "joy", Score: 0.9})
	d := newShellDriver(t, newShellApp(t, clf))

	d.PressCtrlE()
	assert.Contains(t, d.View(), "nothing to export")
}

func TestShell_Quit(t *testing.T) {
	clf := testutil.NewFakeClassifier(domain.EmotionScore{Label: "joy", Score: 0.9})
	d := newShellDriver(t, newShellApp(t, clf))

	d.PressCtrlC()
	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Take care of yourself.")
}

func TestShell_HistoryAccumulates(t *testing.T) {
	clf := &testutil.FakeClassifier{Results: [][]domain.EmotionScore{
		{{Label: "neutral", Score: 0.5}},
		{{Label: "fear", Score: 0.7}},
	}}
	app := newShellApp(t, clf)
	d := newShellDriver(t, app)

	d.Type("an uneventful morning")
	d.PressCtrlS()
	d.Type("dreading the meeting tomorrow")
	d.PressCtrlS()

	view := d.View()
	assert.Contains(t, view, "an uneventful morning")
	assert.Contains(t, view, "dreading the meeting tomorrow")

	entries, err := app.Journal.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
