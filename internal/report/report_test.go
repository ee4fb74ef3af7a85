package report

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nippou/internal/errors"
	"nippou/internal/model"
	"nippou/internal/storage"
)

func makeReport(t *testing.T, date, start, end string) model.DailyReport {
	t.Helper()
	rec, err := model.NewDailyReport(model.ReportInput{
		Date:            date,
		Start:           start,
		End:             end,
		Location:        "リモート",
		TaskStatus:      "順調",
		Tasks:           "設計レビュー\n実装",
		NextDayLocation: "リモート",
		Notes:           "",
	})
	require.NoError(t, err)
	return *rec
}

// juneReports is the canonical two-day scenario: 540 + 480 = 1020 minutes.
func juneReports(t *testing.T) []model.DailyReport {
	t.Helper()
	return []model.DailyReport{
		makeReport(t, "2024-06-01", "09:00", "18:00"),
		makeReport(t, "2024-06-02", "09:30", "17:30"),
	}
}

func setupTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(filepath.Join(t.TempDir(), "db.json"))
}

// stubGenerator implements Generator for tests.
type stubGenerator struct {
	text string
	err  error
	got  GenerateRequest
}

func (g *stubGenerator) Generate(_ context.Context, req GenerateRequest) (string, error) {
	g.got = req
	return g.text, g.err
}

// =============================================================================
// Aggregation Tests
// =============================================================================

func TestTotalMinutes(t *testing.T) {
	total, err := TotalMinutes(juneReports(t))
	require.NoError(t, err)
	assert.Equal(t, 1020, total)
}

func TestTotalMinutesIgnoresStaleCache(t *testing.T) {
	reports := juneReports(t)
	// A stale cached total must not leak into the aggregate.
	reports[0].WorkHours.Total = "99h99m"
	total, err := TotalMinutes(reports)
	require.NoError(t, err)
	assert.Equal(t, 1020, total)
}

func TestMonthlyTotal(t *testing.T) {
	total, err := MonthlyTotal(juneReports(t))
	require.NoError(t, err)
	assert.Equal(t, "17h00m", total)

	empty, err := MonthlyTotal(nil)
	require.NoError(t, err)
	assert.Equal(t, "0h00m", empty)
}

func TestReportsForMonth(t *testing.T) {
	s := setupTestStore(t)
	for _, date := range []string{"2024-05-31", "2024-06-01", "2024-06-30", "2024-07-01"} {
		rec := makeReport(t, date, "09:00", "18:00")
		require.NoError(t, s.Upsert(&rec))
	}

	reports, err := ReportsForMonth(s, "2024-06")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "2024-06-01", reports[0].Date)
	assert.Equal(t, "2024-06-30", reports[1].Date)
}

func TestRefreshMonthlyTotals(t *testing.T) {
	s := setupTestStore(t)
	for _, rec := range juneReports(t) {
		r := rec
		require.NoError(t, s.Upsert(&r))
	}

	reports, total, err := RefreshMonthlyTotals(s, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, "17h00m", total)
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.Equal(t, "17h00m", r.MonthlyTotalHours)
	}

	// The cache is persisted, not just returned.
	stored, err := s.ListAll()
	require.NoError(t, err)
	for _, r := range stored {
		assert.Equal(t, "17h00m", r.MonthlyTotalHours)
	}
}

func TestRefreshMonthlyTotalsKeepsEquivalentCache(t *testing.T) {
	s := setupTestStore(t)
	for _, rec := range juneReports(t) {
		r := rec
		// Equivalent in minutes but formatted differently.
		r.MonthlyTotalHours = "17h0m"
		require.NoError(t, s.Upsert(&r))
	}

	reports, total, err := RefreshMonthlyTotals(s, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, "17h00m", total)
	for _, r := range reports {
		assert.Equal(t, "17h0m", r.MonthlyTotalHours)
	}
}

func TestRefreshMonthlyTotalsUnparseableReport(t *testing.T) {
	s := setupTestStore(t)
	rec := makeReport(t, "2024-06-01", "09:00", "18:00")
	require.NoError(t, s.Upsert(&rec))

	// A stored sibling with a malformed start time poisons the month.
	bad := makeReport(t, "2024-06-02", "09:30", "17:30")
	bad.WorkHours.Start = "9:30"
	require.NoError(t, s.Upsert(&bad))

	_, _, err := RefreshMonthlyTotals(s, "2024-06")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidTime)
}

// =============================================================================
// RenderBasic Tests
// =============================================================================

func TestRenderBasicTemplate(t *testing.T) {
	text, err := RenderBasic(juneReports(t), "{{month}}: {{total_days}} days, {{total_hours}}")
	require.NoError(t, err)
	assert.Equal(t, "2024年06月: 2 days, 17h00m", text)
}

func TestRenderBasicUnknownPlaceholderUntouched(t *testing.T) {
	text, err := RenderBasic(juneReports(t), "{{month}} {{unknown}} {{total_days}}")
	require.NoError(t, err)
	assert.Equal(t, "2024年06月 {{unknown}} 2", text)
}

func TestRenderBasicDefaultLayout(t *testing.T) {
	reports := juneReports(t)
	reports[0].Notes = "リリース準備"
	text, err := RenderBasic(reports, "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "# 2024年06月の業務報告"))
	assert.Contains(t, text, "勤務日数: 2日")
	assert.Contains(t, text, "合計勤務時間: 17h00m")
	assert.Contains(t, text, "### 2024-06-01 (リモート)")
	assert.Contains(t, text, "勤務時間: 09:00〜18:00 (9h00m)")
	assert.Contains(t, text, "  - 設計レビュー")
	assert.Contains(t, text, "特記事項: リリース準備")
	// The empty-notes report carries no notes line for its section.
	assert.Equal(t, 1, strings.Count(text, "特記事項"))
}

func TestRenderBasicSortsByDate(t *testing.T) {
	reports := []model.DailyReport{
		makeReport(t, "2024-06-02", "09:30", "17:30"),
		makeReport(t, "2024-06-01", "09:00", "18:00"),
	}
	text, err := RenderBasic(reports, "")
	require.NoError(t, err)
	assert.Less(t, strings.Index(text, "2024-06-01"), strings.Index(text, "2024-06-02"))

	// Input order is untouched.
	assert.Equal(t, "2024-06-02", reports[0].Date)
}

func TestRenderBasicStableForDuplicateDates(t *testing.T) {
	a := makeReport(t, "2024-06-01", "09:00", "12:00")
	a.Tasks = "午前"
	b := makeReport(t, "2024-06-01", "13:00", "18:00")
	b.Tasks = "午後"
	text, err := RenderBasic([]model.DailyReport{a, b}, "")
	require.NoError(t, err)
	assert.Less(t, strings.Index(text, "午前"), strings.Index(text, "午後"))
}

func TestRenderBasicEmptyRejected(t *testing.T) {
	_, err := RenderBasic(nil, "")
	assert.ErrorIs(t, err, errors.ErrNoReports)

	_, err = RenderBasic([]model.DailyReport{}, "{{month}}")
	assert.ErrorIs(t, err, errors.ErrNoReports)
}

// =============================================================================
// RenderEnhanced Tests
// =============================================================================

func TestRenderEnhancedSuccess(t *testing.T) {
	s := setupTestStore(t)
	gen := &stubGenerator{text: "# 月報\n\n生成された本文"}
	r := NewRenderer(s, gen, "gpt-4o")

	text, err := r.RenderEnhanced(context.Background(), juneReports(t), "")
	require.NoError(t, err)
	assert.Equal(t, "# 月報\n\n生成された本文", text)

	assert.Equal(t, "gpt-4o", gen.got.Model)
	assert.Equal(t, GenerateTemperature, gen.got.Temperature)
	assert.Equal(t, GenerateMaxTokens, gen.got.MaxTokens)
	assert.Contains(t, gen.got.Prompt, "2024年06月の月報を生成してください")
	assert.Contains(t, gen.got.Prompt, "日付: 2024-06-01")
	assert.Contains(t, gen.got.Prompt, "勤務時間: 09:30〜17:30 (8h00m)")
	assert.NotEmpty(t, gen.got.System)
}

func TestRenderEnhancedFailureFallsBack(t *testing.T) {
	s := setupTestStore(t)
	gen := &stubGenerator{err: errors.ErrGenerationFailed}
	r := NewRenderer(s, gen, "")

	text, err := r.RenderEnhanced(context.Background(), juneReports(t), "")
	require.NoError(t, err, "generation failures never propagate")

	assert.True(t, strings.HasPrefix(text, "# 2024年06月の月報（簡易生成）"))

	// The fallback carries the same duration total as the basic rendering.
	basic, err := RenderBasic(juneReports(t), "")
	require.NoError(t, err)
	assert.Contains(t, basic, "17h00m")
	assert.Contains(t, text, "17h00m")
}

func TestRenderEnhancedEmptyResponseFallsBack(t *testing.T) {
	s := setupTestStore(t)
	r := NewRenderer(s, &stubGenerator{text: "   \n"}, "")

	text, err := r.RenderEnhanced(context.Background(), juneReports(t), "")
	require.NoError(t, err)
	assert.Contains(t, text, "（簡易生成）")
}

func TestRenderEnhancedNilGeneratorFallsBack(t *testing.T) {
	s := setupTestStore(t)
	r := NewRenderer(s, nil, "")

	text, err := r.RenderEnhanced(context.Background(), juneReports(t), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "# 2024年06月の月報（簡易生成）"))
}

func TestRenderEnhancedTemplateResolution(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.SaveTemplate(model.NewTemplate("monthly", "", "テンプレA", false)))
	require.NoError(t, s.SaveTemplate(model.NewTemplate("standard", "", "テンプレB", true)))

	t.Run("explicit_name", func(t *testing.T) {
		gen := &stubGenerator{text: "ok"}
		r := NewRenderer(s, gen, "")
		_, err := r.RenderEnhanced(context.Background(), juneReports(t), "monthly")
		require.NoError(t, err)
		assert.Contains(t, gen.got.Prompt, "テンプレA")
	})

	t.Run("store_default", func(t *testing.T) {
		gen := &stubGenerator{text: "ok"}
		r := NewRenderer(s, gen, "")
		_, err := r.RenderEnhanced(context.Background(), juneReports(t), "")
		require.NoError(t, err)
		assert.Contains(t, gen.got.Prompt, "テンプレB")
	})

	t.Run("missing_name_is_an_error", func(t *testing.T) {
		r := NewRenderer(s, &stubGenerator{text: "ok"}, "")
		_, err := r.RenderEnhanced(context.Background(), juneReports(t), "nope")
		assert.ErrorIs(t, err, errors.ErrTemplateNotFound)
	})
}

func TestRenderEnhancedTemplateFallback(t *testing.T) {
	// When generation fails, the fallback renders through the same template.
	s := setupTestStore(t)
	tmpl := model.NewTemplate("monthly", "", "{{month}}: {{total_hours}}", true)
	require.NoError(t, s.SaveTemplate(tmpl))

	r := NewRenderer(s, &stubGenerator{err: errors.ErrGenerationFailed}, "")
	text, err := r.RenderEnhanced(context.Background(), juneReports(t), "")
	require.NoError(t, err)
	assert.Equal(t, "# 2024年06月の月報（簡易生成）\n\n2024年06月: 17h00m", text)
}

func TestRenderEnhancedEmptyRejected(t *testing.T) {
	r := NewRenderer(setupTestStore(t), &stubGenerator{text: "ok"}, "")
	_, err := r.RenderEnhanced(context.Background(), nil, "")
	assert.ErrorIs(t, err, errors.ErrNoReports)
}

// =============================================================================
// FormatDaily Tests
// =============================================================================

func TestFormatDaily(t *testing.T) {
	rec := makeReport(t, "2024-06-01", "09:00", "18:00")
	rec.MonthlyTotalHours = "17h00m"
	text := FormatDaily(&rec)

	assert.Contains(t, text, "【日報】2024年06月01日（土）")
	assert.Contains(t, text, "①勤務時間：09:00-18:00（9h00m）")
	assert.Contains(t, text, "②勤務場所：リモート")
	assert.Contains(t, text, "・設計レビュー")
	assert.Contains(t, text, "⑥月内の累積稼働時間：17h00m")
	assert.Contains(t, text, "⑦その他連絡事項：特になし")
}
