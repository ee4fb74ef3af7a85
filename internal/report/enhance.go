package report

import (
	"context"
	"fmt"
	"strings"

	"nippou/internal/errors"
	"nippou/internal/logging"
	"nippou/internal/model"
	"nippou/internal/storage"
)

// Generation settings for the enhancement pass. The low temperature keeps
// output consistent across runs.
const (
	GenerateTemperature = 0.3
	GenerateMaxTokens   = 2000

	systemInstruction = "与えられた日報データから月報を作成してください。" +
		"簡潔かつ組織的に情報をまとめてください。"
)

// GenerateRequest carries one text-generation call.
type GenerateRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Generator is the external text-generation capability. Credential handling
// and the wire format live behind this interface.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Renderer runs the two-stage rendering pipeline against a store and a
// generator. It is state-free; both collaborators are injected.
type Renderer struct {
	store *storage.Store
	gen   Generator
	model string
}

// NewRenderer creates a renderer. gen may be nil, in which case every
// enhancement pass falls back to the basic rendering.
func NewRenderer(store *storage.Store, gen Generator, modelName string) *Renderer {
	if modelName == "" {
		modelName = model.DefaultModel
	}
	return &Renderer{store: store, gen: gen, model: modelName}
}

// ResolveTemplate picks the template for a render: the named one when a name
// is given, otherwise the store's default, otherwise nil. A missing named
// template is a user error; storage failures surface as-is.
func (r *Renderer) ResolveTemplate(name string) (*model.Template, error) {
	if name != "" {
		t, err := r.store.FindTemplateByName(name)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, errors.Wrapf(errors.ErrTemplateNotFound, "%q", name)
		}
		return t, nil
	}
	return r.store.DefaultTemplate()
}

// RenderEnhanced renders the monthly report through the enhancement pass.
// On success the generated text is returned verbatim. On any generation
// failure (missing credentials, API error, empty response) it fails open:
// the basic rendering is returned, prefixed with a fallback header. The
// only error it returns is the empty-input contract violation.
func (r *Renderer) RenderEnhanced(ctx context.Context, reports []model.DailyReport, templateName string) (string, error) {
	if len(reports) == 0 {
		return "", errors.ErrNoReports
	}

	sorted := sortByDate(reports)
	month := targetMonth(sorted)

	template, err := r.ResolveTemplate(templateName)
	if err != nil {
		// A named template the user asked for must exist; everything
		// else degrades to the no-template rendering.
		if errors.Is(err, errors.ErrTemplateNotFound) {
			return "", err
		}
		logging.Warn("template resolution failed, continuing without template",
			logging.KeyError, err.Error())
		template = nil
	}

	templateContent := ""
	if template != nil {
		templateContent = template.Content
	}

	if r.gen == nil {
		return r.fallback(sorted, month, templateContent, errors.ErrAPIKeyMissing), nil
	}

	text, err := r.gen.Generate(ctx, GenerateRequest{
		Model:       r.model,
		System:      systemInstruction,
		Prompt:      buildPrompt(sorted, month, templateContent),
		Temperature: GenerateTemperature,
		MaxTokens:   GenerateMaxTokens,
	})
	if err != nil {
		return r.fallback(sorted, month, templateContent, err), nil
	}
	if strings.TrimSpace(text) == "" {
		return r.fallback(sorted, month, templateContent, errors.ErrEmptyResponse), nil
	}

	return text, nil
}

// fallback computes the basic rendering with a marker header. Generation
// failures never propagate past this point.
func (r *Renderer) fallback(sorted []model.DailyReport, month, templateContent string, cause error) string {
	logging.Warn("enhancement pass failed, falling back to basic rendering",
		logging.KeyMonth, month,
		logging.KeyError, cause.Error())

	basic, err := RenderBasic(sorted, templateContent)
	if err != nil {
		// Unreachable for a non-empty, previously validated report set.
		basic = ""
	}
	return FallbackHeader(month) + "\n\n" + basic
}

// buildPrompt assembles the natural-language instruction embedding the
// template (if any) and the full report texts.
func buildPrompt(sorted []model.DailyReport, month, templateContent string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "以下の日報データから%sの月報を生成してください。", month)

	if templateContent != "" {
		fmt.Fprintf(&b, "\n\n以下のテンプレートに基づいて生成してください：\n\n%s", templateContent)
	} else {
		b.WriteString("\n\n次の形式で生成してください：\n")
		b.WriteString("# {{month}}の業務報告\n\n")
		b.WriteString("## 業務サマリー\n（主要なタスクと進捗の要約）\n\n")
		b.WriteString("## 実施タスク\n（タスク詳細のリスト）\n\n")
		b.WriteString("## 課題と解決策\n（遭遇した課題と対応策）\n\n")
		b.WriteString("## 次月の計画\n（来月の計画）")
	}

	b.WriteString("\n\n日報データ:\n\n")
	for i, r := range sorted {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "日付: %s\n", r.Date)
		fmt.Fprintf(&b, "勤務時間: %s〜%s (%s)\n", r.WorkHours.Start, r.WorkHours.End, r.WorkHours.Total)
		fmt.Fprintf(&b, "勤務場所: %s\n", r.Location)
		fmt.Fprintf(&b, "タスク状況: %s\n", r.TaskStatus)
		fmt.Fprintf(&b, "実施タスク:\n%s\n", r.Tasks)
		notes := r.Notes
		if notes == "" {
			notes = "なし"
		}
		fmt.Fprintf(&b, "特記事項: %s\n", notes)
	}
	return b.String()
}
