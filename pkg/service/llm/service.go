package llm

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
)

// Error tags for categorization
var (
	ErrTagInvalidJSON     = goerr.NewTag("invalid_json")
	ErrTagMissingField    = goerr.NewTag("missing_field")
	ErrTagEmptyResponse   = goerr.NewTag("empty_response")
	ErrTagTemplateFailure = goerr.NewTag("template_failure")
)

// DefaultRewriteTone is used when a rewrite request has no target tone
const DefaultRewriteTone = "samimi ve profesyonel"

//go:embed templates/*.md
var templateFS embed.FS

var modeDescriptions = map[model.RewriteMode]string{
	model.RewriteModeGrammar: "Only fix grammar and spelling. Do not change the meaning and keep the sentence structure as much as possible.",
	model.RewriteModeImprove: "Make the text more fluent, clear and professional. Avoid ornate language.",
	model.RewriteModeShorten: "Shorten the text. Keep the main message and drop repetition and unnecessary detail, like a short post.",
	model.RewriteModeExpand:  "Add a little more detail with examples or short explanations without drifting from the main message.",
}

// Assistant drafts and rewrites post text through a gollem LLM client
type Assistant struct {
	llmClient gollem.LLMClient
	modelName string
}

var _ interfaces.Assistant = (*Assistant)(nil)

type generateTemplateData struct {
	Topic     string
	Tone      string
	Audience  string
	WantImage bool
	MaxLength int
}

type rewriteTemplateData struct {
	Text            string
	Mode            model.RewriteMode
	ModeDescription string
	Tone            string
	MaxLength       int
}

type generateResponse struct {
	Content     string   `json:"content"`
	Hashtags    []string `json:"hashtags"`
	ImagePrompt *string  `json:"image_prompt"`
}

type rewriteResponse struct {
	RewrittenText string `json:"rewritten_text"`
}

// NewAssistant creates a new Assistant instance. modelName is recorded on AI request logs.
func NewAssistant(llmClient gollem.LLMClient, modelName string) *Assistant {
	return &Assistant{
		llmClient: llmClient,
		modelName: modelName,
	}
}

// ModelName returns the configured model name
func (a *Assistant) ModelName() string {
	return a.modelName
}

// GeneratePost drafts a post for the requested topic
func (a *Assistant) GeneratePost(ctx context.Context, req interfaces.GenerateRequest) (*model.GeneratedPost, error) {
	prompt, err := renderTemplate("generate_post", generateTemplateData(req))
	if err != nil {
		return nil, err
	}

	var resp generateResponse
	if err := a.generateJSON(ctx, prompt, &resp); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return nil, goerr.New("LLM response missing content",
			goerr.T(ErrTagMissingField),
			goerr.V("field", "content"))
	}

	post := &model.GeneratedPost{
		Content:  content,
		Hashtags: normalizeHashtags(resp.Hashtags),
	}
	if req.WantImage && resp.ImagePrompt != nil {
		post.ImagePrompt = strings.TrimSpace(*resp.ImagePrompt)
	}

	return post, nil
}

// Rewrite rewrites text according to the requested mode
func (a *Assistant) Rewrite(ctx context.Context, req interfaces.RewriteRequest) (string, error) {
	desc, ok := modeDescriptions[req.Mode]
	if !ok {
		return "", goerr.New("unsupported rewrite mode",
			goerr.T(model.ErrTagValidation),
			goerr.V("mode", req.Mode))
	}

	tone := strings.TrimSpace(req.TargetTone)
	if tone == "" {
		tone = DefaultRewriteTone
	}

	prompt, err := renderTemplate("rewrite", rewriteTemplateData{
		Text:            req.Text,
		Mode:            req.Mode,
		ModeDescription: desc,
		Tone:            tone,
		MaxLength:       req.MaxLength,
	})
	if err != nil {
		return "", err
	}

	var resp rewriteResponse
	if err := a.generateJSON(ctx, prompt, &resp); err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.RewrittenText)
	if text == "" {
		return "", goerr.New("LLM response missing rewritten text",
			goerr.T(ErrTagMissingField),
			goerr.V("field", "rewritten_text"))
	}

	return text, nil
}

// generateJSON runs a single JSON-mode session turn and decodes the first text part into out
func (a *Assistant) generateJSON(ctx context.Context, prompt string, out any) error {
	session, err := a.llmClient.NewSession(ctx, gollem.WithSessionContentType(gollem.ContentTypeJSON))
	if err != nil {
		return goerr.Wrap(err, "failed to create LLM session")
	}

	response, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return goerr.Wrap(err, "failed to generate LLM response")
	}

	if response == nil || len(response.Texts) == 0 || response.Texts[0] == "" {
		return goerr.New("empty response from LLM",
			goerr.T(ErrTagEmptyResponse))
	}

	if err := json.Unmarshal([]byte(response.Texts[0]), out); err != nil {
		return goerr.Wrap(err, "failed to parse LLM response as JSON",
			goerr.V("response", response.Texts[0]),
			goerr.T(ErrTagInvalidJSON))
	}

	return nil
}

func renderTemplate(name string, data any) (string, error) {
	content, err := templateFS.ReadFile("templates/" + name + ".md")
	if err != nil {
		return "", goerr.Wrap(err, "failed to read prompt template",
			goerr.V("template", name),
			goerr.T(ErrTagTemplateFailure))
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse prompt template",
			goerr.V("template", name),
			goerr.T(ErrTagTemplateFailure))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute prompt template",
			goerr.V("template", name),
			goerr.T(ErrTagTemplateFailure))
	}

	return buf.String(), nil
}

// normalizeHashtags lowercases, strips '#' and drops duplicates while keeping order
func normalizeHashtags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		normalized := model.NormalizeHashtag(tag).String()
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}
