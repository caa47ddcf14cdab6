package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/service/metrics"
)

const (
	DefaultTone           = "profesyonel ve samimi"
	DefaultAudience       = "genel sosyal medya kullanıcıları"
	DefaultGenerateLength = 280
	MinGenerateLength     = 50
	MaxGenerateLength     = 1000

	topicMinLength       = 3
	topicMaxLength       = 200
	rewriteTextMaxLength = 2000
)

// Values of the "moderation" meta key of rewrite requests
const (
	moderationSkipped = "skipped"
	moderationBlocked = "blocked"
	moderationPassed  = "passed"
)

// GenerateInput asks the assistant for a new post
type GenerateInput struct {
	Topic     string `json:"topic"`
	Tone      string `json:"tone"`
	Audience  string `json:"audience"`
	WantImage bool   `json:"want_image"`
	MaxLength int    `json:"max_length"`
}

// RewriteInput asks the assistant to rewrite text
type RewriteInput struct {
	Text       string            `json:"text"`
	Mode       model.RewriteMode `json:"mode"`
	TargetTone string            `json:"target_tone"`
	MaxLength  int               `json:"max_length"`
}

// RewriteResult is the text to show the user. When the assistant fails or
// the rewrite is blocked, RewrittenText is the original text.
type RewriteResult struct {
	RewrittenText string                `json:"rewritten_text"`
	Status        types.AIRequestStatus `json:"status"`
	SafetyLabel   model.Label           `json:"safety_label,omitempty"`
}

// AI implements AIUseCase
type AI struct {
	repo       interfaces.Repository
	assistant  interfaces.Assistant
	moderation ModerationUseCase
	limiter    interfaces.RateLimiter
}

// NewAI creates a new AI use case
func NewAI(repo interfaces.Repository, assistant interfaces.Assistant, moderation ModerationUseCase, limiter interfaces.RateLimiter) *AI {
	return &AI{
		repo:       repo,
		assistant:  assistant,
		moderation: moderation,
		limiter:    limiter,
	}
}

// GeneratePost drafts a post for a topic. Every call is logged as an AI request.
func (a *AI) GeneratePost(ctx context.Context, userID types.UserID, input GenerateInput) (*model.GeneratedPost, error) {
	topic, length := normalizeText(input.Topic)
	if length < topicMinLength || length > topicMaxLength {
		return nil, goerr.New("topic must be between 3 and 200 characters",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "topic"),
			goerr.V("length", length))
	}

	maxLength := input.MaxLength
	if maxLength == 0 {
		maxLength = DefaultGenerateLength
	}
	if maxLength < MinGenerateLength || maxLength > MaxGenerateLength {
		return nil, goerr.New("max_length must be between 50 and 1000",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "max_length"),
			goerr.V("max_length", maxLength))
	}

	tone := strings.TrimSpace(input.Tone)
	if tone == "" {
		tone = DefaultTone
	}
	audience := strings.TrimSpace(input.Audience)
	if audience == "" {
		audience = DefaultAudience
	}

	if err := a.checkRateLimit(ctx, userID); err != nil {
		return nil, err
	}

	storedPrompt := fmt.Sprintf("Konu: %s\nTon: %s\nHedef kitle: %s\nMaksimum karakter: %d\nWant image: %t",
		topic, tone, audience, maxLength, input.WantImage)
	req := model.NewAIRequest(userID, types.AIRequestTypeGeneratePost, storedPrompt)
	req.ModelName = a.modelName()

	post, err := a.assistant.GeneratePost(ctx, interfaces.GenerateRequest{
		Topic:     topic,
		Tone:      tone,
		Audience:  audience,
		WantImage: input.WantImage,
		MaxLength: maxLength,
	})
	if err != nil {
		req.Status = types.AIRequestStatusError
		req.Meta["error"] = err.Error()
		a.saveRequest(ctx, req)
		return nil, goerr.Wrap(err, "failed to generate post", goerr.V("userID", userID))
	}

	req.OutputText = post.Content
	req.Meta["hashtags"] = post.Hashtags
	req.Meta["want_image"] = input.WantImage
	a.saveRequest(ctx, req)

	return post, nil
}

// RewritePost rewrites text with the assistant. Assistant failures return
// the original text with status error. The rewrite is screened with
// ContinueOnClassificationFailure: when the classifier is unavailable the
// rewrite is returned unmoderated, and a blocked rewrite falls back to the
// original text.
func (a *AI) RewritePost(ctx context.Context, userID types.UserID, input RewriteInput) (*RewriteResult, error) {
	text := input.Text
	if l := len([]rune(strings.TrimSpace(text))); l < 1 || len([]rune(text)) > rewriteTextMaxLength {
		return nil, goerr.New("text must be between 1 and 2000 characters",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "text"),
			goerr.V("length", len([]rune(text))))
	}

	mode := input.Mode
	if mode == "" {
		mode = model.RewriteModeGrammar
	}
	if !mode.IsValid() {
		return nil, goerr.New("mode must be grammar, improve, shorten or expand",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "mode"),
			goerr.V("mode", mode))
	}
	if input.MaxLength < 0 || input.MaxLength > rewriteTextMaxLength {
		return nil, goerr.New("max_length out of range",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "max_length"),
			goerr.V("max_length", input.MaxLength))
	}

	if err := a.checkRateLimit(ctx, userID); err != nil {
		return nil, err
	}

	req := model.NewAIRequest(userID, types.AIRequestTypeRewrite, text)
	req.ModelName = a.modelName()
	req.Meta["mode"] = string(mode)

	result := &RewriteResult{
		RewrittenText: text,
		Status:        types.AIRequestStatusSuccess,
	}

	rewritten, err := a.assistant.Rewrite(ctx, interfaces.RewriteRequest{
		Text:       text,
		Mode:       mode,
		TargetTone: input.TargetTone,
		MaxLength:  input.MaxLength,
	})
	if err != nil {
		ctxlog.From(ctx).Warn("rewrite failed, returning original text",
			"userID", userID,
			"error", err,
		)
		result.Status = types.AIRequestStatusError
		req.Status = types.AIRequestStatusError
		req.Meta["error"] = err.Error()
	} else {
		verdict, err := a.moderation.ModerateOrContinue(ctx, rewritten, ContinueOnClassificationFailure)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to moderate rewrite", goerr.V("userID", userID))
		}

		switch {
		case verdict == nil:
			req.Meta["moderation"] = moderationSkipped
			result.RewrittenText = rewritten
		case verdict.IsBlocked():
			metrics.ObserveDecision(metrics.KindRewrite, verdict.Decision)
			req.Meta["moderation"] = moderationBlocked
			result.SafetyLabel = verdict.Label
		default:
			metrics.ObserveDecision(metrics.KindRewrite, verdict.Decision)
			req.Meta["moderation"] = moderationPassed
			result.SafetyLabel = verdict.Label
			result.RewrittenText = rewritten
		}
	}

	req.OutputText = result.RewrittenText
	a.saveRequest(ctx, req)

	return result, nil
}

// checkRateLimit rejects the call when the user exceeded the assistant quota.
// Limiter errors are ignored because the limiter fails open.
func (a *AI) checkRateLimit(ctx context.Context, userID types.UserID) error {
	if a.limiter == nil {
		return nil
	}

	allowed, _ := a.limiter.Allow(ctx, userID.String())
	if !allowed {
		return goerr.New("too many assistant requests",
			goerr.T(model.ErrTagRateLimited),
			goerr.V("userID", userID))
	}
	return nil
}

// saveRequest records the request log and its metric. A failed write is
// logged and does not fail the call.
func (a *AI) saveRequest(ctx context.Context, req *model.AIRequest) {
	metrics.ObserveAIRequest(req.Type, req.Status)

	if err := a.repo.SaveAIRequest(ctx, req); err != nil {
		ctxlog.From(ctx).Error("failed to save AI request",
			"requestID", req.ID,
			"type", req.Type,
			"error", err,
		)
	}
}

func (a *AI) modelName() string {
	if name := a.assistant.ModelName(); name != "" {
		return name
	}
	return "unknown"
}
