// Package explain phrases recommendation results in natural language through
// the chat model. Every entry point degrades to a deterministic Korean
// fallback when the model is missing or over quota: phrasing must never block
// returning the ranked list.
package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"TechGuideAI/app/services/guide/internal/catalog"
	"TechGuideAI/app/services/guide/internal/guide/dialog"
	"TechGuideAI/app/services/guide/internal/guide/require"
	"TechGuideAI/app/services/guide/internal/guide/score"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

type Explainer struct {
	log   logx.Logger
	model *ark.ChatModel
}

func New(ctx context.Context, model *ark.ChatModel) *Explainer {
	return &Explainer{
		log:   logx.WithContext(ctx),
		model: model,
	}
}

const recommendSystemPrompt = `당신은 테크 전문 쇼핑 가이드 챗봇입니다.
친절하고 전문적인 톤으로 사용자에게 도움을 제공하세요.
제공된 요구사항 정보와 추천 상품만 근거로 답변하고, 없는 정보를 지어내지 마세요.`

const freeChatSystemPrompt = `당신은 테크 전문 쇼핑 가이드 챗봇입니다.
이전에 추천한 상품 정보를 참고하여 사용자의 추가 질문에 친절하고 전문적으로 답변해주세요.`

// RecommendationAnswer phrases a fresh recommendation. sess is read-only.
func (e *Explainer) RecommendationAnswer(ctx context.Context, sess *dialog.Session, profile *require.Profile, items []score.Candidate) string {
	fallback := summarizeCandidates(items)

	var sb strings.Builder
	sb.WriteString("대화 맥락:\n")
	sb.WriteString(sessionContext(sess))
	if profile != nil && profile.RawDescription != "" {
		sb.WriteString("\n검색된 시스템 사양 정보:\n")
		sb.WriteString(truncate(profile.RawDescription, 600))
		sb.WriteString("\n")
	}
	sb.WriteString("\n추천 상품:\n")
	sb.WriteString(candidatesJSON(items))
	sb.WriteString("\n위 정보를 바탕으로 전문적이고 친절한 답변을 생성해주세요.")

	return e.generate(ctx, recommendSystemPrompt, sb.String(), fallback)
}

// FreeChatAnswer answers a follow-up question from the last computed
// candidates; no rescoring is involved.
func (e *Explainer) FreeChatAnswer(ctx context.Context, sess *dialog.Session, query string, items []score.Candidate) string {
	fallback := "추가로 궁금하신 점이 있으시면 말씀해주세요. 예산이나 무게 조건을 바꿔서 다시 추천받으실 수도 있습니다."
	if len(items) > 0 {
		fallback = summarizeCandidates(items)
	}

	var sb strings.Builder
	sb.WriteString("대화 맥락:\n")
	sb.WriteString(sessionContext(sess))
	sb.WriteString("\n이전에 추천한 상품:\n")
	sb.WriteString(candidatesJSON(items))
	sb.WriteString("\n사용자 입력: ")
	sb.WriteString(query)

	return e.generate(ctx, freeChatSystemPrompt, sb.String(), fallback)
}

// ProductReason writes a short per-product pitch. Returns "" when the model
// is unavailable; callers render the candidate without a reason then.
func (e *Explainer) ProductReason(ctx context.Context, sess *dialog.Session, c score.Candidate) string {
	if e == nil || e.model == nil {
		return ""
	}

	prompt := fmt.Sprintf(`다음 제품에 대해 2-3문장으로 간략하고 전문적인 설명을 작성해주세요.
사용자 요구사항:
- 용도: %s
- 소프트웨어: %s
- 제품 타입: %s

제품 정보:
- 상품명: %s
- 가격: %s
- 스펙: %s

이 제품이 사용자 요구사항에 왜 적합한지, 주요 특징과 장점을 간략히 설명해주세요.`,
		sess.Usage.Label(), sess.Software, sess.Category.Label(),
		c.Product.Name, c.Product.PriceLowest, truncate(c.Product.SpecText, 300))

	out, err := e.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(recommendSystemPrompt),
		schema.UserMessage(prompt),
	})
	if err != nil {
		if IsQuotaError(err) {
			e.log.Infof("product reason skipped, quota exceeded: %v", err)
		} else {
			e.log.Errorf("product reason generate failed: %v", err)
		}
		return ""
	}
	if out == nil {
		return ""
	}
	return strings.TrimSpace(out.Content)
}

func (e *Explainer) generate(ctx context.Context, system, user, fallback string) string {
	if e == nil || e.model == nil {
		return fallback
	}

	out, err := e.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	})
	if err != nil {
		e.log.Errorf("explanation generate failed: %v", err)
		return fallback
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return fallback
	}
	return strings.TrimSpace(out.Content)
}

// IsQuotaError recognizes rate-limit/quota failures from the model backend.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "exceeded")
}

func sessionContext(sess *dialog.Session) string {
	budget := "제한 없음"
	if sess.Budget > 0 {
		budget = catalog.FormatWon(sess.Budget)
	}
	portable := "아니오"
	if sess.Portable == dialog.PortableYes {
		portable = "예"
	}
	return fmt.Sprintf(`사용자 의도: %s
용도: %s
소프트웨어: %s
예산: %s
무게 선호도: %s
휴대용 필요: %s
`, sess.Category.Label(), sess.Usage.Label(), sess.Software, budget, sess.WeightPref.Label(), portable)
}

func summarizeCandidates(items []score.Candidate) string {
	if len(items) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("고객님의 요구사항에 맞춰 추천 제품을 찾았습니다. 아래 제품들을 확인해보시고, 추가 질문이 있으시면 말씀해주세요.\n")
	for i, item := range items {
		price := item.Product.PriceLowest
		if v, ok := catalog.ParsePrice(price); ok {
			price = catalog.FormatWon(v)
		}
		sb.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, item.Product.Name, price))
	}
	return strings.TrimSpace(sb.String())
}

func candidatesJSON(items []score.Candidate) string {
	type entry struct {
		Name  string `json:"name"`
		Price string `json:"price"`
		Spec  string `json:"spec"`
		Score int    `json:"score"`
	}
	entries := make([]entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, entry{
			Name:  item.Product.Name,
			Price: item.Product.PriceLowest,
			Spec:  truncate(item.Product.SpecText, 200),
			Score: item.Score,
		})
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
