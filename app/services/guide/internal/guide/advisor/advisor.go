// Package advisor orchestrates one conversation turn: it feeds the utterance
// through the dialogue state machine and, once the machine triggers a
// recommendation, runs requirement resolution and catalog scoring as a single
// atomic pass.
package advisor

import (
	"context"
	"sync"

	"TechGuideAI/app/common/snowflake"
	"TechGuideAI/app/services/guide/internal/catalog"
	"TechGuideAI/app/services/guide/internal/guide/dialog"
	"TechGuideAI/app/services/guide/internal/guide/explain"
	"TechGuideAI/app/services/guide/internal/guide/require"
	"TechGuideAI/app/services/guide/internal/guide/score"

	"github.com/zeromicro/go-zero/core/logx"
)

// Result is the structured outcome of one turn. Answer is always usable even
// when the phrasing collaborator failed.
type Result struct {
	SessionID   int64
	State       dialog.State
	Answer      string
	Items       []score.Candidate
	Recommended bool // a scoring pass ran this turn

	Category dialog.Category
	Usage    dialog.Usage
	Software string
	Budget   int64
}

// guideSession pairs the dialogue slots with the per-session caches: the
// resolved requirement profile (written once per software name) and the last
// computed candidates (read by free chat).
type guideSession struct {
	mu      sync.Mutex
	dlg     *dialog.Session
	profile *require.Profile
	items   []score.Candidate
}

type Advisor struct {
	log       logx.Logger
	machine   *dialog.Machine
	resolver  *require.Resolver
	engine    *score.Engine
	explainer *explain.Explainer
	products  []catalog.ProductRecord

	sessions sync.Map // session id -> *guideSession
}

func New(ctx context.Context, products []catalog.ProductRecord, resolver *require.Resolver, explainer *explain.Explainer) *Advisor {
	return &Advisor{
		log:       logx.WithContext(ctx),
		machine:   dialog.NewMachine(),
		resolver:  resolver,
		engine:    score.NewEngine(),
		explainer: explainer,
		products:  products,
	}
}

// Chat processes one utterance for the given session, creating the session
// when the id is zero or unknown. Turns within a session are serialized.
func (a *Advisor) Chat(ctx context.Context, sessionID int64, query string) *Result {
	sess := a.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	turn := a.machine.Advance(sess.dlg, query)
	res := &Result{
		SessionID: sess.dlg.ID,
		Category:  sess.dlg.Category,
		Usage:     sess.dlg.Usage,
		Software:  sess.dlg.Software,
		Budget:    sess.dlg.Budget,
	}

	switch turn.Action {
	case dialog.ActionRecommend:
		if sess.profile == nil {
			sess.profile = a.resolver.Resolve(ctx, sess.dlg.Software)
		}
		a.scoreAndAnswer(ctx, sess, res)

	case dialog.ActionRescore:
		// revisions reuse the cached profile; the search collaborator is
		// never asked twice for the same software
		if sess.profile == nil {
			sess.profile = &require.Profile{}
		}
		a.scoreAndAnswer(ctx, sess, res)

	case dialog.ActionFreeChat:
		res.Answer = a.explainer.FreeChatAnswer(ctx, sess.dlg, query, sess.items)
		res.Items = sess.items

	default:
		res.Answer = turn.Reply
	}

	res.State = sess.dlg.State
	res.Category = sess.dlg.Category
	res.Usage = sess.dlg.Usage
	res.Software = sess.dlg.Software
	res.Budget = sess.dlg.Budget
	return res
}

func (a *Advisor) scoreAndAnswer(ctx context.Context, sess *guideSession, res *Result) {
	items := a.engine.Rank(ctx, sess.profile, a.products, score.Input{
		Category:   sess.dlg.Category,
		Usage:      sess.dlg.Usage,
		Budget:     sess.dlg.Budget,
		WeightPref: sess.dlg.WeightPref,
		Portable:   sess.dlg.Portable,
	})
	sess.items = items
	res.Items = items
	res.Recommended = true
	a.log.Infow("recommendation computed",
		logx.Field("session", sess.dlg.ID),
		logx.Field("software", sess.dlg.Software),
		logx.Field("candidates", len(items)))

	if len(items) == 0 {
		res.Answer = noMatchAnswer(sess.dlg)
		return
	}
	res.Answer = a.explainer.RecommendationAnswer(ctx, sess.dlg, sess.profile, items)
}

// Reset clears a session back to the initial state. Unknown ids are a no-op.
func (a *Advisor) Reset(sessionID int64) bool {
	v, ok := a.sessions.Load(sessionID)
	if !ok {
		return false
	}
	sess := v.(*guideSession)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.dlg.Reset()
	sess.profile = nil
	sess.items = nil
	return true
}

// Reason exposes per-product phrasing for response shaping.
func (a *Advisor) Reason(ctx context.Context, sessionID int64, c score.Candidate) string {
	v, ok := a.sessions.Load(sessionID)
	if !ok {
		return ""
	}
	return a.explainer.ProductReason(ctx, v.(*guideSession).dlg, c)
}

func (a *Advisor) session(id int64) *guideSession {
	if id != 0 {
		if v, ok := a.sessions.Load(id); ok {
			return v.(*guideSession)
		}
	}
	if id == 0 {
		id = snowflake.Next()
	}
	created := &guideSession{dlg: dialog.NewSession(id)}
	actual, _ := a.sessions.LoadOrStore(id, created)
	return actual.(*guideSession)
}

func noMatchAnswer(sess *dialog.Session) string {
	budget := "제한 없음"
	if sess.Budget > 0 {
		budget = catalog.FormatWon(sess.Budget)
	}
	portable := "아니오"
	if sess.Portable == dialog.PortableYes {
		portable = "예"
	}
	return "죄송합니다. 현재 조건(예산: " + budget +
		", 무게: " + sess.WeightPref.Label() +
		", 휴대용: " + portable + ")에 맞는 제품을 찾지 못했습니다.\n\n" +
		"다음과 같은 방법을 시도해보시겠어요?\n" +
		"1. 예산을 조금 더 상향 조정\n" +
		"2. 무게나 휴대성 조건을 완화\n" +
		"3. 다른 제품 타입 고려\n\n" +
		"원하시는 방향을 알려주시면 다시 찾아드리겠습니다."
}
