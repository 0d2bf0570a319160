// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strings"
	"time"

	"TechGuideAI/app/common/consts/errno"
	"TechGuideAI/app/services/guide/internal/guide/advisor"
	"TechGuideAI/app/services/guide/internal/logic/helper"
	"TechGuideAI/app/services/guide/internal/mq"
	"TechGuideAI/app/services/guide/internal/svc"
	"TechGuideAI/app/services/guide/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
	"github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (resp *types.ChatResponse, err error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.New(errno.InvalidParam, "query is empty")
	}

	res := l.svcCtx.Advisor.Chat(l.ctx, req.SessionId, query)

	var reasons []string
	if res.Recommended {
		reasons = make([]string, 0, len(res.Items))
		for _, c := range res.Items {
			reasons = append(reasons, l.svcCtx.Advisor.Reason(l.ctx, res.SessionID, c))
		}
		l.publishEvent(res, helper.ProductNames(res.Items))
	}

	return helper.ToChatResponse(res, reasons), nil
}

// publishEvent pushes the recommendation event off the request path. A broker
// outage never fails the chat response.
func (l *ChatLogic) publishEvent(res *advisor.Result, products []string) {
	evt := mq.RecommendationEvent{
		SessionId: res.SessionID,
		Category:  res.Category.Label(),
		Usage:     res.Usage.Label(),
		Software:  res.Software,
		Budget:    res.Budget,
		Products:  products,
		At:        time.Now().Unix(),
	}
	sc := l.svcCtx
	threading.GoSafe(func() {
		if err := mq.PublishRecommendationEvent(sc, evt); err != nil {
			logx.Errorw("publish recommendation event failed", logx.Field("err", err))
		}
	})
}
