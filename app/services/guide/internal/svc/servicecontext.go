// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"

	"TechGuideAI/app/common/middleware"
	"TechGuideAI/app/services/guide/internal/catalog"
	"TechGuideAI/app/services/guide/internal/config"
	"TechGuideAI/app/services/guide/internal/guide/advisor"
	"TechGuideAI/app/services/guide/internal/guide/explain"
	"TechGuideAI/app/services/guide/internal/guide/require"
	"TechGuideAI/app/services/guide/internal/search"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	Advisor *advisor.Advisor

	WidgetAuthMiddleware rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)
	sc := &ServiceContext{Config: c}

	products, err := catalog.Load(c.Catalog.File)
	if err != nil {
		logx.Errorw("load product catalog failed", logx.Field("file", c.Catalog.File), logx.Field("err", err))
	} else {
		logx.Infow("product catalog loaded", logx.Field("count", len(products)))
	}

	ctx := context.Background()

	var cm *ark.ChatModel
	cm, err = ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL: c.ChatModel.BaseUrl,
		APIKey:  c.ChatModel.APIKey,
		Model:   c.ChatModel.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
		cm = nil
	} else {
		logx.Infow("ark chat model initialized")
	}

	resolver := require.NewResolver(search.NewClient(c.Tavily))
	sc.Advisor = advisor.New(ctx, products, resolver, explain.New(ctx, cm))

	if c.WidgetAuth.Secret != "" {
		sc.WidgetAuthMiddleware = middleware.NewWidgetAuthMiddleware(c.WidgetAuth.Secret).Handle
	}
	return sc
}
