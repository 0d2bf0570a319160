// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"TechGuideAI/app/services/guide/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	routes := []rest.Route{
		{
			Method:  http.MethodPost,
			Path:    "/chat",
			Handler: ChatHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/reset",
			Handler: ResetHandler(serverCtx),
		},
	}

	opts := []rest.RouteOption{rest.WithPrefix("/v1/guide")}
	if serverCtx.WidgetAuthMiddleware != nil {
		server.AddRoutes(rest.WithMiddlewares([]rest.Middleware{serverCtx.WidgetAuthMiddleware}, routes...), opts...)
	} else {
		server.AddRoutes(routes, opts...)
	}

	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodGet,
			Path:    "/healthz",
			Handler: HealthHandler(serverCtx),
		},
	})
}
