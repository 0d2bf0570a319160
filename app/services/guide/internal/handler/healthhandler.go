// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"TechGuideAI/app/common/consts/errno"
	"TechGuideAI/app/common/response"
	"TechGuideAI/app/services/guide/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func HealthHandler(_ *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJsonCtx(r.Context(), w, response.NewResponse(errno.StatusOK, "ok"))
	}
}
