// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"TechGuideAI/app/services/guide/internal/logic"
	"TechGuideAI/app/services/guide/internal/svc"
	"TechGuideAI/app/services/guide/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ResetHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ResetRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewResetLogic(r.Context(), svcCtx)
		resp, err := l.Reset(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
