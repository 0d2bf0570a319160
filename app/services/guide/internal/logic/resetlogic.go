// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"TechGuideAI/app/common/consts/errno"
	"TechGuideAI/app/services/guide/internal/svc"
	"TechGuideAI/app/services/guide/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ResetLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewResetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResetLogic {
	return &ResetLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ResetLogic) Reset(req *types.ResetRequest) (resp *types.ResetResponse, err error) {
	if req.SessionId == 0 {
		return nil, errors.New(errno.InvalidParam, "session_id is required")
	}
	if !l.svcCtx.Advisor.Reset(req.SessionId) {
		return nil, errors.New(errno.SessionNotFound, "session not found")
	}
	return &types.ResetResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "success",
		SessionId:  req.SessionId,
	}, nil
}
