package web

import (
	"github.com/camellia-mall/camellia/internal/notification/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	noticeNotFoundResult = ginx.Result{
		Code: errs.NoticeNotFound.Code,
		Msg:  errs.NoticeNotFound.Msg,
	}
)
