package web

import (
	"github.com/camellia-mall/camellia/internal/cos/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidBizResult = ginx.Result{
		Code: errs.InvalidBiz.Code,
		Msg:  errs.InvalidBiz.Msg,
	}
)
