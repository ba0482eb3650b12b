package web

import (
	"github.com/camellia-mall/camellia/internal/delivery/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	grantNotFoundResult = ginx.Result{
		Code: errs.GrantNotFound.Code,
		Msg:  errs.GrantNotFound.Msg,
	}
	grantUnusableResult = ginx.Result{
		Code: errs.GrantUnusable.Code,
		Msg:  errs.GrantUnusable.Msg,
	}
)
