package web

import (
	"github.com/camellia-mall/camellia/internal/user/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	addressNotFoundResult = ginx.Result{
		Code: errs.AddressNotFound.Code,
		Msg:  errs.AddressNotFound.Msg,
	}
	invalidAddressResult = ginx.Result{
		Code: errs.InvalidAddress.Code,
		Msg:  errs.InvalidAddress.Msg,
	}
)
