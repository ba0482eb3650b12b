package web

import (
	"github.com/camellia-mall/camellia/internal/product/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	invalidDigitalSPUResult = ginx.Result{
		Code: errs.InvalidDigitalSPU.Code,
		Msg:  errs.InvalidDigitalSPU.Msg,
	}
	duplicatedAttrsResult = ginx.Result{
		Code: errs.DuplicatedAttrs.Code,
		Msg:  errs.DuplicatedAttrs.Msg,
	}
	invalidSKUAttrsResult = ginx.Result{
		Code: errs.InvalidSKUAttrs.Code,
		Msg:  errs.InvalidSKUAttrs.Msg,
	}
)
