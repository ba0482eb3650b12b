package web

import (
	"github.com/camellia-mall/camellia/internal/payment/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	paymentNotFoundResult = ginx.Result{
		Code: errs.PaymentNotFound.Code,
		Msg:  errs.PaymentNotFound.Msg,
	}
	paymentNotRefundableResult = ginx.Result{
		Code: errs.PaymentNotRefundable.Code,
		Msg:  errs.PaymentNotRefundable.Msg,
	}
	refundAmountExceededResult = ginx.Result{
		Code: errs.RefundAmountExceeded.Code,
		Msg:  errs.RefundAmountExceeded.Msg,
	}
	cartEmptyResult = ginx.Result{
		Code: errs.CartEmpty.Code,
		Msg:  errs.CartEmpty.Msg,
	}
)
