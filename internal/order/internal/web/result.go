package web

import (
	"github.com/camellia-mall/camellia/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	buyerEmailRequiredResult = ginx.Result{
		Code: errs.BuyerEmailRequired.Code,
		Msg:  errs.BuyerEmailRequired.Msg,
	}
	invalidStateTransitionResult = ginx.Result{
		Code: errs.InvalidStateTransition.Code,
		Msg:  errs.InvalidStateTransition.Msg,
	}
)
