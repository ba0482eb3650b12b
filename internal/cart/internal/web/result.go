package web

import (
	"github.com/camellia-mall/camellia/internal/cart/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
	productOffShelfResult = ginx.Result{
		Code: errs.ProductOffShelf.Code,
		Msg:  errs.ProductOffShelf.Msg,
	}
	cartItemNotFoundResult = ginx.Result{
		Code: errs.CartItemNotFound.Code,
		Msg:  errs.CartItemNotFound.Msg,
	}
)
