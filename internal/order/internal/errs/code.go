package errs

var (
	SystemError            = ErrorCode{Code: 506001, Msg: "系统错误"}
	OrderNotFound          = ErrorCode{Code: 506002, Msg: "订单不存在"}
	EmptyCart              = ErrorCode{Code: 506003, Msg: "购物车为空"}
	BuyerEmailRequired     = ErrorCode{Code: 506004, Msg: "购买者邮箱不能为空"}
	InvalidStateTransition = ErrorCode{Code: 506005, Msg: "订单状态迁移非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
