package errs

var (
	SystemError          = ErrorCode{Code: 504001, Msg: "系统错误"}
	PaymentNotFound      = ErrorCode{Code: 504002, Msg: "支付记录不存在"}
	PaymentNotRefundable = ErrorCode{Code: 504003, Msg: "支付记录不可退款"}
	RefundAmountExceeded = ErrorCode{Code: 504004, Msg: "退款金额超出可退余额"}
	CartEmpty            = ErrorCode{Code: 504005, Msg: "购物车为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
