package errs

var (
	SystemError     = ErrorCode{Code: 501001, Msg: "系统错误"}
	AddressNotFound = ErrorCode{Code: 501002, Msg: "地址不存在"}
	InvalidAddress  = ErrorCode{Code: 501003, Msg: "地址信息不完整"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
