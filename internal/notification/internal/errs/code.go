package errs

var (
	SystemError    = ErrorCode{Code: 507001, Msg: "系统错误"}
	NoticeNotFound = ErrorCode{Code: 507002, Msg: "站内信不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
