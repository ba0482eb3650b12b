package errs

var (
	SystemError   = ErrorCode{Code: 505001, Msg: "系统错误"}
	GrantNotFound = ErrorCode{Code: 505002, Msg: "下载授权不存在"}
	GrantUnusable = ErrorCode{Code: 505003, Msg: "下载授权已过期或次数用尽"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
