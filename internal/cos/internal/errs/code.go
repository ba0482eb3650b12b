package errs

var (
	SystemError = ErrorCode{Code: 508001, Msg: "系统错误"}
	InvalidBiz  = ErrorCode{Code: 508002, Msg: "非法的上传业务类型"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
