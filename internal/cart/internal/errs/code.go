package errs

var (
	SystemError      = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidQuantity  = ErrorCode{Code: 503002, Msg: "商品数量非法"}
	ProductOffShelf  = ErrorCode{Code: 503003, Msg: "商品不在售"}
	CartItemNotFound = ErrorCode{Code: 503004, Msg: "购物车条目不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
