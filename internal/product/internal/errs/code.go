package errs

var (
	SystemError       = ErrorCode{Code: 502001, Msg: "系统错误"}
	ProductNotFound   = ErrorCode{Code: 502002, Msg: "商品不存在或已下架"}
	InvalidDigitalSPU = ErrorCode{Code: 502003, Msg: "虚拟商品缺少文件地址"}
	DuplicatedAttrs   = ErrorCode{Code: 502004, Msg: "销售属性组合已存在"}
	InvalidSKUAttrs   = ErrorCode{Code: 502005, Msg: "SKU销售属性不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
