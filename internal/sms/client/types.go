package client

import (
	"errors"
)

const (
	OK = "Ok"
)

// 通用错误定义
var (
	ErrSendFailed       = errors.New("发送短信失败")
	ErrInvalidParameter = errors.New("参数无效")
)

// Client 短信客户端接口 (抽象)
//
//go:generate mockgen -source=./types.go -destination=./mocks/sms.mock.go -package=smsmocks -typed Client
type Client interface {
	// Send 发送短信
	Send(req SendReq) (SendResp, error)
}

// SendReq 发送短信请求参数
type SendReq struct {
	PhoneNumbers  []string          // 手机号码
	TemplateID    string            // 模板 ID
	TemplateParam map[string]string // 模板参数, key-value 形式
}

// SendResp 发送短信响应参数
type SendResp struct {
	RequestID    string                    // 请求 ID
	PhoneNumbers map[string]SendRespStatus // 去掉+86后的手机号
}

type SendRespStatus struct {
	Code    string
	Message string
}
