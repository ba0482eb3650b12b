// Copyright 2024 camellia-mall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

var _ ginx.Handler = (*Handler)(nil)

// 允许申请临时密钥的key前缀, 商品图与数字商品文件分开存放
const (
	BizProductImage = "product-image"
	BizDigitalFile  = "digital-file"
)

type Handler struct {
	client  *sts.Client
	actions []string

	appID  string
	bucket string
	region string
}

func NewHandler(secretID, secretKey, appID, bucket, region string) *Handler {
	c := sts.NewClient(secretID, secretKey, http.DefaultClient)
	return &Handler{
		client: c,
		appID:  appID,
		bucket: bucket,
		region: region,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	cos := server.Group("/cos")
	cos.POST("/authorization", ginx.B[TmpAuthCodeReq](h.TempAuthCode))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) TempAuthCode(ctx *ginx.Context, req TmpAuthCodeReq) (ginx.Result, error) {
	if req.Biz != BizProductImage && req.Biz != BizDigitalFile {
		return invalidBizResult, fmt.Errorf("非法的上传业务类型: %s", req.Biz)
	}
	if strings.Contains(req.Key, "..") {
		return invalidBizResult, fmt.Errorf("非法的上传key: %s", req.Key)
	}
	// 存储桶命名格式为 BucketName-APPID, 密钥只对业务前缀下的key生效
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s/%s",
		h.region, h.appID,
		h.bucket, h.appID, req.Biz, req.Key)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64(time.Hour.Seconds()),
		Region:          h.region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action:   h.actions,
					Effect:   "allow",
					Resource: []string{resource},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": req.Type,
						},
					},
				},
			},
		},
	}
	res, err := h.client.GetCredential(opt)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: COSTmpAuthCode{
			SecretId:     res.Credentials.TmpSecretID,
			SecretKey:    res.Credentials.TmpSecretKey,
			SessionToken: res.Credentials.SessionToken,
			StartTime:    res.StartTime,
			ExpiredTime:  res.ExpiredTime,
		},
	}, nil
}

type TmpAuthCodeReq struct {
	// Biz 取 product-image 或 digital-file
	Biz string `json:"biz"`
	Key string `json:"key"`
	// Type 上传内容的content-type
	Type string `json:"type"`
}

type COSTmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int    `json:"startTime"`
	ExpiredTime  int    `json:"expiredTime"`
}
