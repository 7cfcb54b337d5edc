package aliyun

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/schoolhire/internal/email"
)

// DirectMailAPI 阿里云邮件推送客户端，投递招聘流程里的站外邮件。
type DirectMailAPI struct {
	client    *dm20151123.Client
	fromEmail string
}

// NewDirectMailAPI 创建阿里云邮件推送客户端。
// accountName 是控制台配置好的发信地址。
func NewDirectMailAPI(accessKeyID, accessKeySecret, accountName string) (*DirectMailAPI, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建凭据失败: %w", err)
	}

	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}

	return &DirectMailAPI{
		client:    client,
		fromEmail: accountName,
	}, nil
}

// SendMail 实现 email.Service 接口。
func (a *DirectMailAPI) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName:    tea.String(a.fromEmail),
		FromAlias:      tea.String(mail.From),
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		TextBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	_, err := a.client.SingleSendMailWithOptions(request, &util.RuntimeOptions{})
	if err != nil {
		return a.handleError(err)
	}
	return nil
}

func (a *DirectMailAPI) handleError(err error) error {
	sdkError, ok := err.(*tea.SDKError)
	if !ok {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	errorMsg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkError.Message))
	if sdkError.Data != nil {
		var errorData map[string]interface{}
		decoder := json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data)))
		if derr := decoder.Decode(&errorData); derr == nil {
			if requestId, exists := errorData["RequestId"]; exists {
				errorMsg += fmt.Sprintf(" | RequestId: %v", requestId)
			}
		}
	}
	return fmt.Errorf("%s", errorMsg)
}
