// Copyright 2023 ecodeclub
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

package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/event"
	"github.com/gotomicro/ego/core/elog"
)

// 企业微信机器人对 text 消息体的长度限制
const maxContentBytes = 2048

type Text struct {
	Content string `json:"content"`
}
type WechatRobotMessage struct {
	MsgType string `json:"msgtype"`
	Text    Text   `json:"text"`
}

type StageEventConfig struct {
	// 按阶段路由到不同群机器人，找不到就落到 default
	ChatRobots map[string]string `yaml:"chatRobots"`
}

// StageEventConsumer 把投递阶段变更推送到学校招聘群的企业微信机器人
type StageEventConsumer struct {
	consumer mq.Consumer
	config   *StageEventConfig
	logger   *elog.Component
}

func NewStageEventConsumer(q mq.MQ, config *StageEventConfig) (*StageEventConsumer, error) {
	groupID := "notification.wechat"
	consumer, err := q.Consumer(event.StageEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &StageEventConsumer{
		consumer: consumer,
		config:   config,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.wechat.consumer")),
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *StageEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费阶段变更事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *StageEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.StageChangedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	webhookURL, ok := c.config.ChatRobots[evt.Stage]
	if !ok {
		webhookURL, ok = c.config.ChatRobots["default"]
	}
	if !ok {
		c.logger.Error("没有配置对应的机器人", elog.Any("event", evt))
		return errors.New("没有配置对应的机器人")
	}
	data, err := json.Marshal(&WechatRobotMessage{
		MsgType: "text",
		Text:    Text{Content: truncate(stageContent(evt), maxContentBytes)},
	})
	if err != nil {
		return fmt.Errorf("序列化机器人消息失败: %w", err)
	}
	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("向机器人发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("机器人处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

func stageContent(evt event.StageChangedEvent) string {
	return fmt.Sprintf("投递 %d（候选人 %d）进入阶段 %s", evt.ApplicationID, evt.UID, evt.Stage)
}

// truncate 按字节截断，回退到完整的 rune 边界
func truncate(content string, limit int) string {
	if len(content) <= limit {
		return content
	}
	cut := content[:limit]
	for len(cut) > 0 && !utf8.RuneStart(content[len(cut)]) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
