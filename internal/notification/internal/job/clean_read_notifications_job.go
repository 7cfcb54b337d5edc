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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/schoolhire/internal/notification/internal/service"
)

// CleanReadNotificationsJob 周期性清理超过保留期的已读通知。
type CleanReadNotificationsJob struct {
	svc       service.Service
	retention time.Duration
	limit     int
}

func NewCleanReadNotificationsJob(svc service.Service, retention time.Duration, limit int) *CleanReadNotificationsJob {
	return &CleanReadNotificationsJob{svc: svc, retention: retention, limit: limit}
}

func (c *CleanReadNotificationsJob) Name() string {
	return "CleanReadNotificationsJob"
}

func (c *CleanReadNotificationsJob) Run(ctx context.Context) error {
	before := time.Now().Add(-c.retention).UnixMilli()
	for {
		cnt, err := c.svc.CleanRead(ctx, before, c.limit)
		if err != nil {
			return fmt.Errorf("清理已读通知失败: %w", err)
		}
		if cnt < int64(c.limit) {
			return nil
		}
	}
}
