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

package event

// StageEventName 招聘模块发布的投递阶段变更事件
const StageEventName = "recruitment_stage_events"

type StageChangedEvent struct {
	ApplicationID int64  `json:"applicationId"`
	UID           int64  `json:"uid"`
	Stage         string `json:"stage"`
}
