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

package domain

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "SCHEDULED"
	InterviewStatusCompleted InterviewStatus = "COMPLETED"
	InterviewStatusCancelled InterviewStatus = "CANCELLED"
)

func (s InterviewStatus) String() string {
	return string(s)
}

// Interview 一轮面试。一次投递可以累积多轮，
// 按 ScheduledAt 排序即轮次，不单独存轮次字段。
type Interview struct {
	ID               int64
	ApplicationID    int64
	InterviewerID    int64
	ScheduledAt      int64
	Location         string
	InterviewerNames []string
	Status           InterviewStatus
}
