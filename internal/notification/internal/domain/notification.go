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

// Type 站内通知的业务类型。
type Type string

const (
	TypeInterviewInvite     Type = "INTERVIEW_INVITE"
	TypeInterviewReschedule Type = "INTERVIEW_RESCHEDULE"
	TypeInterviewScheduled  Type = "INTERVIEW_SCHEDULED"
	TypeOfferSent           Type = "OFFER_SENT"
	TypeOfferResponded      Type = "OFFER_RESPONDED"
	TypeStatusChanged       Type = "STATUS_CHANGED"
)

func (t Type) String() string {
	return string(t)
}

// Notification 一条投递给单个用户的站内通知。
// 写入语义是 best-effort：触发方不会因为通知落库失败而回滚主流程。
type Notification struct {
	ID      int64
	UID     int64
	Type    Type
	Title   string
	Message string
	URL     string
	Read    bool
	Ctime   int64
}

func (n Notification) IsValid() bool {
	return n.UID != 0 && n.Type != "" && n.Title != ""
}
