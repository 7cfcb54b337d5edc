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

// Status 投递的粗粒度状态。
type Status string

const (
	StatusApplied   Status = "APPLIED"
	StatusScreening Status = "SCREENING"
	StatusInProcess Status = "IN_PROCESS"
	StatusOffer     Status = "OFFER"
	StatusRejected  Status = "REJECTED"
	StatusWithdrawn Status = "WITHDRAWN"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInProcess,
		StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Stage 投递在招聘流水线上的细粒度位置，与 Status 相互独立。
type Stage string

const (
	StageScreening      Stage = "SCREENING"
	StageInvitationSent Stage = "INTERVIEW_INVITATION_SENT"
	StageInterview      Stage = "INTERVIEW"
	StageOffer          Stage = "OFFER"
	StageRejected       Stage = "REJECTED"
)

// stageRank 定义了流水线的前进方向。REJECTED 不在其中，任何阶段都可以进入。
var stageRank = map[Stage]int{
	StageScreening:      1,
	StageInvitationSent: 2,
	StageInterview:      3,
	StageOffer:          4,
}

func (s Stage) IsValid() bool {
	if s == StageRejected {
		return true
	}
	_, ok := stageRank[s]
	return ok
}

func (s Stage) String() string {
	return string(s)
}

// CanAdvanceTo 判断能否直接前进到 next。
// 只允许向前，REJECTED 随时可达；
// INTERVIEW 回到 INTERVIEW_INVITATION_SENT 的改期回环不在这里放行，
// 由服务层结合"最近一场面试仍是 SCHEDULED"的条件单独处理。
func (s Stage) CanAdvanceTo(next Stage) bool {
	if next == StageRejected {
		return true
	}
	cur, ok1 := stageRank[s]
	nxt, ok2 := stageRank[next]
	if !ok1 || !ok2 {
		return false
	}
	return nxt > cur
}

// Application 一次岗位投递，承载阶段状态机的聚合根。
type Application struct {
	ID           int64
	UID          int64
	JobPostingID int64
	SchoolID     int64
	// ContactEmail 投递时从会话里带下来，拒信直接发这个地址
	ContactEmail string
	Status       Status
	CurrentStage Stage

	// 面试邀请时由管理员填入
	InterviewLocation string
	InterviewerNames  []string

	Rating int8
	// Version 乐观锁版本号，并发确认面试时用来挡住后到的写
	Version int64
	Utime   int64
}

func (a Application) IsValid() bool {
	return a.UID != 0 && a.JobPostingID != 0 && a.SchoolID != 0 &&
		a.Status.IsValid() && a.CurrentStage.IsValid()
}
