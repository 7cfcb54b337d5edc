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

import "time"

// DayOfWeek 星期几，0=周日 ... 6=周六。
// 存储为数字下标，列表按数字排序就是日历顺序。
type DayOfWeek int8

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (d DayOfWeek) IsValid() bool {
	return d >= 0 && d <= 6
}

func (d DayOfWeek) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return dayNames[d]
}

// DayOfWeekFromDate 从日期推导星期几。dayOfWeek 永远由 date 推导，
// 不接受调用方直接传入的星期字符串。
func DayOfWeekFromDate(date time.Time) DayOfWeek {
	return DayOfWeek(date.Weekday())
}

// AvailabilitySlot 候选人或面试官一侧提交的一段每周可面试时间。
// StartTime/EndTime 是当天零点起的分钟数。
type AvailabilitySlot struct {
	ID            int64
	ApplicationID int64
	UID           int64
	Date          time.Time
	DayOfWeek     DayOfWeek
	StartTime     int
	EndTime       int
}

func (s AvailabilitySlot) IsValid() bool {
	return s.ApplicationID != 0 && s.UID != 0 &&
		s.DayOfWeek.IsValid() && s.StartTime < s.EndTime
}
