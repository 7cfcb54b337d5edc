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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStage_CanAdvanceTo(t *testing.T) {
	testCases := []struct {
		name string
		from Stage
		to   Stage
		want bool
	}{
		{name: "筛选到邀请", from: StageScreening, to: StageInvitationSent, want: true},
		{name: "邀请到面试", from: StageInvitationSent, to: StageInterview, want: true},
		{name: "筛选直接到offer", from: StageScreening, to: StageOffer, want: true},
		{name: "面试退回邀请", from: StageInterview, to: StageInvitationSent, want: false},
		{name: "offer退回面试", from: StageOffer, to: StageInterview, want: false},
		{name: "原地不动", from: StageInterview, to: StageInterview, want: false},
		{name: "任何阶段都能拒绝", from: StageScreening, to: StageRejected, want: true},
		{name: "offer也能拒绝", from: StageOffer, to: StageRejected, want: true},
		{name: "未知阶段", from: Stage("UNKNOWN"), to: StageInterview, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanAdvanceTo(tc.to))
		})
	}
}

func TestDayOfWeekFromDate(t *testing.T) {
	testCases := []struct {
		name string
		date string
		want DayOfWeek
	}{
		{name: "周日", date: "2024-01-14", want: 0},
		{name: "周一", date: "2024-01-15", want: 1},
		{name: "周六", date: "2024-01-20", want: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			date, err := time.Parse("2006-01-02", tc.date)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, DayOfWeekFromDate(date))
		})
	}
}

func TestDayOfWeek_String(t *testing.T) {
	assert.Equal(t, "Sun", DayOfWeek(0).String())
	assert.Equal(t, "Mon", DayOfWeek(1).String())
	assert.Equal(t, "Sat", DayOfWeek(6).String())
	assert.Equal(t, "Unknown", DayOfWeek(7).String())
}
