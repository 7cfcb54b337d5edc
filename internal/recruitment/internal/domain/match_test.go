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

	"github.com/stretchr/testify/assert"
)

func TestMatchSlots(t *testing.T) {
	const candidateUID int64 = 10
	testCases := []struct {
		name  string
		slots []AvailabilitySlot
		want  []MatchSuggestion
	}{
		{
			name: "单个交集",
			slots: []AvailabilitySlot{
				{ID: 1, UID: 10, DayOfWeek: 1, StartTime: 540, EndTime: 600},
				{ID: 2, UID: 20, DayOfWeek: 1, StartTime: 570, EndTime: 630},
			},
			want: []MatchSuggestion{
				{
					DayOfWeek: 1, StartTime: 570, EndTime: 600,
					CandidateSlot: AvailabilitySlot{ID: 1, UID: 10, DayOfWeek: 1, StartTime: 540, EndTime: 600},
					AdminSlot:     AvailabilitySlot{ID: 2, UID: 20, DayOfWeek: 1, StartTime: 570, EndTime: 630},
				},
			},
		},
		{
			name: "首尾相接不算交集",
			slots: []AvailabilitySlot{
				{ID: 1, UID: 10, DayOfWeek: 1, StartTime: 540, EndTime: 600},
				{ID: 2, UID: 20, DayOfWeek: 1, StartTime: 600, EndTime: 660},
			},
			want: nil,
		},
		{
			name: "跨天不匹配",
			slots: []AvailabilitySlot{
				{ID: 1, UID: 10, DayOfWeek: 1, StartTime: 540, EndTime: 600},
				{ID: 2, UID: 20, DayOfWeek: 2, StartTime: 540, EndTime: 600},
			},
			want: nil,
		},
		{
			name: "候选人侧在外层循环",
			slots: []AvailabilitySlot{
				{ID: 1, UID: 10, DayOfWeek: 1, StartTime: 540, EndTime: 600},
				{ID: 2, UID: 10, DayOfWeek: 1, StartTime: 560, EndTime: 620},
				{ID: 3, UID: 20, DayOfWeek: 1, StartTime: 550, EndTime: 610},
				{ID: 4, UID: 21, DayOfWeek: 1, StartTime: 555, EndTime: 605},
			},
			want: []MatchSuggestion{
				{
					DayOfWeek: 1, StartTime: 550, EndTime: 600,
					CandidateSlot: AvailabilitySlot{ID: 1, UID: 10, DayOfWeek: 1, StartTime: 540, EndTime: 600},
					AdminSlot:     AvailabilitySlot{ID: 3, UID: 20, DayOfWeek: 1, StartTime: 550, EndTime: 610},
				},
				{
					DayOfWeek: 1, StartTime: 555, EndTime: 600,
					CandidateSlot: AvailabilitySlot{ID: 1, UID: 10, DayOfWeek: 1, StartTime: 540, EndTime: 600},
					AdminSlot:     AvailabilitySlot{ID: 4, UID: 21, DayOfWeek: 1, StartTime: 555, EndTime: 605},
				},
				{
					DayOfWeek: 1, StartTime: 560, EndTime: 610,
					CandidateSlot: AvailabilitySlot{ID: 2, UID: 10, DayOfWeek: 1, StartTime: 560, EndTime: 620},
					AdminSlot:     AvailabilitySlot{ID: 3, UID: 20, DayOfWeek: 1, StartTime: 550, EndTime: 610},
				},
				{
					DayOfWeek: 1, StartTime: 560, EndTime: 605,
					CandidateSlot: AvailabilitySlot{ID: 2, UID: 10, DayOfWeek: 1, StartTime: 560, EndTime: 620},
					AdminSlot:     AvailabilitySlot{ID: 4, UID: 21, DayOfWeek: 1, StartTime: 555, EndTime: 605},
				},
			},
		},
		{
			name: "只有候选人侧",
			slots: []AvailabilitySlot{
				{ID: 1, UID: 10, DayOfWeek: 1, StartTime: 540, EndTime: 600},
			},
			want: nil,
		},
		{
			name:  "没有任何时段",
			slots: nil,
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchSlots(candidateUID, tc.slots)
			assert.Equal(t, tc.want, got)
		})
	}
}
