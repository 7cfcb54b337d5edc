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

import "github.com/ecodeclub/schoolhire/internal/pkg/timewindow"

// MatchSuggestion 候选人时段和面试官时段的一个交集，计算出来不落库。
type MatchSuggestion struct {
	DayOfWeek     DayOfWeek
	StartTime     int
	EndTime       int
	CandidateSlot AvailabilitySlot
	AdminSlot     AvailabilitySlot
}

// MatchSlots 计算候选人和面试官两侧时段的全部交集。
// 提交人是候选人的算候选人侧，其余一律算面试官侧。
// 候选人时段在外层循环，同一天且时间窗严格相交才产出一条建议，
// 同一对原始时段可能产出多条相同建议时也不去重。
func MatchSlots(candidateUID int64, slots []AvailabilitySlot) []MatchSuggestion {
	var candidateSlots, adminSlots []AvailabilitySlot
	for _, s := range slots {
		if s.UID == candidateUID {
			candidateSlots = append(candidateSlots, s)
		} else {
			adminSlots = append(adminSlots, s)
		}
	}
	var res []MatchSuggestion
	for _, cs := range candidateSlots {
		for _, as := range adminSlots {
			if cs.DayOfWeek != as.DayOfWeek {
				continue
			}
			start, end, ok := timewindow.Overlap(cs.StartTime, cs.EndTime, as.StartTime, as.EndTime)
			if !ok {
				continue
			}
			res = append(res, MatchSuggestion{
				DayOfWeek:     cs.DayOfWeek,
				StartTime:     start,
				EndTime:       end,
				CandidateSlot: cs,
				AdminSlot:     as,
			})
		}
	}
	return res
}
