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

// Package timewindow 提供 HH:MM 时间段的解析、格式化与求交集。
// 面试时段匹配的所有时间计算都建立在"自午夜起的分钟数"之上。
package timewindow

import (
	"errors"
	"fmt"
)

var ErrInvalidTime = errors.New("非法的时间格式，要求 HH:MM")

// Parse 把 "HH:MM" 解析成自午夜起的分钟数。
// 只校验形状（两位数字:两位数字），不校验取值范围，
// 所以 "25:99" 也能解析，得到确定的 1599。
func Parse(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, t)
	}
	for _, idx := range []int{0, 1, 3, 4} {
		if t[idx] < '0' || t[idx] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, t)
		}
	}
	hour := int(t[0]-'0')*10 + int(t[1]-'0')
	minute := int(t[3]-'0')*10 + int(t[4]-'0')
	return hour*60 + minute, nil
}

// Format 把分钟数格式化回 "HH:MM"，补零，不处理超出 24 小时的回绕。
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlap 计算同一天内两个时间段的交集。
// 交集存在当且仅当 max(aStart, bStart) < min(aEnd, bEnd)，
// 即首尾相接的零长度窗口不算重叠。
func Overlap(aStart, aEnd, bStart, bEnd int) (start, end int, ok bool) {
	start = aStart
	if bStart > start {
		start = bStart
	}
	end = aEnd
	if bEnd < end {
		end = bEnd
	}
	return start, end, start < end
}
