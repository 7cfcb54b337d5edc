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

package timewindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{
			name:  "午夜",
			input: "00:00",
			want:  0,
		},
		{
			name:  "上午九点",
			input: "09:00",
			want:  540,
		},
		{
			name:  "带分钟",
			input: "09:30",
			want:  570,
		},
		{
			name:  "一天的最后一分钟",
			input: "23:59",
			want:  1439,
		},
		{
			name: "越界但形状合法",
			// 只校验形状，25:99 解析为确定的 1599
			input: "25:99",
			want:  1599,
		},
		{
			name:    "缺少冒号",
			input:   "0900 ",
			wantErr: ErrInvalidTime,
		},
		{
			name:    "单位数小时",
			input:   "9:00",
			wantErr: ErrInvalidTime,
		},
		{
			name:    "混入字母",
			input:   "ab:cd",
			wantErr: ErrInvalidTime,
		},
		{
			name:    "空串",
			input:   "",
			wantErr: ErrInvalidTime,
		},
		{
			name:    "过长",
			input:   "09:000",
			wantErr: ErrInvalidTime,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		minutes int
		want    string
	}{
		{
			name:    "午夜",
			minutes: 0,
			want:    "00:00",
		},
		{
			name:    "需要补零",
			minutes: 545,
			want:    "09:05",
		},
		{
			name:    "整点",
			minutes: 600,
			want:    "10:00",
		},
		{
			name:    "一天的最后一分钟",
			minutes: 1439,
			want:    "23:59",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.minutes))
		})
	}
}

func TestOverlap(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		a         [2]string
		b         [2]string
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{
			name:      "部分重叠",
			a:         [2]string{"09:00", "10:00"},
			b:         [2]string{"09:30", "11:00"},
			wantStart: "09:30",
			wantEnd:   "10:00",
			wantOK:    true,
		},
		{
			name:      "包含关系",
			a:         [2]string{"09:00", "12:00"},
			b:         [2]string{"10:00", "11:00"},
			wantStart: "10:00",
			wantEnd:   "11:00",
			wantOK:    true,
		},
		{
			name:      "完全相同",
			a:         [2]string{"09:00", "10:00"},
			b:         [2]string{"09:00", "10:00"},
			wantStart: "09:00",
			wantEnd:   "10:00",
			wantOK:    true,
		},
		{
			name: "首尾相接不算重叠",
			a:    [2]string{"09:00", "10:00"},
			b:    [2]string{"10:00", "11:00"},
		},
		{
			name: "完全不相交",
			a:    [2]string{"09:00", "10:00"},
			b:    [2]string{"14:00", "15:00"},
		},
		{
			name: "顺序调换也不相交",
			a:    [2]string{"14:00", "15:00"},
			b:    [2]string{"09:00", "10:00"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			aStart, err := Parse(tc.a[0])
			assert.NoError(t, err)
			aEnd, err := Parse(tc.a[1])
			assert.NoError(t, err)
			bStart, err := Parse(tc.b[0])
			assert.NoError(t, err)
			bEnd, err := Parse(tc.b[1])
			assert.NoError(t, err)

			start, end, ok := Overlap(aStart, aEnd, bStart, bEnd)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantStart, Format(start))
				assert.Equal(t, tc.wantEnd, Format(end))
			}
		})
	}
}
