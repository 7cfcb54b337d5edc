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

// School 学校目录里的一所学校。
type School struct {
	ID      int64
	Name    string
	Region  string
	Address string
}

// PostingStatus 招聘岗位的发布状态。
type PostingStatus string

const (
	PostingStatusDraft     PostingStatus = "DRAFT"
	PostingStatusPublished PostingStatus = "PUBLISHED"
	PostingStatusClosed    PostingStatus = "CLOSED"
)

func (s PostingStatus) IsValid() bool {
	switch s {
	case PostingStatusDraft, PostingStatusPublished, PostingStatusClosed:
		return true
	default:
		return false
	}
}

func (s PostingStatus) String() string {
	return string(s)
}

// JobPosting 学校发布的招聘岗位。应聘的 Application 通过它找到归属学校。
type JobPosting struct {
	ID          int64
	SchoolID    int64
	Title       string
	Subject     string
	Description string
	Status      PostingStatus
}

func (p JobPosting) IsValid() bool {
	return p.SchoolID != 0 && p.Title != "" && p.Status.IsValid()
}
