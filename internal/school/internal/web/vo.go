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

package web

type School struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Region  string `json:"region"`
	Address string `json:"address"`
}

type JobPosting struct {
	ID          int64  `json:"id"`
	SchoolID    int64  `json:"schoolId"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type SaveSchoolReq struct {
	School School `json:"school"`
}

type SchoolPostingsReq struct {
	SchoolID int64 `json:"schoolId"`
	Offset   int   `json:"offset"`
	Limit    int   `json:"limit"`
}

type SavePostingReq struct {
	Posting JobPosting `json:"posting"`
}

type AdminMemberReq struct {
	SchoolID int64 `json:"schoolId"`
	UID      int64 `json:"uid"`
}
