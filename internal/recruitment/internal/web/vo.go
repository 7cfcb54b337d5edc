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

import (
	"github.com/ecodeclub/schoolhire/internal/pkg/timewindow"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/domain"
)

type Slot struct {
	ID            int64  `json:"id"`
	ApplicationID int64  `json:"applicationId"`
	UID           int64  `json:"uid"`
	Date          string `json:"date"`
	DayOfWeek     string `json:"dayOfWeek"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

type MatchSuggestion struct {
	DayOfWeek     string `json:"dayOfWeek"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	CandidateSlot Slot   `json:"candidateSlot"`
	AdminSlot     Slot   `json:"adminSlot"`
}

type Interview struct {
	ID               int64    `json:"id"`
	ApplicationID    int64    `json:"applicationId"`
	InterviewerID    int64    `json:"interviewerId"`
	ScheduledAt      int64    `json:"scheduledAt"`
	Location         string   `json:"location"`
	InterviewerNames []string `json:"interviewerNames"`
	Status           string   `json:"status"`
}

type Offer struct {
	ID            int64  `json:"id"`
	ApplicationID int64  `json:"applicationId"`
	LetterURL     string `json:"letterUrl"`
	Status        string `json:"status"`
	ResponseAt    int64  `json:"responseAt"`
}

type Application struct {
	ID                int64    `json:"id"`
	UID               int64    `json:"uid"`
	JobPostingID      int64    `json:"jobPostingId"`
	SchoolID          int64    `json:"schoolId"`
	Status            string   `json:"status"`
	CurrentStage      string   `json:"currentStage"`
	InterviewLocation string   `json:"interviewLocation"`
	InterviewerNames  []string `json:"interviewerNames"`
	Rating            int8     `json:"rating"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type AppIDReq struct {
	ApplicationID int64 `json:"applicationId"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type SaveSlotReq struct {
	ID            int64  `json:"id"`
	ApplicationID int64  `json:"applicationId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

type ApplyReq struct {
	JobPostingID int64  `json:"jobPostingId"`
	ContactEmail string `json:"contactEmail"`
}

type UpdateStatusReq struct {
	ApplicationID int64  `json:"applicationId"`
	Status        string `json:"status"`
}

type InviteReq struct {
	ApplicationID    int64    `json:"applicationId"`
	Location         string   `json:"location"`
	InterviewerNames []string `json:"interviewerNames"`
}

type ConfirmReq struct {
	ApplicationID    int64    `json:"applicationId"`
	ScheduledAt      int64    `json:"scheduledAt"`
	Location         string   `json:"location"`
	InterviewerNames []string `json:"interviewerNames"`
}

type RescheduleReq struct {
	ApplicationID    int64    `json:"applicationId"`
	InterviewID      int64    `json:"interviewId"`
	ScheduledAt      int64    `json:"scheduledAt"`
	Location         string   `json:"location"`
	InterviewerNames []string `json:"interviewerNames"`
}

type CancelReq struct {
	ApplicationID int64 `json:"applicationId"`
	InterviewID   int64 `json:"interviewId"`
}

type SendOfferReq struct {
	ApplicationID int64  `json:"applicationId"`
	LetterURL     string `json:"letterUrl"`
}

type RespondOfferReq struct {
	OfferID  int64  `json:"offerId"`
	Response string `json:"response"`
}

func newSlot(s domain.AvailabilitySlot) Slot {
	return Slot{
		ID:            s.ID,
		ApplicationID: s.ApplicationID,
		UID:           s.UID,
		Date:          s.Date.Format("2006-01-02"),
		DayOfWeek:     s.DayOfWeek.String(),
		StartTime:     timewindow.Format(s.StartTime),
		EndTime:       timewindow.Format(s.EndTime),
	}
}

func newMatchSuggestion(m domain.MatchSuggestion) MatchSuggestion {
	return MatchSuggestion{
		DayOfWeek:     m.DayOfWeek.String(),
		StartTime:     timewindow.Format(m.StartTime),
		EndTime:       timewindow.Format(m.EndTime),
		CandidateSlot: newSlot(m.CandidateSlot),
		AdminSlot:     newSlot(m.AdminSlot),
	}
}

func newInterview(itv domain.Interview) Interview {
	return Interview{
		ID:               itv.ID,
		ApplicationID:    itv.ApplicationID,
		InterviewerID:    itv.InterviewerID,
		ScheduledAt:      itv.ScheduledAt,
		Location:         itv.Location,
		InterviewerNames: itv.InterviewerNames,
		Status:           itv.Status.String(),
	}
}

func newOffer(o domain.Offer) Offer {
	return Offer{
		ID:            o.ID,
		ApplicationID: o.ApplicationID,
		LetterURL:     o.LetterURL,
		Status:        o.Status.String(),
		ResponseAt:    o.ResponseAt,
	}
}

func newApplication(app domain.Application) Application {
	return Application{
		ID:                app.ID,
		UID:               app.UID,
		JobPostingID:      app.JobPostingID,
		SchoolID:          app.SchoolID,
		Status:            app.Status.String(),
		CurrentStage:      app.CurrentStage.String(),
		InterviewLocation: app.InterviewLocation,
		InterviewerNames:  app.InterviewerNames,
		Rating:            app.Rating,
	}
}
