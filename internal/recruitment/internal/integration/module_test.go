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

//go:build e2e

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/schoolhire/internal/email"
	emailmocks "github.com/ecodeclub/schoolhire/internal/email/mocks"
	"github.com/ecodeclub/schoolhire/internal/notification"
	"github.com/ecodeclub/schoolhire/internal/recruitment"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/integration/startup"
	"github.com/ecodeclub/schoolhire/internal/recruitment/internal/web"
	"github.com/ecodeclub/schoolhire/internal/school"
	"github.com/ecodeclub/schoolhire/internal/test"
	testioc "github.com/ecodeclub/schoolhire/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	candidateUid = int64(2051)
	adminUid     = int64(3001)
)

type ModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	// 当前请求以谁的身份发出
	uid int64

	schoolId  int64
	postingId int64
}

func (s *ModuleTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())
	emailSvc := emailmocks.NewMockService(ctrl)
	emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.db = testioc.InitDB()
	q := testioc.InitMQ()

	schoolModule, err := school.InitModule(s.db)
	require.NoError(s.T(), err)
	notificationModule, err := notification.InitModule(s.db)
	require.NoError(s.T(), err)
	mod, err := startup.InitModule(s.db, q, schoolModule, notificationModule, email.Service(emailSvc))
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.uid,
		}))
	})
	mod.Hdl.PrivateRoutes(server.Engine)
	mod.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server

	// 一所学校、一个已发布岗位、一个管理员
	s.schoolId, err = schoolModule.Svc.Save(s.T().Context(), school.School{
		Name:   "示范中学",
		Region: "上海",
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), schoolModule.Svc.AddAdmin(s.T().Context(), s.schoolId, adminUid))
	s.postingId, err = schoolModule.PostingSvc.Save(s.T().Context(), school.JobPosting{
		SchoolID: s.schoolId,
		Title:    "高中数学教师",
		Subject:  "数学",
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), schoolModule.PostingSvc.Publish(s.T().Context(), s.postingId))
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"applications", "availability_slots", "interviews", "offers"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

func (s *ModuleTestSuite) post(uid int64, path string, req any, resp *test.JSONResponseRecorder[json.RawMessage]) {
	s.T().Helper()
	s.uid = uid
	body, err := json.Marshal(req)
	require.NoError(s.T(), err)
	httpReq, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	s.server.ServeHTTP(resp, httpReq)
}

func (s *ModuleTestSuite) postScan(uid int64, path string, req any) test.Result[json.RawMessage] {
	s.T().Helper()
	recorder := test.NewJSONResponseRecorder[json.RawMessage]()
	s.post(uid, path, req, recorder)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *ModuleTestSuite) apply() int64 {
	res := s.postScan(candidateUid, "/application/apply", web.ApplyReq{
		JobPostingID: s.postingId,
		ContactEmail: "tom@example.com",
	})
	require.Equal(s.T(), 0, res.Code)
	var id int64
	require.NoError(s.T(), json.Unmarshal(res.Data, &id))
	require.True(s.T(), id > 0)
	return id
}

func (s *ModuleTestSuite) saveSlot(uid, appId int64, date, start, end string) {
	res := s.postScan(uid, "/availability/save", web.SaveSlotReq{
		ApplicationID: appId,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
	})
	require.Equal(s.T(), 0, res.Code)
}

func (s *ModuleTestSuite) TestApplyAndListSlots() {
	appId := s.apply()
	// 周一 2024-01-15
	s.saveSlot(candidateUid, appId, "2024-01-15", "09:00", "10:30")
	s.saveSlot(candidateUid, appId, "2024-01-16", "14:00", "15:00")

	res := s.postScan(candidateUid, "/availability/list", web.AppIDReq{ApplicationID: appId})
	require.Equal(s.T(), 0, res.Code)
	var slots []web.Slot
	require.NoError(s.T(), json.Unmarshal(res.Data, &slots))
	require.Len(s.T(), slots, 2)
	assert.Equal(s.T(), "Mon", slots[0].DayOfWeek)
	assert.Equal(s.T(), "09:00", slots[0].StartTime)
	assert.Equal(s.T(), "Tue", slots[1].DayOfWeek)
}

func (s *ModuleTestSuite) TestMatchFlow() {
	appId := s.apply()
	// 候选人周一 09:00-10:30，管理员周一 10:00-11:00，交集 10:00-10:30
	s.saveSlot(candidateUid, appId, "2024-01-15", "09:00", "10:30")
	s.saveSlot(adminUid, appId, "2024-01-15", "10:00", "11:00")

	res := s.postScan(candidateUid, "/match/list", web.AppIDReq{ApplicationID: appId})
	require.Equal(s.T(), 0, res.Code)
	var matches []web.MatchSuggestion
	require.NoError(s.T(), json.Unmarshal(res.Data, &matches))
	require.Len(s.T(), matches, 1)
	assert.Equal(s.T(), "Mon", matches[0].DayOfWeek)
	assert.Equal(s.T(), "10:00", matches[0].StartTime)
	assert.Equal(s.T(), "10:30", matches[0].EndTime)
	assert.Equal(s.T(), candidateUid, matches[0].CandidateSlot.UID)
	assert.Equal(s.T(), adminUid, matches[0].AdminSlot.UID)
}

func (s *ModuleTestSuite) TestInterviewLifecycle() {
	appId := s.apply()
	s.saveSlot(candidateUid, appId, "2024-01-15", "09:00", "10:30")
	s.saveSlot(adminUid, appId, "2024-01-15", "10:00", "11:00")

	// 管理员发出邀请
	res := s.postScan(adminUid, "/interview/invite", web.InviteReq{
		ApplicationID:    appId,
		Location:         "主校区 3 号楼",
		InterviewerNames: []string{"王老师", "李老师"},
	})
	require.Equal(s.T(), 0, res.Code)

	// 候选人确认时间，时段应当被清空
	res = s.postScan(candidateUid, "/interview/confirm", web.ConfirmReq{
		ApplicationID:    appId,
		ScheduledAt:      1705305600000,
		Location:         "主校区 3 号楼",
		InterviewerNames: []string{"王老师", "李老师"},
	})
	require.Equal(s.T(), 0, res.Code)

	res = s.postScan(candidateUid, "/availability/list", web.AppIDReq{ApplicationID: appId})
	var slots []web.Slot
	require.NoError(s.T(), json.Unmarshal(res.Data, &slots))
	assert.Empty(s.T(), slots)

	res = s.postScan(candidateUid, "/application/detail", web.IDReq{ID: appId})
	var app web.Application
	require.NoError(s.T(), json.Unmarshal(res.Data, &app))
	assert.Equal(s.T(), "IN_PROCESS", app.Status)
	assert.Equal(s.T(), "INTERVIEW", app.CurrentStage)
}

func (s *ModuleTestSuite) TestInviteWithoutSlots() {
	appId := s.apply()
	res := s.postScan(adminUid, "/interview/invite", web.InviteReq{
		ApplicationID: appId,
		Location:      "主校区",
	})
	assert.Equal(s.T(), 512005, res.Code)
}

func (s *ModuleTestSuite) TestOfferFlow() {
	appId := s.apply()
	res := s.postScan(adminUid, "/offer/send", web.SendOfferReq{
		ApplicationID: appId,
		LetterURL:     "https://oss.example.com/offer/1.pdf",
	})
	require.Equal(s.T(), 0, res.Code)
	var offerId int64
	require.NoError(s.T(), json.Unmarshal(res.Data, &offerId))

	res = s.postScan(candidateUid, "/offer/respond", web.RespondOfferReq{
		OfferID:  offerId,
		Response: "ACCEPTED",
	})
	require.Equal(s.T(), 0, res.Code)

	// 回应过之后不能再改口
	res = s.postScan(candidateUid, "/offer/respond", web.RespondOfferReq{
		OfferID:  offerId,
		Response: "REJECTED",
	})
	assert.Equal(s.T(), 512008, res.Code)

	res = s.postScan(candidateUid, "/offer/detail", web.AppIDReq{ApplicationID: appId})
	var offer web.Offer
	require.NoError(s.T(), json.Unmarshal(res.Data, &offer))
	assert.Equal(s.T(), "ACCEPTED", offer.Status)
	assert.True(s.T(), offer.ResponseAt > 0)
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}
