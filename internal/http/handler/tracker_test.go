package handler_test

import (
	"encoding/json"
	"errors"
	"exercisetracker/internal/core"
	"exercisetracker/internal/http/handler"
	"exercisetracker/internal/http/handler/fake"
	"exercisetracker/internal/http/payload"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TrackerHandler", func() {
	var (
		fakeTracker *fake.TrackerService
		fakeDecoder *fake.RequestDecoder
		h           *handler.TrackerHandler
		w           *httptest.ResponseRecorder
		req         *http.Request
		userID      string
		fakeErr     error
	)

	BeforeEach(func() {
		fakeTracker = new(fake.TrackerService)
		fakeDecoder = new(fake.RequestDecoder)
		fakeDecoder.DecodePayloadStub = payload.Decoder{}.DecodePayload
		h = handler.NewTrackerHandler(zap.NewNop().Sugar(), fakeDecoder, fakeTracker)
		w = httptest.NewRecorder()
		userID = uuid.NewString()
		fakeErr = errors.New("connection refused")
	})

	Describe("HandleCreateUser", func() {
		var body string

		BeforeEach(func() {
			body = `{"username":"fcc_test"}`
			fakeTracker.CreateUserReturns(core.UserRecord{ID: userID, Username: "fcc_test"}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			h.HandleCreateUser(w, req)
		})

		It("should create the user", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(fakeTracker.CreateUserCallCount()).To(Equal(1))
			_, username := fakeTracker.CreateUserArgsForCall(0)
			Expect(username).To(Equal("fcc_test"))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(Equal(map[string]any{"id": userID, "username": "fcc_test"}))
		})

		When("the username is missing", func() {
			BeforeEach(func() {
				body = `{}`
			})

			It("should reject the request", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("username is required and must be string"))
				Expect(fakeTracker.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the username is not a string", func() {
			BeforeEach(func() {
				body = `{"username":42}`
			})

			It("should reject the request", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeTracker.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the tracker fails", func() {
			BeforeEach(func() {
				fakeTracker.CreateUserReturns(core.UserRecord{}, fakeErr)
			})

			It("should return a generic error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring("connection refused"))
			})
		})
	})

	Describe("HandleCreateUser with a form body", func() {
		BeforeEach(func() {
			fakeTracker.CreateUserReturns(core.UserRecord{ID: userID, Username: "form_user"}, nil)
			form := url.Values{"username": {"form_user"}}
			req = httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		})

		It("should bind the form values", func() {
			h.HandleCreateUser(w, req)
			Expect(w.Code).To(Equal(http.StatusCreated))
			_, username := fakeTracker.CreateUserArgsForCall(0)
			Expect(username).To(Equal("form_user"))
		})
	})

	Describe("HandleListUsers", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
			h.HandleListUsers(w, req)
		})

		When("there are no users", func() {
			BeforeEach(func() {
				fakeTracker.ListUsersReturns(nil, nil)
			})

			It("should return an empty array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
			})
		})

		When("there are users", func() {
			BeforeEach(func() {
				fakeTracker.ListUsersReturns([]core.UserRecord{
					{ID: "1", Username: "a"},
					{ID: "2", Username: "b"},
				}, nil)
			})

			It("should return only id and username", func() {
				var resp []map[string]any
				Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
				Expect(resp).To(HaveLen(2))
				Expect(resp[0]).To(Equal(map[string]any{"id": "1", "username": "a"}))
				Expect(resp[1]).To(Equal(map[string]any{"id": "2", "username": "b"}))
			})
		})

		When("the tracker fails", func() {
			BeforeEach(func() {
				fakeTracker.ListUsersReturns(nil, fakeErr)
			})

			It("should return a server error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleLogExercise", func() {
		var (
			body string
			date time.Time
		)

		BeforeEach(func() {
			body = `{"description":"test","duration":60,"date":"2023-01-01"}`
			date = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
			fakeTracker.LogExerciseReturns(core.ExerciseRecord{
				UserID:      userID,
				Username:    "fcc_test",
				Description: "test",
				Duration:    60,
				Date:        date,
			}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/users/"+userID+"/exercises", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", userID)
			h.HandleLogExercise(w, req)
		})

		It("should log the exercise", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeTracker.LogExerciseCallCount()).To(Equal(1))

			_, id, msg := fakeTracker.LogExerciseArgsForCall(0)
			Expect(id).To(Equal(userID))
			Expect(msg.Description).To(Equal("test"))
			Expect(msg.Duration).To(Equal(60.0))
			Expect(msg.Date).NotTo(BeNil())
			Expect(*msg.Date).To(Equal(date))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(Equal(map[string]any{
				"username":    "fcc_test",
				"description": "test",
				"duration":    60.0,
				"date":        "Sun Jan 01 2023",
				"id":          userID,
			}))
		})

		When("the date is omitted", func() {
			BeforeEach(func() {
				body = `{"description":"test","duration":60}`
			})

			It("should leave the date to the tracker", func() {
				_, _, msg := fakeTracker.LogExerciseArgsForCall(0)
				Expect(msg.Date).To(BeNil())
			})
		})

		When("the duration is a numeric string", func() {
			BeforeEach(func() {
				body = `{"description":"test","duration":"45"}`
			})

			It("should coerce it to a number", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, msg := fakeTracker.LogExerciseArgsForCall(0)
				Expect(msg.Duration).To(Equal(45.0))
			})
		})

		When("the duration is not numeric", func() {
			BeforeEach(func() {
				body = `{"description":"test","duration":"long"}`
			})

			It("should return bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("duration must be a number"))
				Expect(fakeTracker.LogExerciseCallCount()).To(Equal(0))
			})
		})

		When("the body carries extra keys", func() {
			BeforeEach(func() {
				body = `{"_id":"` + userID + `","description":"test","duration":60}`
			})

			It("should ignore them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeTracker.LogExerciseCallCount()).To(Equal(1))
			})
		})

		When("the date cannot be parsed", func() {
			BeforeEach(func() {
				body = `{"description":"test","duration":60,"date":"yesterday"}`
			})

			It("should return bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("dates must look like 2006-01-02"))
				Expect(fakeTracker.LogExerciseCallCount()).To(Equal(0))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeTracker.LogExerciseReturns(core.ExerciseRecord{}, core.ErrUserNotFound)
			})

			It("should return bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("there is no user for this id"))
			})
		})

		When("the tracker fails", func() {
			BeforeEach(func() {
				fakeTracker.LogExerciseReturns(core.ExerciseRecord{}, fakeErr)
			})

			It("should return a server error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleGetLogs", func() {
		var target string

		BeforeEach(func() {
			target = "/api/users/" + userID + "/logs"
			fakeTracker.GetExerciseLogReturns(core.ExerciseLog{
				UserID:   userID,
				Username: "fcc_test",
				Count:    2,
				Log: []core.LogEntry{
					{Description: "a", Duration: 10, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
					{Description: "b", Duration: 20, Date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
				},
			}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, target, nil)
			req.SetPathValue("id", userID)
			h.HandleGetLogs(w, req)
		})

		It("should return the log", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp handler.LogResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ID).To(Equal(userID))
			Expect(resp.Username).To(Equal("fcc_test"))
			Expect(resp.Count).To(Equal(2))
			Expect(resp.Log).To(Equal([]handler.LogEntryResponse{
				{Description: "a", Duration: 10, Date: "Sun Jan 01 2023"},
				{Description: "b", Duration: 20, Date: "Mon Jan 02 2023"},
			}))

			_, _, query := fakeTracker.GetExerciseLogArgsForCall(0)
			Expect(query).To(Equal(core.LogQuery{}))
		})

		When("stored dates come back in a zone west of UTC", func() {
			BeforeEach(func() {
				west := time.FixedZone("UTC-5", -5*60*60)
				stored := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
				fakeTracker.GetExerciseLogReturns(core.ExerciseLog{
					UserID:   userID,
					Username: "fcc_test",
					Count:    1,
					Log: []core.LogEntry{
						{Description: "a", Duration: 10, Date: time.Unix(stored.Unix(), 0).In(west)},
					},
				}, nil)
			})

			It("should show the stored calendar day", func() {
				var resp handler.LogResponse
				Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
				Expect(resp.Log).To(HaveLen(1))
				Expect(resp.Log[0].Date).To(Equal("Sun Jan 01 2023"))
			})
		})

		When("filters are given", func() {
			BeforeEach(func() {
				target += "?from=2023-01-01&to=2023-01-31&limit=1"
			})

			It("should pass them to the tracker", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, id, query := fakeTracker.GetExerciseLogArgsForCall(0)
				Expect(id).To(Equal(userID))
				Expect(query.Limit).To(Equal(1))
				Expect(query.From).NotTo(BeNil())
				Expect(*query.From).To(Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
				Expect(query.To).NotTo(BeNil())
				Expect(*query.To).To(Equal(time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)))
			})
		})

		When("the limit is invalid", func() {
			BeforeEach(func() {
				target += "?limit=-3"
			})

			It("should return bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("limit must be a non-negative integer"))
				Expect(fakeTracker.GetExerciseLogCallCount()).To(Equal(0))
			})
		})

		When("the from date is invalid", func() {
			BeforeEach(func() {
				target += "?from=someday"
			})

			It("should return bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("dates must look like 2006-01-02"))
				Expect(fakeTracker.GetExerciseLogCallCount()).To(Equal(0))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeTracker.GetExerciseLogReturns(core.ExerciseLog{}, core.ErrUserNotFound)
			})

			It("should stop with bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("there is no user for this id"))
				Expect(w.Body.String()).NotTo(ContainSubstring("log"))
			})
		})

		When("the tracker fails", func() {
			BeforeEach(func() {
				fakeTracker.GetExerciseLogReturns(core.ExerciseLog{}, fakeErr)
			})

			It("should return a server error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
