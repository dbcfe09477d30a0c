package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// 活动测验响应会嵌套题目和选项，正确答案标志不能随之下发
func TestListActiveEndpointHidesCorrectFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &stubQuizStore{quizzes: map[uint]*model.Quiz{
		1: {
			BaseModel: model.BaseModel{ID: 1},
			Title:     "Arithmetic",
			IsActive:  true,
			Questions: []model.Question{
				{
					BaseModel: model.BaseModel{ID: 10},
					QuizID:    1,
					Text:      "2+2?",
					IsActive:  true,
					Options: []model.Option{
						{BaseModel: model.BaseModel{ID: 1}, QuestionID: 10, Text: "4", IsCorrect: true},
						{BaseModel: model.BaseModel{ID: 2}, QuestionID: 10, Text: "5", IsCorrect: false},
					},
				},
			},
		},
	}}
	ctl := NewQuizController(service.NewQuizService(store, nil, 30*time.Second))

	r := gin.New()
	r.Use(asUser(1))
	r.GET("/api/quizzes/active", ctl.ListActive)

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/active", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"options"`) || !strings.Contains(body, `"text":"4"`) {
		t.Fatalf("expected nested options in response, got %s", body)
	}
	if strings.Contains(body, "isCorrect") || strings.Contains(body, "is_correct") {
		t.Fatalf("correct-answer flag leaked to quiz payload: %s", body)
	}
}

func TestOptionSerializationSplitsAdminView(t *testing.T) {
	option := &model.Option{
		BaseModel:  model.BaseModel{ID: 1},
		QuestionID: 10,
		Text:       "4",
		IsCorrect:  true,
	}

	raw, err := json.Marshal(option)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "isCorrect") {
		t.Fatalf("default option serialization must omit the answer flag: %s", raw)
	}

	adminRaw, err := json.Marshal(newOptionResponse(option))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(adminRaw), `"isCorrect":true`) {
		t.Fatalf("admin option view must carry the answer flag: %s", adminRaw)
	}
}
