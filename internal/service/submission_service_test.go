package service

import (
	"errors"
	"testing"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/util"

	"gorm.io/gorm"
)

type fakeQuizStore struct {
	quizzes map[uint]*model.Quiz
}

func (f *fakeQuizStore) Create(quiz *model.Quiz) error { return nil }

func (f *fakeQuizStore) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (f *fakeQuizStore) FindActive() ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range f.quizzes {
		if q.IsActive {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuizStore) Update(quiz *model.Quiz) error { return nil }

func (f *fakeQuizStore) ToggleActive(id uint) (bool, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return false, gorm.ErrRecordNotFound
	}
	quiz.IsActive = !quiz.IsActive
	return quiz.IsActive, nil
}

func (f *fakeQuizStore) Delete(id uint) error {
	delete(f.quizzes, id)
	return nil
}

type fakeQuestionReader struct {
	questions map[uint]*model.Question
}

func (f *fakeQuestionReader) FindByID(id uint) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

type fakeOptionResolver struct {
	options map[uint]*model.Option
}

func (f *fakeOptionResolver) FindByIDAndQuestion(id, questionID uint) (*model.Option, error) {
	o, ok := f.options[id]
	if !ok || o.QuestionID != questionID {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

type fakeSubmissionStore struct {
	nextID      uint
	submissions []*model.QuizSubmission
	answers     map[uint][]model.UserAnswer
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{nextID: 1, answers: make(map[uint][]model.UserAnswer)}
}

func (f *fakeSubmissionStore) HasSubmitted(userID, quizID uint) (bool, error) {
	for _, s := range f.submissions {
		if s.UserID == userID && s.QuizID == quizID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubmissionStore) CreateWithAnswers(submission *model.QuizSubmission, answers []model.UserAnswer) error {
	if ok, _ := f.HasSubmitted(submission.UserID, submission.QuizID); ok {
		return util.ErrAlreadySubmitted
	}
	submission.ID = f.nextID
	f.nextID++
	for i := range answers {
		answers[i].SubmissionID = submission.ID
	}
	f.submissions = append(f.submissions, submission)
	f.answers[submission.ID] = answers
	return nil
}

func (f *fakeSubmissionStore) FindByID(id uint) (*model.QuizSubmission, error) {
	for _, s := range f.submissions {
		if s.ID == id {
			out := *s
			out.Answers = f.answers[id]
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubmissionStore) FindByUser(userID uint) ([]model.QuizSubmission, error) {
	var out []model.QuizSubmission
	for i := len(f.submissions) - 1; i >= 0; i-- {
		if f.submissions[i].UserID == userID {
			out = append(out, *f.submissions[i])
		}
	}
	return out, nil
}

func (f *fakeSubmissionStore) FindAll(page, limit int) ([]model.QuizSubmission, int64, error) {
	var out []model.QuizSubmission
	for _, s := range f.submissions {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

// 两道激活题目各 4 个选项，每题第一个选项正确。
// 题目 1 的选项 ID 为 1..4，题目 2 的为 5..8。
func newGradingFixture() (*SubmissionService, *fakeSubmissionStore, *fakeQuizStore) {
	quizzes := &fakeQuizStore{quizzes: map[uint]*model.Quiz{
		1: {BaseModel: model.BaseModel{ID: 1}, Title: "Go basics", IsActive: true},
		2: {BaseModel: model.BaseModel{ID: 2}, Title: "Disabled quiz", IsActive: false},
	}}
	questions := &fakeQuestionReader{questions: map[uint]*model.Question{
		10: {BaseModel: model.BaseModel{ID: 10}, QuizID: 1, IsActive: true},
		11: {BaseModel: model.BaseModel{ID: 11}, QuizID: 1, IsActive: true},
	}}
	options := &fakeOptionResolver{options: map[uint]*model.Option{}}
	for i := uint(1); i <= 4; i++ {
		options.options[i] = &model.Option{BaseModel: model.BaseModel{ID: i}, QuestionID: 10, IsCorrect: i == 1}
	}
	for i := uint(5); i <= 8; i++ {
		options.options[i] = &model.Option{BaseModel: model.BaseModel{ID: i}, QuestionID: 11, IsCorrect: i == 5}
	}

	store := newFakeSubmissionStore()
	return NewSubmissionService(quizzes, questions, options, store), store, quizzes
}

func TestSubmitQuizAllCorrect(t *testing.T) {
	svc, _, _ := newGradingFixture()

	sub, err := svc.SubmitQuiz(1, 1, []AnswerInput{
		{QuestionID: 10, SelectedOption: 1},
		{QuestionID: 11, SelectedOption: 5},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sub.Score != 2 || sub.TotalQuestions != 2 {
		t.Fatalf("expected 2/2, got %d/%d", sub.Score, sub.TotalQuestions)
	}
	if len(sub.Answers) != 2 {
		t.Fatalf("expected 2 answer records, got %d", len(sub.Answers))
	}
	for _, a := range sub.Answers {
		if !a.IsCorrect {
			t.Fatalf("expected all answers correct, got %+v", a)
		}
	}
}

func TestSubmitQuizNonexistentOptionGradedIncorrect(t *testing.T) {
	svc, _, _ := newGradingFixture()

	// 选项 99 不存在，按答错处理而不是报错
	sub, err := svc.SubmitQuiz(1, 1, []AnswerInput{
		{QuestionID: 10, SelectedOption: 1},
		{QuestionID: 11, SelectedOption: 99},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sub.Score != 1 || sub.TotalQuestions != 2 {
		t.Fatalf("expected 1/2, got %d/%d", sub.Score, sub.TotalQuestions)
	}
}

func TestSubmitQuizOptionFromOtherQuestionGradedIncorrect(t *testing.T) {
	svc, _, _ := newGradingFixture()

	// 选项 5 属于题目 11，对题目 10 无效
	sub, err := svc.SubmitQuiz(1, 1, []AnswerInput{
		{QuestionID: 10, SelectedOption: 5},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sub.Score != 0 || sub.TotalQuestions != 1 {
		t.Fatalf("expected 0/1, got %d/%d", sub.Score, sub.TotalQuestions)
	}
	if len(sub.Answers) != 1 || sub.Answers[0].IsCorrect {
		t.Fatalf("expected one incorrect answer record, got %+v", sub.Answers)
	}
}

func TestSubmitQuizInactiveQuestionSkipped(t *testing.T) {
	svc, store, _ := newGradingFixture()
	svc.Questions.(*fakeQuestionReader).questions[11].IsActive = false

	sub, err := svc.SubmitQuiz(1, 1, []AnswerInput{
		{QuestionID: 10, SelectedOption: 1},
		{QuestionID: 11, SelectedOption: 5},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sub.Score != 1 || sub.TotalQuestions != 1 {
		t.Fatalf("expected 1/1, got %d/%d", sub.Score, sub.TotalQuestions)
	}
	if len(store.answers[sub.ID]) != 1 {
		t.Fatalf("inactive question must not produce an answer record")
	}
}

func TestSubmitQuizRepeatedQuestionCountedOnce(t *testing.T) {
	svc, store, _ := newGradingFixture()

	// 同一题目重复作答只按首次出现计分，首答错不被后续正确答案覆盖
	sub, err := svc.SubmitQuiz(1, 1, []AnswerInput{
		{QuestionID: 10, SelectedOption: 2},
		{QuestionID: 10, SelectedOption: 1},
		{QuestionID: 11, SelectedOption: 5},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sub.Score != 1 || sub.TotalQuestions != 2 {
		t.Fatalf("expected 1/2, got %d/%d", sub.Score, sub.TotalQuestions)
	}
	if len(store.answers[sub.ID]) != 2 {
		t.Fatalf("expected one answer record per question, got %d", len(store.answers[sub.ID]))
	}
	for _, a := range store.answers[sub.ID] {
		if a.QuestionID == 10 && a.SelectedOption != 2 {
			t.Fatalf("first occurrence must win, got option %d", a.SelectedOption)
		}
	}
}

func TestSubmitQuizEmptyAnswers(t *testing.T) {
	svc, _, _ := newGradingFixture()

	sub, err := svc.SubmitQuiz(1, 1, nil)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sub.Score != 0 || sub.TotalQuestions != 0 {
		t.Fatalf("expected 0/0, got %d/%d", sub.Score, sub.TotalQuestions)
	}
}

func TestSubmitQuizInactiveQuizRejected(t *testing.T) {
	svc, store, _ := newGradingFixture()

	_, err := svc.SubmitQuiz(1, 2, []AnswerInput{{QuestionID: 10, SelectedOption: 1}})
	if !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
	if len(store.submissions) != 0 {
		t.Fatalf("rejected submit must not write")
	}
}

func TestSubmitQuizUnknownQuizRejected(t *testing.T) {
	svc, _, _ := newGradingFixture()

	_, err := svc.SubmitQuiz(1, 42, nil)
	if !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestSubmitQuizUnknownQuestionRejected(t *testing.T) {
	svc, store, _ := newGradingFixture()

	_, err := svc.SubmitQuiz(1, 1, []AnswerInput{{QuestionID: 404, SelectedOption: 1}})
	if !errors.Is(err, util.ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion, got %v", err)
	}
	if len(store.submissions) != 0 {
		t.Fatalf("rejected submit must not write")
	}
}

func TestSubmitQuizDuplicateRejected(t *testing.T) {
	svc, store, _ := newGradingFixture()

	if _, err := svc.SubmitQuiz(1, 1, nil); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	_, err := svc.SubmitQuiz(1, 1, []AnswerInput{{QuestionID: 10, SelectedOption: 1}})
	if !errors.Is(err, util.ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
	if len(store.submissions) != 1 {
		t.Fatalf("duplicate submit must not write, got %d submissions", len(store.submissions))
	}

	// 不同用户不受影响
	if _, err := svc.SubmitQuiz(2, 1, nil); err != nil {
		t.Fatalf("submit by another user failed: %v", err)
	}
}

func TestSubmitQuizDeterministic(t *testing.T) {
	inputs := []AnswerInput{
		{QuestionID: 10, SelectedOption: 2},
		{QuestionID: 11, SelectedOption: 5},
	}

	for i := 0; i < 3; i++ {
		svc, _, _ := newGradingFixture()
		sub, err := svc.SubmitQuiz(1, 1, inputs)
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if sub.Score != 1 || sub.TotalQuestions != 2 {
			t.Fatalf("run %d: expected 1/2, got %d/%d", i, sub.Score, sub.TotalQuestions)
		}
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	svc, _, quizzes := newGradingFixture()
	quizzes.quizzes[3] = &model.Quiz{BaseModel: model.BaseModel{ID: 3}, Title: "Second quiz", IsActive: true}

	if _, err := svc.SubmitQuiz(1, 1, nil); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.SubmitQuiz(1, 3, nil); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	history, err := svc.History(1)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(history))
	}
	if history[0].QuizID != 3 || history[1].QuizID != 1 {
		t.Fatalf("expected most recent first, got %+v", history)
	}
}
