package controller

import (
	"errors"

	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"
	"quiz_api_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	Service *service.SubmissionService
}

func NewSubmissionController(s *service.SubmissionService) *SubmissionController {
	return &SubmissionController{Service: s}
}

// AnswerRequest 单题作答，所选选项限定 1..4
// swagger:model AnswerRequest
type AnswerRequest struct {
	Question       uint `json:"question" binding:"required"`
	SelectedOption int  `json:"selectedOption" binding:"required,min=1,max=4"`
}

// SubmitRequest 答案按提交顺序评分
// swagger:model SubmitRequest
type SubmitRequest struct {
	Answers []AnswerRequest `json:"answers"`
}

// Submit godoc
// @Summary 提交答题
// @Description 对激活测验评分并落库，同一用户对同一测验只能提交一次
// @Tags 答题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "测验ID"
// @Param body body SubmitRequest true "作答列表"
// @Success 201 {object} util.Response{data=model.QuizSubmission}
// @Failure 400 {object} util.Response "重复提交或作答无效"
// @Failure 404 {object} util.Response "测验不存在或未激活"
// @Router /quizzes/{id}/submit [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inputs := make([]service.AnswerInput, len(req.Answers))
	for i, a := range req.Answers {
		inputs[i] = service.AnswerInput{
			QuestionID:     a.Question,
			SelectedOption: a.SelectedOption,
		}
	}

	submission, err := c.Service.SubmitQuiz(claims.UserID, util.MustParseUint(ctx.Param("id")), inputs)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadySubmitted):
			monitoring.SubmissionCounter.WithLabelValues("duplicate").Inc()
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidQuestion):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.SubmissionCounter.WithLabelValues("graded").Inc()
	util.Created(ctx, submission)
}

// History godoc
// @Summary 当前用户提交历史
// @Tags 答题
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizSubmission}
// @Router /submissions/history [get]
func (c *SubmissionController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.Service.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// ListAll godoc
// @Summary 全部提交（管理端，分页）
// @Tags 答题
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param limit query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /admin/submissions [get]
func (c *SubmissionController) ListAll(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	submissions, total, err := c.Service.ListAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  submissions,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
