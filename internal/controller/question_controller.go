package controller

import (
	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(s *service.QuestionService) *QuestionController {
	return &QuestionController{Service: s}
}

// swagger:model QuestionRequest
type QuestionRequest struct {
	QuizID   uint   `json:"quizId" binding:"required"`
	Text     string `json:"text" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

// List godoc
// @Summary 题目列表（仅激活）
// @Tags 题目管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	questions, err := c.Service.ListActive()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Create godoc
// @Summary 新建题目
// @Tags 题目管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body QuestionRequest true "题目信息"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.Question{
		QuizID:   req.QuizID,
		Text:     req.Text,
		IsActive: true,
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := c.Service.Create(ctx.Request.Context(), question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// Get godoc
// @Summary 题目详情
// @Tags 题目管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	question, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, question)
}

// Update godoc
// @Summary 更新题目
// @Tags 题目管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Param body body QuestionRequest true "题目信息"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	question, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question.QuizID = req.QuizID
	question.Text = req.Text
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := c.Service.Update(ctx.Request.Context(), question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// ToggleActive godoc
// @Summary 翻转题目 active 标志
// @Description 未激活的题目不参与展示与计分
// @Tags 题目管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id}/toggle-active [patch]
func (c *QuestionController) ToggleActive(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if _, err := c.Service.Get(id); err != nil {
		util.NotFound(ctx)
		return
	}

	active, err := c.Service.ToggleActive(ctx.Request.Context(), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"isActive": active})
}

// Delete godoc
// @Summary 删除题目
// @Tags 题目管理
// @Security ApiKeyAuth
// @Param id path int true "题目ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if _, err := c.Service.Get(id); err != nil {
		util.NotFound(ctx)
		return
	}

	if err := c.Service.Delete(ctx.Request.Context(), id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
