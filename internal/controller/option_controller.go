package controller

import (
	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/service"
	"quiz_api_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type OptionController struct {
	Service *service.OptionService
}

func NewOptionController(s *service.OptionService) *OptionController {
	return &OptionController{Service: s}
}

// swagger:model OptionRequest
type OptionRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Text       string `json:"text" binding:"required,max=255"`
	IsCorrect  *bool  `json:"isCorrect"`
}

// optionResponse 管理端选项视图。model.Option 对普通用户隐藏 IsCorrect，
// 只有这里的管理员接口回带答案标志。
// swagger:model OptionResponse
type optionResponse struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"questionId"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"isCorrect"`
}

func newOptionResponse(o *model.Option) optionResponse {
	return optionResponse{
		ID:         o.ID,
		QuestionID: o.QuestionID,
		Text:       o.Text,
		IsCorrect:  o.IsCorrect,
	}
}

// List godoc
// @Summary 选项列表
// @Tags 选项管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]OptionResponse}
// @Router /options [get]
func (c *OptionController) List(ctx *gin.Context) {
	options, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	views := make([]optionResponse, len(options))
	for i := range options {
		views[i] = newOptionResponse(&options[i])
	}
	util.Success(ctx, views)
}

// Create godoc
// @Summary 新建选项
// @Tags 选项管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body OptionRequest true "选项信息"
// @Success 201 {object} util.Response{data=OptionResponse}
// @Failure 400 {object} util.Response
// @Router /options [post]
func (c *OptionController) Create(ctx *gin.Context) {
	var req OptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	option := &model.Option{
		QuestionID: req.QuestionID,
		Text:       req.Text,
	}
	if req.IsCorrect != nil {
		option.IsCorrect = *req.IsCorrect
	}

	if err := c.Service.Create(option); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, newOptionResponse(option))
}

// Get godoc
// @Summary 选项详情
// @Tags 选项管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "选项ID"
// @Success 200 {object} util.Response{data=OptionResponse}
// @Failure 404 {object} util.Response
// @Router /options/{id} [get]
func (c *OptionController) Get(ctx *gin.Context) {
	option, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, newOptionResponse(option))
}

// Update godoc
// @Summary 更新选项
// @Tags 选项管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "选项ID"
// @Param body body OptionRequest true "选项信息"
// @Success 200 {object} util.Response{data=OptionResponse}
// @Router /options/{id} [put]
func (c *OptionController) Update(ctx *gin.Context) {
	option, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req OptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	option.QuestionID = req.QuestionID
	option.Text = req.Text
	if req.IsCorrect != nil {
		option.IsCorrect = *req.IsCorrect
	}

	if err := c.Service.Update(option); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, newOptionResponse(option))
}

// Delete godoc
// @Summary 删除选项
// @Tags 选项管理
// @Security ApiKeyAuth
// @Param id path int true "选项ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /options/{id} [delete]
func (c *OptionController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if _, err := c.Service.Get(id); err != nil {
		util.NotFound(ctx)
		return
	}

	if err := c.Service.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
