package controllers

import (
	"github.com/gin-gonic/gin"

	"managehotel/models"
	"managehotel/services"
	"managehotel/utils"
)

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(svc *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: svc}
}

type FeedbackPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Content  string `json:"content" binding:"required"`
	Rating   int    `json:"rating" binding:"min=0,max=5"`
}

func (ctl *FeedbackController) CreateFeedback(c *gin.Context) {
	var payload FeedbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	fb, err := ctl.Feedback.Create(models.Feedback{
		FullName: payload.FullName,
		Email:    payload.Email,
		Content:  payload.Content,
		Rating:   payload.Rating,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, fb)
}

func (ctl *FeedbackController) GetFeedback(c *gin.Context) {
	list, err := ctl.Feedback.GetAll()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, list)
}
