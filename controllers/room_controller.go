package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"managehotel/models"
	"managehotel/services"
	"managehotel/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Rooms: svc}
}

type RoomPayload struct {
	RoomNo int     `json:"roomNo" binding:"required"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	MaxNum int     `json:"maxNum"`
	Status string  `json:"status"`
}

type RoomUpdatePayload struct {
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	MaxNum int     `json:"maxNum"`
	Status string  `json:"status"`
}

func roomNoParam(c *gin.Context) (int, bool) {
	no, err := strconv.Atoi(c.Param("roomNo"))
	if err != nil {
		utils.JSONBadRequest(c, "invalid room number")
		return 0, false
	}
	return no, true
}

func (ctl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctl.Rooms.GetAll()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, rooms)
}

func (ctl *RoomController) GetRoom(c *gin.Context) {
	no, ok := roomNoParam(c)
	if !ok {
		return
	}
	room, err := ctl.Rooms.GetByNumber(no)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, room)
}

func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	room, err := ctl.Rooms.Create(models.Room{
		RoomNo: payload.RoomNo,
		Type:   payload.Type,
		Price:  payload.Price,
		MaxNum: payload.MaxNum,
		Status: payload.Status,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, room)
}

func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	no, ok := roomNoParam(c)
	if !ok {
		return
	}

	var payload RoomUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	room, err := ctl.Rooms.Update(no, models.Room{
		Type:   payload.Type,
		Price:  payload.Price,
		MaxNum: payload.MaxNum,
		Status: payload.Status,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, room)
}

func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	no, ok := roomNoParam(c)
	if !ok {
		return
	}
	if err := ctl.Rooms.Delete(no); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, nil)
}
