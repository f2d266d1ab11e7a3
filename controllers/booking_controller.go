package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"managehotel/services"
	"managehotel/utils"
)

const dateLayout = "2006-01-02"

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

type CreateBookingPayload struct {
	FullName       string `json:"fullName" binding:"required"`
	PhoneNumber    string `json:"phoneNumber"`
	IdentityNumber string `json:"identityNumber" binding:"required"`
	Address        string `json:"address"`
	Gender         string `json:"gender"`
	Nationality    string `json:"nationality"`
	GuestNum       int    `json:"guestNum"`
	CheckIn        string `json:"checkIn" binding:"required"`
	CheckOut       string `json:"checkOut" binding:"required"`
	RoomNo         []int  `json:"roomNo" binding:"required,min=1"`
}

type DeleteBookingsPayload struct {
	BookingCodes []string `json:"bookingCodes" binding:"required,min=1"`
}

type CheckinPayload struct {
	BookingCode string `json:"bookingCode" binding:"required"`
	RoomNo      int    `json:"roomNo" binding:"required"`
	Foreign     bool   `json:"foreign"`
	ExtraFee    bool   `json:"extraFee"`
}

type IdentityPayload struct {
	IdentityNumber string `json:"identityNumber" binding:"required"`
}

func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	checkIn, err := time.Parse(dateLayout, payload.CheckIn)
	if err != nil {
		utils.JSONBadRequest(c, "invalid checkIn format, expected YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(dateLayout, payload.CheckOut)
	if err != nil {
		utils.JSONBadRequest(c, "invalid checkOut format, expected YYYY-MM-DD")
		return
	}

	booking, err := ctl.Bookings.Create(services.CreateBookingRequest{
		FullName:       payload.FullName,
		PhoneNumber:    payload.PhoneNumber,
		IdentityNumber: payload.IdentityNumber,
		Address:        payload.Address,
		Gender:         payload.Gender,
		Nationality:    payload.Nationality,
		GuestNum:       payload.GuestNum,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		RoomNos:        payload.RoomNo,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, booking)
}

func (ctl *BookingController) DeleteBookings(c *gin.Context) {
	var payload DeleteBookingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	if err := ctl.Bookings.Delete(payload.BookingCodes); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, nil)
}

func (ctl *BookingController) CheckIn(c *gin.Context) {
	var payload CheckinPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	result, err := ctl.Bookings.CheckIn(payload.BookingCode, payload.RoomNo, payload.Foreign, payload.ExtraFee)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, result)
}

func (ctl *BookingController) FindUnpaid(c *gin.Context) {
	var payload IdentityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	bookings, err := ctl.Bookings.FindUnpaidByIdentity(payload.IdentityNumber)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, bookings)
}
