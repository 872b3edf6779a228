package dtos

import "time"

// One candidate bookable window derived from the weekly template
type SlotResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"` // RFC 3339
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Weekly template entry; Day is validated against English weekday names
type WeeklySlotRequest struct {
	Day       string `json:"day" binding:"required,weekday"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	IsActive  bool   `json:"isActive"`
}

type OverrideSlotRequest struct {
	Date      time.Time `json:"date" binding:"required"`
	IsBlocked bool      `json:"isBlocked"`
	Reason    string    `json:"reason"`
}

// Full replacement of a mentor's availability
type SetAvailabilityRequest struct {
	WeeklySlots   []WeeklySlotRequest   `json:"weeklySlots" binding:"required,dive"`
	OverrideSlots []OverrideSlotRequest `json:"overrideSlots" binding:"dive"`
}
