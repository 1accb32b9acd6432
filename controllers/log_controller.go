package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/zenott/boilerplate-project-exercisetracker/services"
	"github.com/zenott/boilerplate-project-exercisetracker/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LogController struct {
	Users *services.UserService
	Logs  *services.LogService
}

func NewLogController(users *services.UserService, logs *services.LogService) *LogController {
	return &LogController{Users: users, Logs: logs}
}

type AddLogInput struct {
	UserID      string `form:"userId" json:"userId"`
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
	Date        string `form:"date" json:"date"`
}

func (lc *LogController) AddLog(c *gin.Context) {
	var input AddLogInput
	_ = c.ShouldBind(&input)

	if uuid.Validate(input.UserID) != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid userId"})
		return
	}

	user, err := lc.Users.FindUserByID(input.UserID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"error": "userId not found"})
		return
	}

	var date time.Time
	if input.Date != "" {
		if !utils.IsValidDate(input.Date) {
			c.JSON(http.StatusOK, gin.H{"error": "invalid date"})
			return
		}
		date = utils.ParseDate(input.Date)
	}

	var duration float64
	if input.Duration != "" {
		duration, err = strconv.ParseFloat(input.Duration, 64)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"error": "invalid duration"})
			return
		}
	}

	entry, err := lc.Logs.CreateLog(user.ID, input.Description, duration, date)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":    user.Username,
		"description": entry.Description,
		"duration":    entry.Duration,
		// Kept from the original API for compatibility: this field carries
		// the new log's id, not the user's.
		"userId": entry.ID,
		"date":   utils.FormatDate(entry.Date),
	})
}

func (lc *LogController) GetLogs(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{"error": "no userId provided"})
		return
	}

	user, err := lc.Users.FindUserByID(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"error": "userId not found"})
		return
	}

	// Malformed bounds are not an error: they degrade to a range that
	// matches nothing, as the original's invalid Date objects did.
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		if t, ok := utils.ParseLenientDate(v); ok {
			from = t
		} else {
			from = utils.MaxDate
		}
	}
	if v := c.Query("to"); v != "" {
		if t, ok := utils.ParseLenientDate(v); ok {
			to = t
		} else {
			to = utils.MinDate
		}
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	logs, err := lc.Logs.QueryLogs(user.ID, from, to, limit)
	if err != nil {
		respondErr(c, err)
		return
	}

	entries := make([]gin.H, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, gin.H{
			"description": l.Description,
			"duration":    l.Duration,
			"date":        utils.FormatHumanDate(l.Date),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":   user.ID,
		"userName": user.Username,
		"count":    len(entries),
		"log":      entries,
	})
}
