package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"equipment-management-service/pkg/models"
)

type FailureRequest struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	MachineID   int       `json:"machineId"`
	Priority    int       `json:"priority"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Description string    `json:"description"`
	IsResolved  bool      `json:"isResolved"`
}

var failureRequestSchema = z.Struct(z.Shape{
	"ID":          z.Int(),
	"Name":        z.String().Required(),
	"MachineID":   z.Int().Required(),
	"Priority":    z.Int().Required(),
	"StartTime":   z.Time().Required(),
	"EndTime":     z.Time(),
	"Description": z.String().Required(),
	"IsResolved":  z.Bool(),
})

func (req *FailureRequest) toModel() *models.Failure {
	failure := &models.Failure{
		ID:          uint(req.ID),
		Name:        req.Name,
		MachineID:   uint(req.MachineID),
		Priority:    models.Priority(req.Priority),
		StartTime:   req.StartTime,
		Description: req.Description,
		IsResolved:  req.IsResolved,
	}
	if !req.EndTime.IsZero() {
		endTime := req.EndTime
		failure.EndTime = &endTime
	}
	return failure
}

func (rs *RestfulServer) GetFailures(c *gin.Context) {
	failures, err := rs.Equipment.Failures.GetAllFailures()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, failures)
}

func (rs *RestfulServer) GetFailure(c *gin.Context) {
	// gin cannot hold a static /sorted route beside /:id, so the sorted
	// listing is dispatched from here.
	if c.Param("id") == "sorted" {
		rs.GetSortedFailures(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	failure, err := rs.Equipment.Failures.GetFailure(id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, failure)
}

func (rs *RestfulServer) AddFailure(c *gin.Context) {
	var req FailureRequest
	if err := failureRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	failure, err := rs.Equipment.Failures.AddFailure(req.toModel())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, failure)
}

func (rs *RestfulServer) UpdateFailure(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req FailureRequest
	if err := failureRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if uint(req.ID) != id {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload id does not match path id"})
		return
	}

	failure, err := rs.Equipment.Failures.UpdateFailure(req.toModel())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, failure)
}

func (rs *RestfulServer) DeleteFailure(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := rs.Equipment.Failures.DeleteFailure(id); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) GetSortedFailures(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "page must be a positive integer"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "pageSize must be a positive integer"})
		return
	}

	failures, err := rs.Equipment.Failures.GetSortedFailures(page, pageSize)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	if len(failures) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "no failures on the requested page"})
		return
	}
	c.JSON(http.StatusOK, failures)
}

// UpdateFailureStatus takes a bare JSON boolean as its body.
func (rs *RestfulServer) UpdateFailureStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to read request body"})
		return
	}
	var isResolved bool
	if err := json.Unmarshal(body, &isResolved); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "request body must be a JSON boolean"})
		return
	}

	failure, err := rs.Equipment.Failures.UpdateFailureStatus(id, isResolved)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, failure)
}
