package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"equipment-management-service/pkg/models"
)

type MachineRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var machineRequestSchema = z.Struct(z.Shape{
	"ID":   z.Int(),
	"Name": z.String().Required(),
})

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func (rs *RestfulServer) GetMachines(c *gin.Context) {
	machines, err := rs.Equipment.Machines.GetAllMachines()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, machines)
}

func (rs *RestfulServer) GetMachine(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	machine, err := rs.Equipment.Machines.GetMachine(id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, machine)
}

func (rs *RestfulServer) AddMachine(c *gin.Context) {
	var req MachineRequest
	if err := machineRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	machine, err := rs.Equipment.Machines.AddMachine(&models.Machine{Name: req.Name})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, machine)
}

func (rs *RestfulServer) UpdateMachine(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req MachineRequest
	if err := machineRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if uint(req.ID) != id {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload id does not match path id"})
		return
	}

	machine, err := rs.Equipment.Machines.UpdateMachine(&models.Machine{ID: id, Name: req.Name})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, machine)
}

func (rs *RestfulServer) DeleteMachine(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := rs.Equipment.Machines.DeleteMachine(id); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) GetMachineDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	details, err := rs.Equipment.Stats.GetMachineDetails(id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

type LimiterRequest struct {
	Key   string  `json:"key"`
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Key":   z.String().Required(),
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(req.Key, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
