package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/safetynet-alerts/schema"
)

func (s *Server) getFirestation(c *gin.Context) {
	f, err := s.admin.GetFirestation(c.Query("address"))
	if err != nil {
		abortWithServiceError(c, err, errorFirestationNotFound, errorFirestationExists)
		return
	}

	c.JSON(http.StatusOK, f)
}

func (s *Server) listFirestations(c *gin.Context) {
	c.JSON(http.StatusOK, s.admin.ListFirestations())
}

func (s *Server) createFirestation(c *gin.Context) {
	var body schema.FirestationMapping
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	f, err := s.admin.AddFirestation(&body)
	if err != nil {
		abortWithServiceError(c, err, errorFirestationNotFound, errorFirestationExists)
		return
	}

	c.JSON(http.StatusCreated, f)
}

func (s *Server) updateFirestation(c *gin.Context) {
	var body schema.FirestationMapping
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	f, err := s.admin.UpdateFirestation(&body)
	if err != nil {
		abortWithServiceError(c, err, errorFirestationNotFound, errorFirestationExists)
		return
	}

	c.JSON(http.StatusOK, f)
}

// deleteFirestation takes the selector from addressOrStation, station or
// address, in that order
func (s *Server) deleteFirestation(c *gin.Context) {
	var selector string
	for _, name := range []string{"addressOrStation", "station", "address"} {
		if v := c.Query(name); v != "" {
			selector = v
			break
		}
	}

	if _, err := s.admin.DeleteFirestation(selector); err != nil {
		abortWithServiceError(c, err, errorFirestationNotFound, errorFirestationExists)
		return
	}

	c.Status(http.StatusNoContent)
}
