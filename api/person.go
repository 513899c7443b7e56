package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/safetynet-alerts/schema"
)

func (s *Server) getPerson(c *gin.Context) {
	p, err := s.admin.GetPerson(c.Query("firstName"), c.Query("lastName"))
	if err != nil {
		abortWithServiceError(c, err, errorPersonNotFound, errorPersonExists)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (s *Server) listPersons(c *gin.Context) {
	c.JSON(http.StatusOK, s.admin.ListPersons())
}

func (s *Server) createPerson(c *gin.Context) {
	var body schema.Person
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	p, err := s.admin.AddPerson(&body)
	if err != nil {
		abortWithServiceError(c, err, errorPersonNotFound, errorPersonExists)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (s *Server) updatePerson(c *gin.Context) {
	var body schema.Person
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	p, err := s.admin.UpdatePerson(&body)
	if err != nil {
		abortWithServiceError(c, err, errorPersonNotFound, errorPersonExists)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (s *Server) deletePerson(c *gin.Context) {
	if err := s.admin.DeletePerson(c.Query("firstName"), c.Query("lastName")); err != nil {
		abortWithServiceError(c, err, errorPersonNotFound, errorPersonExists)
		return
	}

	c.Status(http.StatusNoContent)
}
