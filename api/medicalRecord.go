package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/safetynet-alerts/schema"
)

func (s *Server) getMedicalRecord(c *gin.Context) {
	r, err := s.admin.GetMedicalRecord(c.Query("firstName"), c.Query("lastName"))
	if err != nil {
		abortWithServiceError(c, err, errorMedicalRecordNotFound, errorMedicalRecordExists)
		return
	}

	c.JSON(http.StatusOK, r)
}

func (s *Server) listMedicalRecords(c *gin.Context) {
	c.JSON(http.StatusOK, s.admin.ListMedicalRecords())
}

func (s *Server) createMedicalRecord(c *gin.Context) {
	var body schema.MedicalRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	r, err := s.admin.AddMedicalRecord(&body)
	if err != nil {
		abortWithServiceError(c, err, errorMedicalRecordNotFound, errorMedicalRecordExists)
		return
	}

	c.JSON(http.StatusCreated, r)
}

func (s *Server) updateMedicalRecord(c *gin.Context) {
	var body schema.MedicalRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	r, err := s.admin.UpdateMedicalRecord(&body)
	if err != nil {
		abortWithServiceError(c, err, errorMedicalRecordNotFound, errorMedicalRecordExists)
		return
	}

	c.JSON(http.StatusOK, r)
}

func (s *Server) deleteMedicalRecord(c *gin.Context) {
	if err := s.admin.DeleteMedicalRecord(c.Query("firstName"), c.Query("lastName")); err != nil {
		abortWithServiceError(c, err, errorMedicalRecordNotFound, errorMedicalRecordExists)
		return
	}

	c.Status(http.StatusNoContent)
}
