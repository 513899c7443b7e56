package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// firestation serves the station coverage alert, or the mapping of an
// address when only address is given
func (s *Server) firestation(c *gin.Context) {
	if _, ok := c.GetQuery("stationNumber"); !ok {
		if _, ok := c.GetQuery("address"); ok {
			s.getFirestation(c)
			return
		}
	}

	station, ok := requiredIntQuery(c, "stationNumber")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.alerts.Coverage(station))
}

func (s *Server) childAlert(c *gin.Context) {
	address, ok := requiredQuery(c, "address")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.alerts.ChildAlert(address))
}

func (s *Server) phoneAlert(c *gin.Context) {
	station, ok := requiredIntQuery(c, "firestation")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.alerts.PhoneAlert(station))
}

func (s *Server) fire(c *gin.Context) {
	address, ok := requiredQuery(c, "address")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.alerts.Fire(address))
}

func (s *Server) flood(c *gin.Context) {
	stations, ok := stationsQuery(c, "stations")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.alerts.Flood(stations))
}

func (s *Server) personInfo(c *gin.Context) {
	lastName, ok := requiredQuery(c, "lastName")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.alerts.PersonInfo(lastName))
}

func (s *Server) communityEmail(c *gin.Context) {
	city, ok := requiredQuery(c, "city")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, s.alerts.CommunityEmail(city))
}
