package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/safetynet-alerts/utils"
)

// requiredQuery returns a non blank query parameter or aborts with 400
func requiredQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if utils.IsBlank(value) {
		abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParameters, fmt.Sprintf("%s is required", name)))
		return "", false
	}
	return value, true
}

// requiredIntQuery returns an integer query parameter or aborts with 400
func requiredIntQuery(c *gin.Context, name string) (int, bool) {
	value, ok := requiredQuery(c, name)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParamType, fmt.Sprintf("%s must be a number", name)), err)
		return 0, false
	}
	return n, true
}

// stationsQuery reads a station list given as comma separated values,
// repeated parameters or both
func stationsQuery(c *gin.Context, name string) ([]int, bool) {
	stations := []int{}
	for _, value := range c.QueryArray(name) {
		for _, field := range strings.Split(value, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParamType, fmt.Sprintf("%s must be a list of numbers", name)), err)
				return nil, false
			}
			stations = append(stations, n)
		}
	}

	if len(stations) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParameters, fmt.Sprintf("%s is required", name)))
		return nil, false
	}
	return stations, true
}
