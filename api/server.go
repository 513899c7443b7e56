package api

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/safetynet-alerts/admin"
	"github.com/bitmark-inc/safetynet-alerts/alert"
	"github.com/bitmark-inc/safetynet-alerts/logmodule"
	"github.com/bitmark-inc/safetynet-alerts/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.RecordStore

	// Queries and record management
	alerts *alert.Engine
	admin  *admin.Service

	metrics *serverMetrics
}

// NewServer new instance of server
func NewServer(s store.RecordStore) *Server {
	return &Server{
		store:   s,
		alerts:  alert.NewEngine(s),
		admin:   admin.NewService(s),
		metrics: newServerMetrics(s),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(s.metrics.middleware())

	alertRoute := r.Group("")
	alertRoute.Use(logmodule.Ginrus("API"))
	alertRoute.Use(corsMiddleware(viper.GetStringSlice("cors.origins")))
	{
		alertRoute.GET("/firestation", s.firestation)
		alertRoute.GET("/childAlert", s.childAlert)
		alertRoute.GET("/phoneAlert", s.phoneAlert)
		alertRoute.GET("/fire", s.fire)
		alertRoute.GET("/flood/stations", s.flood)
		alertRoute.GET("/personInfo", s.personInfo)
		alertRoute.GET("/communityEmail", s.communityEmail)

		alertRoute.GET("/person", s.getPerson)
		alertRoute.GET("/person/all", s.listPersons)
		alertRoute.GET("/firestation/all", s.listFirestations)
		alertRoute.GET("/medicalRecord", s.getMedicalRecord)
		alertRoute.GET("/medicalRecord/all", s.listMedicalRecords)
	}

	adminRoute := r.Group("")
	adminRoute.Use(logmodule.Ginrus("Admin"))
	if key := viper.GetString("server.apikey.admin"); key != "" {
		adminRoute.Use(s.apikeyAuthentication(key))
	}
	{
		adminRoute.POST("/person", s.createPerson)
		adminRoute.PUT("/person", s.updatePerson)
		adminRoute.DELETE("/person", s.deletePerson)

		adminRoute.POST("/firestation", s.createFirestation)
		adminRoute.PUT("/firestation", s.updateFirestation)
		adminRoute.DELETE("/firestation", s.deleteFirestation)

		adminRoute.POST("/medicalRecord", s.createMedicalRecord)
		adminRoute.PUT("/medicalRecord", s.updateMedicalRecord)
		adminRoute.DELETE("/medicalRecord", s.deleteMedicalRecord)
	}

	r.GET("/metrics", s.metrics.handler())
	r.GET("/healthz", s.healthz)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return cors.New(config)
}

// apikeyAuthentication rejects requests not carrying the configured key in
// the Api-Token header
func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			abortWithEncoding(c, http.StatusForbidden, errorInvalidAPIToken)
			return
		}
		c.Next()
	}
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	sentry.CaptureException(err)
	if store.IsStorageError(err) {
		abortWithEncoding(c, http.StatusInternalServerError, errorStorage, err)
	} else {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
	return true
}

// abortWithServiceError maps an admin outcome to its status code. Errors of
// unknown kind are reported as server errors.
func abortWithServiceError(c *gin.Context, err error, notFound, conflict ErrorResponse) {
	switch {
	case errors.Is(err, admin.ErrValidation):
		abortWithEncoding(c, http.StatusBadRequest, withMessage(errorInvalidParameters, err.Error()), err)
	case errors.Is(err, admin.ErrNotFound):
		abortWithEncoding(c, http.StatusNotFound, withMessage(notFound, err.Error()), err)
	case errors.Is(err, admin.ErrConflict):
		abortWithEncoding(c, http.StatusConflict, withMessage(conflict, err.Error()), err)
	default:
		shouldInterupt(err, c)
	}
}

func (s *Server) healthz(c *gin.Context) {
	// Ping storage
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	persons, firestations, medicalRecords := s.store.Counts()
	c.JSON(http.StatusOK, gin.H{
		"status":   "OK",
		"version":  viper.GetString("server.version"),
		"revision": s.store.Revision(),
		"records": gin.H{
			"persons":        persons,
			"firestations":   firestations,
			"medicalrecords": medicalRecords,
		},
	})
}
