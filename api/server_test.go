package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/safetynet-alerts/store"
	"github.com/bitmark-inc/safetynet-alerts/store/mocks"
)

const fixture = `{
  "persons": [
    {"firstName":"John","lastName":"Boyd","address":"1509 Culver St","city":"Culver","zip":"97451","phone":"841-874-6512","email":"jaboyd@email.com"},
    {"firstName":"Tenley","lastName":"Boyd","address":"1509 Culver St","city":"Culver","zip":"97451","phone":"841-874-6512","email":"tenz@email.com"},
    {"firstName":"Jonanathan","lastName":"Marrack","address":"29 15th St","city":"Culver","zip":"97451","phone":"841-874-6513","email":"drk@email.com"}
  ],
  "firestations": [
    {"address":"1509 Culver St","station":"3"},
    {"address":"29 15th St","station":"2"},
    {"address":"834 Binoc Ave","station":"3"}
  ],
  "medicalrecords": [
    {"firstName":"John","lastName":"Boyd","birthdate":"03/06/1984","medications":["aznol:350mg"],"allergies":["nillacilan"]},
    {"firstName":"Tenley","lastName":"Boyd","birthdate":"02/18/2012","medications":[],"allergies":["peanut"]}
  ]
}`

type ServerTestSuite struct {
	suite.Suite
	store  *store.DataStore
	router *gin.Engine
}

func (s *ServerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *ServerTestSuite) SetupTest() {
	viper.Set("server.apikey.admin", "")
	s.store = store.NewDataStore(store.NewMemoryBackend([]byte(fixture)), nil)
	s.Require().NoError(s.store.Load())
	s.router = NewServer(s.store).setupRouter()
}

func (s *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) errorBody(w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *ServerTestSuite) TestCoverage() {
	w := s.do("GET", "/firestation?stationNumber=3", "")
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Persons  []map[string]string `json:"persons"`
		Adults   int                 `json:"adults"`
		Children int                 `json:"children"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Persons, 2)
	s.Equal(1, resp.Adults)
	s.Equal(1, resp.Children)
}

func (s *ServerTestSuite) TestCoverageEmpty() {
	w := s.do("GET", "/firestation?stationNumber=42", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq("{}", w.Body.String())
}

func (s *ServerTestSuite) TestCoverageBadParameter() {
	w := s.do("GET", "/firestation?stationNumber=three", "")
	s.Equal(http.StatusBadRequest, w.Code)
	resp := s.errorBody(w)
	s.Equal(int64(1012), resp.Code)
	s.Equal(http.StatusBadRequest, resp.Status)
	s.Equal("Bad Request", resp.Error)
	s.Equal("/firestation", resp.Path)
	s.NotEmpty(resp.Timestamp)

	w = s.do("GET", "/firestation", "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1010), s.errorBody(w).Code)
}

func (s *ServerTestSuite) TestChildAlert() {
	w := s.do("GET", "/childAlert?address=1509%20Culver%20St", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[{"firstName":"Tenley","lastName":"Boyd","age":`+jsonAge(s, w)+`,"otherHouseholdMembers":["John Boyd"]}]`, w.Body.String())

	w = s.do("GET", "/childAlert?address=29%2015th%20St", "")
	s.JSONEq("{}", w.Body.String())
}

func jsonAge(s *ServerTestSuite, w *httptest.ResponseRecorder) string {
	var children []struct {
		Age json.Number `json:"age"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &children))
	s.Require().Len(children, 1)
	return children[0].Age.String()
}

func (s *ServerTestSuite) TestPhoneAlert() {
	w := s.do("GET", "/phoneAlert?firestation=3", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"phones":["841-874-6512"]}`, w.Body.String())

	w = s.do("GET", "/phoneAlert?firestation=42", "")
	s.JSONEq(`{"phones":[]}`, w.Body.String())
}

func (s *ServerTestSuite) TestFire() {
	w := s.do("GET", "/fire?address=29%2015th%20St", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"station":2,"residents":[{"firstName":"Jonanathan","lastName":"Marrack","phone":"841-874-6513","age":-1,"medications":[],"allergies":[]}]}`, w.Body.String())

	w = s.do("GET", "/fire?address=834%20Binoc%20Ave", "")
	s.JSONEq("{}", w.Body.String())

	w = s.do("GET", "/fire", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestFlood() {
	w := s.do("GET", "/flood/stations?stations=2,3", "")
	s.Equal(http.StatusOK, w.Code)

	var resp map[string][]map[string]interface{}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp, 3)
	s.Len(resp["1509 Culver St"], 2)
	s.Len(resp["834 Binoc Ave"], 0)

	w = s.do("GET", "/flood/stations?stations=9", "")
	s.JSONEq("{}", w.Body.String())

	w = s.do("GET", "/flood/stations?stations=a,2", "")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do("GET", "/flood/stations", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestPersonInfoAndCommunityEmail() {
	w := s.do("GET", "/personInfo?lastName=BOYD", "")
	s.Equal(http.StatusOK, w.Code)
	var persons []map[string]interface{}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &persons))
	s.Len(persons, 2)

	w = s.do("GET", "/personInfo?lastName=Nobody", "")
	s.JSONEq("{}", w.Body.String())

	w = s.do("GET", "/communityEmail?city=culver", "")
	s.JSONEq(`{"emails":["jaboyd@email.com","tenz@email.com","drk@email.com"]}`, w.Body.String())

	w = s.do("GET", "/communityEmail?city=Atlantis", "")
	s.JSONEq("{}", w.Body.String())
}

func (s *ServerTestSuite) TestPersonLifecycle() {
	body := `{"firstName":"Alice","lastName":"Doe","address":"1 Main St","city":"Culver","zip":"97451","phone":"555","email":"a@x.com"}`

	w := s.do("POST", "/person", body)
	s.Equal(http.StatusCreated, w.Code)
	s.JSONEq(body, w.Body.String())

	w = s.do("POST", "/person", body)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(int64(1101), s.errorBody(w).Code)

	w = s.do("PUT", "/person", `{"firstName":"alice","lastName":"DOE","city":"Paris"}`)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"firstName":"Alice","lastName":"Doe","address":"","city":"Paris","zip":"","phone":"","email":""}`, w.Body.String())

	w = s.do("GET", "/person?firstName=Alice&lastName=Doe", "")
	s.Equal(http.StatusOK, w.Code)

	w = s.do("DELETE", "/person?firstName=Alice&lastName=Doe", "")
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do("GET", "/person?firstName=Alice&lastName=Doe", "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(int64(1100), s.errorBody(w).Code)

	w = s.do("DELETE", "/person?firstName=Alice&lastName=Doe", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerTestSuite) TestPersonValidation() {
	w := s.do("POST", "/person", `{"firstName":"","lastName":"Doe"}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1010), s.errorBody(w).Code)

	w = s.do("POST", "/person", `{"firstName":`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1011), s.errorBody(w).Code)

	w = s.do("PUT", "/person", `{"firstName":"Nobody","lastName":"Here"}`)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerTestSuite) TestFirestationLifecycle() {
	w := s.do("POST", "/firestation", `{"address":"1 Main St","station":"4"}`)
	s.Equal(http.StatusCreated, w.Code)
	s.JSONEq(`{"address":"1 Main St","station":4}`, w.Body.String())

	w = s.do("POST", "/firestation", `{"address":"1 main st","station":5}`)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(int64(1201), s.errorBody(w).Code)

	w = s.do("PUT", "/firestation", `{"address":"1 MAIN ST","station":5}`)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"address":"1 Main St","station":5}`, w.Body.String())

	w = s.do("GET", "/firestation?address=1%20Main%20St", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"address":"1 Main St","station":5}`, w.Body.String())

	w = s.do("DELETE", "/firestation?addressOrStation=3", "")
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do("GET", "/firestation/all", "")
	s.JSONEq(`[{"address":"29 15th St","station":2},{"address":"1 Main St","station":5}]`, w.Body.String())

	w = s.do("DELETE", "/firestation?address=29%2015th%20St", "")
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do("DELETE", "/firestation?station=3", "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(int64(1200), s.errorBody(w).Code)

	w = s.do("DELETE", "/firestation", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestMedicalRecordLifecycle() {
	w := s.do("POST", "/medicalRecord", `{"firstName":"John","lastName":"Boyd","birthdate":"01/01/2000"}`)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(int64(1301), s.errorBody(w).Code)

	w = s.do("PUT", "/medicalRecord", `{"firstName":"JOHN","lastName":"boyd","birthdate":"01/01/2000","medications":[],"allergies":["dust"]}`)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"firstName":"John","lastName":"Boyd","birthdate":"01/01/2000","medications":[],"allergies":["dust"]}`, w.Body.String())

	w = s.do("GET", "/medicalRecord?firstName=john&lastName=boyd", "")
	s.Equal(http.StatusOK, w.Code)

	w = s.do("DELETE", "/medicalRecord?firstName=John&lastName=Boyd", "")
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do("GET", "/medicalRecord?firstName=John&lastName=Boyd", "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(int64(1300), s.errorBody(w).Code)

	w = s.do("GET", "/medicalRecord/all", "")
	s.Equal(http.StatusOK, w.Code)
	var records []map[string]interface{}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &records))
	s.Len(records, 1)
}

func (s *ServerTestSuite) TestMedicalRecordWithoutLists() {
	w := s.do("POST", "/medicalRecord", `{"firstName":"Alice","lastName":"Doe","birthdate":"01/01/1990"}`)
	s.Equal(http.StatusCreated, w.Code)
	s.JSONEq(`{"firstName":"Alice","lastName":"Doe","birthdate":"01/01/1990","medications":[],"allergies":[]}`, w.Body.String())

	w = s.do("GET", "/medicalRecord?firstName=alice&lastName=doe", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"firstName":"Alice","lastName":"Doe","birthdate":"01/01/1990","medications":[],"allergies":[]}`, w.Body.String())
}

func (s *ServerTestSuite) TestAdminRequiresAPIToken() {
	viper.Set("server.apikey.admin", "secret")
	defer viper.Set("server.apikey.admin", "")
	router := NewServer(s.store).setupRouter()

	req := httptest.NewRequest("DELETE", "/person?firstName=John&lastName=Boyd", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(int64(1001), s.errorBody(w).Code)

	req = httptest.NewRequest("DELETE", "/person?firstName=John&lastName=Boyd", nil)
	req.Header.Set("Api-Token", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	s.Equal(http.StatusNoContent, w.Code)

	req = httptest.NewRequest("GET", "/phoneAlert?firestation=3", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestHealthzAndMetrics() {
	w := s.do("GET", "/healthz", "")
	s.Equal(http.StatusOK, w.Code)

	var health struct {
		Status   string         `json:"status"`
		Revision string         `json:"revision"`
		Records  map[string]int `json:"records"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &health))
	s.Equal("OK", health.Status)
	s.Equal(s.store.Revision(), health.Revision)
	s.Equal(3, health.Records["persons"])

	s.do("GET", "/fire?address=1509%20Culver%20St", "")
	w = s.do("GET", "/metrics", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `safetynet_records{collection="persons"} 3`)
	s.Contains(w.Body.String(), `safetynet_http_requests_total{method="GET",route="/fire",status="200"} 1`)
}

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestStorageFailureIsServerError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	backend := mocks.NewMockBackend(ctl)
	backend.EXPECT().Name().Return("mock").AnyTimes()
	backend.EXPECT().Read(gomock.Any()).Return([]byte(fixture), nil)
	backend.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)
	backend.EXPECT().Ping(gomock.Any()).Return(errors.New("unreachable")).Times(1)

	ds := store.NewDataStore(backend, nil)
	assert.NoError(t, ds.Load())

	gin.SetMode(gin.TestMode)
	viper.Set("server.apikey.admin", "")
	router := NewServer(ds).setupRouter()

	req := httptest.NewRequest("DELETE", "/person?firstName=John&lastName=Boyd", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1000), resp.Code)

	_, ok := ds.FindPerson("John", "Boyd")
	assert.True(t, ok)

	req = httptest.NewRequest("GET", "/healthz", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
