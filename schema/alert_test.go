package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func marshal(t *testing.T, v interface{}) string {
	b, err := json.Marshal(v)
	assert.NoError(t, err)
	return string(b)
}

func TestEmptyResultsEncoding(t *testing.T) {
	assert.Equal(t, "{}", marshal(t, CoverageResult{}))
	assert.Equal(t, "{}", marshal(t, ChildAlertResult{}))
	assert.Equal(t, "{}", marshal(t, FireResult{Station: 3}))
	assert.Equal(t, "{}", marshal(t, FloodResult{}))
	assert.Equal(t, "{}", marshal(t, PersonInfoResult{}))
	assert.Equal(t, "{}", marshal(t, CommunityEmailResult{}))
	assert.Equal(t, `{"phones":[]}`, marshal(t, PhoneAlertResult{}))
}

func TestCoverageResultEncoding(t *testing.T) {
	r := CoverageResult{
		Persons: []PersonSummary{
			{FirstName: "John", LastName: "Boyd", Address: "1509 Culver St", Phone: "841-874-6512"},
		},
		Adults:   1,
		Children: 0,
	}
	assert.JSONEq(t, `{
		"persons": [{"firstName":"John","lastName":"Boyd","address":"1509 Culver St","phone":"841-874-6512"}],
		"adults": 1,
		"children": 0
	}`, marshal(t, r))
}

func TestChildAlertResultEncoding(t *testing.T) {
	r := ChildAlertResult{Children: []ChildAlert{
		{FirstName: "Tenley", LastName: "Boyd", Age: 12, OtherHouseholdMembers: []string{"John Boyd"}},
	}}
	assert.JSONEq(t, `[{"firstName":"Tenley","lastName":"Boyd","age":12,"otherHouseholdMembers":["John Boyd"]}]`, marshal(t, r))
}

func TestFloodResultKeepsAddressOrder(t *testing.T) {
	r := FloodResult{Households: []Household{
		{Address: "29 15th St", Residents: []ResidentDetail{
			{FirstName: "Jonanathan", LastName: "Marrack", Phone: "841-874-6513", Age: 35, Medications: []string{}, Allergies: []string{}},
		}},
		{Address: "1509 Culver St"},
	}}

	out := marshal(t, r)
	assert.Equal(t, `{"29 15th St":[{"firstName":"Jonanathan","lastName":"Marrack","phone":"841-874-6513","age":35,"medications":[],"allergies":[]}],"1509 Culver St":[]}`, out)
}

func TestCommunityEmailResultEncoding(t *testing.T) {
	r := CommunityEmailResult{Emails: []string{"jaboyd@email.com"}}
	assert.JSONEq(t, `{"emails":["jaboyd@email.com"]}`, marshal(t, r))
}
