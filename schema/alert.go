package schema

import (
	"bytes"
	"encoding/json"
)

var emptyObject = []byte("{}")

// PersonSummary is a covered person as listed by the station coverage alert
type PersonSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// CoverageResult lists the persons covered by a station with their age bands.
// A result without persons is encoded as an empty object.
type CoverageResult struct {
	Persons  []PersonSummary `json:"persons"`
	Adults   int             `json:"adults"`
	Children int             `json:"children"`
}

// Empty reports whether no person is covered
func (r CoverageResult) Empty() bool {
	return len(r.Persons) == 0
}

func (r CoverageResult) MarshalJSON() ([]byte, error) {
	if r.Empty() {
		return emptyObject, nil
	}
	type coverage CoverageResult
	return json.Marshal(coverage(r))
}

// ChildAlert is a child living at an address with the rest of its household
type ChildAlert struct {
	FirstName             string   `json:"firstName"`
	LastName              string   `json:"lastName"`
	Age                   int      `json:"age"`
	OtherHouseholdMembers []string `json:"otherHouseholdMembers"`
}

// ChildAlertResult is encoded as a list of children, or an empty object when
// no child lives at the address.
type ChildAlertResult struct {
	Children []ChildAlert
}

func (r ChildAlertResult) Empty() bool {
	return len(r.Children) == 0
}

func (r ChildAlertResult) MarshalJSON() ([]byte, error) {
	if r.Empty() {
		return emptyObject, nil
	}
	return json.Marshal(r.Children)
}

// PhoneAlertResult always carries the phones list, possibly empty
type PhoneAlertResult struct {
	Phones []string `json:"phones"`
}

func (r PhoneAlertResult) MarshalJSON() ([]byte, error) {
	phones := r.Phones
	if phones == nil {
		phones = []string{}
	}
	return json.Marshal(struct {
		Phones []string `json:"phones"`
	}{phones})
}

// ResidentDetail is a resident enriched with its medical record
type ResidentDetail struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Phone       string   `json:"phone"`
	Age         int      `json:"age"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// FireResult is the station serving an address and the residents there.
// An address without residents is encoded as an empty object.
type FireResult struct {
	Station   int              `json:"station"`
	Residents []ResidentDetail `json:"residents"`
}

func (r FireResult) Empty() bool {
	return len(r.Residents) == 0
}

func (r FireResult) MarshalJSON() ([]byte, error) {
	if r.Empty() {
		return emptyObject, nil
	}
	type fire FireResult
	return json.Marshal(fire(r))
}

// Household groups the residents of one address
type Household struct {
	Address   string
	Residents []ResidentDetail
}

// FloodResult maps every address covered by the requested stations to its
// residents. Addresses keep the order they were found in.
type FloodResult struct {
	Households []Household
}

func (r FloodResult) Empty() bool {
	return len(r.Households) == 0
}

func (r FloodResult) MarshalJSON() ([]byte, error) {
	if r.Empty() {
		return emptyObject, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, h := range r.Households {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(h.Address)
		if err != nil {
			return nil, err
		}
		residents := h.Residents
		if residents == nil {
			residents = []ResidentDetail{}
		}
		value, err := json.Marshal(residents)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PersonInfo is a person enriched with its medical record
type PersonInfo struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Address     string   `json:"address"`
	Email       string   `json:"email"`
	Age         int      `json:"age"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// PersonInfoResult is encoded as a list, or an empty object when no person
// carries the last name.
type PersonInfoResult struct {
	Persons []PersonInfo
}

func (r PersonInfoResult) Empty() bool {
	return len(r.Persons) == 0
}

func (r PersonInfoResult) MarshalJSON() ([]byte, error) {
	if r.Empty() {
		return emptyObject, nil
	}
	return json.Marshal(r.Persons)
}

// CommunityEmailResult lists the distinct emails of a city, or an empty object
type CommunityEmailResult struct {
	Emails []string `json:"emails"`
}

func (r CommunityEmailResult) Empty() bool {
	return len(r.Emails) == 0
}

func (r CommunityEmailResult) MarshalJSON() ([]byte, error) {
	if r.Empty() {
		return emptyObject, nil
	}
	type emails CommunityEmailResult
	return json.Marshal(emails(r))
}
