// Package alert answers the emergency queries by joining persons, fire
// station mappings and medical records.
package alert

import (
	"time"

	"github.com/bitmark-inc/safetynet-alerts/schema"
	"github.com/bitmark-inc/safetynet-alerts/store"
)

// Engine runs every query against a snapshot of the record store
type Engine struct {
	store store.RecordStore
	now   func() time.Time
}

func NewEngine(s store.RecordStore) *Engine {
	return &Engine{store: s, now: time.Now}
}

// NewEngineWithClock returns an engine computing ages relative to now()
func NewEngineWithClock(s store.RecordStore, now func() time.Time) *Engine {
	return &Engine{store: s, now: now}
}

// Coverage lists the persons served by a station with their adult and
// children counts.
func (e *Engine) Coverage(station int) schema.CoverageResult {
	return coverage(e.store.Snapshot(), station, e.now())
}

// ChildAlert lists the children living at an address
func (e *Engine) ChildAlert(address string) schema.ChildAlertResult {
	return childAlert(e.store.Snapshot(), address, e.now())
}

// PhoneAlert lists the distinct phones of the persons served by a station
func (e *Engine) PhoneAlert(station int) schema.PhoneAlertResult {
	return phoneAlert(e.store.Snapshot(), station)
}

// Fire returns the station serving an address and its residents
func (e *Engine) Fire(address string) schema.FireResult {
	return fire(e.store.Snapshot(), address, e.now())
}

// Flood groups by address the residents served by any of the stations
func (e *Engine) Flood(stations []int) schema.FloodResult {
	return flood(e.store.Snapshot(), stations, e.now())
}

// PersonInfo lists the persons carrying a last name
func (e *Engine) PersonInfo(lastName string) schema.PersonInfoResult {
	return personInfo(e.store.Snapshot(), lastName, e.now())
}

// CommunityEmail lists the distinct emails of a city's residents
func (e *Engine) CommunityEmail(city string) schema.CommunityEmailResult {
	return communityEmail(e.store.Snapshot(), city)
}
