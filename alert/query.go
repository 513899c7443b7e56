package alert

import (
	"time"

	"github.com/bitmark-inc/safetynet-alerts/consts"
	"github.com/bitmark-inc/safetynet-alerts/schema"
	"github.com/bitmark-inc/safetynet-alerts/utils"
)

func coverage(ds schema.Dataset, station int, now time.Time) schema.CoverageResult {
	addresses := stationAddresses(ds, station)
	records := newRecordIndex(ds)

	result := schema.CoverageResult{Persons: []schema.PersonSummary{}}
	for _, p := range ds.Persons {
		if _, ok := addresses[utils.Normalize(p.Address)]; !ok {
			continue
		}

		result.Persons = append(result.Persons, schema.PersonSummary{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Address:   p.Address,
			Phone:     p.Phone,
		})

		age := records.age(p, now)
		switch {
		case utils.IsChild(age):
			result.Children++
		case utils.IsAdult(age):
			result.Adults++
		}
	}
	return result
}

func childAlert(ds schema.Dataset, address string, now time.Time) schema.ChildAlertResult {
	records := newRecordIndex(ds)
	household := personsAt(ds, address)

	result := schema.ChildAlertResult{Children: []schema.ChildAlert{}}
	for i, p := range household {
		age := records.age(p, now)
		if !utils.IsChild(age) {
			continue
		}

		members := []string{}
		for j, other := range household {
			if j != i {
				members = append(members, other.FullName())
			}
		}

		result.Children = append(result.Children, schema.ChildAlert{
			FirstName:             p.FirstName,
			LastName:              p.LastName,
			Age:                   age,
			OtherHouseholdMembers: members,
		})
	}
	return result
}

func phoneAlert(ds schema.Dataset, station int) schema.PhoneAlertResult {
	addresses := stationAddresses(ds, station)

	phones := newOrderedSet()
	for _, p := range ds.Persons {
		if _, ok := addresses[utils.Normalize(p.Address)]; ok {
			phones.add(p.Phone, p.Phone)
		}
	}
	return schema.PhoneAlertResult{Phones: phones.values()}
}

func fire(ds schema.Dataset, address string, now time.Time) schema.FireResult {
	records := newRecordIndex(ds)

	result := schema.FireResult{
		Station:   consts.UnknownStation,
		Residents: residentsAt(ds, records, address, now),
	}
	for _, f := range ds.Firestations {
		if utils.SameKey(f.Address, address) {
			result.Station = f.Station
			break
		}
	}
	return result
}

func flood(ds schema.Dataset, stations []int, now time.Time) schema.FloodResult {
	wanted := make(map[int]struct{}, len(stations))
	for _, s := range stations {
		wanted[s] = struct{}{}
	}

	addresses := newOrderedSet()
	for _, f := range ds.Firestations {
		if _, ok := wanted[f.Station]; ok {
			addresses.add(utils.Normalize(f.Address), f.Address)
		}
	}

	records := newRecordIndex(ds)
	result := schema.FloodResult{Households: []schema.Household{}}
	for _, address := range addresses.values() {
		result.Households = append(result.Households, schema.Household{
			Address:   address,
			Residents: residentsAt(ds, records, address, now),
		})
	}
	return result
}

func personInfo(ds schema.Dataset, lastName string, now time.Time) schema.PersonInfoResult {
	records := newRecordIndex(ds)

	result := schema.PersonInfoResult{Persons: []schema.PersonInfo{}}
	for _, p := range ds.Persons {
		if !utils.SameKey(p.LastName, lastName) {
			continue
		}

		r, _ := records.find(p)
		result.Persons = append(result.Persons, schema.PersonInfo{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Address:     p.Address,
			Email:       p.Email,
			Age:         records.age(p, now),
			Medications: nonNil(r.Medications),
			Allergies:   nonNil(r.Allergies),
		})
	}
	return result
}

func communityEmail(ds schema.Dataset, city string) schema.CommunityEmailResult {
	emails := newOrderedSet()
	for _, p := range ds.Persons {
		if utils.SameKey(p.City, city) {
			emails.add(p.Email, p.Email)
		}
	}
	return schema.CommunityEmailResult{Emails: emails.values()}
}

// stationAddresses returns the normalized addresses mapped to a station
func stationAddresses(ds schema.Dataset, station int) map[string]struct{} {
	addresses := map[string]struct{}{}
	for _, f := range ds.Firestations {
		if f.Station == station {
			addresses[utils.Normalize(f.Address)] = struct{}{}
		}
	}
	return addresses
}

func personsAt(ds schema.Dataset, address string) []schema.Person {
	persons := []schema.Person{}
	for _, p := range ds.Persons {
		if utils.SameKey(p.Address, address) {
			persons = append(persons, p)
		}
	}
	return persons
}

func residentsAt(ds schema.Dataset, records recordIndex, address string, now time.Time) []schema.ResidentDetail {
	residents := []schema.ResidentDetail{}
	for _, p := range personsAt(ds, address) {
		r, _ := records.find(p)
		residents = append(residents, schema.ResidentDetail{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Phone:       p.Phone,
			Age:         records.age(p, now),
			Medications: nonNil(r.Medications),
			Allergies:   nonNil(r.Allergies),
		})
	}
	return residents
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
