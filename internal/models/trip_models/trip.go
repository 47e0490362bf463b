package trip_models

import (
	"tripdoc/pkg/utils"
)

const DefaultLocationTime = "08:00"

// TripLocation is one stop inside a day. PlaceID is the mapping provider's
// opaque identifier; empty means the name was never resolved.
type TripLocation struct {
	Name    string `json:"name"`
	Time    string `json:"time"`
	PlaceID string `json:"place_id"`
}

type TripDay struct {
	Locations []TripLocation `json:"locations"`
}

// TripData is the draft itinerary carried across the wizard steps.
// Images and Introductions are keyed by location NAME: two locations sharing
// a display name anywhere in the trip share one entry. Callers rely on this.
type TripData struct {
	Days          []TripDay         `json:"days"`
	Images        map[string]string `json:"images,omitempty"`
	Introductions map[string]string `json:"introductions,omitempty"`
}

// NewDraft returns the empty starting draft: one day, one blank location.
func NewDraft() TripData {
	return TripData{
		Days: []TripDay{{Locations: []TripLocation{blankLocation(DefaultLocationTime)}}},
	}
}

func blankLocation(timeValue string) TripLocation {
	return TripLocation{Name: "", Time: timeValue, PlaceID: ""}
}

// Clone deep-copies the draft so edits never alias a previous value.
func (t TripData) Clone() TripData {
	out := TripData{Days: make([]TripDay, len(t.Days))}
	for i, day := range t.Days {
		locations := make([]TripLocation, len(day.Locations))
		copy(locations, day.Locations)
		out.Days[i] = TripDay{Locations: locations}
	}
	if t.Images != nil {
		out.Images = make(map[string]string, len(t.Images))
		for k, v := range t.Images {
			out.Images[k] = v
		}
	}
	if t.Introductions != nil {
		out.Introductions = make(map[string]string, len(t.Introductions))
		for k, v := range t.Introductions {
			out.Introductions[k] = v
		}
	}
	return out
}

// LocationCount counts locations across all days.
func (t TripData) LocationCount() int {
	n := 0
	for _, day := range t.Days {
		n += len(day.Locations)
	}
	return n
}

// Location returns the location at the given indexes, or false when either
// index is out of range.
func (t TripData) Location(dayIndex, locationIndex int) (TripLocation, bool) {
	if dayIndex < 0 || dayIndex >= len(t.Days) {
		return TripLocation{}, false
	}
	day := t.Days[dayIndex]
	if locationIndex < 0 || locationIndex >= len(day.Locations) {
		return TripLocation{}, false
	}
	return day.Locations[locationIndex], true
}

// HasLocationNamed reports whether any day contains a location with the name.
func (t TripData) HasLocationNamed(name string) bool {
	for _, day := range t.Days {
		for _, location := range day.Locations {
			if location.Name == name {
				return true
			}
		}
	}
	return false
}

// AddDay appends a new day holding one blank location at the default time.
func AddDay(draft TripData) TripData {
	out := draft.Clone()
	out.Days = append(out.Days, TripDay{Locations: []TripLocation{blankLocation(DefaultLocationTime)}})
	return out
}

// RemoveDay removes the day at dayIndex. Out-of-range indexes are a no-op;
// keeping at least one day around is UI policy, not enforced here.
func RemoveDay(draft TripData, dayIndex int) TripData {
	out := draft.Clone()
	if dayIndex < 0 || dayIndex >= len(out.Days) {
		return out
	}
	out.Days = append(out.Days[:dayIndex], out.Days[dayIndex+1:]...)
	return out
}

// AddLocation appends a blank location to the day. The default time is the
// previous location's time plus one hour, hour wrapping mod 24 with minutes
// preserved, or "08:00" when the day is empty.
func AddLocation(draft TripData, dayIndex int) TripData {
	out := draft.Clone()
	if dayIndex < 0 || dayIndex >= len(out.Days) {
		return out
	}
	day := &out.Days[dayIndex]
	timeValue := DefaultLocationTime
	if len(day.Locations) > 0 {
		last := day.Locations[len(day.Locations)-1]
		timeValue = utils.NextHour(last.Time, DefaultLocationTime)
	}
	day.Locations = append(day.Locations, blankLocation(timeValue))
	return out
}

// RemoveLocation removes one location. The day stays even when it ends up
// empty. Out-of-range indexes are a no-op.
func RemoveLocation(draft TripData, dayIndex, locationIndex int) TripData {
	out := draft.Clone()
	if dayIndex < 0 || dayIndex >= len(out.Days) {
		return out
	}
	day := &out.Days[dayIndex]
	if locationIndex < 0 || locationIndex >= len(day.Locations) {
		return out
	}
	day.Locations = append(day.Locations[:locationIndex], day.Locations[locationIndex+1:]...)
	return out
}

// Location fields addressable through SetLocationField.
const (
	FieldName    = "name"
	FieldTime    = "time"
	FieldPlaceID = "placeId"
)

// SetLocationField sets one field of one location. Unknown fields and
// out-of-range indexes leave the draft unchanged.
func SetLocationField(draft TripData, dayIndex, locationIndex int, field, value string) TripData {
	out := draft.Clone()
	if dayIndex < 0 || dayIndex >= len(out.Days) {
		return out
	}
	day := &out.Days[dayIndex]
	if locationIndex < 0 || locationIndex >= len(day.Locations) {
		return out
	}
	switch field {
	case FieldName:
		day.Locations[locationIndex].Name = value
	case FieldTime:
		day.Locations[locationIndex].Time = value
	case FieldPlaceID:
		day.Locations[locationIndex].PlaceID = value
	}
	return out
}

// MergeImages replaces the draft's image map wholesale with the given one.
// Entries absent from imagesByName are dropped, not preserved.
func MergeImages(draft TripData, imagesByName map[string]string) TripData {
	out := draft.Clone()
	out.Images = make(map[string]string, len(imagesByName))
	for k, v := range imagesByName {
		out.Images[k] = v
	}
	return out
}

// MergeIntroductions replaces the draft's introduction map wholesale.
func MergeIntroductions(draft TripData, introsByName map[string]string) TripData {
	out := draft.Clone()
	out.Introductions = make(map[string]string, len(introsByName))
	for k, v := range introsByName {
		out.Introductions[k] = v
	}
	return out
}
