package models

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// FilterKind names one criterion in the active filter set.
type FilterKind string

const (
	FilterGameType   FilterKind = "gameType"
	FilterSkillLevel FilterKind = "skillLevel"
	FilterFormat     FilterKind = "format"
	FilterLocation   FilterKind = "location"
	FilterPrizePool  FilterKind = "prizePool"
	FilterDateRange  FilterKind = "dateRange"
	FilterEntryFee   FilterKind = "entryFee"
)

// TagSet is the value of set-valued kinds (gameType, skillLevel, format, location).
type TagSet []string

func (s TagSet) Contains(v string) bool {
	for _, tag := range s {
		if tag == v {
			return true
		}
	}
	return false
}

// AmountRange bounds are expressed in thousands.
type AmountRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

type EntryFeeOption string

const (
	EntryFeeFree EntryFeeOption = "free"
	EntryFeePaid EntryFeeOption = "paid"
)

// FilterCriteria maps a filter kind to its kind-specific value:
// TagSet, AmountRange, DateRange or EntryFeeOption.
type FilterCriteria map[FilterKind]any

// Clone returns a shallow copy so callers can replace criteria without aliasing.
func (c FilterCriteria) Clone() FilterCriteria {
	out := make(FilterCriteria, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func IsSetKind(kind FilterKind) bool {
	switch kind {
	case FilterGameType, FilterSkillLevel, FilterFormat, FilterLocation:
		return true
	}
	return false
}

// UnmarshalJSON keeps only known kinds whose values decode; everything else is
// dropped without error.
func (c *FilterCriteria) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FilterCriteria, len(raw))
	for key, value := range raw {
		kind := FilterKind(key)
		switch {
		case IsSetKind(kind):
			var tags TagSet
			if err := json.Unmarshal(value, &tags); err == nil && len(tags) > 0 {
				out[kind] = tags
			}
		case kind == FilterPrizePool:
			var r AmountRange
			if err := json.Unmarshal(value, &r); err == nil && (r.Min != nil || r.Max != nil) {
				out[kind] = r
			}
		case kind == FilterDateRange:
			var r DateRange
			if err := json.Unmarshal(value, &r); err == nil && (r.Start != nil || r.End != nil) {
				out[kind] = r
			}
		case kind == FilterEntryFee:
			var opt EntryFeeOption
			if err := json.Unmarshal(value, &opt); err == nil && (opt == EntryFeeFree || opt == EntryFeePaid) {
				out[kind] = opt
			}
		}
	}
	*c = out
	return nil
}

// CriteriaFromQuery reads criteria from list query parameters:
// gameType, skillLevel, format, location (repeatable or comma separated),
// prizeMin, prizeMax, dateStart, dateEnd and entryFee. Malformed values are skipped.
func CriteriaFromQuery(q url.Values) FilterCriteria {
	c := FilterCriteria{}
	for _, kind := range []FilterKind{FilterGameType, FilterSkillLevel, FilterFormat, FilterLocation} {
		var tags TagSet
		for _, v := range q[string(kind)] {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					tags = append(tags, part)
				}
			}
		}
		if len(tags) > 0 {
			c[kind] = tags
		}
	}

	var prize AmountRange
	if v, ok := parseQueryAmount(q.Get("prizeMin")); ok {
		prize.Min = &v
	}
	if v, ok := parseQueryAmount(q.Get("prizeMax")); ok {
		prize.Max = &v
	}
	if prize.Min != nil || prize.Max != nil {
		c[FilterPrizePool] = prize
	}

	var dates DateRange
	if t, ok := parseQueryTime(q.Get("dateStart")); ok {
		dates.Start = &t
	}
	if t, ok := parseQueryTime(q.Get("dateEnd")); ok {
		dates.End = &t
	}
	if dates.Start != nil || dates.End != nil {
		c[FilterDateRange] = dates
	}

	switch opt := EntryFeeOption(q.Get("entryFee")); opt {
	case EntryFeeFree, EntryFeePaid:
		c[FilterEntryFee] = opt
	}
	return c
}

// parseQueryAmount rejects NaN and infinities, which ParseFloat accepts.
func parseQueryAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseQueryTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
