package catalog

import "github.com/Dosada05/tournament-finder/models"

// Apply returns the tournaments satisfying every criterion in criteria.
// Unknown kinds and values of the wrong shape impose no constraint.
// The input slice is never modified.
func Apply(tournaments []models.Tournament, criteria models.FilterCriteria) []models.Tournament {
	result := make([]models.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if matchesAll(t, criteria) {
			result = append(result, t)
		}
	}
	return result
}

func matchesAll(t models.Tournament, criteria models.FilterCriteria) bool {
	for kind, value := range criteria {
		if !Matches(t, kind, value) {
			return false
		}
	}
	return true
}

// Matches reports whether t satisfies a single criterion.
func Matches(t models.Tournament, kind models.FilterKind, value any) bool {
	switch kind {
	case models.FilterGameType, models.FilterSkillLevel, models.FilterFormat, models.FilterLocation:
		tags, ok := tagSet(value)
		if !ok || len(tags) == 0 {
			return true
		}
		return tags.Contains(tagValue(t, kind))

	case models.FilterPrizePool:
		r, ok := value.(models.AmountRange)
		if !ok {
			return true
		}
		if r.Min != nil && t.PrizePool < *r.Min*1000 {
			return false
		}
		if r.Max != nil && t.PrizePool > *r.Max*1000 {
			return false
		}
		return true

	case models.FilterDateRange:
		r, ok := value.(models.DateRange)
		if !ok {
			return true
		}
		if r.Start != nil && t.StartDate.Before(*r.Start) {
			return false
		}
		if r.End != nil && t.StartDate.After(*r.End) {
			return false
		}
		return true

	case models.FilterEntryFee:
		opt, ok := entryFeeOption(value)
		if !ok {
			return true
		}
		switch opt {
		case models.EntryFeeFree:
			return t.EntryFee == 0
		case models.EntryFeePaid:
			return t.EntryFee > 0
		}
		return true
	}
	return true
}

// tagSet accepts both TagSet and a plain []string.
func tagSet(value any) (models.TagSet, bool) {
	switch v := value.(type) {
	case models.TagSet:
		return v, true
	case []string:
		return models.TagSet(v), true
	}
	return nil, false
}

// entryFeeOption accepts both EntryFeeOption and a plain string.
func entryFeeOption(value any) (models.EntryFeeOption, bool) {
	switch v := value.(type) {
	case models.EntryFeeOption:
		return v, true
	case string:
		return models.EntryFeeOption(v), true
	}
	return "", false
}

func tagValue(t models.Tournament, kind models.FilterKind) string {
	switch kind {
	case models.FilterGameType:
		return t.GameType
	case models.FilterSkillLevel:
		return t.SkillLevel
	case models.FilterFormat:
		return t.Format
	case models.FilterLocation:
		return t.Location
	}
	return ""
}
