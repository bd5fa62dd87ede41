package types

// Validation mirrors the insert schemas: required fields must be present and
// non-empty, defaults are applied, unknown fields have already been dropped by
// the JSON decode. There is no coercion beyond the stated defaults.

// ValidateInsertStop checks the required Stop fields and applies defaults.
// WalkingTimeMinutes defaults to 0 and ImageURL to null, both of which are the
// Go zero values already, so only the required strings are checked.
func ValidateInsertStop(p InsertStop) (InsertStop, error) {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return InsertStop{}, NewValidationError("stop", missing...)
	}
	return p, nil
}

// ValidateInsertItinerary checks the required Itinerary fields. The stops
// slice may be empty but must be present (non-nil).
func ValidateInsertItinerary(p InsertItinerary) (InsertItinerary, error) {
	var missing []string
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if p.Location == "" {
		missing = append(missing, "location")
	}
	if p.Stops == nil {
		missing = append(missing, "stops")
	}
	if len(missing) > 0 {
		return InsertItinerary{}, NewValidationError("itinerary", missing...)
	}
	return p, nil
}

// ValidateInsertGroundingChunk checks the required source fields.
func ValidateInsertGroundingChunk(p InsertGroundingChunk) (InsertGroundingChunk, error) {
	var missing []string
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.URL == "" {
		missing = append(missing, "url")
	}
	if p.Snippet == "" {
		missing = append(missing, "snippet")
	}
	if len(missing) > 0 {
		return InsertGroundingChunk{}, NewValidationError("grounding_chunk", missing...)
	}
	return p, nil
}

// ValidateInsertUser checks the required User fields.
func ValidateInsertUser(p InsertUser) (InsertUser, error) {
	var missing []string
	if p.Username == "" {
		missing = append(missing, "username")
	}
	if p.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return InsertUser{}, NewValidationError("user", missing...)
	}
	return p, nil
}
