package scraper

import "strings"

// Criterion constructors. Each source declares its own list in the factory
// because the sites expose different fields; the lists are not meant to be
// uniform across sources.

// HasPhone is satisfied when the phone field is non-empty. Sources that
// default the field before classification satisfy this whenever a card was
// extracted at all.
func HasPhone() Criterion {
	return func(l Listing) bool { return l.Phone != "" }
}

// HasRealPhone is satisfied only by a phone value past the default
func HasRealPhone() Criterion {
	return func(l Listing) bool { return l.Phone != "" && l.Phone != notAvailable }
}

// HasHours is satisfied when the hours field is non-empty
func HasHours() Criterion {
	return func(l Listing) bool { return l.Hours != "" }
}

// HoursContainOpen is satisfied when the hours text mentions being open
func HoursContainOpen() Criterion {
	return func(l Listing) bool {
		return l.Hours != "" && strings.Contains(strings.ToLower(l.Hours), "open")
	}
}

// HasReviews is satisfied when the review count reaches the minimum
func HasReviews(min int) Criterion {
	return func(l Listing) bool { return l.ReviewCount >= min && l.ReviewCount > 0 }
}

// RatingAtLeast is satisfied when a rating is present and reaches the minimum
func RatingAtLeast(min float64) Criterion {
	return func(l Listing) bool { return l.Rating != nil && *l.Rating >= min }
}

// HasRealAddress is satisfied only by an address value past the default
func HasRealAddress() Criterion {
	return func(l Listing) bool { return l.Address != "" && l.Address != notAvailable }
}

// HasRealEmail is satisfied only by an email value past the default
func HasRealEmail() Criterion {
	return func(l Listing) bool { return l.Email != "" && l.Email != notAvailable }
}

// AlwaysVisible is the maps source's unconditional point for a listing being
// rendered at all
func AlwaysVisible() Criterion {
	return func(Listing) bool { return true }
}
