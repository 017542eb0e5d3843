// Package services implements the record stores behind the farmer support
// API: users, the durable login session, per-user scheme enrollment, and the
// crop and field-visit collections. Every collection is a JSON document under
// a fixed key in a storage.Store; writes are whole-collection
// read-modify-write, serialised per store.
package services

// Storage keys. Collections are JSON arrays, the session and scheme slots
// are single JSON objects.
const (
	keyUsers        = "users"
	keyCurrentUser  = "current_user"
	keySchemePrefix = "selected_scheme_"
	keyFarmerCrops  = "farmer_crops"
	keyFieldVisits  = "field_visits"
)
