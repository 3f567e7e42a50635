package custom

import "treeparse/store"

// Points are written as [lat, lng] pairs.
func readGeoPoint(pair [2]float64) store.GeoPoint {
	return store.GeoPoint{Lat: pair[0], Lng: pair[1]}
}
