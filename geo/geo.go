// Package geo resolves shipment addresses to map coordinates using a fixed
// state-centroid table, and clusters nearby locations by zoom level. This is
// display plumbing, not a geocoder.
package geo

import (
	"math"
	"regexp"

	"freightdash/models"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is one plotted point with the shipments parked on it.
type Location struct {
	Coordinates
	State     string   `json:"state"`
	Shipments []string `json:"shipments"` // shipment ids
}

// Cluster groups locations within a zoom-dependent radius.
type Cluster struct {
	Coordinates
	Locations []Location `json:"locations"`
	Count     int        `json:"count"`
}

var stateRe = regexp.MustCompile(`,\s*([A-Z]{2})\s*\d{5}`)

var stateCoordinates = map[string]Coordinates{
	"AL": {32.806671, -86.791130}, "AZ": {33.729759, -111.431221},
	"AR": {34.969704, -92.373123}, "CA": {36.116203, -119.681564},
	"CO": {39.059811, -105.311104}, "CT": {41.597782, -72.755371},
	"DC": {38.897438, -77.026817}, "DE": {39.318523, -75.507141},
	"FL": {27.766279, -81.686783}, "GA": {33.040619, -83.643074},
	"ID": {44.240459, -114.478828}, "IL": {40.349457, -88.986137},
	"IN": {39.849426, -86.258278}, "IA": {42.011539, -93.210526},
	"KS": {38.526600, -96.726486}, "KY": {37.668140, -84.670067},
	"LA": {31.169546, -91.867805}, "ME": {44.693947, -69.381927},
	"MD": {39.063946, -76.802101}, "MA": {42.230171, -71.530106},
	"MI": {43.326618, -84.536095}, "MN": {45.694454, -93.900192},
	"MS": {32.741646, -89.678696}, "MO": {38.456085, -92.288368},
	"MT": {46.921925, -110.454353}, "NE": {41.125370, -98.268082},
	"NV": {38.313515, -117.055374}, "NH": {43.452492, -71.563896},
	"NJ": {40.298904, -74.521011}, "NM": {34.840515, -106.248482},
	"NY": {42.165726, -74.948051}, "NC": {35.630066, -79.806419},
	"ND": {47.528912, -99.784012}, "OH": {40.388783, -82.764915},
	"OK": {35.565342, -96.928917}, "OR": {44.572021, -122.070938},
	"PA": {40.590752, -77.209755}, "RI": {41.680893, -71.511780},
	"SC": {33.856892, -80.945007}, "SD": {44.299782, -99.438828},
	"TN": {35.747845, -86.692345}, "TX": {31.054487, -97.563461},
	"UT": {40.150032, -111.862434}, "VT": {44.045876, -72.710686},
	"VA": {37.769337, -78.169968}, "WA": {47.400902, -121.490494},
	"WV": {38.491226, -80.954453}, "WI": {44.268543, -89.616508},
	"WY": {42.755966, -107.302490},
}

// ExtractState pulls the two-letter state code preceding the zip from a
// dashboard address string. Empty when the address does not match.
func ExtractState(address string) string {
	m := stateRe.FindStringSubmatch(address)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// Locations plots shipments by shipper state. Shipments whose address yields
// no known state are skipped, matching the fail-open filter posture.
func Locations(shipments []models.Shipment) []Location {
	index := make(map[string]int)
	var out []Location
	for _, s := range shipments {
		state := ExtractState(s.ShipperAddress)
		coords, ok := stateCoordinates[state]
		if !ok {
			continue
		}
		if i, seen := index[state]; seen {
			out[i].Shipments = append(out[i].Shipments, s.ID)
			continue
		}
		index[state] = len(out)
		out = append(out, Location{Coordinates: coords, State: state, Shipments: []string{s.ID}})
	}
	return out
}

// Clusters merges locations whose grid cells coincide at the given zoom.
// Low zoom levels use a wider radius so the map stays readable.
func Clusters(locations []Location, zoom int) []Cluster {
	if zoom > 5 {
		out := make([]Cluster, len(locations))
		for i, loc := range locations {
			out[i] = Cluster{Coordinates: loc.Coordinates, Locations: []Location{loc}, Count: len(loc.Shipments)}
		}
		return out
	}

	radius := 5.0
	if zoom <= 3 {
		radius = 10.0
	}
	type cell struct{ x, y int }
	index := make(map[cell]int)
	var out []Cluster
	for _, loc := range locations {
		key := cell{int(math.Floor(loc.Lat / radius)), int(math.Floor(loc.Lng / radius))}
		if i, ok := index[key]; ok {
			c := &out[i]
			c.Locations = append(c.Locations, loc)
			c.Count += len(loc.Shipments)
			// keep the cluster pinned on its centroid
			c.Lat, c.Lng = centroid(c.Locations)
			continue
		}
		index[key] = len(out)
		out = append(out, Cluster{Coordinates: loc.Coordinates, Locations: []Location{loc}, Count: len(loc.Shipments)})
	}
	return out
}

func centroid(locations []Location) (float64, float64) {
	var lat, lng float64
	for _, l := range locations {
		lat += l.Lat
		lng += l.Lng
	}
	n := float64(len(locations))
	return lat / n, lng / n
}
