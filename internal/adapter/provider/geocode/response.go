package geocode

// apiResponse is the subset of the Google Geocoding API response we read.
type apiResponse struct {
	Status  string      `json:"status"`
	Results []apiResult `json:"results"`
}

type apiResult struct {
	Geometry apiGeometry `json:"geometry"`
}

type apiGeometry struct {
	Location apiLocation `json:"location"`
}

type apiLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
