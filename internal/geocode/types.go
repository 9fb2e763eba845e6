package geocode

// LookupRequest represents the query parameters from the frontend.
type LookupRequest struct {
	Postcode string `form:"postcode" binding:"required,min=5"`
}

// Coordinates is the resolved location for a postcode.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LookupResponse is the normalized data returned to the caller.
type LookupResponse struct {
	Postcode  string  `json:"postcode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	District  string  `json:"district,omitempty"`
}

// postcodesIOResult mirrors the relevant parts of the postcodes.io payload.
type postcodesIOResult struct {
	Postcode      string  `json:"postcode"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	AdminDistrict string  `json:"admin_district"`
}

type postcodesIOResponse struct {
	Status int                `json:"status"`
	Result *postcodesIOResult `json:"result"`
}
