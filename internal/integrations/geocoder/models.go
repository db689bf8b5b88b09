package geocoder

// Point геокодированная точка
type Point struct {
	Latitude  float64
	Longitude float64
}

// geocodeResponse ответ провайдера геокодирования
type geocodeResponse struct {
	Documents []geocodeDocument `json:"documents"`
}

type geocodeDocument struct {
	AddressName string  `json:"address_name"`
	Latitude    float64 `json:"y,string"`
	Longitude   float64 `json:"x,string"`
}
