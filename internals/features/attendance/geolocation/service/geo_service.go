// file: internals/features/attendance/geolocation/service/geo_service.go
package service

import "math"

// Office adalah lokasi kantor terdaftar.
type Office struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Daftar kantor yang diakui. Check-in hanya dihitung "In Office" bila
// koordinat berada dalam radius salah satu titik ini.
var AllowedOffices = []Office{
	{Name: "Office 1 - Head Office", Latitude: 6.5244, Longitude: 3.3792},
	{Name: "Office 2 - Mushin", Latitude: 6.544980, Longitude: 3.354078},
	{Name: "Office 3 - Ikeja", Latitude: 6.62191, Longitude: 3.35309},
}

const (
	earthRadiusKm = 6371

	// Radius sengaja kecil (50 m): koordinat yang dilaporkan harus presisi,
	// tidak ada fuzzy match.
	officeRadiusKm = 0.05
)

// DistanceKm menghitung jarak great-circle (haversine) dalam kilometer.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(v float64) float64 { return v * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Pow(math.Sin(dLng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// MatchOffice mengembalikan kantor pertama yang jaraknya <= radius dari
// koordinat laporan, atau (nil, false) bila tidak ada yang cocok.
func MatchOffice(lat, lng float64) (*Office, bool) {
	for i := range AllowedOffices {
		o := &AllowedOffices[i]
		if DistanceKm(lat, lng, o.Latitude, o.Longitude) <= officeRadiusKm {
			return o, true
		}
	}
	return nil, false
}
