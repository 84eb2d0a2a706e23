package catalog

import (
	"sort"
	"strings"
)

type Region struct {
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}

// Regions lists the 77 districts of Nepal grouped by province, in display order.
var Regions = []Region{
	{Name: "East Nepal (Koshi Province)", Districts: []string{
		"Bhojpur", "Dhankuta", "Ilam", "Jhapa", "Khotang", "Morang", "Okhaldhunga",
		"Panchthar", "Sankhuwasabha", "Solukhumbu", "Sunsari", "Taplejung", "Terhathum", "Udayapur",
	}},
	{Name: "Central Nepal (Madhesh Province)", Districts: []string{
		"Bara", "Dhanusha", "Mahottari", "Parsa", "Rautahat", "Saptari", "Sarlahi", "Siraha",
	}},
	{Name: "Central Nepal (Bagmati Province)", Districts: []string{
		"Bhaktapur", "Chitwan", "Dhading", "Dolakha", "Kathmandu", "Kavrepalanchok", "Lalitpur",
		"Makwanpur", "Nuwakot", "Ramechhap", "Rasuwa", "Sindhuli", "Sindhupalchok",
	}},
	{Name: "West Nepal (Gandaki Province)", Districts: []string{
		"Baglung", "Gorkha", "Kaski", "Lamjung", "Manang", "Mustang", "Myagdi", "Nawalparasi East",
		"Parbat", "Syangja", "Tanahun",
	}},
	{Name: "West Nepal (Lumbini Province)", Districts: []string{
		"Arghakhanchi", "Banke", "Bardiya", "Dang", "Gulmi", "Kapilvastu", "Nawalparasi West",
		"Palpa", "Pyuthan", "Rolpa", "Rukum East", "Rupandehi",
	}},
	{Name: "Mid-West Nepal (Karnali Province)", Districts: []string{
		"Dailekh", "Dolpa", "Humla", "Jajarkot", "Jumla", "Kalikot", "Mugu",
		"Rukum West", "Salyan", "Surkhet",
	}},
	{Name: "Far-West Nepal (Sudurpashchim Province)", Districts: []string{
		"Achham", "Baitadi", "Bajhang", "Bajura", "Dadeldhura", "Darchula", "Doti",
		"Kailali", "Kanchanpur",
	}},
}

var districtIndex = func() map[string]string {
	idx := make(map[string]string)
	for _, region := range Regions {
		for _, d := range region.Districts {
			idx[normalizeName(d)] = d
		}
	}
	return idx
}()

// Districts returns all district names in alphabetical order.
func Districts() []string {
	out := make([]string, 0, len(districtIndex))
	for _, d := range districtIndex {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// LookupDistrict returns the canonical spelling of a district name, matching
// case-insensitively and ignoring surrounding or repeated whitespace.
func LookupDistrict(name string) (string, bool) {
	d, ok := districtIndex[normalizeName(name)]
	return d, ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
