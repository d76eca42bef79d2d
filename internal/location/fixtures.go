package location

import "math/rand"

// fixtures is a small set of named positions for when no position source is
// available. Some altitudes are approximate.
var fixtures = []Observer{
	{Name: "Aiguille MIH", Region: "La Chaux-de-Fonds, Switzerland", Latitude: 47.10042765476871, Longitude: 6.830537909805381, Altitude: 1000},
	{Name: "Great pyramid (tip)", Region: "Gyza, Egypt", Latitude: 29.97921992508711, Longitude: 31.134201381120103, Altitude: 198.8},
	{Name: "Ahu Tongakiri", Region: "Easter Island, South Pacific Ocean", Latitude: -27.12560731530453, Longitude: -109.27671897486, Altitude: 22},
	{Name: "Veerabhadra Temple", Region: "Hampi, Karnataka, India", Latitude: 15.331628235993037, Longitude: 76.46830420763662, Altitude: 514},
	{Name: "Mount Everest", Region: "Nepal, Himalaya", Latitude: 27.988075179660846, Longitude: 86.92502173497084, Altitude: 8848.86},
	{Name: "Cook Inlet", Region: "Anchorage, North America", Latitude: 61.126793732458395, Longitude: -150.28694933121557, Altitude: 0},
	{Name: "Uluru", Region: "Australia", Latitude: -25.345058743303507, Longitude: 131.03162847609963, Altitude: 863},
	{Name: "Molde", Region: "Norway", Latitude: 62.73874271153322, Longitude: 7.181428824527326, Altitude: 7},
	{Name: "Wombat Island", Region: "Antarctica", Latitude: -67.56257032149553, Longitude: 47.77256758885169, Altitude: 3},
	{Name: "Wadi Al Mujib delta", Region: "Jordan", Latitude: 31.466898587642135, Longitude: 35.563242264958284, Altitude: -439.78},
	{Name: "Ulitsa Gubina/Ulitsa Bogatyreva", Region: "Yakutsk", Latitude: 62.0400620596081, Longitude: 129.74801217766358, Altitude: 95},
}

// Fixtures returns the built-in example positions.
func Fixtures() []Observer {
	result := make([]Observer, len(fixtures))
	copy(result, fixtures)
	return result
}

// RandomFixture returns one of the built-in example positions.
func RandomFixture() Observer {
	return fixtures[rand.Intn(len(fixtures))]
}
