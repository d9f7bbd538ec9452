package domain

// Vehicle is a drilling rig entries can be booked against.
type Vehicle struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Vehicles returns the fixed rig fleet.
func Vehicles() []Vehicle {
	return []Vehicle{
		{ID: "rig-1", Name: "Rig 1"},
		{ID: "rig-2", Name: "Rig 2"},
		{ID: "rig-3", Name: "Rig 3"},
		{ID: "rig-4", Name: "Rig 4"},
		{ID: "rig-5", Name: "Rig 5"},
	}
}
