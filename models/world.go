package models

// NameAndDescription is the body of the rename endpoint.
type NameAndDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ResetWorldRequest is the body java expects when resetting a realm to a
// freshly generated world.
type ResetWorldRequest struct {
	Seed               string `json:"seed"`
	WorldTemplateID    int    `json:"worldTemplateId"`
	LevelType          int    `json:"levelType"`
	GenerateStructures bool   `json:"generateStructures"`
}

// DefaultResetWorldRequest generates a default world with a random seed.
func DefaultResetWorldRequest() ResetWorldRequest {
	return ResetWorldRequest{Seed: "", WorldTemplateID: -1, LevelType: 0, GenerateStructures: true}
}
