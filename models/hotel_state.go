package models

import "encoding/json"

// HotelState is the whole persisted front-desk state. It is stored and
// loaded as one blob.
type HotelState struct {
	Rooms        []Room        `json:"rooms"`
	Guests       []Guest       `json:"guests"`
	Transactions []Transaction `json:"transactions"`
	Users        []User        `json:"users"`
	Settings     HotelSetting  `json:"settings"`
	RoomTypes    []RoomType    `json:"roomTypes"`
}

// Clone returns a deep copy, so a failed mutation can be dropped without
// touching the loaded state.
func (s *HotelState) Clone() (*HotelState, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out HotelState
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
