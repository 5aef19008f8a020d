package types

type ClientMessage struct {
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	PlayerID    int    `json:"player_id,omitempty"`
	CharacterID int    `json:"character_id,omitempty"`
}

type ServerMessage struct {
	Type  string `json:"type"` // "rebuild-players" | "rebuild-characters" | "error"
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}
