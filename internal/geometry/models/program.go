package models

// ============================================================
// Stored program
// ============================================================

// Program is a named DSL document: the main source and the global source
// holding shared function declarations.
type Program struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Source    string `json:"source"`
	Global    string `json:"global"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
