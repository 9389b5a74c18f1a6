package appstate

import (
	"encoding/json"
	"os"
	"sync"
)

// State holds process-wide UI state that survives restarts. It is loaded once
// at startup and passed down explicitly; there is no package-level instance.
type State struct {
	mu   sync.Mutex
	path string

	AdminMode bool `json:"admin_mode"`
}

type stateFile struct {
	AdminMode bool `json:"admin_mode"`
}

// Load reads the persisted state from path. A missing file is not an error;
// it yields the default state (admin mode on).
func Load(path string) (*State, error) {
	st := &State{path: path, AdminMode: true}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return nil, err
	}

	var f stateFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	st.AdminMode = f.AdminMode
	return st, nil
}

// Save persists the current state to the file it was loaded from
func (s *State) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(stateFile{AdminMode: s.AdminMode})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// SetAdminMode mutates the flag and persists it immediately
func (s *State) SetAdminMode(enabled bool) error {
	s.mu.Lock()
	s.AdminMode = enabled
	s.mu.Unlock()
	return s.Save()
}

// GetAdminMode returns the current flag
func (s *State) GetAdminMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.AdminMode
}
