package session

import (
	"encoding/json"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

const sessionKey = "session.json"

// DiskStore keeps the session in a diskv directory, readable only by the
// owner.
type DiskStore struct {
	d *diskv.Diskv
}

// NewDiskStore creates a DiskStore rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 64 * 1024,
		PathPerm:     0o700,
		FilePerm:     0o600,
	})}
}

// Load returns the stored session or ErrNoSession.
func (s *DiskStore) Load() (*Session, error) {
	if !s.d.Has(sessionKey) {
		return nil, ErrNoSession
	}
	raw, err := s.d.Read(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode %s: %w", sessionKey, err)
	}
	if sess.AccessToken == "" {
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Save writes the session.
func (s *DiskStore) Save(sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.d.Write(sessionKey, raw)
}

// Clear removes the stored session.
func (s *DiskStore) Clear() error {
	if !s.d.Has(sessionKey) {
		return nil
	}
	return s.d.Erase(sessionKey)
}
