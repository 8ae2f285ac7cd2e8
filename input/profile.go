package input

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/quasilyte/gdata"
)

// ItemStore is a key/value store of opaque items. *gdata.Manager implements it.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var ErrProfileNotFound = errors.New("profile not found")

var profileName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

const profilePrefix = "mappings_"

// ProfileStore saves named mapping tables as JSON items.
type ProfileStore struct {
	store ItemStore
}

// NewProfileStore wraps store.
func NewProfileStore(store ItemStore) *ProfileStore {
	return &ProfileStore{store: store}
}

// OpenProfileStore opens the per-user data directory of appName.
func OpenProfileStore(appName string) (*ProfileStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open profile store: %w", err)
	}
	return NewProfileStore(m), nil
}

func profileKey(name string) (string, error) {
	if !profileName.MatchString(name) {
		return "", fmt.Errorf("invalid profile name %q", name)
	}
	return profilePrefix + name, nil
}

// SaveProfile stores t under name.
func (p *ProfileStore) SaveProfile(name string, t MappingTable) error {
	key, err := profileKey(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := EncodeMappings(&buf, FormatJSON, t); err != nil {
		return err
	}
	if err := p.store.SaveItem(key, buf.Bytes()); err != nil {
		return fmt.Errorf("save profile %s: %w", name, err)
	}
	return nil
}

// LoadProfile returns the table stored under name.
func (p *ProfileStore) LoadProfile(name string) (MappingTable, error) {
	key, err := profileKey(name)
	if err != nil {
		return MappingTable{}, err
	}
	data, err := p.store.LoadItem(key)
	if err != nil {
		return MappingTable{}, fmt.Errorf("load profile %s: %w", name, err)
	}
	if data == nil {
		return MappingTable{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return DecodeMappings(bytes.NewReader(data), FormatJSON)
}
