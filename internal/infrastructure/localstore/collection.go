package localstore

import (
	"fmt"

	"github.com/goccy/go-json"
)

// readCollection deserializa la colección bajo key. El segundo valor es
// false cuando la clave no existe o el documento persistido está corrupto:
// un JSON malformado se trata como condición de arranque en frío (primera
// ejecución), nunca como error fatal.
func readCollection[T any](s *Store, key string) ([]T, bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, nil
	}
	return items, true, nil
}

// writeCollection serializa y persiste la colección completa bajo key.
func writeCollection[T any](s *Store, key string, items []T) error {
	// Colección vacía se persiste como [] (no null): la presencia de la
	// clave es lo que marca una colección ya sembrada.
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializar colección %q: %w", key, err)
	}
	return s.Put(key, raw)
}
