// Package localstore implementa la persistencia local del cliente: un
// store clave→documento sobre SQLite donde cada colección se serializa
// completa como un documento JSON bajo su propia clave.
//
// Claves en uso: users, companies, candidates, companyAssignments y
// authUser. Toda mutación es read-modify-write sobre la colección entera;
// el modelo asume un único escritor por store (cliente local único).
package localstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Claves lógicas del store, una colección JSON por clave.
const (
	KeyUsers       = "users"
	KeyCompanies   = "companies"
	KeyCandidates  = "candidates"
	KeyAssignments = "companyAssignments"
	KeyAuthUser    = "authUser"
)

// Store es el almacén clave→documento respaldado por un archivo SQLite.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) el store en la ruta dada y asegura el esquema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio del store: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir store: %w", err)
	}
	// Un solo cliente, operaciones síncronas: una conexión basta y evita
	// SQLITE_BUSY entre statements.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		doc TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema kv: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra el archivo subyacente.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get devuelve el documento bajo key. El segundo valor es false si la
// clave no existe.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var doc []byte
	err := s.db.QueryRow(`SELECT doc FROM kv WHERE key = ?`, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer clave %q: %w", key, err)
	}
	return doc, true, nil
}

// Put escribe (o reemplaza) el documento bajo key.
func (s *Store) Put(key string, doc []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, doc) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET doc = excluded.doc`, key, doc)
	if err != nil {
		return fmt.Errorf("escribir clave %q: %w", key, err)
	}
	return nil
}

// Delete elimina la clave. No es error si no existe.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("eliminar clave %q: %w", key, err)
	}
	return nil
}

// Has reporta si la clave existe en el store.
func (s *Store) Has(key string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM kv WHERE key = ?`, key).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consultar clave %q: %w", key, err)
	}
	return true, nil
}
