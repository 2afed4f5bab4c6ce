// /internal/database/errors.go
package database

// StorageError marca uma falha do SQLite durante uma operação do store.
// Err guarda a mensagem original do engine.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
