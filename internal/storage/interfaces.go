package storage

import "ticketcounter/internal/models"

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
}

type StorageInterface interface {
	Load() models.Document
	Save(doc models.Document) error
	Remove() error
	Archive(doc models.Document, label string) (string, error)
	Restore(path string) (models.Document, error)
}
