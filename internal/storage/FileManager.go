package storage

import (
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"os"
	"path/filepath"
	"ticketcounter/internal/models"
	"ticketcounter/internal/providers"
	"ticketcounter/internal/structures"
)

const archivePrefix = "tracker_"
const archiveSuffix = ".json.zst"

type FileManager struct {
	filePath   string
	archiveDir string
	compressor CompressorInterface
	logger     providers.Logger
}

func NewFileManager(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) StorageInterface {
	return &FileManager{
		filePath:   conf.Persistence.FilePath,
		archiveDir: conf.Persistence.ArchiveDir,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) Path() string {
	return f.filePath
}

// Load never fails: a missing or unreadable document is treated as no data yet.
func (f *FileManager) Load() models.Document {
	data, err := os.ReadFile(f.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warnf(providers.TypeStorage, "Unable to read %s, starting empty: %s", f.filePath, err)
		}
		return models.NewDocument()
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		f.logger.Warnf(providers.TypeStorage, "Corrupt document %s, starting empty: %s", f.filePath, err)
		return models.NewDocument()
	}
	if doc == nil {
		return models.NewDocument()
	}
	doc.Normalize()

	f.logger.Debugf(providers.TypeStorage, "Loaded %d days from %s", len(doc), f.filePath)
	return doc
}

func (f *FileManager) Save(doc models.Document) error {
	if doc == nil {
		doc = models.NewDocument()
	}
	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if err := WriteFileAtomic(f.filePath, jsonData, 0644); err != nil {
		return fmt.Errorf("write %s: %w", f.filePath, err)
	}
	f.logger.Debugf(providers.TypeStorage, "Persisted %d days to %s", len(doc), f.filePath)
	return nil
}

func (f *FileManager) Remove() error {
	err := os.Remove(f.filePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", f.filePath, err)
	}
	f.logger.Infof(providers.TypeStorage, "Removed %s", f.filePath)
	return nil
}

// Archive stores a compressed snapshot of doc in the archive directory.
// It returns an empty path when archiving is disabled.
func (f *FileManager) Archive(doc models.Document, label string) (string, error) {
	if f.archiveDir == "" {
		return "", nil
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode archive: %w", err)
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return "", fmt.Errorf("compress archive: %w", err)
	}

	path, err := f.freeArchivePath(label)
	if err != nil {
		return "", err
	}
	if err := WriteFileAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("write archive %s: %w", path, err)
	}
	f.logger.Infof(providers.TypeStorage, "Archived %d days to %s", len(doc), path)
	return path, nil
}

// freeArchivePath never returns the path of an existing snapshot; repeated
// labels get a numeric suffix.
func (f *FileManager) freeArchivePath(label string) (string, error) {
	path := filepath.Join(f.archiveDir, archivePrefix+label+archiveSuffix)
	for n := 2; ; n++ {
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat archive %s: %w", path, err)
		}
		path = filepath.Join(f.archiveDir, fmt.Sprintf("%s%s_%d%s", archivePrefix, label, n, archiveSuffix))
	}
}

// Restore reads a snapshot written by Archive.
func (f *FileManager) Restore(path string) (models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress archive %s: %w", path, err)
	}
	var doc models.Document
	if err := json.Unmarshal(decompressed, &doc); err != nil {
		return nil, fmt.Errorf("decode archive %s: %w", path, err)
	}
	if doc == nil {
		doc = models.NewDocument()
	}
	doc.Normalize()
	return doc, nil
}
