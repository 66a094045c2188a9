package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tradervijeth/Wiki-Forge/internal/domain"
)

var csvHeader = []string{
	"title",
	"raw_text",
	"raw_summary",
	"url",
	"categories",
	"reference_count",
	"processed_at",
	"clean_text",
	"clean_summary",
}

var invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// FileStore persists datasets as flat files. Writes to the same base path
// are serialized with a per-path lock so concurrent requests with colliding
// names do not interleave.
type FileStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore() *FileStore {
	return &FileStore{locks: make(map[string]*sync.Mutex)}
}

func (s *FileStore) pathLock(basePath string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[basePath]
	if !ok {
		l = &sync.Mutex{}
		s.locks[basePath] = l
	}
	return l
}

// SaveDataset writes the table as <basePath>.csv and <basePath>.json, plus a
// <basePath>.meta.json sidecar describing the run. The parent directory is
// created if missing.
func (s *FileStore) SaveDataset(basePath string, articles []domain.Article, meta domain.DatasetMeta) error {
	l := s.pathLock(basePath)
	l.Lock()
	defer l.Unlock()

	if dir := filepath.Dir(basePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := s.writeCSV(basePath+".csv", articles); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	if err := s.writeJSON(basePath+".json", articles); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	if err := s.writeMeta(basePath+".meta.json", meta); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

func (s *FileStore) writeCSV(path string, articles []domain.Article) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, a := range articles {
		row := []string{
			a.Title,
			a.RawText,
			a.RawSummary,
			a.URL,
			fmt.Sprintf("%v", a.Categories),
			strconv.Itoa(a.ReferenceCount),
			a.ProcessedAt.Format(time.RFC3339Nano),
			a.CleanText,
			a.CleanSummary,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *FileStore) writeJSON(path string, articles []domain.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *FileStore) writeMeta(path string, meta domain.DatasetMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SanitizeFileName makes a caller-supplied dataset name safe as a file name:
// characters invalid on common filesystems are removed, spaces become
// underscores, and the result is lowercased.
func SanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ToLower(name)
}
