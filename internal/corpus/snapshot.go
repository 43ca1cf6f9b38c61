package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/tutor/internal/tfidf"
	bolt "go.etcd.io/bbolt"
)

// SnapshotVersion is bumped whenever the snapshot layout changes.
const SnapshotVersion = 1

// Bucket keys
var (
	bucketCorpus  = []byte("corpus")
	keyMeta       = []byte("meta")
	keySubjects   = []byte("subjects")
	keyVectorizer = []byte("vectorizer")
	keyMatrix     = []byte("matrix")
)

// SnapshotMeta describes a stored snapshot.
type SnapshotMeta struct {
	Version  int       `json:"version"`
	BuiltAt  time.Time `json:"built_at"`
	Subjects int       `json:"subjects"`
	Pairs    int       `json:"pairs"`
}

// SaveSnapshot writes c to a bbolt file at path, replacing any previous
// snapshot in one transaction.
func SaveSnapshot(path string, c VectorizedCorpus, builtAt time.Time) error {
	pairs := 0
	for _, sd := range c.Subjects {
		pairs += len(sd.Pairs)
	}
	if pairs != len(c.Matrix) {
		return fmt.Errorf("snapshot matrix has %d rows for %d pairs", len(c.Matrix), pairs)
	}

	meta := SnapshotMeta{Version: SnapshotVersion, BuiltAt: builtAt.UTC(), Subjects: len(c.Subjects), Pairs: pairs}
	blobs := make(map[string][]byte, 4)
	for key, v := range map[string]any{
		string(keyMeta):       meta,
		string(keySubjects):   c.Subjects,
		string(keyVectorizer): c.Vectorizer,
		string(keyMatrix):     c.Matrix,
	} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		blobs[key] = data
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return fmt.Errorf("bbolt open: %w", err)
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketCorpus) != nil {
			if err := tx.DeleteBucket(bucketCorpus); err != nil {
				return err
			}
		}
		b, err := tx.CreateBucket(bucketCorpus)
		if err != nil {
			return err
		}
		for key, data := range blobs {
			if err := b.Put([]byte(key), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (VectorizedCorpus, SnapshotMeta, error) {
	if _, err := os.Stat(path); err != nil {
		return VectorizedCorpus{}, SnapshotMeta{}, fmt.Errorf("snapshot: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second, ReadOnly: true})
	if err != nil {
		return VectorizedCorpus{}, SnapshotMeta{}, fmt.Errorf("bbolt open: %w", err)
	}
	defer db.Close()

	var metaJSON, subjectsJSON, vecJSON, matrixJSON []byte
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCorpus)
		if b == nil {
			return fmt.Errorf("%w: no corpus bucket", ErrUnknownFormat)
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		metaJSON = copyBytes(b.Get(keyMeta))
		subjectsJSON = copyBytes(b.Get(keySubjects))
		vecJSON = copyBytes(b.Get(keyVectorizer))
		matrixJSON = copyBytes(b.Get(keyMatrix))
		return nil
	})
	if err != nil {
		return VectorizedCorpus{}, SnapshotMeta{}, err
	}
	if metaJSON == nil || subjectsJSON == nil || vecJSON == nil || matrixJSON == nil {
		return VectorizedCorpus{}, SnapshotMeta{}, fmt.Errorf("%w: snapshot is missing keys", ErrUnknownFormat)
	}

	var meta SnapshotMeta
	if err := json.Unmarshal(metaJSON, &meta); err != nil {
		return VectorizedCorpus{}, SnapshotMeta{}, fmt.Errorf("unmarshal meta: %w", err)
	}
	if meta.Version != SnapshotVersion {
		return VectorizedCorpus{}, meta, fmt.Errorf("unsupported snapshot version %d", meta.Version)
	}

	var c VectorizedCorpus
	if err := json.Unmarshal(subjectsJSON, &c.Subjects); err != nil {
		return VectorizedCorpus{}, meta, fmt.Errorf("unmarshal subjects: %w", err)
	}
	var state tfidf.State
	if err := json.Unmarshal(vecJSON, &state); err != nil {
		return VectorizedCorpus{}, meta, fmt.Errorf("unmarshal vectorizer: %w", err)
	}
	c.Vectorizer = state
	if err := json.Unmarshal(matrixJSON, &c.Matrix); err != nil {
		return VectorizedCorpus{}, meta, fmt.Errorf("unmarshal matrix: %w", err)
	}
	return c, meta, nil
}

func copyBytes(v []byte) []byte {
	if v == nil {
		return nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
