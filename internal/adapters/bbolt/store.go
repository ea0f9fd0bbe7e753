// Package bbolt implements the ports.Storage interface using bbolt (embedded
// B+ tree). Each catalog gets its own top-level bucket. Within that bucket,
// "stats", "pages" and "vectors" sub-buckets hold the fit statistics, cached
// record pages and enriched etags. Writes are transactional — a crash
// mid-write cannot corrupt previously committed data.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/tagmint/internal/ports"
)

// Bucket keys
var (
	bucketStats   = []byte("stats")
	bucketPages   = []byte("pages")
	bucketVectors = []byte("vectors")
	keyStatsBlob  = []byte("v1")
)

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveStatistics persists fit statistics for a catalog, overwriting any
// prior blob. The encoding is deterministic (sorted terms), so identical
// statistics always produce identical blobs.
func (s *Store) SaveStatistics(catalogID string, stats *ports.Statistics) error {
	if stats == nil {
		return fmt.Errorf("nil statistics")
	}
	blob, err := encodeStatistics(stats)
	if err != nil {
		return fmt.Errorf("encode statistics: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		sb, err := catalogSub(tx, catalogID, bucketStats)
		if err != nil {
			return err
		}
		return sb.Put(keyStatsBlob, blob)
	})
}

// LoadStatistics retrieves fit statistics. Returns nil, nil for a fresh
// catalog.
func (s *Store) LoadStatistics(catalogID string) (*ports.Statistics, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		sb := viewSub(tx, catalogID, bucketStats)
		if sb == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := sb.Get(keyStatsBlob); v != nil {
			blob = make([]byte, len(v))
			copy(blob, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}
	stats, err := decodeStatistics(blob)
	if err != nil {
		return nil, fmt.Errorf("decode statistics: %w", err)
	}
	return stats, nil
}

// SavePage caches one fetched catalog page as JSON, keyed by big-endian
// page number so cursor order is ascending numeric order.
func (s *Store) SavePage(catalogID string, page *ports.Page) error {
	if page == nil {
		return fmt.Errorf("nil page")
	}
	blob, err := json.Marshal(page.Records)
	if err != nil {
		return fmt.Errorf("marshal page %d: %w", page.Number, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		pb, err := catalogSub(tx, catalogID, bucketPages)
		if err != nil {
			return err
		}
		return pb.Put(pageKey(page.Number), blob)
	})
}

// LoadPage retrieves a cached page. Returns nil, nil when the page has not
// been cached.
func (s *Store) LoadPage(catalogID string, number int) (*ports.Page, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		pb := viewSub(tx, catalogID, bucketPages)
		if pb == nil {
			return nil
		}
		if v := pb.Get(pageKey(number)); v != nil {
			blob = make([]byte, len(v))
			copy(blob, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}
	page := &ports.Page{Number: number}
	if err := json.Unmarshal(blob, &page.Records); err != nil {
		return nil, fmt.Errorf("unmarshal page %d: %w", number, err)
	}
	return page, nil
}

// PageNumbers returns cached page numbers in ascending order.
func (s *Store) PageNumbers(catalogID string) ([]int, error) {
	var numbers []int
	err := s.db.View(func(tx *bolt.Tx) error {
		pb := viewSub(tx, catalogID, bucketPages)
		if pb == nil {
			return nil
		}
		return pb.ForEach(func(k, _ []byte) error {
			if len(k) != 4 {
				return fmt.Errorf("malformed page key (%d bytes)", len(k))
			}
			numbers = append(numbers, int(binary.BigEndian.Uint32(k)))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// SaveVectors persists enriched etags keyed by record id.
func (s *Store) SaveVectors(catalogID string, vectors map[string]string) error {
	blob, err := json.Marshal(vectors)
	if err != nil {
		return fmt.Errorf("marshal vectors: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		vb, err := catalogSub(tx, catalogID, bucketVectors)
		if err != nil {
			return err
		}
		return vb.Put(keyStatsBlob, blob)
	})
}

// LoadVectors retrieves the enriched etags map. Returns nil, nil for a
// fresh catalog.
func (s *Store) LoadVectors(catalogID string) (map[string]string, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		vb := viewSub(tx, catalogID, bucketVectors)
		if vb == nil {
			return nil
		}
		if v := vb.Get(keyStatsBlob); v != nil {
			blob = make([]byte, len(v))
			copy(blob, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}
	vectors := make(map[string]string)
	if err := json.Unmarshal(blob, &vectors); err != nil {
		return nil, fmt.Errorf("unmarshal vectors: %w", err)
	}
	return vectors, nil
}

// DeleteCatalog removes all data for a catalog. Idempotent.
func (s *Store) DeleteCatalog(catalogID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(catalogID)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(catalogID))
	})
}

// catalogSub returns (creating as needed) the named sub-bucket of the
// catalog's top-level bucket, within a writable transaction.
func catalogSub(tx *bolt.Tx, catalogID string, name []byte) (*bolt.Bucket, error) {
	cat, err := tx.CreateBucketIfNotExists([]byte(catalogID))
	if err != nil {
		return nil, err
	}
	return cat.CreateBucketIfNotExists(name)
}

// viewSub returns the named sub-bucket within a read transaction, or nil
// when either level does not exist yet.
func viewSub(tx *bolt.Tx, catalogID string, name []byte) *bolt.Bucket {
	cat := tx.Bucket([]byte(catalogID))
	if cat == nil {
		return nil
	}
	return cat.Bucket(name)
}

// pageKey encodes a page number as a 4-byte big-endian key.
func pageKey(number int) []byte {
	k := make([]byte, 4)
	binary.BigEndian.PutUint32(k, uint32(number))
	return k
}
