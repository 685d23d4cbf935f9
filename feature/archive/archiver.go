package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"broodradar/core/storage"
	snapmodels "broodradar/feature/snapshot/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver stores the raw payload of every ingested snapshot in object
// storage, next to but independent of the relational rows. Objects live at
// snapshots/<retailer>/<snapshot_id>.json.
type Archiver struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchiver creates an archiver writing to the given bucket.
func NewArchiver(client storage.Client, bucket string, logger *zap.Logger) *Archiver {
	return &Archiver{client: client, bucket: bucket, logger: logger}
}

// Entry is one raw product as archived: the fetcher's payload verbatim,
// falling back to the normalized fields when no raw payload was captured.
type Entry struct {
	WebshopID string          `json:"webshop_id"`
	Raw       json.RawMessage `json:"raw"`
}

// Export writes a snapshot's raw payload to object storage. The bucket is
// created on first use. The caller treats any error as a degraded,
// non-fatal outcome.
func (a *Archiver) Export(ctx context.Context, retailer, snapshotID string, products []snapmodels.RawProduct) error {
	if err := a.ensureBucket(ctx); err != nil {
		return err
	}

	entries := make([]Entry, 0, len(products))
	for _, p := range products {
		raw := p.Raw
		if len(raw) == 0 {
			normalized, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("failed to encode product %s: %w", p.WebshopID, err)
			}
			raw = normalized
		}
		entries = append(entries, Entry{WebshopID: p.WebshopID, Raw: raw})
	}

	payload, err := json.Marshal(map[string]any{
		"retailer":    retailer,
		"snapshot_id": snapshotID,
		"archived_at": time.Now().UTC().Format(time.RFC3339),
		"products":    entries,
	})
	if err != nil {
		return fmt.Errorf("failed to encode archive payload: %w", err)
	}

	name := objectName(retailer, snapshotID)
	_, err = a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to archive snapshot %s: %w", snapshotID, err)
	}

	a.logger.Info("Snapshot archived",
		zap.String("retailer", retailer),
		zap.String("snapshot_id", snapshotID),
		zap.String("object", name))
	return nil
}

// Raw reads an archived snapshot payload back.
func (a *Archiver) Raw(ctx context.Context, retailer, snapshotID string) ([]byte, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, objectName(retailer, snapshotID), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read archive for snapshot %s: %w", snapshotID, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive for snapshot %s: %w", snapshotID, err)
	}
	return data, nil
}

// List returns the snapshot ids archived for one retailer.
func (a *Archiver) List(ctx context.Context, retailer string) ([]string, error) {
	prefix := fmt.Sprintf("snapshots/%s/", retailer)
	var ids []string
	for info := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list archives for %s: %w", retailer, info.Err)
		}
		name := strings.TrimPrefix(info.Key, prefix)
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

func (a *Archiver) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

func objectName(retailer, snapshotID string) string {
	return fmt.Sprintf("snapshots/%s/%s.json", retailer, snapshotID)
}
