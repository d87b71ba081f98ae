package loader

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// SerializeDataset encodes a Dataset to bytes using gob encoding.
// This is useful for disk-based caching to avoid re-parsing the trip CSV.
func SerializeDataset(ds *Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeDatasetToWriter(ds, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeDataset decodes a Dataset from bytes using gob encoding.
// Derived trip minutes are recomputed from the decoded timestamps.
func DeserializeDataset(data []byte) (*Dataset, error) {
	return DeserializeDatasetFromReader(bytes.NewReader(data))
}

// SerializeDatasetToFile writes a Dataset to a file using gob encoding.
func SerializeDatasetToFile(ds *Dataset, filepath string) error {
	data, err := SerializeDataset(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// DeserializeDatasetFromFile reads a Dataset from a file using gob encoding.
//
// Example:
//
//	ds, err := loader.DeserializeDatasetFromFile("/cache/bluebikes-2024-03.gob")
//	if err != nil {
//	    // Cache miss or corrupted, load the sources
//	    ds, _ = loader.Load(ctx, cfg.Data)
//	}
func DeserializeDatasetFromFile(filepath string) (*Dataset, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeDataset(data)
}

// SerializeDatasetToWriter writes a Dataset to an io.Writer using gob encoding.
func SerializeDatasetToWriter(ds *Dataset, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(ds); err != nil {
		return fmt.Errorf("failed to encode Dataset: %w", err)
	}
	return nil
}

// DeserializeDatasetFromReader reads a Dataset from an io.Reader using gob encoding.
func DeserializeDatasetFromReader(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := gob.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode Dataset: %w", err)
	}
	for i, t := range ds.Trips {
		ds.Trips[i] = traffic.NewTrip(t.DepartureStationID, t.ArrivalStationID, t.DepartedAt, t.ArrivedAt)
	}
	return &ds, nil
}
