package keystore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/zerr"
)

const documentVersion = 1

// document is the on-disk form of a key set.
type document struct {
	Version  int      `json:"version"`
	Checksum string   `json:"checksum"`
	Keys     []string `json:"keys"`
}

// checksum hashes the sorted keys, one per line.
func checksum(sorted []string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(sorted, "\n")))
}

func encode(keys map[string]struct{}) ([]byte, string, error) {
	sorted := sortedKeys(keys)
	doc := document{
		Version:  documentVersion,
		Checksum: checksum(sorted),
		Keys:     sorted,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", domain.WrapCause(domain.ErrStoreMarshalFailed, err)
	}
	return append(data, '\n'), doc.Checksum, nil
}

// decodeDocument accepts both the versioned document and a bare JSON array of keys.
func decodeDocument(data []byte) (map[string]struct{}, string, error) {
	data = bytes.TrimSpace(data)
	keys := make(map[string]struct{})
	if len(data) == 0 {
		return keys, checksum(nil), nil
	}

	var list []string
	if data[0] == '[' {
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, "", domain.WrapCause(domain.ErrStoreUnmarshalFailed, err)
		}
	} else {
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, "", domain.WrapCause(domain.ErrStoreUnmarshalFailed, err)
		}
		if doc.Version != documentVersion {
			return nil, "", zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, "unsupported version"), "version", doc.Version)
		}
		sorted := slices.Clone(doc.Keys)
		slices.Sort(sorted)
		if got := checksum(sorted); got != doc.Checksum {
			err := zerr.Wrap(domain.ErrStoreCorrupt, "verify key store")
			return nil, "", zerr.With(zerr.With(err, "want", doc.Checksum), "got", got)
		}
		list = doc.Keys
	}

	for _, k := range list {
		keys[k] = struct{}{}
	}
	return keys, checksum(sortedKeys(keys)), nil
}

func sortedKeys(keys map[string]struct{}) []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
