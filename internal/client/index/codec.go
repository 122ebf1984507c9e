package index

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/daybook/internal/client/models"
	"github.com/dmitrijs2005/daybook/internal/common"
)

// rawRecord mirrors models.IndexRecord with pointer fields so Decode can
// tell a missing field from a zero value.
type rawRecord struct {
	LastModified *int64 `json:"lastModified"`
	Deleted      *bool  `json:"deleted"`
}

// Decode parses a serialized master index. The whole decode fails on the
// first malformed record: a half-read index must never pass for an empty
// one, or every entry it silently dropped would look deleted to the
// other replica.
func Decode(raw []byte) (models.MasterIndex, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: master index is not a JSON object: %v", common.ErrValidation, err)
	}

	idx := make(models.MasterIndex, len(m))
	for id, r := range m {
		var rec rawRecord
		if err := json.Unmarshal(r, &rec); err != nil {
			return nil, fmt.Errorf("%w: record %q: %v", common.ErrValidation, id, err)
		}
		if rec.LastModified == nil {
			return nil, fmt.Errorf("%w: record %q: missing lastModified", common.ErrValidation, id)
		}
		if rec.Deleted == nil {
			return nil, fmt.Errorf("%w: record %q: missing deleted", common.ErrValidation, id)
		}
		idx[id] = models.IndexRecord{LastModified: *rec.LastModified, Deleted: *rec.Deleted}
	}
	return idx, nil
}

// Encode serializes the index. encoding/json writes map keys in sorted
// order, so equal indexes always encode to identical bytes.
func Encode(idx models.MasterIndex) ([]byte, error) {
	if idx == nil {
		idx = models.MasterIndex{}
	}
	data, err := json.Marshal(idx)
	if err != nil {
		return nil, fmt.Errorf("encoding master index: %w", err)
	}
	return data, nil
}
