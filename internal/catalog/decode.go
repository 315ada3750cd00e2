package catalog

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
)

// DecodeJSON reads a JSON array of effect records, or an object holding the
// array under "effects".
func DecodeJSON(r io.Reader) ([]*reliquary.Effect, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog")
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var doc struct {
			Effects []*reliquary.Effect `json:"effects"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode catalog JSON")
		}
		return doc.Effects, nil
	}

	var effects []*reliquary.Effect
	if err := json.Unmarshal(data, &effects); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode catalog JSON")
	}
	return effects, nil
}

// DecodeTOML reads a TOML document with one [[effects]] table per record
func DecodeTOML(r io.Reader) ([]*reliquary.Effect, error) {
	var doc struct {
		Effects []map[string]any `toml:"effects"`
	}
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode catalog TOML")
	}

	effects := make([]*reliquary.Effect, 0, len(doc.Effects))
	for i, fields := range doc.Effects {
		e, err := reliquary.EffectFromFields(fields)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid catalog entry").
				WithMeta("index", i)
		}
		effects = append(effects, e)
	}
	return effects, nil
}
