package models

import "encoding/json"

// AssetType names a marketing asset derived from a product.
type AssetType string

const (
	AssetSalesPage     AssetType = "salesPage"
	AssetEmailSequence AssetType = "emailSequence"
	AssetVideoScripts  AssetType = "videoScripts"
	AssetSocialContent AssetType = "socialContent"
)

// AssetTypes lists every supported asset type.
var AssetTypes = []AssetType{AssetSalesPage, AssetEmailSequence, AssetVideoScripts, AssetSocialContent}

// Valid reports whether a is one of the supported asset types.
func (a AssetType) Valid() bool {
	for _, t := range AssetTypes {
		if a == t {
			return true
		}
	}
	return false
}

// GhostwriterRecord holds the latest generated text for each asset type.
// On the wire the assets sit next to productTitle and lastUpdated, keyed by
// asset type.
type GhostwriterRecord struct {
	Assets       map[AssetType]string
	ProductTitle string
	LastUpdated  Timestamp
}

const (
	ghostwriterTitleKey   = "productTitle"
	ghostwriterUpdatedKey = "lastUpdated"
)

func (r GhostwriterRecord) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Assets)+2)
	for assetType, content := range r.Assets {
		flat[string(assetType)] = content
	}
	flat[ghostwriterTitleKey] = r.ProductTitle
	if !r.LastUpdated.IsZero() {
		flat[ghostwriterUpdatedKey] = r.LastUpdated
	}
	return json.Marshal(flat)
}

// UnmarshalJSON reads the flat layout. Keys that are not asset types or the
// two metadata fields are ignored.
func (r *GhostwriterRecord) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	out := GhostwriterRecord{Assets: map[AssetType]string{}}
	for key, value := range flat {
		switch {
		case key == ghostwriterTitleKey:
			if err := json.Unmarshal(value, &out.ProductTitle); err != nil {
				return err
			}
		case key == ghostwriterUpdatedKey:
			if err := json.Unmarshal(value, &out.LastUpdated); err != nil {
				return err
			}
		case AssetType(key).Valid():
			var content string
			if err := json.Unmarshal(value, &content); err != nil {
				return err
			}
			out.Assets[AssetType(key)] = content
		}
	}
	*r = out
	return nil
}
