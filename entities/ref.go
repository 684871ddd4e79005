package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CropRef is a crop reference as it appears in read responses: either the bare
// crop id or the expanded crop object.
type CropRef struct {
	ID   string
	Crop *Crop
}

// RefTo builds a reference, dropping an expanded crop whose id does not match.
func RefTo(id string, c *Crop) CropRef {
	if c == nil || c.ID != id {
		return CropRef{ID: id}
	}
	return CropRef{ID: id, Crop: c}
}

// Name is the crop's display name, or "" when the reference is not expanded.
func (r CropRef) Name() string {
	if r.Crop == nil {
		return ""
	}
	return r.Crop.Name
}

func (r CropRef) MarshalJSON() ([]byte, error) {
	if r.Crop != nil {
		return json.Marshal(r.Crop)
	}
	return json.Marshal(r.ID)
}

func (r *CropRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*r = CropRef{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		return json.Unmarshal(b, &r.ID)
	case '{':
		var c Crop
		if err := json.Unmarshal(b, &c); err != nil {
			return err
		}
		r.ID, r.Crop = c.ID, &c
		return nil
	}
	return fmt.Errorf("cropId: unexpected json %q", b)
}
