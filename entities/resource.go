package entities

import "time"

type Resource struct {
	ID       string  `gorm:"primaryKey" json:"_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Type     string  `json:"type"` // seed|fertilizer|equipment|... free text
	CropID   string  `json:"cropId" gorm:"index"`
	Crop     *Crop   `json:"-" gorm:"foreignKey:CropID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResourceInput struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=1"`
	Type     string  `json:"type" validate:"required"`
	CropID   string  `json:"cropId" validate:"required"`
}

type ResourceView struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Type     string  `json:"type"`
	Crop     CropRef `json:"cropId"`
}

func (r *Resource) Apply(in ResourceInput) {
	r.Name = in.Name
	r.Quantity = in.Quantity
	r.Type = in.Type
	r.CropID = in.CropID
}

func (r Resource) View() ResourceView {
	return ResourceView{
		ID:       r.ID,
		Name:     r.Name,
		Quantity: r.Quantity,
		Type:     r.Type,
		Crop:     RefTo(r.CropID, r.Crop),
	}
}

func (v ResourceView) Input() ResourceInput {
	return ResourceInput{
		Name:     v.Name,
		Quantity: v.Quantity,
		Type:     v.Type,
		CropID:   v.Crop.ID,
	}
}
