package entities

import "time"

const (
	StatusPlanting   = "Planting"
	StatusGrowing    = "Growing"
	StatusHarvesting = "Harvesting"
)

// CropStatuses lists the allowed crop statuses in lifecycle order.
var CropStatuses = []string{StatusPlanting, StatusGrowing, StatusHarvesting}

type Crop struct {
	ID           string    `gorm:"primaryKey" json:"_id"`
	Name         string    `json:"name"`
	Variety      string    `json:"variety"`
	PlantingDate time.Time `json:"plantingDate"`
	HarvestDate  time.Time `json:"harvestDate"`
	Status       string    `json:"status" gorm:"index"` // Planting|Growing|Harvesting

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CropInput is the write shape for POST /crops and PUT /crops/:id.
type CropInput struct {
	Name         string    `json:"name" validate:"required"`
	Variety      string    `json:"variety" validate:"required"`
	PlantingDate time.Time `json:"plantingDate" validate:"required"`
	HarvestDate  time.Time `json:"harvestDate" validate:"required,gtefield=PlantingDate"`
	Status       string    `json:"status" validate:"required,oneof=Planting Growing Harvesting"`
}

// WithDefaults fills the fields a client may omit.
func (in CropInput) WithDefaults() CropInput {
	if in.Status == "" {
		in.Status = StatusPlanting
	}
	return in
}

func (c Crop) Input() CropInput {
	return CropInput{
		Name:         c.Name,
		Variety:      c.Variety,
		PlantingDate: c.PlantingDate,
		HarvestDate:  c.HarvestDate,
		Status:       c.Status,
	}
}

// Apply copies the writable fields of in onto c.
func (c *Crop) Apply(in CropInput) {
	c.Name = in.Name
	c.Variety = in.Variety
	c.PlantingDate = in.PlantingDate.UTC()
	c.HarvestDate = in.HarvestDate.UTC()
	c.Status = in.Status
}
