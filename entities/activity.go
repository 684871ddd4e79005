package entities

import "time"

type Activity struct {
	ID          string    `gorm:"primaryKey" json:"_id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" gorm:"index"`
	CropID      string    `json:"cropId" gorm:"index"`
	Crop        *Crop     `json:"-" gorm:"foreignKey:CropID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActivityInput is the write shape: the crop is always a bare id.
type ActivityInput struct {
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	CropID      string    `json:"cropId" validate:"required"`
}

// ActivityView is the read shape returned by GET /activities. Crop holds the
// expanded crop when the backend could resolve it.
type ActivityView struct {
	ID          string    `json:"_id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Crop        CropRef   `json:"cropId"`
}

func (a *Activity) Apply(in ActivityInput) {
	a.Description = in.Description
	a.Date = in.Date.UTC()
	a.CropID = in.CropID
}

func (a Activity) View() ActivityView {
	return ActivityView{
		ID:          a.ID,
		Description: a.Description,
		Date:        a.Date,
		Crop:        RefTo(a.CropID, a.Crop),
	}
}

// Input flattens the read shape back into the write shape.
func (v ActivityView) Input() ActivityInput {
	return ActivityInput{
		Description: v.Description,
		Date:        v.Date,
		CropID:      v.Crop.ID,
	}
}
